package model

import "time"

// Client is a buyer in the registry. Only the name is required; contact
// details are filled in as they become known.
type Client struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;index"`
	Phone     string
	Whatsapp  string
	Email     string
	City      string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
