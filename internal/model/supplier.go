package model

import "time"

// Supplier is a sourcing partner in the registry.
type Supplier struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null;index"`
	Country      string
	Phone        string
	Email        string
	PaymentTerms string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
