package model

import "time"

// EmailTemplate holds a reusable subject/body pair. Bodies may contain
// {{placeholder}} tokens that are substituted from a deal snapshot when the
// template is rendered (see service.EmailService).
type EmailTemplate struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Subject   string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
