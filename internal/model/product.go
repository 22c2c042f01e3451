package model

import "time"

// Product is a catalog entry. A product is "low stock" when a minimum is
// configured (MinStock > 0) and Stock has fallen to or below it.
type Product struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"not null;index"`
	Category  string  `gorm:"not null;default:'nuts'"`
	Unit      string  `gorm:"not null;default:'kg'"`
	Price     float64 `gorm:"not null;default:0"`
	Stock     float64 `gorm:"not null;default:0"`
	MinStock  float64 `gorm:"not null;default:0"`
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LowStock reports whether the product should appear in low-stock alerts.
func (p *Product) LowStock() bool {
	return p.MinStock > 0 && p.Stock <= p.MinStock
}
