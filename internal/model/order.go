package model

import "time"

// Order statuses.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Order is a client order with line items. TotalPrice is recomputed from the
// items on every create/update.
type Order struct {
	ID         uint       `gorm:"primaryKey"`
	ClientID   *uint      `gorm:"index"`
	OrderDate  *time.Time `gorm:"index"`
	TotalPrice float64    `gorm:"not null;default:0"`
	Status     string     `gorm:"not null;default:'pending';index"`
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Client *Client     `gorm:"foreignKey:ClientID"`
	Items  []OrderItem `gorm:"foreignKey:OrderID"`
}

// OrderItem is a single product line on an order. Updates replace the whole
// item set rather than patching individual rows.
type OrderItem struct {
	ID        uint  `gorm:"primaryKey"`
	OrderID   uint  `gorm:"not null;index"`
	ProductID *uint `gorm:"index"`
	Quantity  float64
	Price     float64

	Product *Product `gorm:"foreignKey:ProductID"`
}
