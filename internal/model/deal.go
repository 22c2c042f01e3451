package model

import "time"

// Deal stages. Transitions are caller-driven — the engine does not enforce an
// ordering between stages, it only stamps the date field mapped to the stage.
const (
	StageOffer      = "offer"
	StageOrder      = "order"
	StageSourcing   = "sourcing"
	StageLogistics  = "logistics"
	StageDelivery   = "delivery"
	StagePayment    = "payment"
	StageCommission = "commission"
)

// Deal statuses. A deal counts as "open" while its status is neither
// completed nor cancelled.
const (
	StatusDraft     = "draft"
	StatusOpen      = "open"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Deal represents a brokered trade between an optional client and an optional
// supplier. TotalValue and Commission are derived on every create/update and
// never edited independently.
type Deal struct {
	ID             uint    `gorm:"primaryKey"`
	ClientID       *uint   `gorm:"index"`
	SupplierID     *uint   `gorm:"index"`
	Product        string  `gorm:"not null;index"`
	Quantity       float64 `gorm:"not null;default:0"` // tons
	PricePerTon    float64 `gorm:"not null;default:0"`
	TotalValue     float64 `gorm:"not null;default:0"` // quantity * price_per_ton
	CommissionRate float64 `gorm:"not null;default:2.5"`
	Commission     float64 `gorm:"not null;default:0"` // total_value * rate / 100
	Stage          string  `gorm:"not null;default:'offer'"`
	Status         string  `gorm:"not null;default:'draft';index"`
	OfferDate      *time.Time
	OrderDate      *time.Time
	DeliveryDate   *time.Time
	PaymentDate    *time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Client    *Client    `gorm:"foreignKey:ClientID"`
	Supplier  *Supplier  `gorm:"foreignKey:SupplierID"`
	Shipments []Shipment `gorm:"foreignKey:DealID"`
}

func (Deal) TableName() string { return "broker_deals" }

// IsOpen reports whether the deal counts toward the open-deals dashboard
// figures.
func (d *Deal) IsOpen() bool {
	return d.Status != StatusCompleted && d.Status != StatusCancelled
}

// StageDate returns a pointer to the date field mapped to stage, or nil for
// stages without one (sourcing, logistics, commission).
func (d *Deal) StageDate(stage string) **time.Time {
	switch stage {
	case StageOffer:
		return &d.OfferDate
	case StageOrder:
		return &d.OrderDate
	case StageDelivery:
		return &d.DeliveryDate
	case StagePayment:
		return &d.PaymentDate
	}
	return nil
}
