package model

import "time"

// Shipment statuses.
const (
	ShipmentPending   = "pending"
	ShipmentInTransit = "in_transit"
	ShipmentDelivered = "delivered"
)

// Shipment is a logistics record optionally linked to one deal. A deal may
// have any number of shipments; they are removed together with the parent
// deal via an explicit two-step delete (no reliance on DB-level cascade).
type Shipment struct {
	ID            uint  `gorm:"primaryKey"`
	DealID        *uint `gorm:"index"`
	Carrier       string
	Origin        string
	Destination   string
	DepartureDate *time.Time
	ArrivalDate   *time.Time
	Status        string `gorm:"not null;default:'pending'"`
	TrackingRef   string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Deal *Deal `gorm:"foreignKey:DealID"`
}
