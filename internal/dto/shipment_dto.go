package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ShipmentInput struct {
	DealID        *uint   `json:"deal_id"`
	Carrier       string  `json:"carrier"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate *string `json:"departure_date" validate:"omitempty,datetime=2006-01-02"`
	ArrivalDate   *string `json:"arrival_date"   validate:"omitempty,datetime=2006-01-02"`
	Status        *string `json:"status"         validate:"omitempty,oneof=pending in_transit delivered"`
	TrackingRef   string  `json:"tracking_ref"`
	Notes         string  `json:"notes"`
}

type ShipmentFilter struct {
	DealID uint `form:"deal_id"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ShipmentResponse struct {
	ID            uint    `json:"id"`
	DealID        *uint   `json:"deal_id"`
	Carrier       string  `json:"carrier"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate *string `json:"departure_date"`
	ArrivalDate   *string `json:"arrival_date"`
	Status        string  `json:"status"`
	TrackingRef   string  `json:"tracking_ref"`
	Notes         string  `json:"notes"`
	CreatedAt     string  `json:"created_at"`
}
