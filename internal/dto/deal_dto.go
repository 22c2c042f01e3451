package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// DealInput is used for both create and update. Numeric fields are pointers so
// the engine can tell "absent" (apply default) from an explicit zero. Dates are
// YYYY-MM-DD strings; on update the engine writes exactly what is sent, so a
// caller that omits a previously set date clears it.
type DealInput struct {
	ClientID       *uint    `json:"client_id"`
	SupplierID     *uint    `json:"supplier_id"`
	Product        string   `json:"product"         validate:"required"`
	Quantity       *float64 `json:"quantity"        validate:"omitempty,min=0"`
	PricePerTon    *float64 `json:"price_per_ton"   validate:"omitempty,min=0"`
	CommissionRate *float64 `json:"commission_rate" validate:"omitempty,min=0"`
	Stage          *string  `json:"stage"           validate:"omitempty,oneof=offer order sourcing logistics delivery payment commission"`
	Status         *string  `json:"status"`
	OfferDate      *string  `json:"offer_date"      validate:"omitempty,datetime=2006-01-02"`
	OrderDate      *string  `json:"order_date"      validate:"omitempty,datetime=2006-01-02"`
	DeliveryDate   *string  `json:"delivery_date"   validate:"omitempty,datetime=2006-01-02"`
	PaymentDate    *string  `json:"payment_date"    validate:"omitempty,datetime=2006-01-02"`
	Notes          string   `json:"notes"`
}

// UpdateStageRequest moves a deal to a new stage. Status is optional; when
// omitted the stage name is reused as the status.
type UpdateStageRequest struct {
	Stage  string  `json:"stage"  validate:"required,oneof=offer order sourcing logistics delivery payment commission"`
	Status *string `json:"status"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type DealFilter struct {
	Query string `form:"q"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DealResponse struct {
	ID             uint               `json:"id"`
	ClientID       *uint              `json:"client_id"`
	SupplierID     *uint              `json:"supplier_id"`
	Product        string             `json:"product"`
	Quantity       float64            `json:"quantity"`
	PricePerTon    float64            `json:"price_per_ton"`
	TotalValue     float64            `json:"total_value"`
	CommissionRate float64            `json:"commission_rate"`
	Commission     float64            `json:"commission"`
	Stage          string             `json:"stage"`
	Status         string             `json:"status"`
	OfferDate      *string            `json:"offer_date"`
	OrderDate      *string            `json:"order_date"`
	DeliveryDate   *string            `json:"delivery_date"`
	PaymentDate    *string            `json:"payment_date"`
	Notes          string             `json:"notes"`
	CreatedAt      string             `json:"created_at"`
	UpdatedAt      string             `json:"updated_at"`
	ClientName     *string            `json:"client_name,omitempty"`
	SupplierName   *string            `json:"supplier_name,omitempty"`
	Shipments      []ShipmentResponse `json:"shipments"`
}
