package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OrderItemInput struct {
	ProductID *uint   `json:"product_id"`
	Quantity  float64 `json:"quantity" validate:"min=0"`
	Price     float64 `json:"price"    validate:"min=0"`
}

// OrderInput creates or replaces an order. Items are replaced wholesale on
// update. TotalPrice is always recomputed from the items server-side.
type OrderInput struct {
	ClientID  *uint            `json:"client_id"`
	OrderDate *string          `json:"order_date" validate:"omitempty,datetime=2006-01-02"`
	Status    *string          `json:"status"     validate:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
	Notes     string           `json:"notes"`
	Items     []OrderItemInput `json:"items" validate:"dive"`
}

type OrderFilter struct {
	Query string `form:"q"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderItemResponse struct {
	ID          uint    `json:"id"`
	ProductID   *uint   `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	ProductUnit string  `json:"product_unit,omitempty"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
}

type OrderResponse struct {
	ID         uint                `json:"id"`
	ClientID   *uint               `json:"client_id"`
	ClientName *string             `json:"client_name,omitempty"`
	OrderDate  *string             `json:"order_date"`
	TotalPrice float64             `json:"total_price"`
	Status     string              `json:"status"`
	Notes      string              `json:"notes"`
	CreatedAt  string              `json:"created_at"`
	Items      []OrderItemResponse `json:"items,omitempty"`
}
