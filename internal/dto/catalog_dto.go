package dto

// DTOs for the catalog/registry entities: products, clients, suppliers.
// All three share the same search-by-substring filter shape.

// ─── Products ────────────────────────────────────────────────────────────────

type ProductInput struct {
	Name     string   `json:"name"      validate:"required,min=1,max=120"`
	Category *string  `json:"category"`
	Unit     *string  `json:"unit"`
	Price    *float64 `json:"price"     validate:"omitempty,min=0"`
	Stock    *float64 `json:"stock"     validate:"omitempty,min=0"`
	MinStock *float64 `json:"min_stock" validate:"omitempty,min=0"`
	Notes    string   `json:"notes"`
}

type ProductResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Unit      string  `json:"unit"`
	Price     float64 `json:"price"`
	Stock     float64 `json:"stock"`
	MinStock  float64 `json:"min_stock"`
	LowStock  bool    `json:"low_stock"`
	Notes     string  `json:"notes"`
	CreatedAt string  `json:"created_at"`
}

// ─── Clients ─────────────────────────────────────────────────────────────────

type ClientInput struct {
	Name     string `json:"name"     validate:"required,min=1,max=120"`
	Phone    string `json:"phone"`
	Whatsapp string `json:"whatsapp"`
	Email    string `json:"email"    validate:"omitempty,email"`
	City     string `json:"city"`
	Notes    string `json:"notes"`
}

type ClientResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Whatsapp  string `json:"whatsapp"`
	Email     string `json:"email"`
	City      string `json:"city"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at"`
}

// ─── Suppliers ───────────────────────────────────────────────────────────────

type SupplierInput struct {
	Name         string `json:"name"          validate:"required,min=1,max=120"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	Email        string `json:"email"         validate:"omitempty,email"`
	PaymentTerms string `json:"payment_terms"`
	Notes        string `json:"notes"`
}

type SupplierResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	PaymentTerms string `json:"payment_terms"`
	Notes        string `json:"notes"`
	CreatedAt    string `json:"created_at"`
}

// ─── Shared ──────────────────────────────────────────────────────────────────

type SearchFilter struct {
	Query string `form:"q"`
}
