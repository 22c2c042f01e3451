package dto

// ─── Templates ───────────────────────────────────────────────────────────────

type TemplateInput struct {
	Name    string `json:"name" validate:"required,min=1"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type TemplateResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ─── Sending ─────────────────────────────────────────────────────────────────

// SendDealEmailRequest sends a deal summary to a recipient. When TemplateID is
// set, the stored template is rendered against the deal snapshot; otherwise
// Subject/Body are used as-is (after placeholder substitution).
type SendDealEmailRequest struct {
	To         string `json:"to" validate:"required,email"`
	TemplateID *uint  `json:"template_id"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	AttachPDF  bool   `json:"attach_pdf"`
}

type SentEmailResponse struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// ─── Settings ────────────────────────────────────────────────────────────────

type SettingsInput struct {
	SMTPHost   string `json:"smtp_host"`
	SMTPPort   int    `json:"smtp_port"   validate:"omitempty,min=1,max=65535"`
	SMTPSecure bool   `json:"smtp_secure"`
	SMTPUser   string `json:"smtp_user"`
	SMTPPass   string `json:"smtp_pass"`
	Language   string `json:"language"`
	Currency   string `json:"currency"`
}

type SettingsResponse struct {
	SMTPHost   string `json:"smtp_host"`
	SMTPPort   int    `json:"smtp_port"`
	SMTPSecure bool   `json:"smtp_secure"`
	SMTPUser   string `json:"smtp_user"`
	Language   string `json:"language"`
	Currency   string `json:"currency"`
}
