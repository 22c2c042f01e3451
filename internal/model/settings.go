package model

// Settings is the single persisted configuration row (id is always 1).
// SMTP credentials plus display preferences. The in-memory copy lives in
// service.SettingsService and is refreshed explicitly on save.
type Settings struct {
	ID         uint   `gorm:"primaryKey"`
	SMTPHost   string `gorm:"not null;default:'smtp-mail.outlook.com'"`
	SMTPPort   int    `gorm:"not null;default:587"`
	SMTPSecure bool   `gorm:"not null;default:false"`
	SMTPUser   string
	SMTPPass   string
	Language   string `gorm:"not null;default:'en'"`
	Currency   string `gorm:"not null;default:'USD'"`
}

func (Settings) TableName() string { return "app_settings" }
