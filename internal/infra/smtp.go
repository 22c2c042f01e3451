package infra

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/munjed80/Fancy-foods-app/internal/model"

	"github.com/jordan-wright/email"
)

// Mailer sends HTML mail through the SMTP account stored in settings. The
// account is read per send so a settings save takes effect without a restart.
type Mailer struct{}

func NewMailer() *Mailer { return &Mailer{} }

// Send delivers an HTML email, optionally attaching files (deal PDFs). Returns
// an error when the SMTP account is not configured yet.
func (m *Mailer) Send(set *model.Settings, to, subject, htmlBody string, attachments []string) error {
	if set.SMTPUser == "" || set.SMTPPass == "" {
		return fmt.Errorf("mailer: SMTP settings not configured")
	}

	e := email.NewEmail()
	e.From = set.SMTPUser
	e.To = []string{to}
	e.Subject = subject
	e.HTML = []byte(htmlBody)

	for _, path := range attachments {
		if _, err := e.AttachFile(path); err != nil {
			return fmt.Errorf("mailer: attach %s: %w", path, err)
		}
	}

	addr := fmt.Sprintf("%s:%d", set.SMTPHost, set.SMTPPort)
	auth := smtp.PlainAuth("", set.SMTPUser, set.SMTPPass, set.SMTPHost)
	if set.SMTPSecure {
		return e.SendWithTLS(addr, auth, &tls.Config{ServerName: set.SMTPHost})
	}
	return e.Send(addr, auth)
}
