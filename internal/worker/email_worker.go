package worker

// email_worker.go
// Processes outgoing-mail jobs from QueueEmail: sends the rendered deal email
// via SMTP (account from the settings mirror) and archives a copy on disk.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/munjed80/Fancy-foods-app/internal/infra"
	"github.com/munjed80/Fancy-foods-app/internal/model"

	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	To          string   `json:"to"`
	Subject     string   `json:"subject"`
	Body        string   `json:"body"`
	Attachments []string `json:"attachments,omitempty"`
}

// SettingsProvider yields the current SMTP account. Satisfied by
// service.SettingsService; an interface here keeps the dependency one-way.
type SettingsProvider interface {
	Current() *model.Settings
}

type EmailWorker struct {
	mailer   *infra.Mailer
	archive  *infra.EmailArchive
	settings SettingsProvider
}

func NewEmailWorker(mailer *infra.Mailer, archive *infra.EmailArchive, settings SettingsProvider) *EmailWorker {
	return &EmailWorker{mailer: mailer, archive: archive, settings: settings}
}

// Process sends the email and writes the archive copy. Failures are logged,
// not retried — the operator re-sends from the UI if needed.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if payload.To == "" {
		log.Warn().Msg("email_worker: empty recipient — skipping")
		return
	}

	set := w.settings.Current()
	if err := w.mailer.Send(set, payload.To, payload.Subject, payload.Body, payload.Attachments); err != nil {
		log.Error().Err(err).Str("to", payload.To).Msg("email_worker: failed to send email")
		return
	}

	if _, err := w.archive.Save(payload.To, payload.Subject, payload.Body, time.Now()); err != nil {
		log.Warn().Err(err).Msg("email_worker: failed to archive sent email")
	}
	log.Info().Str("to", payload.To).Msg("email_worker: email sent")
}
