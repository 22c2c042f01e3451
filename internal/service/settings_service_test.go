package service

import (
	"context"
	"testing"

	"github.com/munjed80/Fancy-foods-app/internal/dto"
	"github.com/munjed80/Fancy-foods-app/internal/model"
	"github.com/munjed80/Fancy-foods-app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSettingsRepo mimics the singleton row with first-access defaults.
type stubSettingsRepo struct {
	row *model.Settings
}

func (r *stubSettingsRepo) Get(_ context.Context) (*model.Settings, error) {
	if r.row == nil {
		r.row = &model.Settings{
			ID:       1,
			SMTPHost: "smtp-mail.outlook.com",
			SMTPPort: 587,
			Language: "en",
			Currency: "USD",
		}
	}
	copied := *r.row
	return &copied, nil
}

func (r *stubSettingsRepo) Save(_ context.Context, s *model.Settings) error {
	copied := *s
	r.row = &copied
	return nil
}

var _ repository.SettingsRepository = (*stubSettingsRepo)(nil)

func TestSettingsLoadedOnConstruction(t *testing.T) {
	svc, err := NewSettingsService(context.Background(), &stubSettingsRepo{})
	require.NoError(t, err)

	current := svc.Current()
	assert.Equal(t, "smtp-mail.outlook.com", current.SMTPHost)
	assert.Equal(t, 587, current.SMTPPort)
	assert.Equal(t, "USD", current.Currency)
}

func TestSaveSettingsKeepsPasswordWhenBlank(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc, err := NewSettingsService(context.Background(), repo)
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), dto.SettingsInput{
		SMTPHost: "smtp.example.com",
		SMTPPort: 465,
		SMTPUser: "mail@example.com",
		SMTPPass: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "secret", svc.Current().SMTPPass)

	// Saving again with a blank password must not wipe the stored one.
	_, err = svc.Save(context.Background(), dto.SettingsInput{
		SMTPHost: "smtp.example.com",
		SMTPPort: 465,
		SMTPUser: "mail@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "secret", svc.Current().SMTPPass)
}

func TestSettingsResponseHidesPassword(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc, err := NewSettingsService(context.Background(), repo)
	require.NoError(t, err)

	resp, err := svc.Save(context.Background(), dto.SettingsInput{
		SMTPHost: "smtp.example.com",
		SMTPPort: 587,
		SMTPPass: "secret",
	})
	require.NoError(t, err)

	// SettingsResponse has no password field; the saved value stays internal.
	assert.Equal(t, "smtp.example.com", resp.SMTPHost)
	assert.Equal(t, "secret", svc.Current().SMTPPass)
}

func TestSaveSettingsKeepsDisplayDefaultsWhenBlank(t *testing.T) {
	svc, err := NewSettingsService(context.Background(), &stubSettingsRepo{})
	require.NoError(t, err)

	resp, err := svc.Save(context.Background(), dto.SettingsInput{SMTPHost: "smtp.example.com"})
	require.NoError(t, err)

	assert.Equal(t, "en", resp.Language)
	assert.Equal(t, "USD", resp.Currency)
}

func TestCurrentReturnsCopy(t *testing.T) {
	svc, err := NewSettingsService(context.Background(), &stubSettingsRepo{})
	require.NoError(t, err)

	first := svc.Current()
	first.Currency = "EUR"
	assert.Equal(t, "USD", svc.Current().Currency)
}
