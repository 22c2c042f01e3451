package service

import (
	"context"
	"sync"

	"github.com/munjed80/Fancy-foods-app/internal/dto"
	"github.com/munjed80/Fancy-foods-app/internal/model"
	"github.com/munjed80/Fancy-foods-app/internal/repository"
)

// SettingsService is the process-wide mirror of the persisted settings row.
// Lifecycle: loaded once at startup, refreshed on every save (or an explicit
// Refresh). It is passed to the components that need it — never a package
// global.
type SettingsService interface {
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	Save(ctx context.Context, input dto.SettingsInput) (*dto.SettingsResponse, error)
	Refresh(ctx context.Context) error

	// Current returns a copy of the cached row for mailer/document rendering.
	Current() *model.Settings
}

type settingsService struct {
	repo repository.SettingsRepository

	mu      sync.RWMutex
	current model.Settings
}

// NewSettingsService loads the settings row immediately so Current never
// serves an empty struct.
func NewSettingsService(ctx context.Context, repo repository.SettingsRepository) (SettingsService, error) {
	s := &settingsService{repo: repo}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *settingsService) Refresh(ctx context.Context) error {
	set, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.current = *set
	s.mu.Unlock()
	return nil
}

func (s *settingsService) Current() *model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := s.current
	return &set
}

func (s *settingsService) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	return settingsToResponse(s.Current()), nil
}

func (s *settingsService) Save(ctx context.Context, input dto.SettingsInput) (*dto.SettingsResponse, error) {
	set := s.Current()
	set.SMTPHost = input.SMTPHost
	set.SMTPPort = input.SMTPPort
	set.SMTPSecure = input.SMTPSecure
	set.SMTPUser = input.SMTPUser
	// An empty password means "keep the stored one" so the UI never has to
	// echo credentials back.
	if input.SMTPPass != "" {
		set.SMTPPass = input.SMTPPass
	}
	if input.Language != "" {
		set.Language = input.Language
	}
	if input.Currency != "" {
		set.Currency = input.Currency
	}

	if err := s.repo.Save(ctx, set); err != nil {
		return nil, err
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return settingsToResponse(s.Current()), nil
}

// settingsToResponse never exposes the SMTP password.
func settingsToResponse(set *model.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		SMTPHost:   set.SMTPHost,
		SMTPPort:   set.SMTPPort,
		SMTPSecure: set.SMTPSecure,
		SMTPUser:   set.SMTPUser,
		Language:   set.Language,
		Currency:   set.Currency,
	}
}
