package repository

import (
	"context"

	"github.com/munjed80/Fancy-foods-app/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	// Get loads the singleton settings row, creating it with defaults on first
	// access.
	Get(ctx context.Context) (*model.Settings, error)
	Save(ctx context.Context, s *model.Settings) error
}

type settingsRepo struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) SettingsRepository { return &settingsRepo{db: db} }

func (r *settingsRepo) Get(ctx context.Context) (*model.Settings, error) {
	s := model.Settings{ID: 1}
	if err := r.db.WithContext(ctx).FirstOrCreate(&s, model.Settings{ID: 1}).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepo) Save(ctx context.Context, s *model.Settings) error {
	s.ID = 1
	return r.db.WithContext(ctx).Save(s).Error
}
