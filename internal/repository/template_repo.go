package repository

import (
	"context"

	"github.com/munjed80/Fancy-foods-app/internal/model"

	"gorm.io/gorm"
)

type TemplateRepository interface {
	Create(ctx context.Context, t *model.EmailTemplate) error
	FindByID(ctx context.Context, id uint) (*model.EmailTemplate, error)
	List(ctx context.Context) ([]model.EmailTemplate, error)
	Update(ctx context.Context, t *model.EmailTemplate) error
	Delete(ctx context.Context, id uint) error
}

type templateRepo struct{ db *gorm.DB }

func NewTemplateRepository(db *gorm.DB) TemplateRepository { return &templateRepo{db: db} }

func (r *templateRepo) Create(ctx context.Context, t *model.EmailTemplate) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *templateRepo) FindByID(ctx context.Context, id uint) (*model.EmailTemplate, error) {
	var t model.EmailTemplate
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *templateRepo) List(ctx context.Context) ([]model.EmailTemplate, error) {
	var templates []model.EmailTemplate
	err := r.db.WithContext(ctx).Order("name ASC").Find(&templates).Error
	return templates, err
}

func (r *templateRepo) Update(ctx context.Context, t *model.EmailTemplate) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *templateRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.EmailTemplate{}, id).Error
}
