package repository

import (
	"context"
	"errors"

	"github.com/munjed80/Fancy-foods-app/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DealRepository defines the data access contract for broker deals.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type DealRepository interface {
	Create(ctx context.Context, d *model.Deal) error
	FindByID(ctx context.Context, id uint) (*model.Deal, error)
	List(ctx context.Context, query string) ([]model.Deal, error)
	Update(ctx context.Context, d *model.Deal) error

	// Dashboard queries
	CountOpen(ctx context.Context) (int64, error)
	ListOpen(ctx context.Context, limit int) ([]model.Deal, error)

	// Used inside the cascade-delete transaction — callers pass the tx instance
	DeleteTx(tx *gorm.DB, id uint) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type dealRepo struct{ db *gorm.DB }

func NewDealRepository(db *gorm.DB) DealRepository { return &dealRepo{db: db} }

func (r *dealRepo) Create(ctx context.Context, d *model.Deal) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *dealRepo) FindByID(ctx context.Context, id uint) (*model.Deal, error) {
	var d model.Deal
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Supplier").
		Preload("Shipments").
		First(&d, id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns all deals newest-created first. A non-empty query is matched
// case-insensitively as a substring against the product name and the
// denormalized client/supplier names (ILIKE — pg collation).
func (r *dealRepo) List(ctx context.Context, query string) ([]model.Deal, error) {
	q := r.db.WithContext(ctx).Model(&model.Deal{}).
		Preload("Client").
		Preload("Supplier")

	if query != "" {
		pattern := "%" + query + "%"
		q = q.
			Joins("LEFT JOIN clients ON clients.id = broker_deals.client_id").
			Joins("LEFT JOIN suppliers ON suppliers.id = broker_deals.supplier_id").
			Where("broker_deals.product ILIKE ? OR clients.name ILIKE ? OR suppliers.name ILIKE ?",
				pattern, pattern, pattern)
	}

	var deals []model.Deal
	err := q.Order("broker_deals.created_at DESC").Find(&deals).Error
	return deals, err
}

// Update saves the deal row only. Associations are omitted: rows fetched via
// FindByID carry preloaded Client/Supplier, and letting the save walk them
// would write the stale association's primary key back over a changed
// client_id/supplier_id.
func (r *dealRepo) Update(ctx context.Context, d *model.Deal) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(d).Error
}

func (r *dealRepo) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Deal{}).
		Where("status NOT IN ?", []string{model.StatusCompleted, model.StatusCancelled}).
		Count(&count).Error
	return count, err
}

func (r *dealRepo) ListOpen(ctx context.Context, limit int) ([]model.Deal, error) {
	var deals []model.Deal
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Supplier").
		Where("status NOT IN ?", []string{model.StatusCompleted, model.StatusCancelled}).
		Order("created_at DESC").
		Limit(limit).
		Find(&deals).Error
	return deals, err
}

func (r *dealRepo) DeleteTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.Deal{}, id).Error
}

func (r *dealRepo) DB() *gorm.DB { return r.db }

// IsNotFound reports whether err is the store's missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
