package repository

import (
	"context"

	"github.com/munjed80/Fancy-foods-app/internal/model"

	"gorm.io/gorm"
)

type ShipmentRepository interface {
	Create(ctx context.Context, s *model.Shipment) error
	FindByID(ctx context.Context, id uint) (*model.Shipment, error)
	List(ctx context.Context, dealID uint) ([]model.Shipment, error)
	Update(ctx context.Context, s *model.Shipment) error
	Delete(ctx context.Context, id uint) error

	// DeleteByDealTx removes every shipment of a deal inside the cascade-delete
	// transaction opened by the deal engine.
	DeleteByDealTx(tx *gorm.DB, dealID uint) error
}

type shipmentRepo struct{ db *gorm.DB }

func NewShipmentRepository(db *gorm.DB) ShipmentRepository { return &shipmentRepo{db: db} }

func (r *shipmentRepo) Create(ctx context.Context, s *model.Shipment) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *shipmentRepo) FindByID(ctx context.Context, id uint) (*model.Shipment, error) {
	var s model.Shipment
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns shipments newest first; dealID 0 means all shipments.
func (r *shipmentRepo) List(ctx context.Context, dealID uint) ([]model.Shipment, error) {
	q := r.db.WithContext(ctx).Model(&model.Shipment{})
	if dealID != 0 {
		q = q.Where("deal_id = ?", dealID)
	}
	var shipments []model.Shipment
	err := q.Order("created_at DESC").Find(&shipments).Error
	return shipments, err
}

func (r *shipmentRepo) Update(ctx context.Context, s *model.Shipment) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *shipmentRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Shipment{}, id).Error
}

func (r *shipmentRepo) DeleteByDealTx(tx *gorm.DB, dealID uint) error {
	return tx.Where("deal_id = ?", dealID).Delete(&model.Shipment{}).Error
}
