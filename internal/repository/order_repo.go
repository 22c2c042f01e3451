package repository

import (
	"context"

	"github.com/munjed80/Fancy-foods-app/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	List(ctx context.Context, query string) ([]model.Order, error)

	// Update saves the order row and replaces its items wholesale, in one
	// transaction (delete existing items, insert the new set).
	Update(ctx context.Context, o *model.Order) error
	Delete(ctx context.Context, id uint) error

	// Dashboard queries
	CountPending(ctx context.Context) (int64, error)
	ListPending(ctx context.Context, limit int) ([]model.Order, error)
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Items").
		Preload("Items.Product").
		First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) List(ctx context.Context, query string) ([]model.Order, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{}).Preload("Client")
	if query != "" {
		q = q.
			Joins("LEFT JOIN clients ON clients.id = orders.client_id").
			Where("clients.name ILIKE ? OR CAST(orders.id AS TEXT) LIKE ?",
				"%"+query+"%", "%"+query+"%")
	}
	var orders []model.Order
	err := q.Order("orders.order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) Update(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", o.ID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		// Base row only. Saving the preloaded Client association would write
		// the old client back over a changed client_id, so the replacement
		// items are inserted explicitly instead of through the save.
		if err := tx.Omit(clause.Associations).Save(o).Error; err != nil {
			return err
		}
		if len(o.Items) == 0 {
			return nil
		}
		for i := range o.Items {
			o.Items[i].OrderID = o.ID
		}
		return tx.Create(&o.Items).Error
	})
}

func (r *orderRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Order{}, id).Error
	})
}

func (r *orderRepo) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("status = ?", model.OrderPending).
		Count(&count).Error
	return count, err
}

func (r *orderRepo) ListPending(ctx context.Context, limit int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("status = ?", model.OrderPending).
		Order("order_date DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}
