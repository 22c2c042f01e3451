package service

import (
	"context"
	"testing"
	"time"

	"github.com/munjed80/Fancy-foods-app/internal/dto"
	"github.com/munjed80/Fancy-foods-app/internal/model"
	"github.com/munjed80/Fancy-foods-app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubOrderRepo struct {
	orders map[uint]*model.Order
	nextID uint
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uint]*model.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *model.Order) error {
	r.nextID++
	o.ID = r.nextID
	o.CreatedAt = time.Now()
	copied := *o
	r.orders[o.ID] = &copied
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uint) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *o
	return &copied, nil
}

func (r *stubOrderRepo) List(_ context.Context, _ string) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOrderRepo) Update(_ context.Context, o *model.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *o
	r.orders[o.ID] = &copied
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id uint) error {
	delete(r.orders, id)
	return nil
}

func (r *stubOrderRepo) CountPending(_ context.Context) (int64, error) {
	var n int64
	for _, o := range r.orders {
		if o.Status == model.OrderPending {
			n++
		}
	}
	return n, nil
}

func (r *stubOrderRepo) ListPending(_ context.Context, limit int) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		if o.Status == model.OrderPending && len(out) < limit {
			out = append(out, *o)
		}
	}
	return out, nil
}

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

type stubProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uint]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.nextID++
	p.ID = r.nextID
	copied := *p
	r.products[p.ID] = &copied
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *stubProductRepo) List(_ context.Context, _ string) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	copied := *p
	r.products[p.ID] = &copied
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *stubProductRepo) CountLowStock(_ context.Context) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.LowStock() {
			n++
		}
	}
	return n, nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

type stubClientRepo struct{ clients map[uint]*model.Client }

func (r *stubClientRepo) Create(_ context.Context, _ *model.Client) error { return nil }
func (r *stubClientRepo) FindByID(_ context.Context, _ uint) (*model.Client, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *stubClientRepo) List(_ context.Context, _ string) ([]model.Client, error) { return nil, nil }
func (r *stubClientRepo) Update(_ context.Context, _ *model.Client) error          { return nil }
func (r *stubClientRepo) Delete(_ context.Context, _ uint) error                   { return nil }
func (r *stubClientRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.clients)), nil
}

var _ repository.ClientRepository = (*stubClientRepo)(nil)

type stubSupplierRepo struct{ suppliers map[uint]*model.Supplier }

func (r *stubSupplierRepo) Create(_ context.Context, _ *model.Supplier) error { return nil }
func (r *stubSupplierRepo) FindByID(_ context.Context, _ uint) (*model.Supplier, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *stubSupplierRepo) List(_ context.Context, _ string) ([]model.Supplier, error) {
	return nil, nil
}
func (r *stubSupplierRepo) Update(_ context.Context, _ *model.Supplier) error { return nil }
func (r *stubSupplierRepo) Delete(_ context.Context, _ uint) error            { return nil }
func (r *stubSupplierRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.suppliers)), nil
}

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestSnapshotCountsOpenDeals(t *testing.T) {
	dealRepo := newStubDealRepo()
	orderRepo := newStubOrderRepo()

	deals := []*model.Deal{
		{Product: "Walnuts", Status: model.StatusDraft},
		{Product: "Almonds", Status: model.StatusOpen},
		{Product: "Cashews", Status: model.StatusCompleted},
	}
	for _, d := range deals {
		require.NoError(t, dealRepo.Create(context.Background(), d))
	}

	svc := NewWorkflowService(dealRepo, orderRepo, newStubProductRepo(),
		&stubClientRepo{}, &stubSupplierRepo{}, nil, 0)

	snap, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), snap.OpenDealsCount)
	assert.Len(t, snap.OpenBrokerDeals, 2)
}

func TestSnapshotCountsPendingOrders(t *testing.T) {
	orderRepo := newStubOrderRepo()
	for _, status := range []string{model.OrderPending, model.OrderPending, model.OrderDelivered} {
		require.NoError(t, orderRepo.Create(context.Background(), &model.Order{Status: status}))
	}

	svc := NewWorkflowService(newStubDealRepo(), orderRepo, newStubProductRepo(),
		&stubClientRepo{}, &stubSupplierRepo{}, nil, 0)

	snap, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), snap.PendingOrdersCount)
	assert.Len(t, snap.RecentOrders, 2)
}

// Low-stock boundary: a product exactly at its minimum counts, a product with
// no configured minimum never does.
func TestSnapshotLowStockBoundary(t *testing.T) {
	productRepo := newStubProductRepo()
	products := []*model.Product{
		{Name: "Walnuts", Stock: 5, MinStock: 5},
		{Name: "Almonds", Stock: 4, MinStock: 5},
		{Name: "Cashews", Stock: 6, MinStock: 5},
		{Name: "Peanuts", Stock: 0, MinStock: 0},
	}
	for _, p := range products {
		require.NoError(t, productRepo.Create(context.Background(), p))
	}

	svc := NewWorkflowService(newStubDealRepo(), newStubOrderRepo(), productRepo,
		&stubClientRepo{}, &stubSupplierRepo{}, nil, 0)

	snap, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), snap.LowStockCount)
	assert.Equal(t, int64(4), snap.TotalProducts)
}

func TestSnapshotEmptyStore(t *testing.T) {
	svc := NewWorkflowService(newStubDealRepo(), newStubOrderRepo(), newStubProductRepo(),
		&stubClientRepo{}, &stubSupplierRepo{}, nil, 0)

	snap, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &dto.WorkflowSnapshot{
		RecentOrders:    []dto.OrderResponse{},
		OpenBrokerDeals: []dto.DealResponse{},
	}, snap)
}
