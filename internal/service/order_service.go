package service

import (
	"context"
	"time"

	"github.com/munjed80/Fancy-foods-app/internal/dto"
	"github.com/munjed80/Fancy-foods-app/internal/model"
	"github.com/munjed80/Fancy-foods-app/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderService interface {
	Create(ctx context.Context, input dto.OrderInput) (*dto.OrderResponse, error)
	Update(ctx context.Context, id uint, input dto.OrderInput) (*dto.OrderResponse, error)
	Get(ctx context.Context, id uint) (*dto.OrderResponse, error)
	List(ctx context.Context, query string) ([]dto.OrderResponse, error)
	Delete(ctx context.Context, id uint) error
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

// orderTotal sums the line items with decimal arithmetic so many small lines
// cannot drift, then stores the result as float64 like every other money
// column.
func orderTotal(items []dto.OrderItemInput) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromFloat(item.Quantity))
		total = total.Add(line)
	}
	f, _ := total.Float64()
	return f
}

func applyOrderInput(o *model.Order, input dto.OrderInput) {
	o.ClientID = input.ClientID
	o.OrderDate = parseDate(input.OrderDate)
	if o.OrderDate == nil {
		o.OrderDate = todayPtr()
	}
	o.Status = model.OrderPending
	if input.Status != nil {
		o.Status = *input.Status
	}
	o.Notes = input.Notes
	o.TotalPrice = orderTotal(input.Items)

	o.Items = make([]model.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		o.Items = append(o.Items, model.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
}

func (s *orderService) Create(ctx context.Context, input dto.OrderInput) (*dto.OrderResponse, error) {
	var order model.Order
	applyOrderInput(&order, input)
	if err := s.repo.Create(ctx, &order); err != nil {
		return nil, err
	}
	return orderToResponse(&order), nil
}

func (s *orderService) Update(ctx context.Context, id uint, input dto.OrderInput) (*dto.OrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	applyOrderInput(order, input)
	// Re-key replacement items to this order; the repository swaps the item
	// set inside one transaction. The preloaded client is dropped so the save
	// writes the client_id the caller supplied.
	order.Client = nil
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return orderToResponse(order), nil
}

func (s *orderService) Get(ctx context.Context, id uint) (*dto.OrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	resp := orderToResponse(order)
	resp.Items = make([]dto.OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		ir := dto.OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if item.Product != nil {
			ir.ProductName = item.Product.Name
			ir.ProductUnit = item.Product.Unit
		}
		resp.Items = append(resp.Items, ir)
	}
	return resp, nil
}

func (s *orderService) List(ctx context.Context, query string) ([]dto.OrderResponse, error) {
	orders, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	result := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, *orderToResponse(&orders[i]))
	}
	return result, nil
}

// Delete removes the order and its items; missing ids are a no-op.
func (s *orderService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func orderToResponse(o *model.Order) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:         o.ID,
		ClientID:   o.ClientID,
		OrderDate:  formatDate(o.OrderDate),
		TotalPrice: o.TotalPrice,
		Status:     o.Status,
		Notes:      o.Notes,
		CreatedAt:  o.CreatedAt.Format(time.RFC3339),
	}
	if o.Client != nil {
		resp.ClientName = &o.Client.Name
	}
	return resp
}
