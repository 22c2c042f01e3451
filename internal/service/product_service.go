package service

import (
	"context"
	"strings"
	"time"

	"github.com/munjed80/Fancy-foods-app/internal/dto"
	"github.com/munjed80/Fancy-foods-app/internal/model"
	"github.com/munjed80/Fancy-foods-app/internal/repository"
)

type ProductService interface {
	Create(ctx context.Context, input dto.ProductInput) (*dto.ProductResponse, error)
	Update(ctx context.Context, id uint, input dto.ProductInput) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uint) (*dto.ProductResponse, error)
	List(ctx context.Context, query string) ([]dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func applyProductInput(p *model.Product, input dto.ProductInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return newValidationError("name", "product name is required")
	}
	p.Name = name
	p.Category = "nuts"
	if input.Category != nil {
		p.Category = *input.Category
	}
	p.Unit = "kg"
	if input.Unit != nil {
		p.Unit = *input.Unit
	}
	p.Price = 0
	if input.Price != nil {
		p.Price = *input.Price
	}
	p.Stock = 0
	if input.Stock != nil {
		p.Stock = *input.Stock
	}
	p.MinStock = 0
	if input.MinStock != nil {
		p.MinStock = *input.MinStock
	}
	p.Notes = input.Notes
	return nil
}

func (s *productService) Create(ctx context.Context, input dto.ProductInput) (*dto.ProductResponse, error) {
	var p model.Product
	if err := applyProductInput(&p, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return productToResponse(&p), nil
}

func (s *productService) Update(ctx context.Context, id uint, input dto.ProductInput) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if err := applyProductInput(p, input); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Get(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context, query string) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, *productToResponse(&products[i]))
	}
	return result, nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Unit:      p.Unit,
		Price:     p.Price,
		Stock:     p.Stock,
		MinStock:  p.MinStock,
		LowStock:  p.LowStock(),
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
