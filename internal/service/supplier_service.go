package service

import (
	"context"
	"strings"
	"time"

	"github.com/munjed80/Fancy-foods-app/internal/dto"
	"github.com/munjed80/Fancy-foods-app/internal/model"
	"github.com/munjed80/Fancy-foods-app/internal/repository"
)

type SupplierService interface {
	Create(ctx context.Context, input dto.SupplierInput) (*dto.SupplierResponse, error)
	Update(ctx context.Context, id uint, input dto.SupplierInput) (*dto.SupplierResponse, error)
	Get(ctx context.Context, id uint) (*dto.SupplierResponse, error)
	List(ctx context.Context, query string) ([]dto.SupplierResponse, error)
	Delete(ctx context.Context, id uint) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func applySupplierInput(sup *model.Supplier, input dto.SupplierInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return newValidationError("name", "supplier name is required")
	}
	sup.Name = name
	sup.Country = input.Country
	sup.Phone = input.Phone
	sup.Email = input.Email
	sup.PaymentTerms = input.PaymentTerms
	sup.Notes = input.Notes
	return nil
}

func (s *supplierService) Create(ctx context.Context, input dto.SupplierInput) (*dto.SupplierResponse, error) {
	var sup model.Supplier
	if err := applySupplierInput(&sup, input); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &sup); err != nil {
		return nil, err
	}
	return supplierToResponse(&sup), nil
}

func (s *supplierService) Update(ctx context.Context, id uint, input dto.SupplierInput) (*dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	if err := applySupplierInput(sup, input); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, sup); err != nil {
		return nil, err
	}
	return supplierToResponse(sup), nil
}

func (s *supplierService) Get(ctx context.Context, id uint) (*dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return supplierToResponse(sup), nil
}

func (s *supplierService) List(ctx context.Context, query string) ([]dto.SupplierResponse, error) {
	suppliers, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		result = append(result, *supplierToResponse(&suppliers[i]))
	}
	return result, nil
}

func (s *supplierService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func supplierToResponse(sup *model.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:           sup.ID,
		Name:         sup.Name,
		Country:      sup.Country,
		Phone:        sup.Phone,
		Email:        sup.Email,
		PaymentTerms: sup.PaymentTerms,
		Notes:        sup.Notes,
		CreatedAt:    sup.CreatedAt.Format(time.RFC3339),
	}
}
