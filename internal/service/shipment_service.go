package service

import (
	"context"
	"time"

	"github.com/munjed80/Fancy-foods-app/internal/dto"
	"github.com/munjed80/Fancy-foods-app/internal/model"
	"github.com/munjed80/Fancy-foods-app/internal/repository"
)

type ShipmentService interface {
	Create(ctx context.Context, input dto.ShipmentInput) (*dto.ShipmentResponse, error)
	Update(ctx context.Context, id uint, input dto.ShipmentInput) (*dto.ShipmentResponse, error)
	Get(ctx context.Context, id uint) (*dto.ShipmentResponse, error)
	List(ctx context.Context, dealID uint) ([]dto.ShipmentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type shipmentService struct {
	repo repository.ShipmentRepository
}

func NewShipmentService(repo repository.ShipmentRepository) ShipmentService {
	return &shipmentService{repo: repo}
}

func applyShipmentInput(sh *model.Shipment, input dto.ShipmentInput) {
	sh.DealID = input.DealID
	sh.Carrier = input.Carrier
	sh.Origin = input.Origin
	sh.Destination = input.Destination
	sh.DepartureDate = parseDate(input.DepartureDate)
	sh.ArrivalDate = parseDate(input.ArrivalDate)
	sh.Status = model.ShipmentPending
	if input.Status != nil {
		sh.Status = *input.Status
	}
	sh.TrackingRef = input.TrackingRef
	sh.Notes = input.Notes
}

func (s *shipmentService) Create(ctx context.Context, input dto.ShipmentInput) (*dto.ShipmentResponse, error) {
	var sh model.Shipment
	applyShipmentInput(&sh, input)
	if err := s.repo.Create(ctx, &sh); err != nil {
		return nil, err
	}
	return shipmentToResponse(&sh), nil
}

func (s *shipmentService) Update(ctx context.Context, id uint, input dto.ShipmentInput) (*dto.ShipmentResponse, error) {
	sh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrShipmentNotFound
		}
		return nil, err
	}
	applyShipmentInput(sh, input)
	if err := s.repo.Update(ctx, sh); err != nil {
		return nil, err
	}
	return shipmentToResponse(sh), nil
}

func (s *shipmentService) Get(ctx context.Context, id uint) (*dto.ShipmentResponse, error) {
	sh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return shipmentToResponse(sh), nil
}

func (s *shipmentService) List(ctx context.Context, dealID uint) ([]dto.ShipmentResponse, error) {
	shipments, err := s.repo.List(ctx, dealID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ShipmentResponse, 0, len(shipments))
	for i := range shipments {
		result = append(result, *shipmentToResponse(&shipments[i]))
	}
	return result, nil
}

func (s *shipmentService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func shipmentToResponse(sh *model.Shipment) *dto.ShipmentResponse {
	return &dto.ShipmentResponse{
		ID:            sh.ID,
		DealID:        sh.DealID,
		Carrier:       sh.Carrier,
		Origin:        sh.Origin,
		Destination:   sh.Destination,
		DepartureDate: formatDate(sh.DepartureDate),
		ArrivalDate:   formatDate(sh.ArrivalDate),
		Status:        sh.Status,
		TrackingRef:   sh.TrackingRef,
		Notes:         sh.Notes,
		CreatedAt:     sh.CreatedAt.Format(time.RFC3339),
	}
}
