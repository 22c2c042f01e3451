package service

import (
	"context"

	"github.com/munjed80/Fancy-foods-app/internal/infra"
	"github.com/munjed80/Fancy-foods-app/internal/model"
	"github.com/munjed80/Fancy-foods-app/internal/repository"
)

// DocumentService renders deal confirmation PDFs from the deal's current
// snapshot. It reads through the deal repository only — the document layer
// never mutates anything.
type DocumentService interface {
	GenerateDealPDF(ctx context.Context, dealID uint) (string, error)
}

type documentService struct {
	dealRepo repository.DealRepository
	settings SettingsService
	pdfPath  string
}

func NewDocumentService(dealRepo repository.DealRepository, settings SettingsService, pdfPath string) DocumentService {
	return &documentService{dealRepo: dealRepo, settings: settings, pdfPath: pdfPath}
}

func (s *documentService) GenerateDealPDF(ctx context.Context, dealID uint) (string, error) {
	deal, err := s.dealRepo.FindByID(ctx, dealID)
	if err != nil {
		if repository.IsNotFound(err) {
			return "", ErrDealNotFound
		}
		return "", err
	}

	clientName, supplierName := "", ""
	if deal.Client != nil {
		clientName = deal.Client.Name
	}
	if deal.Supplier != nil {
		supplierName = deal.Supplier.Name
	}

	return infra.GenerateDealPDF(deal, clientName, supplierName,
		latestShipment(deal.Shipments), s.settings.Current().Currency, s.pdfPath)
}

// latestShipment picks the most recently created shipment, nil when none.
func latestShipment(shipments []model.Shipment) *model.Shipment {
	var latest *model.Shipment
	for i := range shipments {
		sh := &shipments[i]
		if latest == nil || sh.CreatedAt.After(latest.CreatedAt) {
			latest = sh
		}
	}
	return latest
}
