package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/munjed80/Fancy-foods-app/internal/dto"
	"github.com/munjed80/Fancy-foods-app/internal/infra"
	"github.com/munjed80/Fancy-foods-app/internal/model"
	"github.com/munjed80/Fancy-foods-app/internal/repository"
	"github.com/munjed80/Fancy-foods-app/internal/worker"

	"github.com/shopspring/decimal"
)

// EmailService owns the template registry and outgoing deal mail. Sending is
// asynchronous: the rendered message goes onto the redis queue and the worker
// pool delivers it.
type EmailService interface {
	CreateTemplate(ctx context.Context, input dto.TemplateInput) (*dto.TemplateResponse, error)
	UpdateTemplate(ctx context.Context, id uint, input dto.TemplateInput) (*dto.TemplateResponse, error)
	ListTemplates(ctx context.Context) ([]dto.TemplateResponse, error)
	DeleteTemplate(ctx context.Context, id uint) error

	SendDealEmail(ctx context.Context, dealID uint, req dto.SendDealEmailRequest) error
	ListSent(ctx context.Context) ([]dto.SentEmailResponse, error)
}

type emailService struct {
	templateRepo repository.TemplateRepository
	dealRepo     repository.DealRepository
	documents    DocumentService
	settings     SettingsService
	archive      *infra.EmailArchive
	dispatcher   *worker.Dispatcher
}

func NewEmailService(
	templateRepo repository.TemplateRepository,
	dealRepo repository.DealRepository,
	documents DocumentService,
	settings SettingsService,
	archive *infra.EmailArchive,
	dispatcher *worker.Dispatcher,
) EmailService {
	return &emailService{
		templateRepo: templateRepo,
		dealRepo:     dealRepo,
		documents:    documents,
		settings:     settings,
		archive:      archive,
		dispatcher:   dispatcher,
	}
}

// ── Templates ────────────────────────────────────────────────────────────────

func (s *emailService) CreateTemplate(ctx context.Context, input dto.TemplateInput) (*dto.TemplateResponse, error) {
	t := model.EmailTemplate{Name: input.Name, Subject: input.Subject, Body: input.Body}
	if err := s.templateRepo.Create(ctx, &t); err != nil {
		return nil, err
	}
	return templateToResponse(&t), nil
}

func (s *emailService) UpdateTemplate(ctx context.Context, id uint, input dto.TemplateInput) (*dto.TemplateResponse, error) {
	t, err := s.templateRepo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	t.Name = input.Name
	t.Subject = input.Subject
	t.Body = input.Body
	if err := s.templateRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return templateToResponse(t), nil
}

func (s *emailService) ListTemplates(ctx context.Context) ([]dto.TemplateResponse, error) {
	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TemplateResponse, 0, len(templates))
	for i := range templates {
		result = append(result, *templateToResponse(&templates[i]))
	}
	return result, nil
}

func (s *emailService) DeleteTemplate(ctx context.Context, id uint) error {
	return s.templateRepo.Delete(ctx, id)
}

// ── Sending ──────────────────────────────────────────────────────────────────

func (s *emailService) SendDealEmail(ctx context.Context, dealID uint, req dto.SendDealEmailRequest) error {
	deal, err := s.dealRepo.FindByID(ctx, dealID)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrDealNotFound
		}
		return err
	}

	subject, body := req.Subject, req.Body
	if req.TemplateID != nil {
		t, err := s.templateRepo.FindByID(ctx, *req.TemplateID)
		if err != nil {
			if repository.IsNotFound(err) {
				return ErrTemplateNotFound
			}
			return err
		}
		subject, body = t.Subject, t.Body
	}
	if strings.TrimSpace(subject) == "" {
		return newValidationError("subject", "email subject is required")
	}

	replacer := dealPlaceholders(deal, s.settings.Current().Currency)
	subject = replacer.Replace(subject)
	body = replacer.Replace(body)

	var attachments []string
	if req.AttachPDF {
		path, err := s.documents.GenerateDealPDF(ctx, dealID)
		if err != nil {
			return err
		}
		attachments = append(attachments, path)
	}

	return s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
		To:          req.To,
		Subject:     subject,
		Body:        body,
		Attachments: attachments,
	})
}

func (s *emailService) ListSent(ctx context.Context) ([]dto.SentEmailResponse, error) {
	sent, err := s.archive.List()
	if err != nil {
		return nil, err
	}
	result := make([]dto.SentEmailResponse, 0, len(sent))
	for _, e := range sent {
		result = append(result, dto.SentEmailResponse{Name: e.Name, Path: e.Path})
	}
	return result, nil
}

// dealPlaceholders builds the {{token}} substitution set available to
// templates. Money tokens are formatted for display only — stored values are
// never rounded.
func dealPlaceholders(deal *model.Deal, currency string) *strings.Replacer {
	clientName, supplierName := "", ""
	if deal.Client != nil {
		clientName = deal.Client.Name
	}
	if deal.Supplier != nil {
		supplierName = deal.Supplier.Name
	}
	return strings.NewReplacer(
		"{{id}}", fmt.Sprintf("%d", deal.ID),
		"{{product}}", deal.Product,
		"{{quantity}}", fmt.Sprintf("%g", deal.Quantity),
		"{{price_per_ton}}", currency+" "+decimal.NewFromFloat(deal.PricePerTon).StringFixed(2),
		"{{total_value}}", currency+" "+decimal.NewFromFloat(deal.TotalValue).StringFixed(2),
		"{{commission}}", currency+" "+decimal.NewFromFloat(deal.Commission).StringFixed(2),
		"{{client_name}}", clientName,
		"{{supplier_name}}", supplierName,
		"{{stage}}", deal.Stage,
		"{{status}}", deal.Status,
		"{{notes}}", deal.Notes,
	)
}

func templateToResponse(t *model.EmailTemplate) *dto.TemplateResponse {
	return &dto.TemplateResponse{ID: t.ID, Name: t.Name, Subject: t.Subject, Body: t.Body}
}
