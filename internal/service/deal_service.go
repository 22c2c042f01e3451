package service

import (
	"context"
	"strings"
	"time"

	"github.com/munjed80/Fancy-foods-app/internal/dto"
	"github.com/munjed80/Fancy-foods-app/internal/model"
	"github.com/munjed80/Fancy-foods-app/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const defaultCommissionRate = 2.5

// AttachmentProvisioner is the slice of the attachment store the deal engine
// needs: provision a container on create, drop it on delete.
type AttachmentProvisioner interface {
	Provision(dealID uint) error
	RemoveAll(dealID uint) error
}

// DealService is the deal lifecycle engine: the one place where the deal's
// business arithmetic happens (total value, commission) and where stage
// transitions stamp their dates.
type DealService interface {
	Create(ctx context.Context, input dto.DealInput) (*dto.DealResponse, error)
	Update(ctx context.Context, id uint, input dto.DealInput) (*dto.DealResponse, error)
	UpdateStage(ctx context.Context, id uint, stage string, status *string) (*dto.DealResponse, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*dto.DealResponse, error)
	List(ctx context.Context, query string) ([]dto.DealResponse, error)
}

type dealService struct {
	repo         repository.DealRepository
	shipmentRepo repository.ShipmentRepository
	attachments  AttachmentProvisioner
}

func NewDealService(
	repo repository.DealRepository,
	shipmentRepo repository.ShipmentRepository,
	attachments AttachmentProvisioner,
) DealService {
	return &dealService{repo: repo, shipmentRepo: shipmentRepo, attachments: attachments}
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// derive recomputes the two derived fields. Plain float64 multiplication with
// no rounding step — displayed totals must match the stored values exactly.
func derive(d *model.Deal) {
	d.TotalValue = d.Quantity * d.PricePerTon
	d.Commission = d.TotalValue * (d.CommissionRate / 100)
}

// applyInput maps a DealInput onto a deal row: absent numeric fields fall back
// to their creation defaults, dates are written exactly as supplied (absent
// clears), and derived fields are recomputed.
func applyInput(d *model.Deal, input dto.DealInput) error {
	product := strings.TrimSpace(input.Product)
	if product == "" {
		return newValidationError("product", "product name is required")
	}

	d.ClientID = input.ClientID
	d.SupplierID = input.SupplierID
	d.Product = product
	d.Quantity = 0
	if input.Quantity != nil {
		d.Quantity = *input.Quantity
	}
	d.PricePerTon = 0
	if input.PricePerTon != nil {
		d.PricePerTon = *input.PricePerTon
	}
	d.CommissionRate = defaultCommissionRate
	if input.CommissionRate != nil {
		d.CommissionRate = *input.CommissionRate
	}
	d.Stage = model.StageOffer
	if input.Stage != nil {
		d.Stage = *input.Stage
	}
	d.Status = model.StatusDraft
	if input.Status != nil {
		d.Status = *input.Status
	}
	d.OfferDate = parseDate(input.OfferDate)
	d.OrderDate = parseDate(input.OrderDate)
	d.DeliveryDate = parseDate(input.DeliveryDate)
	d.PaymentDate = parseDate(input.PaymentDate)
	d.Notes = input.Notes

	derive(d)
	return nil
}

// clearAssociations drops the preloaded rows before a save so the foreign
// keys written are the ones applyInput set, not ones re-derived from stale
// associations.
func clearAssociations(d *model.Deal) {
	d.Client = nil
	d.Supplier = nil
	d.Shipments = nil
}

func (s *dealService) Create(ctx context.Context, input dto.DealInput) (*dto.DealResponse, error) {
	var deal model.Deal
	if err := applyInput(&deal, input); err != nil {
		return nil, err
	}

	// A fresh offer without an explicit date is dated today.
	if deal.Stage == model.StageOffer && deal.OfferDate == nil {
		deal.OfferDate = todayPtr()
	}

	if err := s.repo.Create(ctx, &deal); err != nil {
		return nil, err
	}

	// Provision the attachment container keyed by the new id. Best effort —
	// the deal exists either way and the store creates directories on demand.
	if err := s.attachments.Provision(deal.ID); err != nil {
		log.Warn().Err(err).Uint("deal_id", deal.ID).Msg("failed to provision attachment dir")
	}

	return dealToResponse(&deal), nil
}

func (s *dealService) Update(ctx context.Context, id uint, input dto.DealInput) (*dto.DealResponse, error) {
	deal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrDealNotFound
		}
		return nil, err
	}

	// Full overwrite: every field, including all four stage dates, becomes
	// exactly what the caller sent. Previously set dates are not protected.
	if err := applyInput(deal, input); err != nil {
		return nil, err
	}
	clearAssociations(deal)
	if err := s.repo.Update(ctx, deal); err != nil {
		return nil, err
	}
	return dealToResponse(deal), nil
}

func (s *dealService) UpdateStage(ctx context.Context, id uint, stage string, status *string) (*dto.DealResponse, error) {
	deal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrDealNotFound
		}
		return nil, err
	}

	deal.Stage = stage
	// When no status is given the stage name is reused as the status, so
	// status can end up holding values like "delivery" that are outside the
	// canonical status set. Kept on purpose: the consuming UI and the
	// open-deal predicate (NOT IN completed/cancelled) both rely on it.
	if status != nil {
		deal.Status = *status
	} else {
		deal.Status = stage
	}

	// Stages with a mapped date field get stamped with today, overwriting any
	// prior value; sourcing/logistics/commission leave all dates untouched.
	// Derived financials are never recomputed on a stage transition.
	if slot := deal.StageDate(stage); slot != nil {
		*slot = todayPtr()
	}

	clearAssociations(deal)
	if err := s.repo.Update(ctx, deal); err != nil {
		return nil, err
	}
	return dealToResponse(deal), nil
}

// Delete removes the deal, its shipments, and its attachment container.
// Idempotent: deleting an id that does not exist is not an error, matching
// the best-effort delete pattern of the surrounding CRUD layer.
func (s *dealService) Delete(ctx context.Context, id uint) error {
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.shipmentRepo.DeleteByDealTx(tx, id); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, id)
	})
	if err != nil {
		return err
	}

	if err := s.attachments.RemoveAll(id); err != nil {
		log.Warn().Err(err).Uint("deal_id", id).Msg("failed to remove attachment dir")
	}
	return nil
}

// Get returns the deal enriched with denormalized counterparty names and its
// shipment list, or nil (no error) when the id does not exist.
func (s *dealService) Get(ctx context.Context, id uint) (*dto.DealResponse, error) {
	deal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	resp := dealToResponse(deal)
	if deal.Client != nil {
		resp.ClientName = &deal.Client.Name
	}
	if deal.Supplier != nil {
		resp.SupplierName = &deal.Supplier.Name
	}
	resp.Shipments = make([]dto.ShipmentResponse, 0, len(deal.Shipments))
	for i := range deal.Shipments {
		resp.Shipments = append(resp.Shipments, *shipmentToResponse(&deal.Shipments[i]))
	}
	return resp, nil
}

func (s *dealService) List(ctx context.Context, query string) ([]dto.DealResponse, error) {
	deals, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	result := make([]dto.DealResponse, 0, len(deals))
	for i := range deals {
		d := &deals[i]
		resp := dealToResponse(d)
		if d.Client != nil {
			resp.ClientName = &d.Client.Name
		}
		if d.Supplier != nil {
			resp.SupplierName = &d.Supplier.Name
		}
		result = append(result, *resp)
	}
	return result, nil
}

// ── Converters / date helpers ─────────────────────────────────────────────────

const dateLayout = "2006-01-02"

// todayPtr returns the current UTC date at date-only precision. One clock for
// every stamp so a stage transition and its response always agree on the day.
func todayPtr() *time.Time {
	now := time.Now().UTC()
	t := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return &t
}

// parseDate converts a YYYY-MM-DD string to a time pointer; nil or malformed
// input yields nil. Format errors are caught earlier by request validation.
func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// dealToResponse starts Shipments as an empty slice so the JSON field is
// always an array, never null; Get swaps in the loaded list.
func dealToResponse(d *model.Deal) *dto.DealResponse {
	return &dto.DealResponse{
		ID:             d.ID,
		ClientID:       d.ClientID,
		SupplierID:     d.SupplierID,
		Product:        d.Product,
		Quantity:       d.Quantity,
		PricePerTon:    d.PricePerTon,
		TotalValue:     d.TotalValue,
		CommissionRate: d.CommissionRate,
		Commission:     d.Commission,
		Stage:          d.Stage,
		Status:         d.Status,
		OfferDate:      formatDate(d.OfferDate),
		OrderDate:      formatDate(d.OrderDate),
		DeliveryDate:   formatDate(d.DeliveryDate),
		PaymentDate:    formatDate(d.PaymentDate),
		Notes:          d.Notes,
		CreatedAt:      d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      d.UpdatedAt.Format(time.RFC3339),
		Shipments:      []dto.ShipmentResponse{},
	}
}
