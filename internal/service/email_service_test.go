package service

import (
	"context"
	"testing"

	"github.com/munjed80/Fancy-foods-app/internal/dto"
	"github.com/munjed80/Fancy-foods-app/internal/infra"
	"github.com/munjed80/Fancy-foods-app/internal/model"
	"github.com/munjed80/Fancy-foods-app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubTemplateRepo struct {
	templates map[uint]*model.EmailTemplate
	nextID    uint
}

func newStubTemplateRepo() *stubTemplateRepo {
	return &stubTemplateRepo{templates: make(map[uint]*model.EmailTemplate)}
}

func (r *stubTemplateRepo) Create(_ context.Context, t *model.EmailTemplate) error {
	r.nextID++
	t.ID = r.nextID
	copied := *t
	r.templates[t.ID] = &copied
	return nil
}

func (r *stubTemplateRepo) FindByID(_ context.Context, id uint) (*model.EmailTemplate, error) {
	t, ok := r.templates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *stubTemplateRepo) List(_ context.Context) ([]model.EmailTemplate, error) {
	var out []model.EmailTemplate
	for _, t := range r.templates {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTemplateRepo) Update(_ context.Context, t *model.EmailTemplate) error {
	if _, ok := r.templates[t.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *t
	r.templates[t.ID] = &copied
	return nil
}

func (r *stubTemplateRepo) Delete(_ context.Context, id uint) error {
	delete(r.templates, id)
	return nil
}

var _ repository.TemplateRepository = (*stubTemplateRepo)(nil)

func newEmailServiceForTest(t *testing.T, dealRepo repository.DealRepository, templateRepo repository.TemplateRepository) EmailService {
	t.Helper()
	settings, err := NewSettingsService(context.Background(), &stubSettingsRepo{})
	require.NoError(t, err)
	documents := NewDocumentService(dealRepo, settings, t.TempDir())
	archive := infra.NewEmailArchive(t.TempDir())
	return NewEmailService(templateRepo, dealRepo, documents, settings, archive, nil)
}

// ── Templates ────────────────────────────────────────────────────────────────

func TestTemplateCRUD(t *testing.T) {
	svc := newEmailServiceForTest(t, newStubDealRepo(), newStubTemplateRepo())

	created, err := svc.CreateTemplate(context.Background(), dto.TemplateInput{
		Name:    "Offer",
		Subject: "Offer for {{product}}",
		Body:    "<p>{{total_value}}</p>",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTemplate(context.Background(), created.ID, dto.TemplateInput{
		Name:    "Offer v2",
		Subject: "Updated offer for {{product}}",
	})
	require.NoError(t, err)
	assert.Equal(t, "Offer v2", updated.Name)

	all, err := svc.ListTemplates(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.DeleteTemplate(context.Background(), created.ID))
	all, err = svc.ListTemplates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateTemplateMissing(t *testing.T) {
	svc := newEmailServiceForTest(t, newStubDealRepo(), newStubTemplateRepo())

	_, err := svc.UpdateTemplate(context.Background(), 99, dto.TemplateInput{Name: "x"})
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

// ── Sending error paths ──────────────────────────────────────────────────────

func TestSendDealEmailMissingDeal(t *testing.T) {
	svc := newEmailServiceForTest(t, newStubDealRepo(), newStubTemplateRepo())

	err := svc.SendDealEmail(context.Background(), 7, dto.SendDealEmailRequest{
		To:      "buyer@example.com",
		Subject: "Hello",
	})
	assert.ErrorIs(t, err, ErrDealNotFound)
}

func TestSendDealEmailMissingTemplate(t *testing.T) {
	dealRepo := newStubDealRepo()
	require.NoError(t, dealRepo.Create(context.Background(), &model.Deal{Product: "Walnuts"}))

	svc := newEmailServiceForTest(t, dealRepo, newStubTemplateRepo())

	err := svc.SendDealEmail(context.Background(), 1, dto.SendDealEmailRequest{
		To:         "buyer@example.com",
		TemplateID: ptr(uint(42)),
	})
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestSendDealEmailBlankSubject(t *testing.T) {
	dealRepo := newStubDealRepo()
	require.NoError(t, dealRepo.Create(context.Background(), &model.Deal{Product: "Walnuts"}))

	svc := newEmailServiceForTest(t, dealRepo, newStubTemplateRepo())

	err := svc.SendDealEmail(context.Background(), 1, dto.SendDealEmailRequest{
		To:      "buyer@example.com",
		Subject: "   ",
	})
	assert.True(t, IsValidation(err))
}

// ── Placeholder rendering ────────────────────────────────────────────────────

func TestDealPlaceholders(t *testing.T) {
	deal := &model.Deal{
		ID:          3,
		Product:     "Walnuts",
		Quantity:    10,
		PricePerTon: 1200,
		TotalValue:  12000,
		Commission:  360,
		Stage:       model.StageOrder,
		Status:      model.StatusOpen,
		Client:      &model.Client{Name: "Delta Foods"},
	}

	replacer := dealPlaceholders(deal, "USD")
	rendered := replacer.Replace("{{client_name}}: {{quantity}}t {{product}} for {{total_value}} ({{commission}} fee)")

	assert.Equal(t, "Delta Foods: 10t Walnuts for USD 12000.00 (USD 360.00 fee)", rendered)
}
