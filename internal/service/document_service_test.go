package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/munjed80/Fancy-foods-app/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, day string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	return parsed
}

func TestGenerateDealPDFWritesFile(t *testing.T) {
	dealRepo := newStubDealRepo()
	require.NoError(t, dealRepo.Create(context.Background(), &model.Deal{
		Product:     "Walnuts",
		Quantity:    10,
		PricePerTon: 1200,
		TotalValue:  12000,
		Commission:  360,
		Stage:       model.StageOrder,
		Status:      model.StatusOpen,
	}))

	settings, err := NewSettingsService(context.Background(), &stubSettingsRepo{})
	require.NoError(t, err)
	svc := NewDocumentService(dealRepo, settings, t.TempDir())

	path, err := svc.GenerateDealPDF(context.Background(), 1)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerateDealPDFMissingDeal(t *testing.T) {
	settings, err := NewSettingsService(context.Background(), &stubSettingsRepo{})
	require.NoError(t, err)
	svc := NewDocumentService(newStubDealRepo(), settings, t.TempDir())

	_, err = svc.GenerateDealPDF(context.Background(), 7)
	assert.ErrorIs(t, err, ErrDealNotFound)
}

func TestLatestShipmentPicksNewest(t *testing.T) {
	shipments := []model.Shipment{
		{ID: 1, CreatedAt: mustTime(t, "2026-01-01")},
		{ID: 3, CreatedAt: mustTime(t, "2026-03-01")},
		{ID: 2, CreatedAt: mustTime(t, "2026-02-01")},
	}

	latest := latestShipment(shipments)
	require.NotNil(t, latest)
	assert.Equal(t, uint(3), latest.ID)

	assert.Nil(t, latestShipment(nil))
}
