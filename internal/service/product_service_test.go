package service

import (
	"context"
	"testing"

	"github.com/munjed80/Fancy-foods-app/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductDefaults(t *testing.T) {
	svc := NewProductService(newStubProductRepo())

	resp, err := svc.Create(context.Background(), dto.ProductInput{Name: "Walnuts"})
	require.NoError(t, err)

	assert.Equal(t, "nuts", resp.Category)
	assert.Equal(t, "kg", resp.Unit)
	assert.False(t, resp.LowStock)
}

func TestCreateProductRejectsBlankName(t *testing.T) {
	svc := NewProductService(newStubProductRepo())

	_, err := svc.Create(context.Background(), dto.ProductInput{Name: "  "})
	assert.True(t, IsValidation(err))
}

func TestProductLowStockFlag(t *testing.T) {
	svc := NewProductService(newStubProductRepo())

	resp, err := svc.Create(context.Background(), dto.ProductInput{
		Name:     "Almonds",
		Stock:    ptr(3.0),
		MinStock: ptr(5.0),
	})
	require.NoError(t, err)
	assert.True(t, resp.LowStock)
}

func TestGetProductMissingReturnsNil(t *testing.T) {
	svc := NewProductService(newStubProductRepo())

	resp, err := svc.Get(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestUpdateProductMissing(t *testing.T) {
	svc := NewProductService(newStubProductRepo())

	_, err := svc.Update(context.Background(), 9, dto.ProductInput{Name: "Walnuts"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}
