package service

import (
	"context"
	"testing"

	"github.com/munjed80/Fancy-foods-app/internal/dto"
	"github.com/munjed80/Fancy-foods-app/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderComputesTotal(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo())

	resp, err := svc.Create(context.Background(), dto.OrderInput{
		Items: []dto.OrderItemInput{
			{Quantity: 2, Price: 10.5},
			{Quantity: 3, Price: 4.1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 33.3, resp.TotalPrice)
	assert.Equal(t, model.OrderPending, resp.Status)
	assert.NotNil(t, resp.OrderDate)
}

func TestCreateOrderEmptyItems(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo())

	resp, err := svc.Create(context.Background(), dto.OrderInput{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.TotalPrice)
}

func TestUpdateOrderReplacesItems(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	created, err := svc.Create(context.Background(), dto.OrderInput{
		Items: []dto.OrderItemInput{{Quantity: 1, Price: 100}},
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, created.TotalPrice)

	updated, err := svc.Update(context.Background(), created.ID, dto.OrderInput{
		Status: ptr(model.OrderConfirmed),
		Items: []dto.OrderItemInput{
			{Quantity: 5, Price: 20},
			{Quantity: 1, Price: 7},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 107.0, updated.TotalPrice)
	assert.Equal(t, model.OrderConfirmed, updated.Status)

	stored := repo.orders[created.ID]
	require.Len(t, stored.Items, 2)
	for _, item := range stored.Items {
		assert.Equal(t, created.ID, item.OrderID)
	}
}

// The preloaded client must not ride along with the save and reassert the
// old client_id when the caller picked a different buyer.
func TestUpdateOrderReplacesClient(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo)

	created, err := svc.Create(context.Background(), dto.OrderInput{ClientID: ptr(uint(1))})
	require.NoError(t, err)
	repo.orders[created.ID].Client = &model.Client{ID: 1, Name: "Delta Foods"}

	updated, err := svc.Update(context.Background(), created.ID, dto.OrderInput{ClientID: ptr(uint(2))})
	require.NoError(t, err)
	require.NotNil(t, updated.ClientID)
	assert.Equal(t, uint(2), *updated.ClientID)

	stored := repo.orders[created.ID]
	require.NotNil(t, stored.ClientID)
	assert.Equal(t, uint(2), *stored.ClientID)
	assert.Nil(t, stored.Client)
}

func TestUpdateOrderMissing(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo())

	_, err := svc.Update(context.Background(), 41, dto.OrderInput{})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetOrderMissingReturnsNil(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo())

	resp, err := svc.Get(context.Background(), 41)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestDeleteOrderIdempotent(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo())

	assert.NoError(t, svc.Delete(context.Background(), 41))
}
