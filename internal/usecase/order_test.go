package usecase

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopcore/shopcore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderDefaultsToPending(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.products[10] = domain.Product{ID: 10, Name: "widget", Price: 4.0}

	uc := NewCreateOrderUseCase(repo)
	resp, err := uc.Execute(context.Background(), CreateOrderRequest{
		OwnerID:   1,
		ProductID: 10,
		Quantity:  2,
		Subtotal:  8.0,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, resp.Status)
	assert.Equal(t, "widget", resp.Product)
}

func TestCreateOrderKeepsRequestedStatus(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.products[10] = domain.Product{ID: 10, Name: "widget", Price: 4.0}

	uc := NewCreateOrderUseCase(repo)
	resp, err := uc.Execute(context.Background(), CreateOrderRequest{
		OwnerID:   1,
		ProductID: 10,
		Quantity:  1,
		Status:    domain.OrderStatusFinalized,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusFinalized, resp.Status)
}

// Creating an order does not touch the product's stock.
func TestCreateOrderLeavesStockAlone(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.products[10] = domain.Product{ID: 10, Name: "widget", Price: 4.0, Stock: 5}

	uc := NewCreateOrderUseCase(repo)
	_, err := uc.Execute(context.Background(), CreateOrderRequest{
		OwnerID:   1,
		ProductID: 10,
		Quantity:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, repo.products[10].Stock)
}

// The response subtotal is derived from price * quantity even when the
// stored column disagrees.
func TestOrderResponseUsesDerivedSubtotal(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.products[10] = domain.Product{ID: 10, Name: "widget", Price: 4.0}

	uc := NewCreateOrderUseCase(repo)
	resp, err := uc.Execute(context.Background(), CreateOrderRequest{
		OwnerID:   1,
		ProductID: 10,
		Quantity:  2,
		Subtotal:  123.45,
	})
	require.NoError(t, err)
	assert.Equal(t, 8.0, resp.Subtotal)
}

func TestGetOrderByIdOwnerAndAdmin(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.products[10] = domain.Product{ID: 10, Name: "widget", Price: 4.0}

	created, err := NewCreateOrderUseCase(repo).Execute(context.Background(), CreateOrderRequest{
		OwnerID:   1,
		ProductID: 10,
		Quantity:  1,
	})
	require.NoError(t, err)

	uc := NewGetOrderByIdUseCase(repo)

	owner := &domain.User{ID: 1}
	resp, err := uc.Execute(context.Background(), GetOrderByIdRequest{OrderID: created.OrderID}, owner)
	require.NoError(t, err)
	assert.Equal(t, created.OrderID, resp.OrderID)

	admin := &domain.User{ID: 99, IsStaff: true, IsSuperuser: true}
	_, err = uc.Execute(context.Background(), GetOrderByIdRequest{OrderID: created.OrderID}, admin)
	assert.NoError(t, err)

	stranger := &domain.User{ID: 2}
	_, err = uc.Execute(context.Background(), GetOrderByIdRequest{OrderID: created.OrderID}, stranger)
	assert.True(t, errors.Is(err, domain.ErrPermissionDenied))
}

// A regular user sees only their own orders, and the reported total counts
// the visible ones, not everything the repository returned.
func TestListOrdersVisibility(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.products[10] = domain.Product{ID: 10, Name: "widget", Price: 4.0}

	createUC := NewCreateOrderUseCase(repo)
	_, err := createUC.Execute(context.Background(), CreateOrderRequest{OwnerID: 1, ProductID: 10, Quantity: 1})
	require.NoError(t, err)
	_, err = createUC.Execute(context.Background(), CreateOrderRequest{OwnerID: 2, ProductID: 10, Quantity: 1})
	require.NoError(t, err)

	uc := NewListOrderUseCase(repo)

	owner := &domain.User{ID: 1}
	resp, err := uc.Execute(context.Background(), ListOrdersRequest{Offset: 0, Limit: 20}, owner)
	require.NoError(t, err)
	assert.Len(t, resp.Orders, 1)
	assert.Equal(t, int64(1), resp.TotalItems)

	admin := &domain.User{ID: 99, IsStaff: true, IsSuperuser: true}
	resp, err = uc.Execute(context.Background(), ListOrdersRequest{Offset: 0, Limit: 20}, admin)
	require.NoError(t, err)
	assert.Len(t, resp.Orders, 2)
	assert.Equal(t, int64(2), resp.TotalItems)
}
