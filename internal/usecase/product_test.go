package usecase

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopcore/shopcore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductAsAdmin(t *testing.T) {
	repo := newFakeProductRepo()
	admin := &domain.User{ID: 1, IsStaff: true, IsSuperuser: true}

	uc := NewCreateProductUseCase(repo)
	resp, err := uc.Execute(context.Background(), CreateProductRequest{
		Name:     "widget",
		Price:    9.99,
		Stock:    5,
		IsActive: true,
	}, admin)
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "widget", resp.Name)
	assert.Equal(t, 1, repo.createCalls)
}

// A denied create must never reach the repository.
func TestCreateProductDenied(t *testing.T) {
	repo := newFakeProductRepo()
	regular := &domain.User{ID: 2}

	uc := NewCreateProductUseCase(repo)
	_, err := uc.Execute(context.Background(), CreateProductRequest{Name: "widget"}, regular)
	assert.True(t, errors.Is(err, domain.ErrPermissionDenied))
	assert.Equal(t, 0, repo.createCalls)
}

func TestCreateProductStaffOnlyDenied(t *testing.T) {
	repo := newFakeProductRepo()
	staff := &domain.User{ID: 3, IsStaff: true}

	uc := NewCreateProductUseCase(repo)
	_, err := uc.Execute(context.Background(), CreateProductRequest{Name: "widget"}, staff)
	assert.True(t, errors.Is(err, domain.ErrPermissionDenied))
}

func TestGetProductById(t *testing.T) {
	repo := newFakeProductRepo()
	created := repo.add(&domain.Product{Name: "widget", Price: 1.5})

	uc := NewGetProductByIdUseCase(repo)
	resp, err := uc.Execute(context.Background(), GetProductByIdRequest{ProductID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "widget", resp.Name)

	_, err = uc.Execute(context.Background(), GetProductByIdRequest{ProductID: 9999})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestListProducts(t *testing.T) {
	repo := newFakeProductRepo()
	repo.add(&domain.Product{Name: "a"})
	repo.add(&domain.Product{Name: "b"})
	repo.add(&domain.Product{Name: "c"})

	uc := NewListProductsUseCase(repo)
	resp, err := uc.Execute(context.Background(), ListProductsRequest{Offset: 0, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, resp.Products, 3)
	assert.Equal(t, int64(3), resp.TotalItems)
}
