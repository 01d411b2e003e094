package usecase

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopcore/shopcore/internal/domain"
)

type CreateProductRequest struct {
	Name     string
	Price    float64
	Stock    int
	IsActive bool
}

type ProductResponse struct {
	ID       int64   `json:"id,string"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	IsActive bool    `json:"is_active"`
}

func newProductResponse(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Stock:    p.Stock,
		IsActive: p.IsActive,
	}
}

// CreateProductUseCase checks the acting user's permission before any
// repository call, so a denied request never reaches the database.
type CreateProductUseCase struct {
	products ProductRepository
}

func NewCreateProductUseCase(products ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{products: products}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, req CreateProductRequest, currentUser *domain.User) (*ProductResponse, error) {
	if _, err := currentUser.CanManageProducts(); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		IsActive: req.IsActive,
	}

	created, err := uc.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	return newProductResponse(created), nil
}

type ListProductsRequest struct {
	Offset      int
	Limit       int
	SearchQuery string
}

type ListProductsResponse struct {
	Products   []ProductResponse `json:"products"`
	TotalItems int64             `json:"total_items"`
	Offset     int               `json:"offset"`
	Limit      int               `json:"limit"`
}

type ListProductsUseCase struct {
	products ProductRepository
}

func NewListProductsUseCase(products ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{products: products}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, req ListProductsRequest) (*ListProductsResponse, error) {
	products, total, err := uc.products.GetAllPaginatedFiltered(ctx, req.Offset, req.Limit, req.SearchQuery)
	if err != nil {
		return nil, err
	}

	resp := &ListProductsResponse{
		Products:   make([]ProductResponse, 0, len(products)),
		TotalItems: total,
		Offset:     req.Offset,
		Limit:      req.Limit,
	}
	for i := range products {
		resp.Products = append(resp.Products, *newProductResponse(&products[i]))
	}
	return resp, nil
}

type GetProductByIdRequest struct {
	ProductID int64
}

type GetProductByIdUseCase struct {
	products ProductRepository
}

func NewGetProductByIdUseCase(products ProductRepository) *GetProductByIdUseCase {
	return &GetProductByIdUseCase{products: products}
}

func (uc *GetProductByIdUseCase) Execute(ctx context.Context, req GetProductByIdRequest) (*ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.Wrap(domain.ErrNotFound, "product not found")
	}
	return newProductResponse(product), nil
}
