package usecase

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopcore/shopcore/internal/domain"
)

type CreateOrderRequest struct {
	OwnerID   int64
	ProductID int64
	Quantity  int
	Subtotal  float64
	Status    string
}

// OrderResponse reports the product by name and always the derived
// subtotal, never the stored column.
type OrderResponse struct {
	OrderID  int64   `json:"order_id,string"`
	OwnerID  int64   `json:"owner_id,string"`
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
	Status   string  `json:"status"`
}

func newOrderResponse(o *domain.Order) *OrderResponse {
	return &OrderResponse{
		OrderID:  o.ID,
		OwnerID:  o.OwnerID,
		Product:  o.Product.Name,
		Quantity: o.Quantity,
		Subtotal: o.GetSubtotal(),
		Status:   o.Status,
	}
}

// CreateOrderUseCase persists the order exactly as requested. The stored
// subtotal is taken from the request, and the referenced product's stock
// is left alone; reducing it is the caller's concern.
type CreateOrderUseCase struct {
	orders OrderRepository
}

func NewCreateOrderUseCase(orders OrderRepository) *CreateOrderUseCase {
	return &CreateOrderUseCase{orders: orders}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	status := req.Status
	if status == "" {
		status = domain.OrderStatusPending
	}

	order := &domain.Order{
		OwnerID:   req.OwnerID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Subtotal:  req.Subtotal,
		Status:    status,
	}

	created, err := uc.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	return newOrderResponse(created), nil
}

type GetOrderByIdRequest struct {
	OrderID int64
}

// GetOrderByIdUseCase resolves a single order and refuses to show it to
// anyone but its owner or an administrator.
type GetOrderByIdUseCase struct {
	orders OrderRepository
}

func NewGetOrderByIdUseCase(orders OrderRepository) *GetOrderByIdUseCase {
	return &GetOrderByIdUseCase{orders: orders}
}

func (uc *GetOrderByIdUseCase) Execute(ctx context.Context, req GetOrderByIdRequest, currentUser *domain.User) (*OrderResponse, error) {
	order, err := uc.orders.GetByOrderID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if !currentUser.CanViewOrders(order.OwnerID) {
		return nil, errors.Wrap(domain.ErrPermissionDenied, "order belongs to another user")
	}
	return newOrderResponse(order), nil
}

type ListOrdersRequest struct {
	Offset      int
	Limit       int
	SearchQuery string
}

type ListOrdersResponse struct {
	Orders     []OrderResponse `json:"orders"`
	TotalItems int64           `json:"total_items"`
	Offset     int             `json:"offset"`
	Limit      int             `json:"limit"`
}

// ListOrderUseCase pages through the repository, then drops the orders the
// acting user may not see. TotalItems counts the visible orders of this
// page, not the repository total; the repository's count is discarded
// after the permission pass.
type ListOrderUseCase struct {
	orders OrderRepository
}

func NewListOrderUseCase(orders OrderRepository) *ListOrderUseCase {
	return &ListOrderUseCase{orders: orders}
}

func (uc *ListOrderUseCase) Execute(ctx context.Context, req ListOrdersRequest, currentUser *domain.User) (*ListOrdersResponse, error) {
	orders, _, err := uc.orders.GetAllPaginatedFiltered(ctx, req.Offset, req.Limit, req.SearchQuery)
	if err != nil {
		return nil, err
	}

	visible := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		if currentUser.CanViewOrders(orders[i].OwnerID) {
			visible = append(visible, *newOrderResponse(&orders[i]))
		}
	}

	return &ListOrdersResponse{
		Orders:     visible,
		TotalItems: int64(len(visible)),
		Offset:     req.Offset,
		Limit:      req.Limit,
	}, nil
}
