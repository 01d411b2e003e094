package restapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopcore/shopcore/internal/store"
	"github.com/shopcore/shopcore/internal/usecase"
	"github.com/shopcore/shopcore/internal/webserver"
)

type createOrderPayload struct {
	ProductID int64  `json:"product_id,string" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Status    string `json:"status" validate:"omitempty,oneof=pending finalized concluded"`
}

func registerOrderRoutes() {
	webserver.ApiGET("/orders", listOrders)
	webserver.ApiGET("/orders/:id", getOrder)
	webserver.ApiPOST("/orders", createOrder)
}

func listOrders(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return failDomain(c, err)
	}

	page, pageSize := parsePagination(c)
	uc := usecase.NewListOrderUseCase(store.NewGormOrderStore(GetDB(c)))
	resp, err := uc.Execute(c.Request().Context(), usecase.ListOrdersRequest{
		Offset:      (page - 1) * pageSize,
		Limit:       pageSize,
		SearchQuery: c.QueryParam("q"),
	}, user)
	if err != nil {
		return failDomain(c, err)
	}
	return paged(c, resp.Orders, resp.TotalItems, page, pageSize)
}

func getOrder(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return failDomain(c, err)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID", nil)
	}

	uc := usecase.NewGetOrderByIdUseCase(store.NewGormOrderStore(GetDB(c)))
	resp, err := uc.Execute(c.Request().Context(), usecase.GetOrderByIdRequest{OrderID: id}, user)
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, resp)
}

// createOrder resolves the product first so the stored subtotal reflects
// the price at order time. Orders always belong to the requesting user.
func createOrder(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return failDomain(c, err)
	}

	var payload createOrderPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse order", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	db := GetDB(c)
	ctx := c.Request().Context()

	product, err := store.NewGormProductStore(db).GetByID(ctx, payload.ProductID)
	if err != nil {
		return failDomain(c, err)
	}

	uc := usecase.NewCreateOrderUseCase(store.NewGormOrderStore(db))
	resp, err := uc.Execute(ctx, usecase.CreateOrderRequest{
		OwnerID:   user.ID,
		ProductID: product.ID,
		Quantity:  payload.Quantity,
		Subtotal:  product.Price * float64(payload.Quantity),
		Status:    payload.Status,
	})
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, resp)
}
