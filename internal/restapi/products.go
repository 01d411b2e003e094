package restapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopcore/shopcore/internal/domain"
	"github.com/shopcore/shopcore/internal/store"
	"github.com/shopcore/shopcore/internal/usecase"
	"github.com/shopcore/shopcore/internal/webserver"
)

type productPayload struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Price    float64 `json:"price" validate:"gte=0"`
	Stock    int     `json:"stock" validate:"gte=0"`
	IsActive bool    `json:"is_active"`
}

func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/:id", getProduct)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products/:id", updateProduct)
	webserver.ApiDELETE("/products/:id", deleteProduct)
}

func listProducts(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return failDomain(c, err)
	}

	page, pageSize := parsePagination(c)
	uc := usecase.NewListProductsUseCase(store.NewGormProductStore(GetDB(c)))
	resp, err := uc.Execute(c.Request().Context(), usecase.ListProductsRequest{
		Offset:      (page - 1) * pageSize,
		Limit:       pageSize,
		SearchQuery: c.QueryParam("q"),
	})
	if err != nil {
		return failDomain(c, err)
	}
	return paged(c, resp.Products, resp.TotalItems, page, pageSize)
}

func getProduct(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return failDomain(c, err)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}

	uc := usecase.NewGetProductByIdUseCase(store.NewGormProductStore(GetDB(c)))
	resp, err := uc.Execute(c.Request().Context(), usecase.GetProductByIdRequest{ProductID: id})
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, resp)
}

func createProduct(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return failDomain(c, err)
	}

	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	uc := usecase.NewCreateProductUseCase(store.NewGormProductStore(GetDB(c)))
	resp, err := uc.Execute(c.Request().Context(), usecase.CreateProductRequest{
		Name:     payload.Name,
		Price:    payload.Price,
		Stock:    payload.Stock,
		IsActive: payload.IsActive,
	}, user)
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, resp)
}

// updateProduct goes straight to the repository, permission-gated the same
// way as create.
func updateProduct(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return failDomain(c, err)
	}
	if _, err := user.CanManageProducts(); err != nil {
		return failDomain(c, err)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}

	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	products := store.NewGormProductStore(GetDB(c))
	updated, err := products.Update(c.Request().Context(), &domain.Product{
		ID:       id,
		Name:     payload.Name,
		Price:    payload.Price,
		Stock:    payload.Stock,
		IsActive: payload.IsActive,
	})
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, updated)
}

func deleteProduct(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return failDomain(c, err)
	}
	if _, err := user.CanManageProducts(); err != nil {
		return failDomain(c, err)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}

	products := store.NewGormProductStore(GetDB(c))
	if err := products.Delete(c.Request().Context(), id); err != nil {
		return failDomain(c, err)
	}
	return ok(c, map[string]interface{}{"id": id})
}
