package restapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopcore/shopcore/internal/store"
	"github.com/shopcore/shopcore/internal/usecase"
	"github.com/shopcore/shopcore/internal/webserver"
)

type createUserPayload struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Password  string `json:"password" validate:"required,min=6,max=128"`
}

type updateUserPayload struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	IsActive  bool   `json:"is_active"`
}

func registerUserRoutes() {
	// registration stays open, everything else needs a token
	webserver.PubPOST("/users", createUser)
	webserver.ApiGET("/users", listUsers)
	webserver.ApiGET("/users/:id", getUser)
	webserver.ApiPUT("/users/:id", updateUser)
	webserver.ApiDELETE("/users/:id", deleteUser)
}

func createUser(c echo.Context) error {
	var payload createUserPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse user", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	uc := usecase.NewCreateUserUseCase(store.NewGormUserStore(GetDB(c)))
	resp, err := uc.Execute(c.Request().Context(), usecase.CreateUserRequest{
		Email:     payload.Email,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Password:  payload.Password,
		IsActive:  true,
	})
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, resp)
}

func listUsers(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return failDomain(c, err)
	}

	page, pageSize := parsePagination(c)
	uc := usecase.NewListUsersUseCase(store.NewGormUserStore(GetDB(c)))
	resp, err := uc.Execute(c.Request().Context(), usecase.ListUsersRequest{
		Offset:      (page - 1) * pageSize,
		Limit:       pageSize,
		SearchQuery: c.QueryParam("q"),
	})
	if err != nil {
		return failDomain(c, err)
	}
	return paged(c, resp.Users, resp.TotalItems, page, pageSize)
}

func getUser(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return failDomain(c, err)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID", nil)
	}

	uc := usecase.NewGetUserByIdUseCase(store.NewGormUserStore(GetDB(c)))
	resp, err := uc.Execute(c.Request().Context(), usecase.GetUserByIdRequest{UserID: id})
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, resp)
}

// updateUser changes profile fields only. Users may edit themselves,
// admins may edit anyone; the credential goes through /password.
func updateUser(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return failDomain(c, err)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID", nil)
	}
	if actor.ID != id && !actor.IsAdmin() {
		return fail(c, http.StatusForbidden, "PERMISSION_DENIED", "Cannot modify another user", nil)
	}

	var payload updateUserPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse user", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	users := store.NewGormUserStore(GetDB(c))
	target, err := users.GetByID(c.Request().Context(), id)
	if err != nil {
		return failDomain(c, err)
	}

	target.Email = payload.Email
	target.FirstName = payload.FirstName
	target.LastName = payload.LastName
	if actor.IsAdmin() {
		target.IsActive = payload.IsActive
	}

	updated, err := users.Update(c.Request().Context(), target)
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, updated)
}

// deleteUser is admin-only and refused while orders reference the user.
func deleteUser(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return failDomain(c, err)
	}
	if !actor.IsAdmin() {
		return fail(c, http.StatusForbidden, "PERMISSION_DENIED", "Only administrators can delete users", nil)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID", nil)
	}

	if err := store.NewGormUserStore(GetDB(c)).Delete(c.Request().Context(), id); err != nil {
		return failDomain(c, err)
	}
	return ok(c, map[string]interface{}{"id": id})
}
