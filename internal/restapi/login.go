package restapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopcore/shopcore/internal/auth"
	"github.com/shopcore/shopcore/internal/store"
	"github.com/shopcore/shopcore/internal/usecase"
	"github.com/shopcore/shopcore/internal/webserver"
)

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshPayload struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type changePasswordPayload struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=128"`
}

func registerAuthRoutes() {
	webserver.PubPOST("/login", login)
	webserver.PubPOST("/token/refresh", refreshToken)
	webserver.ApiPOST("/password", changePassword)
}

func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse credentials", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	db := GetDB(c)
	uc := usecase.NewLoginUserUseCase(
		store.NewGormUserStore(db),
		auth.NewGormAuthGateway(db, appConfig))
	resp, err := uc.Execute(c.Request().Context(), usecase.LoginUserRequest{
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, resp)
}

// refreshToken trades a valid refresh token for a fresh pair.
func refreshToken(c echo.Context) error {
	var payload refreshPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse token", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	gateway := auth.NewGormAuthGateway(GetDB(c), appConfig)
	userID, err := gateway.VerifyRefresh(payload.RefreshToken)
	if err != nil {
		return failDomain(c, err)
	}

	access, refresh, err := gateway.CreateTokens(c.Request().Context(), userID)
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, map[string]string{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func changePassword(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return failDomain(c, err)
	}

	var payload changePasswordPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse payload", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	db := GetDB(c)
	uc := usecase.NewChangeUserPasswordUseCase(
		store.NewGormUserStore(db),
		auth.NewGormAuthGateway(db, appConfig))
	resp, err := uc.Execute(c.Request().Context(), usecase.ChangeUserPasswordRequest{
		UserID:      user.ID,
		OldPassword: payload.OldPassword,
		NewPassword: payload.NewPassword,
	})
	if err != nil {
		return failDomain(c, err)
	}
	return ok(c, resp)
}
