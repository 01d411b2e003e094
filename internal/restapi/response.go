package restapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopcore/shopcore/internal/auth"
	"github.com/shopcore/shopcore/internal/domain"
	"github.com/shopcore/shopcore/internal/store"
	"github.com/shopcore/shopcore/internal/webserver"
	"github.com/spf13/cast"
	"gorm.io/gorm"
)

// GetDB returns the gorm handle injected by the webserver middleware.
func GetDB(c echo.Context) *gorm.DB {
	return c.Get(webserver.ContextDBKey).(*gorm.DB)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code": 0,
		"msg":  "success",
		"data": data,
	})
}

func fail(c echo.Context, status int, code, msg string, detail interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"code":   code,
		"msg":    msg,
		"detail": detail,
	})
}

func paged(c echo.Context, items interface{}, total int64, page, pageSize int) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items":     items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// failDomain translates the store/usecase error taxonomy into HTTP responses.
func failDomain(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, domain.ErrPermissionDenied):
		return fail(c, http.StatusForbidden, "PERMISSION_DENIED", err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fail(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error(), nil)
	case errors.Is(err, domain.ErrInsufficientStock):
		return fail(c, http.StatusConflict, "INSUFFICIENT_STOCK", err.Error(), nil)
	case errors.Is(err, domain.ErrEmailTaken):
		return fail(c, http.StatusConflict, "EMAIL_TAKEN", err.Error(), nil)
	case errors.Is(err, domain.ErrUserHasOrders):
		return fail(c, http.StatusConflict, "USER_HAS_ORDERS", err.Error(), nil)
	default:
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", err.Error())
	}
}

func handleValidationError(c echo.Context, err error) error {
	if verrs, yes := err.(validator.ValidationErrors); yes {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field()+":"+fe.Tag())
		}
		return fail(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED",
			"Payload validation failed", strings.Join(fields, ", "))
	}
	return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to validate request", err.Error())
}

func parsePagination(c echo.Context) (page, pageSize int) {
	page = 1
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	pageSize = 20
	if ps, err := strconv.Atoi(c.QueryParam("pageSize")); err == nil && ps > 0 && ps <= 500 {
		pageSize = ps
	}
	return page, pageSize
}

func parseIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// currentUser resolves the authenticated account from the JWT subject. The
// middleware already rejected requests without a valid token.
func currentUser(c echo.Context) (*domain.User, error) {
	token, yes := c.Get("user").(*jwt.Token)
	if !yes {
		return nil, errors.Wrap(domain.ErrInvalidCredentials, "missing token")
	}
	claims, yes := token.Claims.(jwt.MapClaims)
	if !yes {
		return nil, errors.Wrap(domain.ErrInvalidCredentials, "malformed claims")
	}
	if claims[auth.ClaimTokenUse] == "refresh" {
		return nil, errors.Wrap(domain.ErrInvalidCredentials, "refresh token not accepted here")
	}

	userID := cast.ToInt64(claims["sub"])
	if userID == 0 {
		return nil, errors.Wrap(domain.ErrInvalidCredentials, "invalid token subject")
	}

	users := store.NewGormUserStore(GetDB(c))
	user, err := users.GetByID(c.Request().Context(), userID)
	if err != nil {
		return nil, errors.Wrap(domain.ErrInvalidCredentials, "account no longer exists")
	}
	if !user.IsActive {
		return nil, errors.Wrap(domain.ErrPermissionDenied, "account disabled")
	}
	return user, nil
}
