package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/shopcore/shopcore/config"
	"github.com/shopcore/shopcore/internal/domain"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const ClaimTokenUse = "token_use"

// GormAuthGateway verifies and sets credentials against the user table and
// issues HS256 access/refresh token pairs.
type GormAuthGateway struct {
	db         *gorm.DB
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewGormAuthGateway(db *gorm.DB, cfg *config.AppConfig) *GormAuthGateway {
	return &GormAuthGateway{
		db:         db,
		secret:     []byte(cfg.Web.JwtSecret),
		accessTTL:  cfg.AccessTokenDuration(),
		refreshTTL: cfg.RefreshTokenDuration(),
	}
}

// CheckPassword answers false for an unknown user as well as for a wrong
// password; callers must not be able to tell the two apart.
func (g *GormAuthGateway) CheckPassword(ctx context.Context, userID int64, password string) bool {
	var user domain.User
	if err := g.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}

func (g *GormAuthGateway) SetPassword(ctx context.Context, userID int64, newPassword string) error {
	var user domain.User
	if err := g.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrap(domain.ErrNotFound, "user not found")
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := g.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{"password": string(hashed), "updated_at": time.Now()}).Error; err != nil {
		return err
	}

	zap.L().Info("user password updated", zap.Int64("user_id", userID))
	return nil
}

// CreateTokens issues an access/refresh pair. The refresh token carries a
// token_use marker so it can never pass as an access token.
func (g *GormAuthGateway) CreateTokens(ctx context.Context, userID int64) (string, string, error) {
	now := time.Now()
	sub := cast.ToString(userID)

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"iat": now.Unix(),
		"exp": now.Add(g.accessTTL).Unix(),
	})
	accessStr, err := access.SignedString(g.secret)
	if err != nil {
		return "", "", err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":         sub,
		"iat":         now.Unix(),
		"exp":         now.Add(g.refreshTTL).Unix(),
		ClaimTokenUse: "refresh",
	})
	refreshStr, err := refresh.SignedString(g.secret)
	if err != nil {
		return "", "", err
	}

	return accessStr, refreshStr, nil
}

// VerifyRefresh parses a refresh token and returns the user id it was
// issued for. Access tokens are rejected here.
func (g *GormAuthGateway) VerifyRefresh(tokenStr string) (int64, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.Wrap(domain.ErrInvalidCredentials, "invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims[ClaimTokenUse] != "refresh" {
		return 0, errors.Wrap(domain.ErrInvalidCredentials, "not a refresh token")
	}

	userID := cast.ToInt64(claims["sub"])
	if userID == 0 {
		return 0, errors.Wrap(domain.ErrInvalidCredentials, "invalid refresh token subject")
	}
	return userID, nil
}
