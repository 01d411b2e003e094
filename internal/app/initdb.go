package app

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopcore/shopcore/internal/domain"
	"github.com/shopcore/shopcore/pkg/common"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func (a *Application) checkSuper() {
	const superEmail = "admin@shopcore.local"
	const defaultPassword = "shopcore"

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Error("failed to hash default super admin password", zap.Error(err))
		return
	}

	var admin domain.User
	err = a.gormDB.Where("email = ?", superEmail).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		now := time.Now()
		if err := a.gormDB.Create(&domain.User{
			ID:          common.UUIDint64(),
			Email:       superEmail,
			FirstName:   "Super",
			LastName:    "Admin",
			Password:    string(hashed),
			IsActive:    true,
			IsStaff:     true,
			IsSuperuser: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}).Error; err != nil {
			zap.L().Error("failed to create default super admin", zap.Error(err))
		} else {
			zap.L().Info("initialized default super admin account", zap.String("email", superEmail))
		}
		return
	case err != nil:
		zap.L().Error("failed to query super admin", zap.Error(err))
		return
	}

	resetPassword := admin.Password == ""
	resetFlags := !admin.IsSuperuser || !admin.IsStaff
	resetActive := !admin.IsActive

	if !resetPassword && !resetFlags && !resetActive {
		return
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if resetPassword {
		updates["password"] = string(hashed)
	}
	if resetFlags {
		updates["is_superuser"] = true
		updates["is_staff"] = true
	}
	if resetActive {
		updates["is_active"] = true
	}

	if err := a.gormDB.Model(&domain.User{}).Where("id = ?", admin.ID).Updates(updates).Error; err != nil {
		zap.L().Error("failed to repair super admin account", zap.Error(err))
		return
	}

	zap.L().Warn("repaired default super admin account",
		zap.String("email", superEmail),
		zap.Bool("passwordReset", resetPassword),
		zap.Bool("flagsReset", resetFlags),
		zap.Bool("activated", resetActive))
}
