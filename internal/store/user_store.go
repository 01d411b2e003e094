package store

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopcore/shopcore/internal/domain"
	"github.com/shopcore/shopcore/pkg/common"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GormUserStore persists accounts. Create owns the two responsibilities
// the use cases delegate here: the unique-email rule and credential
// hashing.
type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	var exists int64
	if err := s.db.WithContext(ctx).Model(&domain.User{}).
		Where("email = ?", user.Email).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists > 0 {
		return nil, errors.Wrap(domain.ErrEmailTaken, user.Email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := domain.User{
		ID:          common.UUIDint64(),
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Password:    string(hashed),
		IsActive:    user.IsActive,
		IsStaff:     user.IsStaff,
		IsSuperuser: user.IsSuperuser,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Update changes the profile fields only; the credential is managed by the
// auth gateway.
func (s *GormUserStore) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	var record domain.User
	if err := s.db.WithContext(ctx).Where("id = ?", user.ID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(domain.ErrNotFound, "user not found")
		}
		return nil, err
	}

	record.Email = user.Email
	record.FirstName = user.FirstName
	record.LastName = user.LastName
	record.IsActive = user.IsActive
	record.UpdatedAt = time.Now()

	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete refuses while any order still references the user.
func (s *GormUserStore) Delete(ctx context.Context, userID int64) error {
	var orderCount int64
	if err := s.db.WithContext(ctx).Model(&domain.Order{}).
		Where("owner_id = ?", userID).Count(&orderCount).Error; err != nil {
		return err
	}
	if orderCount > 0 {
		return errors.Wrapf(domain.ErrUserHasOrders, "%d orders reference user %d", orderCount, userID)
	}

	res := s.db.WithContext(ctx).Where("id = ?", userID).Delete(&domain.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.Wrap(domain.ErrNotFound, "user not found")
	}
	return nil
}

func (s *GormUserStore) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	var record domain.User
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(domain.ErrNotFound, "user not found")
		}
		return nil, err
	}
	return &record, nil
}

func (s *GormUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var record domain.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(domain.ErrNotFound, "user not found")
		}
		return nil, err
	}
	return &record, nil
}

func (s *GormUserStore) GetAllPaginatedFiltered(ctx context.Context, offset, limit int, searchQuery string) ([]domain.User, int64, error) {
	db := s.db.WithContext(ctx).Model(&domain.User{})

	if q := strings.TrimSpace(searchQuery); q != "" {
		if strings.EqualFold(s.db.Name(), "postgres") { //nolint:staticcheck
			db = db.Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
				"%"+q+"%", "%"+q+"%", "%"+q+"%")
		} else {
			lq := "%" + strings.ToLower(q) + "%"
			db = db.Where("LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", lq, lq, lq)
		}
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []domain.User
	if err := db.Order("id DESC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
