package store

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopcore/shopcore/internal/domain"
	"github.com/shopcore/shopcore/pkg/common"
	"gorm.io/gorm"
)

// GormOrderStore persists orders. Every read resolves the product
// reference so callers can derive subtotals from the current price.
type GormOrderStore struct {
	db *gorm.DB
}

func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

func (s *GormOrderStore) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	now := time.Now()
	record := domain.Order{
		ID:        common.UUIDint64(),
		OwnerID:   order.OwnerID,
		ProductID: order.ProductID,
		Quantity:  order.Quantity,
		Subtotal:  order.Subtotal,
		Status:    order.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Omit("Product").Create(&record).Error; err != nil {
		return nil, err
	}

	// reload with the product resolved
	if err := s.db.WithContext(ctx).Preload("Product").
		Where("id = ?", record.ID).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *GormOrderStore) GetByOrderID(ctx context.Context, orderID int64) (*domain.Order, error) {
	var record domain.Order
	if err := s.db.WithContext(ctx).Preload("Product").
		Where("id = ?", orderID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(domain.ErrNotFound, "order not found")
		}
		return nil, err
	}
	return &record, nil
}

func (s *GormOrderStore) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Order, error) {
	var orders []domain.Order
	if err := s.db.WithContext(ctx).Preload("Product").
		Where("owner_id = ?", ownerID).Order("id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormOrderStore) GetAllPaginatedFiltered(ctx context.Context, offset, limit int, searchQuery string) ([]domain.Order, int64, error) {
	db := s.db.WithContext(ctx).Model(&domain.Order{})

	if q := strings.TrimSpace(searchQuery); q != "" {
		if strings.EqualFold(s.db.Name(), "postgres") { //nolint:staticcheck
			db = db.Where("status ILIKE ?", "%"+q+"%")
		} else {
			db = db.Where("LOWER(status) LIKE ?", "%"+strings.ToLower(q)+"%")
		}
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []domain.Order
	if err := db.Preload("Product").Order("id DESC").
		Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
