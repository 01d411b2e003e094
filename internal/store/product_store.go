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

type GormProductStore struct {
	db *gorm.DB
}

func NewGormProductStore(db *gorm.DB) *GormProductStore {
	return &GormProductStore{db: db}
}

func (s *GormProductStore) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	now := time.Now()
	record := domain.Product{
		ID:        common.UUIDint64(),
		Name:      product.Name,
		Price:     product.Price,
		Stock:     product.Stock,
		IsActive:  product.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *GormProductStore) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	var record domain.Product
	if err := s.db.WithContext(ctx).Where("id = ?", product.ID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(domain.ErrNotFound, "product not found")
		}
		return nil, err
	}

	record.Name = product.Name
	record.Price = product.Price
	record.Stock = product.Stock
	record.IsActive = product.IsActive
	record.UpdatedAt = time.Now()

	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *GormProductStore) Delete(ctx context.Context, productID int64) error {
	res := s.db.WithContext(ctx).Where("id = ?", productID).Delete(&domain.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.Wrap(domain.ErrNotFound, "product not found")
	}
	return nil
}

func (s *GormProductStore) GetByID(ctx context.Context, productID int64) (*domain.Product, error) {
	var record domain.Product
	if err := s.db.WithContext(ctx).Where("id = ?", productID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(domain.ErrNotFound, "product not found")
		}
		return nil, err
	}
	return &record, nil
}

func (s *GormProductStore) GetAllPaginatedFiltered(ctx context.Context, offset, limit int, searchQuery string) ([]domain.Product, int64, error) {
	db := s.db.WithContext(ctx).Model(&domain.Product{})

	if q := strings.TrimSpace(searchQuery); q != "" {
		if strings.EqualFold(s.db.Name(), "postgres") { //nolint:staticcheck
			db = db.Where("name ILIKE ?", "%"+q+"%")
		} else {
			db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
		}
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []domain.Product
	if err := db.Order("id DESC").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
