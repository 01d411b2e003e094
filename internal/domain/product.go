package domain

import (
	"time"

	"github.com/pkg/errors"
)

// Product is a catalog item.
type Product struct {
	ID        int64     `gorm:"primaryKey" json:"id,string" form:"id"`
	Name      string    `gorm:"index;size:200" json:"name" form:"name"`
	Price     float64   `json:"price" form:"price"`
	Stock     int       `json:"stock" form:"stock"`
	IsActive  bool      `gorm:"default:true" json:"is_active" form:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "crm_product"
}

// IsAvailable reports whether the product can be ordered.
func (p *Product) IsAvailable() bool {
	return p.IsActive && p.Stock > 0
}

// ReduceStock decrements the stock in place. The decrement is all or
// nothing: on failure the stock is left untouched.
func (p *Product) ReduceStock(quantity int) error {
	if quantity > p.Stock {
		return errors.Wrapf(ErrInsufficientStock, "requested %d, stock %d", quantity, p.Stock)
	}
	p.Stock -= quantity
	return nil
}
