package domain

import "time"

// Order status values. The zero record defaults to pending.
const (
	OrderStatusPending   = "pending"
	OrderStatusFinalized = "finalized"
	OrderStatusConcluded = "concluded"
)

// Order references its owner and product, it does not own them. Deleting
// a user with orders is blocked at the repository layer.
type Order struct {
	ID        int64     `gorm:"primaryKey" json:"id,string" form:"id"`
	OwnerID   int64     `gorm:"index" json:"owner_id,string" form:"owner_id"`
	ProductID int64     `gorm:"index" json:"product_id,string" form:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int       `json:"quantity" form:"quantity"`
	Subtotal  float64   `json:"subtotal" form:"subtotal"`
	Status    string    `gorm:"size:16;default:pending" json:"status" form:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Order) TableName() string {
	return "crm_order"
}

// GetSubtotal recomputes price * quantity on every call. The stored
// Subtotal column can go stale when the product price changes, so the
// derived value is authoritative for display and filtering.
func (o *Order) GetSubtotal() float64 {
	return o.Product.Price * float64(o.Quantity)
}
