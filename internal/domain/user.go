package domain

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// User is the account entity. Identity is the id: two users with the same
// id are the same user regardless of any other field, which keeps map keys
// consistent even while mutable fields drift.
type User struct {
	ID          int64     `gorm:"primaryKey" json:"id,string" form:"id"`
	Email       string    `gorm:"uniqueIndex;size:254" json:"email" form:"email"`
	FirstName   string    `gorm:"size:30" json:"first_name" form:"first_name"`
	LastName    string    `gorm:"size:150" json:"last_name" form:"last_name"`
	Password    string    `gorm:"size:128" json:"-" form:"-"`
	IsActive    bool      `gorm:"default:true" json:"is_active" form:"is_active"`
	IsStaff     bool      `json:"is_staff" form:"is_staff"`
	IsSuperuser bool      `json:"is_superuser" form:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName Specify table name
func (User) TableName() string {
	return "sys_user"
}

// IsAdmin reports whether the user holds both staff and superuser flags.
func (u *User) IsAdmin() bool {
	return u.IsStaff && u.IsSuperuser
}

// CanManageProducts returns true for administrators and fails with a
// permission-denied error for everyone else.
func (u *User) CanManageProducts() (bool, error) {
	if !u.IsAdmin() {
		return false, errors.Wrap(ErrPermissionDenied, "only administrators can manage products")
	}
	return true, nil
}

// CanViewOrders reports whether the user may see an order owned by
// ownerID: owners see their own orders, admins see everything.
func (u *User) CanViewOrders(ownerID int64) bool {
	return u.ID == ownerID || u.IsAdmin()
}

// Equal compares users by id only.
func (u *User) Equal(other *User) bool {
	if other == nil {
		return false
	}
	return u.ID == other.ID
}

func (u *User) String() string {
	return fmt.Sprintf("User(id=%d, email=%s)", u.ID, u.Email)
}
