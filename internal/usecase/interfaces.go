package usecase

import (
	"context"

	"github.com/shopcore/shopcore/internal/domain"
)

// UserRepository is the persistence boundary for accounts. Create must
// enforce email uniqueness and hash the credential; the use cases perform
// no validation of their own beyond constructing the entity.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, userID int64) error
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAllPaginatedFiltered(ctx context.Context, offset, limit int, searchQuery string) ([]domain.User, int64, error)
}

// ProductRepository is the persistence boundary for the catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, productID int64) error
	GetByID(ctx context.Context, productID int64) (*domain.Product, error)
	GetAllPaginatedFiltered(ctx context.Context, offset, limit int, searchQuery string) ([]domain.Product, int64, error)
}

// OrderRepository is the persistence boundary for orders. Implementations
// resolve the product reference on every read.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByOrderID(ctx context.Context, orderID int64) (*domain.Order, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Order, error)
	GetAllPaginatedFiltered(ctx context.Context, offset, limit int, searchQuery string) ([]domain.Order, int64, error)
}

// AuthGateway abstracts credential verification and token issuance.
// CheckPassword answers false for unknown users so callers cannot tell a
// missing account from a wrong password.
type AuthGateway interface {
	CheckPassword(ctx context.Context, userID int64, password string) bool
	SetPassword(ctx context.Context, userID int64, newPassword string) error
	CreateTokens(ctx context.Context, userID int64) (access string, refresh string, err error)
}
