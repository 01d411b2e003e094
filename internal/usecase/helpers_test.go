package usecase

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopcore/shopcore/internal/domain"
)

// fakeUserRepo is an in-memory UserRepository for use-case tests.
type fakeUserRepo struct {
	users       map[int64]*domain.User
	nextID      int64
	createCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func (r *fakeUserRepo) add(u *domain.User) *domain.User {
	if u.ID == 0 {
		u.ID = r.nextID
		r.nextID++
	}
	r.users[u.ID] = u
	return u
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.createCalls++
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, errors.Wrap(domain.ErrEmailTaken, user.Email)
		}
	}
	cp := *user
	return r.add(&cp), nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, found := r.users[user.ID]; !found {
		return nil, errors.Wrap(domain.ErrNotFound, "user not found")
	}
	cp := *user
	r.users[user.ID] = &cp
	return &cp, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, userID int64) error {
	if _, found := r.users[userID]; !found {
		return errors.Wrap(domain.ErrNotFound, "user not found")
	}
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	u, found := r.users[userID]
	if !found {
		return nil, errors.Wrap(domain.ErrNotFound, "user not found")
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.Wrap(domain.ErrNotFound, "user not found")
}

func (r *fakeUserRepo) GetAllPaginatedFiltered(ctx context.Context, offset, limit int, searchQuery string) ([]domain.User, int64, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

type fakeProductRepo struct {
	products    map[int64]*domain.Product
	nextID      int64
	createCalls int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*domain.Product), nextID: 1}
}

func (r *fakeProductRepo) add(p *domain.Product) *domain.Product {
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	r.products[p.ID] = p
	return p
}

func (r *fakeProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	r.createCalls++
	cp := *product
	return r.add(&cp), nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if _, found := r.products[product.ID]; !found {
		return nil, errors.Wrap(domain.ErrNotFound, "product not found")
	}
	cp := *product
	r.products[product.ID] = &cp
	return &cp, nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, productID int64) error {
	if _, found := r.products[productID]; !found {
		return errors.Wrap(domain.ErrNotFound, "product not found")
	}
	delete(r.products, productID)
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, productID int64) (*domain.Product, error) {
	p, found := r.products[productID]
	if !found {
		return nil, errors.Wrap(domain.ErrNotFound, "product not found")
	}
	return p, nil
}

func (r *fakeProductRepo) GetAllPaginatedFiltered(ctx context.Context, offset, limit int, searchQuery string) ([]domain.Product, int64, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

type fakeOrderRepo struct {
	orders   []domain.Order
	products map[int64]domain.Product
	nextID   int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{products: make(map[int64]domain.Product), nextID: 1}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	cp := *order
	cp.ID = r.nextID
	r.nextID++
	cp.Product = r.products[cp.ProductID]
	r.orders = append(r.orders, cp)
	return &cp, nil
}

func (r *fakeOrderRepo) GetByOrderID(ctx context.Context, orderID int64) (*domain.Order, error) {
	for i := range r.orders {
		if r.orders[i].ID == orderID {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, errors.Wrap(domain.ErrNotFound, "order not found")
}

func (r *fakeOrderRepo) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.OwnerID == ownerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetAllPaginatedFiltered(ctx context.Context, offset, limit int, searchQuery string) ([]domain.Order, int64, error) {
	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, int64(len(out)), nil
}

// fakeAuthGateway records credentials in memory and issues fixed tokens.
type fakeAuthGateway struct {
	passwords        map[int64]string
	checkCalls       []int64
	setPasswordCalls []int64
}

func newFakeAuthGateway() *fakeAuthGateway {
	return &fakeAuthGateway{passwords: make(map[int64]string)}
}

func (g *fakeAuthGateway) CheckPassword(ctx context.Context, userID int64, password string) bool {
	g.checkCalls = append(g.checkCalls, userID)
	stored, found := g.passwords[userID]
	return found && stored == password
}

func (g *fakeAuthGateway) SetPassword(ctx context.Context, userID int64, newPassword string) error {
	g.setPasswordCalls = append(g.setPasswordCalls, userID)
	g.passwords[userID] = newPassword
	return nil
}

func (g *fakeAuthGateway) CreateTokens(ctx context.Context, userID int64) (string, string, error) {
	return "access-token", "refresh-token", nil
}
