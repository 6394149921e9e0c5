package store

import (
	"context"

	"github.com/example/storefront/internal/domain/catalog"
	"github.com/example/storefront/internal/domain/user"
)

// ProductStore is the authoritative product catalog. Stock mutations go
// through UpdateStock so every backend persists the decrement immediately.
type ProductStore interface {
	GetProduct(ctx context.Context, id string) (*catalog.Product, bool)
	ListProducts(ctx context.Context, opts catalog.FilterOptions) []*catalog.Product
	CreateProduct(ctx context.Context, p *catalog.Product) error
	UpdateProduct(ctx context.Context, p *catalog.Product) bool
	DeleteProduct(ctx context.Context, id string) bool
	UpdateStock(ctx context.Context, id string, stock int) error
}

// UserStore persists accounts.
type UserStore interface {
	CreateUser(ctx context.Context, u *user.User) error
	GetUser(ctx context.Context, id string) (*user.User, bool)
	GetUserByEmail(ctx context.Context, email string) (*user.User, bool)
}
