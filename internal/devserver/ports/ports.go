// Package ports defines the interfaces between the devserver's transport,
// service, and persistence layers.
package ports

import (
	"context"

	"github.com/gadgetstore/storefront/internal/core/domain"
	coreports "github.com/gadgetstore/storefront/internal/core/ports"
)

// UserRepository persists user accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// ProductRepository persists catalogue entries.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Insert(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// LoginThrottle limits failed login attempts per email.
type LoginThrottle interface {
	Allow(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements account registration and login.
type AuthService interface {
	Register(ctx context.Context, email, fullName, password string, role domain.Role) (*domain.User, error)
	// Login returns the signed token and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// ProductService implements catalogue use-cases. Inputs reuse the client
// core's ProductInput since both sides speak the same contract.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in coreports.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in coreports.ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
