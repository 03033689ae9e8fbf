package ports

import (
	"context"
	"io"

	"github.com/gadgetstore/storefront/internal/core/domain"
)

// AuthAPI is the slice of the remote API used by the session store.
type AuthAPI interface {
	// Login exchanges credentials for a session. The returned session carries
	// the bearer token and the user record exactly as the server sent them.
	Login(ctx context.Context, email, password string) (domain.Session, error)
}

// ProductInput carries the fields of a product create or update. The tags
// mirror the validation the original form enforced before submitting.
type ProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image" validate:"required,url"`
}

// ProductAPI is the slice of the remote API used by the browsing and admin
// screens.
type ProductAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	CreateProduct(ctx context.Context, in ProductInput) (domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in ProductInput) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ImageUploader uploads an image and returns the public URL the server
// assigned to it.
type ImageUploader interface {
	UploadImage(ctx context.Context, filename string, r io.Reader) (string, error)
}
