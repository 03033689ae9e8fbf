package client

import (
	"context"
	"net/http"

	"github.com/gadgetstore/storefront/internal/core/domain"
	"github.com/gadgetstore/storefront/internal/core/ports"
)

// ListProducts fetches the full catalogue.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.doJSON(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	var p domain.Product
	if err := c.doJSON(ctx, http.MethodGet, "/products/"+id, nil, &p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// CreateProduct creates a new product.
func (c *Client) CreateProduct(ctx context.Context, in ports.ProductInput) (domain.Product, error) {
	var p domain.Product
	if err := c.doJSON(ctx, http.MethodPost, "/products", in, &p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// UpdateProduct replaces the product's fields.
func (c *Client) UpdateProduct(ctx context.Context, id string, in ports.ProductInput) (domain.Product, error) {
	var p domain.Product
	if err := c.doJSON(ctx, http.MethodPut, "/products/"+id, in, &p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// DeleteProduct removes the product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/products/"+id, nil, nil)
}
