package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/gadgetstore/storefront/internal/core/domain"
	"github.com/gadgetstore/storefront/internal/core/ports"
)

// AdminController backs the product management screen. The local list only
// changes after the server confirms a mutation: a delete that fails leaves
// the row in place.
type AdminController struct {
	mu       sync.Mutex
	products ports.ProductAPI
	log      zerolog.Logger

	items   []domain.Product
	loading bool
	err     error
	closed  bool
}

func NewAdminController(products ports.ProductAPI, log zerolog.Logger) *AdminController {
	return &AdminController{products: products, log: log}
}

// Load fetches the catalogue. Also used for pull-to-refresh.
func (a *AdminController) Load(ctx context.Context) {
	a.mu.Lock()
	a.loading = true
	a.err = nil
	a.mu.Unlock()

	items, err := a.products.ListProducts(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.loading = false
	if err != nil {
		a.log.Warn().Err(err).Msg("failed to load products for admin panel")
		a.err = err
		return
	}
	a.items = items
}

// Delete removes the product on the server, then drops it from the local
// list. On failure the list is untouched and the error is returned for the
// screen's alert.
func (a *AdminController) Delete(ctx context.Context, id string) error {
	if err := a.products.DeleteProduct(ctx, id); err != nil {
		a.log.Warn().Err(err).Str("product_id", id).Msg("failed to delete product")
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil
	}
	for i := range a.items {
		if a.items[i].ID == id {
			a.items = append(a.items[:i], a.items[i+1:]...)
			break
		}
	}
	return nil
}

// Products returns the current list.
func (a *AdminController) Products() []domain.Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.items
}

// Loading reports whether a fetch is in flight.
func (a *AdminController) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

// Err returns the failure from the last fetch, nil on success.
func (a *AdminController) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Close marks the screen unmounted; in-flight responses no longer apply.
func (a *AdminController) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
}
