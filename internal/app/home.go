package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/gadgetstore/storefront/internal/core/domain"
	"github.com/gadgetstore/storefront/internal/core/ports"
	"github.com/gadgetstore/storefront/internal/core/store"
)

// HomeController backs the product browsing screen: the catalogue list plus
// the cart badge.
type HomeController struct {
	mu       sync.Mutex
	products ports.ProductAPI
	cart     *store.Cart
	log      zerolog.Logger

	items   []domain.Product
	loading bool
	err     error
	closed  bool
}

func NewHomeController(products ports.ProductAPI, cart *store.Cart, log zerolog.Logger) *HomeController {
	return &HomeController{products: products, cart: cart, log: log}
}

// Load fetches the catalogue. A failure is kept for display and the previous
// list stays untouched; Load doubles as the retry action. A response arriving
// after Close is dropped.
func (h *HomeController) Load(ctx context.Context) {
	h.mu.Lock()
	h.loading = true
	h.err = nil
	h.mu.Unlock()

	items, err := h.products.ListProducts(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.loading = false
	if err != nil {
		h.log.Warn().Err(err).Msg("failed to fetch products")
		h.err = err
		return
	}
	h.items = items
}

// Products returns the last successfully loaded catalogue.
func (h *HomeController) Products() []domain.Product {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.items
}

// Loading reports whether a fetch is in flight.
func (h *HomeController) Loading() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loading
}

// Err returns the failure from the last fetch, nil on success.
func (h *HomeController) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// CartBadge is the quantity shown on the cart indicator.
func (h *HomeController) CartBadge() int {
	return h.cart.Count()
}

// Close marks the screen unmounted; in-flight responses no longer apply.
func (h *HomeController) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
}
