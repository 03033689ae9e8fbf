package app

import (
	"github.com/gadgetstore/storefront/internal/core/domain"
	"github.com/gadgetstore/storefront/internal/core/store"
)

// DetailController backs the product detail screen. The product was passed in
// by navigation, so there is nothing to load.
type DetailController struct {
	product domain.Product
	cart    *store.Cart
}

func NewDetailController(product domain.Product, cart *store.Cart) *DetailController {
	return &DetailController{product: product, cart: cart}
}

// Product returns the product on display.
func (d *DetailController) Product() domain.Product {
	return d.product
}

// AddToCart puts one unit of the displayed product in the cart and returns
// the confirmation text the screen shows.
func (d *DetailController) AddToCart() string {
	d.cart.AddItem(d.product)
	return d.product.Name + " added to cart!"
}
