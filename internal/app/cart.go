package app

import (
	"github.com/gadgetstore/storefront/internal/core/domain"
	"github.com/gadgetstore/storefront/internal/core/store"
)

// CartController backs the cart screen: line listing, quantity controls, and
// the checkout stub.
type CartController struct {
	cart *store.Cart
}

func NewCartController(cart *store.Cart) *CartController {
	return &CartController{cart: cart}
}

// Lines returns the cart lines in display order.
func (c *CartController) Lines() []domain.CartLine {
	return c.cart.Lines()
}

// Empty reports whether the empty-cart placeholder should show.
func (c *CartController) Empty() bool {
	return c.cart.Count() == 0
}

// Total is the amount shown in the footer.
func (c *CartController) Total() float64 {
	return c.cart.Total()
}

// Increase adds one more unit of an existing line's product.
func (c *CartController) Increase(line domain.CartLine) {
	c.cart.AddItem(line.Product)
}

// Decrease lowers a line's quantity, removing the line at quantity one.
func (c *CartController) Decrease(productID string) {
	c.cart.DecreaseQuantity(productID)
}

// Remove deletes a whole line regardless of quantity.
func (c *CartController) Remove(productID string) {
	c.cart.RemoveItem(productID)
}

// Checkout is a stub: it snapshots the cart into an order summary and clears
// it. No order is submitted anywhere yet.
func (c *CartController) Checkout() domain.OrderSummary {
	summary := domain.OrderSummary{
		Lines: c.cart.Lines(),
		Total: c.cart.Total(),
		Count: c.cart.Count(),
	}
	c.cart.Clear()
	return summary
}
