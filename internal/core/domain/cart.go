package domain

// CartLine is one product and its selected quantity. Quantity is always >= 1
// while the line exists; a cart holds at most one line per product id.
type CartLine struct {
	Product  Product
	Quantity int
}

// Subtotal is the line's contribution to the cart total.
func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// OrderSummary is the snapshot produced by the checkout stub. No order is
// placed anywhere; a future order endpoint would consume this.
type OrderSummary struct {
	Lines []CartLine
	Total float64
	Count int
}
