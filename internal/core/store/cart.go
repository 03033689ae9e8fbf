package store

import (
	"sync"

	"github.com/gadgetstore/storefront/internal/core/domain"
)

// Cart holds the in-memory list of selected products with quantities. Lines
// keep insertion order; adding an already-present product merges into its
// existing line instead of appending a second one. Cart contents live for the
// process only and are never persisted.
type Cart struct {
	mu    sync.Mutex
	lines []domain.CartLine
	subs  subscribers
}

func NewCart() *Cart {
	return &Cart{}
}

// Subscribe registers fn to run after every mutation. The returned function
// cancels the subscription.
func (c *Cart) Subscribe(fn func()) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subs.add(fn)
}

// AddItem puts one unit of p in the cart. An existing line for p.ID gains
// quantity 1; otherwise a new line is appended at the end.
func (c *Cart) AddItem(p domain.Product) {
	c.mu.Lock()
	merged := false
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		c.lines = append(c.lines, domain.CartLine{Product: p, Quantity: 1})
	}
	c.mu.Unlock()

	// Subscribers read back through the cart's accessors, so they run
	// outside the lock.
	c.subs.notify()
}

// RemoveItem deletes the whole line for productID. Removing an absent product
// is a no-op.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.mu.Unlock()
			c.subs.notify()
			return
		}
	}
	c.mu.Unlock()
}

// DecreaseQuantity lowers the line's quantity by one. A quantity-1 line is
// removed entirely, so quantity never reaches zero while the line exists.
// Decreasing an absent product is a no-op.
func (c *Cart) DecreaseQuantity(productID string) {
	c.mu.Lock()
	for i := range c.lines {
		if c.lines[i].Product.ID != productID {
			continue
		}
		if c.lines[i].Quantity > 1 {
			c.lines[i].Quantity--
		} else {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		c.mu.Unlock()
		c.subs.notify()
		return
	}
	c.mu.Unlock()
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()

	c.subs.notify()
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is the sum of price × quantity over all lines.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Count is the sum of quantities over all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var count int
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}
