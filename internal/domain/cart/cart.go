// Package cart holds the single-session shopping cart. The cart is a pure
// data holder: totals are computed by the checkout pipeline, never here.
package cart

import (
	"sync"

	"github.com/xenking/shoplite/internal/domain/product"
)

// LineItem is one (product, quantity) entry in the cart.
type LineItem struct {
	Product  *product.Product
	Quantity int
}

// Cart is an ordered sequence of line items. Adding the same product twice
// creates two entries; entries are never merged. The mutex keeps individual
// operations safe under concurrent HTTP requests, nothing more.
type Cart struct {
	mu    sync.Mutex
	items []LineItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add appends a new line item. It does not merge with existing entries for
// the same product.
func (c *Cart) Add(p *product.Product, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, LineItem{Product: p, Quantity: quantity})
}

// Items returns a snapshot of the current line items.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of line items.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear empties the cart. It is called only by checkout finalization.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
