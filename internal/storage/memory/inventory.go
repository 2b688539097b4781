// Package memory provides the in-memory storage backing the shop. All state
// lives for the process lifetime; there is no durability (deliberate scope
// cut). Mutexes keep individual operations safe under concurrent requests,
// but there is no cross-operation transactionality: callers that
// check-then-reduce stock accept the race window.
package memory

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/xenking/shoplite/internal/domain/product"
)

var _ product.Inventory = (*Inventory)(nil)

// Inventory is the process-wide product collection. It owns the ID
// allocator: products receive a monotonically increasing ID when added, and
// IDs are never reused.
type Inventory struct {
	mu       sync.Mutex
	products []*product.Product
	nextID   int
}

// NewInventory returns an empty inventory with IDs starting at 1.
func NewInventory() *Inventory {
	return &Inventory{nextID: 1}
}

// Add registers a product, assigning an ID if it has none. A product whose
// ID is already present is silently ignored.
func (inv *Inventory) Add(p *product.Product) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if p.ID != 0 {
		for _, existing := range inv.products {
			if existing.ID == p.ID {
				return
			}
		}
		if p.ID >= inv.nextID {
			inv.nextID = p.ID + 1
		}
	} else {
		p.ID = inv.nextID
		inv.nextID++
	}
	inv.products = append(inv.products, p)
}

// List returns all products in insertion order.
func (inv *Inventory) List() []*product.Product {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	out := make([]*product.Product, len(inv.products))
	copy(out, inv.products)
	return out
}

// GetByID returns the product with the given ID.
func (inv *Inventory) GetByID(id int) (*product.Product, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for _, p := range inv.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, product.ErrNotFound
}

// GetByName returns the first product with the given name.
func (inv *Inventory) GetByName(name string) (*product.Product, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.byNameLocked(name)
}

func (inv *Inventory) byNameLocked(name string) (*product.Product, error) {
	for _, p := range inv.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, product.ErrNotFound
}

// InStock reports whether the named product exists with at least quantity
// units available.
func (inv *Inventory) InStock(name string, quantity int) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	p, err := inv.byNameLocked(name)
	return err == nil && p.Stock >= quantity
}

// ReduceStock decrements the named product's stock, flooring at zero. A
// missing product is a no-op, not an error.
func (inv *Inventory) ReduceStock(name string, quantity int) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	p, err := inv.byNameLocked(name)
	if err != nil {
		return
	}
	p.Stock -= quantity
	if p.Stock < 0 {
		p.Stock = 0
	}
}

// AddStock increments the named product's stock. A missing product is a
// no-op.
func (inv *Inventory) AddStock(name string, quantity int) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	p, err := inv.byNameLocked(name)
	if err != nil {
		return
	}
	p.Stock += quantity
}

// SetPrice updates a product's price and returns the product together with
// the previous price.
func (inv *Inventory) SetPrice(id int, price decimal.Decimal) (*product.Product, decimal.Decimal, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for _, p := range inv.products {
		if p.ID == id {
			old := p.Price
			p.Price = price
			return p, old, nil
		}
	}
	return nil, decimal.Zero, product.ErrNotFound
}
