package product

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Product represents a catalog item available for purchase. The ID is
// assigned by the inventory when the product is added and never changes
// afterwards. Stock and Price are mutated only through inventory operations.
type Product struct {
	ID       int
	Category string
	Name     string
	Price    decimal.Decimal
	Stock    int
}

// New creates an unregistered product. The ID stays zero until the product
// is added to an inventory.
func New(category, name string, price decimal.Decimal, stock int) *Product {
	return &Product{
		Category: category,
		Name:     name,
		Price:    price,
		Stock:    stock,
	}
}

// Inventory is the process-wide product collection. Lookups return
// ErrNotFound for missing products; stock mutations on missing products are
// silent no-ops. There is no transactional guarantee between InStock and a
// following ReduceStock.
type Inventory interface {
	Add(p *Product)
	List() []*Product
	GetByID(id int) (*Product, error)
	GetByName(name string) (*Product, error)
	InStock(name string, quantity int) bool
	ReduceStock(name string, quantity int)
	AddStock(name string, quantity int)
	SetPrice(id int, price decimal.Decimal) (*Product, decimal.Decimal, error)
}
