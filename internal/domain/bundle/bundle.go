// Package bundle describes composite offers: a fixed set of products sold
// together at a percentage discount off the sum of member prices.
package bundle

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/shoplite/internal/domain/product"
)

// ErrNotFound is returned when a requested bundle does not exist.
var ErrNotFound = errors.New("bundle not found")

var hundred = decimal.NewFromInt(100)

// Bundle is a named, read-only group of products with a percentage discount.
// Members are references into the inventory, so the total always reflects
// current prices rather than a snapshot taken at construction time.
type Bundle struct {
	Name               string
	Products           []*product.Product
	DiscountPercentage decimal.Decimal
}

// New constructs a bundle over the given products.
func New(name string, products []*product.Product, discountPercentage decimal.Decimal) *Bundle {
	return &Bundle{
		Name:               name,
		Products:           products,
		DiscountPercentage: discountPercentage,
	}
}

// Total returns the sum of member prices reduced by the bundle discount.
func (b *Bundle) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range b.Products {
		sum = sum.Add(p.Price)
	}
	return sum.Sub(sum.Mul(b.DiscountPercentage).Div(hundred))
}

// Catalog provides lookup over the available bundles.
type Catalog interface {
	List() []*Bundle
	GetByName(name string) (*Bundle, error)
}
