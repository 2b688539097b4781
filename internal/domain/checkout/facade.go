package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/shoplite/internal/domain/cart"
)

// Facade coordinates discount application and purchase finalization for a
// single checkout request. Construct a fresh facade per request: once
// Checkout clears the cart there is no rollback path.
//
// Applying a discount replaces any previously applied one, so at most one
// wrapper is active. Each wrapper wraps a fresh CartTotal over the cart as
// it stands when the facade runs.
type Facade struct {
	cart     *cart.Cart
	discount TotalSource
}

// NewFacade returns an armed facade over the given cart with no discount.
func NewFacade(c *cart.Cart) *Facade {
	return &Facade{cart: c}
}

// ApplyPercentageDiscount sets a percentage discount as the active wrapper.
func (f *Facade) ApplyPercentageDiscount(percentage decimal.Decimal) {
	f.discount = NewPercentageDiscount(NewCartTotal(f.cart), percentage)
}

// ApplyFlatDiscount sets a flat discount as the active wrapper.
func (f *Facade) ApplyFlatDiscount(amount decimal.Decimal) {
	f.discount = NewFlatDiscount(NewCartTotal(f.cart), amount)
}

// Checkout computes the total through the active discount wrapper, or the
// plain cart total when none is set, then empties the cart. An empty cart
// checks out at zero.
func (f *Facade) Checkout() decimal.Decimal {
	source := f.discount
	if source == nil {
		source = NewCartTotal(f.cart)
	}
	total := source.Total()
	f.cart.Clear()
	return total
}
