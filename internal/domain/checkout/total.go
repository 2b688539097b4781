// Package checkout implements the cart total pipeline: a base calculation
// over the cart's line items plus at most one discount wrapper, and the
// facade that finalizes a purchase.
package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/shoplite/internal/domain/cart"
)

var hundred = decimal.NewFromInt(100)

// TotalSource produces a cart total. CartTotal is the base source; discount
// wrappers adjust an inner source's total.
type TotalSource interface {
	Total() decimal.Decimal
}

// CartTotal computes the undiscounted total: sum of price * quantity over
// the cart's line items. An empty cart totals zero.
type CartTotal struct {
	cart *cart.Cart
}

// NewCartTotal returns the base total source for the given cart.
func NewCartTotal(c *cart.Cart) *CartTotal {
	return &CartTotal{cart: c}
}

// Total sums price * quantity across all line items.
func (t *CartTotal) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range t.cart.Items() {
		qty := decimal.NewFromInt(int64(item.Quantity))
		sum = sum.Add(item.Product.Price.Mul(qty))
	}
	return sum
}

// PercentageDiscount reduces an inner total by a percentage. The percentage
// is deliberately not clamped to [0,100]: values outside that range pass
// through arithmetically.
type PercentageDiscount struct {
	inner      TotalSource
	percentage decimal.Decimal
}

// NewPercentageDiscount wraps inner with a percentage discount.
func NewPercentageDiscount(inner TotalSource, percentage decimal.Decimal) *PercentageDiscount {
	return &PercentageDiscount{inner: inner, percentage: percentage}
}

// Total returns inner total minus inner total * percentage / 100.
func (d *PercentageDiscount) Total() decimal.Decimal {
	total := d.inner.Total()
	return total.Sub(total.Mul(d.percentage).Div(hundred))
}

// FlatDiscount subtracts a flat amount from an inner total, floored at zero.
type FlatDiscount struct {
	inner  TotalSource
	amount decimal.Decimal
}

// NewFlatDiscount wraps inner with a flat discount.
func NewFlatDiscount(inner TotalSource, amount decimal.Decimal) *FlatDiscount {
	return &FlatDiscount{inner: inner, amount: amount}
}

// Total returns max(inner total - amount, 0). It never goes negative.
func (d *FlatDiscount) Total() decimal.Decimal {
	total := d.inner.Total().Sub(d.amount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}
