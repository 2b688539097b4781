package shop

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrUnknownDiscount is returned when a checkout request names a discount
// type other than "percentage" or "flat".
var ErrUnknownDiscount = errors.New("unknown discount type")

// InvalidQuantityError indicates a non-positive requested quantity.
type InvalidQuantityError struct {
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be greater than 0, got %d", e.Quantity)
}

// InsufficientStockError indicates the requested quantity exceeds the
// available stock for a product. For bundles it names the first member that
// is out of stock.
type InsufficientStockError struct {
	Product   string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.Product, e.Requested, e.Available)
}
