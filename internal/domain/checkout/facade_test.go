package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/shoplite/internal/domain/cart"
)

func TestFacadeCheckout(t *testing.T) {
	t.Run("no discount", func(t *testing.T) {
		c := sampleCart()
		total := NewFacade(c).Checkout()
		assert.True(t, d("1040").Equal(total))
		assert.Equal(t, 0, c.Len(), "checkout must empty the cart")
	})

	t.Run("percentage discount", func(t *testing.T) {
		c := sampleCart()
		f := NewFacade(c)
		f.ApplyPercentageDiscount(d("10"))
		assert.True(t, d("936").Equal(f.Checkout()))
	})

	t.Run("flat discount clamped", func(t *testing.T) {
		c := sampleCart()
		f := NewFacade(c)
		f.ApplyFlatDiscount(d("2000"))
		assert.True(t, f.Checkout().IsZero())
	})

	t.Run("later discount replaces earlier one", func(t *testing.T) {
		c := sampleCart()
		f := NewFacade(c)
		f.ApplyFlatDiscount(d("2000"))
		f.ApplyPercentageDiscount(d("10"))
		assert.True(t, d("936").Equal(f.Checkout()))
	})

	t.Run("second checkout returns zero", func(t *testing.T) {
		c := sampleCart()
		require.False(t, NewFacade(c).Checkout().IsZero())

		total := NewFacade(c).Checkout()
		assert.True(t, total.IsZero())
		assert.Equal(t, 0, c.Len())
	})

	t.Run("empty cart checks out at zero", func(t *testing.T) {
		assert.True(t, NewFacade(cart.New()).Checkout().IsZero())
	})
}
