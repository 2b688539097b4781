package bundle

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/xenking/shoplite/internal/domain/product"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestBundleTotal(t *testing.T) {
	laptop := product.New("Electronics", "Laptop", d("1000"), 10)
	phone := product.New("Electronics", "Smartphone", d("500"), 20)

	b := New("Laptop + Smartphone", []*product.Product{laptop, phone}, d("10"))
	assert.True(t, d("1350").Equal(b.Total()), "got %s", b.Total())
}

func TestBundleTotalReflectsLivePrices(t *testing.T) {
	laptop := product.New("Electronics", "Laptop", d("1000"), 10)
	phone := product.New("Electronics", "Smartphone", d("500"), 20)
	b := New("Laptop + Smartphone", []*product.Product{laptop, phone}, d("10"))

	laptop.Price = d("800")
	assert.True(t, d("1170").Equal(b.Total()), "bundle total must track current prices, got %s", b.Total())
}

func TestBundleTotalZeroDiscount(t *testing.T) {
	p := product.New("Clothing", "T-Shirt", d("20"), 50)
	b := New("Solo", []*product.Product{p}, decimal.Zero)
	assert.True(t, d("20").Equal(b.Total()))
}
