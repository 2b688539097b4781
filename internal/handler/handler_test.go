package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/shoplite/internal/domain/bundle"
	"github.com/xenking/shoplite/internal/domain/cart"
	"github.com/xenking/shoplite/internal/domain/product"
	"github.com/xenking/shoplite/internal/domain/shop"
	"github.com/xenking/shoplite/internal/storage/memory"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

type nopNotifier struct{}

func (nopNotifier) Subscribe(_, _ string)                       {}
func (nopNotifier) PriceDropped(_ string, _, _ decimal.Decimal) {}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	inv := memory.NewInventory()
	inv.Add(product.New("Electronics", "Laptop", d("1000"), 10))
	inv.Add(product.New("Electronics", "Smartphone", d("500"), 20))
	inv.Add(product.New("Clothing", "T-Shirt", d("20"), 50))

	laptop, err := inv.GetByName("Laptop")
	require.NoError(t, err)
	phone, err := inv.GetByName("Smartphone")
	require.NoError(t, err)

	bundles := memory.NewBundles([]*bundle.Bundle{
		bundle.New("Laptop + Smartphone", []*product.Product{laptop, phone}, d("10")),
	})

	svc := shop.NewService(inv, bundles, cart.New(), memory.NewWishlist(), memory.NewReceipts(), nopNotifier{})

	mux := http.NewServeMux()
	New(svc).Register(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return resp, nil
	}
	return resp, decoded
}

func getJSONArray(t *testing.T, url string) (*http.Response, []any) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decoded []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestListProducts(t *testing.T) {
	srv := newTestServer(t)

	resp, products := getJSONArray(t, srv.URL+"/api/products")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, products, 3)

	first := products[0].(map[string]any)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "Laptop", first["name"])
	assert.Equal(t, float64(1000), first["price"])
	assert.Equal(t, float64(10), first["stock"])
}

func TestAddToCart(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := newTestServer(t)
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/cart/items",
			`{"name": "Laptop", "quantity": 2}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		items := body["cart"].([]any)
		require.Len(t, items, 1)
		line := items[0].(map[string]any)
		assert.Equal(t, "Laptop", line["name"])
		assert.Equal(t, float64(2), line["quantity"])
	})

	t.Run("unknown product is 404", func(t *testing.T) {
		srv := newTestServer(t)
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/cart/items",
			`{"name": "Toaster", "quantity": 1}`)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "product not found", body["message"])
	})

	t.Run("insufficient stock is 409", func(t *testing.T) {
		srv := newTestServer(t)
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/cart/items",
			`{"name": "Laptop", "quantity": 99}`)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Contains(t, body["message"], "insufficient stock for Laptop")
	})

	t.Run("zero quantity is 422", func(t *testing.T) {
		srv := newTestServer(t)
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/cart/items",
			`{"name": "Laptop", "quantity": 0}`)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		srv := newTestServer(t)
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/cart/items", `{not json`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAddBundleToCart(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := newTestServer(t)
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/cart/bundle",
			`{"name": "Laptop + Smartphone"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(1350), body["bundle_total"])
		assert.Len(t, body["cart"].([]any), 2)
	})

	t.Run("unknown bundle is 404", func(t *testing.T) {
		srv := newTestServer(t)
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/cart/bundle",
			`{"name": "No Such Bundle"}`)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCheckout(t *testing.T) {
	t.Run("percentage discount", func(t *testing.T) {
		srv := newTestServer(t)
		_, _ = doJSON(t, http.MethodPost, srv.URL+"/api/cart/items",
			`{"name": "Laptop", "quantity": 1}`)
		_, _ = doJSON(t, http.MethodPost, srv.URL+"/api/cart/items",
			`{"name": "T-Shirt", "quantity": 2}`)

		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/checkout",
			`{"discount_type": "percentage", "discount_value": 10}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(936), body["total"])
		assert.NotEmpty(t, body["order_id"])

		// Cart is cleared; a second checkout totals zero.
		resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/checkout", `{}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(0), body["total"])
	})

	t.Run("unknown discount type is 400", func(t *testing.T) {
		srv := newTestServer(t)
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/checkout",
			`{"discount_type": "bogo", "discount_value": 1}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("receipts listed under orders", func(t *testing.T) {
		srv := newTestServer(t)
		_, _ = doJSON(t, http.MethodPost, srv.URL+"/api/checkout", `{}`)

		resp, orders := getJSONArray(t, srv.URL+"/api/orders")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, orders, 1)
		assert.NotEmpty(t, orders[0].(map[string]any)["order_id"])
	})
}

func TestSearchAndFilter(t *testing.T) {
	srv := newTestServer(t)

	_, results := getJSONArray(t, srv.URL+"/api/products/search?q=phone")
	require.Len(t, results, 1)
	assert.Equal(t, "Smartphone", results[0].(map[string]any)["name"])

	_, results = getJSONArray(t, srv.URL+"/api/products/filter?category=clothing")
	require.Len(t, results, 1)
	assert.Equal(t, "T-Shirt", results[0].(map[string]any)["name"])
}

func TestWishlist(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/wishlist/1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/wishlist/999", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	respList, wished := getJSONArray(t, srv.URL+"/api/wishlist")
	assert.Equal(t, http.StatusOK, respList.StatusCode)
	require.Len(t, wished, 1)
	assert.Equal(t, "Laptop", wished[0].(map[string]any)["name"])
}

func TestAddProduct(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/products",
		`{"category": "Home Appliances", "name": "Toaster", "price": 35, "stock": 5}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(4), body["id"])

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/products", `{"price": 1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "name is required")
}

func TestUpdatePrice(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPut, srv.URL+"/api/products/1/price", `{"price": 900}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(900), body["price"])

	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/products/999/price", `{"price": 1}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/products/1/price", `{"price": -5}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubscribe(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/notifications/subscribe",
		`{"product": "Laptop", "email": "a@example.com"}`)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/notifications/subscribe",
		`{"product": "Laptop"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
