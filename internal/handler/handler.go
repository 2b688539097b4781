// Package handler exposes the shop service over HTTP. The JSON surface is
// hand-written on net/http and go-faster/jx; errors use the same
// {code, message} body shape on every route.
package handler

import (
	"net/http"

	"github.com/xenking/shoplite/internal/domain/shop"
)

// Handler holds the HTTP routes over the shop service.
type Handler struct {
	shop *shop.Service
}

// New constructs a Handler over the given shop service.
func New(svc *shop.Service) *Handler {
	return &Handler{shop: svc}
}

// Register attaches every API route to the mux under /api.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/products", h.ListProducts)
	mux.HandleFunc("POST /api/products", h.AddProduct)
	mux.HandleFunc("GET /api/products/search", h.SearchProducts)
	mux.HandleFunc("GET /api/products/filter", h.FilterProducts)
	mux.HandleFunc("PUT /api/products/{id}/price", h.UpdatePrice)
	mux.HandleFunc("GET /api/bundles", h.ListBundles)
	mux.HandleFunc("GET /api/cart", h.ViewCart)
	mux.HandleFunc("POST /api/cart/items", h.AddToCart)
	mux.HandleFunc("POST /api/cart/bundle", h.AddBundleToCart)
	mux.HandleFunc("POST /api/checkout", h.Checkout)
	mux.HandleFunc("GET /api/orders", h.ListOrders)
	mux.HandleFunc("POST /api/wishlist/{id}", h.AddToWishlist)
	mux.HandleFunc("GET /api/wishlist", h.ListWishlist)
	mux.HandleFunc("POST /api/notifications/subscribe", h.SubscribePriceDrop)
}
