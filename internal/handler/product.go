package handler

import (
	"net/http"
	"strconv"

	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
)

// ListProducts returns the full catalog.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.shop.ListProducts()
	respond(w, http.StatusOK, func(e *jx.Encoder) {
		encodeProducts(e, products)
	})
}

// AddProduct registers a new catalog entry.
func (h *Handler) AddProduct(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "cannot read body")
		return
	}

	var (
		category string
		name     string
		price    decimal.Decimal
		stock    int
	)
	d := jx.DecodeBytes(body)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "category":
			category, err = d.Str()
			return err
		case "name":
			name, err = d.Str()
			return err
		case "price":
			f, err := d.Float64()
			price = decimal.NewFromFloat(f)
			return err
		case "stock":
			stock, err = d.Int()
			return err
		default:
			return d.Skip()
		}
	}); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if price.IsNegative() || stock < 0 {
		respondError(w, http.StatusBadRequest, "price and stock must be non-negative")
		return
	}

	p := h.shop.AddProduct(category, name, price, stock)
	respond(w, http.StatusCreated, func(e *jx.Encoder) {
		encodeProduct(e, p)
	})
}

// SearchProducts performs a case-insensitive substring search over product
// names and categories.
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	results := h.shop.Search(r.URL.Query().Get("q"))
	respond(w, http.StatusOK, func(e *jx.Encoder) {
		encodeProducts(e, results)
	})
}

// FilterProducts returns products matching a category exactly,
// case-insensitively.
func (h *Handler) FilterProducts(w http.ResponseWriter, r *http.Request) {
	results := h.shop.FilterByCategory(r.URL.Query().Get("category"))
	respond(w, http.StatusOK, func(e *jx.Encoder) {
		encodeProducts(e, results)
	})
}

// UpdatePrice changes a product's price, triggering price-drop notifications
// when the price goes down.
func (h *Handler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "cannot read body")
		return
	}

	var (
		price    decimal.Decimal
		hasPrice bool
	)
	d := jx.DecodeBytes(body)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "price" {
			return d.Skip()
		}
		f, err := d.Float64()
		price = decimal.NewFromFloat(f)
		hasPrice = true
		return err
	}); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !hasPrice || price.IsNegative() {
		respondError(w, http.StatusBadRequest, "price must be a non-negative number")
		return
	}

	p, err := h.shop.UpdatePrice(id, price)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respond(w, http.StatusOK, func(e *jx.Encoder) {
		encodeProduct(e, p)
	})
}
