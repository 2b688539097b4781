package handler

import (
	"net/http"
	"strconv"

	"github.com/go-faster/jx"
)

// AddToWishlist records a product ID on the wishlist. Re-adding the same
// product is idempotent.
func (h *Handler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.shop.AddToWishlist(id); err != nil {
		respondDomainError(w, r, err)
		return
	}

	respond(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("message")
		e.Str("added to wishlist")
		e.ObjEnd()
	})
}

// ListWishlist resolves the wished IDs into product projections.
func (h *Handler) ListWishlist(w http.ResponseWriter, r *http.Request) {
	products := h.shop.WishlistProducts()
	respond(w, http.StatusOK, func(e *jx.Encoder) {
		encodeProducts(e, products)
	})
}

// SubscribePriceDrop registers an email for price-drop notifications on a
// product name.
func (h *Handler) SubscribePriceDrop(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "cannot read body")
		return
	}

	var productName, email string
	d := jx.DecodeBytes(body)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "product":
			productName, err = d.Str()
			return err
		case "email":
			email, err = d.Str()
			return err
		default:
			return d.Skip()
		}
	}); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if productName == "" || email == "" {
		respondError(w, http.StatusBadRequest, "product and email are required")
		return
	}

	h.shop.SubscribePriceDrop(productName, email)
	respond(w, http.StatusAccepted, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("message")
		e.Str("subscribed")
		e.ObjEnd()
	})
}
