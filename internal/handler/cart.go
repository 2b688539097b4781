package handler

import (
	"net/http"

	"github.com/go-faster/jx"

	"github.com/xenking/shoplite/internal/domain/cart"
	"github.com/xenking/shoplite/internal/domain/shop"
)

func encodeCart(e *jx.Encoder, items []cart.LineItem) {
	e.ArrStart()
	for _, item := range items {
		e.ObjStart()
		e.FieldStart("name")
		e.Str(item.Product.Name)
		e.FieldStart("price")
		e.Float64(item.Product.Price.InexactFloat64())
		e.FieldStart("quantity")
		e.Int(item.Quantity)
		e.ObjEnd()
	}
	e.ArrEnd()
}

// ViewCart returns the cart line items.
func (h *Handler) ViewCart(w http.ResponseWriter, r *http.Request) {
	items := h.shop.Cart()
	respond(w, http.StatusOK, func(e *jx.Encoder) {
		encodeCart(e, items)
	})
}

// AddToCart appends a line item and decrements inventory stock. The product
// is referenced by id when given, by name otherwise. Quantity defaults to 1.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "cannot read body")
		return
	}

	ref := shop.CartRef{}
	quantity := 1
	d := jx.DecodeBytes(body)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "id", "product_id":
			ref.ID, err = d.Int()
			return err
		case "name":
			ref.Name, err = d.Str()
			return err
		case "quantity":
			quantity, err = d.Int()
			return err
		default:
			return d.Skip()
		}
	}); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if _, err := h.shop.AddToCart(ref, quantity); err != nil {
		respondDomainError(w, r, err)
		return
	}

	items := h.shop.Cart()
	respond(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("cart")
		encodeCart(e, items)
		e.ObjEnd()
	})
}

// AddBundleToCart adds one unit of each member of a named bundle.
func (h *Handler) AddBundleToCart(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "cannot read body")
		return
	}

	var name string
	d := jx.DecodeBytes(body)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "name", "bundle_name":
			name, err = d.Str()
			return err
		default:
			return d.Skip()
		}
	}); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if name == "" {
		respondError(w, http.StatusBadRequest, "bundle name is required")
		return
	}

	b, err := h.shop.AddBundleToCart(name)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	items := h.shop.Cart()
	respond(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("cart")
		encodeCart(e, items)
		e.FieldStart("bundle_total")
		e.Float64(b.Total().InexactFloat64())
		e.ObjEnd()
	})
}
