package handler

import (
	"net/http"

	"github.com/go-faster/jx"
)

// ListBundles returns every bundle with its live discounted total.
func (h *Handler) ListBundles(w http.ResponseWriter, r *http.Request) {
	bundles := h.shop.ListBundles()
	respond(w, http.StatusOK, func(e *jx.Encoder) {
		e.ArrStart()
		for _, b := range bundles {
			e.ObjStart()
			e.FieldStart("name")
			e.Str(b.Name)
			e.FieldStart("products")
			e.ArrStart()
			for _, p := range b.Products {
				e.Str(p.Name)
			}
			e.ArrEnd()
			e.FieldStart("price")
			e.Float64(b.Total().InexactFloat64())
			e.ObjEnd()
		}
		e.ArrEnd()
	})
}
