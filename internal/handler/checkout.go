package handler

import (
	"net/http"

	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/xenking/shoplite/internal/domain/shop"
)

// Checkout finalizes the purchase: the optional discount is applied, the
// total computed, and the cart emptied.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "cannot read body")
		return
	}

	req := shop.CheckoutRequest{}
	if len(body) > 0 {
		d := jx.DecodeBytes(body)
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "discount_type":
				s, err := d.Str()
				req.DiscountType = shop.DiscountType(s)
				return err
			case "discount_value":
				f, err := d.Float64()
				req.DiscountValue = decimal.NewFromFloat(f)
				return err
			default:
				return d.Skip()
			}
		}); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	receipt, err := h.shop.Checkout(req)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respond(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("order_id")
		e.Str(receipt.ID)
		e.FieldStart("total")
		e.Float64(receipt.Total.InexactFloat64())
		e.ObjEnd()
	})
}

// ListOrders returns every checkout receipt recorded this process lifetime.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	receipts := h.shop.Receipts()
	respond(w, http.StatusOK, func(e *jx.Encoder) {
		e.ArrStart()
		for _, rc := range receipts {
			e.ObjStart()
			e.FieldStart("order_id")
			e.Str(rc.ID)
			e.FieldStart("total")
			e.Float64(rc.Total.InexactFloat64())
			e.FieldStart("discount_type")
			e.Str(string(rc.DiscountType))
			e.FieldStart("created_at")
			e.Str(rc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
			e.ObjEnd()
		}
		e.ArrEnd()
	})
}
