package handler

import (
	"io"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/shoplite/internal/domain/bundle"
	"github.com/xenking/shoplite/internal/domain/product"
	"github.com/xenking/shoplite/internal/domain/shop"
)

const maxBodyBytes = 1 << 20

// readBody reads a size-capped request body.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
}

// respond writes a JSON document produced by encode.
func respond(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	e := &jx.Encoder{}
	encode(e)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// respondError writes the {code, message} error body used on every route.
func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("code")
		e.Int(status)
		e.FieldStart("message")
		e.Str(message)
		e.ObjEnd()
	})
}

// respondDomainError maps domain errors onto HTTP statuses: lookup misses
// are 404, stock shortages 409, bad quantities 422, unknown discount types
// 400. Anything unmapped is a 500 and gets logged.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, product.ErrNotFound):
		respondError(w, http.StatusNotFound, "product not found")
	case errors.Is(err, bundle.ErrNotFound):
		respondError(w, http.StatusNotFound, "bundle not found")
	case errors.Is(err, shop.ErrUnknownDiscount):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		var stockErr *shop.InsufficientStockError
		if errors.As(err, &stockErr) {
			respondError(w, http.StatusConflict, stockErr.Error())
			return
		}
		var qtyErr *shop.InvalidQuantityError
		if errors.As(err, &qtyErr) {
			respondError(w, http.StatusUnprocessableEntity, qtyErr.Error())
			return
		}
		zctx.From(r.Context()).Error("unhandled domain error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func encodeProduct(e *jx.Encoder, p *product.Product) {
	e.ObjStart()
	e.FieldStart("id")
	e.Int(p.ID)
	e.FieldStart("category")
	e.Str(p.Category)
	e.FieldStart("name")
	e.Str(p.Name)
	e.FieldStart("price")
	e.Float64(p.Price.InexactFloat64())
	e.FieldStart("stock")
	e.Int(p.Stock)
	e.ObjEnd()
}

func encodeProducts(e *jx.Encoder, products []*product.Product) {
	e.ArrStart()
	for _, p := range products {
		encodeProduct(e, p)
	}
	e.ArrEnd()
}
