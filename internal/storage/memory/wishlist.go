package memory

import (
	"sync"

	"github.com/xenking/shoplite/internal/domain/shop"
)

var _ shop.Wishlist = (*Wishlist)(nil)

// Wishlist keeps wished product IDs in insertion order. Re-adding an ID is
// idempotent.
type Wishlist struct {
	mu    sync.Mutex
	ids   []int
	index map[int]struct{}
}

// NewWishlist returns an empty wishlist.
func NewWishlist() *Wishlist {
	return &Wishlist{index: make(map[int]struct{})}
}

// Add records a product ID unless it is already present.
func (w *Wishlist) Add(productID int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.index[productID]; ok {
		return
	}
	w.index[productID] = struct{}{}
	w.ids = append(w.ids, productID)
}

// Contains reports whether the ID is on the wishlist.
func (w *Wishlist) Contains(productID int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.index[productID]
	return ok
}

// IDs returns the wished product IDs in insertion order.
func (w *Wishlist) IDs() []int {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]int, len(w.ids))
	copy(out, w.ids)
	return out
}
