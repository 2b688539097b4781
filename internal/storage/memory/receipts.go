package memory

import (
	"sync"

	"github.com/xenking/shoplite/internal/domain/shop"
)

var _ shop.ReceiptStore = (*Receipts)(nil)

// Receipts keeps checkout receipts in order of finalization.
type Receipts struct {
	mu   sync.Mutex
	list []shop.Receipt
}

// NewReceipts returns an empty receipt store.
func NewReceipts() *Receipts {
	return &Receipts{}
}

// Append records a receipt.
func (r *Receipts) Append(receipt shop.Receipt) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, receipt)
}

// List returns all receipts in order.
func (r *Receipts) List() []shop.Receipt {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]shop.Receipt, len(r.list))
	copy(out, r.list)
	return out
}
