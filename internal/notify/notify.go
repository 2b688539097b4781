// Package notify implements price-drop notifications. Subscribers register
// an email per product name; when a product's price drops, an event is
// queued and a background worker delivers it. Delivery here is a structured
// log line per subscriber; a real deployment would swap in an email sender.
package notify

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PriceDrop is a single price decrease event.
type PriceDrop struct {
	Product  string
	OldPrice decimal.Decimal
	NewPrice decimal.Decimal
}

// PriceDropNotifier fans price-drop events out to subscribers. Events are
// buffered; when the buffer is full new events are dropped rather than
// blocking the price update path.
type PriceDropNotifier struct {
	lg     *zap.Logger
	events chan PriceDrop

	mu          sync.Mutex
	subscribers map[string][]string
}

// New creates a notifier with the given event buffer size.
func New(lg *zap.Logger, buffer int) *PriceDropNotifier {
	return &PriceDropNotifier{
		lg:          lg,
		events:      make(chan PriceDrop, buffer),
		subscribers: make(map[string][]string),
	}
}

// Subscribe registers an email for price drops on a product name.
func (n *PriceDropNotifier) Subscribe(productName, email string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribers[productName] = append(n.subscribers[productName], email)
}

// PriceDropped queues a price-drop event. It never blocks: if the worker is
// behind and the buffer is full, the event is dropped and counted in logs.
func (n *PriceDropNotifier) PriceDropped(productName string, oldPrice, newPrice decimal.Decimal) {
	e := PriceDrop{Product: productName, OldPrice: oldPrice, NewPrice: newPrice}
	select {
	case n.events <- e:
	default:
		n.lg.Warn("price drop event dropped, buffer full",
			zap.String("product", productName))
	}
}

// Run delivers queued events until ctx is cancelled.
func (n *PriceDropNotifier) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e := <-n.events:
			n.deliver(e)
		}
	}
}

func (n *PriceDropNotifier) deliver(e PriceDrop) {
	n.mu.Lock()
	emails := append([]string(nil), n.subscribers[e.Product]...)
	n.mu.Unlock()

	for _, email := range emails {
		n.lg.Info("price drop notification",
			zap.String("email", email),
			zap.String("product", e.Product),
			zap.String("old_price", e.OldPrice.String()),
			zap.String("new_price", e.NewPrice.String()),
		)
	}
}
