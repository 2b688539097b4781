package notify

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPriceDropDelivery(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := New(zap.New(core), 8)

	n.Subscribe("Laptop", "a@example.com")
	n.Subscribe("Laptop", "b@example.com")
	n.Subscribe("T-Shirt", "c@example.com")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = n.Run(ctx)
		close(done)
	}()

	n.PriceDropped("Laptop", decimal.NewFromInt(1000), decimal.NewFromInt(900))

	require.Eventually(t, func() bool {
		return logs.FilterMessage("price drop notification").Len() == 2
	}, time.Second, 10*time.Millisecond)

	entries := logs.FilterMessage("price drop notification").All()
	emails := make([]string, 0, len(entries))
	for _, e := range entries {
		emails = append(emails, e.ContextMap()["email"].(string))
	}
	assert.ElementsMatch(t, []string{"a@example.com", "b@example.com"}, emails)

	cancel()
	<-done
}

func TestPriceDropNoSubscribers(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := New(zap.New(core), 1)

	n.PriceDropped("Laptop", decimal.NewFromInt(10), decimal.NewFromInt(5))
	n.deliver(<-n.events)

	assert.Zero(t, logs.Len())
}

func TestPriceDropDropsWhenBufferFull(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	n := New(zap.New(core), 1)

	n.PriceDropped("Laptop", decimal.NewFromInt(2), decimal.NewFromInt(1))
	n.PriceDropped("Laptop", decimal.NewFromInt(2), decimal.NewFromInt(1))

	assert.Equal(t, 1, logs.FilterMessage("price drop event dropped, buffer full").Len())
}
