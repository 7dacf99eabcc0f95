package services

import (
	"context"
	"time"
)

// Latency is the artificial delay profile applied to store-backed operations.
// The delays stand in for network round-trips and are part of the observable
// contract: loading indicators in the presentation layer depend on them.
// Relative ordering matters more than the exact values; order creation must
// stay the slowest operation and cache hits must stay an order of magnitude
// faster than misses.
type Latency struct {
	CacheHit      time.Duration
	CatalogRead   time.Duration
	Login         time.Duration
	Register      time.Duration
	OrderCreate   time.Duration
	OrderQuery    time.Duration
	ProductWrite  time.Duration
	ProductDelete time.Duration
}

// DefaultLatency mirrors the reference timings.
func DefaultLatency() Latency {
	return Latency{
		CacheHit:      50 * time.Millisecond,
		CatalogRead:   600 * time.Millisecond,
		Login:         800 * time.Millisecond,
		Register:      1000 * time.Millisecond,
		OrderCreate:   1500 * time.Millisecond,
		OrderQuery:    600 * time.Millisecond,
		ProductWrite:  600 * time.Millisecond,
		ProductDelete: 500 * time.Millisecond,
	}
}

// ZeroLatency disables the artificial delays. Used by tests and the CLI fast
// mode.
func ZeroLatency() Latency {
	return Latency{}
}

// sleepFor blocks for d or until ctx is cancelled, whichever comes first.
func sleepFor(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
