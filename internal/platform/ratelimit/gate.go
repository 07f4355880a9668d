package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Gate paces outbound upstream calls and bounds how many run at once.
//
// It combines:
//   - A token-bucket limiter controlling dispatch rate
//   - A semaphore capping in-flight calls
//
// One Gate is shared process-wide and injected into every upstream call site.
// Admission is in enqueue order; no queued call is ever dropped.
type Gate struct {
	lim *rate.Limiter
	sem chan struct{}
}

// NewIntervalGate spaces dispatches at least minInterval apart, with at most
// maxInFlight calls running concurrently. Used for low-quota environments.
func NewIntervalGate(minInterval time.Duration, maxInFlight int) *Gate {
	return &Gate{
		lim: rate.NewLimiter(rate.Every(minInterval), 1),
		sem: make(chan struct{}, maxInFlight),
	}
}

// NewReservoirGate refills tokens up to the given reservoir size every refill
// period, with at most maxInFlight calls running concurrently. Used for
// high-quota environments.
func NewReservoirGate(tokens int, refill time.Duration, maxInFlight int) *Gate {
	return &Gate{
		lim: rate.NewLimiter(rate.Every(refill/time.Duration(tokens)), tokens),
		sem: make(chan struct{}, maxInFlight),
	}
}

// Do runs fn once the gate admits it, blocking until capacity and pacing
// allow. A context cancelled while waiting returns ctx.Err() without
// consuming capacity. fn's error is returned unchanged.
func (g *Gate) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	select {
	case g.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-g.sem }()

	if err := g.lim.Wait(ctx); err != nil {
		return err
	}

	return fn(ctx)
}
