package ratelimit

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestIntervalGatePacesDispatches(t *testing.T) {
	const (
		interval = 5 * time.Millisecond
		tasks    = 12
	)

	g := NewIntervalGate(interval, 50)

	start := time.Now()
	var wg sync.WaitGroup
	var ran atomic.Int64

	for i := 0; i < tasks; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := g.Do(context.Background(), func(ctx context.Context) error {
				ran.Add(1)
				return nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if ran.Load() != tasks {
		t.Fatalf("ran %d tasks, want %d", ran.Load(), tasks)
	}

	// N dispatches spaced at least interval apart need (N-1)*interval overall.
	if elapsed := time.Since(start); elapsed < (tasks-1)*interval {
		t.Fatalf("elapsed %v, want at least %v", elapsed, (tasks-1)*interval)
	}
}

func TestGateBoundsInFlightTasks(t *testing.T) {
	const maxInFlight = 3

	g := NewIntervalGate(time.Millisecond, maxInFlight)

	var wg sync.WaitGroup
	var inFlight, peak atomic.Int64

	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Do(context.Background(), func(ctx context.Context) error {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				inFlight.Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()

	if p := peak.Load(); p > maxInFlight {
		t.Fatalf("peak in-flight %d, want at most %d", p, maxInFlight)
	}
}

func TestGateCancelledWhileWaiting(t *testing.T) {
	g := NewIntervalGate(time.Hour, 1)

	// Drain the single immediately-available token.
	if err := g.Do(context.Background(), func(ctx context.Context) error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := g.Do(ctx, func(ctx context.Context) error {
		t.Error("task ran despite cancelled admission")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
