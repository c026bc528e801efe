package testutils

import (
	"context"
	"sync"
	"time"
)

// Clock is a manually advanced clock.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the current time of the clock.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// Waiter records every requested wait instead of sleeping.
// If a clock is set, it is advanced by the requested duration.
type Waiter struct {
	Clock *Clock

	mu        sync.Mutex
	durations []time.Duration
	onWait    func(call int)
}

func NewWaiter(clock *Clock) *Waiter {
	return &Waiter{Clock: clock}
}

// OnWait registers a hook called with the 1-based number of the wait before it returns.
func (w *Waiter) OnWait(fn func(call int)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.onWait = fn
}

// Wait implements the waiter of the oauth2 client.
func (w *Waiter) Wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	w.mu.Lock()
	w.durations = append(w.durations, d)
	call := len(w.durations)
	onWait := w.onWait
	w.mu.Unlock()

	if w.Clock != nil {
		w.Clock.Advance(d)
	}

	if onWait != nil {
		onWait(call)
	}

	return nil
}

// Durations returns all requested waits in order.
func (w *Waiter) Durations() []time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]time.Duration(nil), w.durations...)
}
