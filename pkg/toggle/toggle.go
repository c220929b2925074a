// Package toggle implements the panel's two-state status control:
// optimistic flip, persist through a caller-supplied function, revert on
// failure. The displayed status is always either the original or a
// persistence-confirmed value, never a speculative one.
package toggle

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Status is one of the two steady states a transfer can be in.
type Status string

const (
	StatusActive Status = "active"
	StatusSold   Status = "sold"
)

// Opposite returns the other steady state.
func (s Status) Opposite() Status {
	if s == StatusActive {
		return StatusSold
	}
	return StatusActive
}

// PersistFunc saves the new status. Returning an error keeps the control
// on its previous state.
type PersistFunc func(ctx context.Context, next Status) error

type Option func(*Toggle)

// WithLogger sets the logger used when a persist attempt fails.
func WithLogger(log *zap.Logger) Option {
	return func(t *Toggle) { t.log = log }
}

// WithTimeout bounds each persist attempt. On expiry the attempt counts
// as failed and the previous state is kept, so a stalled callback cannot
// leave the control disabled forever.
func WithTimeout(d time.Duration) Option {
	return func(t *Toggle) { t.timeout = d }
}

// Toggle is safe for use from multiple goroutines, but the updating
// latch means at most one persist attempt is ever in flight.
type Toggle struct {
	mu       sync.Mutex
	status   Status
	updating bool
	disabled bool
	persist  PersistFunc
	timeout  time.Duration
	log      *zap.Logger
}

func New(initial Status, persist PersistFunc, opts ...Option) *Toggle {
	t := &Toggle{
		status:  initial,
		persist: persist,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Status returns the current steady state.
func (t *Toggle) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Updating reports whether a persist attempt is in flight.
func (t *Toggle) Updating() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.updating
}

// SetDisabled gates activation; a disabled toggle ignores Activate.
func (t *Toggle) SetDisabled(disabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.disabled = disabled
}

// Sync resynchronizes the steady state from the owning context. It takes
// effect immediately, even mid-flight: last write wins.
func (t *Toggle) Sync(s Status) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = s
}

// Activate runs one toggle attempt and returns the status displayed
// afterwards. Activations while disabled or updating are ignored, not
// queued. The steady state only changes once the persist call resolves
// successfully; on failure the previous state is kept.
func (t *Toggle) Activate(ctx context.Context) Status {
	t.mu.Lock()
	if t.disabled || t.updating {
		current := t.status
		t.mu.Unlock()
		return current
	}
	next := t.status.Opposite()
	t.updating = true
	t.mu.Unlock()

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	// Run the callback on its own goroutine so a callback that ignores
	// ctx still cannot hold the latch past the deadline.
	errc := make(chan error, 1)
	go func() {
		errc <- t.persist(ctx, next)
	}()

	var err error
	select {
	case err = <-errc:
	case <-ctx.Done():
		err = ctx.Err()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.updating = false
	if err != nil {
		t.log.Warn("status update failed, keeping previous status",
			zap.String("wanted", string(next)),
			zap.Error(err),
		)
		return t.status
	}
	t.status = next
	return t.status
}
