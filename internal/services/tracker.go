package services

import (
	"context"
	"sync/atomic"
	"time"
)

// Tracker runs mutating operations behind a fixed artificial delay and keeps
// the loading flag: raised before the delay, lowered once the operation has
// finished, whether it failed or not.
type Tracker struct {
	delay    time.Duration
	inflight atomic.Int64
}

func NewTracker(delay time.Duration) *Tracker {
	return &Tracker{delay: delay}
}

func (t *Tracker) Loading() bool {
	return t.inflight.Load() > 0
}

func (t *Tracker) Do(ctx context.Context, op func() error) error {
	t.inflight.Add(1)
	defer t.inflight.Add(-1)

	if t.delay > 0 {
		timer := time.NewTimer(t.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return op()
}
