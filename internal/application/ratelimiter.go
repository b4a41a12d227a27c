package application

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/persona-relay/internal/ports"
)

// RateLimiter is the single process-wide throttle shared by every
// personality. It remembers when the last dispatch attempt concluded and
// spaces the next one at least interval after it. Acquire hands out one
// dispatch slot at a time, so an attempt still in flight holds back every
// other personality until its conclusion is recorded.
type RateLimiter struct {
	interval time.Duration
	slot     chan struct{}

	mu      sync.Mutex
	last    time.Time
	hasLast bool
}

func NewRateLimiter(interval time.Duration) *RateLimiter {
	if interval < 0 {
		interval = 0
	}

	return &RateLimiter{interval: interval, slot: make(chan struct{}, 1)}
}

func (l *RateLimiter) Interval() time.Duration {
	return l.interval
}

// ComputeWait returns how long a dispatch starting at now must wait. The
// first dispatch never waits.
func (l *RateLimiter) ComputeWait(now time.Time) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.hasLast {
		return 0
	}

	wait := l.interval - now.Sub(l.last)
	if wait < 0 {
		return 0
	}

	return wait
}

// RecordDispatch stores the time an attempt concluded. Attempts that
// conclude out of order never move the timestamp backwards.
func (l *RateLimiter) RecordDispatch(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.hasLast && now.Before(l.last) {
		return
	}
	l.last = now
	l.hasLast = true
}

func (l *RateLimiter) LastDispatch() (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.last, l.hasLast
}

// Wait suspends until ComputeWait reports zero. The wait is recomputed after
// each sleep because another attempt may have concluded in the meantime.
func (l *RateLimiter) Wait(ctx context.Context, clock ports.Clock) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		wait := l.ComputeWait(clock.Now())
		if wait <= 0 {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clock.After(wait):
		}
	}
}

// Acquire blocks until no other attempt holds the dispatch slot and the
// interval since the last conclusion has elapsed. The returned release
// records the conclusion time and frees the slot; calling it more than once
// is a no-op. On error the slot is not held and nothing is recorded.
func (l *RateLimiter) Acquire(ctx context.Context, clock ports.Clock) (func(concluded time.Time), error) {
	select {
	case l.slot <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if err := l.Wait(ctx, clock); err != nil {
		<-l.slot
		return nil, err
	}

	var once sync.Once
	return func(concluded time.Time) {
		once.Do(func() {
			l.RecordDispatch(concluded)
			<-l.slot
		})
	}, nil
}
