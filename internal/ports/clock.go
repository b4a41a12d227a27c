package ports

import "time"

type Clock interface {
	Now() time.Time
	// After behaves like time.After; a non-positive d fires immediately.
	After(d time.Duration) <-chan time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
