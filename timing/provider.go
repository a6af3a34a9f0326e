// Package timing holds the clock utilities that drive the game loop:
// interval timers, the fixed-step logic gate, the pause-insensitive
// game clock and its frame delta, and an fps counter.
package timing

import "time"

// TimeProvider abstracts the wall clock so the driver loop and tests
// share one time source
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic
// clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
