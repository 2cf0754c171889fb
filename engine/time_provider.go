package engine

import "time"

// Clock supplies the monotonic timestamp consumed by the game core each frame
type Clock interface {
	Now() time.Time
}

// MonotonicClock provides the real system time with monotonic clock readings
type MonotonicClock struct{}

// NewMonotonicClock creates a new monotonic clock
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{}
}

// Now returns the current time with monotonic clock reading
func (c *MonotonicClock) Now() time.Time {
	return time.Now()
}
