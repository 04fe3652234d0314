package rental

import "time"

// Clock supplies the current instant. The engine never calls time.Now
// directly so tests can drive the state machine with a deterministic clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock, in UTC.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
