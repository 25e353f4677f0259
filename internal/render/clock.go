package render

import "time"

// Clock supplies generation timestamps. Injecting it keeps file names
// and printed dates deterministic under test; production uses the
// system clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }
