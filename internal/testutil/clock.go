// Package testutil provides shared test doubles.
package testutil

import (
	"sync"
	"time"
)

// SteppingClock is a deterministic render.Clock for tests: it starts
// at a fixed instant and advances by a fixed step on every Now() call.
//
// Unlike the production clock it can be Reset for test reuse, so the
// same scenario produces identical timestamps (and therefore file
// names) on every run.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type SteppingClock struct {
	mu    sync.Mutex
	start time.Time
	step  time.Duration
	calls int
}

// NewSteppingClock creates a clock that returns start on the first
// Now() call and advances by step on each subsequent call.
func NewSteppingClock(start time.Time, step time.Duration) *SteppingClock {
	return &SteppingClock{start: start, step: step}
}

// Now returns the next timestamp in the progression.
func (c *SteppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.start.Add(time.Duration(c.calls) * c.step)
	c.calls++
	return t
}

// Calls returns how many times Now has been called.
func (c *SteppingClock) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// Reset rewinds the clock to its starting instant.
func (c *SteppingClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = 0
}
