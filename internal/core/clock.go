package core

import (
	"sync"
	"time"
)

// Clock supplies wall time to the animation loop.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// Seconds converts the clock reading into seconds since the Unix epoch with
// millisecond resolution.
func Seconds(c Clock) float64 {
	return float64(c.Now().UnixMilli()) * 0.001
}

// ManualClock only moves when told to. Useful for headless runs and tests.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock starts a manual clock at the provided instant.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (m *ManualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d.
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// FrameDuration returns the duration of a single tick at the given rate.
func FrameDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}
