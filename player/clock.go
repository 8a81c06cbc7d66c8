package player

import (
	"sync"
	"time"
)

// Clock reports the playback time in seconds.
type Clock interface {
	Now() float64
}

// WallClock measures seconds since it was created.
type WallClock struct {
	start time.Time
}

// NewWallClock starts a wall clock at zero.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the elapsed seconds.
func (c *WallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock only moves when told to.
type ManualClock struct {
	mu sync.Mutex
	t  float64
}

// Now returns the current time.
func (c *ManualClock) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t
}

// Set moves the clock to t.
func (c *ManualClock) Set(t float64) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d seconds.
func (c *ManualClock) Advance(d float64) {
	c.mu.Lock()
	c.t += d
	c.mu.Unlock()
}

// SampleClock counts rendered frames at a fixed rate. It drives a Scheduler
// from an audio callback.
type SampleClock struct {
	mu     sync.Mutex
	rate   float64
	frames int64
}

// NewSampleClock returns a clock at frame zero.
func NewSampleClock(sampleRate float64) *SampleClock {
	return &SampleClock{rate: sampleRate}
}

// Now returns frames/rate.
func (c *SampleClock) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rate <= 0 {
		return 0
	}

	return float64(c.frames) / c.rate
}

// Advance adds n rendered frames.
func (c *SampleClock) Advance(n int) {
	c.mu.Lock()
	c.frames += int64(n)
	c.mu.Unlock()
}
