// Package player schedules remix spans on a timeline and renders them from
// a sample buffer. A Scheduler is created per playback session; nothing is
// shared between sessions.
package player

import (
	"math"
	"slices"
	"sync"

	"github.com/cwbudde/algo-remix/analysis"
	"github.com/cwbudde/algo-remix/audio"
)

// Event is one span scheduled to sound at When.
type Event struct {
	When     float64
	Start    float64
	Duration float64
}

// End returns the time the event stops sounding.
func (e Event) End() float64 { return e.When + e.Duration }

// Scheduler owns the queue position, gain and scheduled events of one
// playback session. It is safe for concurrent use.
type Scheduler struct {
	mu        sync.Mutex
	clock     Clock
	queueTime float64
	gain      float64
	events    []Event

	mono []float64
}

// NewScheduler returns an empty scheduler at unity gain. A nil clock means a
// new WallClock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = NewWallClock()
	}

	return &Scheduler{clock: clock, gain: 1}
}

// Play schedules spans back to back starting now and returns the time the
// last one ends. The queue position is not moved.
func (s *Scheduler) Play(spans []analysis.Span) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.schedule(s.clock.Now(), spans)
}

// Queue schedules spans after everything queued so far, or now if the queue
// has run dry, and returns the new queue end.
func (s *Scheduler) Queue(spans []analysis.Span) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queueTime = max(s.queueTime, s.clock.Now())
	s.queueTime = s.schedule(s.queueTime, spans)

	return s.queueTime
}

// QueueRest inserts d seconds of silence at the end of the queue. Negative
// rests are ignored.
func (s *Scheduler) QueueRest(d float64) {
	if d <= 0 || math.IsNaN(d) {
		return
	}

	s.mu.Lock()
	s.queueTime = max(s.queueTime, s.clock.Now()) + d
	s.mu.Unlock()
}

func (s *Scheduler) schedule(when float64, spans []analysis.Span) float64 {
	for _, sp := range spans {
		if sp.Duration <= 0 {
			continue
		}

		s.events = append(s.events, Event{When: when, Start: sp.Start, Duration: sp.Duration})
		when += sp.Duration
	}

	return when
}

// Stop cancels every event that has not finished and returns them. The
// queue restarts from the current time.
func (s *Scheduler) Stop() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()

	var cancelled []Event
	for _, e := range s.events {
		if e.End() > now {
			cancelled = append(cancelled, e)
		}
	}

	s.events = nil
	s.queueTime = now

	return cancelled
}

// SetGain sets the output gain, clamped to [0, 1].
func (s *Scheduler) SetGain(g float64) {
	if math.IsNaN(g) {
		g = 0
	}

	s.mu.Lock()
	s.gain = clamp(g, 0, 1)
	s.mu.Unlock()
}

// Gain returns the output gain.
func (s *Scheduler) Gain() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gain
}

// Events returns a copy of the scheduled events in scheduling order.
func (s *Scheduler) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.events)
}

// QueueEnd returns the time at which queued material runs out.
func (s *Scheduler) QueueEnd() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.queueTime
}

// CurrentTime returns the clock time.
func (s *Scheduler) CurrentTime() float64 {
	return s.clock.Now()
}

// Render writes the mono mix of buf for the events sounding in the window
// starting at the current time into dst, one sample per frame at
// buf.SampleRate, scaled by the gain. Events finished before the window are
// dropped. The clock is not advanced.
func (s *Scheduler) Render(dst []float32, buf *audio.Buffer) {
	clear(dst)

	if buf == nil || buf.Frames() == 0 || len(dst) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	sr := buf.SampleRate

	s.events = slices.DeleteFunc(s.events, func(e Event) bool { return e.End() <= now })

	for _, e := range s.events {
		lo, hi := buf.FrameRange(e.Start, e.Duration)
		off := int(math.Round((e.When - now) * sr))

		// Output frames [off, off+hi-lo) map to source frames [lo, hi).
		first := max(off, 0)
		last := min(off+hi-lo, len(dst))
		if first >= last {
			continue
		}

		srcLo := max(lo+first-off, 0)
		srcHi := min(lo+last-off, buf.Frames())
		if srcLo >= srcHi {
			continue
		}

		s.mono = buf.MixDown(s.mono, srcLo, srcHi)

		at := first + (srcLo - (lo + first - off))
		for i, v := range s.mono {
			dst[at+i] += float32(v * s.gain)
		}
	}
}

func clamp(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}

	if v > maxV {
		return maxV
	}

	return v
}
