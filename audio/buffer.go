package audio

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by buffer constructors.
var (
	ErrInvalidSampleRate = errors.New("audio: sample rate must be positive")
	ErrNoChannels        = errors.New("audio: buffer needs at least one channel")
	ErrChannelLength     = errors.New("audio: channels differ in length")
)

// Buffer is a decoded multi-channel sample buffer.
// Channels are stored planar, one []float64 per channel.
type Buffer struct {
	SampleRate float64
	Channels   [][]float64
}

// NewBuffer wraps the given channel slices without copying.
// All channels must have the same length.
func NewBuffer(sampleRate float64, channels ...[]float64) (*Buffer, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, ErrInvalidSampleRate
	}

	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	for i := 1; i < len(channels); i++ {
		if len(channels[i]) != len(channels[0]) {
			return nil, fmt.Errorf("%w: channel %d has %d frames, channel 0 has %d",
				ErrChannelLength, i, len(channels[i]), len(channels[0]))
		}
	}

	return &Buffer{SampleRate: sampleRate, Channels: channels}, nil
}

// NewSilence returns a zero-filled buffer with the given shape.
func NewSilence(sampleRate float64, numChannels, frames int) (*Buffer, error) {
	if numChannels <= 0 {
		return nil, ErrNoChannels
	}

	if frames < 0 {
		frames = 0
	}

	channels := make([][]float64, numChannels)
	for i := range channels {
		channels[i] = make([]float64, frames)
	}

	return NewBuffer(sampleRate, channels...)
}

// NumChannels returns the channel count.
func (b *Buffer) NumChannels() int {
	if b == nil {
		return 0
	}

	return len(b.Channels)
}

// Frames returns the number of sample frames per channel.
func (b *Buffer) Frames() int {
	if b == nil || len(b.Channels) == 0 {
		return 0
	}

	return len(b.Channels[0])
}

// Duration returns the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	if b == nil || b.SampleRate <= 0 {
		return 0
	}

	return float64(b.Frames()) / b.SampleRate
}

// Channel returns channel i, or nil when i is out of range.
func (b *Buffer) Channel(i int) []float64 {
	if b == nil || i < 0 || i >= len(b.Channels) {
		return nil
	}

	return b.Channels[i]
}

// FrameRange maps a time span onto the half-open frame interval
// [floor(start*sr), floor((start+duration)*sr)). The result is not clamped;
// callers decide how to treat indices outside [0, Frames()].
func (b *Buffer) FrameRange(start, duration float64) (lo, hi int) {
	lo = int(math.Floor(start * b.SampleRate))
	hi = int(math.Floor((start + duration) * b.SampleRate))

	return lo, hi
}

// InRange reports whether [lo, hi) lies inside the buffer.
func (b *Buffer) InRange(lo, hi int) bool {
	return lo >= 0 && hi >= lo && hi <= b.Frames()
}

// MixDown writes the channel average of frames [lo, hi) into dst, reusing
// its capacity, and returns the resized slice. Out-of-range frames read as
// silence.
func (b *Buffer) MixDown(dst []float64, lo, hi int) []float64 {
	n := hi - lo
	if n <= 0 {
		return dst[:0]
	}

	if cap(dst) >= n {
		dst = dst[:n]
	} else {
		dst = make([]float64, n)
	}

	for i := range dst {
		dst[i] = 0
	}

	numCh := b.NumChannels()
	if numCh == 0 {
		return dst
	}

	frames := b.Frames()
	scale := 1 / float64(numCh)

	for _, ch := range b.Channels {
		for i := range dst {
			idx := lo + i
			if idx < 0 || idx >= frames {
				continue
			}

			dst[i] += ch[idx] * scale
		}
	}

	return dst
}
