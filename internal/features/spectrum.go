// Package features measures the audio under a time span: statistics of its
// magnitude spectrum and of its mono waveform.
package features

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-remix/audio"
	"github.com/cwbudde/algo-remix/dsp/window"
	"github.com/cwbudde/algo-remix/stats/frequency"
)

// MaxSpectrumFrames bounds the analysis window of Analyze. Longer spans are
// analysed around their centre.
const MaxSpectrumFrames = 1 << 15

var (
	planMu sync.Mutex
	plans  = map[int]*algofft.Plan[complex128]{}

	monoPool = audio.NewPool()
)

// forward runs the cached plan for len(src). Calls are serialised so a plan
// is never used by two goroutines at once.
func forward(dst, src []complex128) error {
	planMu.Lock()
	defer planMu.Unlock()

	n := len(src)
	plan, ok := plans[n]
	if !ok {
		var err error

		plan, err = algofft.NewPlan64(n)
		if err != nil {
			return fmt.Errorf("features: failed to create FFT plan: %w", err)
		}

		plans[n] = plan
	}

	if err := plan.Forward(dst, src); err != nil {
		return fmt.Errorf("features: forward FFT failed: %w", err)
	}

	return nil
}

// Spectrum is a one-sided magnitude spectrum.
type Spectrum struct {
	// Magnitude holds bins 0 (DC) to n/2 (Nyquist).
	Magnitude []float64
	// SampleRate of the analysed audio.
	SampleRate float64
}

// BinHz returns the frequency spacing of the bins.
func (s Spectrum) BinHz() float64 {
	if len(s.Magnitude) < 2 {
		return 0
	}

	return s.SampleRate / float64(2*(len(s.Magnitude)-1))
}

// Stats returns the shape statistics of s.
func (s Spectrum) Stats() frequency.Stats {
	return frequency.Calculate(s.Magnitude, s.SampleRate)
}

// Rolloff returns the frequency below which fraction of the energy lies.
func (s Spectrum) Rolloff(fraction float64) float64 {
	return frequency.Rolloff(s.Magnitude, s.SampleRate, fraction)
}

// Analyze returns the spectrum of the mono mix of buf over
// [start, start+duration), windowed with win and zero-padded to a power of
// two. Frames outside the buffer are ignored; fewer than two frames give
// an empty spectrum.
func Analyze(buf *audio.Buffer, start, duration float64, win window.Type) (Spectrum, error) {
	lo, hi := clampRange(buf, start, duration)

	if hi-lo > MaxSpectrumFrames {
		mid := (lo + hi) / 2
		lo, hi = mid-MaxSpectrumFrames/2, mid+MaxSpectrumFrames/2
	}

	m := hi - lo
	if m < 2 {
		return Spectrum{SampleRate: buf.SampleRate}, nil
	}

	mono := monoPool.Get(m)
	defer monoPool.Put(mono)

	mono = buf.MixDown(mono, lo, hi)
	window.Apply(win, mono)

	n := nextPow2(m)
	in := make([]complex128, n)
	for i, s := range mono {
		in[i] = complex(s, 0)
	}

	out := make([]complex128, n)
	if err := forward(out, in); err != nil {
		return Spectrum{}, err
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return Spectrum{Magnitude: mag, SampleRate: buf.SampleRate}, nil
}

func clampRange(buf *audio.Buffer, start, duration float64) (lo, hi int) {
	lo, hi = buf.FrameRange(start, duration)

	return max(lo, 0), min(hi, buf.Frames())
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
