package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-remix/audio"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns n samples rising linearly from -1 to just below +1, so every
// frame of a rendered buffer is distinguishable.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = -1 + 2*float64(i)/float64(n)
	}
	return out
}

// StereoBuffer builds a two-channel buffer; the right channel is the
// negated left channel.
func StereoBuffer(sampleRate float64, left []float64) *audio.Buffer {
	right := make([]float64, len(left))
	for i, v := range left {
		right[i] = -v
	}
	buf, err := audio.NewBuffer(sampleRate, left, right)
	if err != nil {
		panic(err)
	}
	return buf
}
