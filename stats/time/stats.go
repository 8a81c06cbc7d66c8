// Package time computes level statistics of a block of samples.
package time

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Stats holds time-domain signal statistics.
type Stats struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	Max           float64
	Min           float64
	Peak          float64 // max(|max|, |min|)
	CrestFactor   float64 // peak / RMS (linear)
	Energy        float64 // sum of squares
	ZeroCrossings int
}

// ZeroCrossingRate returns the fraction of adjacent sample pairs that
// change sign.
func (s Stats) ZeroCrossingRate() float64 {
	if s.Length < 2 {
		return 0
	}

	return float64(s.ZeroCrossings) / float64(s.Length-1)
}

// Calculate computes all statistics of signal.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	energy := vecmath.DotProduct(signal, signal)
	rms := math.Sqrt(energy / float64(n))

	s := Stats{
		Length:        n,
		DC:            vecmath.Sum(signal) / float64(n),
		RMS:           rms,
		Max:           signal[0],
		Min:           signal[0],
		Peak:          vecmath.MaxAbs(signal),
		Energy:        energy,
		ZeroCrossings: ZeroCrossings(signal),
	}

	for _, x := range signal[1:] {
		s.Max = max(s.Max, x)
		s.Min = min(s.Min, x)
	}

	if rms > 0 {
		s.CrestFactor = s.Peak / rms
	}

	return s
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return math.Sqrt(vecmath.DotProduct(signal, signal) / float64(len(signal)))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return vecmath.MaxAbs(signal)
}

// ZeroCrossings returns the number of zero crossings in the signal.
// A crossing is counted when consecutive samples have opposite signs.
func ZeroCrossings(signal []float64) int {
	var count int

	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}

	return count
}
