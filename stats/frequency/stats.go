// Package frequency computes shape statistics of a one-sided magnitude
// spectrum.
package frequency

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// DefaultRolloff is the energy fraction used for Stats.Rolloff.
const DefaultRolloff = 0.85

// Stats holds frequency-domain statistics computed from a magnitude spectrum.
type Stats struct {
	BinCount int
	Sum      float64 // sum of magnitudes
	Energy   float64 // sum of squared magnitudes
	Max      float64
	MaxBin   int
	// Spectral shape descriptors
	Centroid  float64 // spectral centroid (Hz)
	Spread    float64 // spectral spread (Hz)
	Flatness  float64 // spectral flatness (Wiener entropy), 0..1
	Rolloff   float64 // frequency below which DefaultRolloff of the energy lies (Hz)
	Bandwidth float64 // 3 dB bandwidth around peak (Hz)
}

// binFreq returns the frequency in Hz of a given bin index.
// fftSize = 2 * (len(magnitude) - 1).
func binFreq(i int, sampleRate float64, binCount int) float64 {
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Calculate computes all statistics of a magnitude spectrum (linear scale).
//
// The magnitude slice represents bins from 0 (DC) to Nyquist, so the
// frequency of bin i is:
//
//	f_i = i * sampleRate / (2 * (len(magnitude) - 1))
//
// Spectra with fewer than two bins describe no frequencies and give zero
// Stats apart from BinCount.
func Calculate(magnitude []float64, sampleRate float64) Stats {
	n := len(magnitude)
	if n < 2 {
		return Stats{BinCount: n}
	}

	s := Stats{
		BinCount: n,
		Sum:      vecmath.Sum(magnitude),
		Energy:   vecmath.DotProduct(magnitude, magnitude),
		Max:      magnitude[0],
	}

	for i, v := range magnitude {
		if v > s.Max {
			s.Max = v
			s.MaxBin = i
		}
	}

	s.Centroid = centroid(magnitude, sampleRate, s.Sum)
	s.Spread = spread(magnitude, sampleRate, s.Centroid, s.Sum)
	s.Flatness = Flatness(magnitude)
	s.Rolloff = rolloff(magnitude, sampleRate, DefaultRolloff, s.Energy)
	s.Bandwidth = bandwidth(magnitude, sampleRate, s.MaxBin, s.Max)

	return s
}

// Centroid returns the spectral centroid in Hz.
//
//	centroid = sum(f_i * |X_i|) / sum(|X_i|)
func Centroid(magnitude []float64, sampleRate float64) float64 {
	return centroid(magnitude, sampleRate, vecmath.Sum(magnitude))
}

func centroid(magnitude []float64, sampleRate float64, sumMag float64) float64 {
	n := len(magnitude)
	if n < 2 || sumMag == 0 {
		return 0
	}

	weightedSum := 0.0
	for i, v := range magnitude {
		weightedSum += binFreq(i, sampleRate, n) * v
	}

	return weightedSum / sumMag
}

// spread is the magnitude-weighted standard deviation around the centroid.
func spread(magnitude []float64, sampleRate float64, cent float64, sumMag float64) float64 {
	n := len(magnitude)
	if n < 2 || sumMag == 0 {
		return 0
	}

	weightedSqSum := 0.0
	for i, v := range magnitude {
		diff := binFreq(i, sampleRate, n) - cent
		weightedSqSum += diff * diff * v
	}

	return math.Sqrt(weightedSqSum / sumMag)
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1.
//
//	Flatness = exp(mean(log(|X_i|))) / mean(|X_i|)
//
// The DC bin is excluded. Any zero bin makes the result 0.
func Flatness(magnitude []float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	bins := magnitude[1:]

	sumLog := 0.0
	for _, v := range bins {
		if v <= 0 {
			return 0
		}

		sumLog += math.Log(v)
	}

	nBins := float64(len(bins))

	return math.Exp(sumLog/nBins) / (vecmath.Sum(bins) / nBins)
}

// Rolloff returns the frequency below which fraction (0..1) of the spectral
// energy lies. Energy is the sum of squared magnitudes.
func Rolloff(magnitude []float64, sampleRate float64, fraction float64) float64 {
	return rolloff(magnitude, sampleRate, fraction, vecmath.DotProduct(magnitude, magnitude))
}

func rolloff(magnitude []float64, sampleRate float64, fraction float64, totalEnergy float64) float64 {
	n := len(magnitude)
	if n < 2 || totalEnergy == 0 {
		return 0
	}

	threshold := fraction * totalEnergy
	cumEnergy := 0.0

	for i, v := range magnitude {
		cumEnergy += v * v
		if cumEnergy >= threshold {
			return binFreq(i, sampleRate, n)
		}
	}

	return binFreq(n-1, sampleRate, n)
}

// bandwidth returns the 3 dB width around the peak bin, interpolating
// linearly between bins at both edges.
func bandwidth(magnitude []float64, sampleRate float64, peakBin int, peakVal float64) float64 {
	n := len(magnitude)
	if peakVal <= 0 {
		return 0
	}

	threshold := peakVal / math.Sqrt2

	lowerFreq := binFreq(0, sampleRate, n)
	for i := peakBin; i >= 1; i-- {
		if magnitude[i-1] <= threshold && magnitude[i] > threshold {
			lowerFreq = interpFreq(i-1, i, magnitude[i-1], magnitude[i], threshold, sampleRate, n)
			break
		}
	}

	upperFreq := binFreq(n-1, sampleRate, n)
	for i := peakBin; i < n-1; i++ {
		if magnitude[i+1] <= threshold && magnitude[i] > threshold {
			upperFreq = interpFreq(i, i+1, magnitude[i], magnitude[i+1], threshold, sampleRate, n)
			break
		}
	}

	return max(upperFreq-lowerFreq, 0)
}

func interpFreq(binLow, binHigh int, magLow, magHigh, threshold, sampleRate float64, binCount int) float64 {
	fLow := binFreq(binLow, sampleRate, binCount)
	fHigh := binFreq(binHigh, sampleRate, binCount)

	denom := magHigh - magLow
	if denom == 0 {
		return (fLow + fHigh) / 2
	}

	t := (threshold - magLow) / denom

	return fLow + t*(fHigh-fLow)
}
