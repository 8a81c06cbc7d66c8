package sorting

import (
	"github.com/cwbudde/algo-remix/analysis"
	"github.com/cwbudde/algo-remix/audio"
	"github.com/cwbudde/algo-remix/dsp/window"
	"github.com/cwbudde/algo-remix/internal/features"
	"github.com/cwbudde/algo-remix/stats/frequency"
	timestats "github.com/cwbudde/algo-remix/stats/time"
)

// AudioOption configures the spectral keys.
type AudioOption func(*audioConfig)

type audioConfig struct {
	window window.Type
}

// WithWindow selects the analysis window of the spectral keys. The default
// is Hann.
func WithWindow(t window.Type) AudioOption {
	return func(c *audioConfig) {
		c.window = t
	}
}

// audioKey measures the audio under x with fn. The samples come from buf,
// or from x.Buffer() when buf is nil. Quanta without audio key as 0.
func audioKey(buf *audio.Buffer, fn func(b *audio.Buffer, x *analysis.Quantum) float64) analysis.Key {
	return func(x *analysis.Quantum) float64 {
		b := buf
		if b == nil {
			b = x.Buffer()
		}

		if b == nil || b.Frames() == 0 {
			return 0
		}

		return fn(b, x)
	}
}

func spectrumKey(buf *audio.Buffer, opts []AudioOption, stat func(features.Spectrum) float64) analysis.Key {
	cfg := audioConfig{window: window.TypeHann}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return audioKey(buf, func(b *audio.Buffer, x *analysis.Quantum) float64 {
		s, err := features.Analyze(b, x.Start, x.Duration, cfg.window)
		if err != nil {
			return 0
		}

		return stat(s)
	})
}

func shapeKey(buf *audio.Buffer, opts []AudioOption, field func(frequency.Stats) float64) analysis.Key {
	return spectrumKey(buf, opts, func(s features.Spectrum) float64 { return field(s.Stats()) })
}

func levelKey(buf *audio.Buffer, field func(timestats.Stats) float64) analysis.Key {
	return audioKey(buf, func(b *audio.Buffer, x *analysis.Quantum) float64 {
		return field(features.Level(b, x.Start, x.Duration))
	})
}

// SpectralCentroid keys on the magnitude-weighted mean frequency, in Hz, of
// the audio under x. Silent quanta key as 0.
func SpectralCentroid(buf *audio.Buffer, opts ...AudioOption) analysis.Key {
	return shapeKey(buf, opts, func(s frequency.Stats) float64 { return s.Centroid })
}

// SpectralSpread keys on the spread of the spectrum around its centroid.
func SpectralSpread(buf *audio.Buffer, opts ...AudioOption) analysis.Key {
	return shapeKey(buf, opts, func(s frequency.Stats) float64 { return s.Spread })
}

// SpectralFlatness keys on the spectral flatness of the audio under x:
// near 1 for noise, near 0 for tones.
func SpectralFlatness(buf *audio.Buffer, opts ...AudioOption) analysis.Key {
	return shapeKey(buf, opts, func(s frequency.Stats) float64 { return s.Flatness })
}

// SpectralBandwidth keys on the 3 dB width of the strongest spectral peak.
func SpectralBandwidth(buf *audio.Buffer, opts ...AudioOption) analysis.Key {
	return shapeKey(buf, opts, func(s frequency.Stats) float64 { return s.Bandwidth })
}

// SpectralRolloff keys on the frequency below which fraction of the energy
// of the audio under x lies.
func SpectralRolloff(buf *audio.Buffer, fraction float64, opts ...AudioOption) analysis.Key {
	return spectrumKey(buf, opts, func(s features.Spectrum) float64 { return s.Rolloff(fraction) })
}

// RMS keys on the root mean square level of the audio under x.
func RMS(buf *audio.Buffer) analysis.Key {
	return levelKey(buf, func(s timestats.Stats) float64 { return s.RMS })
}

// Peak keys on the largest absolute sample of the audio under x.
func Peak(buf *audio.Buffer) analysis.Key {
	return levelKey(buf, func(s timestats.Stats) float64 { return s.Peak })
}

// CrestFactor keys on peak over RMS of the audio under x.
func CrestFactor(buf *audio.Buffer) analysis.Key {
	return levelKey(buf, func(s timestats.Stats) float64 { return s.CrestFactor })
}

// ZeroCrossingRate keys on the sign-change rate of the audio under x.
func ZeroCrossingRate(buf *audio.Buffer) analysis.Key {
	return levelKey(buf, timestats.Stats.ZeroCrossingRate)
}
