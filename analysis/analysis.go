package analysis

import (
	"io"

	"github.com/cwbudde/algo-remix/audio"
)

// Analysis owns one List per level plus the merged segment list and the
// track-level metadata of the payload.
type Analysis struct {
	Duration       float64
	EndOfFadeIn    float64
	StartOfFadeOut float64
	Loudness       float64

	Tempo                   float64
	TempoConfidence         float64
	TimeSignature           int
	TimeSignatureConfidence float64
	Key                     int
	KeyConfidence           float64
	Mode                    int
	ModeConfidence          float64

	Sections  *List
	Bars      *List
	Beats     *List
	Tatums    *List
	Segments  *List
	FSegments *List // merged segments, set by Link

	Buffer *audio.Buffer
}

// Load decodes a JSON payload from r and builds an Analysis from it.
func Load(r io.Reader, opts ...Option) (*Analysis, error) {
	raw, err := DecodeRaw(r)
	if err != nil {
		return nil, err
	}

	return New(raw, opts...)
}

// Level returns the list for kind k.
func (a *Analysis) Level(k Kind) *List {
	switch k {
	case KindSection:
		return a.Sections
	case KindBar:
		return a.Bars
	case KindBeat:
		return a.Beats
	case KindTatum:
		return a.Tatums
	case KindSegment:
		return a.Segments
	default:
		return nil
	}
}

// Levels returns the five primary lists from coarsest to finest.
func (a *Analysis) Levels() []*List {
	return []*List{a.Sections, a.Bars, a.Beats, a.Tatums, a.Segments}
}
