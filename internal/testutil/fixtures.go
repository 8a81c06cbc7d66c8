package testutil

import "github.com/cwbudde/algo-remix/analysis"

// Events returns onset records at the given starts with confidence 1.
func Events(starts ...float64) []analysis.RawEvent {
	out := make([]analysis.RawEvent, len(starts))
	for i, s := range starts {
		out[i] = analysis.RawEvent{Start: s, Confidence: 1}
	}
	return out
}

// Vector returns a 12-element vector filled with v.
func Vector(v float64) []float64 {
	out := make([]float64, analysis.VectorLen)
	for i := range out {
		out[i] = v
	}
	return out
}

// OneHot returns a 12-element vector with 1 at index i and 0 elsewhere.
func OneHot(i int) []float64 {
	out := make([]float64, analysis.VectorLen)
	out[i] = 1
	return out
}

// Segment returns a segment record with the given timbre; pitches are a
// one-hot vector on pitch class 0.
func Segment(start, duration, confidence float64, timbre []float64) analysis.RawSegment {
	return analysis.RawSegment{
		Start:       start,
		Duration:    duration,
		Confidence:  confidence,
		LoudnessMax: -10,
		Pitches:     OneHot(0),
		Timbre:      timbre,
	}
}

// Grid describes a regular synthetic track. All durations are binary
// fractions so that derived boundaries compare exactly.
type Grid struct {
	Bars           int
	BeatsPerBar    int
	TatumsPerBeat  int
	BarsPerSection int
	BeatDuration   float64
}

// DefaultGrid is 4 bars of 4/4 at 120 BPM with two tatums per beat and two
// bars per section: 8 seconds in total.
func DefaultGrid() Grid {
	return Grid{Bars: 4, BeatsPerBar: 4, TatumsPerBeat: 2, BarsPerSection: 2, BeatDuration: 0.5}
}

// Raw builds the payload for g. There is one segment per tatum; segment i
// has timbre Vector(float64(i%4)*10), pitch class i%12 and confidence 0.9.
func (g Grid) Raw() *analysis.Raw {
	beats := g.Bars * g.BeatsPerBar
	tatums := beats * g.TatumsPerBeat
	tatumDur := g.BeatDuration / float64(g.TatumsPerBeat)
	barDur := g.BeatDuration * float64(g.BeatsPerBar)
	duration := barDur * float64(g.Bars)

	raw := &analysis.Raw{
		Track: analysis.RawTrack{
			Duration:       duration,
			StartOfFadeOut: duration,
			Tempo:          60 / g.BeatDuration,
			TimeSignature:  g.BeatsPerBar,
		},
	}

	for i := 0; i < g.Bars; i += g.BarsPerSection {
		n := g.BarsPerSection
		if i+n > g.Bars {
			n = g.Bars - i
		}
		raw.Sections = append(raw.Sections, analysis.RawSpan{
			Start:      float64(i) * barDur,
			Duration:   float64(n) * barDur,
			Confidence: 1,
		})
	}
	for i := 0; i < g.Bars; i++ {
		raw.Bars = append(raw.Bars, analysis.RawEvent{Start: float64(i) * barDur, Confidence: 1})
	}
	for i := 0; i < beats; i++ {
		raw.Beats = append(raw.Beats, analysis.RawEvent{Start: float64(i) * g.BeatDuration, Confidence: 1})
	}
	for i := 0; i < tatums; i++ {
		start := float64(i) * tatumDur
		raw.Tatums = append(raw.Tatums, analysis.RawEvent{Start: start, Confidence: 1})

		seg := Segment(start, tatumDur, 0.9, Vector(float64(i%4)*10))
		seg.Pitches = OneHot(i % analysis.VectorLen)
		seg.LoudnessMax = -float64(i % 7)
		raw.Segments = append(raw.Segments, seg)
	}
	return raw
}

// Analysis builds and links the analysis for g, panicking on error.
func (g Grid) Analysis(opts ...analysis.Option) *analysis.Analysis {
	a, err := analysis.New(g.Raw(), opts...)
	if err != nil {
		panic(err)
	}
	return a
}
