package analysis

import (
	"fmt"
	"slices"
)

// New builds an Analysis from a validated payload.
//
// Bars, beats and tatums are event-derived: each quantum ends where the next
// one starts and the last one ends at the track duration. Sections and
// segments are span-derived: End = Start + Duration.
func New(raw *Raw, opts ...Option) (*Analysis, error) {
	if err := raw.Validate(); err != nil {
		return nil, err
	}

	cfg := ApplyOptions(opts...)

	t := raw.Track
	a := &Analysis{
		Duration:                t.Duration,
		EndOfFadeIn:             t.EndOfFadeIn,
		StartOfFadeOut:          t.StartOfFadeOut,
		Loudness:                t.Loudness,
		Tempo:                   t.Tempo,
		TempoConfidence:         t.TempoConfidence,
		TimeSignature:           t.TimeSignature,
		TimeSignatureConfidence: t.TimeSignatureConfidence,
		Key:                     t.Key,
		KeyConfidence:           t.KeyConfidence,
		Mode:                    t.Mode,
		ModeConfidence:          t.ModeConfidence,
		Buffer:                  cfg.Buffer,
	}

	bars, err := buildEvents(KindBar, raw.Bars, t.Duration)
	if err != nil {
		return nil, err
	}

	beats, err := buildEvents(KindBeat, raw.Beats, t.Duration)
	if err != nil {
		return nil, err
	}

	tatums, err := buildEvents(KindTatum, raw.Tatums, t.Duration)
	if err != nil {
		return nil, err
	}

	a.Sections = newOwnedList(KindSection, buildSpans(raw.Sections), a)
	a.Bars = newOwnedList(KindBar, bars, a)
	a.Beats = newOwnedList(KindBeat, beats, a)
	a.Tatums = newOwnedList(KindTatum, tatums, a)
	a.Segments = newOwnedList(KindSegment, buildSegments(raw.Segments), a)
	a.FSegments = newOwnedList(KindSegment, nil, a)

	if cfg.Link {
		Link(a)
	}

	return a, nil
}

// buildEvents runs the two-pass construction: starts first, then each end
// from its successor's start.
func buildEvents(kind Kind, events []RawEvent, duration float64) ([]*Quantum, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: %s: empty level", ErrMalformedAnalysis, kind.Plural())
	}

	quanta := make([]*Quantum, len(events))
	for i, ev := range events {
		if i > 0 && ev.Start <= events[i-1].Start {
			return nil, fmt.Errorf("%w: %s[%d]: start %v not after %v",
				ErrMalformedAnalysis, kind.Plural(), i, ev.Start, events[i-1].Start)
		}

		quanta[i] = &Quantum{
			Start:         ev.Start,
			Confidence:    ev.Confidence,
			Kind:          kind,
			Cluster:       -1,
			indexInParent: -1,
		}
	}

	if last := quanta[len(quanta)-1]; last.Start >= duration {
		return nil, fmt.Errorf("%w: %s[%d]: start %v not before track end %v",
			ErrMalformedAnalysis, kind.Plural(), len(quanta)-1, last.Start, duration)
	}

	for i, q := range quanta {
		if i+1 < len(quanta) {
			q.End = quanta[i+1].Start
		} else {
			q.End = duration
		}

		q.Duration = q.End - q.Start
	}

	return quanta, nil
}

func buildSpans(spans []RawSpan) []*Quantum {
	quanta := make([]*Quantum, len(spans))
	for i, s := range spans {
		quanta[i] = &Quantum{
			Start:         s.Start,
			End:           s.Start + s.Duration,
			Duration:      s.Duration,
			Confidence:    s.Confidence,
			Kind:          KindSection,
			Cluster:       -1,
			indexInParent: -1,
		}
	}

	return quanta
}

func buildSegments(segs []RawSegment) []*Quantum {
	quanta := make([]*Quantum, len(segs))
	for i, s := range segs {
		quanta[i] = &Quantum{
			Start:           s.Start,
			End:             s.Start + s.Duration,
			Duration:        s.Duration,
			Confidence:      s.Confidence,
			Kind:            KindSegment,
			Pitches:         slices.Clone(s.Pitches),
			Timbre:          slices.Clone(s.Timbre),
			LoudnessStart:   s.LoudnessStart,
			LoudnessMax:     s.LoudnessMax,
			LoudnessMaxTime: s.LoudnessMaxTime,
			LoudnessEnd:     s.LoudnessEnd,
			Cluster:         -1,
			indexInParent:   -1,
		}
	}

	return quanta
}
