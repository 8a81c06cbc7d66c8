package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
)

// Raw is the analysis payload as delivered by the analysis service.
type Raw struct {
	Track    RawTrack     `json:"track"`
	Sections []RawSpan    `json:"sections" validate:"dive"`
	Bars     []RawEvent   `json:"bars" validate:"dive"`
	Beats    []RawEvent   `json:"beats" validate:"dive"`
	Tatums   []RawEvent   `json:"tatums" validate:"dive"`
	Segments []RawSegment `json:"segments" validate:"dive"`
}

// RawTrack carries the track-level scalars.
type RawTrack struct {
	Duration                float64 `json:"duration" validate:"gt=0"`
	EndOfFadeIn             float64 `json:"end_of_fade_in" validate:"gte=0"`
	StartOfFadeOut          float64 `json:"start_of_fade_out" validate:"gte=0"`
	Loudness                float64 `json:"loudness"`
	Tempo                   float64 `json:"tempo" validate:"gte=0"`
	TempoConfidence         float64 `json:"tempo_confidence"`
	TimeSignature           int     `json:"time_signature" validate:"gte=0"`
	TimeSignatureConfidence float64 `json:"time_signature_confidence"`
	Key                     int     `json:"key" validate:"gte=-1,lte=11"`
	KeyConfidence           float64 `json:"key_confidence"`
	Mode                    int     `json:"mode" validate:"gte=-1,lte=1"`
	ModeConfidence          float64 `json:"mode_confidence"`
}

// RawEvent is an onset record of an event-derived level. Its duration, if
// present, is ignored: ends are derived from the following onset.
type RawEvent struct {
	Start      float64 `json:"start" validate:"gte=0"`
	Duration   float64 `json:"duration"`
	Confidence float64 `json:"confidence"`
}

// RawSpan is an interval record of a span-derived level.
type RawSpan struct {
	Start      float64 `json:"start" validate:"gte=0"`
	Duration   float64 `json:"duration" validate:"gt=0"`
	Confidence float64 `json:"confidence"`
}

// RawSegment is a segment record.
type RawSegment struct {
	Start           float64   `json:"start" validate:"gte=0"`
	Duration        float64   `json:"duration" validate:"gt=0"`
	Confidence      float64   `json:"confidence"`
	LoudnessStart   float64   `json:"loudness_start"`
	LoudnessMax     float64   `json:"loudness_max"`
	LoudnessMaxTime float64   `json:"loudness_max_time"`
	LoudnessEnd     float64   `json:"loudness_end"`
	Pitches         []float64 `json:"pitches" validate:"len=12"`
	Timbre          []float64 `json:"timbre" validate:"len=12"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeRaw reads a JSON analysis payload.
func DecodeRaw(r io.Reader) (*Raw, error) {
	var raw Raw
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode payload: %w", ErrMalformedAnalysis, err)
	}

	return &raw, nil
}

// Validate checks field-level constraints: positive durations, non-negative
// starts and 12-element pitch and timbre vectors. Ordering is checked by New.
func (r *Raw) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: nil payload", ErrMalformedAnalysis)
	}

	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s fails %q (value %v)",
			ErrMalformedAnalysis, fe.Namespace(), fe.Tag(), fe.Value())
	}

	return fmt.Errorf("%w: %w", ErrMalformedAnalysis, err)
}
