package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for unrecognised level names.
var ErrUnknownKind = errors.New("analysis: unknown quantum kind")

// Kind identifies the level a quantum belongs to.
type Kind int

const (
	KindSection Kind = iota
	KindBar
	KindBeat
	KindTatum
	KindSegment
)

var kindNames = [...]string{"section", "bar", "beat", "tatum", "segment"}

// String returns the singular level name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Plural returns the level name as used by the analysis payload.
func (k Kind) Plural() string {
	return k.String() + "s"
}

// ParseKind accepts singular or plural level names, case-insensitively.
func ParseKind(name string) (Kind, error) {
	n := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "s")
	for i, kn := range kindNames {
		if n == kn {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Field selects one of the two 12-dimensional segment vectors.
type Field int

const (
	FieldTimbre Field = iota
	FieldPitches
)

// VectorLen is the required length of pitch and timbre vectors.
const VectorLen = 12

// String returns the payload name of the field.
func (f Field) String() string {
	switch f {
	case FieldTimbre:
		return "timbre"
	case FieldPitches:
		return "pitches"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Of returns the field's vector on q, or nil when q carries none.
func (f Field) Of(q *Quantum) []float64 {
	if q == nil {
		return nil
	}

	switch f {
	case FieldTimbre:
		return q.Timbre
	case FieldPitches:
		return q.Pitches
	default:
		return nil
	}
}

// ParseField accepts "timbre", "pitch" or "pitches".
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "timbre":
		return FieldTimbre, nil
	case "pitch", "pitches":
		return FieldPitches, nil
	default:
		return 0, fmt.Errorf("analysis: unknown vector field %q", name)
	}
}
