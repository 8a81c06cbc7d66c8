// Package sorting provides sort keys for ordering quanta.
//
// Keys are analysis.Key values and are applied with analysis.List.SortBy or
// Sort. Both sorts are stable, so quanta with equal keys keep their original
// relative order:
//
//	a.Segments.SortBy(sorting.TimbreDistanceFrom(seed), false)
package sorting

import (
	"math"
	"slices"

	"github.com/cwbudde/algo-remix/analysis"
	"github.com/cwbudde/algo-remix/internal/vector"
)

// Confidence keys on x.Confidence.
func Confidence(x *analysis.Quantum) float64 { return x.Confidence }

// Duration keys on x.Duration.
func Duration(x *analysis.Quantum) float64 { return x.Duration }

// Start keys on x.Start.
func Start(x *analysis.Quantum) float64 { return x.Start }

// Loudness keys on the peak loudness of a segment.
func Loudness(x *analysis.Quantum) float64 { return x.LoudnessMax }

// Noisiness keys on the sum of the pitch vector; flat chroma means noise.
func Noisiness(x *analysis.Quantum) float64 { return vector.Sum(x.Pitches) }

// VectorValue keys on component i of field. Quanta without the component
// sort as +Inf.
func VectorValue(field analysis.Field, i int) analysis.Key {
	return func(x *analysis.Quantum) float64 {
		v := field.Of(x)
		if i < 0 || i >= len(v) {
			return math.Inf(1)
		}

		return v[i]
	}
}

// TimbreValue keys on timbre[i].
func TimbreValue(i int) analysis.Key { return VectorValue(analysis.FieldTimbre, i) }

// PitchValue keys on pitches[i].
func PitchValue(i int) analysis.Key { return VectorValue(analysis.FieldPitches, i) }

// VectorDistance keys on the sum of squared differences between x's and
// ref's field vectors. Quanta whose vector is missing or of another length
// sort as +Inf.
func VectorDistance(ref *analysis.Quantum, field analysis.Field) analysis.Key {
	rv := field.Of(ref)

	return func(x *analysis.Quantum) float64 {
		xv := field.Of(x)
		if len(xv) == 0 || len(xv) != len(rv) {
			return math.Inf(1)
		}

		return vector.SquaredDistance(xv, rv)
	}
}

// TimbreDistanceFrom keys on the squared timbre distance to ref.
func TimbreDistanceFrom(ref *analysis.Quantum) analysis.Key {
	return VectorDistance(ref, analysis.FieldTimbre)
}

// PitchDistanceFrom keys on the squared pitch distance to ref.
func PitchDistanceFrom(ref *analysis.Quantum) analysis.Key {
	return VectorDistance(ref, analysis.FieldPitches)
}

// Sort returns a stably sorted copy of quanta.
func Sort(quanta []*analysis.Quantum, key analysis.Key, descending bool) []*analysis.Quantum {
	out := slices.Clone(quanta)
	if key != nil && len(out) > 1 {
		analysis.SortQuanta(out, key, descending)
	}

	return out
}

// Closest returns the candidate with the smallest field distance to ref;
// the earliest candidate wins ties. It returns nil when no candidate has a
// comparable vector.
func Closest(candidates []*analysis.Quantum, ref *analysis.Quantum, field analysis.Field) *analysis.Quantum {
	key := VectorDistance(ref, field)

	var (
		best     *analysis.Quantum
		bestDist = math.Inf(1)
	)

	for _, c := range candidates {
		if d := key(c); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best
}
