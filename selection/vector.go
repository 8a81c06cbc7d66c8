package selection

import "github.com/cwbudde/algo-remix/analysis"

// MaxVector reports whether vec[idx] is greater than or equal to every
// other component. Ties count as maximal. An index outside vec is false.
func MaxVector(idx int, vec []float64) bool {
	if idx < 0 || idx >= len(vec) {
		return false
	}

	for _, v := range vec {
		if v > vec[idx] {
			return false
		}
	}

	return true
}

// IsMaxVectorComponent holds when component idx of x's field vector is
// maximal, ties included. Quanta without the vector never match.
func IsMaxVectorComponent(idx int, field analysis.Field) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		return MaxVector(idx, field.Of(x))
	}
}

// HasPitchMax holds when pitch class idx is a maximal pitch of x.
func HasPitchMax(idx int) analysis.Predicate {
	return IsMaxVectorComponent(idx, analysis.FieldPitches)
}

// HasMaxPitchIn holds when any of the given pitch classes is maximal.
func HasMaxPitchIn(idxs ...int) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		for _, idx := range idxs {
			if MaxVector(idx, x.Pitches) {
				return true
			}
		}

		return false
	}
}
