package selection

import "github.com/cwbudde/algo-remix/analysis"

// ContainedByRange holds when x lies within [start, end].
func ContainedByRange(start, end float64) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		return x.Start >= start && x.End <= end
	}
}

// ContainedBy holds when x lies within ref.
func ContainedBy(ref *analysis.Quantum) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		return x.Start >= ref.Start && x.End <= ref.End
	}
}

// OverlapRange holds when x intersects (start, end). Touching intervals
// do not overlap.
func OverlapRange(start, end float64) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		return x.End > start && x.Start < end
	}
}

// Overlap holds when x intersects ref. Overlap(a)(b) == Overlap(b)(a).
func Overlap(ref *analysis.Quantum) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		return x.End > ref.Start && x.Start < ref.End
	}
}

// EndDuring holds when x ends in (ref.Start, ref.End].
func EndDuring(ref *analysis.Quantum) analysis.Predicate {
	return EndDuringRange(ref.Start, ref.End)
}

// EndDuringRange holds when x ends in (start, end].
func EndDuringRange(start, end float64) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		return x.End > start && x.End <= end
	}
}

// StartDuring holds when x starts in [ref.Start, ref.End).
func StartDuring(ref *analysis.Quantum) analysis.Predicate {
	return StartDuringRange(ref.Start, ref.End)
}

// StartDuringRange holds when x starts in [start, end).
func StartDuringRange(start, end float64) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		return x.Start >= start && x.Start < end
	}
}

// ContainsPoint holds when p lies strictly inside x.
func ContainsPoint(p float64) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		return p > x.Start && p < x.End
	}
}

// LieImmediatelyBefore holds when x ends exactly where ref starts.
func LieImmediatelyBefore(ref *analysis.Quantum) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		return x.End == ref.Start
	}
}

// LieImmediatelyAfter holds when x starts exactly where ref ends.
func LieImmediatelyAfter(ref *analysis.Quantum) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		return x.Start == ref.End
	}
}

// OverlapStartsOfAny holds when x contains the start of any ref,
// boundaries included.
func OverlapStartsOfAny(refs []*analysis.Quantum) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		for _, ref := range refs {
			if x.Start <= ref.Start && ref.Start <= x.End {
				return true
			}
		}

		return false
	}
}

// OverlapEndsOfAny holds when x contains the end of any ref, boundaries
// included.
func OverlapEndsOfAny(refs []*analysis.Quantum) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		for _, ref := range refs {
			if x.Start <= ref.End && ref.End <= x.End {
				return true
			}
		}

		return false
	}
}

// StartDuringAny holds when x starts in [ref.Start, ref.End) of any ref.
func StartDuringAny(refs []*analysis.Quantum) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		for _, ref := range refs {
			if x.Start >= ref.Start && x.Start < ref.End {
				return true
			}
		}

		return false
	}
}

// OrdinalWithinGroup holds when x is the n-th (1-based) member of its
// group, see analysis.Quantum.Group.
func OrdinalWithinGroup(n int) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		idx, _ := x.LocalPosition()
		return idx >= 0 && idx == n-1
	}
}

// KindOf holds for quanta of kind k.
func KindOf(k analysis.Kind) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		return x.Kind == k
	}
}

// InCluster holds for segments carrying cluster label c.
func InCluster(c int) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		return x.Cluster == c
	}
}

// MinConfidence holds when x.Confidence >= c.
func MinConfidence(c float64) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		return x.Confidence >= c
	}
}
