package selection

import "github.com/cwbudde/algo-remix/analysis"

// And holds when every predicate holds. And() is always true.
func And(ps ...analysis.Predicate) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		for _, p := range ps {
			if !p(x) {
				return false
			}
		}

		return true
	}
}

// Or holds when any predicate holds. Or() is always false.
func Or(ps ...analysis.Predicate) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		for _, p := range ps {
			if p(x) {
				return true
			}
		}

		return false
	}
}

// Not negates p.
func Not(p analysis.Predicate) analysis.Predicate {
	return func(x *analysis.Quantum) bool {
		return !p(x)
	}
}

// Any reports whether p holds for at least one of quanta.
func Any(quanta []*analysis.Quantum, p analysis.Predicate) bool {
	for _, q := range quanta {
		if p(q) {
			return true
		}
	}

	return false
}
