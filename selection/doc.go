// Package selection provides predicates for filtering quanta.
//
// Every function returns an analysis.Predicate. Interval tests treat quanta
// as half-open [Start, End): touching intervals do not overlap, and
// ContainsPoint excludes both boundaries. Predicates are combined with And,
// Or and Not:
//
//	a.Segments.Filter(selection.And(
//		selection.Overlap(bar),
//		selection.IsMaxVectorComponent(0, analysis.FieldPitches),
//	))
package selection
