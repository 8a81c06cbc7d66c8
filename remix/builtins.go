package remix

import (
	"github.com/cwbudde/algo-remix/analysis"
	"github.com/cwbudde/algo-remix/sorting"
)

// Builtins returns fresh instances of the built-in programs.
func Builtins() []Program {
	return []Program{
		Func("one", One),
		Func("reverse-beats", reverseLevel(analysis.KindBeat)),
		Func("reverse-segments", reverseLevel(analysis.KindSegment)),
		Func("sort-timbre", SortTimbre),
		Func("drop-last-beat", DropLastBeat),
		Func("cluster-walk", ClusterWalk),
	}
}

// One plays the first beat of every bar.
func One(a *analysis.Analysis) ([]analysis.Span, error) {
	var out []analysis.Span
	for _, bar := range a.Bars.All() {
		if children := bar.Children(); len(children) > 0 {
			out = append(out, children[0].Span())
		}
	}

	return out, nil
}

func reverseLevel(k analysis.Kind) func(*analysis.Analysis) ([]analysis.Span, error) {
	return func(a *analysis.Analysis) ([]analysis.Span, error) {
		return a.Level(k).Reverse().Spans(), nil
	}
}

// SortTimbre plays the segments ordered by their first timbre coefficient,
// roughly from quiet to loud.
func SortTimbre(a *analysis.Analysis) ([]analysis.Span, error) {
	return a.Segments.SortBy(sorting.TimbreValue(0), false).Spans(), nil
}

// DropLastBeat plays every beat except the last one of each bar. Beats
// outside any bar are kept.
func DropLastBeat(a *analysis.Analysis) ([]analysis.Span, error) {
	return a.Beats.Filter(func(q *analysis.Quantum) bool {
		if q.Parent() == nil {
			return true
		}

		idx, size := q.LocalPosition()

		return idx < size-1
	}).Spans(), nil
}

// ClusterWalk replaces every segment with the closest-timbre segment of the
// next cluster label, wrapping from the highest label to 0. The segments
// must have been clustered.
func ClusterWalk(a *analysis.Analysis) ([]analysis.Span, error) {
	segs := a.Segments.All()

	byLabel := map[int][]*analysis.Quantum{}
	k := 0

	for _, s := range segs {
		if s.Cluster < 0 {
			return nil, ErrNotClustered
		}

		byLabel[s.Cluster] = append(byLabel[s.Cluster], s)
		k = max(k, s.Cluster+1)
	}

	out := make([]analysis.Span, 0, len(segs))
	for _, s := range segs {
		target := (s.Cluster + 1) % k
		for len(byLabel[target]) == 0 {
			target = (target + 1) % k
		}

		if next := sorting.Closest(byLabel[target], s, analysis.FieldTimbre); next != nil {
			out = append(out, next.Span())
		}
	}

	return out, nil
}
