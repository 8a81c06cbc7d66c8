package analysis

import (
	"cmp"
	"slices"
)

// Predicate tests a single quantum.
type Predicate func(*Quantum) bool

// Key maps a quantum to a sort value.
type Key func(*Quantum) float64

// List is an ordered sequence of quanta of one kind.
//
// Lists built by New own their quanta and are sorted ascending by Start.
// Lists returned by Filter, SortBy and Reverse are views: they share the
// same *Quantum values, and the quanta keep reporting their original owner
// through Quantum.List.
type List struct {
	kind   Kind
	quanta []*Quantum
	owner  *Analysis
}

// NewList returns a view list over quanta. It does not take ownership.
func NewList(kind Kind, quanta ...*Quantum) *List {
	return &List{kind: kind, quanta: quanta}
}

func newOwnedList(kind Kind, quanta []*Quantum, owner *Analysis) *List {
	l := &List{kind: kind, quanta: quanta, owner: owner}
	for i, q := range quanta {
		q.list = l
		q.index = i
	}

	return l
}

// Kind returns the level of the list.
func (l *List) Kind() Kind {
	if l == nil {
		return 0
	}

	return l.kind
}

// Len returns the number of quanta.
func (l *List) Len() int {
	if l == nil {
		return 0
	}

	return len(l.quanta)
}

// At returns quantum i, or nil when i is out of range.
func (l *List) At(i int) *Quantum {
	if l == nil || i < 0 || i >= len(l.quanta) {
		return nil
	}

	return l.quanta[i]
}

// First returns the first quantum or nil.
func (l *List) First() *Quantum { return l.At(0) }

// Last returns the last quantum or nil.
func (l *List) Last() *Quantum { return l.At(l.Len() - 1) }

// All returns a copy of the quanta slice.
func (l *List) All() []*Quantum {
	if l == nil {
		return nil
	}

	return slices.Clone(l.quanta)
}

// Filter returns a view of the quanta for which p holds, in list order.
// A nil predicate keeps everything.
func (l *List) Filter(p Predicate) *List {
	out := &List{kind: l.Kind()}
	if l == nil {
		return out
	}

	for _, q := range l.quanta {
		if p == nil || p(q) {
			out.quanta = append(out.quanta, q)
		}
	}

	return out
}

// FilterAll keeps the quanta satisfying every predicate.
func (l *List) FilterAll(ps ...Predicate) *List {
	return l.Filter(func(q *Quantum) bool {
		for _, p := range ps {
			if p != nil && !p(q) {
				return false
			}
		}

		return true
	})
}

// SortBy returns a view ordered by key. The sort is stable: quanta with
// equal keys keep their relative order, in both directions.
func (l *List) SortBy(key Key, descending bool) *List {
	out := &List{kind: l.Kind(), quanta: l.All()}
	if key == nil || len(out.quanta) < 2 {
		return out
	}

	SortQuanta(out.quanta, key, descending)

	return out
}

// SortQuanta stably sorts quanta in place by key.
func SortQuanta(quanta []*Quantum, key Key, descending bool) {
	keys := make(map[*Quantum]float64, len(quanta))
	for _, q := range quanta {
		keys[q] = key(q)
	}

	slices.SortStableFunc(quanta, func(a, b *Quantum) int {
		if descending {
			return cmp.Compare(keys[b], keys[a])
		}

		return cmp.Compare(keys[a], keys[b])
	})
}

// Reverse returns a view with the quanta in reverse order.
func (l *List) Reverse() *List {
	out := &List{kind: l.Kind(), quanta: l.All()}
	slices.Reverse(out.quanta)

	return out
}

// Spans returns the (start, duration) pairs of the list in order.
func (l *List) Spans() []Span {
	if l == nil {
		return nil
	}

	out := make([]Span, len(l.quanta))
	for i, q := range l.quanta {
		out[i] = q.Span()
	}

	return out
}

// Spans converts quanta to their (start, duration) pairs.
func Spans(quanta []*Quantum) []Span {
	out := make([]Span, len(quanta))
	for i, q := range quanta {
		out[i] = q.Span()
	}

	return out
}
