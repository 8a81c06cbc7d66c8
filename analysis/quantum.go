package analysis

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-remix/audio"
)

// Quantum is a time interval [Start, End) of one analysis level.
//
// Segment quanta additionally carry pitch and timbre vectors and loudness
// values; for other kinds those fields are zero. Link fields are set by
// Link and read through methods; a quantum never owns the quanta it links to.
type Quantum struct {
	Start      float64
	End        float64
	Duration   float64 // End - Start
	Confidence float64
	Kind       Kind

	Pitches         []float64
	Timbre          []float64
	LoudnessStart   float64 // dB at onset
	LoudnessMax     float64 // peak dB
	LoudnessMaxTime float64 // offset of the peak from Start, seconds
	LoudnessEnd     float64 // dB at offset

	// Cluster is the label assigned by package cluster, -1 if unclustered.
	Cluster int

	list          *List
	index         int
	prev, next    *Quantum
	parent        *Quantum
	children      []*Quantum
	indexInParent int
	firstOverlap  *Quantum
	overlapping   []*Quantum
}

// Span returns the (start, duration) pair of q.
func (q *Quantum) Span() Span {
	return Span{Start: q.Start, Duration: q.Duration}
}

// HasVectors reports whether q carries both 12-dimensional vectors.
func (q *Quantum) HasVectors() bool {
	return len(q.Pitches) == VectorLen && len(q.Timbre) == VectorLen
}

// List returns the list that owns q, or nil for a free-standing quantum.
func (q *Quantum) List() *List { return q.list }

// Index returns q's 0-based position in its owning list, or -1.
func (q *Quantum) Index() int {
	if q.list == nil {
		return -1
	}

	return q.index
}

// Prev returns the preceding sibling in the owning list.
func (q *Quantum) Prev() *Quantum { return q.prev }

// Next returns the following sibling in the owning list.
func (q *Quantum) Next() *Quantum { return q.next }

// Parent returns the quantum of the next coarser level whose interval
// contains q's start, or nil.
func (q *Quantum) Parent() *Quantum { return q.parent }

// Children returns the quanta of the next finer level whose start falls
// inside q, in ascending order. The returned slice is a copy.
func (q *Quantum) Children() []*Quantum {
	return slices.Clone(q.children)
}

// IndexInParent returns q's position among its parent's children, or -1.
func (q *Quantum) IndexInParent() int {
	if q.parent == nil {
		return -1
	}

	return q.indexInParent
}

// Group returns the siblings q's ordinal position is measured against: the
// parent's children when q has a parent, otherwise q's own list.
func (q *Quantum) Group() []*Quantum {
	if q.parent != nil {
		return slices.Clone(q.parent.children)
	}

	if q.list != nil {
		return q.list.All()
	}

	return nil
}

// LocalPosition returns q's index within Group and the group size.
// A quantum without parent or list reports (-1, 0).
func (q *Quantum) LocalPosition() (index, size int) {
	if q.parent != nil {
		return q.indexInParent, len(q.parent.children)
	}

	if q.list != nil {
		return q.index, q.list.Len()
	}

	return -1, 0
}

// FirstOverlap returns the first segment starting at or after q.Start.
// Only set for bars, beats and tatums.
func (q *Quantum) FirstOverlap() *Quantum { return q.firstOverlap }

// OverlappingSegments returns the segments found to intersect q.
// Only set for bars, beats and tatums. The returned slice is a copy.
func (q *Quantum) OverlappingSegments() []*Quantum {
	return slices.Clone(q.overlapping)
}

// Buffer returns the sample buffer of the analysis q belongs to.
func (q *Quantum) Buffer() *audio.Buffer {
	if q.list == nil || q.list.owner == nil {
		return nil
	}

	return q.list.owner.Buffer
}

// String formats q as "kind[index] start-end".
func (q *Quantum) String() string {
	return fmt.Sprintf("%s[%d] %.3f-%.3f", q.Kind, q.Index(), q.Start, q.End)
}

// clone returns an unlinked copy of q with its own vectors.
func (q *Quantum) clone() *Quantum {
	return &Quantum{
		Start:           q.Start,
		End:             q.End,
		Duration:        q.Duration,
		Confidence:      q.Confidence,
		Kind:            q.Kind,
		Pitches:         slices.Clone(q.Pitches),
		Timbre:          slices.Clone(q.Timbre),
		LoudnessStart:   q.LoudnessStart,
		LoudnessMax:     q.LoudnessMax,
		LoudnessMaxTime: q.LoudnessMaxTime,
		LoudnessEnd:     q.LoudnessEnd,
		Cluster:         q.Cluster,
		indexInParent:   -1,
	}
}

func (q *Quantum) resetLinks() {
	q.prev, q.next, q.parent = nil, nil, nil
	q.children = nil
	q.indexInParent = -1
	q.firstOverlap = nil
	q.overlapping = nil
}

// Span is a (start, duration) pair in seconds, the unit a remix is made of.
type Span struct {
	Start    float64
	Duration float64
}

// End returns Start + Duration.
func (s Span) End() float64 { return s.Start + s.Duration }

