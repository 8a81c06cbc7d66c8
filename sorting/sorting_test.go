package sorting

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-remix/analysis"
	"github.com/cwbudde/algo-remix/internal/testutil"
)

func seg(start float64, timbre []float64) *analysis.Quantum {
	return &analysis.Quantum{
		Start:    start,
		End:      start + 1,
		Duration: 1,
		Kind:     analysis.KindSegment,
		Pitches:  testutil.OneHot(int(start) % analysis.VectorLen),
		Timbre:   timbre,
	}
}

func startsOf(qs []*analysis.Quantum) []float64 {
	out := make([]float64, len(qs))
	for i, q := range qs {
		out[i] = q.Start
	}
	return out
}

func TestScalarKeys(t *testing.T) {
	q := &analysis.Quantum{Start: 2, Duration: 0.5, Confidence: 0.7, LoudnessMax: -6, Pitches: testutil.Vector(0.5)}

	tests := []struct {
		name string
		key  analysis.Key
		want float64
	}{
		{"confidence", Confidence, 0.7},
		{"duration", Duration, 0.5},
		{"start", Start, 2},
		{"loudness", Loudness, -6},
		{"noisiness", Noisiness, 6},
		{"pitch value", PitchValue(3), 0.5},
		{"missing timbre", TimbreValue(0), math.Inf(1)},
		{"index out of range", PitchValue(12), math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key(q); got != tt.want {
				t.Fatalf("key = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVectorDistance(t *testing.T) {
	ref := seg(0, testutil.Vector(0))

	key := TimbreDistanceFrom(ref)
	if got := key(seg(1, testutil.Vector(2))); got != 48 {
		t.Fatalf("distance = %v, want 48", got)
	}

	if got := key(ref); got != 0 {
		t.Fatalf("self distance = %v, want 0", got)
	}

	if got := key(&analysis.Quantum{}); !math.IsInf(got, 1) {
		t.Fatalf("distance to vectorless quantum = %v, want +Inf", got)
	}

	if got := PitchDistanceFrom(ref)(seg(1, nil)); got != 2 {
		t.Fatalf("pitch distance = %v, want 2", got)
	}
}

func TestSortIsStable(t *testing.T) {
	ref := seg(0, testutil.Vector(0))
	qs := []*analysis.Quantum{
		seg(0, testutil.Vector(3)),
		seg(1, testutil.Vector(1)),
		seg(2, testutil.Vector(-3)), // same distance as the first
		seg(3, testutil.Vector(-1)), // same distance as the second
		seg(4, testutil.Vector(0)),
	}

	got := Sort(qs, TimbreDistanceFrom(ref), false)
	testutil.RequireSliceNearlyEqual(t, startsOf(got), []float64{4, 1, 3, 0, 2}, 0)

	got = Sort(qs, TimbreDistanceFrom(ref), true)
	testutil.RequireSliceNearlyEqual(t, startsOf(got), []float64{0, 2, 1, 3, 4}, 0)

	if qs[0].Start != 0 || qs[4].Start != 4 {
		t.Fatal("Sort modified its input")
	}
}

func TestSortEmpty(t *testing.T) {
	if got := Sort(nil, Confidence, false); len(got) != 0 {
		t.Fatalf("Sort(nil) = %v", got)
	}
}

func TestListSortByKey(t *testing.T) {
	a := testutil.DefaultGrid().Analysis()

	sorted := a.Segments.SortBy(Loudness, true)
	for i := 1; i < sorted.Len(); i++ {
		if sorted.At(i-1).LoudnessMax < sorted.At(i).LoudnessMax {
			t.Fatalf("not descending at %d", i)
		}
	}
}

func TestClosest(t *testing.T) {
	ref := seg(0, testutil.Vector(1))
	candidates := []*analysis.Quantum{
		seg(1, testutil.Vector(5)),
		seg(2, testutil.Vector(1.5)),
		seg(3, testutil.Vector(0.5)), // ties with the previous one
	}

	if got := Closest(candidates, ref, analysis.FieldTimbre); got != candidates[1] {
		t.Fatalf("Closest() = %v, want candidate 1", got)
	}

	if got := Closest(nil, ref, analysis.FieldTimbre); got != nil {
		t.Fatalf("Closest(nil) = %v", got)
	}
}
