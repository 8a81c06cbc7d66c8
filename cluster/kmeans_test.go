package cluster

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/cwbudde/algo-remix/analysis"
	"github.com/cwbudde/algo-remix/internal/testutil"
)

func segments(timbres ...[]float64) *analysis.List {
	qs := make([]*analysis.Quantum, len(timbres))
	for i, t := range timbres {
		qs[i] = &analysis.Quantum{
			Start:    float64(i),
			End:      float64(i + 1),
			Duration: 1,
			Kind:     analysis.KindSegment,
			Pitches:  testutil.OneHot(i % analysis.VectorLen),
			Timbre:   t,
			Cluster:  -1,
		}
	}

	return analysis.NewList(analysis.KindSegment, qs...)
}

func TestKMeansSingleCluster(t *testing.T) {
	a := testutil.DefaultGrid().Analysis()

	res, err := KMeans(context.Background(), a.Segments, 1, WithSeed(1))
	if err != nil {
		t.Fatalf("KMeans() error = %v", err)
	}

	if res.Passes != 1 || !res.Converged {
		t.Fatalf("passes = %d, converged = %v; want 1, true", res.Passes, res.Converged)
	}

	for i, l := range Labels(a.Segments) {
		if l != 0 {
			t.Fatalf("label[%d] = %d, want 0", i, l)
		}
	}

	if res.Sizes[0] != a.Segments.Len() {
		t.Fatalf("size = %d, want %d", res.Sizes[0], a.Segments.Len())
	}

	// Timbres cycle through 0, 10, 20 and 30.
	testutil.RequireSliceNearlyEqual(t, res.Centroids[0], testutil.Vector(15), 1e-12)
}

func TestKMeansTwoDistantSegments(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		segs := segments(testutil.Vector(0), testutil.Vector(100))

		res, err := KMeans(context.Background(), segs, 2, WithSeed(seed))
		if err != nil {
			t.Fatalf("seed %d: KMeans() error = %v", seed, err)
		}

		if res.Passes > 2 || !res.Converged {
			t.Fatalf("seed %d: passes = %d, converged = %v", seed, res.Passes, res.Converged)
		}

		l := Labels(segs)
		if l[0] == l[1] {
			t.Fatalf("seed %d: both segments in cluster %d", seed, l[0])
		}
	}
}

// blobs returns three groups of five segments spread over the first two
// timbre components. Every group has the same shape, so the optimal
// inertia is 3*20.
func blobs() *analysis.List {
	coords := [][2]float64{
		{0, 0}, {1, 3}, {2, 1}, {3, 4}, {4, 2},
		{10, 1}, {11, 4}, {12, 0}, {13, 3}, {14, 2},
		{5, 10}, {6, 13}, {7, 11}, {8, 14}, {9, 12},
	}

	timbres := make([][]float64, len(coords))
	for i, c := range coords {
		timbres[i] = make([]float64, analysis.VectorLen)
		timbres[i][0], timbres[i][1] = c[0], c[1]
	}

	return segments(timbres...)
}

func TestKMeansInertiaNonIncreasing(t *testing.T) {
	// These seeds take four passes to separate the groups.
	for _, seed := range []int64{7, 10, 21} {
		segs := blobs()

		res, err := KMeans(context.Background(), segs, 3, WithSeed(seed))
		if err != nil {
			t.Fatalf("seed %d: KMeans() error = %v", seed, err)
		}

		if !res.Converged || res.Passes != 4 || len(res.Inertia) != 4 || len(res.Reassignments) != 4 {
			t.Fatalf("seed %d: inconsistent result %+v", seed, res)
		}

		for p := 1; p < len(res.Inertia); p++ {
			if res.Inertia[p] > res.Inertia[p-1] {
				t.Fatalf("seed %d: inertia rose in pass %d: %v", seed, p, res.Inertia)
			}
		}

		testutil.RequireNearlyEqual(t, res.Inertia[3], 60, 1e-9, "final inertia")

		if res.Reassignments[3] != 0 {
			t.Fatalf("seed %d: converged with moves in the last pass", seed)
		}

		labels := Labels(segs)
		for g := 0; g < 3; g++ {
			for i := 5 * g; i < 5*g+5; i++ {
				if labels[i] != labels[5*g] {
					t.Fatalf("seed %d: group %d split: %v", seed, g, labels)
				}
			}
		}

		for c, size := range res.Sizes {
			if size != 5 || len(Members(segs, c)) != 5 {
				t.Fatalf("seed %d: cluster %d has %d members", seed, c, size)
			}
		}
	}
}

func TestKMeansGridDegenerates(t *testing.T) {
	// The grid timbres are four points on one line; three random clusters
	// start with near-equal centroids and the middle one empties.
	a := testutil.DefaultGrid().Analysis()

	_, err := KMeans(context.Background(), a.Segments, 3, WithSeed(0))
	if !errors.Is(err, ErrDegenerateCluster) {
		t.Fatalf("KMeans() error = %v, want ErrDegenerateCluster", err)
	}
}

func TestKMeansDegenerateCluster(t *testing.T) {
	segs := segments(testutil.Vector(1), testutil.Vector(1), testutil.Vector(1))

	// Identical centroids send every segment to cluster 0, emptying cluster 1.
	_, err := KMeans(context.Background(), segs, 2, WithSeed(7))
	if !errors.Is(err, ErrDegenerateCluster) {
		t.Fatalf("KMeans() error = %v, want ErrDegenerateCluster", err)
	}

	for i, l := range Labels(segs) {
		if l != -1 {
			t.Fatalf("label[%d] = %d written on failure", i, l)
		}
	}
}

func TestKMeansInvalidInput(t *testing.T) {
	three := segments(testutil.Vector(0), testutil.Vector(1), testutil.Vector(2))

	tests := []struct {
		name string
		segs *analysis.List
		k    int
		want error
	}{
		{"zero k", three, 0, ErrInvalidK},
		{"negative k", three, -1, ErrInvalidK},
		{"k above segment count", three, 4, ErrInvalidK},
		{"no segments", analysis.NewList(analysis.KindSegment), 1, ErrNoSegments},
		{"nil list", nil, 1, ErrNoSegments},
		{"missing timbre", segments(nil, nil), 1, analysis.ErrMalformedAnalysis},
		{"short timbre", segments([]float64{1, 2}), 1, analysis.ErrMalformedAnalysis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := KMeans(context.Background(), tt.segs, tt.k)
			if !errors.Is(err, tt.want) {
				t.Fatalf("KMeans() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestKMeansCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	segs := segments(testutil.Vector(0), testutil.Vector(5))

	_, err := KMeans(ctx, segs, 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("KMeans() error = %v, want context.Canceled", err)
	}

	if l := Labels(segs); l[0] != -1 || l[1] != -1 {
		t.Fatalf("labels written on cancellation: %v", l)
	}
}

func TestKMeansParallelMatchesSequential(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		seq, par := blobs(), blobs()

		resSeq, errSeq := KMeans(context.Background(), seq, 3, WithSeed(seed))
		resPar, errPar := KMeans(context.Background(), par, 3, WithSeed(seed), WithParallel(true))

		if (errSeq == nil) != (errPar == nil) {
			t.Fatalf("seed %d: errors differ: %v vs %v", seed, errSeq, errPar)
		}

		if errSeq != nil {
			continue
		}

		testutil.RequireSliceNearlyEqual(t, resPar.Inertia, resSeq.Inertia, 0)

		ls, lp := Labels(seq), Labels(par)
		for i := range ls {
			if ls[i] != lp[i] {
				t.Fatalf("seed %d: label[%d] = %d parallel, %d sequential", seed, i, lp[i], ls[i])
			}
		}
	}
}

func TestKMeansMaxPasses(t *testing.T) {
	a := testutil.DefaultGrid().Analysis()

	res, err := KMeans(context.Background(), a.Segments, 2, WithSeed(3), WithMaxPasses(1))
	if err != nil {
		t.Fatalf("KMeans() error = %v", err)
	}

	if res.Passes != 1 {
		t.Fatalf("passes = %d, want 1", res.Passes)
	}

	for i, l := range Labels(a.Segments) {
		if l < 0 || l > 1 {
			t.Fatalf("label[%d] = %d", i, l)
		}
	}
}

func TestKMeansPitchField(t *testing.T) {
	segs := segments(testutil.Vector(0), testutil.Vector(0))
	segs.At(0).Pitches = testutil.OneHot(0)
	segs.At(1).Pitches = testutil.OneHot(7)

	res, err := KMeans(context.Background(), segs, 2, WithField(analysis.FieldPitches), WithSeed(1))
	if err != nil {
		t.Fatalf("KMeans() error = %v", err)
	}

	if res.Sizes[0] != 1 || res.Sizes[1] != 1 {
		t.Fatalf("sizes = %v, want [1 1]", res.Sizes)
	}
}

func TestKMeansLogsPasses(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	segs := segments(testutil.Vector(0), testutil.Vector(9))
	if _, err := KMeans(context.Background(), segs, 2, WithSeed(1), WithLogger(logger)); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "k-means pass") || !strings.Contains(out, "converged=true") {
		t.Fatalf("unexpected log output:\n%s", out)
	}
}

func TestApplyOptionsDefaults(t *testing.T) {
	cfg := ApplyOptions(WithMaxPasses(-3), nil)

	if cfg.MaxPasses != DefaultMaxPasses || cfg.Rand == nil || cfg.Logger == nil {
		t.Fatalf("defaults not applied: %+v", cfg)
	}

	if cfg.Field != analysis.FieldTimbre {
		t.Fatalf("field = %v, want timbre", cfg.Field)
	}
}
