package cluster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-remix/analysis"
	"github.com/cwbudde/algo-remix/internal/vector"
)

var (
	// ErrDegenerateCluster is returned when a cluster has no members at the
	// start of a pass.
	ErrDegenerateCluster = errors.New("cluster: degenerate cluster")
	// ErrInvalidK is returned when k is not in [1, number of segments].
	ErrInvalidK = errors.New("cluster: invalid cluster count")
	// ErrNoSegments is returned for an empty segment list.
	ErrNoSegments = errors.New("cluster: no segments")
)

// Result summarises a successful KMeans run.
type Result struct {
	// Passes is the number of passes executed.
	Passes int

	// Converged reports whether the last pass moved no segment.
	Converged bool

	// Reassignments[p] is the number of segments that changed cluster in pass p.
	Reassignments []int

	// Inertia[p] is the total squared distance of every segment to its
	// centroid after pass p. It never increases.
	Inertia []float64

	// Sizes[c] is the final member count of cluster c.
	Sizes []int

	// Centroids[c] is the centroid used for the final assignment.
	Centroids [][]float64
}

// KMeans partitions segments into k clusters and stores each segment's
// label in its Cluster field. The context is checked between passes.
func KMeans(ctx context.Context, segments *analysis.List, k int, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)

	n := segments.Len()
	if n == 0 {
		return Result{}, ErrNoSegments
	}

	if k <= 0 || k > n {
		return Result{}, fmt.Errorf("%w: k=%d for %d segments", ErrInvalidK, k, n)
	}

	points := make([][]float64, n)
	for i := range points {
		v := cfg.Field.Of(segments.At(i))
		if len(v) != analysis.VectorLen {
			return Result{}, fmt.Errorf("cluster: segment %d: %w: %s has %d components",
				i, analysis.ErrMalformedAnalysis, cfg.Field, len(v))
		}

		points[i] = v
	}

	labels := initialLabels(n, k, cfg)
	centroids := make([][]float64, k)
	for c := range centroids {
		centroids[c] = make([]float64, analysis.VectorLen)
	}

	var res Result

	for pass := 0; pass < cfg.MaxPasses; pass++ {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("cluster: pass %d: %w", pass, err)
		}

		if err := updateCentroids(points, labels, centroids, cfg.Parallel); err != nil {
			return Result{}, fmt.Errorf("%w in pass %d", err, pass)
		}

		moved, inertia := assign(points, labels, centroids)

		res.Passes++
		res.Reassignments = append(res.Reassignments, moved)
		res.Inertia = append(res.Inertia, inertia)

		cfg.Logger.Debug("k-means pass",
			slog.Int("pass", pass),
			slog.Int("k", k),
			slog.Int("moved", moved),
			slog.Float64("inertia", inertia),
		)

		if moved == 0 {
			res.Converged = true
			break
		}
	}

	res.Sizes = make([]int, k)
	for i, q := range segments.All() {
		q.Cluster = labels[i]
		res.Sizes[labels[i]]++
	}

	res.Centroids = centroids

	cfg.Logger.Debug("k-means finished",
		slog.Int("passes", res.Passes),
		slog.Bool("converged", res.Converged),
		slog.Int("segments", n),
	)

	return res, nil
}

// initialLabels gives each cluster one randomly chosen segment and labels
// the remaining segments uniformly at random.
func initialLabels(n, k int, cfg Config) []int {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = cfg.Rand.Intn(k)
	}

	for c, i := range cfg.Rand.Perm(n)[:k] {
		labels[i] = c
	}

	return labels
}

func updateCentroids(points [][]float64, labels []int, centroids [][]float64, parallel bool) error {
	if !parallel {
		for c := range centroids {
			if err := centroid(points, labels, c, centroids[c]); err != nil {
				return err
			}
		}

		return nil
	}

	var g errgroup.Group
	for c := range centroids {
		g.Go(func() error {
			return centroid(points, labels, c, centroids[c])
		})
	}

	return g.Wait()
}

// centroid writes the mean of the members of cluster c into dst.
func centroid(points [][]float64, labels []int, c int, dst []float64) error {
	clear(dst)

	size := 0
	for i, p := range points {
		if labels[i] == c {
			vector.Accumulate(dst, p)
			size++
		}
	}

	if size == 0 {
		return fmt.Errorf("%w: cluster %d has no members", ErrDegenerateCluster, c)
	}

	vector.Scale(dst, 1/float64(size))

	return nil
}

// assign moves every point to its nearest centroid, lowest index first on
// ties, and returns the number of moves and the resulting inertia.
func assign(points [][]float64, labels []int, centroids [][]float64) (int, float64) {
	moved := 0
	inertia := 0.0

	for i, p := range points {
		best := 0
		bestDist := vector.SquaredDistance(p, centroids[0])

		for c := 1; c < len(centroids); c++ {
			if d := vector.SquaredDistance(p, centroids[c]); d < bestDist {
				best, bestDist = c, d
			}
		}

		if labels[i] != best {
			labels[i] = best
			moved++
		}

		inertia += bestDist
	}

	return moved, inertia
}

// Members returns the segments labelled c, in list order.
func Members(segments *analysis.List, c int) []*analysis.Quantum {
	var out []*analysis.Quantum
	for _, q := range segments.All() {
		if q.Cluster == c {
			out = append(out, q)
		}
	}

	return out
}

// Labels returns the current cluster label of every segment.
func Labels(segments *analysis.List) []int {
	out := make([]int, 0, segments.Len())
	for _, q := range segments.All() {
		out = append(out, q.Cluster)
	}

	return out
}
