package cluster_test

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-remix/analysis"
	"github.com/cwbudde/algo-remix/cluster"
)

func ExampleKMeans() {
	quiet := make([]float64, analysis.VectorLen)
	loud := make([]float64, analysis.VectorLen)
	for i := range loud {
		loud[i] = 50
	}

	segs := analysis.NewList(analysis.KindSegment,
		&analysis.Quantum{Start: 0, End: 1, Duration: 1, Timbre: quiet},
		&analysis.Quantum{Start: 1, End: 2, Duration: 1, Timbre: loud},
		&analysis.Quantum{Start: 2, End: 3, Duration: 1, Timbre: quiet},
	)

	res, err := cluster.KMeans(context.Background(), segs, 2, cluster.WithSeed(42))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("converged:", res.Converged)
	fmt.Println("same cluster:", segs.At(0).Cluster == segs.At(2).Cluster)
	fmt.Println("split:", segs.At(0).Cluster != segs.At(1).Cluster)

	// Output:
	// converged: true
	// same cluster: true
	// split: true
}
