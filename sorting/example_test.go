package sorting_test

import (
	"fmt"

	"github.com/cwbudde/algo-remix/analysis"
	"github.com/cwbudde/algo-remix/sorting"
)

func ExampleSort() {
	qs := []*analysis.Quantum{
		{Start: 0, Duration: 0.5, Confidence: 0.4},
		{Start: 1, Duration: 0.25, Confidence: 0.9},
		{Start: 2, Duration: 0.75, Confidence: 0.4},
	}

	for _, q := range sorting.Sort(qs, sorting.Confidence, true) {
		fmt.Println(q.Start, q.Confidence)
	}

	// Output:
	// 1 0.9
	// 0 0.4
	// 2 0.4
}
