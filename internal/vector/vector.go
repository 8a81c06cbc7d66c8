// Package vector implements the small fixed-length vector arithmetic shared by
// segment merging, sorting keys and clustering. Block operations are
// delegated to algo-vecmath so long vectors pick up its SIMD kernels.
package vector

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) ([]float64, *scratchBuf) {
	buf := scratchPool.Get().(*scratchBuf)
	if cap(buf.data) < n {
		buf.data = make([]float64, n)
	} else {
		buf.data = buf.data[:n]
	}

	return buf.data, buf
}

// SquaredDistance returns sum((a[i]-b[i])^2).
// Panics if the lengths differ.
func SquaredDistance(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("vector: length mismatch")
	}

	if len(a) == 0 {
		return 0
	}

	diff, buf := getScratch(len(a))
	vecmath.ScaleBlock(diff, b, -1)
	vecmath.AddBlockInPlace(diff, a)
	vecmath.MulBlockInPlace(diff, diff)

	sum := 0.0
	for _, d := range diff {
		sum += d
	}

	scratchPool.Put(buf)

	return sum
}

// Euclidean returns the Euclidean distance between a and b.
func Euclidean(a, b []float64) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// Accumulate adds src into dst element-wise.
func Accumulate(dst, src []float64) {
	vecmath.AddBlockInPlace(dst, src)
}

// Scale multiplies every element of v by s in place.
func Scale(v []float64, s float64) {
	vecmath.ScaleBlock(v, v, s)
}

// Sum returns the sum of all elements.
func Sum(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x
	}

	return sum
}
