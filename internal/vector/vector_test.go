package vector

import (
	"math"
	"testing"
)

func TestSquaredDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"empty", nil, nil, 0},
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"unit axes", []float64{1, 0}, []float64{0, 1}, 2},
		{"twelve dims", make12(1), make12(3), 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredDistance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("SquaredDistance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSquaredDistanceDoesNotMutateInputs(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{3, 2, 1}
	_ = SquaredDistance(a, b)

	if a[0] != 1 || b[0] != 3 {
		t.Fatalf("inputs mutated: a=%v b=%v", a, b)
	}
}

func TestSquaredDistancePanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()

	SquaredDistance([]float64{1}, []float64{1, 2})
}

func TestEuclidean(t *testing.T) {
	if got := Euclidean([]float64{0, 0}, []float64{3, 4}); got != 5 {
		t.Fatalf("Euclidean() = %v, want 5", got)
	}
}

func TestAccumulateAndScale(t *testing.T) {
	acc := make([]float64, 3)
	Accumulate(acc, []float64{1, 2, 3})
	Accumulate(acc, []float64{3, 2, 1})
	Scale(acc, 0.5)

	for i, v := range acc {
		if v != 2 {
			t.Fatalf("acc[%d] = %v, want 2", i, v)
		}
	}
}

func make12(v float64) []float64 {
	out := make([]float64, 12)
	for i := range out {
		out[i] = v
	}

	return out
}
