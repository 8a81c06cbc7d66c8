package window

import (
	"errors"
	"math"
	"testing"
)

func TestGenerateShapes(t *testing.T) {
	types := []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman, TypeBlackmanHarris4Term}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 65)
			if len(w) != 65 {
				t.Fatalf("len=%d, want 65", len(w))
			}

			if math.Abs(w[32]-1) > 1e-12 {
				t.Fatalf("centre = %v, want 1", w[32])
			}

			for i := range w {
				if math.Abs(w[i]-w[len(w)-1-i]) > 1e-12 {
					t.Fatalf("asymmetric at %d: %v vs %v", i, w[i], w[len(w)-1-i])
				}
			}
		})
	}
}

func TestGenerateEdges(t *testing.T) {
	tests := []struct {
		typ  Type
		edge float64
	}{
		{TypeRectangular, 1},
		{TypeHann, 0},
		{TypeHamming, 0.08},
		{TypeBlackman, 0},
		{TypeBlackmanHarris4Term, 0.00006},
	}

	for _, tt := range tests {
		w := Generate(tt.typ, 16)
		if math.Abs(w[0]-tt.edge) > 1e-12 {
			t.Fatalf("%v: w[0] = %v, want %v", tt.typ, w[0], tt.edge)
		}
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)
	b := Generate(TypeHann, 16, WithPeriodic())

	if a[15] != 0 || b[15] == 0 {
		t.Fatalf("last coefficients: symmetric %v, periodic %v", a[15], b[15])
	}
}

func TestGenerateDegenerateLengths(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("Generate(0) = %v", w)
	}

	if w := Generate(TypeHann, 1); len(w) != 1 || w[0] != 0 {
		t.Fatalf("Generate(1) = %v", w)
	}
}

func TestParseType(t *testing.T) {
	for typ := range names {
		got, err := ParseType(" " + typ.String() + " ")
		if err != nil || got != typ {
			t.Fatalf("ParseType(%q) = %v, %v", typ.String(), got, err)
		}
	}

	if _, err := ParseType("kaiser"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("ParseType(kaiser) error = %v", err)
	}

	if s := Type(99).String(); s != "Type(99)" {
		t.Fatalf("String() = %q", s)
	}
}
