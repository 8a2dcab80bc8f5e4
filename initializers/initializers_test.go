package initializers

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestHyperplanesUnitNorm(t *testing.T) {
	h := mat.NewDense(20, 7, nil)
	Hyperplanes(Normal().Seed(3)).Set(h)

	rows, _ := h.Dims()
	for i := 0; i < rows; i++ {
		row := h.RawRowView(i)
		if norm := floats.Norm(row[1:], 2); math.Abs(norm-1) > 1e-12 {
			t.Errorf("row %d: non-bias norm %v, want 1", i, norm)
		}
	}
}

func TestHyperplanesDeterministicWithSeed(t *testing.T) {
	a := mat.NewDense(6, 4, nil)
	b := mat.NewDense(6, 4, nil)
	Hyperplanes(Normal().Seed(9)).Set(a)
	Hyperplanes(Normal().Seed(9)).Set(b)

	if !mat.Equal(a, b) {
		t.Errorf("same seed should give identical hyperplanes")
	}
}

func TestUniformBounds(t *testing.T) {
	g := Uniform().Bounds(2, 5).Seed(1)
	for i := 0; i < 1000; i++ {
		if v := g.Gen(); v < 2 || v >= 5 {
			t.Fatalf("value %v outside [2, 5)", v)
		}
	}
}

func TestTruncNormalTruncates(t *testing.T) {
	g := TruncNormal().Trunc(1.5)
	g.Seed(2)
	for i := 0; i < 1000; i++ {
		if v := g.Gen(); v < -1.5 || v > 1.5 {
			t.Fatalf("value %v outside ±1.5 standard deviations", v)
		}
	}
}
