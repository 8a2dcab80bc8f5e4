package datasets

import (
	"math/rand"
)

// XOR returns the four-example XOR problem with ±1 inputs and 0/1 targets.
func XOR() Dataset {
	return Dataset{
		Inputs:  [][]float64{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}},
		Targets: []float64{0, 1, 1, 0},
	}
}

// Gaussians generates n examples drawn from a two-class Gaussian mixture in
// the given number of dimensions: class 0 centered at -sep/2 on every axis,
// class 1 at +sep/2, both with unit variance. Classes are drawn with equal
// probability.
func Gaussians(n, features int, sep float64, src *rand.Rand) Dataset {
	d := Dataset{
		Inputs:  make([][]float64, n),
		Targets: make([]float64, n),
	}

	for i := 0; i < n; i++ {
		target := float64(src.Intn(2))
		center := sep / 2 * (2*target - 1)

		row := make([]float64, features)
		for j := range row {
			row[j] = src.NormFloat64() + center
		}

		d.Inputs[i] = row
		d.Targets[i] = target
	}

	return d
}
