package initializers

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type hyperplanes struct {
	RNG
}

// Hyperplanes returns an Initializer that fills a gating matrix from the
// provided RNG and then scales the non-bias components of each row to unit
// norm, fixing the scale of the gating decision boundaries. Column 0 (the
// bias component) is left as drawn.
//
// The result implements dgn.Initializer, and Hyperplanes(Normal()) is the
// default set on importing this package.
func Hyperplanes(g RNG) hyperplanes {
	return hyperplanes{g}
}

// Set is the implementation of dgn.Initializer.
func (hp hyperplanes) Set(h *mat.Dense) {
	rows, cols := h.Dims()
	for i := 0; i < rows; i++ {
		row := h.RawRowView(i)
		for j := 0; j < cols; j++ {
			row[j] = hp.Gen()
		}

		if norm := floats.Norm(row[1:], 2); norm != 0 {
			floats.Scale(1/norm, row[1:])
		}
	}
}

type random struct {
	RNG
}

// Random returns an Initializer that uses the provided RNG to generate the
// gating matrix directly. There is no scaling beyond that of the RNG; most
// callers want Hyperplanes instead.
func Random(g RNG) random {
	return random{g}
}

// Set is the implementation of dgn.Initializer.
func (r random) Set(h *mat.Dense) {
	rows, cols := h.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			h.Set(i, j, r.Gen())
		}
	}
}
