package dgn

import (
	"github.com/pkg/errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Step runs one example through the Network: it computes the scalar
// prediction and its loss against target, and, if update is true, adjusts
// the weights of gate-active branches in place as the forward pass proceeds.
// Branches whose gates are off for this example are left untouched.
//
// Gating is a function of the input alone: each (neuron, branch) pair is
// active iff the dot product of its hyperplane with the side-information
// vector [HyperplaneBias, inputs...] is strictly positive. An exactly-zero
// projection gates off. A neuron's effective weight vector is the sum over
// its active branches' weight vectors, a masked reduction over the branch
// dimension. As constructed the branches of a neuron partition the input
// space, so normally exactly one contributes, but no exclusivity is assumed
// here.
//
// With update false, Step does not mutate the Network at all and may be
// called concurrently.
func (net *Network) Step(inputs []float64, target float64, update bool) (prediction, loss float64, err error) {
	if len(inputs) != net.conf.Features {
		return 0, 0, errors.Errorf("Step input does not fit Network (%d != %d)", len(inputs), net.conf.Features)
	}

	var learningRate float64
	if update {
		if net.lr == nil {
			return 0, 0, ErrNoLearningRate
		}
		if net.opt == nil {
			return 0, 0, errors.Errorf("Network has no Optimizer (import the optimizers subpackage or call SetOptimizer)")
		}
		learningRate = net.lr.Value(net.iter)
	}

	side := make([]float64, net.conf.Features+1)
	side[0] = net.conf.HyperplaneBias
	copy(side[1:], inputs)
	sideVec := mat.NewVecDense(len(side), side)

	acts := net.lf.Activations(inputs)
	gates := make([]bool, net.conf.Branches)

	for l := range net.weights {
		aug := make([]float64, len(acts)+1)
		aug[0] = net.lf.Bias()
		copy(aug[1:], acts)

		lin := net.lf.Linearize(aug)
		out := make([]float64, len(net.weights[l]))

		for n := range net.weights[l] {
			eff := make([]float64, len(lin))
			for b := 0; b < net.conf.Branches; b++ {
				row := net.hyperplanes[l].RowView(n*net.conf.Branches + b)
				if gates[b] = mat.Dot(row, sideVec) > 0; gates[b] {
					floats.Add(eff, net.weights[l][n][b])
				}
			}

			pre := floats.Dot(eff, lin)
			clipped, raw := net.lf.Activate(pre)
			out[n] = clipped

			if !update {
				continue
			}
			scale, ok := net.lf.Gradient(target, clipped, raw)
			if !ok {
				continue
			}
			for b := range gates {
				if !gates[b] {
					continue
				}
				w := net.weights[l][n][b]
				err := net.opt.Run(len(w),
					func(i int) float64 { return scale * lin[i] },
					func(i int, delta float64) { w[i] += delta },
					learningRate)
				if err != nil {
					return 0, 0, errors.Wrapf(err, "Optimizer failed on layer %d, neuron %d, branch %d\n", l, n, b)
				}
			}
		}

		acts = out
	}

	prediction = acts[0]
	loss = net.lf.Loss(prediction, target)

	if update {
		net.iter++
	}
	return prediction, loss, nil
}
