package lossfuncs

import (
	"fmt"
	"math"
)

type bernoulli struct {
	eps   float64
	print bool
}

// defaultEpsilon bounds activations away from 0 and 1. It is the regime's
// only numeric-stability safeguard: logs and logits never see a saturated
// probability.
const defaultEpsilon float64 = 0.01

// Bernoulli returns the log-loss regime, which implements dgn.LossFunction.
// Activations live in probability space, clipped to [ε, 1−ε]; layers combine
// them in log-odds space; the loss is the negative Bernoulli log-likelihood.
// ε defaults to 0.01 and can be set by Epsilon.
func Bernoulli() *bernoulli {
	return &bernoulli{eps: defaultEpsilon}
}

// Epsilon sets the clipping bound, returning the same regime. Epsilon panics
// if given eps outside (0, 0.5).
func (b *bernoulli) Epsilon(eps float64) *bernoulli {
	if eps <= 0 || eps >= 0.5 {
		panic("epsilon must be in (0, 0.5)")
	}

	b.eps = eps
	return b
}

func (b *bernoulli) TypeString() string {
	return "bernoulli"
}

// PrintOuts makes Loss print (target, prediction) on every call.
func (b *bernoulli) PrintOuts() *bernoulli {
	b.print = true
	return b
}

func (b *bernoulli) NoPrint() *bernoulli {
	b.print = false
	return b
}

// sigmoid is the numerically stable logistic function: the exponential is
// always taken of a non-positive number.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}

	e := math.Exp(x)
	return e / (1 + e)
}

// logit is the inverse sigmoid. Its argument is always clipped first, so the
// ratio stays finite.
func logit(p float64) float64 {
	return math.Log(p / (1 - p))
}

func (b *bernoulli) clip(p float64) float64 {
	return math.Min(math.Max(p, b.eps), 1-b.eps)
}

func (b *bernoulli) Activations(inputs []float64) []float64 {
	acts := make([]float64, len(inputs))
	for i, x := range inputs {
		acts[i] = b.clip(sigmoid(x))
	}

	return acts
}

// Bias is the sigmoid of 1: the bias unit is a probability like every other
// activation in this regime.
func (b *bernoulli) Bias() float64 {
	return sigmoid(1)
}

func (b *bernoulli) Linearize(acts []float64) []float64 {
	lin := make([]float64, len(acts))
	for i, p := range acts {
		lin[i] = logit(p)
	}

	return lin
}

func (b *bernoulli) Activate(pre float64) (float64, float64) {
	raw := sigmoid(pre)
	return b.clip(raw), raw
}

// Gradient skips the update entirely unless the unclipped prediction is more
// than ε away from the target; a unit that is already confidently correct is
// left alone even when clipping would report an error. The scale itself uses
// the clipped prediction.
func (b *bernoulli) Gradient(target, clipped, raw float64) (float64, bool) {
	if math.Abs(target-raw) <= b.eps {
		return 0, false
	}

	return clipped - target, true
}

func (b *bernoulli) Loss(prediction, target float64) float64 {
	if b.print {
		fmt.Println(target, prediction)
	}

	return -(target*math.Log(prediction) + (1-target)*math.Log(1-prediction))
}
