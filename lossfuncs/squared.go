package lossfuncs

import (
	"fmt"
)

type squared bool

// Squared returns the squared-error regime, which implements
// dgn.LossFunction. Activations pass through untouched, layers combine them
// linearly, and the loss is ½·(target−prediction)².
func Squared() *squared {
	s := squared(false)
	return &s
}

// L2 is a proxy for Squared.
func L2() *squared {
	return Squared()
}

func (s *squared) TypeString() string {
	return "squared"
}

// PrintOuts makes Loss print (target, prediction) on every call.
func (s *squared) PrintOuts() *squared {
	*s = squared(true)
	return s
}

func (s *squared) NoPrint() *squared {
	*s = squared(false)
	return s
}

func (s *squared) Activations(inputs []float64) []float64 {
	acts := make([]float64, len(inputs))
	copy(acts, inputs)
	return acts
}

func (s *squared) Bias() float64 {
	return 1
}

func (s *squared) Linearize(acts []float64) []float64 {
	return acts
}

func (s *squared) Activate(pre float64) (float64, float64) {
	return pre, pre
}

func (s *squared) Gradient(target, clipped, raw float64) (float64, bool) {
	return clipped - target, true
}

func (s *squared) Loss(prediction, target float64) float64 {
	if bool(*s) {
		fmt.Println(target, prediction)
	}

	d := target - prediction
	return 0.5 * d * d
}
