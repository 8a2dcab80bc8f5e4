package dgn

import (
	"gonum.org/v1/gonum/mat"
)

// LossFunction is the loss regime of a Network. It owns every piece of Step
// that differs between the squared-error and Bernoulli framings: how raw
// features become first-layer activations, the constant bias unit, the space
// in which effective weights combine linearly, the squashing back out of that
// space, the per-neuron error scale, and the final loss.
type LossFunction interface {
	// TypeString returns a unique name, used by the registry and by Save/Load.
	TypeString() string

	// Activations maps the raw input features into first-layer activations.
	// The returned slice must not alias the argument.
	Activations([]float64) []float64

	// Bias returns the constant prepended to every layer's activation vector.
	Bias() float64

	// Linearize maps a bias-augmented activation vector into the space that
	// the effective weights combine linearly. May return its argument when
	// the mapping is the identity. The result is also the gradient's input
	// term, so it must stay valid until the layer's updates have been applied.
	Linearize([]float64) []float64

	// Activate maps a neuron's combined pre-activation back into activation
	// space. It returns both the stored activation and the raw (unclipped)
	// one; regimes without clipping return the same value twice.
	Activate(pre float64) (clipped, raw float64)

	// Gradient returns the per-neuron error scale for an update, and whether
	// the update should happen at all. The skip decision may depend on the
	// raw activation while the scale uses the clipped one.
	Gradient(target, clipped, raw float64) (float64, bool)

	// Loss of the final prediction against the target.
	Loss(prediction, target float64) float64
}

// Initializer fills one layer's hyperplane matrix at construction time. Rows
// are (neuron, branch) pairs; column 0 multiplies the gating bias magnitude.
//
// The default Initializer can be set at the package level with
// SetDefaultInitializer, which the subpackage "initializers" does on import.
type Initializer interface {
	Set(h *mat.Dense)
}

// HyperParameter is a value that may change over the course of training,
// indexed by the iteration. Learning-rate schedules implement it; see the
// subpackage "hyperparams".
type HyperParameter interface {
	// TypeString returns a unique name, used by the registry and by Save/Load.
	TypeString() string

	// Value returns the value at the given iteration.
	Value(iter int) float64
}

// Optimizer applies one weight adjustment from a set of gradients.
//
// arguments: number of weights, gradient of the weight at index, add to the
// weight at index, learning rate.
//
// Adding to weights is not thread-safe for repeated indexes.
type Optimizer interface {
	Run(size int, grad func(int) float64, add func(int, float64), learningRate float64) error
}
