package dgn

import (
	"github.com/pkg/errors"

	"gonum.org/v1/gonum/mat"
)

// Config fully determines the shapes of a Network's tensors.
type Config struct {
	// Sizes lists the number of neurons in each layer. The last entry must be
	// 1: the network always produces a single scalar output.
	Sizes []int

	// Branches is the number of candidate weight vectors per neuron.
	Branches int

	// Features is the number of raw input features.
	Features int

	// HyperplaneBias is the fixed bias magnitude prepended to the input when
	// computing gating decisions. Zero means the default of 1.
	HyperplaneBias float64
}

// Network is a Dendritic Gated Network. It owns its weight state exclusively;
// the only mutation path is Step with update enabled. Usage is single-threaded
// for training, while inference (update false) is safe to run concurrently.
type Network struct {
	conf Config
	lf   LossFunction
	opt  Optimizer
	lr   HyperParameter

	// weights[l][n][b] is the weight vector of branch b of neuron n in layer
	// l, of length inputsTo(l)+1 with the bias weight first. Zero-initialized;
	// mutated in place by Step.
	weights [][][][]float64

	// hyperplanes[l] has one row per (neuron, branch) pair, Features+1 wide.
	// Frozen after construction.
	hyperplanes []*mat.Dense

	// number of training steps taken, used to index HyperParameter schedules.
	iter int
}

// inputsTo returns the number of incoming activations to layer l, excluding
// the bias unit.
func (c Config) inputsTo(l int) int {
	if l == 0 {
		return c.Features
	}
	return c.Sizes[l-1]
}

func (c Config) validate() error {
	if len(c.Sizes) == 0 {
		return errors.Errorf("Config needs at least one layer")
	}
	if c.Sizes[len(c.Sizes)-1] != 1 {
		return errors.Errorf("Last layer must have exactly 1 neuron (%d)", c.Sizes[len(c.Sizes)-1])
	}
	for i, s := range c.Sizes {
		if s < 1 {
			return errors.Errorf("Layer %d must have size >= 1 (%d)", i, s)
		}
	}
	if c.Branches < 1 {
		return errors.Errorf("Branches must be >= 1 (%d)", c.Branches)
	}
	if c.Features < 1 {
		return errors.Errorf("Features must be >= 1 (%d)", c.Features)
	}
	return nil
}

// New constructs a Network from the given Config and loss regime. Weight
// tensors are allocated zeroed; hyperplane tensors are filled by init, or by
// the default Initializer if init is nil (set by importing the subpackage
// "initializers"). If an error is returned, it reflects a caller contract
// violation, not a recoverable condition.
func New(conf Config, lf LossFunction, init Initializer) (*Network, error) {
	if lf == nil {
		return nil, NilArgError{"LossFunction"}
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}
	if init == nil {
		if init = defaultInit; init == nil {
			return nil, errors.Errorf("No Initializer given and no default registered (import the initializers subpackage)")
		}
	}
	if conf.HyperplaneBias == 0 {
		conf.HyperplaneBias = 1
	}

	net := &Network{
		conf: conf,
		lf:   lf,
		opt:  defaultOptimizer(),
	}

	net.weights = make([][][][]float64, len(conf.Sizes))
	net.hyperplanes = make([]*mat.Dense, len(conf.Sizes))
	for l, size := range conf.Sizes {
		net.weights[l] = make([][][]float64, size)
		for n := range net.weights[l] {
			net.weights[l][n] = make([][]float64, conf.Branches)
			for b := range net.weights[l][n] {
				net.weights[l][n][b] = make([]float64, conf.inputsTo(l)+1)
			}
		}

		h := mat.NewDense(size*conf.Branches, conf.Features+1, nil)
		init.Set(h)
		net.hyperplanes[l] = h
	}

	return net, nil
}

// SetLearningRate sets the schedule that Step reads its learning rate from
// when updating. It returns the Network to allow chaining off New.
func (net *Network) SetLearningRate(lr HyperParameter) *Network {
	net.lr = lr
	return net
}

// SetOptimizer replaces the Optimizer used to apply weight adjustments. The
// default is plain gradient descent, registered by the subpackage
// "optimizers". SetOptimizer panics if given nil.
func (net *Network) SetOptimizer(opt Optimizer) *Network {
	if opt == nil {
		panic(NilArgError{"Optimizer"})
	}
	net.opt = opt
	return net
}

// Conf returns a copy of the Network's Config.
func (net *Network) Conf() Config {
	c := net.conf
	c.Sizes = make([]int, len(net.conf.Sizes))
	copy(c.Sizes, net.conf.Sizes)
	return c
}

// LossFunc returns the Network's loss regime.
func (net *Network) LossFunc() LossFunction {
	return net.lf
}

// Iter returns the number of training steps the Network has taken.
func (net *Network) Iter() int {
	return net.iter
}

// ResetIter resets the Network's tracked number of training steps, bringing
// HyperParameter schedules back to an earlier state. The given value will
// usually be zero. ResetIter returns an error if iter is negative.
func (net *Network) ResetIter(iter int) error {
	if iter < 0 {
		return errors.Errorf("Iteration must be >= 0 (%d)", iter)
	}
	net.iter = iter
	return nil
}

// Weights returns a deep copy of the weight vector of branch b of neuron n in
// layer l. It is meant for inspection; mutating the copy has no effect on the
// Network.
func (net *Network) Weights(l, n, b int) []float64 {
	w := net.weights[l][n][b]
	out := make([]float64, len(w))
	copy(out, w)
	return out
}

// Hyperplanes returns the hyperplane matrix of layer l. The caller must not
// modify it: hyperplanes are frozen after construction.
func (net *Network) Hyperplanes(l int) mat.Matrix {
	return net.hyperplanes[l]
}
