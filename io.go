package dgn

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"gonum.org/v1/gonum/mat"
)

// savedNetwork is the JSON layout of a Network on disk.
type savedNetwork struct {
	Conf Config
	Loss string

	// Weights is indexed [layer][neuron][branch][weight].
	Weights [][][][]float64

	// Hyperplanes holds each layer's matrix in row-major order; the shape is
	// recovered from Conf.
	Hyperplanes [][]float64

	LearningRate *savedSchedule `json:",omitempty"`

	Iter int
}

type savedSchedule struct {
	Type string
	Data json.RawMessage
}

// Save writes the Network to a single JSON file at the given path, creating
// or truncating it. Configuration, weights, hyperplanes, the learning-rate
// schedule and the iteration counter are all included, so training can resume
// after a Load.
func (net *Network) Save(path string) error {
	s := savedNetwork{
		Conf:        net.conf,
		Loss:        net.lf.TypeString(),
		Weights:     net.weights,
		Hyperplanes: make([][]float64, len(net.hyperplanes)),
		Iter:        net.iter,
	}

	for l, h := range net.hyperplanes {
		raw := h.RawMatrix()
		data := make([]float64, len(raw.Data))
		copy(data, raw.Data)
		s.Hyperplanes[l] = data
	}

	if net.lr != nil {
		data, err := json.Marshal(net.lr)
		if err != nil {
			return errors.Wrapf(err, "Failed to encode learning-rate schedule\n")
		}
		s.LearningRate = &savedSchedule{Type: net.lr.TypeString(), Data: data}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Failed to create file %q\n", path)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err = enc.Encode(s); err != nil {
		return errors.Wrapf(err, "Failed to encode network to file %q\n", path)
	}

	return nil
}

// Load restores a Network previously written by Save. If lf is nil, the loss
// regime is reconstructed by name from the registry (filled by importing the
// subpackage "lossfuncs"), with its default options; pass lf explicitly to
// keep non-default options such as a custom epsilon. When lf is given, its
// TypeString must match the one saved.
func Load(path string, lf LossFunction) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open file %q\n", path)
	}
	defer f.Close()

	var s savedNetwork
	dec := json.NewDecoder(f)
	if err = dec.Decode(&s); err != nil {
		return nil, errors.Wrapf(err, "Failed to decode network from file %q\n", path)
	}

	if lf == nil {
		if lf, err = lossFunctionFromString(s.Loss); err != nil {
			return nil, err
		}
	} else if lf.TypeString() != s.Loss {
		return nil, errors.Errorf("Given LossFunction %q does not match saved %q", lf.TypeString(), s.Loss)
	}

	if err = s.Conf.validate(); err != nil {
		return nil, errors.Wrapf(err, "Saved Config is invalid\n")
	}

	net := &Network{
		conf: s.Conf,
		lf:   lf,
		opt:  defaultOptimizer(),
		iter: s.Iter,
	}

	// weight shapes are trusted only after checking against the Config
	if len(s.Weights) != len(s.Conf.Sizes) || len(s.Hyperplanes) != len(s.Conf.Sizes) {
		return nil, errors.Errorf("Saved tensors do not match Config (%d layers)", len(s.Conf.Sizes))
	}
	for l, size := range s.Conf.Sizes {
		if len(s.Weights[l]) != size {
			return nil, errors.Errorf("Saved weights for layer %d do not match Config", l)
		}
		rows, cols := size*s.Conf.Branches, s.Conf.Features+1
		if len(s.Hyperplanes[l]) != rows*cols {
			return nil, errors.Errorf("Saved hyperplanes for layer %d do not match Config", l)
		}
		for n := range s.Weights[l] {
			if len(s.Weights[l][n]) != s.Conf.Branches {
				return nil, errors.Errorf("Saved weights for layer %d, neuron %d do not match Config", l, n)
			}
			for b := range s.Weights[l][n] {
				if len(s.Weights[l][n][b]) != s.Conf.inputsTo(l)+1 {
					return nil, errors.Errorf("Saved weights for layer %d, neuron %d, branch %d do not match Config", l, n, b)
				}
			}
		}
	}

	net.weights = s.Weights
	net.hyperplanes = make([]*mat.Dense, len(s.Conf.Sizes))
	for l, size := range s.Conf.Sizes {
		net.hyperplanes[l] = mat.NewDense(size*s.Conf.Branches, s.Conf.Features+1, s.Hyperplanes[l])
	}

	if s.LearningRate != nil {
		lr, err := hyperParameterFromString(s.LearningRate.Type)
		if err != nil {
			return nil, err
		}
		if err = json.Unmarshal(s.LearningRate.Data, lr); err != nil {
			return nil, errors.Wrapf(err, "Failed to decode learning-rate schedule %q\n", s.LearningRate.Type)
		}
		net.lr = lr
	}

	return net, nil
}
