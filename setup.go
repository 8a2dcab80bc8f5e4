package dgn

import (
	"github.com/pkg/errors"
)

// The registries let persisted networks name their parts. Subpackages fill
// them from init(): "lossfuncs" registers both loss regimes, "hyperparams"
// its schedules, "optimizers" registers SGD and makes it the default.
var (
	lossFuncs   = make(map[string]func() LossFunction)
	hyperParams = make(map[string]func() HyperParameter)
	optims      = make(map[string]func() Optimizer)

	defaultInit Initializer
	defaultOpt  func() Optimizer
)

// RegisterLossFunction registers a constructor for a LossFunction under the
// TypeString it produces, so that Load can reconstruct it by name.
func RegisterLossFunction(name string, f func() LossFunction) error {
	if f == nil {
		return NilArgError{"constructor"}
	} else if f() == nil {
		return ErrRegisterNilReturn
	} else if _, ok := lossFuncs[name]; ok {
		return ErrRegisterTaken
	}

	lossFuncs[name] = f
	return nil
}

// RegisterHyperParameter registers a constructor for a HyperParameter under
// the TypeString it produces. Load uses the registry to rebuild learning-rate
// schedules from file.
func RegisterHyperParameter(name string, f func() HyperParameter) error {
	if f == nil {
		return NilArgError{"constructor"}
	} else if f() == nil {
		return ErrRegisterNilReturn
	} else if _, ok := hyperParams[name]; ok {
		return ErrRegisterTaken
	}

	hyperParams[name] = f
	return nil
}

// RegisterOptimizer registers a constructor for an Optimizer by name.
func RegisterOptimizer(name string, f func() Optimizer) error {
	if f == nil {
		return NilArgError{"constructor"}
	} else if f() == nil {
		return ErrRegisterNilReturn
	} else if _, ok := optims[name]; ok {
		return ErrRegisterTaken
	}

	optims[name] = f
	return nil
}

// SetDefaultInitializer sets the Initializer that New falls back to when
// given nil.
func SetDefaultInitializer(init Initializer) {
	defaultInit = init
}

// SetDefaultOptimizer sets the constructor for the Optimizer that new
// Networks start with.
func SetDefaultOptimizer(f func() Optimizer) {
	defaultOpt = f
}

func defaultOptimizer() Optimizer {
	if defaultOpt == nil {
		return nil
	}
	return defaultOpt()
}

func lossFunctionFromString(name string) (LossFunction, error) {
	f, ok := lossFuncs[name]
	if !ok {
		return nil, errors.Errorf("No LossFunction registered with name %q", name)
	}
	return f(), nil
}

func hyperParameterFromString(name string) (HyperParameter, error) {
	f, ok := hyperParams[name]
	if !ok {
		return nil, errors.Errorf("No HyperParameter registered with name %q", name)
	}
	return f(), nil
}
