package optimizers

import (
	"github.com/ibex-training/dgn"
)

func init() {
	list := map[string]func() dgn.Optimizer{
		"SGD": func() dgn.Optimizer { return GradientDescent() },
	}

	for s, f := range list {
		err := dgn.RegisterOptimizer(s, f)
		if err != nil {
			panic(err.Error())
		}
	}

	dgn.SetDefaultOptimizer(func() dgn.Optimizer { return GradientDescent() })
}
