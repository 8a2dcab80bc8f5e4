package lossfuncs

import (
	"github.com/ibex-training/dgn"
)

func init() {
	list := map[string]func() dgn.LossFunction{
		Squared().TypeString():   func() dgn.LossFunction { return Squared() },
		Bernoulli().TypeString(): func() dgn.LossFunction { return Bernoulli() },
	}

	for s, f := range list {
		err := dgn.RegisterLossFunction(s, f)
		if err != nil {
			panic(err.Error())
		}
	}
}
