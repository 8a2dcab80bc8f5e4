package hyperparams

import (
	"github.com/ibex-training/dgn"
)

func init() {
	list := map[string]func() dgn.HyperParameter{
		Constant(0).TypeString(): func() dgn.HyperParameter { return Constant(0) }, // 0 is just a blank. It'll be loaded.
		Step(0).TypeString():     func() dgn.HyperParameter { return Step(0) },
	}

	for s, f := range list {
		err := dgn.RegisterHyperParameter(s, f)
		if err != nil {
			panic(err.Error())
		}
	}
}
