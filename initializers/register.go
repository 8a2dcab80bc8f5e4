package initializers

import (
	"github.com/ibex-training/dgn"
)

func init() {
	dgn.SetDefaultInitializer(Hyperplanes(Normal()))
}
