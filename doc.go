// Package dgn implements Dendritic Gated Networks: layered linear models in
// which each neuron carries several candidate weight vectors ("branches") and
// picks between them per example, based on the sign of fixed random hyperplane
// projections of the input. Weights are trained online, one example at a time,
// with a local delta rule; there is no backpropagation.
//
// Creating Networks
//
// A Network is built from a Config and a loss regime:
//
//		net, err := dgn.New(dgn.Config{
//			Sizes:    []int{64, 32, 1},
//			Branches: 10,
//			Features: 2,
//		}, lossfuncs.Squared(), nil)
//
// Sizes lists the neurons per layer; the last layer must have exactly one
// neuron, whose activation is the network's scalar prediction. The final nil
// selects the default hyperplane Initializer, which is registered by importing
// the subpackage "initializers". Weights start at zero; the gating hyperplanes
// are drawn once at construction and never change afterwards.
//
// The loss regime decides both the forward arithmetic and the update rule.
// Squared() performs plain linear combination and trains against
// ½·(target−prediction)². Bernoulli() works in log-odds space with epsilon
// clipping and trains against the negative Bernoulli log-likelihood. Both can
// be found in the subpackage "lossfuncs".
//
// Stepping
//
// The learner's only operation is Step:
//
//		prediction, loss, err := net.Step(inputs, target, update)
//
// With update true, the weights of gate-active branches are adjusted in place
// before Step returns; inactive branches are never touched. The learning rate
// comes from a HyperParameter schedule (subpackage "hyperparams"):
//
//		net.SetLearningRate(hyperparams.Constant(1e-2))
//
// Training and Testing
//
// Training loops are driven through the type TrainArgs, a proxy for the
// optional arguments found in other languages:
//
//		func (net *Network) Train(args TrainArgs) error
//
// Testing runs the same Step with update false, in parallel over the test set:
//
//		func (net *Network) Test(data DataSupplier, isCorrect func(float64, float64) bool) (float64, float64, error)
//
// Both consume data through the DataSupplier interface; Data() converts plain
// slices into one.
//
// Saving and Loading
//
// Save writes a single JSON file holding the configuration, weights,
// hyperplanes and learning-rate schedule:
//
//		func (net *Network) Save(path string) error
//
// Load restores it. The loss regime is looked up by name in the registry that
// subpackage "lossfuncs" fills on import, or can be passed explicitly to keep
// non-default options such as a custom epsilon:
//
//		func Load(path string, lf LossFunction) (*Network, error)
package dgn
