package dgn

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/ibex-training/dgn/utils"
)

// Datum is a simple wrapper used to send training samples to the Network.
type Datum struct {
	// Inputs is one example's feature vector. It must have the same length as
	// the Network's Features.
	Inputs []float64

	// Target is the expected scalar output: 0/1 for the Bernoulli regime, a
	// standardized continuous value for the squared regime.
	Target float64
}

// Fits indicates whether or not a given Datum's dimensions match those of the
// Network, allowing it to be used for training or testing.
func (d Datum) Fits(net *Network) bool {
	return len(d.Inputs) == net.conf.Features
}

// DataSupplier is the primary method of providing datasets to the Network,
// either for training or testing.
type DataSupplier interface {
	// Get returns the next piece of data, given the current iteration.
	Get(int) (Datum, error)

	// DoneTesting indicates whether or not the testing process has finished,
	// given the number of samples consumed so far. It is only called if the
	// DataSupplier is actually used for providing testing data.
	DoneTesting(int) bool
}

// Result is a wrapper for sending back the progress of training or testing.
type Result struct {
	// The iteration the result is being sent at.
	Iteration int

	// Mean loss, from the Network's LossFunction.
	Loss float64

	// The fraction correct, as per IsCorrect() from TrainArgs. 0 → 1.
	Correct float64

	// The result is either from a test or a status update.
	IsTest bool
}

// TrainArgs is a proxy for the type of optional arguments that are available
// in other languages.
type TrainArgs struct {
	TrainData DataSupplier

	// TestData is the source of cross-validation data while training. This
	// can be nil if ShouldTest is also nil.
	TestData DataSupplier

	// ShouldTest indicates whether or not testing should be done before the
	// current iteration. Can be left nil to represent an unconditional false.
	ShouldTest func(int) bool

	// SendStatus indicates whether or not to send back mean loss and accuracy
	// of the training examples seen since the last time 'true' was returned.
	// Can be left nil to represent an unconditional false.
	//
	// 'true' is ignored on iteration 0.
	SendStatus func(int) bool

	// RunCondition will be called at each successive iteration to determine
	// if training should continue. Training will stop if 'false' is returned.
	RunCondition func(int) bool

	// IsCorrect returns whether or not a prediction is correct, given the
	// target. CorrectRound is the usual choice for classification.
	IsCorrect func(prediction, target float64) bool

	// Update is how testing and status updates are returned. If both
	// ShouldTest and SendStatus are nil, Update can also be left nil.
	Update func(Result)
}

// Train feeds the Network one example at a time with updates enabled, per the
// provided arguments. Examples are processed strictly in the order the
// DataSupplier presents them; with online learning that order affects the
// final weights.
func (net *Network) Train(args TrainArgs) error {
	// handle error cases and set defaults
	{
		if args.Update == nil {
			args.Update = func(r Result) {}
		}

		if args.TrainData == nil {
			return errors.Errorf("TrainData is nil")
		}

		if args.TestData == nil {
			if args.ShouldTest != nil {
				return errors.Errorf("TestData is nil but ShouldTest is not")
			}
			args.ShouldTest = func(i int) bool { return false }
		} else if args.ShouldTest == nil {
			args.ShouldTest = func(i int) bool { return false }
		}

		if args.SendStatus == nil {
			args.SendStatus = func(i int) bool { return false }
		}

		if args.RunCondition == nil {
			return errors.Errorf("RunCondition is nil")
		}

		if args.IsCorrect == nil {
			args.IsCorrect = func(p, t float64) bool { return false }
		}
	}

	net.iter = 0

	var statusLoss, statusCorrect float64
	var statusSize int

	for {
		if args.SendStatus(net.iter) && net.iter != 0 {
			args.Update(Result{
				Iteration: net.iter,
				Loss:      statusLoss / float64(statusSize),
				Correct:   statusCorrect / float64(statusSize),
				IsTest:    false,
			})

			statusLoss, statusCorrect = 0, 0
			statusSize = 0
		}

		if args.ShouldTest(net.iter) {
			loss, correct, err := net.Test(args.TestData, args.IsCorrect)
			if err != nil {
				return errors.Wrapf(err, "Testing on iteration %d failed\n", net.iter)
			}

			args.Update(Result{
				Iteration: net.iter,
				Loss:      loss,
				Correct:   correct,
				IsTest:    true,
			})
		}

		if !args.RunCondition(net.iter) {
			break
		}

		d, err := args.TrainData.Get(net.iter)
		if err != nil {
			return errors.Wrapf(err, "Failed to get training data on iteration %d\n", net.iter)
		} else if !d.Fits(net) {
			return errors.Errorf("Training data for iteration %d does not fit Network", net.iter)
		}

		pred, loss, err := net.Step(d.Inputs, d.Target, true)
		if err != nil {
			return errors.Wrapf(err, "Failed to step Network on iteration %d\n", net.iter)
		}

		statusLoss += loss
		if args.IsCorrect(pred, d.Target) {
			statusCorrect += 1.0
		}
		statusSize++
	}

	return nil
}

// evalOpsPerThread is the number of test examples each goroutine claims at a
// time in Test.
const evalOpsPerThread = 16

// Test evaluates the Network over the supplied data with updates disabled,
// returning mean loss and fraction correct. Evaluation is read-only on the
// Network, so examples are fanned out over utils.MultiThread; aggregation is
// by index, keeping results identical across repeated runs.
func (net *Network) Test(data DataSupplier, isCorrect func(float64, float64) bool) (float64, float64, error) {
	if data == nil {
		return 0, 0, NilArgError{"DataSupplier"}
	}
	if isCorrect == nil {
		isCorrect = func(p, t float64) bool { return false }
	}

	var set []Datum
	for i := 0; !data.DoneTesting(i); i++ {
		d, err := data.Get(i)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "Failed to get test sample %d\n", i)
		} else if !d.Fits(net) {
			return 0, 0, errors.Errorf("Test sample %d does not fit Network dimensions", i)
		}

		set = append(set, d)
	}

	if len(set) == 0 {
		return 0, 0, nil
	}

	losses := make([]float64, len(set))
	correct := make([]bool, len(set))

	var errMux sync.Mutex
	var stepErr error

	utils.MultiThread(0, len(set), func(i int) {
		pred, loss, err := net.Step(set[i].Inputs, set[i].Target, false)
		if err != nil {
			errMux.Lock()
			if stepErr == nil {
				stepErr = errors.Wrapf(err, "Failed to evaluate test sample %d\n", i)
			}
			errMux.Unlock()
			return
		}

		losses[i] = loss
		correct[i] = isCorrect(pred, set[i].Target)
	}, evalOpsPerThread, 1)

	if stepErr != nil {
		return 0, 0, stepErr
	}

	var avgLoss, avgCorrect float64
	for i := range set {
		avgLoss += losses[i]
		if correct[i] {
			avgCorrect += 1
		}
	}

	return avgLoss / float64(len(set)), avgCorrect / float64(len(set)), nil
}

type internalSupplier struct {
	get         func(int) (Datum, error)
	doneTesting func(int) bool
}

func (s internalSupplier) Get(iter int) (Datum, error) {
	return s.get(iter)
}

func (s internalSupplier) DoneTesting(iter int) bool {
	return s.doneTesting(iter)
}

// Data converts parallel slices of feature vectors and targets into a
// DataSupplier, which can be used for training or testing. Training wraps
// around the end of the set; testing consumes it exactly once.
//
// N.B.: Data does not check that the data fit a certain network; that will be
// done during training/testing.
func Data(inputs [][]float64, targets []float64) (DataSupplier, error) {
	if len(inputs) == 0 {
		return nil, errors.Errorf("dataset has no data (len == 0)")
	} else if len(inputs) != len(targets) {
		return nil, errors.Errorf("len(inputs) != len(targets) (%d != %d)", len(inputs), len(targets))
	}

	return internalSupplier{
		get: func(iter int) (Datum, error) {
			i := iter % len(inputs)
			return Datum{inputs[i], targets[i]}, nil
		},
		doneTesting: EndEvery(len(inputs)),
	}, nil
}
