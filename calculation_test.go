package dgn_test

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/ibex-training/dgn"
	"github.com/ibex-training/dgn/hyperparams"
	"github.com/ibex-training/dgn/initializers"
	"github.com/ibex-training/dgn/lossfuncs"
	_ "github.com/ibex-training/dgn/optimizers"
)

// rowsInit sets every hyperplane row of every layer to a fixed vector,
// cycling when a layer has more rows than were given. It pins down gating for
// the tests below.
type rowsInit [][]float64

func (c rowsInit) Set(h *mat.Dense) {
	rows, _ := h.Dims()
	for i := 0; i < rows; i++ {
		h.SetRow(i, c[i%len(c)])
	}
}

// alwaysOn gates a branch on for every input: the projection is the bias
// magnitude itself, which is strictly positive.
func alwaysOn(features int) []float64 {
	row := make([]float64, features+1)
	row[0] = 1
	return row
}

func alwaysOff(features int) []float64 {
	row := make([]float64, features+1)
	row[0] = -1
	return row
}

func TestStepSquaredSingleLayer(t *testing.T) {
	net, err := dgn.New(dgn.Config{
		Sizes:    []int{1},
		Branches: 1,
		Features: 2,
	}, lossfuncs.Squared(), rowsInit{alwaysOn(2)})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	net.SetLearningRate(hyperparams.Constant(0.1))

	pred, loss, err := net.Step([]float64{1, 1}, 2.0, true)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	if pred != 0.0 {
		t.Errorf("prediction should be 0 with zero-initialized weights (%v)", pred)
	}
	if loss != 2.0 {
		t.Errorf("loss should be ½·(2-0)² = 2 (%v)", loss)
	}

	want := []float64{0.2, 0.2, 0.2}
	got := net.Weights(0, 0, 0)
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("weight %d after update: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStepSquaredLossIdentity(t *testing.T) {
	src := rand.New(rand.NewSource(3))

	net, err := dgn.New(dgn.Config{
		Sizes:    []int{5, 3, 1},
		Branches: 4,
		Features: 6,
	}, lossfuncs.Squared(), initializers.Hyperplanes(initializers.Normal().Seed(11)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	net.SetLearningRate(hyperparams.Constant(1e-3))

	for trial := 0; trial < 50; trial++ {
		inputs := make([]float64, 6)
		for i := range inputs {
			inputs[i] = src.NormFloat64() * 3
		}
		target := src.NormFloat64()

		pred, loss, err := net.Step(inputs, target, true)
		if err != nil {
			t.Fatalf("Step failed: %v", err)
		}

		want := 0.5 * (target - pred) * (target - pred)
		if math.Abs(loss-want) > 1e-12 {
			t.Errorf("trial %d: loss %v does not equal ½·(target−prediction)² = %v", trial, loss, want)
		}
	}
}

func TestStepBernoulliOutputClipped(t *testing.T) {
	const eps = 0.01
	src := rand.New(rand.NewSource(5))

	net, err := dgn.New(dgn.Config{
		Sizes:    []int{4, 1},
		Branches: 3,
		Features: 3,
	}, lossfuncs.Bernoulli().Epsilon(eps), initializers.Hyperplanes(initializers.Normal().Seed(13)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	net.SetLearningRate(hyperparams.Constant(0.5))

	for trial := 0; trial < 100; trial++ {
		inputs := make([]float64, 3)
		for i := range inputs {
			// deliberately huge magnitudes to force saturation
			inputs[i] = src.NormFloat64() * 1e6
		}

		pred, _, err := net.Step(inputs, float64(trial%2), true)
		if err != nil {
			t.Fatalf("Step failed: %v", err)
		}

		if pred < eps || pred > 1-eps {
			t.Errorf("trial %d: prediction %v outside [%v, %v]", trial, pred, eps, 1-eps)
		}
	}
}

func TestStepInferenceDeterministic(t *testing.T) {
	net, err := dgn.New(dgn.Config{
		Sizes:    []int{7, 1},
		Branches: 5,
		Features: 4,
	}, lossfuncs.Bernoulli(), initializers.Hyperplanes(initializers.Normal().Seed(17)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	inputs := []float64{0.3, -1.2, 0.8, 2.5}

	p0, l0, err := net.Step(inputs, 1, false)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		p, l, err := net.Step(inputs, 1, false)
		if err != nil {
			t.Fatalf("Step failed: %v", err)
		}
		if p != p0 || l != l0 {
			t.Fatalf("repeat %d: inference not bit-identical (%v, %v) != (%v, %v)", i, p, l, p0, l0)
		}
	}
}

func TestStepUpdatesOnlyActiveBranches(t *testing.T) {
	// branch 0 is always active, branch 1 never is
	net, err := dgn.New(dgn.Config{
		Sizes:    []int{1},
		Branches: 2,
		Features: 2,
	}, lossfuncs.Squared(), rowsInit{alwaysOn(2), alwaysOff(2)})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	net.SetLearningRate(hyperparams.Constant(0.1))

	before := net.Weights(0, 0, 1)

	if _, _, err = net.Step([]float64{1, -1}, 1.5, true); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	active := net.Weights(0, 0, 0)
	inactive := net.Weights(0, 0, 1)

	var moved bool
	for i := range active {
		if active[i] != 0 {
			moved = true
		}
	}
	if !moved {
		t.Errorf("active branch weights did not change")
	}

	for i := range inactive {
		if inactive[i] != before[i] {
			t.Errorf("inactive branch weight %d changed (%v != %v)", i, inactive[i], before[i])
		}
	}
}

func TestStepBernoulliSkipsConfidentUpdate(t *testing.T) {
	// zero weights give a raw prediction of exactly 0.5 everywhere, so a
	// target of 0.5 sits inside the epsilon dead zone and must not update
	net, err := dgn.New(dgn.Config{
		Sizes:    []int{1},
		Branches: 1,
		Features: 2,
	}, lossfuncs.Bernoulli(), rowsInit{alwaysOn(2)})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	net.SetLearningRate(hyperparams.Constant(0.1))

	if _, _, err = net.Step([]float64{1, 1}, 0.5, true); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	for i, w := range net.Weights(0, 0, 0) {
		if w != 0 {
			t.Errorf("weight %d changed despite |target − raw| <= epsilon (%v)", i, w)
		}
	}

	if _, _, err = net.Step([]float64{1, 1}, 1.0, true); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	var moved bool
	for _, w := range net.Weights(0, 0, 0) {
		if w != 0 {
			moved = true
		}
	}
	if !moved {
		t.Errorf("weights did not change for a target outside the dead zone")
	}
}

func TestStepRequiresLearningRate(t *testing.T) {
	net, err := dgn.New(dgn.Config{
		Sizes:    []int{1},
		Branches: 1,
		Features: 2,
	}, lossfuncs.Squared(), rowsInit{alwaysOn(2)})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, _, err = net.Step([]float64{1, 1}, 0, true); err == nil {
		t.Errorf("Step with update but no learning rate should fail")
	}

	// inference needs no schedule
	if _, _, err = net.Step([]float64{1, 1}, 0, false); err != nil {
		t.Errorf("Step without update should not need a learning rate: %v", err)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	confs := []dgn.Config{
		{Sizes: []int{}, Branches: 1, Features: 2},
		{Sizes: []int{3, 2}, Branches: 1, Features: 2}, // last layer != 1
		{Sizes: []int{3, 1}, Branches: 0, Features: 2},
		{Sizes: []int{3, 1}, Branches: 1, Features: 0},
		{Sizes: []int{0, 1}, Branches: 1, Features: 2},
	}

	for i, conf := range confs {
		if _, err := dgn.New(conf, lossfuncs.Squared(), initializers.Hyperplanes(initializers.Normal())); err == nil {
			t.Errorf("config %d should have been rejected", i)
		}
	}
}
