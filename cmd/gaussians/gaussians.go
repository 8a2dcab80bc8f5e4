// Trains a Bernoulli-regime network to separate a two-class Gaussian
// mixture, recording progress to a SQLite results file.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/ibex-training/dgn"
	"github.com/ibex-training/dgn/datasets"
	"github.com/ibex-training/dgn/hyperparams"
	"github.com/ibex-training/dgn/initializers"
	"github.com/ibex-training/dgn/lossfuncs"
	_ "github.com/ibex-training/dgn/optimizers"
	"github.com/ibex-training/dgn/track"
)

var (
	examples = flag.Int("examples", 2000, "number of examples to generate")
	features = flag.Int("features", 16, "feature dimensions")
	sep      = flag.Float64("sep", 1.0, "separation between the class centers")
	branches = flag.Int("branches", 10, "branches per neuron")
	epochs   = flag.Int("epochs", 3, "passes over the training set")
	rate     = flag.Float64("rate", 0.01, "learning rate")
	epsilon  = flag.Float64("epsilon", 0.01, "activation clipping bound")
	seed     = flag.Int64("seed", 42, "rng seed for data and hyperplanes")
	results  = flag.String("results", "results.db", "SQLite file to record to")
	run      = flag.String("run", "gaussians", "run name in the results file")
)

func main() {
	flag.Parse()

	src := rand.New(rand.NewSource(*seed))

	set := datasets.Gaussians(*examples, *features, *sep, src)
	set.Shuffle(src)
	trainSet, testSet, err := set.Split(0.8)
	if err != nil {
		fail(err)
	}

	// standardize features with the training partition's statistics
	means, stds := trainSet.Standardize()
	if err = testSet.Apply(means, stds); err != nil {
		fail(err)
	}

	trainData, err := dgn.Data(trainSet.Inputs, trainSet.Targets)
	if err != nil {
		fail(err)
	}
	testData, err := dgn.Data(testSet.Inputs, testSet.Targets)
	if err != nil {
		fail(err)
	}

	net, err := dgn.New(dgn.Config{
		Sizes:    []int{32, 16, 1},
		Branches: *branches,
		Features: *features,
	}, lossfuncs.Bernoulli().Epsilon(*epsilon),
		initializers.Hyperplanes(initializers.Normal().Seed(*seed)))
	if err != nil {
		fail(err)
	}
	net.SetLearningRate(hyperparams.Constant(*rate))

	rec, err := track.Open(*results, *run)
	if err != nil {
		fail(err)
	}
	defer rec.Close()

	record := rec.Updater(func(err error) {
		fmt.Fprintln(os.Stderr, err.Error())
	})

	args := dgn.TrainArgs{
		TrainData:    trainData,
		TestData:     testData,
		ShouldTest:   dgn.Every(trainSet.Len()),
		SendStatus:   dgn.Every(trainSet.Len() / 4),
		RunCondition: dgn.Epochs(*epochs, trainSet.Len()),
		IsCorrect:    dgn.CorrectRound,
		Update: func(r dgn.Result) {
			record(r)
			kind := "status"
			if r.IsTest {
				kind = "test"
			}
			fmt.Printf("%d, %s, %v, %v\n", r.Iteration, kind, r.Loss, r.Correct)
		},
	}

	fmt.Println("Iteration, Kind, Loss, Fraction Correct")
	if err = net.Train(args); err != nil {
		fail(err)
	}

	loss, correct, err := net.Test(testData, dgn.CorrectRound)
	if err != nil {
		fail(err)
	}
	record(dgn.Result{Iteration: net.Iter(), Loss: loss, Correct: correct, IsTest: true})
	fmt.Printf("Final: loss %v, fraction correct %v\n", loss, correct)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
