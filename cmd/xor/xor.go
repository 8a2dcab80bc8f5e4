package main

import (
	"fmt"

	"github.com/ibex-training/dgn"
	"github.com/ibex-training/dgn/datasets"
	"github.com/ibex-training/dgn/hyperparams"
	"github.com/ibex-training/dgn/initializers"
	"github.com/ibex-training/dgn/lossfuncs"
	_ "github.com/ibex-training/dgn/optimizers"
)

const (
	statusFrequency int = 100
	testFrequency   int = 200

	// main hyperparameters
	learningRate float64 = 0.05
	epochs       int     = 500
	branches     int     = 8

	seed int64 = 7

	// where to save/load the network
	path string = "xor.json"
)

func train(net *dgn.Network, data dgn.DataSupplier, setSize int) {
	args := dgn.TrainArgs{
		TrainData:    data,
		TestData:     data,
		ShouldTest:   dgn.Every(testFrequency),
		SendStatus:   dgn.Every(statusFrequency),
		RunCondition: dgn.Epochs(epochs, setSize),
		IsCorrect:    dgn.CorrectRound,
		Update: func(r dgn.Result) {
			kind := "status"
			if r.IsTest {
				kind = "test"
			}
			fmt.Printf("%d, %s, %v, %v\n", r.Iteration, kind, r.Loss, r.Correct)
		},
	}

	fmt.Println("Starting training...")
	fmt.Println("Iteration, Kind, Loss, Fraction Correct")
	if err := net.Train(args); err != nil {
		panic(err.Error())
	}
	fmt.Println("Done training!")
}

func test(net *dgn.Network, data dgn.DataSupplier) {
	fmt.Println("Testing...")
	loss, correct, err := net.Test(data, dgn.CorrectRound)
	if err != nil {
		panic(err.Error())
	}
	fmt.Printf("Final: loss %v, fraction correct %v\n", loss, correct)
}

func save(net *dgn.Network) {
	fmt.Println("Saving...")
	if err := net.Save(path); err != nil {
		panic(err.Error())
	}
	fmt.Println("Done!")
}

func load() *dgn.Network {
	fmt.Println("Loading...")
	net, err := dgn.Load(path, nil)
	if err != nil {
		panic(err.Error())
	}
	fmt.Println("Done!")

	return net
}

func main() {
	set := datasets.XOR()

	data, err := dgn.Data(set.Inputs, set.Targets)
	if err != nil {
		panic(err.Error())
	}

	fmt.Println("Setting up network...")
	net, err := dgn.New(dgn.Config{
		Sizes:    []int{16, 8, 1},
		Branches: branches,
		Features: set.Features(),
	}, lossfuncs.Squared(), initializers.Hyperplanes(initializers.Normal().Seed(seed)))
	if err != nil {
		panic(err.Error())
	}
	net.SetLearningRate(hyperparams.Constant(learningRate))
	fmt.Println("Done!")

	train(net, data, set.Len())
	test(net, data)
	save(net)
	net = load()
	test(net, data)
}
