package dgn

import (
	"math"
)

// CorrectRound rounds the scalar prediction and compares it with the target.
// It is the usual IsCorrect for 0/1 classification targets.
func CorrectRound(prediction, target float64) bool {
	return math.Round(prediction) == target
}

// TrainUntil returns a function that satisfies TrainArgs.RunCondition,
// stopping after the given number of iterations.
func TrainUntil(maxIterations int) func(int) bool {
	return func(iteration int) bool {
		return iteration < maxIterations
	}
}

// Epochs returns a RunCondition that stops after n passes over a dataset of
// the given size.
func Epochs(n, setSize int) func(int) bool {
	return TrainUntil(n * setSize)
}

// Every returns a function that satisfies TrainArgs.SendStatus or
// TrainArgs.ShouldTest. 'frequency' is in units of iterations.
func Every(frequency int) func(int) bool {
	return func(iteration int) bool {
		return iteration%frequency == 0
	}
}

// EndEvery returns a function that satisfies DataSupplier.DoneTesting,
// reporting true after each multiple of 'frequency' samples.
func EndEvery(frequency int) func(int) bool {
	return func(iteration int) bool {
		return iteration != 0 && iteration%frequency == 0
	}
}
