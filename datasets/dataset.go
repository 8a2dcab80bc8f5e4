// Package datasets provides in-memory tabular datasets for training and
// evaluating networks: splitting, shuffling, standardization, CSV loading and
// a couple of synthetic generators.
//
// The Learner assumes features are pre-centered and scaled; Standardize is
// how data prepared here meets that assumption.
package datasets

import (
	"math/rand"

	"github.com/pkg/errors"

	"gonum.org/v1/gonum/stat"
)

// Dataset is a fixed-width numeric feature matrix with one scalar target per
// row: binary 0/1 for classification, continuous for regression.
type Dataset struct {
	Inputs  [][]float64
	Targets []float64
}

// Len returns the number of examples.
func (d Dataset) Len() int {
	return len(d.Inputs)
}

// Features returns the width of the feature matrix, or 0 for an empty set.
func (d Dataset) Features() int {
	if len(d.Inputs) == 0 {
		return 0
	}
	return len(d.Inputs[0])
}

// Shuffle permutes the examples in place using the provided source.
func (d Dataset) Shuffle(src *rand.Rand) {
	src.Shuffle(d.Len(), func(i, j int) {
		d.Inputs[i], d.Inputs[j] = d.Inputs[j], d.Inputs[i]
		d.Targets[i], d.Targets[j] = d.Targets[j], d.Targets[i]
	})
}

// Split partitions the examples into a training set holding the given
// fraction and a test set holding the rest. The split is by position; shuffle
// first for a random partition. Split returns an error unless frac is in
// (0, 1) and both partitions end up non-empty.
func (d Dataset) Split(frac float64) (train, test Dataset, err error) {
	if frac <= 0 || frac >= 1 {
		return train, test, errors.Errorf("split fraction must be in (0, 1) (%v)", frac)
	}

	n := int(frac * float64(d.Len()))
	if n == 0 || n == d.Len() {
		return train, test, errors.Errorf("split of %d examples at %v leaves a partition empty", d.Len(), frac)
	}

	train = Dataset{d.Inputs[:n], d.Targets[:n]}
	test = Dataset{d.Inputs[n:], d.Targets[n:]}
	return train, test, nil
}

// Standardize centers and scales each feature column to zero mean and unit
// variance, in place, and returns the per-column means and standard
// deviations so the same transform can be applied elsewhere. Constant columns
// are centered but left unscaled.
func (d Dataset) Standardize() (means, stds []float64) {
	w := d.Features()
	means = make([]float64, w)
	stds = make([]float64, w)

	col := make([]float64, d.Len())
	for j := 0; j < w; j++ {
		for i := range d.Inputs {
			col[i] = d.Inputs[i][j]
		}

		mean, std := stat.MeanStdDev(col, nil)
		if std == 0 {
			std = 1
		}
		means[j] = mean
		stds[j] = std

		for i := range d.Inputs {
			d.Inputs[i][j] = (d.Inputs[i][j] - mean) / std
		}
	}

	return means, stds
}

// Apply re-applies a transform captured by Standardize to this Dataset, in
// place. Test partitions should be transformed with the training partition's
// statistics.
func (d Dataset) Apply(means, stds []float64) error {
	if len(means) != d.Features() || len(stds) != d.Features() {
		return errors.Errorf("transform width does not fit dataset (%d != %d)", len(means), d.Features())
	}

	for i := range d.Inputs {
		for j := range d.Inputs[i] {
			d.Inputs[i][j] = (d.Inputs[i][j] - means[j]) / stds[j]
		}
	}

	return nil
}

// StandardizeTargets centers and scales the targets to zero mean and unit
// variance, in place, for regression with the squared regime. It returns the
// mean and standard deviation used.
func (d Dataset) StandardizeTargets() (mean, std float64) {
	mean, std = stat.MeanStdDev(d.Targets, nil)
	if std == 0 {
		std = 1
	}

	for i := range d.Targets {
		d.Targets[i] = (d.Targets[i] - mean) / std
	}

	return mean, std
}
