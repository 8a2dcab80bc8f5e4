package datasets

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// FromCSV reads a numeric CSV file into a Dataset, taking the column at
// targetCol as the target and every other column as a feature. If the first
// record fails to parse as numbers it is treated as a header and skipped.
func FromCSV(path string, targetCol int) (Dataset, error) {
	var d Dataset

	f, err := os.Open(path)
	if err != nil {
		return d, errors.Wrapf(err, "Failed to open %q\n", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	first := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return d, errors.Wrapf(err, "Failed to read %q\n", path)
		}

		if targetCol < 0 || targetCol >= len(record) {
			return d, errors.Errorf("target column %d out of range for %d columns", targetCol, len(record))
		}

		row, perr := parseRecord(record)
		if perr != nil {
			if first {
				first = false
				continue // header
			}
			return d, errors.Wrapf(perr, "Failed to parse record %d of %q\n", d.Len()+1, path)
		}
		first = false

		inputs := make([]float64, 0, len(row)-1)
		inputs = append(inputs, row[:targetCol]...)
		inputs = append(inputs, row[targetCol+1:]...)

		d.Inputs = append(d.Inputs, inputs)
		d.Targets = append(d.Targets, row[targetCol])
	}

	if d.Len() == 0 {
		return d, errors.Errorf("%q holds no data rows", path)
	}

	return d, nil
}

func parseRecord(record []string) ([]float64, error) {
	row := make([]float64, len(record))
	for i, field := range record {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}
