// Package track records training results to a SQLite file, so runs can be
// compared after the fact with nothing but the sqlite3 shell. The driver is
// pure Go; no cgo is involved.
package track

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/ibex-training/dgn"
)

const schema = `CREATE TABLE IF NOT EXISTS results (
	run       TEXT NOT NULL,
	iteration INTEGER NOT NULL,
	loss      REAL NOT NULL,
	correct   REAL NOT NULL,
	is_test   INTEGER NOT NULL,
	at        TEXT NOT NULL
)`

// Recorder appends Results for one named run to a SQLite file.
type Recorder struct {
	db  *sql.DB
	run string
}

// Open opens (creating if needed) the SQLite file at path and prepares it for
// recording under the given run name.
func Open(path, run string) (*Recorder, error) {
	if run == "" {
		return nil, errors.Errorf(`run name cannot be ""`)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open results database %q\n", path)
	}

	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "Failed to create results table in %q\n", path)
	}

	return &Recorder{db: db, run: run}, nil
}

// Record appends one Result row. It satisfies the shape of TrainArgs.Update
// when the error can be ignored; use Updater for that.
func (r *Recorder) Record(res dgn.Result) error {
	isTest := 0
	if res.IsTest {
		isTest = 1
	}

	_, err := r.db.Exec(
		`INSERT INTO results (run, iteration, loss, correct, is_test, at) VALUES (?, ?, ?, ?, ?, ?)`,
		r.run, res.Iteration, res.Loss, res.Correct, isTest, time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return errors.Wrapf(err, "Failed to record result for run %q\n", r.run)
	}

	return nil
}

// Updater adapts the Recorder to TrainArgs.Update, reporting insert failures
// through onErr (which may be nil to drop them).
func (r *Recorder) Updater(onErr func(error)) func(dgn.Result) {
	return func(res dgn.Result) {
		if err := r.Record(res); err != nil && onErr != nil {
			onErr(err)
		}
	}
}

// Close closes the underlying database.
func (r *Recorder) Close() error {
	return r.db.Close()
}
