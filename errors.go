package dgn

// Error is a wrapper for specific types of errors for which there is no
// additional information necessary. These errors are defined as global
// variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	ErrRegisterTaken     = Error{"Name is already registered"}
	ErrRegisterNilReturn = Error{"Function return is nil"}
	ErrNoLearningRate    = Error{"Network has no learning-rate schedule; call SetLearningRate"}
)

// NilArgError documents errors resulting from certain arguments provided to a
// function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}
