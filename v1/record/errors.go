package record

import "errors"

var (
	// ErrUnrecognizedInput is returned when no format was given and none
	// could be sniffed from the input.
	ErrUnrecognizedInput = errors.New("record: unrecognized input")

	// ErrErrorState is returned when an error-state record is asked to
	// deserialize. Error records never become valid.
	ErrErrorState = errors.New("record: record is in error state")

	// ErrNoSourceData is the cause of error records loaded from nil input.
	ErrNoSourceData = errors.New("record: no source data")
)

// IsUnrecognizedInputError reports whether err stems from input whose format
// could not be determined.
func IsUnrecognizedInputError(err error) bool {
	return errors.Is(err, ErrUnrecognizedInput)
}

// IsErrorStateError reports whether err was returned by an error-state record.
func IsErrorStateError(err error) bool {
	return errors.Is(err, ErrErrorState)
}
