package value

import "errors"

var (
	// ErrEmptyDocument is returned when the input contains no value at all.
	ErrEmptyDocument = errors.New("empty document")

	// ErrTrailingData is returned when a complete value is followed by more
	// non-whitespace input.
	ErrTrailingData = errors.New("unexpected data after top-level value")

	// ErrInvalidNumber is returned when a number literal is not valid JSON.
	ErrInvalidNumber = errors.New("invalid number literal")

	// ErrUnsupportedValue is returned for input that has no JSON
	// representation (NaN, infinities, complex YAML keys, unknown nodes).
	ErrUnsupportedValue = errors.New("value is not JSON-compatible")
)
