package format

import "errors"

var (
	// ErrInsufficientData indicates the buffer ended before the fixed fields
	// of a record could be read.
	ErrInsufficientData = errors.New("format: insufficient data")
)
