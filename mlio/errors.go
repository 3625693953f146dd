package mlio

import "errors"

var (
	// ErrBadRecord is returned for a record with the wrong number of fields
	// or an unparsable weight.
	ErrBadRecord = errors.New("mlio: bad record")

	// ErrBadSeparator is returned for a rune encoding/csv cannot split on.
	ErrBadSeparator = errors.New("mlio: unusable separator")

	// ErrNilResult is returned when a writer is given no result.
	ErrNilResult = errors.New("mlio: nil result")
)
