package store

import "errors"

var (
	// ErrStoreClosed indicates that the store has been closed.
	ErrStoreClosed = errors.New("store is closed")

	// ErrMalformedRecord indicates a record could not be parsed.
	ErrMalformedRecord = errors.New("malformed candidate record")
)
