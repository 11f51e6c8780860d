package errors

import "errors"

var (
	ErrNotFound = errors.New("cleaner not found")

	ErrInvalidID = errors.New("invalid cleaner ID format")
)
