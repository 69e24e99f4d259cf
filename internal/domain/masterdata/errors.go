package masterdata

import "errors"

var (
	// ErrNotFound indicates the master data record doesn't exist.
	ErrNotFound = errors.New("master data record not found")
	// ErrInvalidInput indicates invalid input for master data operations.
	ErrInvalidInput = errors.New("invalid master data input")
)
