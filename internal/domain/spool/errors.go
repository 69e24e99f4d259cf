package spool

import "errors"

var (
	// ErrSpoolNotFound indicates the spool doesn't exist.
	ErrSpoolNotFound = errors.New("spool not found")
	// ErrInvalidInput indicates invalid input for spool operations.
	ErrInvalidInput = errors.New("invalid spool input")
)
