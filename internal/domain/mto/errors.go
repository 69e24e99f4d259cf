package mto

import "errors"

var (
	// ErrMTONotFound indicates the MTO doesn't exist.
	ErrMTONotFound = errors.New("MTO not found")
	// ErrInvalidInput indicates invalid input for MTO operations.
	ErrInvalidInput = errors.New("invalid MTO input")
	// ErrProjectNotFound indicates the referenced project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
)
