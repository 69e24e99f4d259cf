package assembly

import "errors"

var (
	// ErrJointNotFound indicates the joint doesn't exist.
	ErrJointNotFound = errors.New("assembly joint not found")
	// ErrInvalidInput indicates invalid input for joint operations.
	ErrInvalidInput = errors.New("invalid assembly joint input")
	// ErrSameComponent indicates both sides of the joint reference the same
	// SAGE code.
	ErrSameComponent = errors.New("joint components must be distinct")
	// ErrComponentNotFound indicates a SAGE code that doesn't resolve to a
	// cladded spool.
	ErrComponentNotFound = errors.New("component SAGE code not found")
)
