package quality

import "errors"

var (
	// ErrOperationNotFound indicates the routing operation doesn't exist.
	ErrOperationNotFound = errors.New("JIS operation not found")
	// ErrInvalidInput indicates invalid input for routing operations.
	ErrInvalidInput = errors.New("invalid JIS operation input")
	// ErrInspectorRequired indicates a sign-off attempt without an
	// inspector ID.
	ErrInspectorRequired = errors.New("inspector ID required to sign off")
	// ErrSpoolNotCladded indicates a routing request for a spool that has no
	// SAGE code yet.
	ErrSpoolNotCladded = errors.New("spool has not completed cladding")
	// ErrInvalidAction indicates an unknown sign-off action.
	ErrInvalidAction = errors.New("invalid sign-off action")
)
