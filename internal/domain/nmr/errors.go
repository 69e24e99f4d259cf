package nmr

import "errors"

var (
	// ErrNMRNotFound indicates the document doesn't exist.
	ErrNMRNotFound = errors.New("NMR document not found")
	// ErrInvalidInput indicates invalid input for NMR operations.
	ErrInvalidInput = errors.New("invalid NMR input")
	// ErrDuplicateDrawingNumber indicates another document already uses the
	// drawing number (case-insensitive, whitespace-insensitive).
	ErrDuplicateDrawingNumber = errors.New("drawing number already in use")
	// ErrNoLineItems indicates the document has no line items selected.
	ErrNoLineItems = errors.New("no line items selected")
	// ErrMissingProduct indicates a linked line item without a product.
	ErrMissingProduct = errors.New("product selection required for every line item")
	// ErrLineItemAlreadyLinked indicates a line item already belongs to
	// another NMR document.
	ErrLineItemAlreadyLinked = errors.New("line item already linked to another NMR document")
	// ErrDocumentLocked indicates an edit attempt on an approved or
	// code 4/D document.
	ErrDocumentLocked = errors.New("NMR document is locked")
	// ErrInvalidResponseCode indicates a client response code outside 1/2/3/4/D.
	ErrInvalidResponseCode = errors.New("invalid client response code")
	// ErrNotPendingRev0 indicates a Rev 0 submission on a document that is
	// not awaiting one.
	ErrNotPendingRev0 = errors.New("document is not awaiting Rev 0 submission")
	// ErrRevisionExhausted indicates a revision bump past "Z".
	ErrRevisionExhausted = errors.New("revision sequence exhausted")
	// ErrMissingRevisionEntry indicates no history row exists for the current
	// revision when recording a client response. This is an invariant
	// violation: a response can only follow a submission.
	ErrMissingRevisionEntry = errors.New("no submission history for current revision")
)
