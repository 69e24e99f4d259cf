package order

import "errors"

var (
	// ErrPurchaseOrderNotFound indicates the purchase order doesn't exist.
	ErrPurchaseOrderNotFound = errors.New("purchase order not found")
	// ErrLineItemNotFound indicates the line item doesn't exist.
	ErrLineItemNotFound = errors.New("line item not found")
	// ErrProjectNotFound indicates the referenced project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid input for order operations.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrEmptyBatch indicates a line-item batch with no rows.
	ErrEmptyBatch = errors.New("line item batch is empty")
)
