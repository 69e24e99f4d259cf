package mcp

import (
	"errors"
	"fmt"

	"github.com/aasia/cladtrack/internal/domain/assembly"
	"github.com/aasia/cladtrack/internal/domain/masterdata"
	"github.com/aasia/cladtrack/internal/domain/mto"
	"github.com/aasia/cladtrack/internal/domain/nmr"
	"github.com/aasia/cladtrack/internal/domain/order"
	"github.com/aasia/cladtrack/internal/domain/project"
	"github.com/aasia/cladtrack/internal/domain/quality"
	"github.com/aasia/cladtrack/internal/domain/spool"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Check the project ID"}
	case errors.Is(err, order.ErrPurchaseOrderNotFound):
		return &APIError{Code: "PO_NOT_FOUND", Message: "purchase order not found", RecoveryHint: "Check the PO ID"}
	case errors.Is(err, order.ErrLineItemNotFound):
		return &APIError{Code: "LINE_ITEM_NOT_FOUND", Message: "line item not found", RecoveryHint: "Check the line item ID"}
	case errors.Is(err, order.ErrEmptyBatch):
		return &APIError{Code: "EMPTY_BATCH", Message: "line item batch is empty", RecoveryHint: "Supply at least one item"}
	case errors.Is(err, spool.ErrSpoolNotFound):
		return &APIError{Code: "SPOOL_NOT_FOUND", Message: "spool not found", RecoveryHint: "Check the spool ID"}
	case errors.Is(err, assembly.ErrJointNotFound):
		return &APIError{Code: "JOINT_NOT_FOUND", Message: "assembly joint not found", RecoveryHint: "Check the joint ID"}
	case errors.Is(err, assembly.ErrSameComponent):
		return &APIError{Code: "SAME_COMPONENT", Message: "joint components must be distinct", RecoveryHint: "Pick two different SAGE codes"}
	case errors.Is(err, assembly.ErrComponentNotFound):
		return &APIError{Code: "COMPONENT_NOT_FOUND", Message: "component SAGE code not found", RecoveryHint: "Complete cladding to issue a SAGE code first"}
	case errors.Is(err, nmr.ErrNMRNotFound):
		return &APIError{Code: "NMR_NOT_FOUND", Message: "NMR document not found", RecoveryHint: "Check the NMR ID"}
	case errors.Is(err, nmr.ErrDuplicateDrawingNumber):
		return &APIError{Code: "DUPLICATE_DRAWING_NUMBER", Message: "drawing number already in use", RecoveryHint: "Drawing numbers are unique ignoring case and whitespace"}
	case errors.Is(err, nmr.ErrNoLineItems):
		return &APIError{Code: "NO_LINE_ITEMS", Message: "no line items selected", RecoveryHint: "Link at least one line item"}
	case errors.Is(err, nmr.ErrMissingProduct):
		return &APIError{Code: "MISSING_PRODUCT", Message: "product selection required for every line item", RecoveryHint: "Set product_id on each line item"}
	case errors.Is(err, nmr.ErrLineItemAlreadyLinked):
		return &APIError{Code: "LINE_ITEM_LINKED", Message: "line item already linked to another NMR document", RecoveryHint: "Unlink it from the other document first"}
	case errors.Is(err, nmr.ErrDocumentLocked):
		return &APIError{Code: "NMR_LOCKED", Message: "NMR document is locked", RecoveryHint: "Approved and code 4/D documents cannot be edited"}
	case errors.Is(err, nmr.ErrInvalidResponseCode):
		return &APIError{Code: "INVALID_RESPONSE_CODE", Message: "invalid client response code", RecoveryHint: "Valid codes are 1, 2, 3, 4 and D"}
	case errors.Is(err, nmr.ErrNotPendingRev0):
		return &APIError{Code: "NOT_PENDING_REV0", Message: "document is not awaiting Rev 0 submission", RecoveryHint: "Only PENDING-REV0 documents accept a Rev 0 submission"}
	case errors.Is(err, nmr.ErrRevisionExhausted):
		return &APIError{Code: "REVISION_EXHAUSTED", Message: "revision sequence exhausted", RecoveryHint: "Revision Z cannot be bumped further"}
	case errors.Is(err, nmr.ErrMissingRevisionEntry):
		return &APIError{Code: "NOT_SUBMITTED", Message: "no submission history for current revision", RecoveryHint: "Submit the document before recording a response"}
	case errors.Is(err, quality.ErrOperationNotFound):
		return &APIError{Code: "OPERATION_NOT_FOUND", Message: "JIS operation not found", RecoveryHint: "Check the operation ID"}
	case errors.Is(err, quality.ErrInspectorRequired):
		return &APIError{Code: "INSPECTOR_REQUIRED", Message: "inspector ID required to sign off", RecoveryHint: "Pass inspector_id"}
	case errors.Is(err, quality.ErrSpoolNotCladded):
		return &APIError{Code: "SPOOL_NOT_CLADDED", Message: "spool has not completed cladding", RecoveryHint: "Complete cladding before building the routing"}
	case errors.Is(err, quality.ErrInvalidAction):
		return &APIError{Code: "INVALID_ACTION", Message: "invalid sign-off action", RecoveryHint: "Valid actions are START, FINISH and SKIP"}
	case errors.Is(err, mto.ErrMTONotFound):
		return &APIError{Code: "MTO_NOT_FOUND", Message: "MTO not found", RecoveryHint: "Check the MTO ID"}
	case errors.Is(err, masterdata.ErrNotFound):
		return &APIError{Code: "MASTER_DATA_NOT_FOUND", Message: "master data record not found", RecoveryHint: "Check the record ID"}
	default:
		return nil
	}
}
