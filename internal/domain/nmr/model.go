package nmr

import (
	"strings"
	"time"
)

// Status is the document lifecycle state. The strings are persisted and
// exported verbatim in snapshots, so they never change spelling.
type Status string

const (
	StatusDraft       Status = "DRAFT"
	StatusSubmitted   Status = "SUBMITTED"
	StatusApproved    Status = "APPROVED"
	StatusPendingRev0 Status = "PENDING-REV0"
	StatusCode2       Status = "CODE-2"
	StatusCode3       Status = "CODE-3"
	StatusCode4       Status = "CODE-4"
	StatusCodeD       Status = "CODE-D"
)

// Client response codes on a submitted drawing.
const (
	CodeApproved     = "1" // approved; terminal only at revision "0"
	CodeReviseMinor  = "2" // approved with comments, revise and resubmit
	CodeReviseMajor  = "3" // rejected, revise and resubmit
	CodeWorkMayStart = "4" // work authorized as-is
	CodeInformation  = "D" // information only
)

// LineItemRef links one PO line item into the document. A line item belongs
// to at most one NMR document across the whole store, and every linked line
// item carries a product selection.
type LineItemRef struct {
	LineItemID string `json:"lineItemId"`
	ProductID  string `json:"productId"`
}

// RevisionEntry is one row of the submission history. Rows are appended once
// per distinct revision and updated in place until that revision closes.
type RevisionEntry struct {
	Rev            string `json:"rev"`
	SubmissionDate string `json:"submissionDate"`
	ReturnDate     string `json:"returnDate"`
	Code           string `json:"code"`
	Comment        string `json:"comment"`
}

// Document is an NMR (drawing approval request) raised against a set of PO
// line items.
type Document struct {
	ID              string          `json:"id"`
	ProjectID       string          `json:"projectId"`
	POID            string          `json:"poId"`
	DrawingNumber   string          `json:"drawingNumber"`
	DrawingRevision string          `json:"drawingRevision"`
	DrawingTitle    string          `json:"drawingTitle"`
	Spec            string          `json:"spec"`
	Remarks         string          `json:"remarks"`
	LineItems       []LineItemRef   `json:"lineItems"`
	Revision        string          `json:"revision"`
	Status          Status          `json:"status"`
	LastCode        string          `json:"lastCode"`
	RevisionHistory []RevisionEntry `json:"revisionHistory"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Locked reports whether the document's line-item selection and drawing
// identity are frozen. Approved and code 4/D documents cannot be edited.
func (d *Document) Locked() bool {
	switch d.Status {
	case StatusApproved, StatusCode4, StatusCodeD:
		return true
	}
	return false
}

// historyIndex returns the position of the history row for rev, or -1.
func (d *Document) historyIndex(rev string) int {
	for i := range d.RevisionHistory {
		if d.RevisionHistory[i].Rev == rev {
			return i
		}
	}
	return -1
}

// NormalizeDrawingNumber produces the comparison key used for global
// drawing-number uniqueness: trimmed and lowercased.
func NormalizeDrawingNumber(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
