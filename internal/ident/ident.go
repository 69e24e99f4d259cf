// Package ident produces entity identifiers. Projects, line items and spools
// carry formatted sequential IDs that planners read aloud on the shop floor;
// every other entity gets a prefixed random token.
package ident

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TokenSource yields collision-resistant random tokens. Injected so tests can
// supply deterministic values.
type TokenSource interface {
	Next() string
}

// UUIDTokenSource derives short uppercase tokens from random UUIDs.
type UUIDTokenSource struct{}

func (UUIDTokenSource) Next() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:6])
}

// ProjectID formats the sequential project identifier, e.g. AS-CL-001.
func ProjectID(counter int64) string {
	return fmt.Sprintf("AS-CL-%03d", counter)
}

// LineItemID formats the sequential line-item identifier, e.g. LI-0001.
func LineItemID(counter int64) string {
	return fmt.Sprintf("LI-%04d", counter)
}

// SpoolID builds the structured spool identifier SP-{suffix}-{number}{seq}.
// suffix is the last dash-separated segment of the owning project's ID and
// seq is the 1-based index within the line item, zero-padded to 3 digits.
func SpoolID(projectID string, lineItemNumber int64, seq int) string {
	return fmt.Sprintf("SP-%s-%d%03d", projectSuffix(projectID), lineItemNumber, seq)
}

// Barcode returns the barcode paired with a spool ID.
func Barcode(spoolID string) string {
	return "BC-" + spoolID
}

// Prefixed builds an opaque identifier such as PO-A1B2C3 or NMR-F00BAR.
func Prefixed(prefix string, tokens TokenSource) string {
	return prefix + "-" + tokens.Next()
}

// SageCode mints a SAGE code for a cladded spool. Uniqueness is the only
// guarantee; codes are not sequential.
func SageCode(tokens TokenSource) string {
	return "SAGE-" + tokens.Next()
}

func projectSuffix(projectID string) string {
	if projectID == "" {
		return "000"
	}
	parts := strings.Split(projectID, "-")
	return parts[len(parts)-1]
}
