package sqlite

import "strings"

const uniqueFailedMarker = "UNIQUE constraint failed: "

// SQLite surfaces constraint failures only through the error text, and it
// never names a violated foreign key, so matching the message is the mapping.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func isUniqueViolation(err error) bool {
	return violatedUniqueConstraint(err) != ""
}

// violatedUniqueConstraint extracts the constraint identifier from a unique
// violation: "purchase_orders.number" for a column constraint,
// "idx_nmr_drawing_number" for the normalized drawing-number index, the first
// column for a composite key. Empty when err is not a unique violation.
func violatedUniqueConstraint(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	i := strings.Index(msg, uniqueFailedMarker)
	if i < 0 {
		return ""
	}
	rest := msg[i+len(uniqueFailedMarker):]
	if after, ok := strings.CutPrefix(rest, "index '"); ok {
		if end := strings.IndexByte(after, '\''); end >= 0 {
			return after[:end]
		}
		return after
	}
	// the driver appends its numeric code in parens
	if end := strings.IndexAny(rest, " ("); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSuffix(rest, ",")
}
