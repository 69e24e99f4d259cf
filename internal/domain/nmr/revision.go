package nmr

import "fmt"

// nextRevision bumps a revision string to the next character ("A"→"B",
// "B"→"C"). The alpha sequence ends at "Z"; a code 2/3 response on a "Z"
// revision is rejected before any state changes.
func nextRevision(rev string) (string, error) {
	if len(rev) != 1 {
		return "", fmt.Errorf("%w: revision %q", ErrInvalidInput, rev)
	}
	if rev == "Z" {
		return "", ErrRevisionExhausted
	}
	return string(rev[0] + 1), nil
}
