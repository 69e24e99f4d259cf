package order

import (
	"math"
	"strings"
	"time"

	"github.com/aasia/cladtrack/internal/domain/spool"
	"github.com/aasia/cladtrack/internal/ident"
)

// segmentLengthMeters is the standard pipe segment length: one spool is
// tracked per 12 meters of cladded pipe.
const segmentLengthMeters = 12

// isPipeCategory reports whether a category derives spools from pipe length.
// The substring match is deliberately case-sensitive; categories come from a
// fixed pick list ("Cladded Pipe" etc.) and lowercase variants are treated as
// discrete-quantity items.
func isPipeCategory(category string) bool {
	return strings.Contains(category, "Pipe")
}

// SpoolCount computes how many tracking units a line item materializes.
// Pipe categories yield one spool per started 12 m segment; a zero or unset
// pipe length legally yields zero spools. All other categories yield one
// spool per unit of quantity, defaulting to 1.
func SpoolCount(category string, quantity int, pipeLength float64) int {
	if isPipeCategory(category) {
		if pipeLength <= 0 {
			return 0
		}
		return int(math.Ceil(pipeLength / segmentLengthMeters))
	}
	if quantity < 1 {
		return 1
	}
	return quantity
}

// DeriveSpools materializes the spool records for one line item, each pending
// cladding. qtyLength is the nominal per-spool length: the 12 m segment for
// pipe categories, 1 for discrete items (an approximation carried over from
// the planning sheet, not a measured value).
func DeriveSpools(li *LineItem, now time.Time) []*spool.Spool {
	count := SpoolCount(li.ItemCategory, li.Quantity, li.PipeLength)
	qtyLength := float64(1)
	if isPipeCategory(li.ItemCategory) {
		qtyLength = segmentLengthMeters
	}

	spools := make([]*spool.Spool, 0, count)
	for seq := 1; seq <= count; seq++ {
		id := ident.SpoolID(li.ProjectID, li.Number, seq)
		spools = append(spools, &spool.Spool{
			ID:           id,
			LineItemID:   li.ID,
			ProjectID:    li.ProjectID,
			POID:         li.POID,
			ItemCategory: li.ItemCategory,
			Description:  li.Description,
			QtyLength:    qtyLength,
			Barcode:      ident.Barcode(id),
			SageCode:     "",
			Status:       spool.StatusPendingCladding,
			CreatedAt:    now,
		})
	}
	return spools
}
