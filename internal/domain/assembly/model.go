// Package assembly records welded joints between two cladded components,
// identified by the SAGE codes minted at cladding completion.
package assembly

import "time"

// Joint pairs two cladded components. Components are referenced by SAGE code,
// not spool ID, because that is how the shop floor identifies cladded stock.
type Joint struct {
	ID         string    `json:"id"`
	Component1 string    `json:"component1"`
	Component2 string    `json:"component2"`
	Size       string    `json:"size"`
	WT         string    `json:"wt"`
	Sequence   string    `json:"sequence"`
	CreatedAt  time.Time `json:"created_at"`
}
