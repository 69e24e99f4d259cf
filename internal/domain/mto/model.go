// Package mto manages material take-offs: per-drawing lists of the materials
// required to fabricate the line items an NMR document covers.
package mto

import "time"

// MTO is one material take-off. LineItemMaterials maps a PO line item ID to a
// free-text materials note.
type MTO struct {
	ID                string            `json:"id"`
	Number            string            `json:"number"`
	ProjectID         string            `json:"projectId"`
	POID              string            `json:"poId"`
	NMRDocumentID     string            `json:"nmrDocumentId"`
	LineItemMaterials map[string]string `json:"lineItemMaterials"`
	CreatedAt         time.Time         `json:"created_at"`
}
