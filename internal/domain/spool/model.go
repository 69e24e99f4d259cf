package spool

import "time"

// Status tracks a spool through the cladding stage. The string values are the
// ones persisted by the shop-floor application and are kept verbatim so
// exported snapshots stay readable by it.
type Status string

const (
	StatusPendingCladding         Status = "Pending Cladding"
	StatusCladdedReadyForAssembly Status = "Cladded - Ready for Assembly"
)

// Spool is a physical tracking unit derived from a PO line item. The spool
// population for a line item is fixed at creation; editing the line item
// afterwards never regenerates spools.
type Spool struct {
	ID                 string    `json:"id"`
	LineItemID         string    `json:"lineItemId"`
	ProjectID          string    `json:"projectId"`
	POID               string    `json:"poId"`
	ItemCategory       string    `json:"itemCategory"`
	Description        string    `json:"description"`
	QtyLength          float64   `json:"qtyLength"`
	Barcode            string    `json:"barcode"`
	SageCode           string    `json:"sageCode"`
	HeatNumber         string    `json:"heatNumber"`
	CuttingSheetNumber string    `json:"cuttingSheetNumber"`
	MTRNumber          string    `json:"mtrNumber"`
	MINNumber          string    `json:"minNumber"`
	Status             Status    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}
