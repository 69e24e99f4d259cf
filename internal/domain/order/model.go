package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contact is a purchase-order contact person.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PurchaseOrder is a customer PO header under a project.
type PurchaseOrder struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"projectId"`
	PONumber        string    `json:"poNumber"`
	PODate          string    `json:"poDate"`
	PORev           string    `json:"poRev"`
	POTags          []string  `json:"poTags"`
	BankAssignments []string  `json:"bankAssignments"`
	Contacts        []Contact `json:"contacts"`
	CreatedAt       time.Time `json:"created_at"`
}

// LineItem is one commercial line on a PO. Number comes from a single global
// monotonic counter shared by all line items and is embedded into every spool
// ID derived from the line; it is assigned at creation and never changes.
type LineItem struct {
	ID                     string          `json:"id"`
	Number                 int64           `json:"poLineItemNumber"`
	POID                   string          `json:"poId"`
	ProjectID              string          `json:"projectId"`
	ItemCategory           string          `json:"itemCategory"`
	CustomerMaterialNumber string          `json:"customerMaterialNumber"`
	Description            string          `json:"description"`
	Quantity               int             `json:"quantity"`
	PipeLength             float64         `json:"pipeLength"`
	UOM                    string          `json:"uom"`
	DeliveryDate           string          `json:"deliveryDate"`
	DrawingNo              string          `json:"drawingNo"`
	DrawingRev             string          `json:"drawingRev"`
	Size                   string          `json:"size"`
	WT                     string          `json:"wt"`
	MaterialGrade          string          `json:"materialGrade"`
	CRAMaterial            string          `json:"craMaterial"`
	OverlayThickness       string          `json:"overlayThickness"`
	HydrotestPressure      string          `json:"hydrotestPressure"`
	PaintingSpec           string          `json:"paintingSpec"`
	WPSNumber              string          `json:"wpsNumber"`
	RefITPNumber           string          `json:"refItpNumber"`
	UnitPrice              decimal.Decimal `json:"unitPrice"`
	Currency               string          `json:"currency"`
	CreatedAt              time.Time       `json:"created_at"`
}
