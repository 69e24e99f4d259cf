package mcp

import (
	"github.com/shopspring/decimal"

	"github.com/aasia/cladtrack/internal/domain/activity"
	"github.com/aasia/cladtrack/internal/domain/nmr"
	"github.com/aasia/cladtrack/internal/domain/order"
	"github.com/aasia/cladtrack/internal/domain/quality"
	"github.com/aasia/cladtrack/internal/domain/spool"
)

type CreateProjectParams struct {
	Name        string `json:"name"`
	ProjectType string `json:"project_type,omitempty"`
	Date        string `json:"date,omitempty"`
	Plant       string `json:"plant,omitempty"`
	Customer    string `json:"customer,omitempty"`
	EndUser     string `json:"end_user,omitempty"`
}

type UpdateProjectParams struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	ProjectType *string `json:"project_type,omitempty"`
	Date        *string `json:"date,omitempty"`
	Plant       *string `json:"plant,omitempty"`
	Customer    *string `json:"customer,omitempty"`
	EndUser     *string `json:"end_user,omitempty"`
}

type IDParams struct {
	ID string `json:"id"`
}

type CreatePurchaseOrderParams struct {
	ProjectID       string          `json:"project_id"`
	PONumber        string          `json:"po_number"`
	PODate          string          `json:"po_date,omitempty"`
	PORev           string          `json:"po_rev,omitempty"`
	POTags          []string        `json:"po_tags,omitempty"`
	BankAssignments []string        `json:"bank_assignments,omitempty"`
	Contacts        []order.Contact `json:"contacts,omitempty"`
}

type UpdatePurchaseOrderParams struct {
	ID              string          `json:"id"`
	PONumber        *string         `json:"po_number,omitempty"`
	PODate          *string         `json:"po_date,omitempty"`
	PORev           *string         `json:"po_rev,omitempty"`
	POTags          []string        `json:"po_tags,omitempty"`
	BankAssignments []string        `json:"bank_assignments,omitempty"`
	Contacts        []order.Contact `json:"contacts,omitempty"`
}

type ListPurchaseOrdersParams struct {
	ProjectID string `json:"project_id,omitempty"`
}

// LineItemParams is one entry of a create_line_items batch.
type LineItemParams struct {
	POID                   string  `json:"po_id"`
	ProjectID              string  `json:"project_id"`
	ItemCategory           string  `json:"item_category"`
	CustomerMaterialNumber string  `json:"customer_material_number,omitempty"`
	Description            string  `json:"description,omitempty"`
	Quantity               int     `json:"quantity,omitempty"`
	PipeLength             float64 `json:"pipe_length,omitempty"`
	UOM                    string  `json:"uom,omitempty"`
	DeliveryDate           string  `json:"delivery_date,omitempty"`
	DrawingNo              string  `json:"drawing_no,omitempty"`
	DrawingRev             string  `json:"drawing_rev,omitempty"`
	Size                   string  `json:"size,omitempty"`
	WT                     string  `json:"wt,omitempty"`
	MaterialGrade          string  `json:"material_grade,omitempty"`
	CRAMaterial            string  `json:"cra_material,omitempty"`
	OverlayThickness       string  `json:"overlay_thickness,omitempty"`
	HydrotestPressure      string  `json:"hydrotest_pressure,omitempty"`
	PaintingSpec           string  `json:"painting_spec,omitempty"`
	WPSNumber              string  `json:"wps_number,omitempty"`
	RefITPNumber           string  `json:"ref_itp_number,omitempty"`
	UnitPrice              string  `json:"unit_price,omitempty"`
	Currency               string  `json:"currency,omitempty"`
}

type CreateLineItemsParams struct {
	Items []LineItemParams `json:"items"`
}

type UpdateLineItemParams struct {
	ID                     string   `json:"id"`
	ItemCategory           *string  `json:"item_category,omitempty"`
	CustomerMaterialNumber *string  `json:"customer_material_number,omitempty"`
	Description            *string  `json:"description,omitempty"`
	Quantity               *int     `json:"quantity,omitempty"`
	PipeLength             *float64 `json:"pipe_length,omitempty"`
	UOM                    *string  `json:"uom,omitempty"`
	DeliveryDate           *string  `json:"delivery_date,omitempty"`
	DrawingNo              *string  `json:"drawing_no,omitempty"`
	DrawingRev             *string  `json:"drawing_rev,omitempty"`
	Size                   *string  `json:"size,omitempty"`
	WT                     *string  `json:"wt,omitempty"`
	MaterialGrade          *string  `json:"material_grade,omitempty"`
	CRAMaterial            *string  `json:"cra_material,omitempty"`
	OverlayThickness       *string  `json:"overlay_thickness,omitempty"`
	HydrotestPressure      *string  `json:"hydrotest_pressure,omitempty"`
	PaintingSpec           *string  `json:"painting_spec,omitempty"`
	WPSNumber              *string  `json:"wps_number,omitempty"`
	RefITPNumber           *string  `json:"ref_itp_number,omitempty"`
	UnitPrice              *string  `json:"unit_price,omitempty"`
	Currency               *string  `json:"currency,omitempty"`
}

type ListLineItemsParams struct {
	ProjectID string `json:"project_id,omitempty"`
	POID      string `json:"po_id,omitempty"`
}

type ListSpoolsParams struct {
	ProjectID     string `json:"project_id,omitempty"`
	POID          string `json:"po_id,omitempty"`
	LineItemID    string `json:"line_item_id,omitempty"`
	Status        string `json:"status,omitempty"`
	SageCodedOnly bool   `json:"sage_coded_only,omitempty"`
}

type UpdateSpoolParams struct {
	ID                 string  `json:"id"`
	HeatNumber         *string `json:"heat_number,omitempty"`
	CuttingSheetNumber *string `json:"cutting_sheet_number,omitempty"`
	MTRNumber          *string `json:"mtr_number,omitempty"`
	MINNumber          *string `json:"min_number,omitempty"`
	Description        *string `json:"description,omitempty"`
}

type CompleteCladdingParams struct {
	SpoolID string `json:"spool_id"`
}

type CreateAssemblyJointParams struct {
	Component1 string `json:"component1"`
	Component2 string `json:"component2"`
	Size       string `json:"size,omitempty"`
	WT         string `json:"wt,omitempty"`
	Sequence   string `json:"sequence,omitempty"`
}

type UpdateAssemblyJointParams struct {
	ID         string  `json:"id"`
	Component1 *string `json:"component1,omitempty"`
	Component2 *string `json:"component2,omitempty"`
	Size       *string `json:"size,omitempty"`
	WT         *string `json:"wt,omitempty"`
	Sequence   *string `json:"sequence,omitempty"`
}

type CreateNMRParams struct {
	ProjectID       string            `json:"project_id"`
	POID            string            `json:"po_id,omitempty"`
	DrawingNumber   string            `json:"drawing_number"`
	DrawingRevision string            `json:"drawing_revision,omitempty"`
	DrawingTitle    string            `json:"drawing_title,omitempty"`
	Spec            string            `json:"spec,omitempty"`
	Remarks         string            `json:"remarks,omitempty"`
	LineItems       []nmr.LineItemRef `json:"line_items"`
}

type UpdateNMRParams struct {
	ID              string            `json:"id"`
	DrawingNumber   *string           `json:"drawing_number,omitempty"`
	DrawingRevision *string           `json:"drawing_revision,omitempty"`
	DrawingTitle    *string           `json:"drawing_title,omitempty"`
	Spec            *string           `json:"spec,omitempty"`
	Remarks         *string           `json:"remarks,omitempty"`
	LineItems       []nmr.LineItemRef `json:"line_items,omitempty"`
}

type ListNMRsParams struct {
	ProjectID string       `json:"project_id,omitempty"`
	POID      string       `json:"po_id,omitempty"`
	Statuses  []nmr.Status `json:"statuses,omitempty"`
}

type SubmitNMRParams struct {
	ID             string `json:"id"`
	SubmissionDate string `json:"submission_date,omitempty"`
}

type NMRResponseParams struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	ReturnDate string `json:"return_date,omitempty"`
	Comment    string `json:"comment,omitempty"`
}

type EnsureJISRoutingParams struct {
	SpoolID string `json:"spool_id"`
}

type RecordJISActionParams struct {
	OperationID string `json:"operation_id"`
	Action      string `json:"action"`
	InspectorID string `json:"inspector_id"`
}

type AddJISOperationParams struct {
	TargetID    string `json:"target_id"`
	ProcessName string `json:"process_name"`
	Description string `json:"description,omitempty"`
	Sequence    int    `json:"sequence,omitempty"`
}

type UpdateJISOperationParams struct {
	ID          string  `json:"id"`
	ProcessName *string `json:"process_name,omitempty"`
	Description *string `json:"description,omitempty"`
	Sequence    *int    `json:"sequence,omitempty"`
}

type ListJISOperationsParams struct {
	TargetID string             `json:"target_id,omitempty"`
	Statuses []quality.OpStatus `json:"statuses,omitempty"`
}

type CreateMTOParams struct {
	Number            string            `json:"number,omitempty"`
	ProjectID         string            `json:"project_id"`
	POID              string            `json:"po_id,omitempty"`
	NMRDocumentID     string            `json:"nmr_document_id,omitempty"`
	LineItemMaterials map[string]string `json:"line_item_materials,omitempty"`
}

type UpdateMTOParams struct {
	ID                string            `json:"id"`
	Number            *string           `json:"number,omitempty"`
	LineItemMaterials map[string]string `json:"line_item_materials,omitempty"`
}

type ListMTOsParams struct {
	ProjectID string `json:"project_id,omitempty"`
	POID      string `json:"po_id,omitempty"`
	NMRID     string `json:"nmr_id,omitempty"`
}

type UpsertCustomerParams struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
	Country  string `json:"country,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Division string `json:"division,omitempty"`
}

type UpsertVendorParams struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	Category      string `json:"category,omitempty"`
	ContactPerson string `json:"contact_person,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
}

type UpsertProductParams struct {
	ID       string `json:"id,omitempty"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	UOM      string `json:"uom,omitempty"`
}

type UpsertWorkstationParams struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"`
	Status string `json:"status,omitempty"`
}

type GetRecentActivityParams struct {
	EntityID string          `json:"entity_id,omitempty"`
	Types    []activity.Type `json:"types,omitempty"`
	Limit    int             `json:"limit,omitempty"`
}

// BatchCreateResponse is returned by create_line_items.
type BatchCreateResponse struct {
	LineItems []order.LineItem `json:"line_items"`
	Spools    []spool.Spool    `json:"spools"`
}

// CompleteCladdingResponse is returned by complete_cladding.
type CompleteCladdingResponse struct {
	SpoolID  string `json:"spool_id"`
	SageCode string `json:"sage_code"`
	Status   string `json:"status"`
}

// StatusResponse is the generic acknowledgement for delete operations.
type StatusResponse struct {
	Status string `json:"status"`
}

// parseUnitPrice converts the optional string price coming off the wire.
func parseUnitPrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
