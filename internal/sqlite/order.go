package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/aasia/cladtrack/internal/domain/order"
	"github.com/aasia/cladtrack/internal/domain/spool"
	"github.com/aasia/cladtrack/internal/repository"
	"github.com/shopspring/decimal"
)

// OrderRepository implements order.Repository for SQLite. PO list fields
// (tags, bank assignments, contacts) are stored as JSON text columns.
type OrderRepository struct {
	db *DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreatePurchaseOrder creates a new PO header
func (r *OrderRepository) CreatePurchaseOrder(ctx context.Context, po *order.PurchaseOrder) error {
	tags, err := json.Marshal(orEmpty(po.POTags))
	if err != nil {
		return fmt.Errorf("failed to marshal PO tags: %w", err)
	}
	banks, err := json.Marshal(orEmpty(po.BankAssignments))
	if err != nil {
		return fmt.Errorf("failed to marshal bank assignments: %w", err)
	}
	contacts, err := json.Marshal(po.Contacts)
	if err != nil {
		return fmt.Errorf("failed to marshal contacts: %w", err)
	}

	query := `
		INSERT INTO purchase_orders (id, project_id, po_number, po_date, po_rev, po_tags, bank_assignments, contacts, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		po.ID, po.ProjectID, po.PONumber, po.PODate, po.PORev,
		string(tags), string(banks), string(contacts), po.CreatedAt,
	)
	if isForeignKeyViolation(err) {
		return repository.ErrForeignKeyViolation
	}
	if err != nil {
		return fmt.Errorf("failed to create purchase order: %w", err)
	}
	return nil
}

// GetPurchaseOrder retrieves a PO by ID
func (r *OrderRepository) GetPurchaseOrder(ctx context.Context, id string) (*order.PurchaseOrder, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, project_id, po_number, po_date, po_rev, po_tags, bank_assignments, contacts, created_at
		FROM purchase_orders WHERE id = ?
	`, id)
	po, err := scanPurchaseOrder(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase order: %w", err)
	}
	return po, nil
}

// UpdatePurchaseOrder replaces a PO's header fields
func (r *OrderRepository) UpdatePurchaseOrder(ctx context.Context, po *order.PurchaseOrder) error {
	tags, err := json.Marshal(orEmpty(po.POTags))
	if err != nil {
		return fmt.Errorf("failed to marshal PO tags: %w", err)
	}
	banks, err := json.Marshal(orEmpty(po.BankAssignments))
	if err != nil {
		return fmt.Errorf("failed to marshal bank assignments: %w", err)
	}
	contacts, err := json.Marshal(po.Contacts)
	if err != nil {
		return fmt.Errorf("failed to marshal contacts: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE purchase_orders
		SET po_number = ?, po_date = ?, po_rev = ?, po_tags = ?, bank_assignments = ?, contacts = ?
		WHERE id = ?
	`, po.PONumber, po.PODate, po.PORev, string(tags), string(banks), string(contacts), po.ID)
	if err != nil {
		return fmt.Errorf("failed to update purchase order: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeletePurchaseOrder removes a PO header
func (r *OrderRepository) DeletePurchaseOrder(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM purchase_orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete purchase order: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListPurchaseOrders returns POs, optionally scoped to a project
func (r *OrderRepository) ListPurchaseOrders(ctx context.Context, projectID string) ([]order.PurchaseOrder, error) {
	query := `
		SELECT id, project_id, po_number, po_date, po_rev, po_tags, bank_assignments, contacts, created_at
		FROM purchase_orders
	`
	args := []any{}
	if projectID != "" {
		query += ` WHERE project_id = ?`
		args = append(args, projectID)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	defer rows.Close()

	var pos []order.PurchaseOrder
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase order: %w", err)
		}
		pos = append(pos, *po)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase order rows: %w", err)
	}
	return pos, nil
}

// CreateLineItemBatch inserts line items and their derived spools in one
// transaction, so a batch either fully materializes or not at all.
func (r *OrderRepository) CreateLineItemBatch(ctx context.Context, items []*order.LineItem, spools []*spool.Spool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	itemQuery := `
		INSERT INTO po_line_items (
			id, number, po_id, project_id, item_category, customer_material_number,
			description, quantity, pipe_length, uom, delivery_date, drawing_no, drawing_rev,
			size, wt, material_grade, cra_material, overlay_thickness, hydrotest_pressure,
			painting_spec, wps_number, ref_itp_number, unit_price, currency, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, li := range items {
		_, err := tx.ExecContext(ctx, itemQuery,
			li.ID, li.Number, li.POID, li.ProjectID, li.ItemCategory, li.CustomerMaterialNumber,
			li.Description, li.Quantity, li.PipeLength, li.UOM, li.DeliveryDate, li.DrawingNo, li.DrawingRev,
			li.Size, li.WT, li.MaterialGrade, li.CRAMaterial, li.OverlayThickness, li.HydrotestPressure,
			li.PaintingSpec, li.WPSNumber, li.RefITPNumber, li.UnitPrice.String(), li.Currency, li.CreatedAt,
		)
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		if err != nil {
			return fmt.Errorf("failed to insert line item %s: %w", li.ID, err)
		}
	}

	spoolQuery := `
		INSERT INTO spools (
			id, line_item_id, project_id, po_id, item_category, description, qty_length,
			barcode, sage_code, heat_number, cutting_sheet_number, mtr_number, min_number,
			status, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, sp := range spools {
		_, err := tx.ExecContext(ctx, spoolQuery,
			sp.ID, sp.LineItemID, sp.ProjectID, sp.POID, sp.ItemCategory, sp.Description, sp.QtyLength,
			sp.Barcode, sp.SageCode, sp.HeatNumber, sp.CuttingSheetNumber, sp.MTRNumber, sp.MINNumber,
			string(sp.Status), sp.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert spool %s: %w", sp.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit line item batch: %w", err)
	}
	return nil
}

// GetLineItem retrieves a line item by ID
func (r *OrderRepository) GetLineItem(ctx context.Context, id string) (*order.LineItem, error) {
	row := r.db.QueryRowContext(ctx, lineItemSelect+` WHERE id = ?`, id)
	li, err := scanLineItem(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get line item: %w", err)
	}
	return li, nil
}

// UpdateLineItem replaces a line item's editable fields. Number and the
// derived spool set never change here.
func (r *OrderRepository) UpdateLineItem(ctx context.Context, li *order.LineItem) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE po_line_items
		SET item_category = ?, customer_material_number = ?, description = ?, quantity = ?,
			pipe_length = ?, uom = ?, delivery_date = ?, drawing_no = ?, drawing_rev = ?,
			size = ?, wt = ?, material_grade = ?, cra_material = ?, overlay_thickness = ?,
			hydrotest_pressure = ?, painting_spec = ?, wps_number = ?, ref_itp_number = ?,
			unit_price = ?, currency = ?
		WHERE id = ?
	`,
		li.ItemCategory, li.CustomerMaterialNumber, li.Description, li.Quantity,
		li.PipeLength, li.UOM, li.DeliveryDate, li.DrawingNo, li.DrawingRev,
		li.Size, li.WT, li.MaterialGrade, li.CRAMaterial, li.OverlayThickness,
		li.HydrotestPressure, li.PaintingSpec, li.WPSNumber, li.RefITPNumber,
		li.UnitPrice.String(), li.Currency, li.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update line item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteLineItem removes a line item
func (r *OrderRepository) DeleteLineItem(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM po_line_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete line item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListLineItems returns line items matching the options, in number order
func (r *OrderRepository) ListLineItems(ctx context.Context, opts order.ListLineItemsOptions) ([]order.LineItem, error) {
	query := lineItemSelect
	args := []any{}
	switch {
	case opts.POID != "":
		query += ` WHERE po_id = ?`
		args = append(args, opts.POID)
	case opts.ProjectID != "":
		query += ` WHERE project_id = ?`
		args = append(args, opts.ProjectID)
	}
	query += ` ORDER BY number ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list line items: %w", err)
	}
	defer rows.Close()

	var items []order.LineItem
	for rows.Next() {
		li, err := scanLineItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		items = append(items, *li)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line item rows: %w", err)
	}
	return items, nil
}

// DeleteLineItemsByPO removes all line items under a PO
func (r *OrderRepository) DeleteLineItemsByPO(ctx context.Context, poID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM po_line_items WHERE po_id = ?`, poID); err != nil {
		return fmt.Errorf("failed to delete line items for PO: %w", err)
	}
	return nil
}

// DeleteByProject removes a project's line items and POs, in that order
func (r *OrderRepository) DeleteByProject(ctx context.Context, projectID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM po_line_items WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("failed to delete project line items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM purchase_orders WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("failed to delete project purchase orders: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order purge: %w", err)
	}
	return nil
}

const lineItemSelect = `
	SELECT id, number, po_id, project_id, item_category, customer_material_number,
		description, quantity, pipe_length, uom, delivery_date, drawing_no, drawing_rev,
		size, wt, material_grade, cra_material, overlay_thickness, hydrotest_pressure,
		painting_spec, wps_number, ref_itp_number, unit_price, currency, created_at
	FROM po_line_items`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPurchaseOrder(row rowScanner) (*order.PurchaseOrder, error) {
	var po order.PurchaseOrder
	var tags, banks, contacts string
	err := row.Scan(&po.ID, &po.ProjectID, &po.PONumber, &po.PODate, &po.PORev,
		&tags, &banks, &contacts, &po.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &po.POTags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PO tags: %w", err)
	}
	if err := json.Unmarshal([]byte(banks), &po.BankAssignments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bank assignments: %w", err)
	}
	if err := json.Unmarshal([]byte(contacts), &po.Contacts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contacts: %w", err)
	}
	return &po, nil
}

func scanLineItem(row rowScanner) (*order.LineItem, error) {
	var li order.LineItem
	var unitPrice string
	err := row.Scan(&li.ID, &li.Number, &li.POID, &li.ProjectID, &li.ItemCategory, &li.CustomerMaterialNumber,
		&li.Description, &li.Quantity, &li.PipeLength, &li.UOM, &li.DeliveryDate, &li.DrawingNo, &li.DrawingRev,
		&li.Size, &li.WT, &li.MaterialGrade, &li.CRAMaterial, &li.OverlayThickness, &li.HydrotestPressure,
		&li.PaintingSpec, &li.WPSNumber, &li.RefITPNumber, &unitPrice, &li.Currency, &li.CreatedAt)
	if err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(unitPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to parse unit price %q: %w", unitPrice, err)
	}
	li.UnitPrice = price
	return &li, nil
}

// orEmpty keeps JSON list columns as [] instead of null.
func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
