package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aasia/cladtrack/internal/domain/spool"
	"github.com/aasia/cladtrack/internal/repository"
)

// SpoolRepository implements spool.Repository for SQLite. Inserts happen in
// the order repository's batch transaction; this type covers everything after.
type SpoolRepository struct {
	db *DB
}

// NewSpoolRepository creates a new SpoolRepository
func NewSpoolRepository(db *DB) *SpoolRepository {
	return &SpoolRepository{db: db}
}

const spoolSelect = `
	SELECT id, line_item_id, project_id, po_id, item_category, description, qty_length,
		barcode, sage_code, heat_number, cutting_sheet_number, mtr_number, min_number,
		status, created_at
	FROM spools`

// Get retrieves a spool by ID
func (r *SpoolRepository) Get(ctx context.Context, id string) (*spool.Spool, error) {
	row := r.db.QueryRowContext(ctx, spoolSelect+` WHERE id = ?`, id)
	sp, err := scanSpool(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get spool: %w", err)
	}
	return sp, nil
}

// GetBySageCode retrieves a spool by its SAGE code
func (r *SpoolRepository) GetBySageCode(ctx context.Context, sageCode string) (*spool.Spool, error) {
	if sageCode == "" {
		return nil, repository.ErrInvalidInput
	}
	row := r.db.QueryRowContext(ctx, spoolSelect+` WHERE sage_code = ?`, sageCode)
	sp, err := scanSpool(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get spool by SAGE code: %w", err)
	}
	return sp, nil
}

// Update replaces a spool's mutable fields
func (r *SpoolRepository) Update(ctx context.Context, sp *spool.Spool) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE spools
		SET description = ?, sage_code = ?, heat_number = ?, cutting_sheet_number = ?,
			mtr_number = ?, min_number = ?, status = ?
		WHERE id = ?
	`, sp.Description, sp.SageCode, sp.HeatNumber, sp.CuttingSheetNumber,
		sp.MTRNumber, sp.MINNumber, string(sp.Status), sp.ID)
	if err != nil {
		return fmt.Errorf("failed to update spool: %w", err)
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

// Delete removes a spool
func (r *SpoolRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM spools WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete spool: %w", err)
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

// List returns spools matching the options, in spool ID order
func (r *SpoolRepository) List(ctx context.Context, opts spool.ListOptions) ([]spool.Spool, error) {
	query := spoolSelect + ` WHERE 1=1`
	args := []any{}
	if opts.ProjectID != "" {
		query += ` AND project_id = ?`
		args = append(args, opts.ProjectID)
	}
	if opts.POID != "" {
		query += ` AND po_id = ?`
		args = append(args, opts.POID)
	}
	if opts.LineItemID != "" {
		query += ` AND line_item_id = ?`
		args = append(args, opts.LineItemID)
	}
	if opts.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(opts.Status))
	}
	if opts.SageCodedOnly {
		query += ` AND sage_code != ''`
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list spools: %w", err)
	}
	defer rows.Close()

	var spools []spool.Spool
	for rows.Next() {
		sp, err := scanSpool(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan spool: %w", err)
		}
		spools = append(spools, *sp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating spool rows: %w", err)
	}
	return spools, nil
}

// DeleteByProject removes all spools under a project
func (r *SpoolRepository) DeleteByProject(ctx context.Context, projectID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM spools WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("failed to delete project spools: %w", err)
	}
	return nil
}

// DeleteByPO removes all spools under a purchase order
func (r *SpoolRepository) DeleteByPO(ctx context.Context, poID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM spools WHERE po_id = ?`, poID); err != nil {
		return fmt.Errorf("failed to delete PO spools: %w", err)
	}
	return nil
}

// DeleteByLineItem removes all spools under a line item
func (r *SpoolRepository) DeleteByLineItem(ctx context.Context, lineItemID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM spools WHERE line_item_id = ?`, lineItemID); err != nil {
		return fmt.Errorf("failed to delete line item spools: %w", err)
	}
	return nil
}

func scanSpool(row rowScanner) (*spool.Spool, error) {
	var sp spool.Spool
	var status string
	err := row.Scan(&sp.ID, &sp.LineItemID, &sp.ProjectID, &sp.POID, &sp.ItemCategory,
		&sp.Description, &sp.QtyLength, &sp.Barcode, &sp.SageCode, &sp.HeatNumber,
		&sp.CuttingSheetNumber, &sp.MTRNumber, &sp.MINNumber, &status, &sp.CreatedAt)
	if err != nil {
		return nil, err
	}
	sp.Status = spool.Status(status)
	return &sp, nil
}
