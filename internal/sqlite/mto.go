package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/aasia/cladtrack/internal/domain/mto"
	"github.com/aasia/cladtrack/internal/repository"
)

// MTORepository implements mto.Repository for SQLite. The line-item materials
// map is stored as a JSON text column.
type MTORepository struct {
	db *DB
}

// NewMTORepository creates a new MTORepository
func NewMTORepository(db *DB) *MTORepository {
	return &MTORepository{db: db}
}

// Create creates a new MTO
func (r *MTORepository) Create(ctx context.Context, m *mto.MTO) error {
	materials, err := json.Marshal(m.LineItemMaterials)
	if err != nil {
		return fmt.Errorf("failed to marshal line item materials: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO mtos (id, number, project_id, po_id, nmr_document_id, line_item_materials, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Number, m.ProjectID, m.POID, m.NMRDocumentID, string(materials), m.CreatedAt)
	if isForeignKeyViolation(err) {
		return repository.ErrForeignKeyViolation
	}
	if err != nil {
		return fmt.Errorf("failed to create MTO: %w", err)
	}
	return nil
}

// Get retrieves an MTO by ID
func (r *MTORepository) Get(ctx context.Context, id string) (*mto.MTO, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, number, project_id, po_id, nmr_document_id, line_item_materials, created_at
		FROM mtos WHERE id = ?
	`, id)
	m, err := scanMTO(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get MTO: %w", err)
	}
	return m, nil
}

// Update replaces an MTO's fields
func (r *MTORepository) Update(ctx context.Context, m *mto.MTO) error {
	materials, err := json.Marshal(m.LineItemMaterials)
	if err != nil {
		return fmt.Errorf("failed to marshal line item materials: %w", err)
	}
	result, err := r.db.ExecContext(ctx, `
		UPDATE mtos SET number = ?, po_id = ?, nmr_document_id = ?, line_item_materials = ?
		WHERE id = ?
	`, m.Number, m.POID, m.NMRDocumentID, string(materials), m.ID)
	if err != nil {
		return fmt.Errorf("failed to update MTO: %w", err)
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

// Delete removes an MTO
func (r *MTORepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM mtos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete MTO: %w", err)
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

// List returns MTOs matching the options, newest first
func (r *MTORepository) List(ctx context.Context, opts mto.ListOptions) ([]mto.MTO, error) {
	query := `
		SELECT id, number, project_id, po_id, nmr_document_id, line_item_materials, created_at
		FROM mtos WHERE 1=1
	`
	args := []any{}
	if opts.ProjectID != "" {
		query += ` AND project_id = ?`
		args = append(args, opts.ProjectID)
	}
	if opts.POID != "" {
		query += ` AND po_id = ?`
		args = append(args, opts.POID)
	}
	if opts.NMRID != "" {
		query += ` AND nmr_document_id = ?`
		args = append(args, opts.NMRID)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list MTOs: %w", err)
	}
	defer rows.Close()

	var mtos []mto.MTO
	for rows.Next() {
		m, err := scanMTO(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan MTO: %w", err)
		}
		mtos = append(mtos, *m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating MTO rows: %w", err)
	}
	return mtos, nil
}

// DeleteByProject removes all MTOs under a project
func (r *MTORepository) DeleteByProject(ctx context.Context, projectID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM mtos WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("failed to delete project MTOs: %w", err)
	}
	return nil
}

// DeleteByPO removes all MTOs under a purchase order
func (r *MTORepository) DeleteByPO(ctx context.Context, poID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM mtos WHERE po_id = ?`, poID); err != nil {
		return fmt.Errorf("failed to delete PO MTOs: %w", err)
	}
	return nil
}

// DeleteByNMR removes all MTOs raised against an NMR document
func (r *MTORepository) DeleteByNMR(ctx context.Context, nmrID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM mtos WHERE nmr_document_id = ?`, nmrID); err != nil {
		return fmt.Errorf("failed to delete NMR MTOs: %w", err)
	}
	return nil
}

func scanMTO(row rowScanner) (*mto.MTO, error) {
	var m mto.MTO
	var materials string
	err := row.Scan(&m.ID, &m.Number, &m.ProjectID, &m.POID, &m.NMRDocumentID, &materials, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(materials), &m.LineItemMaterials); err != nil {
		return nil, fmt.Errorf("failed to unmarshal line item materials: %w", err)
	}
	return &m, nil
}
