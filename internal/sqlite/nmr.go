package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aasia/cladtrack/internal/domain/nmr"
	"github.com/aasia/cladtrack/internal/repository"
)

// NMRRepository implements nmr.Repository for SQLite. A document spans three
// tables: the header, the linked line items and the revision history. Writes
// replace the child rows inside one transaction.
type NMRRepository struct {
	db *DB
}

// NewNMRRepository creates a new NMRRepository
func NewNMRRepository(db *DB) *NMRRepository {
	return &NMRRepository{db: db}
}

// Create stores a new document with its line items
func (r *NMRRepository) Create(ctx context.Context, doc *nmr.Document) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO nmr_documents (id, project_id, po_id, drawing_number, drawing_revision,
			drawing_title, spec, remarks, revision, status, last_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.ProjectID, doc.POID, doc.DrawingNumber, doc.DrawingRevision,
		doc.DrawingTitle, doc.Spec, doc.Remarks, doc.Revision, string(doc.Status), doc.LastCode, doc.CreatedAt)
	if violatedUniqueConstraint(err) == "idx_nmr_drawing_number" {
		return repository.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to create NMR document: %w", err)
	}

	if err := insertNMRChildren(ctx, tx, doc); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit NMR create: %w", err)
	}
	return nil
}

// Update replaces the document header and its child rows
func (r *NMRRepository) Update(ctx context.Context, doc *nmr.Document) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE nmr_documents
		SET project_id = ?, po_id = ?, drawing_number = ?, drawing_revision = ?,
			drawing_title = ?, spec = ?, remarks = ?, revision = ?, status = ?, last_code = ?
		WHERE id = ?
	`, doc.ProjectID, doc.POID, doc.DrawingNumber, doc.DrawingRevision,
		doc.DrawingTitle, doc.Spec, doc.Remarks, doc.Revision, string(doc.Status), doc.LastCode, doc.ID)
	if violatedUniqueConstraint(err) == "idx_nmr_drawing_number" {
		return repository.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to update NMR document: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM nmr_line_items WHERE nmr_id = ?`, doc.ID); err != nil {
		return fmt.Errorf("failed to clear NMR line items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM nmr_revisions WHERE nmr_id = ?`, doc.ID); err != nil {
		return fmt.Errorf("failed to clear NMR revisions: %w", err)
	}
	if err := insertNMRChildren(ctx, tx, doc); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit NMR update: %w", err)
	}
	return nil
}

// Get retrieves a document with its line items and revision history
func (r *NMRRepository) Get(ctx context.Context, id string) (*nmr.Document, error) {
	row := r.db.QueryRowContext(ctx, nmrSelect+` WHERE id = ?`, id)
	doc, err := scanNMRDocument(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get NMR document: %w", err)
	}
	if err := r.loadChildren(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes a document and its child rows
func (r *NMRRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM nmr_line_items WHERE nmr_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete NMR line items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM nmr_revisions WHERE nmr_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete NMR revisions: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM nmr_documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete NMR document: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit NMR delete: %w", err)
	}
	return nil
}

// List returns documents matching the options, newest first
func (r *NMRRepository) List(ctx context.Context, opts nmr.ListOptions) ([]nmr.Document, error) {
	query := nmrSelect + ` WHERE 1=1`
	args := []any{}
	if opts.ProjectID != "" {
		query += ` AND project_id = ?`
		args = append(args, opts.ProjectID)
	}
	if opts.POID != "" {
		query += ` AND po_id = ?`
		args = append(args, opts.POID)
	}
	if len(opts.Statuses) > 0 {
		placeholders := make([]string, len(opts.Statuses))
		for i, status := range opts.Statuses {
			placeholders[i] = "?"
			args = append(args, string(status))
		}
		query += ` AND status IN (` + strings.Join(placeholders, ", ") + `)`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list NMR documents: %w", err)
	}
	defer rows.Close()

	var docs []nmr.Document
	for rows.Next() {
		doc, err := scanNMRDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan NMR document: %w", err)
		}
		docs = append(docs, *doc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating NMR rows: %w", err)
	}

	for i := range docs {
		if err := r.loadChildren(ctx, &docs[i]); err != nil {
			return nil, err
		}
	}
	return docs, nil
}

// DrawingNumberExists reports whether any document other than excludeID uses
// the normalized drawing number
func (r *NMRRepository) DrawingNumberExists(ctx context.Context, normalized, excludeID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM nmr_documents
		WHERE LOWER(TRIM(drawing_number)) = ? AND id != ?
	`, normalized, excludeID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check drawing number: %w", err)
	}
	return count > 0, nil
}

// LinkedLineItems returns the subset of lineItemIDs already linked to a
// document other than excludeID
func (r *NMRRepository) LinkedLineItems(ctx context.Context, lineItemIDs []string, excludeID string) ([]string, error) {
	if len(lineItemIDs) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(lineItemIDs))
	args := make([]any, 0, len(lineItemIDs)+1)
	for i, id := range lineItemIDs {
		placeholders[i] = "?"
		args = append(args, id)
	}
	args = append(args, excludeID)

	rows, err := r.db.QueryContext(ctx, `
		SELECT line_item_id FROM nmr_line_items
		WHERE line_item_id IN (`+strings.Join(placeholders, ", ")+`) AND nmr_id != ?
		ORDER BY line_item_id
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to check line item links: %w", err)
	}
	defer rows.Close()

	var taken []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan line item link: %w", err)
		}
		taken = append(taken, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line item links: %w", err)
	}
	return taken, nil
}

const nmrSelect = `
	SELECT id, project_id, po_id, drawing_number, drawing_revision, drawing_title,
		spec, remarks, revision, status, last_code, created_at
	FROM nmr_documents`

func scanNMRDocument(row rowScanner) (*nmr.Document, error) {
	var doc nmr.Document
	var status string
	err := row.Scan(&doc.ID, &doc.ProjectID, &doc.POID, &doc.DrawingNumber, &doc.DrawingRevision,
		&doc.DrawingTitle, &doc.Spec, &doc.Remarks, &doc.Revision, &status, &doc.LastCode, &doc.CreatedAt)
	if err != nil {
		return nil, err
	}
	doc.Status = nmr.Status(status)
	return &doc, nil
}

func insertNMRChildren(ctx context.Context, tx *sql.Tx, doc *nmr.Document) error {
	for i, ref := range doc.LineItems {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO nmr_line_items (nmr_id, line_item_id, product_id, position)
			VALUES (?, ?, ?, ?)
		`, doc.ID, ref.LineItemID, ref.ProductID, i)
		if violatedUniqueConstraint(err) == "nmr_line_items.line_item_id" {
			return repository.ErrConflict
		}
		if err != nil {
			return fmt.Errorf("failed to insert NMR line item: %w", err)
		}
	}
	for i, entry := range doc.RevisionHistory {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO nmr_revisions (nmr_id, rev, submission_date, return_date, code, comment, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, doc.ID, entry.Rev, entry.SubmissionDate, entry.ReturnDate, entry.Code, entry.Comment, i)
		if err != nil {
			return fmt.Errorf("failed to insert NMR revision: %w", err)
		}
	}
	return nil
}

func (r *NMRRepository) loadChildren(ctx context.Context, doc *nmr.Document) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT line_item_id, product_id FROM nmr_line_items
		WHERE nmr_id = ? ORDER BY position ASC
	`, doc.ID)
	if err != nil {
		return fmt.Errorf("failed to load NMR line items: %w", err)
	}
	defer rows.Close()

	doc.LineItems = nil
	for rows.Next() {
		var ref nmr.LineItemRef
		if err := rows.Scan(&ref.LineItemID, &ref.ProductID); err != nil {
			return fmt.Errorf("failed to scan NMR line item: %w", err)
		}
		doc.LineItems = append(doc.LineItems, ref)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating NMR line items: %w", err)
	}

	revRows, err := r.db.QueryContext(ctx, `
		SELECT rev, submission_date, return_date, code, comment FROM nmr_revisions
		WHERE nmr_id = ? ORDER BY position ASC
	`, doc.ID)
	if err != nil {
		return fmt.Errorf("failed to load NMR revisions: %w", err)
	}
	defer revRows.Close()

	doc.RevisionHistory = []nmr.RevisionEntry{}
	for revRows.Next() {
		var entry nmr.RevisionEntry
		if err := revRows.Scan(&entry.Rev, &entry.SubmissionDate, &entry.ReturnDate, &entry.Code, &entry.Comment); err != nil {
			return fmt.Errorf("failed to scan NMR revision: %w", err)
		}
		doc.RevisionHistory = append(doc.RevisionHistory, entry)
	}
	if err = revRows.Err(); err != nil {
		return fmt.Errorf("error iterating NMR revisions: %w", err)
	}
	return nil
}
