package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aasia/cladtrack/internal/domain/quality"
	"github.com/aasia/cladtrack/internal/repository"
)

// JISRepository implements quality.Repository for SQLite
type JISRepository struct {
	db *DB
}

// NewJISRepository creates a new JISRepository
func NewJISRepository(db *DB) *JISRepository {
	return &JISRepository{db: db}
}

const jisInsert = `
	INSERT INTO jis_operations (id, target_id, category, process_name, description,
		sequence, status, start_date, finish_date, inspector_id, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// Create creates a single operation
func (r *JISRepository) Create(ctx context.Context, op *quality.Operation) error {
	_, err := r.db.ExecContext(ctx, jisInsert,
		op.ID, op.TargetID, op.Category, op.ProcessName, op.Description,
		op.Sequence, string(op.Status), op.StartDate, op.FinishDate, op.InspectorID, op.CreatedAt)
	if isForeignKeyViolation(err) {
		return repository.ErrForeignKeyViolation
	}
	if err != nil {
		return fmt.Errorf("failed to create JIS operation: %w", err)
	}
	return nil
}

// CreateBatch inserts a whole routing in one transaction
func (r *JISRepository) CreateBatch(ctx context.Context, ops []*quality.Operation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, op := range ops {
		_, err := tx.ExecContext(ctx, jisInsert,
			op.ID, op.TargetID, op.Category, op.ProcessName, op.Description,
			op.Sequence, string(op.Status), op.StartDate, op.FinishDate, op.InspectorID, op.CreatedAt)
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		if err != nil {
			return fmt.Errorf("failed to insert JIS operation %s: %w", op.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit routing: %w", err)
	}
	return nil
}

const jisSelect = `
	SELECT id, target_id, category, process_name, description, sequence, status,
		start_date, finish_date, inspector_id, created_at
	FROM jis_operations`

// Get retrieves an operation by ID
func (r *JISRepository) Get(ctx context.Context, id string) (*quality.Operation, error) {
	row := r.db.QueryRowContext(ctx, jisSelect+` WHERE id = ?`, id)
	op, err := scanJISOperation(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get JIS operation: %w", err)
	}
	return op, nil
}

// Update replaces an operation's mutable fields
func (r *JISRepository) Update(ctx context.Context, op *quality.Operation) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE jis_operations
		SET process_name = ?, description = ?, sequence = ?, status = ?,
			start_date = ?, finish_date = ?, inspector_id = ?
		WHERE id = ?
	`, op.ProcessName, op.Description, op.Sequence, string(op.Status),
		op.StartDate, op.FinishDate, op.InspectorID, op.ID)
	if err != nil {
		return fmt.Errorf("failed to update JIS operation: %w", err)
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

// Delete removes an operation
func (r *JISRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jis_operations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete JIS operation: %w", err)
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

// List returns operations matching the options, in routing order
func (r *JISRepository) List(ctx context.Context, opts quality.ListOptions) ([]quality.Operation, error) {
	query := jisSelect + ` WHERE 1=1`
	args := []any{}
	if opts.TargetID != "" {
		query += ` AND target_id = ?`
		args = append(args, opts.TargetID)
	}
	if len(opts.Statuses) > 0 {
		placeholders := make([]string, len(opts.Statuses))
		for i, status := range opts.Statuses {
			placeholders[i] = "?"
			args = append(args, string(status))
		}
		query += ` AND status IN (` + strings.Join(placeholders, ", ") + `)`
	}
	query += ` ORDER BY target_id ASC, sequence ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list JIS operations: %w", err)
	}
	defer rows.Close()

	var ops []quality.Operation
	for rows.Next() {
		op, err := scanJISOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan JIS operation: %w", err)
		}
		ops = append(ops, *op)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating JIS operation rows: %w", err)
	}
	return ops, nil
}

func scanJISOperation(row rowScanner) (*quality.Operation, error) {
	var op quality.Operation
	var status string
	err := row.Scan(&op.ID, &op.TargetID, &op.Category, &op.ProcessName, &op.Description,
		&op.Sequence, &status, &op.StartDate, &op.FinishDate, &op.InspectorID, &op.CreatedAt)
	if err != nil {
		return nil, err
	}
	op.Status = quality.OpStatus(status)
	return &op, nil
}
