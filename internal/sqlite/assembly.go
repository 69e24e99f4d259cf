package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aasia/cladtrack/internal/domain/assembly"
	"github.com/aasia/cladtrack/internal/repository"
)

// AssemblyRepository implements assembly.Repository for SQLite
type AssemblyRepository struct {
	db *DB
}

// NewAssemblyRepository creates a new AssemblyRepository
func NewAssemblyRepository(db *DB) *AssemblyRepository {
	return &AssemblyRepository{db: db}
}

// Create creates a new joint
func (r *AssemblyRepository) Create(ctx context.Context, joint *assembly.Joint) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO assembly_joints (id, component1, component2, size, wt, sequence, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, joint.ID, joint.Component1, joint.Component2, joint.Size, joint.WT, joint.Sequence, joint.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create assembly joint: %w", err)
	}
	return nil
}

// Get retrieves a joint by ID
func (r *AssemblyRepository) Get(ctx context.Context, id string) (*assembly.Joint, error) {
	var joint assembly.Joint
	err := r.db.QueryRowContext(ctx, `
		SELECT id, component1, component2, size, wt, sequence, created_at
		FROM assembly_joints WHERE id = ?
	`, id).Scan(&joint.ID, &joint.Component1, &joint.Component2, &joint.Size, &joint.WT,
		&joint.Sequence, &joint.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assembly joint: %w", err)
	}
	return &joint, nil
}

// Update replaces a joint's fields
func (r *AssemblyRepository) Update(ctx context.Context, joint *assembly.Joint) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE assembly_joints
		SET component1 = ?, component2 = ?, size = ?, wt = ?, sequence = ?
		WHERE id = ?
	`, joint.Component1, joint.Component2, joint.Size, joint.WT, joint.Sequence, joint.ID)
	if err != nil {
		return fmt.Errorf("failed to update assembly joint: %w", err)
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

// Delete removes a joint
func (r *AssemblyRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM assembly_joints WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assembly joint: %w", err)
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

// List returns all joints, newest first
func (r *AssemblyRepository) List(ctx context.Context) ([]assembly.Joint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, component1, component2, size, wt, sequence, created_at
		FROM assembly_joints ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list assembly joints: %w", err)
	}
	defer rows.Close()

	var joints []assembly.Joint
	for rows.Next() {
		var joint assembly.Joint
		if err := rows.Scan(&joint.ID, &joint.Component1, &joint.Component2, &joint.Size,
			&joint.WT, &joint.Sequence, &joint.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assembly joint: %w", err)
		}
		joints = append(joints, joint)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assembly joint rows: %w", err)
	}
	return joints, nil
}
