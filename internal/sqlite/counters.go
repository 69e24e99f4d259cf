package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aasia/cladtrack/internal/repository"
)

// CounterRepository implements repository.CounterRepository for SQLite.
// Counters hold the next value to hand out and only ever move forward.
type CounterRepository struct {
	db *DB
}

// NewCounterRepository creates a new CounterRepository
func NewCounterRepository(db *DB) *CounterRepository {
	return &CounterRepository{db: db}
}

// Allocate reserves n consecutive numbers and returns the first. The reserve
// happens in its own transaction so numbers burned by a failed caller are
// never reissued.
func (r *CounterRepository) Allocate(ctx context.Context, name string, n int) (int64, error) {
	if n < 1 {
		return 0, repository.ErrInvalidInput
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var value int64
	err = tx.QueryRowContext(ctx, `SELECT value FROM counters WHERE name = ?`, name).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, repository.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read counter %s: %w", name, err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE counters SET value = value + ? WHERE name = ?`, n, name)
	if err != nil {
		return 0, fmt.Errorf("failed to advance counter %s: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit counter allocation: %w", err)
	}
	return value, nil
}

// Current returns the next value a counter would hand out.
func (r *CounterRepository) Current(ctx context.Context, name string) (int64, error) {
	var value int64
	err := r.db.QueryRowContext(ctx, `SELECT value FROM counters WHERE name = ?`, name).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, repository.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read counter %s: %w", name, err)
	}
	return value, nil
}

// Set forces a counter's next value. Used by snapshot import only.
func (r *CounterRepository) Set(ctx context.Context, name string, next int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO counters (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		name, next)
	if err != nil {
		return fmt.Errorf("failed to set counter %s: %w", name, err)
	}
	return nil
}
