package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/aasia/cladtrack/internal/domain/activity"
)

// ActivityRepository implements activity.Repository for SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log appends an activity entry
func (r *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_log (entity_id, activity_type, summary, details)
		VALUES (?, ?, ?, ?)
	`, entry.EntityID, string(entry.ActivityType), entry.Summary, entry.Details)
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get activity id: %w", err)
	}
	entry.ID = id
	return nil
}

// List returns activity entries, newest first
func (r *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	query := `
		SELECT id, entity_id, activity_type, summary, details, created_at
		FROM activity_log WHERE 1=1
	`
	args := []any{}
	if opts.EntityID != "" {
		query += ` AND entity_id = ?`
		args = append(args, opts.EntityID)
	}
	if len(opts.Types) > 0 {
		placeholders := make([]string, len(opts.Types))
		for i, t := range opts.Types {
			placeholders[i] = "?"
			args = append(args, string(t))
		}
		query += ` AND activity_type IN (` + strings.Join(placeholders, ", ") + `)`
	}
	query += ` ORDER BY id DESC`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var entry activity.Entry
		var activityType string
		if err := rows.Scan(&entry.ID, &entry.EntityID, &activityType, &entry.Summary,
			&entry.Details, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entry.ActivityType = activity.Type(activityType)
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}
	return entries, nil
}
