package spool

import (
	"context"

	"github.com/aasia/cladtrack/internal/domain/activity"
)

// Repository provides persistence for spools. Batch insertion happens through
// the order repository so line items and their spools commit atomically.
type Repository interface {
	Get(ctx context.Context, id string) (*Spool, error)
	Update(ctx context.Context, sp *Spool) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opts ListOptions) ([]Spool, error)
	GetBySageCode(ctx context.Context, sageCode string) (*Spool, error)
}

// ListOptions filters spool listings.
type ListOptions struct {
	ProjectID  string
	POID       string
	LineItemID string
	Status     Status
	// SageCodedOnly selects spools eligible as assembly components and for
	// quality routing (non-empty SAGE code).
	SageCodedOnly bool
}

// ActivityRepository logs spool state changes.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}
