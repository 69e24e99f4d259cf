package quality

import (
	"context"

	"github.com/aasia/cladtrack/internal/domain/spool"
)

// Repository provides persistence for routing operations.
type Repository interface {
	Create(ctx context.Context, op *Operation) error
	CreateBatch(ctx context.Context, ops []*Operation) error
	Get(ctx context.Context, id string) (*Operation, error)
	Update(ctx context.Context, op *Operation) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opts ListOptions) ([]Operation, error)
}

// ListOptions filters operation listings.
type ListOptions struct {
	TargetID string
	Statuses []OpStatus
}

// SpoolRepository resolves the spool a routing targets.
type SpoolRepository interface {
	Get(ctx context.Context, id string) (*spool.Spool, error)
}
