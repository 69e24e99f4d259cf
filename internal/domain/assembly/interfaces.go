package assembly

import (
	"context"

	"github.com/aasia/cladtrack/internal/domain/spool"
)

// Repository provides persistence for assembly joints.
type Repository interface {
	Create(ctx context.Context, joint *Joint) error
	Get(ctx context.Context, id string) (*Joint, error)
	Update(ctx context.Context, joint *Joint) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Joint, error)
}

// SpoolResolver resolves a SAGE code to its cladded spool.
type SpoolResolver interface {
	GetBySageCode(ctx context.Context, sageCode string) (*spool.Spool, error)
}
