package mto

import "context"

// Repository provides persistence for MTOs. The bulk deletes back the cascade
// paths: project and PO deletion, and NMR document deletion.
type Repository interface {
	Create(ctx context.Context, m *MTO) error
	Get(ctx context.Context, id string) (*MTO, error)
	Update(ctx context.Context, m *MTO) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opts ListOptions) ([]MTO, error)
	DeleteByProject(ctx context.Context, projectID string) error
	DeleteByPO(ctx context.Context, poID string) error
	DeleteByNMR(ctx context.Context, nmrID string) error
}

// ListOptions filters MTO listings.
type ListOptions struct {
	ProjectID string
	POID      string
	NMRID     string
}
