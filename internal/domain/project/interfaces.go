package project

import "context"

// Repository provides persistence for projects.
type Repository interface {
	Create(ctx context.Context, proj *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	Update(ctx context.Context, proj *Project) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Project, error)
}

// CounterRepository allocates sequential identifier ranges.
type CounterRepository interface {
	Allocate(ctx context.Context, name string, n int) (int64, error)
}

// OrderPurger removes purchase orders and line items when a project is deleted.
type OrderPurger interface {
	DeleteByProject(ctx context.Context, projectID string) error
}

// SpoolPurger removes spools when a project is deleted.
type SpoolPurger interface {
	DeleteByProject(ctx context.Context, projectID string) error
}

// MTOPurger removes material take-offs when a project is deleted.
type MTOPurger interface {
	DeleteByProject(ctx context.Context, projectID string) error
}
