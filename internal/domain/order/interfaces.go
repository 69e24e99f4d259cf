package order

import (
	"context"

	"github.com/aasia/cladtrack/internal/domain/project"
	"github.com/aasia/cladtrack/internal/domain/spool"
)

// Repository provides persistence for purchase orders and line items.
// CreateLineItemBatch must insert line items and their derived spools in one
// transaction so a batch either fully materializes or not at all.
type Repository interface {
	CreatePurchaseOrder(ctx context.Context, po *PurchaseOrder) error
	GetPurchaseOrder(ctx context.Context, id string) (*PurchaseOrder, error)
	UpdatePurchaseOrder(ctx context.Context, po *PurchaseOrder) error
	DeletePurchaseOrder(ctx context.Context, id string) error
	ListPurchaseOrders(ctx context.Context, projectID string) ([]PurchaseOrder, error)

	CreateLineItemBatch(ctx context.Context, items []*LineItem, spools []*spool.Spool) error
	GetLineItem(ctx context.Context, id string) (*LineItem, error)
	UpdateLineItem(ctx context.Context, li *LineItem) error
	DeleteLineItem(ctx context.Context, id string) error
	ListLineItems(ctx context.Context, opts ListLineItemsOptions) ([]LineItem, error)
	DeleteLineItemsByPO(ctx context.Context, poID string) error
}

// ListLineItemsOptions filters line-item listings.
type ListLineItemsOptions struct {
	ProjectID string
	POID      string
}

// ProjectRepository resolves the owning project during creation.
type ProjectRepository interface {
	Get(ctx context.Context, id string) (*project.Project, error)
}

// CounterRepository allocates sequential line-item numbers.
type CounterRepository interface {
	Allocate(ctx context.Context, name string, n int) (int64, error)
}

// SpoolPurger removes spools when line items or purchase orders go away.
type SpoolPurger interface {
	DeleteByLineItem(ctx context.Context, lineItemID string) error
	DeleteByPO(ctx context.Context, poID string) error
}

// MTOPurger removes material take-offs when a purchase order is deleted.
type MTOPurger interface {
	DeleteByPO(ctx context.Context, poID string) error
}
