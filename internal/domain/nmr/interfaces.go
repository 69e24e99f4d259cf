package nmr

import "context"

// Repository provides persistence for NMR documents. Document writes replace
// the line-item set and revision history wholesale.
type Repository interface {
	Create(ctx context.Context, doc *Document) error
	Get(ctx context.Context, id string) (*Document, error)
	Update(ctx context.Context, doc *Document) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opts ListOptions) ([]Document, error)

	// DrawingNumberExists reports whether any document other than excludeID
	// uses the normalized drawing number.
	DrawingNumberExists(ctx context.Context, normalized, excludeID string) (bool, error)
	// LinkedLineItems returns the subset of lineItemIDs already linked to a
	// document other than excludeID.
	LinkedLineItems(ctx context.Context, lineItemIDs []string, excludeID string) ([]string, error)
}

// ListOptions filters document listings.
type ListOptions struct {
	ProjectID string
	POID      string
	Statuses  []Status
}

// MTOPurger removes material take-offs when a document is deleted.
type MTOPurger interface {
	DeleteByNMR(ctx context.Context, nmrID string) error
}
