package masterdata

import "context"

// Repository provides persistence for all four master data kinds.
type Repository interface {
	CreateCustomer(ctx context.Context, c *Customer) error
	UpdateCustomer(ctx context.Context, c *Customer) error
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	ListCustomers(ctx context.Context) ([]Customer, error)

	CreateVendor(ctx context.Context, v *Vendor) error
	UpdateVendor(ctx context.Context, v *Vendor) error
	GetVendor(ctx context.Context, id string) (*Vendor, error)
	DeleteVendor(ctx context.Context, id string) error
	ListVendors(ctx context.Context) ([]Vendor, error)

	CreateProduct(ctx context.Context, p *Product) error
	UpdateProduct(ctx context.Context, p *Product) error
	GetProduct(ctx context.Context, id string) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context) ([]Product, error)

	CreateWorkstation(ctx context.Context, w *Workstation) error
	UpdateWorkstation(ctx context.Context, w *Workstation) error
	GetWorkstation(ctx context.Context, id string) (*Workstation, error)
	DeleteWorkstation(ctx context.Context, id string) error
	ListWorkstations(ctx context.Context) ([]Workstation, error)
}
