package masterdata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aasia/cladtrack/internal/ident"
	"github.com/aasia/cladtrack/internal/repository"
)

// Service manages master data CRUD. Records are upserted: an empty ID creates
// with a fresh prefixed token, a non-empty ID updates in place.
type Service struct {
	repo   Repository
	tokens ident.TokenSource
	logger *slog.Logger
}

// NewService creates a new master data service.
func NewService(repo Repository, tokens ident.TokenSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, tokens: tokens, logger: logger}
}

// UpsertCustomer creates or updates a customer. Name is required.
func (s *Service) UpsertCustomer(ctx context.Context, c Customer) (*Customer, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if c.ID == "" {
		c.ID = ident.Prefixed("CUST", s.tokens)
		c.CreatedAt = time.Now()
		if err := s.repo.CreateCustomer(ctx, &c); err != nil {
			return nil, fmt.Errorf("creating customer: %w", err)
		}
		return &c, nil
	}
	current, err := s.repo.GetCustomer(ctx, c.ID)
	if err != nil {
		return nil, mapNotFound(err, "getting customer")
	}
	c.CreatedAt = current.CreatedAt
	if err := s.repo.UpdateCustomer(ctx, &c); err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}
	return &c, nil
}

// DeleteCustomer removes a customer.
func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	if err := s.repo.DeleteCustomer(ctx, id); err != nil {
		return mapNotFound(err, "deleting customer")
	}
	return nil
}

// ListCustomers returns all customers.
func (s *Service) ListCustomers(ctx context.Context) ([]Customer, error) {
	return s.repo.ListCustomers(ctx)
}

// UpsertVendor creates or updates a vendor. Name is required.
func (s *Service) UpsertVendor(ctx context.Context, v Vendor) (*Vendor, error) {
	if strings.TrimSpace(v.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if v.ID == "" {
		v.ID = ident.Prefixed("VEND", s.tokens)
		v.CreatedAt = time.Now()
		if err := s.repo.CreateVendor(ctx, &v); err != nil {
			return nil, fmt.Errorf("creating vendor: %w", err)
		}
		return &v, nil
	}
	current, err := s.repo.GetVendor(ctx, v.ID)
	if err != nil {
		return nil, mapNotFound(err, "getting vendor")
	}
	v.CreatedAt = current.CreatedAt
	if err := s.repo.UpdateVendor(ctx, &v); err != nil {
		return nil, fmt.Errorf("updating vendor: %w", err)
	}
	return &v, nil
}

// DeleteVendor removes a vendor.
func (s *Service) DeleteVendor(ctx context.Context, id string) error {
	if err := s.repo.DeleteVendor(ctx, id); err != nil {
		return mapNotFound(err, "deleting vendor")
	}
	return nil
}

// ListVendors returns all vendors.
func (s *Service) ListVendors(ctx context.Context) ([]Vendor, error) {
	return s.repo.ListVendors(ctx)
}

// UpsertProduct creates or updates a product. Code and name are required.
func (s *Service) UpsertProduct(ctx context.Context, p Product) (*Product, error) {
	if strings.TrimSpace(p.Code) == "" || strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("%w: code and name are required", ErrInvalidInput)
	}
	if p.ID == "" {
		p.ID = ident.Prefixed("PROD", s.tokens)
		p.CreatedAt = time.Now()
		if err := s.repo.CreateProduct(ctx, &p); err != nil {
			return nil, fmt.Errorf("creating product: %w", err)
		}
		return &p, nil
	}
	current, err := s.repo.GetProduct(ctx, p.ID)
	if err != nil {
		return nil, mapNotFound(err, "getting product")
	}
	p.CreatedAt = current.CreatedAt
	if err := s.repo.UpdateProduct(ctx, &p); err != nil {
		return nil, fmt.Errorf("updating product: %w", err)
	}
	return &p, nil
}

// DeleteProduct removes a product.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return mapNotFound(err, "deleting product")
	}
	return nil
}

// ListProducts returns all products.
func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.repo.ListProducts(ctx)
}

// UpsertWorkstation creates or updates a workstation. Name is required.
func (s *Service) UpsertWorkstation(ctx context.Context, w Workstation) (*Workstation, error) {
	if strings.TrimSpace(w.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if w.ID == "" {
		w.ID = ident.Prefixed("WS", s.tokens)
		w.CreatedAt = time.Now()
		if err := s.repo.CreateWorkstation(ctx, &w); err != nil {
			return nil, fmt.Errorf("creating workstation: %w", err)
		}
		return &w, nil
	}
	current, err := s.repo.GetWorkstation(ctx, w.ID)
	if err != nil {
		return nil, mapNotFound(err, "getting workstation")
	}
	w.CreatedAt = current.CreatedAt
	if err := s.repo.UpdateWorkstation(ctx, &w); err != nil {
		return nil, fmt.Errorf("updating workstation: %w", err)
	}
	return &w, nil
}

// DeleteWorkstation removes a workstation.
func (s *Service) DeleteWorkstation(ctx context.Context, id string) error {
	if err := s.repo.DeleteWorkstation(ctx, id); err != nil {
		return mapNotFound(err, "deleting workstation")
	}
	return nil
}

// ListWorkstations returns all workstations.
func (s *Service) ListWorkstations(ctx context.Context) ([]Workstation, error) {
	return s.repo.ListWorkstations(ctx)
}

func mapNotFound(err error, op string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
