package mto

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aasia/cladtrack/internal/ident"
	"github.com/aasia/cladtrack/internal/repository"
)

// Service manages material take-offs.
type Service struct {
	repo   Repository
	tokens ident.TokenSource
	logger *slog.Logger
}

// NewService creates a new MTO service.
func NewService(repo Repository, tokens ident.TokenSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, tokens: tokens, logger: logger}
}

// CreateRequest defines MTO creation inputs. ProjectID is the only required
// reference; PO and NMR links are optional.
type CreateRequest struct {
	Number            string
	ProjectID         string
	POID              string
	NMRDocumentID     string
	LineItemMaterials map[string]string
}

// UpdateRequest defines MTO edits. Nil fields are left unchanged; a non-nil
// LineItemMaterials replaces the whole map.
type UpdateRequest struct {
	ID                string
	Number            *string
	LineItemMaterials map[string]string
}

// Create stores a new MTO under an existing project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*MTO, error) {
	if req.ProjectID == "" {
		return nil, fmt.Errorf("%w: project is required", ErrInvalidInput)
	}
	m := &MTO{
		ID:                ident.Prefixed("MTO", s.tokens),
		Number:            req.Number,
		ProjectID:         req.ProjectID,
		POID:              req.POID,
		NMRDocumentID:     req.NMRDocumentID,
		LineItemMaterials: req.LineItemMaterials,
		CreatedAt:         time.Now(),
	}
	if m.LineItemMaterials == nil {
		m.LineItemMaterials = map[string]string{}
	}
	if err := s.repo.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("creating MTO: %w", err)
	}
	return m, nil
}

// Update applies partial edits.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*MTO, error) {
	current, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	updated := *current
	if req.Number != nil {
		updated.Number = *req.Number
	}
	if req.LineItemMaterials != nil {
		updated.LineItemMaterials = req.LineItemMaterials
	}
	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("updating MTO: %w", err)
	}
	return &updated, nil
}

// Delete removes an MTO.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting MTO: %w", err)
	}
	return nil
}

// Get fetches an MTO by ID.
func (s *Service) Get(ctx context.Context, id string) (*MTO, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMTONotFound
		}
		return nil, fmt.Errorf("getting MTO: %w", err)
	}
	return m, nil
}

// List returns MTOs matching the options.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]MTO, error) {
	return s.repo.List(ctx, opts)
}
