package assembly

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aasia/cladtrack/internal/ident"
	"github.com/aasia/cladtrack/internal/repository"
)

// Service manages the assembly joint registry.
type Service struct {
	repo   Repository
	spools SpoolResolver
	tokens ident.TokenSource
	logger *slog.Logger
}

// NewService creates a new assembly service.
func NewService(repo Repository, spools SpoolResolver, tokens ident.TokenSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, spools: spools, tokens: tokens, logger: logger}
}

// CreateRequest defines joint creation inputs.
type CreateRequest struct {
	Component1 string
	Component2 string
	Size       string
	WT         string
	Sequence   string
}

// UpdateRequest defines joint edits. Nil fields are left unchanged.
type UpdateRequest struct {
	ID         string
	Component1 *string
	Component2 *string
	Size       *string
	WT         *string
	Sequence   *string
}

// Create validates both components and stores the joint. Each component must
// be a distinct SAGE code resolving to a cladded spool.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Joint, error) {
	if req.Component1 == "" || req.Component2 == "" {
		return nil, fmt.Errorf("%w: both components are required", ErrInvalidInput)
	}
	joint := &Joint{
		ID:         ident.Prefixed("AJ", s.tokens),
		Component1: req.Component1,
		Component2: req.Component2,
		Size:       req.Size,
		WT:         req.WT,
		Sequence:   req.Sequence,
		CreatedAt:  time.Now(),
	}
	if err := s.validateComponents(ctx, joint); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, joint); err != nil {
		return nil, fmt.Errorf("creating assembly joint: %w", err)
	}
	s.logger.Info("assembly joint created", "id", joint.ID,
		"component1", joint.Component1, "component2", joint.Component2)
	return joint, nil
}

// Update applies partial edits, re-validating components when either changes.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Joint, error) {
	current, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Component1 != nil {
		updated.Component1 = *req.Component1
	}
	if req.Component2 != nil {
		updated.Component2 = *req.Component2
	}
	if req.Size != nil {
		updated.Size = *req.Size
	}
	if req.WT != nil {
		updated.WT = *req.WT
	}
	if req.Sequence != nil {
		updated.Sequence = *req.Sequence
	}

	if req.Component1 != nil || req.Component2 != nil {
		if err := s.validateComponents(ctx, &updated); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("updating assembly joint: %w", err)
	}
	return &updated, nil
}

// Delete removes a joint.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting assembly joint: %w", err)
	}
	return nil
}

// Get fetches a joint by ID.
func (s *Service) Get(ctx context.Context, id string) (*Joint, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	joint, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrJointNotFound
		}
		return nil, fmt.Errorf("getting assembly joint: %w", err)
	}
	return joint, nil
}

// List returns all joints.
func (s *Service) List(ctx context.Context) ([]Joint, error) {
	return s.repo.List(ctx)
}

func (s *Service) validateComponents(ctx context.Context, joint *Joint) error {
	if joint.Component1 == joint.Component2 {
		return ErrSameComponent
	}
	for _, code := range []string{joint.Component1, joint.Component2} {
		if _, err := s.spools.GetBySageCode(ctx, code); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: %s", ErrComponentNotFound, code)
			}
			return fmt.Errorf("resolving component %s: %w", code, err)
		}
	}
	return nil
}
