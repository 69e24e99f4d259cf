package spool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aasia/cladtrack/internal/domain/activity"
	"github.com/aasia/cladtrack/internal/ident"
	"github.com/aasia/cladtrack/internal/repository"
)

// Service handles spool tracking and the cladding state transition.
type Service struct {
	repo       Repository
	tokens     ident.TokenSource
	activities ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new spool service.
func NewService(repo Repository, tokens ident.TokenSource, activities ActivityRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, tokens: tokens, activities: activities, logger: logger}
}

// UpdateRequest carries the shop-floor editable fields. Nil fields are left
// unchanged.
type UpdateRequest struct {
	ID                 string
	HeatNumber         *string
	CuttingSheetNumber *string
	MTRNumber          *string
	MINNumber          *string
	Description        *string
}

// CompleteCladding mints a SAGE code for a spool and moves it to
// Cladded - Ready for Assembly. Re-triggering on an already cladded spool is
// allowed and replaces the SAGE code with a fresh one.
func (s *Service) CompleteCladding(ctx context.Context, spoolID string) (string, error) {
	sp, err := s.Get(ctx, spoolID)
	if err != nil {
		return "", err
	}

	sageCode := ident.SageCode(s.tokens)
	sp.SageCode = sageCode
	sp.Status = StatusCladdedReadyForAssembly

	if err := s.repo.Update(ctx, sp); err != nil {
		return "", fmt.Errorf("updating spool: %w", err)
	}

	if s.activities != nil {
		if err := s.activities.Log(ctx, &activity.Entry{
			EntityID:     sp.ID,
			ActivityType: activity.TypeCladdingComplete,
			Summary:      fmt.Sprintf("cladding complete on %s, SAGE %s", sp.ID, sageCode),
		}); err != nil {
			s.logger.Warn("failed to log activity", "error", err)
		}
	}

	s.logger.Info("cladding complete", "spool", sp.ID, "sage", sageCode)
	return sageCode, nil
}

// Update applies partial edits to a spool's traceability fields.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Spool, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}

	current, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.HeatNumber != nil {
		updated.HeatNumber = *req.HeatNumber
	}
	if req.CuttingSheetNumber != nil {
		updated.CuttingSheetNumber = *req.CuttingSheetNumber
	}
	if req.MTRNumber != nil {
		updated.MTRNumber = *req.MTRNumber
	}
	if req.MINNumber != nil {
		updated.MINNumber = *req.MINNumber
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("updating spool: %w", err)
	}
	return &updated, nil
}

// Delete removes a single spool.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting spool: %w", err)
	}
	return nil
}

// Get fetches a spool by ID.
func (s *Service) Get(ctx context.Context, id string) (*Spool, error) {
	sp, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSpoolNotFound
		}
		return nil, fmt.Errorf("getting spool: %w", err)
	}
	return sp, nil
}

// List returns spools matching the options.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Spool, error) {
	return s.repo.List(ctx, opts)
}
