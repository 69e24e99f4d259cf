package quality

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aasia/cladtrack/internal/domain/activity"
	"github.com/aasia/cladtrack/internal/ident"
	"github.com/aasia/cladtrack/internal/repository"
)

// ActivityRepository logs sign-off events.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}

// Clock supplies sign-off timestamps. Injectable for tests.
type Clock func() time.Time

// Service manages inspection routings and sign-offs.
type Service struct {
	repo       Repository
	spools     SpoolRepository
	tokens     ident.TokenSource
	activities ActivityRepository
	now        Clock
	logger     *slog.Logger
}

// NewService creates a new quality service.
func NewService(repo Repository, spools SpoolRepository, tokens ident.TokenSource, activities ActivityRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:       repo,
		spools:     spools,
		tokens:     tokens,
		activities: activities,
		now:        time.Now,
		logger:     logger,
	}
}

// WithClock overrides the timestamp source. Tests only.
func (s *Service) WithClock(clock Clock) *Service {
	s.now = clock
	return s
}

// EnsureRouting instantiates the category routing template for a spool the
// first time it is pulled up for inspection. The spool must carry a SAGE code.
// Calling again once operations exist returns the existing routing.
func (s *Service) EnsureRouting(ctx context.Context, spoolID string) ([]Operation, error) {
	sp, err := s.spools.Get(ctx, spoolID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: spool %s", ErrInvalidInput, spoolID)
		}
		return nil, fmt.Errorf("getting spool: %w", err)
	}
	if sp.SageCode == "" {
		return nil, ErrSpoolNotCladded
	}

	existing, err := s.repo.List(ctx, ListOptions{TargetID: spoolID})
	if err != nil {
		return nil, fmt.Errorf("listing routing: %w", err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	now := s.now()
	tpl := templateFor(sp.ItemCategory)
	ops := make([]*Operation, 0, len(tpl))
	for i, step := range tpl {
		ops = append(ops, &Operation{
			ID:          ident.Prefixed("JIS", s.tokens),
			TargetID:    spoolID,
			Category:    CategoryCladding,
			ProcessName: step.op,
			Description: step.desc,
			Sequence:    i + 1,
			Status:      OpPending,
			CreatedAt:   now,
		})
	}
	if err := s.repo.CreateBatch(ctx, ops); err != nil {
		return nil, fmt.Errorf("creating routing: %w", err)
	}
	s.logger.Info("routing instantiated", "spool", spoolID, "category", sp.ItemCategory, "operations", len(ops))

	out := make([]Operation, 0, len(ops))
	for _, op := range ops {
		out = append(out, *op)
	}
	return out, nil
}

// RecordAction signs off one routing operation. Every action requires an
// inspector ID; START stamps the start date, FINISH and SKIP the finish date.
func (s *Service) RecordAction(ctx context.Context, opID string, action Action, inspectorID string) (*Operation, error) {
	if inspectorID == "" {
		return nil, ErrInspectorRequired
	}
	op, err := s.Get(ctx, opID)
	if err != nil {
		return nil, err
	}

	stamp := s.now().UTC().Format(time.RFC3339)
	switch action {
	case ActionStart:
		op.Status = OpActive
		op.StartDate = stamp
	case ActionFinish:
		op.Status = OpCompleted
		op.FinishDate = stamp
	case ActionSkip:
		op.Status = OpSkipped
		op.FinishDate = stamp
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
	op.InspectorID = inspectorID

	if err := s.repo.Update(ctx, op); err != nil {
		return nil, fmt.Errorf("recording sign-off: %w", err)
	}
	if s.activities != nil {
		if err := s.activities.Log(ctx, &activity.Entry{
			EntityID:     op.TargetID,
			ActivityType: activity.TypeJISAction,
			Summary:      fmt.Sprintf("%s %s by %s", op.ProcessName, action, inspectorID),
		}); err != nil {
			s.logger.Warn("failed to log activity", "error", err)
		}
	}
	return op, nil
}

// AddOperationRequest defines a custom operation appended to a routing.
type AddOperationRequest struct {
	TargetID    string
	ProcessName string
	Description string
	Sequence    int
}

// AddOperation appends a custom operation outside the standard template.
func (s *Service) AddOperation(ctx context.Context, req AddOperationRequest) (*Operation, error) {
	if req.TargetID == "" || req.ProcessName == "" {
		return nil, fmt.Errorf("%w: target and process name are required", ErrInvalidInput)
	}
	op := &Operation{
		ID:          ident.Prefixed("JIS", s.tokens),
		TargetID:    req.TargetID,
		Category:    CategoryCladding,
		ProcessName: req.ProcessName,
		Description: req.Description,
		Sequence:    req.Sequence,
		Status:      OpPending,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, op); err != nil {
		return nil, fmt.Errorf("adding operation: %w", err)
	}
	return op, nil
}

// UpdateOperationRequest defines operation edits. Nil fields are left
// unchanged.
type UpdateOperationRequest struct {
	ID          string
	ProcessName *string
	Description *string
	Sequence    *int
}

// UpdateOperation edits an operation's descriptive fields. Status moves only
// through RecordAction.
func (s *Service) UpdateOperation(ctx context.Context, req UpdateOperationRequest) (*Operation, error) {
	op, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if req.ProcessName != nil {
		op.ProcessName = *req.ProcessName
	}
	if req.Description != nil {
		op.Description = *req.Description
	}
	if req.Sequence != nil {
		op.Sequence = *req.Sequence
	}
	if err := s.repo.Update(ctx, op); err != nil {
		return nil, fmt.Errorf("updating operation: %w", err)
	}
	return op, nil
}

// DeleteOperation removes one operation from a routing.
func (s *Service) DeleteOperation(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting operation: %w", err)
	}
	return nil
}

// Get fetches an operation by ID.
func (s *Service) Get(ctx context.Context, id string) (*Operation, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	op, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOperationNotFound
		}
		return nil, fmt.Errorf("getting operation: %w", err)
	}
	return op, nil
}

// List returns operations matching the options.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Operation, error) {
	return s.repo.List(ctx, opts)
}
