package project

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

// CounterName is the counters-table key for project IDs.
const CounterName = "project"

// Service handles project operations.
type Service struct {
	repo     Repository
	counters CounterRepository
	orders   OrderPurger
	spools   SpoolPurger
	mtos     MTOPurger
	logger   *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, counters CounterRepository, orders OrderPurger, spools SpoolPurger, mtos MTOPurger, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:     repo,
		counters: counters,
		orders:   orders,
		spools:   spools,
		mtos:     mtos,
		logger:   logger,
	}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Name        string
	ProjectType string
	Date        string
	Plant       string
	Customer    string
	EndUser     string
}

// UpdateRequest defines project update inputs. Nil fields are left unchanged.
type UpdateRequest struct {
	ID          string
	Name        *string
	ProjectType *string
	Date        *string
	Plant       *string
	Customer    *string
	EndUser     *string
}

// Create allocates the next sequential project ID and stores the project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	counter, err := s.counters.Allocate(ctx, CounterName, 1)
	if err != nil {
		return nil, fmt.Errorf("allocating project counter: %w", err)
	}

	proj := &Project{
		ID:          ident.ProjectID(counter),
		Name:        req.Name,
		ProjectType: req.ProjectType,
		Date:        req.Date,
		Plant:       req.Plant,
		Customer:    req.Customer,
		EndUser:     req.EndUser,
		ClientName:  DeriveClientName(req.Customer, req.EndUser),
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.logger.Info("project created", "id", proj.ID, "client", proj.ClientName)
	return proj, nil
}

// Update applies partial changes. Client name is re-derived only when both
// customer and end user are present, matching the planner form behavior.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Project, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}

	current, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.ProjectType != nil {
		updated.ProjectType = *req.ProjectType
	}
	if req.Date != nil {
		updated.Date = *req.Date
	}
	if req.Plant != nil {
		updated.Plant = *req.Plant
	}
	if req.Customer != nil {
		updated.Customer = *req.Customer
	}
	if req.EndUser != nil {
		updated.EndUser = *req.EndUser
	}
	if updated.Customer != "" && updated.EndUser != "" {
		updated.ClientName = DeriveClientName(updated.Customer, updated.EndUser)
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}
	return &updated, nil
}

// Delete removes the project and cascades to its purchase orders, line items,
// spools and MTOs. The project counter is not decremented.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.spools.DeleteByProject(ctx, id); err != nil {
		return fmt.Errorf("deleting project spools: %w", err)
	}
	if err := s.mtos.DeleteByProject(ctx, id); err != nil {
		return fmt.Errorf("deleting project MTOs: %w", err)
	}
	if err := s.orders.DeleteByProject(ctx, id); err != nil {
		return fmt.Errorf("deleting project orders: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	s.logger.Info("project deleted", "id", id)
	return nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// List returns all projects.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}
