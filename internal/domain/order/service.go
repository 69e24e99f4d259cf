package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aasia/cladtrack/internal/domain/activity"
	"github.com/aasia/cladtrack/internal/domain/spool"
	"github.com/aasia/cladtrack/internal/ident"
	"github.com/aasia/cladtrack/internal/repository"
	"github.com/shopspring/decimal"
)

// LineItemCounterName is the counters-table key for the global line-item
// number, shared across every PO and project.
const LineItemCounterName = "po_line_item"

// ActivityRepository logs order events.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}

// Service handles purchase orders, line items and spool derivation.
type Service struct {
	repo       Repository
	projects   ProjectRepository
	counters   CounterRepository
	spools     SpoolPurger
	mtos       MTOPurger
	tokens     ident.TokenSource
	activities ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new order service.
func NewService(
	repo Repository,
	projects ProjectRepository,
	counters CounterRepository,
	spools SpoolPurger,
	mtos MTOPurger,
	tokens ident.TokenSource,
	activities ActivityRepository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:       repo,
		projects:   projects,
		counters:   counters,
		spools:     spools,
		mtos:       mtos,
		tokens:     tokens,
		activities: activities,
		logger:     logger,
	}
}

// CreatePORequest defines purchase-order creation inputs.
type CreatePORequest struct {
	ProjectID       string
	PONumber        string
	PODate          string
	PORev           string
	POTags          []string
	BankAssignments []string
	Contacts        []Contact
}

// UpdatePORequest defines purchase-order update inputs. Nil fields are left
// unchanged.
type UpdatePORequest struct {
	ID              string
	PONumber        *string
	PODate          *string
	PORev           *string
	POTags          []string
	BankAssignments []string
	Contacts        []Contact
}

// LineItemRequest is one row of a line-item batch, the shape both the manual
// form and the spreadsheet importer produce.
type LineItemRequest struct {
	POID                   string
	ProjectID              string
	ItemCategory           string
	CustomerMaterialNumber string
	Description            string
	Quantity               int
	PipeLength             float64
	UOM                    string
	DeliveryDate           string
	DrawingNo              string
	DrawingRev             string
	Size                   string
	WT                     string
	MaterialGrade          string
	CRAMaterial            string
	OverlayThickness       string
	HydrotestPressure      string
	PaintingSpec           string
	WPSNumber              string
	RefITPNumber           string
	UnitPrice              decimal.Decimal
	Currency               string
}

// UpdateLineItemRequest defines line-item update inputs. Nil fields are left
// unchanged. The line-item number and the derived spool set are immutable:
// edits never regenerate spools.
type UpdateLineItemRequest struct {
	ID                     string
	ItemCategory           *string
	CustomerMaterialNumber *string
	Description            *string
	Quantity               *int
	PipeLength             *float64
	UOM                    *string
	DeliveryDate           *string
	DrawingNo              *string
	DrawingRev             *string
	Size                   *string
	WT                     *string
	MaterialGrade          *string
	CRAMaterial            *string
	OverlayThickness       *string
	HydrotestPressure      *string
	PaintingSpec           *string
	WPSNumber              *string
	RefITPNumber           *string
	UnitPrice              *decimal.Decimal
	Currency               *string
}

// BatchResult is what a line-item batch materializes.
type BatchResult struct {
	LineItems []LineItem    `json:"lineItems"`
	Spools    []spool.Spool `json:"spools"`
}

// CreatePurchaseOrder stores a new PO header under an existing project.
func (s *Service) CreatePurchaseOrder(ctx context.Context, req CreatePORequest) (*PurchaseOrder, error) {
	if strings.TrimSpace(req.PONumber) == "" || req.ProjectID == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.projects.Get(ctx, req.ProjectID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("resolving project: %w", err)
	}

	po := &PurchaseOrder{
		ID:              ident.Prefixed("PO", s.tokens),
		ProjectID:       req.ProjectID,
		PONumber:        req.PONumber,
		PODate:          req.PODate,
		PORev:           req.PORev,
		POTags:          req.POTags,
		BankAssignments: req.BankAssignments,
		Contacts:        req.Contacts,
		CreatedAt:       time.Now(),
	}
	if err := s.repo.CreatePurchaseOrder(ctx, po); err != nil {
		return nil, fmt.Errorf("creating purchase order: %w", err)
	}
	return po, nil
}

// UpdatePurchaseOrder applies partial changes to a PO header.
func (s *Service) UpdatePurchaseOrder(ctx context.Context, req UpdatePORequest) (*PurchaseOrder, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}
	current, err := s.GetPurchaseOrder(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.PONumber != nil {
		updated.PONumber = *req.PONumber
	}
	if req.PODate != nil {
		updated.PODate = *req.PODate
	}
	if req.PORev != nil {
		updated.PORev = *req.PORev
	}
	if req.POTags != nil {
		updated.POTags = req.POTags
	}
	if req.BankAssignments != nil {
		updated.BankAssignments = req.BankAssignments
	}
	if req.Contacts != nil {
		updated.Contacts = req.Contacts
	}

	if err := s.repo.UpdatePurchaseOrder(ctx, &updated); err != nil {
		return nil, fmt.Errorf("updating purchase order: %w", err)
	}
	return &updated, nil
}

// DeletePurchaseOrder removes the PO and cascades to its line items, spools
// and MTOs.
func (s *Service) DeletePurchaseOrder(ctx context.Context, id string) error {
	if _, err := s.GetPurchaseOrder(ctx, id); err != nil {
		return err
	}
	if err := s.spools.DeleteByPO(ctx, id); err != nil {
		return fmt.Errorf("deleting PO spools: %w", err)
	}
	if err := s.mtos.DeleteByPO(ctx, id); err != nil {
		return fmt.Errorf("deleting PO MTOs: %w", err)
	}
	if err := s.repo.DeleteLineItemsByPO(ctx, id); err != nil {
		return fmt.Errorf("deleting PO line items: %w", err)
	}
	if err := s.repo.DeletePurchaseOrder(ctx, id); err != nil {
		return fmt.Errorf("deleting purchase order: %w", err)
	}
	return nil
}

// GetPurchaseOrder fetches a PO by ID.
func (s *Service) GetPurchaseOrder(ctx context.Context, id string) (*PurchaseOrder, error) {
	po, err := s.repo.GetPurchaseOrder(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPurchaseOrderNotFound
		}
		return nil, fmt.Errorf("getting purchase order: %w", err)
	}
	return po, nil
}

// ListPurchaseOrders returns POs, optionally scoped to a project.
func (s *Service) ListPurchaseOrders(ctx context.Context, projectID string) ([]PurchaseOrder, error) {
	return s.repo.ListPurchaseOrders(ctx, projectID)
}

// CreateLineItems materializes a batch of line items and their derived
// spools in one atomic step. The global line-item counter advances once per
// row in input order; numbers burned by a failed batch are never reissued.
func (s *Service) CreateLineItems(ctx context.Context, reqs []LineItemRequest) (*BatchResult, error) {
	if len(reqs) == 0 {
		return nil, ErrEmptyBatch
	}
	for _, req := range reqs {
		if req.POID == "" || req.ProjectID == "" || strings.TrimSpace(req.ItemCategory) == "" {
			return nil, ErrInvalidInput
		}
		if _, err := s.projects.Get(ctx, req.ProjectID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrProjectNotFound
			}
			return nil, fmt.Errorf("resolving project: %w", err)
		}
	}

	first, err := s.counters.Allocate(ctx, LineItemCounterName, len(reqs))
	if err != nil {
		return nil, fmt.Errorf("allocating line item numbers: %w", err)
	}

	now := time.Now()
	items := make([]*LineItem, 0, len(reqs))
	var spools []*spool.Spool
	for i, req := range reqs {
		number := first + int64(i)
		li := &LineItem{
			ID:                     ident.LineItemID(number),
			Number:                 number,
			POID:                   req.POID,
			ProjectID:              req.ProjectID,
			ItemCategory:           req.ItemCategory,
			CustomerMaterialNumber: req.CustomerMaterialNumber,
			Description:            req.Description,
			Quantity:               req.Quantity,
			PipeLength:             req.PipeLength,
			UOM:                    req.UOM,
			DeliveryDate:           req.DeliveryDate,
			DrawingNo:              req.DrawingNo,
			DrawingRev:             req.DrawingRev,
			Size:                   req.Size,
			WT:                     req.WT,
			MaterialGrade:          req.MaterialGrade,
			CRAMaterial:            req.CRAMaterial,
			OverlayThickness:       req.OverlayThickness,
			HydrotestPressure:      req.HydrotestPressure,
			PaintingSpec:           req.PaintingSpec,
			WPSNumber:              req.WPSNumber,
			RefITPNumber:           req.RefITPNumber,
			UnitPrice:              req.UnitPrice,
			Currency:               req.Currency,
			CreatedAt:              now,
		}
		items = append(items, li)
		spools = append(spools, DeriveSpools(li, now)...)
	}

	if err := s.repo.CreateLineItemBatch(ctx, items, spools); err != nil {
		return nil, fmt.Errorf("creating line item batch: %w", err)
	}

	if s.activities != nil {
		if err := s.activities.Log(ctx, &activity.Entry{
			EntityID:     items[0].POID,
			ActivityType: activity.TypeLineItemsCreated,
			Summary:      fmt.Sprintf("%d line items created, %d spools derived", len(items), len(spools)),
		}); err != nil {
			s.logger.Warn("failed to log activity", "error", err)
		}
	}
	s.logger.Info("line item batch created", "items", len(items), "spools", len(spools))

	result := &BatchResult{
		LineItems: make([]LineItem, 0, len(items)),
		Spools:    make([]spool.Spool, 0, len(spools)),
	}
	for _, li := range items {
		result.LineItems = append(result.LineItems, *li)
	}
	for _, sp := range spools {
		result.Spools = append(result.Spools, *sp)
	}
	return result, nil
}

// UpdateLineItem applies partial edits. The spool population derived at
// creation is left untouched even when quantity or pipe length change; the
// calling surface is expected to tell the user so.
func (s *Service) UpdateLineItem(ctx context.Context, req UpdateLineItemRequest) (*LineItem, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}
	current, err := s.GetLineItem(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.ItemCategory != nil {
		updated.ItemCategory = *req.ItemCategory
	}
	if req.CustomerMaterialNumber != nil {
		updated.CustomerMaterialNumber = *req.CustomerMaterialNumber
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Quantity != nil {
		updated.Quantity = *req.Quantity
	}
	if req.PipeLength != nil {
		updated.PipeLength = *req.PipeLength
	}
	if req.UOM != nil {
		updated.UOM = *req.UOM
	}
	if req.DeliveryDate != nil {
		updated.DeliveryDate = *req.DeliveryDate
	}
	if req.DrawingNo != nil {
		updated.DrawingNo = *req.DrawingNo
	}
	if req.DrawingRev != nil {
		updated.DrawingRev = *req.DrawingRev
	}
	if req.Size != nil {
		updated.Size = *req.Size
	}
	if req.WT != nil {
		updated.WT = *req.WT
	}
	if req.MaterialGrade != nil {
		updated.MaterialGrade = *req.MaterialGrade
	}
	if req.CRAMaterial != nil {
		updated.CRAMaterial = *req.CRAMaterial
	}
	if req.OverlayThickness != nil {
		updated.OverlayThickness = *req.OverlayThickness
	}
	if req.HydrotestPressure != nil {
		updated.HydrotestPressure = *req.HydrotestPressure
	}
	if req.PaintingSpec != nil {
		updated.PaintingSpec = *req.PaintingSpec
	}
	if req.WPSNumber != nil {
		updated.WPSNumber = *req.WPSNumber
	}
	if req.RefITPNumber != nil {
		updated.RefITPNumber = *req.RefITPNumber
	}
	if req.UnitPrice != nil {
		updated.UnitPrice = *req.UnitPrice
	}
	if req.Currency != nil {
		updated.Currency = *req.Currency
	}

	if err := s.repo.UpdateLineItem(ctx, &updated); err != nil {
		return nil, fmt.Errorf("updating line item: %w", err)
	}
	return &updated, nil
}

// DeleteLineItem removes one line item and only its spools.
func (s *Service) DeleteLineItem(ctx context.Context, id string) error {
	if _, err := s.GetLineItem(ctx, id); err != nil {
		return err
	}
	if err := s.spools.DeleteByLineItem(ctx, id); err != nil {
		return fmt.Errorf("deleting line item spools: %w", err)
	}
	if err := s.repo.DeleteLineItem(ctx, id); err != nil {
		return fmt.Errorf("deleting line item: %w", err)
	}
	return nil
}

// GetLineItem fetches a line item by ID.
func (s *Service) GetLineItem(ctx context.Context, id string) (*LineItem, error) {
	li, err := s.repo.GetLineItem(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLineItemNotFound
		}
		return nil, fmt.Errorf("getting line item: %w", err)
	}
	return li, nil
}

// ListLineItems returns line items matching the options.
func (s *Service) ListLineItems(ctx context.Context, opts ListLineItemsOptions) ([]LineItem, error) {
	return s.repo.ListLineItems(ctx, opts)
}
