package nmr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aasia/cladtrack/internal/domain/activity"
	"github.com/aasia/cladtrack/internal/ident"
	"github.com/aasia/cladtrack/internal/repository"
)

// ActivityRepository logs NMR lifecycle events.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}

// Clock supplies the default submission/return date. Injectable for tests.
type Clock func() time.Time

// Service drives the NMR approval lifecycle.
type Service struct {
	repo       Repository
	mtos       MTOPurger
	tokens     ident.TokenSource
	activities ActivityRepository
	now        Clock
	logger     *slog.Logger
}

// NewService creates a new NMR service.
func NewService(repo Repository, mtos MTOPurger, tokens ident.TokenSource, activities ActivityRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:       repo,
		mtos:       mtos,
		tokens:     tokens,
		activities: activities,
		now:        time.Now,
		logger:     logger,
	}
}

// WithClock overrides the date source. Tests only.
func (s *Service) WithClock(clock Clock) *Service {
	s.now = clock
	return s
}

// CreateRequest defines document creation inputs.
type CreateRequest struct {
	ProjectID       string
	POID            string
	DrawingNumber   string
	DrawingRevision string
	DrawingTitle    string
	Spec            string
	Remarks         string
	LineItems       []LineItemRef
}

// UpdateRequest defines document edits. Nil fields are left unchanged; a
// non-nil LineItems replaces the whole selection.
type UpdateRequest struct {
	ID              string
	DrawingNumber   *string
	DrawingRevision *string
	DrawingTitle    *string
	Spec            *string
	Remarks         *string
	LineItems       []LineItemRef
}

// ResponseRequest carries a client review outcome.
type ResponseRequest struct {
	Code       string
	ReturnDate string
	Comment    string
}

// Create validates and stores a new document at revision "A" in DRAFT.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Document, error) {
	if strings.TrimSpace(req.DrawingNumber) == "" {
		return nil, fmt.Errorf("%w: drawing number is required", ErrInvalidInput)
	}
	if err := s.validateLineItems(ctx, req.LineItems, ""); err != nil {
		return nil, err
	}
	exists, err := s.repo.DrawingNumberExists(ctx, NormalizeDrawingNumber(req.DrawingNumber), "")
	if err != nil {
		return nil, fmt.Errorf("checking drawing number: %w", err)
	}
	if exists {
		return nil, ErrDuplicateDrawingNumber
	}

	doc := &Document{
		ID:              ident.Prefixed("NMR", s.tokens),
		ProjectID:       req.ProjectID,
		POID:            req.POID,
		DrawingNumber:   req.DrawingNumber,
		DrawingRevision: req.DrawingRevision,
		DrawingTitle:    req.DrawingTitle,
		Spec:            req.Spec,
		Remarks:         req.Remarks,
		LineItems:       req.LineItems,
		Revision:        "A",
		Status:          StatusDraft,
		RevisionHistory: []RevisionEntry{},
		CreatedAt:       s.now(),
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("creating NMR document: %w", err)
	}
	s.logger.Info("NMR document created", "id", doc.ID, "drawingNumber", doc.DrawingNumber)
	return doc, nil
}

// Update edits a non-locked document. Drawing-number uniqueness and line-item
// exclusivity are re-validated on every edit, not just at creation.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Document, error) {
	doc, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if doc.Locked() {
		return nil, ErrDocumentLocked
	}

	updated := *doc
	if req.DrawingNumber != nil {
		if strings.TrimSpace(*req.DrawingNumber) == "" {
			return nil, fmt.Errorf("%w: drawing number is required", ErrInvalidInput)
		}
		updated.DrawingNumber = *req.DrawingNumber
	}
	if req.DrawingRevision != nil {
		updated.DrawingRevision = *req.DrawingRevision
	}
	if req.DrawingTitle != nil {
		updated.DrawingTitle = *req.DrawingTitle
	}
	if req.Spec != nil {
		updated.Spec = *req.Spec
	}
	if req.Remarks != nil {
		updated.Remarks = *req.Remarks
	}
	if req.LineItems != nil {
		updated.LineItems = req.LineItems
	}

	if err := s.validateLineItems(ctx, updated.LineItems, doc.ID); err != nil {
		return nil, err
	}
	exists, err := s.repo.DrawingNumberExists(ctx, NormalizeDrawingNumber(updated.DrawingNumber), doc.ID)
	if err != nil {
		return nil, fmt.Errorf("checking drawing number: %w", err)
	}
	if exists {
		return nil, ErrDuplicateDrawingNumber
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("updating NMR document: %w", err)
	}
	return &updated, nil
}

// Delete removes the document and the MTOs raised against it.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.mtos.DeleteByNMR(ctx, id); err != nil {
		return fmt.Errorf("deleting NMR MTOs: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting NMR document: %w", err)
	}
	return nil
}

// SubmitForReview marks the current revision as submitted to the client. The
// history row for the current revision is created, or has its submission date
// refreshed if a prior submission of the same revision exists.
func (s *Service) SubmitForReview(ctx context.Context, id, submissionDate string) (*Document, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if submissionDate == "" {
		submissionDate = s.today()
	}

	s.upsertHistory(doc, doc.Revision, submissionDate)
	doc.Status = StatusSubmitted

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("submitting NMR document: %w", err)
	}
	s.logActivity(ctx, doc.ID, activity.TypeNMRSubmitted,
		fmt.Sprintf("NMR %s rev %s submitted for review", doc.DrawingNumber, doc.Revision))
	return doc, nil
}

// RecordClientResponse closes the current revision's history row and moves
// the document per the response code:
//
//	1            approved; terminal APPROVED at revision "0", PENDING-REV0 otherwise
//	2, 3         revise and resubmit; revision bumps to the next letter
//	4            work authorized as-is, terminal
//	D            information only, terminal
func (s *Service) RecordClientResponse(ctx context.Context, id string, req ResponseRequest) (*Document, error) {
	switch req.Code {
	case CodeApproved, CodeReviseMinor, CodeReviseMajor, CodeWorkMayStart, CodeInformation:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidResponseCode, req.Code)
	}

	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	idx := doc.historyIndex(doc.Revision)
	if idx < 0 {
		return nil, fmt.Errorf("%w: revision %s", ErrMissingRevisionEntry, doc.Revision)
	}

	// Resolve the bump before touching anything so a rejection leaves the
	// document untouched.
	var bumped string
	if req.Code == CodeReviseMinor || req.Code == CodeReviseMajor {
		bumped, err = nextRevision(doc.Revision)
		if err != nil {
			return nil, err
		}
	}

	returnDate := req.ReturnDate
	if returnDate == "" {
		returnDate = s.today()
	}
	doc.RevisionHistory[idx].ReturnDate = returnDate
	doc.RevisionHistory[idx].Code = req.Code
	doc.RevisionHistory[idx].Comment = req.Comment
	doc.LastCode = req.Code

	switch req.Code {
	case CodeApproved:
		if doc.Revision == "0" {
			doc.Status = StatusApproved
		} else {
			doc.Status = StatusPendingRev0
		}
	case CodeReviseMinor:
		doc.Revision = bumped
		doc.Status = StatusCode2
	case CodeReviseMajor:
		doc.Revision = bumped
		doc.Status = StatusCode3
	case CodeWorkMayStart:
		doc.Status = StatusCode4
	case CodeInformation:
		doc.Status = StatusCodeD
	}

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("recording client response: %w", err)
	}
	s.logActivity(ctx, doc.ID, activity.TypeNMRResponse,
		fmt.Sprintf("NMR %s returned code %s, status %s", doc.DrawingNumber, req.Code, doc.Status))
	return doc, nil
}

// SubmitRev0 performs the formal Rev 0 submission after an in-principle
// approval: revision becomes "0" with a fresh history row, status SUBMITTED.
func (s *Service) SubmitRev0(ctx context.Context, id, submissionDate string) (*Document, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.Status != StatusPendingRev0 {
		return nil, ErrNotPendingRev0
	}
	if submissionDate == "" {
		submissionDate = s.today()
	}

	doc.Revision = "0"
	s.upsertHistory(doc, "0", submissionDate)
	doc.Status = StatusSubmitted

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("submitting Rev 0: %w", err)
	}
	s.logActivity(ctx, doc.ID, activity.TypeNMRSubmitted,
		fmt.Sprintf("NMR %s formally submitted as Rev 0", doc.DrawingNumber))
	return doc, nil
}

// ResetToDraft returns the document to DRAFT for rework. The revision (already
// bumped when the code 2/3 response landed) and the history are untouched.
func (s *Service) ResetToDraft(ctx context.Context, id string) (*Document, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	doc.Status = StatusDraft
	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("resetting NMR document: %w", err)
	}
	return doc, nil
}

// Get fetches a document by ID.
func (s *Service) Get(ctx context.Context, id string) (*Document, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNMRNotFound
		}
		return nil, fmt.Errorf("getting NMR document: %w", err)
	}
	return doc, nil
}

// List returns documents matching the options.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Document, error) {
	return s.repo.List(ctx, opts)
}

func (s *Service) validateLineItems(ctx context.Context, refs []LineItemRef, excludeID string) error {
	if len(refs) == 0 {
		return ErrNoLineItems
	}
	ids := make([]string, 0, len(refs))
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		if ref.LineItemID == "" {
			return fmt.Errorf("%w: line item ID is required", ErrInvalidInput)
		}
		if ref.ProductID == "" {
			return fmt.Errorf("%w: line item %s", ErrMissingProduct, ref.LineItemID)
		}
		if seen[ref.LineItemID] {
			return fmt.Errorf("%w: line item %s listed twice", ErrInvalidInput, ref.LineItemID)
		}
		seen[ref.LineItemID] = true
		ids = append(ids, ref.LineItemID)
	}

	taken, err := s.repo.LinkedLineItems(ctx, ids, excludeID)
	if err != nil {
		return fmt.Errorf("checking line item links: %w", err)
	}
	if len(taken) > 0 {
		return fmt.Errorf("%w: %s", ErrLineItemAlreadyLinked, strings.Join(taken, ", "))
	}
	return nil
}

// upsertHistory creates the history row for rev, or refreshes only the
// submission date on an existing row. A recorded response (return date, code,
// comment) is never overwritten by a resubmission.
func (s *Service) upsertHistory(doc *Document, rev, submissionDate string) {
	if idx := doc.historyIndex(rev); idx >= 0 {
		doc.RevisionHistory[idx].SubmissionDate = submissionDate
		return
	}
	doc.RevisionHistory = append(doc.RevisionHistory, RevisionEntry{Rev: rev, SubmissionDate: submissionDate})
}

func (s *Service) logActivity(ctx context.Context, entityID string, activityType activity.Type, summary string) {
	if s.activities == nil {
		return
	}
	if err := s.activities.Log(ctx, &activity.Entry{
		EntityID:     entityID,
		ActivityType: activityType,
		Summary:      summary,
	}); err != nil {
		s.logger.Warn("failed to log activity", "error", err)
	}
}

func (s *Service) today() string {
	return s.now().Format("2006-01-02")
}
