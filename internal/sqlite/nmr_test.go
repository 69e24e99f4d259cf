package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aasia/cladtrack/internal/domain/nmr"
	"github.com/aasia/cladtrack/internal/repository"
)

func testDocument(id, drawingNumber string) *nmr.Document {
	return &nmr.Document{
		ID:              id,
		ProjectID:       "AS-CL-001",
		DrawingNumber:   drawingNumber,
		DrawingRevision: "0",
		DrawingTitle:    "Riser Spool Isometric",
		Spec:            "01-SAMSS-035",
		LineItems:       []nmr.LineItemRef{{LineItemID: "LI-0001", ProductID: "PROD-AA11BB"}},
		Revision:        "A",
		Status:          nmr.StatusDraft,
		RevisionHistory: []nmr.RevisionEntry{},
		CreatedAt:       time.Now(),
	}
}

func TestNMRRepository_RoundTrip(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNMRRepository(db)
	ctx := context.Background()

	doc := testDocument("NMR-000001", "AS-CL-0005000")
	doc.LineItems = []nmr.LineItemRef{
		{LineItemID: "LI-0002", ProductID: "PROD-AA11BB"},
		{LineItemID: "LI-0001", ProductID: "PROD-CC22DD"},
	}
	doc.RevisionHistory = []nmr.RevisionEntry{
		{Rev: "A", SubmissionDate: "2026-03-10", ReturnDate: "2026-03-20", Code: "2", Comment: "revise welds"},
		{Rev: "B", SubmissionDate: "2026-03-25"},
	}
	require.NoError(t, repo.Create(ctx, doc))

	retrieved, err := repo.Get(ctx, "NMR-000001")
	require.NoError(t, err)
	require.Equal(t, doc.DrawingNumber, retrieved.DrawingNumber)
	// Children come back in the order they were stored
	require.Equal(t, doc.LineItems, retrieved.LineItems)
	require.Equal(t, doc.RevisionHistory, retrieved.RevisionHistory)
}

func TestNMRRepository_EmptyHistory(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNMRRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testDocument("NMR-000001", "DWG-1")))

	retrieved, err := repo.Get(ctx, "NMR-000001")
	require.NoError(t, err)
	require.NotNil(t, retrieved.RevisionHistory)
	require.Empty(t, retrieved.RevisionHistory)
}

func TestNMRRepository_DrawingNumberUnique(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNMRRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testDocument("NMR-000001", "AS-CL-0005000")))

	// Uniqueness ignores case and surrounding whitespace
	dup := testDocument("NMR-000002", "  as-cl-0005000 ")
	dup.LineItems = []nmr.LineItemRef{{LineItemID: "LI-0099", ProductID: "PROD-AA11BB"}}
	err := repo.Create(ctx, dup)
	require.ErrorIs(t, err, repository.ErrConflict)
}

func TestNMRRepository_DrawingNumberExists(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNMRRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testDocument("NMR-000001", "AS-CL-0005000")))

	exists, err := repo.DrawingNumberExists(ctx, "as-cl-0005000", "")
	require.NoError(t, err)
	require.True(t, exists)

	// The owning document is excluded when re-validating its own update
	exists, err = repo.DrawingNumberExists(ctx, "as-cl-0005000", "NMR-000001")
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = repo.DrawingNumberExists(ctx, "dwg-other", "")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestNMRRepository_LinkedLineItems(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNMRRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testDocument("NMR-000001", "DWG-1")))

	linked, err := repo.LinkedLineItems(ctx, []string{"LI-0001", "LI-0002"}, "")
	require.NoError(t, err)
	require.Equal(t, []string{"LI-0001"}, linked)

	// A document's own links do not count against it
	linked, err = repo.LinkedLineItems(ctx, []string{"LI-0001", "LI-0002"}, "NMR-000001")
	require.NoError(t, err)
	require.Empty(t, linked)
}

func TestNMRRepository_Update_ReplacesChildren(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNMRRepository(db)
	ctx := context.Background()

	doc := testDocument("NMR-000001", "DWG-1")
	require.NoError(t, repo.Create(ctx, doc))

	doc.Status = nmr.StatusSubmitted
	doc.LineItems = []nmr.LineItemRef{{LineItemID: "LI-0003", ProductID: "PROD-EE33FF"}}
	doc.RevisionHistory = []nmr.RevisionEntry{{Rev: "A", SubmissionDate: "2026-03-10"}}
	require.NoError(t, repo.Update(ctx, doc))

	retrieved, err := repo.Get(ctx, "NMR-000001")
	require.NoError(t, err)
	require.Equal(t, nmr.StatusSubmitted, retrieved.Status)
	require.Equal(t, doc.LineItems, retrieved.LineItems)
	require.Len(t, retrieved.RevisionHistory, 1)

	// The old link is released
	linked, err := repo.LinkedLineItems(ctx, []string{"LI-0001"}, "")
	require.NoError(t, err)
	require.Empty(t, linked)
}

func TestNMRRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNMRRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testDocument("NMR-000001", "DWG-1")))
	require.NoError(t, repo.Delete(ctx, "NMR-000001"))

	_, err := repo.Get(ctx, "NMR-000001")
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, "NMR-000001"), repository.ErrNotFound)
}

func TestNMRRepository_List_Filters(t *testing.T) {
	db := NewTestDB(t)
	repo := NewNMRRepository(db)
	ctx := context.Background()

	a := testDocument("NMR-000001", "DWG-1")
	b := testDocument("NMR-000002", "DWG-2")
	b.ProjectID = "AS-CL-002"
	b.Status = nmr.StatusSubmitted
	b.LineItems = []nmr.LineItemRef{{LineItemID: "LI-0002", ProductID: "PROD-AA11BB"}}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	byProject, err := repo.List(ctx, nmr.ListOptions{ProjectID: "AS-CL-002"})
	require.NoError(t, err)
	require.Len(t, byProject, 1)
	require.Equal(t, "NMR-000002", byProject[0].ID)

	byStatus, err := repo.List(ctx, nmr.ListOptions{Statuses: []nmr.Status{nmr.StatusDraft}})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	require.Equal(t, "NMR-000001", byStatus[0].ID)
}
