package integration_test

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/aasia/cladtrack/internal/domain/assembly"
	"github.com/aasia/cladtrack/internal/domain/masterdata"
	"github.com/aasia/cladtrack/internal/domain/mto"
	"github.com/aasia/cladtrack/internal/domain/nmr"
	"github.com/aasia/cladtrack/internal/domain/order"
	"github.com/aasia/cladtrack/internal/domain/project"
	"github.com/aasia/cladtrack/internal/domain/quality"
	"github.com/aasia/cladtrack/internal/domain/spool"
	"github.com/aasia/cladtrack/internal/ident"
	"github.com/aasia/cladtrack/internal/sqlite"
)

type testEnv struct {
	db        *sqlite.DB
	snapshots *sqlite.SnapshotStore

	projectSvc  *project.Service
	orderSvc    *order.Service
	spoolSvc    *spool.Service
	assemblySvc *assembly.Service
	nmrSvc      *nmr.Service
	qualitySvc  *quality.Service
	mtoSvc      *mto.Service
	masterSvc   *masterdata.Service
}

var envCounter atomic.Int64

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	// Each env needs its own shared-cache in-memory database; t.Name() alone
	// collides when a test creates more than one env.
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"), envCounter.Add(1))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	projectRepo := sqlite.NewProjectRepository(db)
	orderRepo := sqlite.NewOrderRepository(db)
	spoolRepo := sqlite.NewSpoolRepository(db)
	assemblyRepo := sqlite.NewAssemblyRepository(db)
	nmrRepo := sqlite.NewNMRRepository(db)
	jisRepo := sqlite.NewJISRepository(db)
	mtoRepo := sqlite.NewMTORepository(db)
	masterRepo := sqlite.NewMasterDataRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)
	counterRepo := sqlite.NewCounterRepository(db)

	tokens := ident.UUIDTokenSource{}

	return &testEnv{
		db:          db,
		snapshots:   sqlite.NewSnapshotStore(db),
		projectSvc:  project.NewService(projectRepo, counterRepo, orderRepo, spoolRepo, mtoRepo, nil),
		orderSvc:    order.NewService(orderRepo, projectRepo, counterRepo, spoolRepo, mtoRepo, tokens, activityRepo, nil),
		spoolSvc:    spool.NewService(spoolRepo, tokens, activityRepo, nil),
		assemblySvc: assembly.NewService(assemblyRepo, spoolRepo, tokens, nil),
		nmrSvc:      nmr.NewService(nmrRepo, mtoRepo, tokens, activityRepo, nil),
		qualitySvc:  quality.NewService(jisRepo, spoolRepo, tokens, activityRepo, nil),
		mtoSvc:      mto.NewService(mtoRepo, tokens, nil),
		masterSvc:   masterdata.NewService(masterRepo, tokens, nil),
	}
}

// setupOrder creates a project with one PO and one 30 m cladded-pipe line
// item, which derives three spools.
func (env *testEnv) setupOrder(t *testing.T, ctx context.Context) (*project.Project, *order.PurchaseOrder, *order.BatchResult) {
	t.Helper()

	proj, err := env.projectSvc.Create(ctx, project.CreateRequest{
		Name:     "Marjan Increment",
		Plant:    "AS-CL",
		Customer: "Aramco",
	})
	require.NoError(t, err)

	po, err := env.orderSvc.CreatePurchaseOrder(ctx, order.CreatePORequest{
		ProjectID: proj.ID,
		PONumber:  "4500012345",
	})
	require.NoError(t, err)

	batch, err := env.orderSvc.CreateLineItems(ctx, []order.LineItemRequest{{
		POID:         po.ID,
		ProjectID:    proj.ID,
		ItemCategory: "Pipe",
		Description:  "24in cladded line pipe",
		Quantity:     1,
		PipeLength:   30,
		UnitPrice:    decimal.RequireFromString("1250.50"),
		Currency:     "USD",
	}})
	require.NoError(t, err)
	require.Len(t, batch.LineItems, 1)
	require.Len(t, batch.Spools, 3)

	return proj, po, batch
}

func TestIntegration_OrderToCladding(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, _, batch := env.setupOrder(t, ctx)

	for _, sp := range batch.Spools {
		require.Equal(t, spool.StatusPendingCladding, sp.Status)
		require.Empty(t, sp.SageCode)
	}

	// Clad the first two spools
	sage1, err := env.spoolSvc.CompleteCladding(ctx, batch.Spools[0].ID)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(sage1, "SAGE-"))

	sage2, err := env.spoolSvc.CompleteCladding(ctx, batch.Spools[1].ID)
	require.NoError(t, err)
	require.NotEqual(t, sage1, sage2)

	cladded, err := env.spoolSvc.List(ctx, spool.ListOptions{SageCodedOnly: true})
	require.NoError(t, err)
	require.Len(t, cladded, 2)

	// Join them
	joint, err := env.assemblySvc.Create(ctx, assembly.CreateRequest{
		Component1: sage1,
		Component2: sage2,
		Size:       "24\"",
	})
	require.NoError(t, err)
	require.NotEmpty(t, joint.ID)

	// The third spool has no SAGE code yet, so it cannot be joined
	_, err = env.assemblySvc.Create(ctx, assembly.CreateRequest{
		Component1: sage1,
		Component2: "SAGE-UNKNOWN",
	})
	require.ErrorIs(t, err, assembly.ErrComponentNotFound)
}

func TestIntegration_QualityRouting(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, _, batch := env.setupOrder(t, ctx)
	target := batch.Spools[0]

	// Routing is refused before cladding
	_, err := env.qualitySvc.EnsureRouting(ctx, target.ID)
	require.ErrorIs(t, err, quality.ErrSpoolNotCladded)

	_, err = env.spoolSvc.CompleteCladding(ctx, target.ID)
	require.NoError(t, err)

	ops, err := env.qualitySvc.EnsureRouting(ctx, target.ID)
	require.NoError(t, err)
	require.NotEmpty(t, ops)

	// Idempotent: a second call returns the same routing
	again, err := env.qualitySvc.EnsureRouting(ctx, target.ID)
	require.NoError(t, err)
	require.Len(t, again, len(ops))

	first := ops[0]
	started, err := env.qualitySvc.RecordAction(ctx, first.ID, quality.ActionStart, "INSP-07")
	require.NoError(t, err)
	require.Equal(t, quality.OpActive, started.Status)
	require.NotEmpty(t, started.StartDate)

	finished, err := env.qualitySvc.RecordAction(ctx, first.ID, quality.ActionFinish, "INSP-07")
	require.NoError(t, err)
	require.Equal(t, quality.OpCompleted, finished.Status)

	_, err = env.qualitySvc.RecordAction(ctx, ops[1].ID, quality.ActionSkip, "")
	require.ErrorIs(t, err, quality.ErrInspectorRequired)
}

func TestIntegration_NMRLifecycleAndMTO(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	proj, po, batch := env.setupOrder(t, ctx)
	lineItem := batch.LineItems[0]

	product, err := env.masterSvc.UpsertProduct(ctx, masterdata.Product{
		Code: "CLAD-PIPE-24",
		Name: "24in Cladded Pipe",
		UOM:  "m",
	})
	require.NoError(t, err)

	doc, err := env.nmrSvc.Create(ctx, nmr.CreateRequest{
		ProjectID:     proj.ID,
		POID:          po.ID,
		DrawingNumber: "AS-CL-0005000",
		DrawingTitle:  "Spool isometric sheet 1",
		LineItems:     []nmr.LineItemRef{{LineItemID: lineItem.ID, ProductID: product.ID}},
	})
	require.NoError(t, err)
	require.Equal(t, nmr.StatusDraft, doc.Status)
	require.Equal(t, "A", doc.Revision)

	// Rev A goes out, comes back code 2: revision bumps to B
	doc, err = env.nmrSvc.SubmitForReview(ctx, doc.ID, "2026-08-01")
	require.NoError(t, err)
	require.Equal(t, nmr.StatusSubmitted, doc.Status)

	doc, err = env.nmrSvc.RecordClientResponse(ctx, doc.ID, nmr.ResponseRequest{Code: "2", ReturnDate: "2026-08-05"})
	require.NoError(t, err)
	require.Equal(t, nmr.StatusCode2, doc.Status)
	require.Equal(t, "B", doc.Revision)

	// Rev B approved in principle, then Rev 0 closes the loop
	doc, err = env.nmrSvc.SubmitForReview(ctx, doc.ID, "2026-08-10")
	require.NoError(t, err)

	doc, err = env.nmrSvc.RecordClientResponse(ctx, doc.ID, nmr.ResponseRequest{Code: "1", ReturnDate: "2026-08-15"})
	require.NoError(t, err)
	require.Equal(t, nmr.StatusPendingRev0, doc.Status)

	doc, err = env.nmrSvc.SubmitRev0(ctx, doc.ID, "2026-08-20")
	require.NoError(t, err)
	require.Equal(t, "0", doc.Revision)

	doc, err = env.nmrSvc.RecordClientResponse(ctx, doc.ID, nmr.ResponseRequest{Code: "1", ReturnDate: "2026-08-25"})
	require.NoError(t, err)
	require.Equal(t, nmr.StatusApproved, doc.Status)
	require.Len(t, doc.RevisionHistory, 3)

	// Approved documents are locked
	title := "changed"
	_, err = env.nmrSvc.Update(ctx, nmr.UpdateRequest{ID: doc.ID, DrawingTitle: &title})
	require.ErrorIs(t, err, nmr.ErrDocumentLocked)

	// Order the material against the approved drawing
	takeoff, err := env.mtoSvc.Create(ctx, mto.CreateRequest{
		ProjectID:     proj.ID,
		POID:          po.ID,
		NMRDocumentID: doc.ID,
		LineItemMaterials: map[string]string{
			lineItem.ID: "API 5L X65 + Alloy 625 overlay",
		},
	})
	require.NoError(t, err)

	found, err := env.mtoSvc.List(ctx, mto.ListOptions{NMRID: doc.ID})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, takeoff.ID, found[0].ID)
}

func TestIntegration_ProjectDeleteCascades(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	proj, po, batch := env.setupOrder(t, ctx)

	require.NoError(t, env.projectSvc.Delete(ctx, proj.ID))

	_, err := env.orderSvc.GetPurchaseOrder(ctx, po.ID)
	require.ErrorIs(t, err, order.ErrPurchaseOrderNotFound)

	_, err = env.spoolSvc.Get(ctx, batch.Spools[0].ID)
	require.ErrorIs(t, err, spool.ErrSpoolNotFound)
}

func TestIntegration_SnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, _, batch := env.setupOrder(t, ctx)
	sage, err := env.spoolSvc.CompleteCladding(ctx, batch.Spools[0].ID)
	require.NoError(t, err)

	snap, err := env.snapshots.Export(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Projects, 1)
	require.Len(t, snap.Spools, 3)

	// Restore into a fresh environment
	restored := newTestEnv(t)
	require.NoError(t, restored.snapshots.Import(ctx, snap))

	sp, err := restored.spoolSvc.Get(ctx, batch.Spools[0].ID)
	require.NoError(t, err)
	require.Equal(t, sage, sp.SageCode)

	// Counters carried over: the next line item continues the sequence
	projects, err := restored.projectSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	more, err := restored.orderSvc.CreateLineItems(ctx, []order.LineItemRequest{{
		POID:         snap.PurchaseOrders[0].ID,
		ProjectID:    projects[0].ID,
		ItemCategory: "Fitting",
		Quantity:     2,
	}})
	require.NoError(t, err)
	require.Equal(t, "LI-0002", more.LineItems[0].ID)
}
