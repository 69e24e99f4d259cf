package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aasia/cladtrack/internal/domain/order"
	"github.com/aasia/cladtrack/internal/domain/project"
	"github.com/aasia/cladtrack/internal/domain/spool"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	// Verify all tables were created
	tables := []string{
		"projects",
		"purchase_orders",
		"po_line_items",
		"spools",
		"assembly_joints",
		"jis_operations",
		"nmr_documents",
		"nmr_line_items",
		"nmr_revisions",
		"mtos",
		"customers",
		"vendors",
		"products",
		"workstations",
		"counters",
		"activity_log",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestCountersSeeded verifies both identifier counters start at 1
func TestCountersSeeded(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	counters := NewCounterRepository(db)

	for _, name := range []string{"project", "po_line_item"} {
		value, err := counters.Current(ctx, name)
		require.NoError(t, err, "counter %s missing", name)
		require.Equal(t, int64(1), value, "counter %s not seeded at 1", name)
	}
}

// seedProject inserts a project directly through the repository.
func seedProject(t *testing.T, db *DB, id string) *project.Project {
	t.Helper()
	proj := &project.Project{
		ID:         id,
		Name:       "Marjan Increment",
		Customer:   "Aramco",
		EndUser:    "Marjan",
		ClientName: "Aramco / Marjan",
		CreatedAt:  time.Now(),
	}
	require.NoError(t, NewProjectRepository(db).Create(context.Background(), proj))
	return proj
}

// seedPurchaseOrder inserts a PO header under an existing project.
func seedPurchaseOrder(t *testing.T, db *DB, id, projectID string) *order.PurchaseOrder {
	t.Helper()
	po := &order.PurchaseOrder{
		ID:        id,
		ProjectID: projectID,
		PONumber:  "4500012345",
		CreatedAt: time.Now(),
	}
	require.NoError(t, NewOrderRepository(db).CreatePurchaseOrder(context.Background(), po))
	return po
}

// seedLineItem inserts a single line item with no spools.
func seedLineItem(t *testing.T, db *DB, id string, number int64, poID, projectID string) *order.LineItem {
	t.Helper()
	li := &order.LineItem{
		ID:           id,
		Number:       number,
		POID:         poID,
		ProjectID:    projectID,
		ItemCategory: "Pipe",
		Quantity:     1,
		PipeLength:   12,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, NewOrderRepository(db).CreateLineItemBatch(context.Background(), []*order.LineItem{li}, nil))
	return li
}

// seedSpool inserts a spool under an existing line item.
func seedSpool(t *testing.T, db *DB, id, lineItemID, poID, projectID, sageCode string) *spool.Spool {
	t.Helper()
	sp := &spool.Spool{
		ID:         id,
		LineItemID: lineItemID,
		ProjectID:  projectID,
		POID:       poID,
		QtyLength:  12,
		Barcode:    "BC-" + id,
		SageCode:   sageCode,
		Status:     spool.StatusPendingCladding,
		CreatedAt:  time.Now(),
	}
	if sageCode != "" {
		sp.Status = spool.StatusCladdedReadyForAssembly
	}
	require.NoError(t, NewOrderRepository(db).CreateLineItemBatch(context.Background(), nil, []*spool.Spool{sp}))
	return sp
}
