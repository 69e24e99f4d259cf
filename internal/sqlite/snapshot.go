package sqlite

import (
	"context"
	"fmt"

	"github.com/aasia/cladtrack/internal/domain/assembly"
	"github.com/aasia/cladtrack/internal/domain/masterdata"
	"github.com/aasia/cladtrack/internal/domain/mto"
	"github.com/aasia/cladtrack/internal/domain/nmr"
	"github.com/aasia/cladtrack/internal/domain/order"
	"github.com/aasia/cladtrack/internal/domain/project"
	"github.com/aasia/cladtrack/internal/domain/quality"
	"github.com/aasia/cladtrack/internal/domain/spool"
)

// Snapshot is a full export of the tracking database. The key names match
// the export files produced by earlier deployments so old backups import
// cleanly.
type Snapshot struct {
	Projects          []project.Project        `json:"projects"`
	PurchaseOrders    []order.PurchaseOrder    `json:"purchaseOrders"`
	POLineItems       []order.LineItem         `json:"poLineItems"`
	Spools            []spool.Spool            `json:"spools"`
	AssemblyJoints    []assembly.Joint         `json:"assemblyJoints"`
	JISOperations     []quality.Operation      `json:"jisOperations"`
	NMRDocuments      []nmr.Document           `json:"nmrDocuments"`
	MTOs              []mto.MTO                `json:"mtos"`
	Customers         []masterdata.Customer    `json:"customers"`
	Vendors           []masterdata.Vendor      `json:"vendors"`
	Products          []masterdata.Product     `json:"products"`
	Workstations      []masterdata.Workstation `json:"workstations"`
	ProjectCounter    int64                    `json:"projectCounter"`
	POLineItemCounter int64                    `json:"poLineItemCounter"`
}

// SnapshotStore exports and imports the whole database through the
// per-aggregate repositories.
type SnapshotStore struct {
	db         *DB
	projects   *ProjectRepository
	orders     *OrderRepository
	spools     *SpoolRepository
	assemblies *AssemblyRepository
	jis        *JISRepository
	nmrs       *NMRRepository
	mtos       *MTORepository
	master     *MasterDataRepository
	counters   *CounterRepository
}

// NewSnapshotStore creates a new SnapshotStore
func NewSnapshotStore(db *DB) *SnapshotStore {
	return &SnapshotStore{
		db:         db,
		projects:   NewProjectRepository(db),
		orders:     NewOrderRepository(db),
		spools:     NewSpoolRepository(db),
		assemblies: NewAssemblyRepository(db),
		jis:        NewJISRepository(db),
		nmrs:       NewNMRRepository(db),
		mtos:       NewMTORepository(db),
		master:     NewMasterDataRepository(db),
		counters:   NewCounterRepository(db),
	}
}

// Export reads every aggregate and both counters into a Snapshot.
func (s *SnapshotStore) Export(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	var err error

	if snap.Projects, err = s.projects.List(ctx); err != nil {
		return nil, fmt.Errorf("failed to export projects: %w", err)
	}
	if snap.PurchaseOrders, err = s.orders.ListPurchaseOrders(ctx, ""); err != nil {
		return nil, fmt.Errorf("failed to export purchase orders: %w", err)
	}
	if snap.POLineItems, err = s.orders.ListLineItems(ctx, order.ListLineItemsOptions{}); err != nil {
		return nil, fmt.Errorf("failed to export line items: %w", err)
	}
	if snap.Spools, err = s.spools.List(ctx, spool.ListOptions{}); err != nil {
		return nil, fmt.Errorf("failed to export spools: %w", err)
	}
	if snap.AssemblyJoints, err = s.assemblies.List(ctx); err != nil {
		return nil, fmt.Errorf("failed to export assembly joints: %w", err)
	}
	if snap.JISOperations, err = s.jis.List(ctx, quality.ListOptions{}); err != nil {
		return nil, fmt.Errorf("failed to export JIS operations: %w", err)
	}
	if snap.NMRDocuments, err = s.nmrs.List(ctx, nmr.ListOptions{}); err != nil {
		return nil, fmt.Errorf("failed to export NMR documents: %w", err)
	}
	if snap.MTOs, err = s.mtos.List(ctx, mto.ListOptions{}); err != nil {
		return nil, fmt.Errorf("failed to export MTOs: %w", err)
	}
	if snap.Customers, err = s.master.ListCustomers(ctx); err != nil {
		return nil, fmt.Errorf("failed to export customers: %w", err)
	}
	if snap.Vendors, err = s.master.ListVendors(ctx); err != nil {
		return nil, fmt.Errorf("failed to export vendors: %w", err)
	}
	if snap.Products, err = s.master.ListProducts(ctx); err != nil {
		return nil, fmt.Errorf("failed to export products: %w", err)
	}
	if snap.Workstations, err = s.master.ListWorkstations(ctx); err != nil {
		return nil, fmt.Errorf("failed to export workstations: %w", err)
	}
	if snap.ProjectCounter, err = s.counters.Current(ctx, project.CounterName); err != nil {
		return nil, fmt.Errorf("failed to export project counter: %w", err)
	}
	if snap.POLineItemCounter, err = s.counters.Current(ctx, order.LineItemCounterName); err != nil {
		return nil, fmt.Errorf("failed to export line-item counter: %w", err)
	}
	return &snap, nil
}

// Import wipes the tracked aggregates and loads the snapshot in dependency
// order. The activity log is kept as is.
func (s *SnapshotStore) Import(ctx context.Context, snap *Snapshot) error {
	if err := s.clear(ctx); err != nil {
		return err
	}

	for i := range snap.Projects {
		if err := s.projects.Create(ctx, &snap.Projects[i]); err != nil {
			return fmt.Errorf("failed to import project %s: %w", snap.Projects[i].ID, err)
		}
	}
	for i := range snap.PurchaseOrders {
		if err := s.orders.CreatePurchaseOrder(ctx, &snap.PurchaseOrders[i]); err != nil {
			return fmt.Errorf("failed to import purchase order %s: %w", snap.PurchaseOrders[i].ID, err)
		}
	}
	items := make([]*order.LineItem, len(snap.POLineItems))
	for i := range snap.POLineItems {
		items[i] = &snap.POLineItems[i]
	}
	spools := make([]*spool.Spool, len(snap.Spools))
	for i := range snap.Spools {
		spools[i] = &snap.Spools[i]
	}
	if len(items) > 0 || len(spools) > 0 {
		if err := s.orders.CreateLineItemBatch(ctx, items, spools); err != nil {
			return fmt.Errorf("failed to import line items: %w", err)
		}
	}
	for i := range snap.AssemblyJoints {
		if err := s.assemblies.Create(ctx, &snap.AssemblyJoints[i]); err != nil {
			return fmt.Errorf("failed to import assembly joint %s: %w", snap.AssemblyJoints[i].ID, err)
		}
	}
	ops := make([]*quality.Operation, len(snap.JISOperations))
	for i := range snap.JISOperations {
		ops[i] = &snap.JISOperations[i]
	}
	if len(ops) > 0 {
		if err := s.jis.CreateBatch(ctx, ops); err != nil {
			return fmt.Errorf("failed to import JIS operations: %w", err)
		}
	}
	for i := range snap.NMRDocuments {
		if err := s.nmrs.Create(ctx, &snap.NMRDocuments[i]); err != nil {
			return fmt.Errorf("failed to import NMR document %s: %w", snap.NMRDocuments[i].ID, err)
		}
	}
	for i := range snap.MTOs {
		if err := s.mtos.Create(ctx, &snap.MTOs[i]); err != nil {
			return fmt.Errorf("failed to import MTO %s: %w", snap.MTOs[i].ID, err)
		}
	}
	for i := range snap.Customers {
		if err := s.master.CreateCustomer(ctx, &snap.Customers[i]); err != nil {
			return fmt.Errorf("failed to import customer %s: %w", snap.Customers[i].ID, err)
		}
	}
	for i := range snap.Vendors {
		if err := s.master.CreateVendor(ctx, &snap.Vendors[i]); err != nil {
			return fmt.Errorf("failed to import vendor %s: %w", snap.Vendors[i].ID, err)
		}
	}
	for i := range snap.Products {
		if err := s.master.CreateProduct(ctx, &snap.Products[i]); err != nil {
			return fmt.Errorf("failed to import product %s: %w", snap.Products[i].ID, err)
		}
	}
	for i := range snap.Workstations {
		if err := s.master.CreateWorkstation(ctx, &snap.Workstations[i]); err != nil {
			return fmt.Errorf("failed to import workstation %s: %w", snap.Workstations[i].ID, err)
		}
	}

	if err := s.counters.Set(ctx, project.CounterName, snap.ProjectCounter); err != nil {
		return fmt.Errorf("failed to import project counter: %w", err)
	}
	if err := s.counters.Set(ctx, order.LineItemCounterName, snap.POLineItemCounter); err != nil {
		return fmt.Errorf("failed to import line-item counter: %w", err)
	}
	return nil
}

// Empty reports whether the store holds no projects, orders, or master data.
// Used to decide whether a boot-time snapshot should be loaded.
func (s *SnapshotStore) Empty(ctx context.Context) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM projects)
			+ (SELECT COUNT(*) FROM purchase_orders)
			+ (SELECT COUNT(*) FROM customers)
			+ (SELECT COUNT(*) FROM vendors)
			+ (SELECT COUNT(*) FROM products)
			+ (SELECT COUNT(*) FROM workstations)
	`).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check store contents: %w", err)
	}
	return count == 0, nil
}

func (s *SnapshotStore) clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Children before parents so foreign keys stay satisfied.
	tables := []string{
		"mtos",
		"nmr_revisions",
		"nmr_line_items",
		"nmr_documents",
		"jis_operations",
		"assembly_joints",
		"spools",
		"po_line_items",
		"purchase_orders",
		"projects",
		"customers",
		"vendors",
		"products",
		"workstations",
	}
	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit clear: %w", err)
	}
	return nil
}
