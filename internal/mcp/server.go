package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aasia/cladtrack/internal/domain/activity"
	"github.com/aasia/cladtrack/internal/domain/assembly"
	"github.com/aasia/cladtrack/internal/domain/masterdata"
	"github.com/aasia/cladtrack/internal/domain/mto"
	"github.com/aasia/cladtrack/internal/domain/nmr"
	"github.com/aasia/cladtrack/internal/domain/order"
	"github.com/aasia/cladtrack/internal/domain/project"
	"github.com/aasia/cladtrack/internal/domain/quality"
	"github.com/aasia/cladtrack/internal/domain/spool"
	"github.com/aasia/cladtrack/internal/sqlite"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Update(ctx context.Context, req project.UpdateRequest) (*project.Project, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*project.Project, error)
	List(ctx context.Context) ([]project.Project, error)
}

// OrderService defines purchase-order and line-item operations needed by MCP.
type OrderService interface {
	CreatePurchaseOrder(ctx context.Context, req order.CreatePORequest) (*order.PurchaseOrder, error)
	UpdatePurchaseOrder(ctx context.Context, req order.UpdatePORequest) (*order.PurchaseOrder, error)
	DeletePurchaseOrder(ctx context.Context, id string) error
	GetPurchaseOrder(ctx context.Context, id string) (*order.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, projectID string) ([]order.PurchaseOrder, error)
	CreateLineItems(ctx context.Context, reqs []order.LineItemRequest) (*order.BatchResult, error)
	UpdateLineItem(ctx context.Context, req order.UpdateLineItemRequest) (*order.LineItem, error)
	DeleteLineItem(ctx context.Context, id string) error
	GetLineItem(ctx context.Context, id string) (*order.LineItem, error)
	ListLineItems(ctx context.Context, opts order.ListLineItemsOptions) ([]order.LineItem, error)
}

// SpoolService defines spool operations needed by MCP.
type SpoolService interface {
	CompleteCladding(ctx context.Context, spoolID string) (string, error)
	Update(ctx context.Context, req spool.UpdateRequest) (*spool.Spool, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*spool.Spool, error)
	List(ctx context.Context, opts spool.ListOptions) ([]spool.Spool, error)
}

// AssemblyService defines assembly-joint operations needed by MCP.
type AssemblyService interface {
	Create(ctx context.Context, req assembly.CreateRequest) (*assembly.Joint, error)
	Update(ctx context.Context, req assembly.UpdateRequest) (*assembly.Joint, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*assembly.Joint, error)
	List(ctx context.Context) ([]assembly.Joint, error)
}

// NMRService defines NMR document operations needed by MCP.
type NMRService interface {
	Create(ctx context.Context, req nmr.CreateRequest) (*nmr.Document, error)
	Update(ctx context.Context, req nmr.UpdateRequest) (*nmr.Document, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*nmr.Document, error)
	List(ctx context.Context, opts nmr.ListOptions) ([]nmr.Document, error)
	SubmitForReview(ctx context.Context, id, submissionDate string) (*nmr.Document, error)
	RecordClientResponse(ctx context.Context, id string, req nmr.ResponseRequest) (*nmr.Document, error)
	SubmitRev0(ctx context.Context, id, submissionDate string) (*nmr.Document, error)
	ResetToDraft(ctx context.Context, id string) (*nmr.Document, error)
}

// QualityService defines JIS routing operations needed by MCP.
type QualityService interface {
	EnsureRouting(ctx context.Context, spoolID string) ([]quality.Operation, error)
	RecordAction(ctx context.Context, opID string, action quality.Action, inspectorID string) (*quality.Operation, error)
	AddOperation(ctx context.Context, req quality.AddOperationRequest) (*quality.Operation, error)
	UpdateOperation(ctx context.Context, req quality.UpdateOperationRequest) (*quality.Operation, error)
	DeleteOperation(ctx context.Context, id string) error
	List(ctx context.Context, opts quality.ListOptions) ([]quality.Operation, error)
}

// MTOService defines material take-off operations needed by MCP.
type MTOService interface {
	Create(ctx context.Context, req mto.CreateRequest) (*mto.MTO, error)
	Update(ctx context.Context, req mto.UpdateRequest) (*mto.MTO, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*mto.MTO, error)
	List(ctx context.Context, opts mto.ListOptions) ([]mto.MTO, error)
}

// MasterDataService defines master data operations needed by MCP.
type MasterDataService interface {
	UpsertCustomer(ctx context.Context, c masterdata.Customer) (*masterdata.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	ListCustomers(ctx context.Context) ([]masterdata.Customer, error)
	UpsertVendor(ctx context.Context, v masterdata.Vendor) (*masterdata.Vendor, error)
	DeleteVendor(ctx context.Context, id string) error
	ListVendors(ctx context.Context) ([]masterdata.Vendor, error)
	UpsertProduct(ctx context.Context, p masterdata.Product) (*masterdata.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context) ([]masterdata.Product, error)
	UpsertWorkstation(ctx context.Context, w masterdata.Workstation) (*masterdata.Workstation, error)
	DeleteWorkstation(ctx context.Context, id string) error
	ListWorkstations(ctx context.Context) ([]masterdata.Workstation, error)
}

// ActivityService defines activity feed operations needed by MCP.
type ActivityService interface {
	Recent(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error)
}

// SnapshotStore exports and imports the whole store as one document.
type SnapshotStore interface {
	Export(ctx context.Context) (*sqlite.Snapshot, error)
	Import(ctx context.Context, snap *sqlite.Snapshot) error
}

// Services contains all domain services needed by MCP.
type Services struct {
	Projects   ProjectService
	Orders     OrderService
	Spools     SpoolService
	Assemblies AssemblyService
	NMRs       NMRService
	Quality    QualityService
	MTOs       MTOService
	MasterData MasterDataService
	Activity   ActivityService
	Snapshots  SnapshotStore
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "cladtrack",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	handler := NewHandler(cfg.Services)
	registerTools(server, handler, cfg.Logger)

	return server
}
