package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aasia/cladtrack/internal/domain/nmr"
	"github.com/aasia/cladtrack/internal/domain/order"
	"github.com/aasia/cladtrack/internal/domain/project"
	"github.com/aasia/cladtrack/internal/domain/spool"
)

type projectStub struct {
	createFn func(context.Context, project.CreateRequest) (*project.Project, error)
	updateFn func(context.Context, project.UpdateRequest) (*project.Project, error)
	deleteFn func(context.Context, string) error
	getFn    func(context.Context, string) (*project.Project, error)
	listFn   func(context.Context) ([]project.Project, error)
}

func (p projectStub) Create(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
	return p.createFn(ctx, req)
}
func (p projectStub) Update(ctx context.Context, req project.UpdateRequest) (*project.Project, error) {
	return p.updateFn(ctx, req)
}
func (p projectStub) Delete(ctx context.Context, id string) error { return p.deleteFn(ctx, id) }
func (p projectStub) Get(ctx context.Context, id string) (*project.Project, error) {
	return p.getFn(ctx, id)
}
func (p projectStub) List(ctx context.Context) ([]project.Project, error) { return p.listFn(ctx) }

type orderStub struct {
	createPOFn func(context.Context, order.CreatePORequest) (*order.PurchaseOrder, error)
	updatePOFn func(context.Context, order.UpdatePORequest) (*order.PurchaseOrder, error)
	deletePOFn func(context.Context, string) error
	getPOFn    func(context.Context, string) (*order.PurchaseOrder, error)
	listPOFn   func(context.Context, string) ([]order.PurchaseOrder, error)
	createLIFn func(context.Context, []order.LineItemRequest) (*order.BatchResult, error)
	updateLIFn func(context.Context, order.UpdateLineItemRequest) (*order.LineItem, error)
	deleteLIFn func(context.Context, string) error
	getLIFn    func(context.Context, string) (*order.LineItem, error)
	listLIFn   func(context.Context, order.ListLineItemsOptions) ([]order.LineItem, error)
}

func (o orderStub) CreatePurchaseOrder(ctx context.Context, req order.CreatePORequest) (*order.PurchaseOrder, error) {
	return o.createPOFn(ctx, req)
}
func (o orderStub) UpdatePurchaseOrder(ctx context.Context, req order.UpdatePORequest) (*order.PurchaseOrder, error) {
	return o.updatePOFn(ctx, req)
}
func (o orderStub) DeletePurchaseOrder(ctx context.Context, id string) error {
	return o.deletePOFn(ctx, id)
}
func (o orderStub) GetPurchaseOrder(ctx context.Context, id string) (*order.PurchaseOrder, error) {
	return o.getPOFn(ctx, id)
}
func (o orderStub) ListPurchaseOrders(ctx context.Context, projectID string) ([]order.PurchaseOrder, error) {
	return o.listPOFn(ctx, projectID)
}
func (o orderStub) CreateLineItems(ctx context.Context, reqs []order.LineItemRequest) (*order.BatchResult, error) {
	return o.createLIFn(ctx, reqs)
}
func (o orderStub) UpdateLineItem(ctx context.Context, req order.UpdateLineItemRequest) (*order.LineItem, error) {
	return o.updateLIFn(ctx, req)
}
func (o orderStub) DeleteLineItem(ctx context.Context, id string) error { return o.deleteLIFn(ctx, id) }
func (o orderStub) GetLineItem(ctx context.Context, id string) (*order.LineItem, error) {
	return o.getLIFn(ctx, id)
}
func (o orderStub) ListLineItems(ctx context.Context, opts order.ListLineItemsOptions) ([]order.LineItem, error) {
	return o.listLIFn(ctx, opts)
}

type spoolStub struct {
	completeFn func(context.Context, string) (string, error)
	updateFn   func(context.Context, spool.UpdateRequest) (*spool.Spool, error)
	deleteFn   func(context.Context, string) error
	getFn      func(context.Context, string) (*spool.Spool, error)
	listFn     func(context.Context, spool.ListOptions) ([]spool.Spool, error)
}

func (s spoolStub) CompleteCladding(ctx context.Context, spoolID string) (string, error) {
	return s.completeFn(ctx, spoolID)
}
func (s spoolStub) Update(ctx context.Context, req spool.UpdateRequest) (*spool.Spool, error) {
	return s.updateFn(ctx, req)
}
func (s spoolStub) Delete(ctx context.Context, id string) error { return s.deleteFn(ctx, id) }
func (s spoolStub) Get(ctx context.Context, id string) (*spool.Spool, error) {
	return s.getFn(ctx, id)
}
func (s spoolStub) List(ctx context.Context, opts spool.ListOptions) ([]spool.Spool, error) {
	return s.listFn(ctx, opts)
}

type nmrStub struct {
	createFn   func(context.Context, nmr.CreateRequest) (*nmr.Document, error)
	updateFn   func(context.Context, nmr.UpdateRequest) (*nmr.Document, error)
	deleteFn   func(context.Context, string) error
	getFn      func(context.Context, string) (*nmr.Document, error)
	listFn     func(context.Context, nmr.ListOptions) ([]nmr.Document, error)
	submitFn   func(context.Context, string, string) (*nmr.Document, error)
	responseFn func(context.Context, string, nmr.ResponseRequest) (*nmr.Document, error)
	rev0Fn     func(context.Context, string, string) (*nmr.Document, error)
	resetFn    func(context.Context, string) (*nmr.Document, error)
}

func (n nmrStub) Create(ctx context.Context, req nmr.CreateRequest) (*nmr.Document, error) {
	return n.createFn(ctx, req)
}
func (n nmrStub) Update(ctx context.Context, req nmr.UpdateRequest) (*nmr.Document, error) {
	return n.updateFn(ctx, req)
}
func (n nmrStub) Delete(ctx context.Context, id string) error { return n.deleteFn(ctx, id) }
func (n nmrStub) Get(ctx context.Context, id string) (*nmr.Document, error) { return n.getFn(ctx, id) }
func (n nmrStub) List(ctx context.Context, opts nmr.ListOptions) ([]nmr.Document, error) {
	return n.listFn(ctx, opts)
}
func (n nmrStub) SubmitForReview(ctx context.Context, id, date string) (*nmr.Document, error) {
	return n.submitFn(ctx, id, date)
}
func (n nmrStub) RecordClientResponse(ctx context.Context, id string, req nmr.ResponseRequest) (*nmr.Document, error) {
	return n.responseFn(ctx, id, req)
}
func (n nmrStub) SubmitRev0(ctx context.Context, id, date string) (*nmr.Document, error) {
	return n.rev0Fn(ctx, id, date)
}
func (n nmrStub) ResetToDraft(ctx context.Context, id string) (*nmr.Document, error) {
	return n.resetFn(ctx, id)
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestHandler_ProjectAndOrderCommands(t *testing.T) {
	ctx := context.Background()

	handler := NewHandler(Services{
		Projects: projectStub{
			createFn: func(_ context.Context, req project.CreateRequest) (*project.Project, error) {
				return &project.Project{ID: "AS-CL-0001", Name: req.Name}, nil
			},
			updateFn: func(_ context.Context, req project.UpdateRequest) (*project.Project, error) {
				return &project.Project{ID: req.ID}, nil
			},
			deleteFn: func(_ context.Context, _ string) error { return nil },
			getFn: func(_ context.Context, id string) (*project.Project, error) {
				return &project.Project{ID: id, Name: "Marjan Increment"}, nil
			},
			listFn: func(_ context.Context) ([]project.Project, error) {
				return []project.Project{{ID: "AS-CL-0001"}}, nil
			},
		},
		Orders: orderStub{
			createPOFn: func(_ context.Context, req order.CreatePORequest) (*order.PurchaseOrder, error) {
				return &order.PurchaseOrder{ID: "PO-1", PONumber: req.PONumber}, nil
			},
			listPOFn: func(_ context.Context, projectID string) ([]order.PurchaseOrder, error) {
				require.Equal(t, "AS-CL-0001", projectID)
				return []order.PurchaseOrder{}, nil
			},
			createLIFn: func(_ context.Context, reqs []order.LineItemRequest) (*order.BatchResult, error) {
				require.Len(t, reqs, 1)
				require.Equal(t, "1250.50", reqs[0].UnitPrice.StringFixed(2))
				return &order.BatchResult{
					LineItems: []order.LineItem{{ID: "LI-0001"}},
					Spools:    []spool.Spool{{ID: "SP-001-1001"}},
				}, nil
			},
		},
	})

	result, err := handler.Handle(ctx, "create_project", mustJSON(t, CreateProjectParams{Name: "Marjan Increment"}))
	require.NoError(t, err)
	require.Equal(t, "AS-CL-0001", result.(*project.Project).ID)

	_, err = handler.Handle(ctx, "list_projects", nil)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, "get_project", mustJSON(t, IDParams{ID: "AS-CL-0001"}))
	require.NoError(t, err)

	_, err = handler.Handle(ctx, "delete_project", mustJSON(t, IDParams{ID: "AS-CL-0001"}))
	require.NoError(t, err)

	_, err = handler.Handle(ctx, "create_purchase_order", mustJSON(t, CreatePurchaseOrderParams{
		ProjectID: "AS-CL-0001",
		PONumber:  "4500012345",
	}))
	require.NoError(t, err)

	_, err = handler.Handle(ctx, "list_purchase_orders", mustJSON(t, ListPurchaseOrdersParams{ProjectID: "AS-CL-0001"}))
	require.NoError(t, err)

	batch, err := handler.Handle(ctx, "create_line_items", mustJSON(t, CreateLineItemsParams{
		Items: []LineItemParams{{
			POID:         "PO-1",
			ProjectID:    "AS-CL-0001",
			ItemCategory: "Pipe",
			PipeLength:   30,
			UnitPrice:    "1250.50",
		}},
	}))
	require.NoError(t, err)
	require.Len(t, batch.(BatchCreateResponse).Spools, 1)
}

func TestHandler_CreateLineItems_BadUnitPrice(t *testing.T) {
	handler := NewHandler(Services{Orders: orderStub{}})

	_, err := handler.Handle(context.Background(), "create_line_items", mustJSON(t, CreateLineItemsParams{
		Items: []LineItemParams{{POID: "PO-1", ProjectID: "AS-CL-0001", ItemCategory: "Pipe", UnitPrice: "abc"}},
	}))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unit_price")
}

func TestHandler_SpoolAndNMRCommands(t *testing.T) {
	ctx := context.Background()

	handler := NewHandler(Services{
		Spools: spoolStub{
			completeFn: func(_ context.Context, spoolID string) (string, error) {
				require.Equal(t, "SP-001-1001", spoolID)
				return "SAGE-9F3B21", nil
			},
			listFn: func(_ context.Context, opts spool.ListOptions) ([]spool.Spool, error) {
				require.Equal(t, spool.StatusPendingCladding, opts.Status)
				return []spool.Spool{}, nil
			},
		},
		NMRs: nmrStub{
			createFn: func(_ context.Context, req nmr.CreateRequest) (*nmr.Document, error) {
				return &nmr.Document{ID: "NMR-000001", DrawingNumber: req.DrawingNumber}, nil
			},
			submitFn: func(_ context.Context, id, date string) (*nmr.Document, error) {
				require.Equal(t, "2026-08-29", date)
				return &nmr.Document{ID: id, Status: nmr.StatusSubmitted}, nil
			},
			responseFn: func(_ context.Context, id string, req nmr.ResponseRequest) (*nmr.Document, error) {
				require.Equal(t, "1", req.Code)
				return &nmr.Document{ID: id, Status: nmr.StatusPendingRev0}, nil
			},
		},
	})

	result, err := handler.Handle(ctx, "complete_cladding", mustJSON(t, CompleteCladdingParams{SpoolID: "SP-001-1001"}))
	require.NoError(t, err)
	resp := result.(CompleteCladdingResponse)
	require.Equal(t, "SAGE-9F3B21", resp.SageCode)
	require.Equal(t, "Cladded - Ready for Assembly", resp.Status)

	_, err = handler.Handle(ctx, "list_spools", mustJSON(t, ListSpoolsParams{Status: "Pending Cladding"}))
	require.NoError(t, err)

	_, err = handler.Handle(ctx, "create_nmr", mustJSON(t, CreateNMRParams{
		ProjectID:     "AS-CL-0001",
		DrawingNumber: "AS-CL-0005000",
		LineItems:     []nmr.LineItemRef{{LineItemID: "LI-0001", ProductID: "PROD-AA11BB"}},
	}))
	require.NoError(t, err)

	_, err = handler.Handle(ctx, "submit_nmr", mustJSON(t, SubmitNMRParams{ID: "NMR-000001", SubmissionDate: "2026-08-29"}))
	require.NoError(t, err)

	doc, err := handler.Handle(ctx, "record_nmr_response", mustJSON(t, NMRResponseParams{ID: "NMR-000001", Code: "1"}))
	require.NoError(t, err)
	require.Equal(t, nmr.StatusPendingRev0, doc.(*nmr.Document).Status)
}

func TestHandler_ErrorMapping(t *testing.T) {
	handler := NewHandler(Services{
		Spools: spoolStub{
			completeFn: func(_ context.Context, _ string) (string, error) {
				return "", spool.ErrSpoolNotFound
			},
		},
	})

	_, err := handler.Handle(context.Background(), "complete_cladding", mustJSON(t, CompleteCladdingParams{SpoolID: "nope"}))
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	require.Equal(t, "SPOOL_NOT_FOUND", apiErr.Code)
}

func TestHandler_UnknownMethod(t *testing.T) {
	handler := NewHandler(Services{})

	_, err := handler.Handle(context.Background(), "frobnicate", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown method")
}
