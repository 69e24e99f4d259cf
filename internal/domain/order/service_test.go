package order_test

import (
	"context"
	"testing"

	"github.com/aasia/cladtrack/internal/domain/order"
	"github.com/aasia/cladtrack/internal/domain/project"
	"github.com/aasia/cladtrack/internal/domain/spool"
	"github.com/aasia/cladtrack/internal/ident"
	"github.com/aasia/cladtrack/internal/repository"
	"github.com/aasia/cladtrack/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixedTokens struct{ tokens []string }

func (f *fixedTokens) Next() string {
	tok := f.tokens[0]
	f.tokens = f.tokens[1:]
	return tok
}

func newOrderService(
	repo *mocks.OrderRepository,
	projects *mocks.ProjectRepository,
	counters *mocks.CounterRepository,
	spools *mocks.SpoolRepository,
	mtos *mocks.MTORepository,
	tokens ident.TokenSource,
) *order.Service {
	return order.NewService(repo, projects, counters, spools, mtos, tokens, nil, nil)
}

func TestOrderService_CreateLineItems(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.OrderRepository{}
	projects := &mocks.ProjectRepository{}
	counters := &mocks.CounterRepository{}

	projects.On("Get", ctx, "AS-CL-001").Return(&project.Project{ID: "AS-CL-001"}, nil)
	counters.On("Allocate", ctx, order.LineItemCounterName, 2).Return(int64(5), nil)

	var gotItems []*order.LineItem
	var gotSpools []*spool.Spool
	repo.On("CreateLineItemBatch", ctx, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			gotItems = args.Get(1).([]*order.LineItem)
			gotSpools = args.Get(2).([]*spool.Spool)
		}).
		Return(nil)

	svc := newOrderService(repo, projects, counters, nil, nil, nil)
	result, err := svc.CreateLineItems(ctx, []order.LineItemRequest{
		{POID: "PO-X", ProjectID: "AS-CL-001", ItemCategory: "Cladded Pipe", PipeLength: 13},
		{POID: "PO-X", ProjectID: "AS-CL-001", ItemCategory: "Flange", Quantity: 3},
	})
	require.NoError(t, err)

	require.Len(t, gotItems, 2)
	require.Equal(t, "LI-0005", gotItems[0].ID)
	require.Equal(t, int64(5), gotItems[0].Number)
	require.Equal(t, "LI-0006", gotItems[1].ID)
	require.Equal(t, int64(6), gotItems[1].Number)

	// 13 m of pipe -> 2 spools, 3 flanges -> 3 spools
	require.Len(t, gotSpools, 5)
	require.Equal(t, "SP-001-5001", gotSpools[0].ID)
	require.Equal(t, "SP-001-6003", gotSpools[4].ID)

	require.Len(t, result.LineItems, 2)
	require.Len(t, result.Spools, 5)
}

func TestOrderService_CreateLineItems_EmptyBatch(t *testing.T) {
	svc := newOrderService(&mocks.OrderRepository{}, &mocks.ProjectRepository{}, &mocks.CounterRepository{}, nil, nil, nil)
	_, err := svc.CreateLineItems(context.Background(), nil)
	require.ErrorIs(t, err, order.ErrEmptyBatch)
}

func TestOrderService_CreateLineItems_UnknownProject(t *testing.T) {
	ctx := context.Background()
	projects := &mocks.ProjectRepository{}
	projects.On("Get", ctx, "AS-CL-999").Return((*project.Project)(nil), repository.ErrNotFound)

	svc := newOrderService(&mocks.OrderRepository{}, projects, &mocks.CounterRepository{}, nil, nil, nil)
	_, err := svc.CreateLineItems(ctx, []order.LineItemRequest{
		{POID: "PO-X", ProjectID: "AS-CL-999", ItemCategory: "Flange"},
	})
	require.ErrorIs(t, err, order.ErrProjectNotFound)
}

func TestOrderService_CreatePurchaseOrder(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.OrderRepository{}
	projects := &mocks.ProjectRepository{}
	projects.On("Get", ctx, "AS-CL-001").Return(&project.Project{ID: "AS-CL-001"}, nil)
	repo.On("CreatePurchaseOrder", ctx, mock.Anything).Return(nil)

	tokens := &fixedTokens{tokens: []string{"9F3B21"}}
	svc := newOrderService(repo, projects, &mocks.CounterRepository{}, nil, nil, tokens)

	po, err := svc.CreatePurchaseOrder(ctx, order.CreatePORequest{
		ProjectID: "AS-CL-001",
		PONumber:  "4500012345",
	})
	require.NoError(t, err)
	require.Equal(t, "PO-9F3B21", po.ID)
	require.Equal(t, "4500012345", po.PONumber)
}

func TestOrderService_CreatePurchaseOrder_Validation(t *testing.T) {
	svc := newOrderService(&mocks.OrderRepository{}, &mocks.ProjectRepository{}, &mocks.CounterRepository{}, nil, nil, nil)
	_, err := svc.CreatePurchaseOrder(context.Background(), order.CreatePORequest{ProjectID: "AS-CL-001"})
	require.ErrorIs(t, err, order.ErrInvalidInput)
}

func TestOrderService_DeletePurchaseOrder_Cascades(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.OrderRepository{}
	spools := &mocks.SpoolRepository{}
	mtos := &mocks.MTORepository{}

	repo.On("GetPurchaseOrder", ctx, "PO-X").Return(&order.PurchaseOrder{ID: "PO-X"}, nil)
	spools.On("DeleteByPO", ctx, "PO-X").Return(nil)
	mtos.On("DeleteByPO", ctx, "PO-X").Return(nil)
	repo.On("DeleteLineItemsByPO", ctx, "PO-X").Return(nil)
	repo.On("DeletePurchaseOrder", ctx, "PO-X").Return(nil)

	svc := newOrderService(repo, &mocks.ProjectRepository{}, &mocks.CounterRepository{}, spools, mtos, nil)
	require.NoError(t, svc.DeletePurchaseOrder(ctx, "PO-X"))

	spools.AssertCalled(t, "DeleteByPO", ctx, "PO-X")
	mtos.AssertCalled(t, "DeleteByPO", ctx, "PO-X")
	repo.AssertCalled(t, "DeleteLineItemsByPO", ctx, "PO-X")
}

func TestOrderService_DeleteLineItem_RemovesOwnSpools(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.OrderRepository{}
	spools := &mocks.SpoolRepository{}

	repo.On("GetLineItem", ctx, "LI-0005").Return(&order.LineItem{ID: "LI-0005"}, nil)
	spools.On("DeleteByLineItem", ctx, "LI-0005").Return(nil)
	repo.On("DeleteLineItem", ctx, "LI-0005").Return(nil)

	svc := newOrderService(repo, &mocks.ProjectRepository{}, &mocks.CounterRepository{}, spools, nil, nil)
	require.NoError(t, svc.DeleteLineItem(ctx, "LI-0005"))
	spools.AssertCalled(t, "DeleteByLineItem", ctx, "LI-0005")
}

func TestOrderService_UpdateLineItem_DoesNotTouchSpools(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.OrderRepository{}
	spools := &mocks.SpoolRepository{}

	current := &order.LineItem{ID: "LI-0005", ItemCategory: "Cladded Pipe", PipeLength: 12}
	repo.On("GetLineItem", ctx, "LI-0005").Return(current, nil)
	repo.On("UpdateLineItem", ctx, mock.Anything).Return(nil)

	newLength := 60.0
	svc := newOrderService(repo, &mocks.ProjectRepository{}, &mocks.CounterRepository{}, spools, nil, nil)
	updated, err := svc.UpdateLineItem(ctx, order.UpdateLineItemRequest{ID: "LI-0005", PipeLength: &newLength})
	require.NoError(t, err)
	require.Equal(t, 60.0, updated.PipeLength)

	// editing never regenerates or deletes spools
	spools.AssertNotCalled(t, "DeleteByLineItem", mock.Anything, mock.Anything)
}
