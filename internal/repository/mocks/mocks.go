// Package mocks provides testify mocks for the repository contracts.
package mocks

import (
	"context"

	"github.com/aasia/cladtrack/internal/domain/activity"
	"github.com/aasia/cladtrack/internal/domain/assembly"
	"github.com/aasia/cladtrack/internal/domain/mto"
	"github.com/aasia/cladtrack/internal/domain/nmr"
	"github.com/aasia/cladtrack/internal/domain/order"
	"github.com/aasia/cladtrack/internal/domain/project"
	"github.com/aasia/cladtrack/internal/domain/quality"
	"github.com/aasia/cladtrack/internal/domain/spool"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// CounterRepository is a mock for repository.CounterRepository.
type CounterRepository struct {
	mock.Mock
}

func (m *CounterRepository) Allocate(ctx context.Context, name string, n int) (int64, error) {
	args := m.Called(ctx, name, n)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CounterRepository) Current(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CounterRepository) Set(ctx context.Context, name string, next int64) error {
	args := m.Called(ctx, name, next)
	return args.Error(0)
}

// OrderRepository is a mock for order.Repository plus the project cascade.
type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreatePurchaseOrder(ctx context.Context, po *order.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *OrderRepository) GetPurchaseOrder(ctx context.Context, id string) (*order.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if po, ok := args.Get(0).(*order.PurchaseOrder); ok {
		return po, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) UpdatePurchaseOrder(ctx context.Context, po *order.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *OrderRepository) DeletePurchaseOrder(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *OrderRepository) ListPurchaseOrders(ctx context.Context, projectID string) ([]order.PurchaseOrder, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]order.PurchaseOrder); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) CreateLineItemBatch(ctx context.Context, items []*order.LineItem, spools []*spool.Spool) error {
	args := m.Called(ctx, items, spools)
	return args.Error(0)
}

func (m *OrderRepository) GetLineItem(ctx context.Context, id string) (*order.LineItem, error) {
	args := m.Called(ctx, id)
	if li, ok := args.Get(0).(*order.LineItem); ok {
		return li, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) UpdateLineItem(ctx context.Context, li *order.LineItem) error {
	args := m.Called(ctx, li)
	return args.Error(0)
}

func (m *OrderRepository) DeleteLineItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *OrderRepository) ListLineItems(ctx context.Context, opts order.ListLineItemsOptions) ([]order.LineItem, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]order.LineItem); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderRepository) DeleteLineItemsByPO(ctx context.Context, poID string) error {
	args := m.Called(ctx, poID)
	return args.Error(0)
}

func (m *OrderRepository) DeleteByProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// SpoolRepository is a mock for spool.Repository plus the cascade deletes.
type SpoolRepository struct {
	mock.Mock
}

func (m *SpoolRepository) Get(ctx context.Context, id string) (*spool.Spool, error) {
	args := m.Called(ctx, id)
	if sp, ok := args.Get(0).(*spool.Spool); ok {
		return sp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SpoolRepository) Update(ctx context.Context, sp *spool.Spool) error {
	args := m.Called(ctx, sp)
	return args.Error(0)
}

func (m *SpoolRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *SpoolRepository) List(ctx context.Context, opts spool.ListOptions) ([]spool.Spool, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]spool.Spool); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SpoolRepository) GetBySageCode(ctx context.Context, sageCode string) (*spool.Spool, error) {
	args := m.Called(ctx, sageCode)
	if sp, ok := args.Get(0).(*spool.Spool); ok {
		return sp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SpoolRepository) DeleteByProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *SpoolRepository) DeleteByPO(ctx context.Context, poID string) error {
	args := m.Called(ctx, poID)
	return args.Error(0)
}

func (m *SpoolRepository) DeleteByLineItem(ctx context.Context, lineItemID string) error {
	args := m.Called(ctx, lineItemID)
	return args.Error(0)
}

// NMRRepository is a mock for nmr.Repository.
type NMRRepository struct {
	mock.Mock
}

func (m *NMRRepository) Create(ctx context.Context, doc *nmr.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *NMRRepository) Get(ctx context.Context, id string) (*nmr.Document, error) {
	args := m.Called(ctx, id)
	if doc, ok := args.Get(0).(*nmr.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NMRRepository) Update(ctx context.Context, doc *nmr.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *NMRRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NMRRepository) List(ctx context.Context, opts nmr.ListOptions) ([]nmr.Document, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]nmr.Document); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NMRRepository) DrawingNumberExists(ctx context.Context, normalized, excludeID string) (bool, error) {
	args := m.Called(ctx, normalized, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *NMRRepository) LinkedLineItems(ctx context.Context, lineItemIDs []string, excludeID string) ([]string, error) {
	args := m.Called(ctx, lineItemIDs, excludeID)
	if list, ok := args.Get(0).([]string); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// AssemblyRepository is a mock for assembly.Repository.
type AssemblyRepository struct {
	mock.Mock
}

func (m *AssemblyRepository) Create(ctx context.Context, joint *assembly.Joint) error {
	args := m.Called(ctx, joint)
	return args.Error(0)
}

func (m *AssemblyRepository) Get(ctx context.Context, id string) (*assembly.Joint, error) {
	args := m.Called(ctx, id)
	if joint, ok := args.Get(0).(*assembly.Joint); ok {
		return joint, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AssemblyRepository) Update(ctx context.Context, joint *assembly.Joint) error {
	args := m.Called(ctx, joint)
	return args.Error(0)
}

func (m *AssemblyRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AssemblyRepository) List(ctx context.Context) ([]assembly.Joint, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]assembly.Joint); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// JISRepository is a mock for quality.Repository.
type JISRepository struct {
	mock.Mock
}

func (m *JISRepository) Create(ctx context.Context, op *quality.Operation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *JISRepository) CreateBatch(ctx context.Context, ops []*quality.Operation) error {
	args := m.Called(ctx, ops)
	return args.Error(0)
}

func (m *JISRepository) Get(ctx context.Context, id string) (*quality.Operation, error) {
	args := m.Called(ctx, id)
	if op, ok := args.Get(0).(*quality.Operation); ok {
		return op, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *JISRepository) Update(ctx context.Context, op *quality.Operation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *JISRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *JISRepository) List(ctx context.Context, opts quality.ListOptions) ([]quality.Operation, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]quality.Operation); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// MTORepository is a mock for mto.Repository.
type MTORepository struct {
	mock.Mock
}

func (m *MTORepository) Create(ctx context.Context, t *mto.MTO) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MTORepository) Get(ctx context.Context, id string) (*mto.MTO, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*mto.MTO); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MTORepository) Update(ctx context.Context, t *mto.MTO) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MTORepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MTORepository) List(ctx context.Context, opts mto.ListOptions) ([]mto.MTO, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]mto.MTO); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MTORepository) DeleteByProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MTORepository) DeleteByPO(ctx context.Context, poID string) error {
	args := m.Called(ctx, poID)
	return args.Error(0)
}

func (m *MTORepository) DeleteByNMR(ctx context.Context, nmrID string) error {
	args := m.Called(ctx, nmrID)
	return args.Error(0)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
