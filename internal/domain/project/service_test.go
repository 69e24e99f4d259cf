package project_test

import (
	"context"
	"testing"

	"github.com/aasia/cladtrack/internal/domain/project"
	"github.com/aasia/cladtrack/internal/repository"
	"github.com/aasia/cladtrack/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	counters := &mocks.CounterRepository{}
	counters.On("Allocate", ctx, project.CounterName, 1).Return(int64(7), nil)

	var created *project.Project
	repo.On("Create", ctx, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(*project.Project) }).
		Return(nil)

	svc := project.NewService(repo, counters, nil, nil, nil, nil)
	proj, err := svc.Create(ctx, project.CreateRequest{
		Name:     "Subsea tie-in",
		Customer: "Aramco",
		EndUser:  "Marjan",
	})
	require.NoError(t, err)
	require.Equal(t, "AS-CL-007", proj.ID)
	require.Equal(t, "Aramco / Marjan", proj.ClientName)
	require.Equal(t, created, proj)
}

func TestProjectService_Create_Validation(t *testing.T) {
	svc := project.NewService(&mocks.ProjectRepository{}, &mocks.CounterRepository{}, nil, nil, nil, nil)
	_, err := svc.Create(context.Background(), project.CreateRequest{Name: "   "})
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestProjectService_Update_ClientNameDerivation(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "AS-CL-001").Return(&project.Project{
		ID: "AS-CL-001", Customer: "Aramco", EndUser: "Marjan", ClientName: "Aramco / Marjan",
	}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := project.NewService(repo, &mocks.CounterRepository{}, nil, nil, nil, nil)

	endUser := "Safaniya"
	proj, err := svc.Update(ctx, project.UpdateRequest{ID: "AS-CL-001", EndUser: &endUser})
	require.NoError(t, err)
	require.Equal(t, "Aramco / Safaniya", proj.ClientName)

	// client name is left alone when either side goes empty
	empty := ""
	proj, err = svc.Update(ctx, project.UpdateRequest{ID: "AS-CL-001", Customer: &empty})
	require.NoError(t, err)
	require.Equal(t, "Aramco / Marjan", proj.ClientName)
}

func TestProjectService_Delete_Cascades(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	orders := &mocks.OrderRepository{}
	spools := &mocks.SpoolRepository{}
	mtos := &mocks.MTORepository{}

	repo.On("Get", ctx, "AS-CL-001").Return(&project.Project{ID: "AS-CL-001"}, nil)
	spools.On("DeleteByProject", ctx, "AS-CL-001").Return(nil)
	mtos.On("DeleteByProject", ctx, "AS-CL-001").Return(nil)
	orders.On("DeleteByProject", ctx, "AS-CL-001").Return(nil)
	repo.On("Delete", ctx, "AS-CL-001").Return(nil)

	svc := project.NewService(repo, &mocks.CounterRepository{}, orders, spools, mtos, nil)
	require.NoError(t, svc.Delete(ctx, "AS-CL-001"))

	spools.AssertCalled(t, "DeleteByProject", ctx, "AS-CL-001")
	mtos.AssertCalled(t, "DeleteByProject", ctx, "AS-CL-001")
	orders.AssertCalled(t, "DeleteByProject", ctx, "AS-CL-001")
}

func TestProjectService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, "AS-CL-404").Return((*project.Project)(nil), repository.ErrNotFound)

	svc := project.NewService(repo, &mocks.CounterRepository{}, nil, nil, nil, nil)
	_, err := svc.Get(ctx, "AS-CL-404")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}
