package assembly_test

import (
	"context"
	"testing"

	"github.com/aasia/cladtrack/internal/domain/assembly"
	"github.com/aasia/cladtrack/internal/domain/spool"
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

func newAssemblyService(repo *mocks.AssemblyRepository, spools *mocks.SpoolRepository) *assembly.Service {
	return assembly.NewService(repo, spools, &fixedTokens{tokens: []string{"7E4F90"}}, nil)
}

func TestAssemblyService_Create(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.AssemblyRepository{}
	spools := &mocks.SpoolRepository{}

	spools.On("GetBySageCode", ctx, "SAGE-AAA111").Return(&spool.Spool{ID: "SP-001-1001"}, nil)
	spools.On("GetBySageCode", ctx, "SAGE-BBB222").Return(&spool.Spool{ID: "SP-001-1002"}, nil)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	joint, err := newAssemblyService(repo, spools).Create(ctx, assembly.CreateRequest{
		Component1: "SAGE-AAA111",
		Component2: "SAGE-BBB222",
		Size:       "8\"",
		WT:         "12.7mm",
		Sequence:   "1",
	})
	require.NoError(t, err)
	require.Equal(t, "AJ-7E4F90", joint.ID)
}

func TestAssemblyService_Create_SameComponent(t *testing.T) {
	svc := newAssemblyService(&mocks.AssemblyRepository{}, &mocks.SpoolRepository{})
	_, err := svc.Create(context.Background(), assembly.CreateRequest{
		Component1: "SAGE-AAA111",
		Component2: "SAGE-AAA111",
	})
	require.ErrorIs(t, err, assembly.ErrSameComponent)
}

func TestAssemblyService_Create_UnknownComponent(t *testing.T) {
	ctx := context.Background()
	spools := &mocks.SpoolRepository{}
	spools.On("GetBySageCode", ctx, "SAGE-AAA111").Return(&spool.Spool{ID: "SP-001-1001"}, nil)
	spools.On("GetBySageCode", ctx, "SAGE-MISSING").Return((*spool.Spool)(nil), repository.ErrNotFound)

	_, err := newAssemblyService(&mocks.AssemblyRepository{}, spools).Create(ctx, assembly.CreateRequest{
		Component1: "SAGE-AAA111",
		Component2: "SAGE-MISSING",
	})
	require.ErrorIs(t, err, assembly.ErrComponentNotFound)
}

func TestAssemblyService_Update_RevalidatesComponents(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.AssemblyRepository{}
	spools := &mocks.SpoolRepository{}

	repo.On("Get", ctx, "AJ-1").Return(&assembly.Joint{
		ID: "AJ-1", Component1: "SAGE-AAA111", Component2: "SAGE-BBB222",
	}, nil)

	// changing component2 to match component1 must be rejected
	same := "SAGE-AAA111"
	_, err := newAssemblyService(repo, spools).Update(ctx, assembly.UpdateRequest{
		ID: "AJ-1", Component2: &same,
	})
	require.ErrorIs(t, err, assembly.ErrSameComponent)

	// a size-only edit skips component resolution
	repo.On("Update", ctx, mock.Anything).Return(nil)
	size := "10\""
	joint, err := newAssemblyService(repo, spools).Update(ctx, assembly.UpdateRequest{ID: "AJ-1", Size: &size})
	require.NoError(t, err)
	require.Equal(t, "10\"", joint.Size)
	spools.AssertNotCalled(t, "GetBySageCode", mock.Anything, mock.Anything)
}
