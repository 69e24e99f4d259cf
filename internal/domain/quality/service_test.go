package quality_test

import (
	"context"
	"testing"
	"time"

	"github.com/aasia/cladtrack/internal/domain/quality"
	"github.com/aasia/cladtrack/internal/domain/spool"
	"github.com/aasia/cladtrack/internal/ident"
	"github.com/aasia/cladtrack/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type seqTokens struct{ n int }

func (s *seqTokens) Next() string {
	s.n++
	return string(rune('A'+s.n-1)) + "00000"
}

var _ ident.TokenSource = (*seqTokens)(nil)

func fixedClock(stamp string) quality.Clock {
	t, _ := time.Parse(time.RFC3339, stamp)
	return func() time.Time { return t }
}

func newQualityService(repo *mocks.JISRepository, spools *mocks.SpoolRepository) *quality.Service {
	return quality.NewService(repo, spools, &seqTokens{}, nil, nil).
		WithClock(fixedClock("2026-04-01T08:30:00Z"))
}

func TestQualityService_EnsureRouting_CladdedPipe(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.JISRepository{}
	spools := &mocks.SpoolRepository{}

	spools.On("Get", ctx, "SP-001-1001").Return(&spool.Spool{
		ID: "SP-001-1001", ItemCategory: "Cladded Pipe", SageCode: "SAGE-AAA111",
	}, nil)
	repo.On("List", ctx, quality.ListOptions{TargetID: "SP-001-1001"}).Return([]quality.Operation(nil), nil)

	var created []*quality.Operation
	repo.On("CreateBatch", ctx, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).([]*quality.Operation) }).
		Return(nil)

	ops, err := newQualityService(repo, spools).EnsureRouting(ctx, "SP-001-1001")
	require.NoError(t, err)
	require.Len(t, ops, 13)
	require.Len(t, created, 13)

	require.Equal(t, "OP 10", ops[0].ProcessName)
	require.Equal(t, "CUT TO LENGTH", ops[0].Description)
	require.Equal(t, "OP 280", ops[12].ProcessName)
	require.Equal(t, "PRE-DELIVERY INSPECTION", ops[12].Description)
	for i, op := range ops {
		require.Equal(t, i+1, op.Sequence)
		require.Equal(t, quality.OpPending, op.Status)
		require.Equal(t, quality.CategoryCladding, op.Category)
	}
}

func TestQualityService_EnsureRouting_FallbackTemplate(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.JISRepository{}
	spools := &mocks.SpoolRepository{}

	spools.On("Get", ctx, "SP-001-2001").Return(&spool.Spool{
		ID: "SP-001-2001", ItemCategory: "Elbow", SageCode: "SAGE-BBB222",
	}, nil)
	repo.On("List", ctx, mock.Anything).Return([]quality.Operation(nil), nil)
	repo.On("CreateBatch", ctx, mock.Anything).Return(nil)

	ops, err := newQualityService(repo, spools).EnsureRouting(ctx, "SP-001-2001")
	require.NoError(t, err)
	require.Len(t, ops, 4)
	require.Equal(t, "RECEIVING INSPECTION", ops[0].Description)
}

func TestQualityService_EnsureRouting_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.JISRepository{}
	spools := &mocks.SpoolRepository{}

	spools.On("Get", ctx, "SP-001-1001").Return(&spool.Spool{
		ID: "SP-001-1001", ItemCategory: "Cladded Pipe", SageCode: "SAGE-AAA111",
	}, nil)
	existing := []quality.Operation{{ID: "JIS-X", TargetID: "SP-001-1001"}}
	repo.On("List", ctx, mock.Anything).Return(existing, nil)

	ops, err := newQualityService(repo, spools).EnsureRouting(ctx, "SP-001-1001")
	require.NoError(t, err)
	require.Equal(t, existing, ops)
	repo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestQualityService_EnsureRouting_RequiresSageCode(t *testing.T) {
	ctx := context.Background()
	spools := &mocks.SpoolRepository{}
	spools.On("Get", ctx, "SP-001-1001").Return(&spool.Spool{
		ID: "SP-001-1001", ItemCategory: "Cladded Pipe",
	}, nil)

	_, err := newQualityService(&mocks.JISRepository{}, spools).EnsureRouting(ctx, "SP-001-1001")
	require.ErrorIs(t, err, quality.ErrSpoolNotCladded)
}

func TestQualityService_RecordAction(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		action     quality.Action
		wantStatus quality.OpStatus
		wantStart  bool
		wantFinish bool
	}{
		{quality.ActionStart, quality.OpActive, true, false},
		{quality.ActionFinish, quality.OpCompleted, false, true},
		{quality.ActionSkip, quality.OpSkipped, false, true},
	}
	for _, tc := range cases {
		t.Run(string(tc.action), func(t *testing.T) {
			repo := &mocks.JISRepository{}
			repo.On("Get", ctx, "JIS-1").Return(&quality.Operation{
				ID: "JIS-1", TargetID: "SP-001-1001", ProcessName: "OP 50", Status: quality.OpPending,
			}, nil)
			repo.On("Update", ctx, mock.Anything).Return(nil)

			op, err := newQualityService(repo, &mocks.SpoolRepository{}).
				RecordAction(ctx, "JIS-1", tc.action, "QC-042")
			require.NoError(t, err)
			require.Equal(t, tc.wantStatus, op.Status)
			require.Equal(t, "QC-042", op.InspectorID)
			if tc.wantStart {
				require.Equal(t, "2026-04-01T08:30:00Z", op.StartDate)
			} else {
				require.Empty(t, op.StartDate)
			}
			if tc.wantFinish {
				require.Equal(t, "2026-04-01T08:30:00Z", op.FinishDate)
			} else {
				require.Empty(t, op.FinishDate)
			}
		})
	}
}

func TestQualityService_RecordAction_RequiresInspector(t *testing.T) {
	svc := newQualityService(&mocks.JISRepository{}, &mocks.SpoolRepository{})
	_, err := svc.RecordAction(context.Background(), "JIS-1", quality.ActionStart, "")
	require.ErrorIs(t, err, quality.ErrInspectorRequired)
}

func TestQualityService_AddOperation(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.JISRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	op, err := newQualityService(repo, &mocks.SpoolRepository{}).AddOperation(ctx, quality.AddOperationRequest{
		TargetID:    "SP-001-1001",
		ProcessName: "OP 155",
		Description: "EXTRA NDT PASS",
		Sequence:    9,
	})
	require.NoError(t, err)
	require.Equal(t, "JIS-A00000", op.ID)
	require.Equal(t, quality.OpPending, op.Status)
}
