package order_test

import (
	"testing"
	"time"

	"github.com/aasia/cladtrack/internal/domain/order"
	"github.com/aasia/cladtrack/internal/domain/spool"
	"github.com/stretchr/testify/require"
)

func TestSpoolCount_PipeCategories(t *testing.T) {
	cases := []struct {
		name       string
		pipeLength float64
		want       int
	}{
		{"zero length yields no spools", 0, 0},
		{"negative length yields no spools", -3, 0},
		{"exactly one segment", 12, 1},
		{"just over one segment", 13, 2},
		{"two exact segments", 24, 2},
		{"fractional segment rounds up", 0.5, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, order.SpoolCount("Cladded Pipe", 5, tc.pipeLength))
		})
	}
}

func TestSpoolCount_DiscreteCategories(t *testing.T) {
	require.Equal(t, 4, order.SpoolCount("Flange", 4, 0))
	require.Equal(t, 1, order.SpoolCount("Flange", 0, 0))
	require.Equal(t, 1, order.SpoolCount("Fitting", -2, 100))
	// lowercase "pipe" is not a pipe category
	require.Equal(t, 3, order.SpoolCount("pipe fitting", 3, 24))
}

func TestDeriveSpools_PipeLineItem(t *testing.T) {
	now := time.Now()
	li := &order.LineItem{
		ID:           "LI-0007",
		Number:       7,
		POID:         "PO-A1B2C3",
		ProjectID:    "AS-CL-002",
		ItemCategory: "Cladded Pipe",
		Description:  "8in cladded pipe",
		Quantity:     1,
		PipeLength:   25,
	}

	spools := order.DeriveSpools(li, now)
	require.Len(t, spools, 3)

	require.Equal(t, "SP-002-7001", spools[0].ID)
	require.Equal(t, "SP-002-7002", spools[1].ID)
	require.Equal(t, "SP-002-7003", spools[2].ID)

	for _, sp := range spools {
		require.Equal(t, "BC-"+sp.ID, sp.Barcode)
		require.Equal(t, spool.StatusPendingCladding, sp.Status)
		require.Empty(t, sp.SageCode)
		require.Equal(t, float64(12), sp.QtyLength)
		require.Equal(t, li.ID, sp.LineItemID)
		require.Equal(t, li.ProjectID, sp.ProjectID)
		require.Equal(t, li.POID, sp.POID)
		require.Equal(t, li.ItemCategory, sp.ItemCategory)
	}
}

func TestDeriveSpools_DiscreteLineItem(t *testing.T) {
	li := &order.LineItem{
		ID:           "LI-0012",
		Number:       12,
		POID:         "PO-A1B2C3",
		ProjectID:    "AS-CL-005",
		ItemCategory: "Flange",
		Quantity:     2,
	}

	spools := order.DeriveSpools(li, time.Now())
	require.Len(t, spools, 2)
	require.Equal(t, "SP-005-12001", spools[0].ID)
	require.Equal(t, "SP-005-12002", spools[1].ID)
	require.Equal(t, float64(1), spools[0].QtyLength)
}
