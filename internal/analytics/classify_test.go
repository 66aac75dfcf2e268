package analytics

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestClassifyAgeBoundaryExactness(t *testing.T) {
	cases := []struct {
		ageDays  int
		label    string
		severity Severity
	}{
		{0, "0-15 days", SeverityRecent},
		{15, "0-15 days", SeverityRecent},
		{16, "16-30 days", SeverityModerate},
		{30, "16-30 days", SeverityModerate},
		{31, "31-45 days", SeverityConcerning},
		{45, "31-45 days", SeverityConcerning},
		{46, "45+ days", SeverityCritical},
		{400, "45+ days", SeverityCritical},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("age=%d", tc.ageDays), func(t *testing.T) {
			label, severity := ClassifyAge(tc.ageDays, AgingBasePeriodDays)
			require.Equal(t, tc.label, label)
			require.Equal(t, tc.severity, severity)
		})
	}
}

func TestClassifyAgeBucketsDeriveFromBasePeriod(t *testing.T) {
	label, severity := ClassifyAge(21, 10)
	require.Equal(t, "21-30 days", label)
	require.Equal(t, SeverityConcerning, severity)

	label, _ = ClassifyAge(31, 10)
	require.Equal(t, "30+ days", label)
}

func TestClassifyStock(t *testing.T) {
	require.Equal(t, StockStatusCritical, ClassifyStock(2, 10)) // 2 < 2.5
	require.Equal(t, StockStatusLow, ClassifyStock(4, 10))      // 4 < 5
	require.Equal(t, StockStatusAdequate, ClassifyStock(5, 10))
	require.Equal(t, StockStatusAdequate, ClassifyStock(0, 0))
}

func TestAssignTiersPercentiles(t *testing.T) {
	rows := make([]ExecutiveRow, 10)
	for i := range rows {
		rows[i] = ExecutiveRow{ExecutiveID: uuid.New(), TotalOrders: 100 - i*10}
	}

	AssignTiers(rows, 0.2, 0.5)

	for i, row := range rows {
		switch {
		case i < 2:
			require.Equal(t, TierHigh, row.Tier, "rank %d", i+1)
		case i < 5:
			require.Equal(t, TierMedium, row.Tier, "rank %d", i+1)
		default:
			require.Equal(t, TierLow, row.Tier, "rank %d", i+1)
		}
	}
}

func TestAssignTiersZeroOrdersAlwaysLow(t *testing.T) {
	rows := []ExecutiveRow{
		{ExecutiveID: uuid.New(), TotalOrders: 0},
	}
	AssignTiers(rows, 0.2, 0.5)
	require.Equal(t, TierLow, rows[0].Tier)
}

func TestAssignTiersEmptySet(t *testing.T) {
	var rows []ExecutiveRow
	AssignTiers(rows, 0.2, 0.5)
	require.Empty(t, rows)
}

func TestAssignTiersTieBreakIsDeterministic(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	rows := []ExecutiveRow{
		{ExecutiveID: b, TotalOrders: 5},
		{ExecutiveID: a, TotalOrders: 5},
	}
	AssignTiers(rows, 0.2, 0.5)
	require.Equal(t, a, rows[0].ExecutiveID)

	reversed := []ExecutiveRow{
		{ExecutiveID: a, TotalOrders: 5},
		{ExecutiveID: b, TotalOrders: 5},
	}
	AssignTiers(reversed, 0.2, 0.5)
	require.Equal(t, a, reversed[0].ExecutiveID)
}
