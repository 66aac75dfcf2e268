package analytics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/nikhilbhatia/shopsight-backend/pkg/enums"
)

func testWindow() Window {
	return Window{From: testNow.AddDate(0, 0, -30), To: testNow}
}

func itemAt(productID uuid.UUID, qty int, price string, at time.Time) ItemRecord {
	return ItemRecord{
		OrderID:   uuid.New(),
		ProductID: productID,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(price),
		CreatedAt: at,
	}
}

func TestAggregateByProductSumsWindowItems(t *testing.T) {
	w := testWindow()
	productID := uuid.New()

	items := []ItemRecord{
		itemAt(productID, 3, "50", w.To.AddDate(0, 0, -1)),
		itemAt(productID, 7, "50", w.To.AddDate(0, 0, -2)),
		itemAt(uuid.New(), 100, "1", w.From.AddDate(0, 0, -5)), // outside window
	}

	aggs := AggregateByProduct(items, w)
	require.Len(t, aggs, 1)

	acc := aggs[productID]
	require.Equal(t, 10, acc.TotalQuantity)
	require.True(t, acc.TotalSalesValue.Equal(decimal.RequireFromString("500")))
	require.Equal(t, 2, acc.OrderCount)
	require.True(t, acc.LastActivity.Equal(w.To.AddDate(0, 0, -1)))
}

func TestAggregateByProductIsOrderIndependent(t *testing.T) {
	w := testWindow()
	productA := uuid.New()
	productB := uuid.New()

	items := []ItemRecord{
		itemAt(productA, 2, "19.99", w.To.AddDate(0, 0, -3)),
		itemAt(productA, 5, "19.99", w.To.AddDate(0, 0, -1)),
		itemAt(productB, 1, "7.25", w.To.AddDate(0, 0, -10)),
		itemAt(productA, 4, "21.00", w.To.AddDate(0, 0, -7)),
		itemAt(productB, 9, "7.25", w.To.AddDate(0, 0, -2)),
	}

	baseline := AggregateByProduct(items, w)

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		shuffled := make([]ItemRecord, len(items))
		copy(shuffled, items)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := AggregateByProduct(shuffled, w)
		require.Len(t, got, len(baseline))
		for id, want := range baseline {
			acc := got[id]
			require.NotNil(t, acc)
			require.Equal(t, want.TotalQuantity, acc.TotalQuantity)
			require.True(t, want.TotalSalesValue.Equal(acc.TotalSalesValue))
			require.Equal(t, want.OrderCount, acc.OrderCount)
			require.True(t, want.LastActivity.Equal(acc.LastActivity))
		}
	}
}

func TestAggregateByExecutiveFiltersStatusAndWindow(t *testing.T) {
	w := testWindow()
	executiveID := uuid.New()

	orders := []OrderRecord{
		{ID: uuid.New(), ExecutiveID: &executiveID, Status: enums.OrderStatusDelivered, TotalAmount: decimal.RequireFromString("100"), CreatedAt: w.To.AddDate(0, 0, -1)},
		{ID: uuid.New(), ExecutiveID: &executiveID, Status: enums.OrderStatusCancelled, TotalAmount: decimal.RequireFromString("40"), CreatedAt: w.To.AddDate(0, 0, -1)},
		{ID: uuid.New(), ExecutiveID: &executiveID, Status: enums.OrderStatusDelivered, TotalAmount: decimal.RequireFromString("999"), CreatedAt: w.From.AddDate(0, 0, -1)},
		{ID: uuid.New(), ExecutiveID: nil, Status: enums.OrderStatusDelivered, TotalAmount: decimal.RequireFromString("55"), CreatedAt: w.To},
	}

	aggs := AggregateByExecutive(orders, w, string(enums.OrderStatusDelivered))
	require.Len(t, aggs, 1)
	require.Equal(t, 1, aggs[executiveID].OrderCount)
	require.True(t, aggs[executiveID].TotalSalesValue.Equal(decimal.RequireFromString("100")))

	all := AggregateByExecutive(orders, w, "")
	require.Equal(t, 2, all[executiveID].OrderCount)
}
