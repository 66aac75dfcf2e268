package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Accumulator collects per-entity totals during one pass. Sum and max are
// commutative, so accumulation order never changes the result.
type Accumulator struct {
	TotalQuantity   int
	TotalSalesValue decimal.Decimal
	OrderCount      int
	LastActivity    time.Time
}

func (a *Accumulator) addItem(item ItemRecord) {
	a.TotalQuantity += item.Quantity
	a.TotalSalesValue = a.TotalSalesValue.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	a.OrderCount++
	if item.CreatedAt.After(a.LastActivity) {
		a.LastActivity = item.CreatedAt
	}
}

func (a *Accumulator) addOrder(order OrderRecord) {
	a.OrderCount++
	a.TotalSalesValue = a.TotalSalesValue.Add(order.TotalAmount)
	if order.CreatedAt.After(a.LastActivity) {
		a.LastActivity = order.CreatedAt
	}
}

// AggregateByProduct groups the normalized items by product, restricted to
// the window.
func AggregateByProduct(items []ItemRecord, window Window) map[uuid.UUID]*Accumulator {
	out := make(map[uuid.UUID]*Accumulator)
	for _, item := range items {
		if !window.Contains(item.CreatedAt) {
			continue
		}
		acc, ok := out[item.ProductID]
		if !ok {
			acc = &Accumulator{TotalSalesValue: decimal.Zero}
			out[item.ProductID] = acc
		}
		acc.addItem(item)
	}
	return out
}

// AggregateByExecutive groups window orders by their executive. Orders with
// no executive attached are skipped; a status filter of "" admits every
// status.
func AggregateByExecutive(orders []OrderRecord, window Window, status string) map[uuid.UUID]*Accumulator {
	out := make(map[uuid.UUID]*Accumulator)
	for _, order := range orders {
		if order.ExecutiveID == nil {
			continue
		}
		if !window.Contains(order.CreatedAt) {
			continue
		}
		if status != "" && string(order.Status) != status {
			continue
		}
		acc, ok := out[*order.ExecutiveID]
		if !ok {
			acc = &Accumulator{TotalSalesValue: decimal.Zero}
			out[*order.ExecutiveID] = acc
		}
		acc.addOrder(order)
	}
	return out
}
