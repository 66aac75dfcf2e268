package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

// UnboundedInventoryDays is the sentinel reported when velocity is zero; a
// fixed large value keeps sort and display well-defined where "infinite
// runway" would not.
const UnboundedInventoryDays = 999

// AgeDays computes whole days since the product's last sale in the window,
// or since creation when it never sold. Negative spans (reference after the
// window end) clamp to zero.
func AgeDays(product ProductRecord, acc *Accumulator, window Window) int {
	reference := product.CreatedAt
	if acc != nil && !acc.LastActivity.IsZero() {
		reference = acc.LastActivity
	}
	age := DaysBetween(reference, window.To)
	if age < 0 {
		return 0
	}
	return age
}

// SalesVelocity is units sold per day across the window. The window's Days
// floor of 1 guards zero-width ranges.
func SalesVelocity(totalQuantity int, window Window) float64 {
	return float64(totalQuantity) / float64(window.Days())
}

// DaysOfInventory estimates days until stock depletes at the current
// velocity, reporting the sentinel when there is no velocity to divide by.
func DaysOfInventory(stock int, velocity float64, sentinel int) int {
	if sentinel <= 0 {
		sentinel = UnboundedInventoryDays
	}
	if velocity <= 0 {
		return sentinel
	}
	days := int(math.Round(float64(stock) / velocity))
	if days > sentinel {
		return sentinel
	}
	return days
}

// InventoryValue is the effective price times current stock. Prices were
// normalized at ingestion, so no coalescing happens here.
func InventoryValue(product ProductRecord) decimal.Decimal {
	return product.EffectivePrice.Mul(decimal.NewFromInt(int64(product.Stock)))
}
