package analytics

import (
	"sort"
	"strings"
)

// SortColumn selects the aging view's sort key.
type SortColumn string

const (
	SortByAgeDays        SortColumn = "age_days"
	SortByInventoryValue SortColumn = "inventory_value"
	SortByQuantity       SortColumn = "total_quantity"
)

// SortDirection toggles ascending/descending on repeated column clicks.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSort normalizes user-supplied sort parameters, defaulting to age
// descending for anything unrecognized.
func ParseSort(column, direction string) (SortColumn, SortDirection) {
	col := SortColumn(strings.ToLower(strings.TrimSpace(column)))
	switch col {
	case SortByAgeDays, SortByInventoryValue, SortByQuantity:
	default:
		col = SortByAgeDays
	}

	dir := SortDirection(strings.ToLower(strings.TrimSpace(direction)))
	if dir != SortAsc && dir != SortDesc {
		dir = SortDesc
	}
	return col, dir
}

// SortAgingRows orders the rows by the selected column. Product id breaks
// ties so repeated passes over the same input produce identical output.
func SortAgingRows(rows []AgingRow, column SortColumn, direction SortDirection) {
	less := func(i, j int) bool {
		switch column {
		case SortByInventoryValue:
			if !rows[i].InventoryValue.Equal(rows[j].InventoryValue) {
				return rows[i].InventoryValue.LessThan(rows[j].InventoryValue)
			}
		case SortByQuantity:
			if rows[i].SoldQuantity != rows[j].SoldQuantity {
				return rows[i].SoldQuantity < rows[j].SoldQuantity
			}
		default:
			if rows[i].AgeDays != rows[j].AgeDays {
				return rows[i].AgeDays < rows[j].AgeDays
			}
		}
		return rows[i].ProductID.String() < rows[j].ProductID.String()
	}

	if direction == SortDesc {
		sort.SliceStable(rows, func(i, j int) bool { return less(j, i) })
		return
	}
	sort.SliceStable(rows, less)
}

// SortFastMovers orders by total quantity descending, product id ascending
// on ties.
func SortFastMovers(rows []FastMoverRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalQuantity != rows[j].TotalQuantity {
			return rows[i].TotalQuantity > rows[j].TotalQuantity
		}
		return rows[i].ProductID.String() < rows[j].ProductID.String()
	})
}

// TopN slices after the full sort; slicing earlier would bias the sums.
func TopN[T any](rows []T, n int) []T {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}
