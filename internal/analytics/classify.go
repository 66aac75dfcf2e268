package analytics

import (
	"fmt"
	"math"
	"sort"
)

// AgingBasePeriodDays is the single tunable aging threshold; the deeper cuts
// are fixed multiples of it so the bands cannot drift apart.
const AgingBasePeriodDays = 15

// Severity qualifies an aging bucket for the dashboard.
type Severity string

const (
	SeverityRecent     Severity = "recent"
	SeverityModerate   Severity = "moderate"
	SeverityConcerning Severity = "concerning"
	SeverityCritical   Severity = "critical"
)

// StockStatus relates current stock to window sales.
type StockStatus string

const (
	StockStatusCritical StockStatus = "critical"
	StockStatusLow      StockStatus = "low"
	StockStatusAdequate StockStatus = "adequate"
)

// Tier is the relative performance classification of a sales executive.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// AgingBucketLabels returns the display labels for the four bands derived
// from the base period, oldest first omitted - ordering is recent to
// critical.
func AgingBucketLabels(basePeriodDays int) []string {
	if basePeriodDays <= 0 {
		basePeriodDays = AgingBasePeriodDays
	}
	return []string{
		fmt.Sprintf("0-%d days", basePeriodDays),
		fmt.Sprintf("%d-%d days", basePeriodDays+1, 2*basePeriodDays),
		fmt.Sprintf("%d-%d days", 2*basePeriodDays+1, 3*basePeriodDays),
		fmt.Sprintf("%d+ days", 3*basePeriodDays),
	}
}

// ClassifyAge buckets an age in days, evaluated top-down with the first
// match winning.
func ClassifyAge(ageDays, basePeriodDays int) (string, Severity) {
	if basePeriodDays <= 0 {
		basePeriodDays = AgingBasePeriodDays
	}
	labels := AgingBucketLabels(basePeriodDays)
	switch {
	case ageDays > 3*basePeriodDays:
		return labels[3], SeverityCritical
	case ageDays > 2*basePeriodDays:
		return labels[2], SeverityConcerning
	case ageDays > basePeriodDays:
		return labels[1], SeverityModerate
	default:
		return labels[0], SeverityRecent
	}
}

// ClassifyStock relates stock on hand to the quantity sold in the window.
func ClassifyStock(stock, soldQuantity int) StockStatus {
	sold := float64(soldQuantity)
	switch {
	case float64(stock) < sold*0.25:
		return StockStatusCritical
	case float64(stock) < sold*0.5:
		return StockStatusLow
	default:
		return StockStatusAdequate
	}
}

// AssignTiers ranks the rows descending by total orders (ties broken by
// executive id so the result is deterministic) and assigns percentile
// tiers in place: top ceil(N*highPct) high, through ceil(N*mediumPct)
// medium, remainder low. Executives with zero orders always land in low.
// An empty slice stays empty; classification never fails.
func AssignTiers(rows []ExecutiveRow, highPct, mediumPct float64) {
	if len(rows) == 0 {
		return
	}
	if highPct <= 0 || mediumPct < highPct {
		highPct, mediumPct = 0.2, 0.5
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalOrders != rows[j].TotalOrders {
			return rows[i].TotalOrders > rows[j].TotalOrders
		}
		return rows[i].ExecutiveID.String() < rows[j].ExecutiveID.String()
	})

	n := len(rows)
	highCut := int(math.Ceil(float64(n) * highPct))
	mediumCut := int(math.Ceil(float64(n) * mediumPct))

	for i := range rows {
		switch {
		case rows[i].TotalOrders == 0:
			rows[i].Tier = TierLow
		case i < highCut:
			rows[i].Tier = TierHigh
		case i < mediumCut:
			rows[i].Tier = TierMedium
		default:
			rows[i].Tier = TierLow
		}
	}
}
