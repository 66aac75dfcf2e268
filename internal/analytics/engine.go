package analytics

import (
	"github.com/shopspring/decimal"
)

// Options carries the engine tunables; zero values fall back to the package
// constants so a zero Options is usable.
// DefaultSummaryTopN is how many rows each dashboard summary card shows.
const DefaultSummaryTopN = 3

type Options struct {
	AgingBasePeriodDays  int
	InventorySentinel    int
	SummaryTopN          int
	HighTierPercentile   float64
	MediumTierPercentile float64
}

func (o Options) withDefaults() Options {
	if o.AgingBasePeriodDays <= 0 {
		o.AgingBasePeriodDays = AgingBasePeriodDays
	}
	if o.InventorySentinel <= 0 {
		o.InventorySentinel = UnboundedInventoryDays
	}
	if o.SummaryTopN <= 0 {
		o.SummaryTopN = DefaultSummaryTopN
	}
	if o.HighTierPercentile <= 0 || o.MediumTierPercentile < o.HighTierPercentile {
		o.HighTierPercentile, o.MediumTierPercentile = 0.2, 0.5
	}
	return o
}

// Engine derives every dashboard view from a snapshot. It holds no state
// across calls; each invocation recomputes from scratch.
type Engine struct {
	opts Options
}

// NewEngine builds an engine with the supplied options.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts.withDefaults()}
}

// Aging derives the aging-stock view: every catalog product bucketed by days
// since its last sale, with stock status and inventory value.
func (e *Engine) Aging(snapshot Snapshot, window Window, column SortColumn, direction SortDirection) AgingReport {
	perProduct := AggregateByProduct(snapshot.Items, window)

	rows := make([]AgingRow, 0, len(snapshot.Products))
	for _, product := range snapshot.Products {
		acc := perProduct[product.ID]

		sold := 0
		if acc != nil {
			sold = acc.TotalQuantity
		}

		age := AgeDays(product, acc, window)
		label, severity := ClassifyAge(age, e.opts.AgingBasePeriodDays)

		rows = append(rows, AgingRow{
			ProductID:      product.ID,
			Name:           product.Name,
			ArticleID:      product.ArticleID,
			CategoryName:   product.CategoryName,
			Stock:          product.Stock,
			SoldQuantity:   sold,
			AgeDays:        age,
			AgingBucket:    label,
			AgingSeverity:  severity,
			StockStatus:    ClassifyStock(product.Stock, sold),
			InventoryValue: InventoryValue(product),
		})
	}

	SortAgingRows(rows, column, direction)

	return AgingReport{
		Window:  window,
		Buckets: bucketize(rows, e.opts.AgingBasePeriodDays),
		Rows:    rows,
	}
}

func bucketize(rows []AgingRow, basePeriodDays int) []BucketSummary {
	labels := AgingBucketLabels(basePeriodDays)
	buckets := make([]BucketSummary, len(labels))
	for i, label := range labels {
		buckets[i] = BucketSummary{Label: label, CumulativeValue: decimal.Zero}
	}

	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}

	for _, row := range rows {
		i, ok := index[row.AgingBucket]
		if !ok {
			continue
		}
		buckets[i].Count++
		buckets[i].CumulativeValue = buckets[i].CumulativeValue.Add(row.InventoryValue)
	}
	return buckets
}

// FastMovers derives the fast-moving-products view: window totals per sold
// product with velocity and projected inventory runway, sorted by quantity
// descending and sliced to topN only after the full sort.
func (e *Engine) FastMovers(snapshot Snapshot, window Window, topN int) FastMoverReport {
	perProduct := AggregateByProduct(snapshot.Items, window)

	byID := make(map[string]ProductRecord, len(snapshot.Products))
	for _, product := range snapshot.Products {
		byID[product.ID.String()] = product
	}

	rows := make([]FastMoverRow, 0, len(perProduct))
	for productID, acc := range perProduct {
		product, ok := byID[productID.String()]
		if !ok {
			continue
		}

		velocity := SalesVelocity(acc.TotalQuantity, window)
		rows = append(rows, FastMoverRow{
			ProductID:       product.ID,
			Name:            product.Name,
			ArticleID:       product.ArticleID,
			CategoryName:    product.CategoryName,
			Stock:           product.Stock,
			TotalQuantity:   acc.TotalQuantity,
			TotalSalesValue: acc.TotalSalesValue,
			OrderCount:      acc.OrderCount,
			SalesVelocity:   velocity,
			DaysOfInventory: DaysOfInventory(product.Stock, velocity, e.opts.InventorySentinel),
			StockStatus:     ClassifyStock(product.Stock, acc.TotalQuantity),
		})
	}

	SortFastMovers(rows)

	return FastMoverReport{Window: window, Rows: TopN(rows, topN)}
}

// Performance derives the executive performance view over the baseline
// population of all executives; orders are filtered by the window and the
// optional status. Tiers are recomputed from scratch on every call.
func (e *Engine) Performance(snapshot Snapshot, window Window, status string) PerformanceReport {
	perExecutive := AggregateByExecutive(snapshot.Orders, window, status)

	rows := make([]ExecutiveRow, 0, len(snapshot.Executives))
	for _, executive := range snapshot.Executives {
		row := ExecutiveRow{
			ExecutiveID:  executive.ID,
			Name:         executive.Name,
			ManagerName:  executive.ManagerName,
			TotalRevenue: decimal.Zero,
		}
		if acc := perExecutive[executive.ID]; acc != nil {
			row.TotalOrders = acc.OrderCount
			row.TotalRevenue = acc.TotalSalesValue
			if !acc.LastActivity.IsZero() {
				last := acc.LastActivity
				row.LastOrderAt = &last
			}
		}
		rows = append(rows, row)
	}

	AssignTiers(rows, e.opts.HighTierPercentile, e.opts.MediumTierPercentile)

	return PerformanceReport{Window: window, Rows: rows}
}

// Dashboard bundles all three views for the combined tab, plus the sliced
// summary-card rows. The aging view arrives oldest-first and fast movers
// quantity-first, so each card is a prefix of its full table.
func (e *Engine) Dashboard(snapshot Snapshot, window Window, topN int) DashboardReport {
	report := DashboardReport{
		Window:      window,
		Aging:       e.Aging(snapshot, window, SortByAgeDays, SortDesc),
		FastMovers:  e.FastMovers(snapshot, window, topN),
		Performance: e.Performance(snapshot, window, ""),
	}
	report.Summary = DashboardSummary{
		SlowestMoving: TopN(report.Aging.Rows, e.opts.SummaryTopN),
		FastestMoving: TopN(report.FastMovers.Rows, e.opts.SummaryTopN),
		TopExecutives: TopN(report.Performance.Rows, e.opts.SummaryTopN),
	}
	return report
}
