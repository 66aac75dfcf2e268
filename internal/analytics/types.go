package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nikhilbhatia/shopsight-backend/pkg/enums"
)

// Snapshot is the joined, in-memory view of one analysis pass. Repositories
// fill it; the engine never touches storage.
type Snapshot struct {
	Products   []ProductRecord
	Items      []ItemRecord
	Orders     []OrderRecord
	Executives []ExecutiveRecord
}

// ProductRecord is a normalized catalog row. EffectivePrice already carries
// the selling-price-else-list-price-else-zero coalescing.
type ProductRecord struct {
	ID             uuid.UUID
	Name           string
	ArticleID      string
	Stock          int
	EffectivePrice decimal.Decimal
	CategoryName   string
	CreatedAt      time.Time
}

// ItemRecord is a normalized order line. Quantity and UnitPrice are never
// negative and never null; unresolved product references were dropped
// upstream.
type ItemRecord struct {
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	CreatedAt time.Time
}

// OrderRecord is a normalized order header for the performance variant.
type OrderRecord struct {
	ID          uuid.UUID
	ExecutiveID *uuid.UUID
	Status      enums.OrderStatus
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}

// ExecutiveRecord is the baseline population row for performance tiering.
type ExecutiveRecord struct {
	ID          uuid.UUID
	Name        string
	ManagerName string
}

// AgingRow is one product with its derived aging metrics.
type AgingRow struct {
	ProductID      uuid.UUID       `json:"product_id"`
	Name           string          `json:"name"`
	ArticleID      string          `json:"article_id"`
	CategoryName   string          `json:"category_name,omitempty"`
	Stock          int             `json:"stock"`
	SoldQuantity   int             `json:"sold_quantity"`
	AgeDays        int             `json:"age_days"`
	AgingBucket    string          `json:"aging_bucket"`
	AgingSeverity  Severity        `json:"aging_severity"`
	StockStatus    StockStatus     `json:"stock_status"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}

// BucketSummary aggregates one aging bucket for charting.
type BucketSummary struct {
	Label           string          `json:"label"`
	Count           int             `json:"count"`
	CumulativeValue decimal.Decimal `json:"cumulative_value"`
}

// AgingReport is the full aging view handed to the rendering layer.
type AgingReport struct {
	Window  Window          `json:"window"`
	Buckets []BucketSummary `json:"buckets"`
	Rows    []AgingRow      `json:"rows"`
}

// FastMoverRow is one product with its derived velocity metrics.
type FastMoverRow struct {
	ProductID       uuid.UUID       `json:"product_id"`
	Name            string          `json:"name"`
	ArticleID       string          `json:"article_id"`
	CategoryName    string          `json:"category_name,omitempty"`
	Stock           int             `json:"stock"`
	TotalQuantity   int             `json:"total_quantity"`
	TotalSalesValue decimal.Decimal `json:"total_sales_value"`
	OrderCount      int             `json:"order_count"`
	SalesVelocity   float64         `json:"sales_velocity"`
	DaysOfInventory int             `json:"days_of_inventory"`
	StockStatus     StockStatus     `json:"stock_status"`
}

// FastMoverReport is the fast-movers view, sorted by quantity descending and
// sliced to topN after the full sort.
type FastMoverReport struct {
	Window Window         `json:"window"`
	Rows   []FastMoverRow `json:"rows"`
}

// ExecutiveRow is one sales executive with aggregate totals and tier.
type ExecutiveRow struct {
	ExecutiveID  uuid.UUID       `json:"executive_id"`
	Name         string          `json:"name"`
	ManagerName  string          `json:"manager_name,omitempty"`
	TotalOrders  int             `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	LastOrderAt  *time.Time      `json:"last_order_at,omitempty"`
	Tier         Tier            `json:"tier"`
}

// PerformanceReport is the executive performance view.
type PerformanceReport struct {
	Window Window         `json:"window"`
	Rows   []ExecutiveRow `json:"rows"`
}

// DashboardReport bundles every derived view for the "all" tab.
// DashboardSummary holds the per-card top rows shown above the full tables.
type DashboardSummary struct {
	SlowestMoving []AgingRow     `json:"slowest_moving"`
	FastestMoving []FastMoverRow `json:"fastest_moving"`
	TopExecutives []ExecutiveRow `json:"top_executives"`
}

type DashboardReport struct {
	Window      Window            `json:"window"`
	Summary     DashboardSummary  `json:"summary"`
	Aging       AgingReport       `json:"aging"`
	FastMovers  FastMoverReport   `json:"fast_movers"`
	Performance PerformanceReport `json:"performance"`
}
