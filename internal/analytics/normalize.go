package analytics

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nikhilbhatia/shopsight-backend/pkg/db/models"
)

// NormalizeProducts converts catalog models into engine records, applying the
// selling-price-else-list-price-else-zero rule once so downstream code never
// coalesces again.
func NormalizeProducts(products []models.Product, categories []models.Category) []ProductRecord {
	names := make(map[uuid.UUID]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	records := make([]ProductRecord, 0, len(products))
	for _, p := range products {
		record := ProductRecord{
			ID:             p.ID,
			Name:           p.Name,
			ArticleID:      p.ArticleID,
			Stock:          maxInt(p.Stock, 0),
			EffectivePrice: effectivePrice(p),
			CreatedAt:      p.CreatedAt,
		}
		if p.CategoryID != nil {
			record.CategoryName = names[*p.CategoryID]
		}
		records = append(records, record)
	}
	return records
}

func effectivePrice(p models.Product) decimal.Decimal {
	if p.SellingPrice != nil && !p.SellingPrice.IsNegative() {
		return *p.SellingPrice
	}
	if !p.Price.IsNegative() {
		return p.Price
	}
	return decimal.Zero
}

// NormalizeItems converts order item models into engine records. Items with
// a null product reference, or whose product is absent from the resolved
// set, are skipped entirely rather than counted as zero. Null quantity and
// unit price coalesce to zero here and nowhere else.
func NormalizeItems(items []models.OrderItem, products []ProductRecord) []ItemRecord {
	known := make(map[uuid.UUID]struct{}, len(products))
	for _, p := range products {
		known[p.ID] = struct{}{}
	}

	records := make([]ItemRecord, 0, len(items))
	for _, item := range items {
		if item.ProductID == nil {
			continue
		}
		if _, ok := known[*item.ProductID]; !ok {
			continue
		}

		record := ItemRecord{
			OrderID:   item.OrderID,
			ProductID: *item.ProductID,
			CreatedAt: item.CreatedAt,
		}
		if item.Quantity != nil && *item.Quantity > 0 {
			record.Quantity = *item.Quantity
		}
		if item.UnitPrice != nil && !item.UnitPrice.IsNegative() {
			record.UnitPrice = *item.UnitPrice
		} else {
			record.UnitPrice = decimal.Zero
		}
		records = append(records, record)
	}
	return records
}

// NormalizeOrders converts order models into engine records.
func NormalizeOrders(orders []models.Order) []OrderRecord {
	records := make([]OrderRecord, 0, len(orders))
	for _, o := range orders {
		records = append(records, OrderRecord{
			ID:          o.ID,
			ExecutiveID: o.ExecutiveID,
			Status:      o.Status,
			TotalAmount: o.TotalAmount,
			CreatedAt:   o.CreatedAt,
		})
	}
	return records
}

// NormalizeExecutives converts executive models, resolving manager names
// through an in-memory self join.
func NormalizeExecutives(executives []models.SalesExecutive) []ExecutiveRecord {
	names := make(map[uuid.UUID]string, len(executives))
	for _, e := range executives {
		names[e.ID] = e.Name
	}

	records := make([]ExecutiveRecord, 0, len(executives))
	for _, e := range executives {
		record := ExecutiveRecord{ID: e.ID, Name: e.Name}
		if e.ManagerID != nil {
			record.ManagerName = names[*e.ManagerID]
		}
		records = append(records, record)
	}
	return records
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
