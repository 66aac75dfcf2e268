package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nikhilbhatia/shopsight-backend/pkg/db/models"
	pkgerrors "github.com/nikhilbhatia/shopsight-backend/pkg/errors"
	"github.com/nikhilbhatia/shopsight-backend/pkg/logger"
	"github.com/nikhilbhatia/shopsight-backend/pkg/metrics"
)

// CatalogSource supplies catalog rows for the join step.
type CatalogSource interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// OrdersSource supplies transactional rows, windowed at the store.
type OrdersSource interface {
	ListItemsInWindow(ctx context.Context, from, to time.Time) ([]models.OrderItem, error)
	ListOrdersInWindow(ctx context.Context, from, to time.Time, status string) ([]models.Order, error)
}

// ExecutivesSource supplies the baseline population for performance tiering.
type ExecutivesSource interface {
	ListExecutives(ctx context.Context) ([]models.SalesExecutive, error)
}

// Query carries the user-facing parameters of one analysis pass.
type Query struct {
	Window    Window
	Status    string
	ProductID *uuid.UUID
	Sort      SortColumn
	Direction SortDirection
	TopN      int
}

// Service runs analysis passes: fetch, join, compute. A fetch failure
// aborts the whole pass; the engine itself cannot fail.
type Service interface {
	Aging(ctx context.Context, q Query) (*AgingReport, error)
	FastMovers(ctx context.Context, q Query) (*FastMoverReport, error)
	Performance(ctx context.Context, q Query) (*PerformanceReport, error)
	Dashboard(ctx context.Context, q Query) (*DashboardReport, error)
}

type service struct {
	catalog    CatalogSource
	orders     OrdersSource
	executives ExecutivesSource
	engine     *Engine
	logg       *logger.Logger
	metrics    *metrics.AnalyticsMetrics
}

// ServiceParams collects the service dependencies.
type ServiceParams struct {
	Catalog    CatalogSource
	Orders     OrdersSource
	Executives ExecutivesSource
	Options    Options
	Logger     *logger.Logger
	Metrics    *metrics.AnalyticsMetrics
}

// NewService wires an analytics service.
func NewService(params ServiceParams) (Service, error) {
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog source is required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("orders source is required")
	}
	if params.Executives == nil {
		return nil, fmt.Errorf("executives source is required")
	}
	return &service{
		catalog:    params.Catalog,
		orders:     params.Orders,
		executives: params.Executives,
		engine:     NewEngine(params.Options),
		logg:       params.Logger,
		metrics:    params.Metrics,
	}, nil
}

func (s *service) Aging(ctx context.Context, q Query) (*AgingReport, error) {
	started := time.Now()

	snapshot, err := s.loadCatalogSnapshot(ctx, q, "aging")
	if err != nil {
		return nil, err
	}

	report := s.engine.Aging(*snapshot, q.Window, q.Sort, q.Direction)
	s.passComplete(ctx, "aging", len(snapshot.Items), started)
	return &report, nil
}

func (s *service) FastMovers(ctx context.Context, q Query) (*FastMoverReport, error) {
	started := time.Now()

	snapshot, err := s.loadCatalogSnapshot(ctx, q, "fast_movers")
	if err != nil {
		return nil, err
	}

	report := s.engine.FastMovers(*snapshot, q.Window, q.TopN)
	s.passComplete(ctx, "fast_movers", len(snapshot.Items), started)
	return &report, nil
}

func (s *service) Performance(ctx context.Context, q Query) (*PerformanceReport, error) {
	started := time.Now()

	orders, err := s.orders.ListOrdersInWindow(ctx, q.Window.From, q.Window.To, q.Status)
	if err != nil {
		return nil, s.fetchFailed(ctx, "performance", "orders", err)
	}
	executives, err := s.executives.ListExecutives(ctx)
	if err != nil {
		return nil, s.fetchFailed(ctx, "performance", "executives", err)
	}

	snapshot := Snapshot{
		Orders:     NormalizeOrders(orders),
		Executives: NormalizeExecutives(executives),
	}

	report := s.engine.Performance(snapshot, q.Window, q.Status)
	s.passComplete(ctx, "performance", len(orders), started)
	return &report, nil
}

func (s *service) Dashboard(ctx context.Context, q Query) (*DashboardReport, error) {
	started := time.Now()

	snapshot, err := s.loadCatalogSnapshot(ctx, q, "dashboard")
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListOrdersInWindow(ctx, q.Window.From, q.Window.To, "")
	if err != nil {
		return nil, s.fetchFailed(ctx, "dashboard", "orders", err)
	}
	executives, err := s.executives.ListExecutives(ctx)
	if err != nil {
		return nil, s.fetchFailed(ctx, "dashboard", "executives", err)
	}

	snapshot.Orders = NormalizeOrders(orders)
	snapshot.Executives = NormalizeExecutives(executives)

	report := s.engine.Dashboard(*snapshot, q.Window, q.TopN)
	s.passComplete(ctx, "dashboard", len(snapshot.Items), started)
	return &report, nil
}

// loadCatalogSnapshot fetches and joins the product-side inputs. Any fetch
// error aborts the pass; partial joins are never produced.
func (s *service) loadCatalogSnapshot(ctx context.Context, q Query, report string) (*Snapshot, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, s.fetchFailed(ctx, report, "products", err)
	}
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, s.fetchFailed(ctx, report, "categories", err)
	}
	items, err := s.orders.ListItemsInWindow(ctx, q.Window.From, q.Window.To)
	if err != nil {
		return nil, s.fetchFailed(ctx, report, "order items", err)
	}

	normalizedProducts := NormalizeProducts(products, categories)
	normalizedItems := NormalizeItems(items, normalizedProducts)

	if dropped := len(items) - len(normalizedItems); dropped > 0 && s.logg != nil {
		entry := s.logg.WithFields(ctx, map[string]any{"report": report, "dropped_items": dropped})
		s.logg.Debug(entry, "skipped order items with unresolved products")
	}

	if q.ProductID != nil {
		normalizedProducts, normalizedItems = restrictToProduct(normalizedProducts, normalizedItems, *q.ProductID)
	}

	return &Snapshot{Products: normalizedProducts, Items: normalizedItems}, nil
}

// restrictToProduct narrows a snapshot to one product. Products and items
// are restricted together: dropping items alone would leave every other
// catalog product looking unsold, aging it from its creation date instead
// of its last sale.
func restrictToProduct(products []ProductRecord, items []ItemRecord, id uuid.UUID) ([]ProductRecord, []ItemRecord) {
	keptProducts := make([]ProductRecord, 0, 1)
	for _, p := range products {
		if p.ID == id {
			keptProducts = append(keptProducts, p)
		}
	}
	keptItems := make([]ItemRecord, 0, len(items))
	for _, item := range items {
		if item.ProductID == id {
			keptItems = append(keptItems, item)
		}
	}
	return keptProducts, keptItems
}

func (s *service) fetchFailed(ctx context.Context, report, step string, err error) error {
	if s.metrics != nil {
		s.metrics.IncFailure(report)
	}
	if s.logg != nil {
		entry := s.logg.WithReportKind(ctx, report)
		s.logg.Error(entry, "analytics fetch failed", err)
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("fetching %s", step))
}

func (s *service) passComplete(ctx context.Context, report string, rows int, started time.Time) {
	if s.metrics != nil {
		s.metrics.IncSuccess(report)
		s.metrics.ObserveDuration(report, time.Since(started))
		s.metrics.ObserveInputRows(report, rows)
	}
	if s.logg != nil {
		entry := s.logg.WithFields(ctx, map[string]any{
			"report":      report,
			"input_rows":  rows,
			"duration_ms": time.Since(started).Milliseconds(),
		})
		s.logg.Debug(entry, "analytics pass complete")
	}
}
