package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nikhilbhatia/shopsight-backend/api/controllers"
	analyticscontrollers "github.com/nikhilbhatia/shopsight-backend/api/controllers/analytics"
	"github.com/nikhilbhatia/shopsight-backend/api/middleware"
	"github.com/nikhilbhatia/shopsight-backend/internal/analytics"
	"github.com/nikhilbhatia/shopsight-backend/internal/analytics/export"
	"github.com/nikhilbhatia/shopsight-backend/internal/catalog"
	"github.com/nikhilbhatia/shopsight-backend/internal/executives"
	"github.com/nikhilbhatia/shopsight-backend/internal/orders"
	"github.com/nikhilbhatia/shopsight-backend/pkg/config"
	"github.com/nikhilbhatia/shopsight-backend/pkg/db"
	"github.com/nikhilbhatia/shopsight-backend/pkg/logger"
	"github.com/nikhilbhatia/shopsight-backend/pkg/redis"
)

// Deps carries everything the router wires together.
type Deps struct {
	Config     *config.Config
	Logger     *logger.Logger
	DB         db.Pinger
	Redis      *redis.Client
	Analytics  analytics.Service
	Exporter   *export.Exporter
	Catalog    catalog.Service
	Orders     orders.Service
	Executives executives.Service
	Registry   *prometheus.Registry
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	var cache controllers.Pinger
	if deps.Redis != nil {
		cache = deps.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, cache))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	apiPolicy := middleware.NewRateLimitPolicy("api", cfg.RateLimit.Window, cfg.RateLimit.IPLimit)
	if cfg.RateLimit.Disabled {
		apiPolicy = middleware.NewRateLimitPolicy("api", 0, 0)
	}
	var limiterStore middleware.RateLimiterStore
	if deps.Redis != nil {
		limiterStore = deps.Redis
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(apiPolicy, limiterStore, logg))

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/aging", analyticscontrollers.AgingStock(deps.Analytics, cfg.Analytics, logg))
			r.Get("/fast-movers", analyticscontrollers.FastMovers(deps.Analytics, cfg.Analytics, logg))
			r.Get("/performance", analyticscontrollers.Performance(deps.Analytics, cfg.Analytics, logg))
			r.Get("/dashboard", analyticscontrollers.Dashboard(deps.Analytics, cfg.Analytics, logg))
			r.Get("/export", analyticscontrollers.Export(deps.Analytics, deps.Exporter, cfg.Analytics, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(deps.Catalog, logg))
			r.Post("/", controllers.CreateProduct(deps.Catalog, logg))
			r.Get("/{productID}", controllers.GetProduct(deps.Catalog, logg))
			r.Patch("/{productID}", controllers.UpdateProduct(deps.Catalog, logg))
			r.Delete("/{productID}", controllers.DeleteProduct(deps.Catalog, logg))
		})

		r.Get("/categories", controllers.ListCategories(deps.Catalog, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(deps.Orders, logg))
			r.Get("/{orderID}", controllers.GetOrder(deps.Orders, logg))
		})

		r.Route("/executives", func(r chi.Router) {
			r.Get("/", controllers.ListExecutives(deps.Executives, logg))
			r.Get("/{executiveID}", controllers.GetExecutive(deps.Executives, logg))
		})
	})

	return r
}
