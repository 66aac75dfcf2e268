package analytics

import (
	"net/http"

	"github.com/nikhilbhatia/shopsight-backend/api/responses"
	"github.com/nikhilbhatia/shopsight-backend/internal/analytics"
	"github.com/nikhilbhatia/shopsight-backend/pkg/config"
	"github.com/nikhilbhatia/shopsight-backend/pkg/logger"
)

// AgingStock serves the aging-stock table for the dashboard.
func AgingStock(service analytics.Service, cfg config.AnalyticsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		report, err := service.Aging(ctx, resolveQuery(r, cfg))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

// FastMovers serves the fast-moving-products table.
func FastMovers(service analytics.Service, cfg config.AnalyticsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		report, err := service.FastMovers(ctx, resolveQuery(r, cfg))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

// Performance serves the sales-executive tier table.
func Performance(service analytics.Service, cfg config.AnalyticsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		report, err := service.Performance(ctx, resolveQuery(r, cfg))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}

// Dashboard serves all three views in one payload for the combined tab.
func Dashboard(service analytics.Service, cfg config.AnalyticsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		report, err := service.Dashboard(ctx, resolveQuery(r, cfg))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}
