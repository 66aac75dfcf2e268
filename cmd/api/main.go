package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/nikhilbhatia/shopsight-backend/api/routes"
	"github.com/nikhilbhatia/shopsight-backend/internal/analytics"
	"github.com/nikhilbhatia/shopsight-backend/internal/analytics/export"
	"github.com/nikhilbhatia/shopsight-backend/internal/catalog"
	"github.com/nikhilbhatia/shopsight-backend/internal/executives"
	"github.com/nikhilbhatia/shopsight-backend/internal/orders"
	"github.com/nikhilbhatia/shopsight-backend/pkg/config"
	"github.com/nikhilbhatia/shopsight-backend/pkg/db"
	"github.com/nikhilbhatia/shopsight-backend/pkg/logger"
	"github.com/nikhilbhatia/shopsight-backend/pkg/metrics"
	"github.com/nikhilbhatia/shopsight-backend/pkg/migrate"
	"github.com/nikhilbhatia/shopsight-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "redis not configured, rate limiting disabled")
	}

	registry := prometheus.NewRegistry()
	analyticsMetrics := metrics.NewAnalyticsMetrics(registry)

	catalogRepo := catalog.NewRepository(dbClient.DB())
	ordersRepo := orders.NewRepository(dbClient.DB())
	executivesRepo := executives.NewRepository(dbClient.DB())

	analyticsService, err := analytics.NewService(analytics.ServiceParams{
		Catalog:    catalogRepo,
		Orders:     ordersRepo,
		Executives: executivesRepo,
		Options: analytics.Options{
			AgingBasePeriodDays:  cfg.Analytics.AgingBasePeriodDays,
			InventorySentinel:    cfg.Analytics.InventorySentinel,
			SummaryTopN:          cfg.Analytics.SummaryCardTopN,
			HighTierPercentile:   cfg.Analytics.HighTierPercentile,
			MediumTierPercentile: cfg.Analytics.MediumTierPercentile,
		},
		Logger:  logg,
		Metrics: analyticsMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create analytics service", err)
		os.Exit(1)
	}

	router := routes.NewRouter(routes.Deps{
		Config:     cfg,
		Logger:     logg,
		DB:         dbClient,
		Redis:      redisClient,
		Analytics:  analyticsService,
		Exporter:   export.NewExporter(cfg.Analytics.ExportMaxRows),
		Catalog:    catalog.NewService(catalogRepo),
		Orders:     orders.NewService(ordersRepo),
		Executives: executives.NewService(executivesRepo),
		Registry:   registry,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stopCh:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}

	var closeErr error
	if redisClient != nil {
		closeErr = multierr.Append(closeErr, redisClient.Close())
	}
	closeErr = multierr.Append(closeErr, dbClient.Close())
	if closeErr != nil {
		logg.Error(ctx, "error closing resources", closeErr)
		os.Exit(1)
	}
}
