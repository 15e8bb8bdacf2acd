package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/confirmly/dashboard-api/internal/config"
	"github.com/confirmly/dashboard-api/internal/handler"
	batchH "github.com/confirmly/dashboard-api/internal/handler/batch"
	customerH "github.com/confirmly/dashboard-api/internal/handler/customer"
	dashboardH "github.com/confirmly/dashboard-api/internal/handler/dashboard"
	"github.com/confirmly/dashboard-api/internal/middleware"
	"github.com/confirmly/dashboard-api/internal/repository"
	"github.com/confirmly/dashboard-api/internal/repository/memory"
	"github.com/confirmly/dashboard-api/internal/repository/postgres"
	"github.com/confirmly/dashboard-api/internal/router"
	batchService "github.com/confirmly/dashboard-api/internal/service/batch"
	customerService "github.com/confirmly/dashboard-api/internal/service/customer"
	dashboardService "github.com/confirmly/dashboard-api/internal/service/dashboard"
	"github.com/confirmly/dashboard-api/internal/worker"
	"github.com/confirmly/dashboard-api/pkg/logger"
	"github.com/confirmly/dashboard-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(&logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Pretty: cfg.Log.Pretty,
	})

	m := metrics.New("dashboard_api")

	store, err := newStorage(cfg, log, m)
	if err != nil {
		log.Fatal().Err(err).Str("mode", cfg.Storage.Mode).Msg("failed to initialize storage")
	}

	batchSvc := batchService.NewService(store, log)
	customerSvc := customerService.NewService(store, log)
	dashboardSvc := dashboardService.NewService(store)

	r := router.NewRouter(
		handler.NewHandler(),
		batchH.NewHandler(batchSvc),
		customerH.NewHandler(customerSvc),
		dashboardH.NewHandler(dashboardSvc),
		log,
		router.Config{
			RateLimitRPS: rateLimitRPS(cfg),
			RateBurst:    cfg.RateLimit.Burst,
			CORSConfig:   middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Retention.Enabled {
		retention := worker.NewRetentionWorker(store, cfg.Retention.Days, cfg.Retention.SweepInterval, log, m)
		go retention.Start(ctx)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Str("mode", cfg.Storage.Mode).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}

func newStorage(cfg *config.Config, log zerolog.Logger, m *metrics.Metrics) (repository.Storage, error) {
	switch cfg.Storage.Mode {
	case config.StorageModeMock:
		opts := []memory.Option{memory.WithLogger(log), memory.WithMetrics(m)}
		if !cfg.Retention.KeepStats {
			opts = append(opts, memory.WithStatsSweep())
		}
		return memory.NewStore(cfg.Generator, opts...)
	case config.StorageModeDev, config.StorageModeProd:
		db, err := postgres.NewDB(cfg.Database.ToPostgresConfig())
		if err != nil {
			return nil, err
		}
		return postgres.NewStorage(db), nil
	default:
		return nil, fmt.Errorf("unknown storage mode %q", cfg.Storage.Mode)
	}
}

func rateLimitRPS(cfg *config.Config) float64 {
	if !cfg.RateLimit.Enabled {
		return 0
	}
	return cfg.RateLimit.RequestsPerSecond
}
