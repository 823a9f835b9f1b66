package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"brokerdesk/internal/config"
	"brokerdesk/internal/database"
	"brokerdesk/internal/database/migration"
	handlers "brokerdesk/internal/http/handler"
	"brokerdesk/internal/http/middleware"
	"brokerdesk/internal/logging"
	"brokerdesk/internal/otel"
	"brokerdesk/internal/repository"
	"brokerdesk/internal/repository/postgres"
	"brokerdesk/internal/service"
	"brokerdesk/internal/storage"
	"brokerdesk/internal/store"
)

// @title Brokerdesk API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.Location())
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Error("tracing_init_failed", "error", err.Error())
		os.Exit(1)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	st := store.New(store.WithLocation(cfg.Location()), store.WithLogger(logger))

	// Object storage is optional; without it only metadata-only files can be registered.
	var objects storage.Storage
	if cfg.MinIO.Enabled() {
		objects, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			logger.Error("storage_init_failed", "error", err.Error())
			os.Exit(1)
		}
	}

	var audit repository.AuditRepository
	if cfg.Audit.Enabled {
		db, err := database.NewPostgres(ctx, cfg.Database, logger)
		if err != nil {
			logger.Error("db_connect_failed", "error", err.Error())
			os.Exit(1)
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
			logger.Error("migration_failed", "error", err.Error())
			os.Exit(1)
		}

		repo := postgres.NewAuditPostgres(db)
		audit = repo
		sink := repository.NewAuditSink(repo, logger, time.Duration(cfg.Audit.TimeoutMs)*time.Millisecond, cfg.Audit.Buffer)
		st.Subscribe(sink.Enqueue)
		// Runs before db.Close so queued entries can still be written.
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := sink.Close(sctx); err != nil {
				logger.Error("audit_sink_drain_failed", "error", err.Error())
			}
		}()
	}

	fileSvc := service.NewFileService(objects, st, time.Duration(cfg.FileURLExpirySec)*time.Second)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		store.NewCollector(st),
	)
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logger.Error("metrics_init_failed", "error", err.Error())
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(metrics.Handler())
	app.Use(otelfiber.Middleware())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, handlers.Dependencies{
		Store: st,
		Files: fileSvc,
		Audit: audit,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", handlers.SwaggerUI(cfg.AppHost))

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		logger.Info("server_shutdown")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("server_shutdown_failed", "error", err.Error())
		}
	}()

	addr := ":" + cfg.Port
	logger.Info("server_started", "addr", addr, "storage_enabled", objects != nil, "audit_sink_enabled", audit != nil)
	if err := app.Listen(addr); err != nil {
		logger.Error("server_failed", "error", err.Error())
		return
	}
	// In-flight requests finish before the audit sink drains.
	<-stopped
}
