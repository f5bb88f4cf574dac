package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/inventoryd/docs/swagger"
	"github.com/ghuser/inventoryd/pkg/app"
	"github.com/ghuser/inventoryd/pkg/blobstore"
	"github.com/ghuser/inventoryd/pkg/config"
	"github.com/ghuser/inventoryd/pkg/database"
	"github.com/ghuser/inventoryd/pkg/events"
	"github.com/ghuser/inventoryd/pkg/httpx"
	"github.com/ghuser/inventoryd/pkg/logger"
	"github.com/ghuser/inventoryd/pkg/telemetry"
	inventoryApi "github.com/ghuser/inventoryd/services/inventory/application/api"
	domainevents "github.com/ghuser/inventoryd/services/inventory/domain/events"
	"github.com/ghuser/inventoryd/services/inventory/infrastructure/persistence/sqldb"
)

// @title					Inventoryd API
// @version				1.0
// @description			Inventory item CRUD service with photo upload handling.
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional — log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	// Persistence: SQL backend opens a connection and ensures the schema;
	// the memory backend leaves db nil and the repository is selected in
	// the service wiring.
	var db *database.Database
	if cfg.StorageBackend == config.BackendSQL {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			log.Error("failed to open database", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
		}
		defer db.Close() //nolint:errcheck
		if err := sqldb.EnsureSchema(ctx, db); err != nil {
			log.Error("failed to ensure schema", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		log.Info("database connected", "driver", db.Driver())
	} else {
		log.Info("using in-memory item store")
	}

	blobs, err := blobstore.NewDisk(cfg.PhotoDir)
	if err != nil {
		log.Error("failed to initialize blob store", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("blob store ready", "dir", cfg.PhotoDir)

	bus := events.NewBus(log)
	defer bus.Close() //nolint:errcheck
	subscribeLifecycleLog(ctx, bus, log)

	appConfig := &app.Application{
		Db:         db,
		Logger:     log,
		EventBus:   bus,
		Blobs:      blobs,
		Production: cfg.Environment == config.EnvProduction,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Database:  healthChecker(db),
		BlobStore: blobs,
		EventBus:  bus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	inventoryApi.InventoryRoutes(r, appConfig)

	srv := httpx.NewServer(cfg.ListenAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "backend", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// healthChecker avoids handing HealthChecks a typed-nil interface when the
// memory backend is active.
func healthChecker(db *database.Database) httpx.HealthChecker {
	if db == nil {
		return nil
	}
	return db
}

// subscribeLifecycleLog attaches an audit-log consumer to the item
// lifecycle topics.
func subscribeLifecycleLog(ctx context.Context, bus *events.Bus, log logger.Logger) {
	topics := []string{
		domainevents.TopicItemCreated,
		domainevents.TopicItemPhotoReplaced,
		domainevents.TopicItemDeleted,
	}
	for _, topic := range topics {
		topic := topic
		err := bus.Subscribe(ctx, topic, func(msgCtx context.Context, msg *message.Message) error {
			log.InfoContext(msgCtx, "item lifecycle event", "topic", topic, "payload", string(msg.Payload))
			return nil
		})
		if err != nil {
			log.Error("failed to subscribe lifecycle consumer", "topic", topic, "error", err)
		}
	}
}
