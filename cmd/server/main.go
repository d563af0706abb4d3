package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"fuelform/internal/app"
	"fuelform/internal/config"
	"fuelform/internal/handler"
	"fuelform/internal/service"
)

func main() {
	cfg := config.Load()

	logger, err := app.NewLogger(cfg.Log, cfg.NewRelic.AppName)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.Server.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so the stores can be instrumented.
	var nrApp *newrelic.Application
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			logger.Warn("failed to initialize New Relic", zap.Error(err))
		} else {
			logger.Info("New Relic enabled", zap.String("app", cfg.NewRelic.AppName))
		}
	}

	// PostgreSQL is only needed when the registry is read from it.
	var db *sql.DB
	if cfg.WebApp.RegistrySource == app.RegistryPostgres {
		db, err = app.NewDatabase(ctx, cfg.Database, nrApp)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		logger.Info("connected to PostgreSQL")
	}

	// Without Redis the log bridge still works: containers stay in memory,
	// the registry is uncached and idempotency is off.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	switch {
	case err == nil:
		defer redisClient.Close()
		logger.Info("connected to Redis", zap.String("addr", cfg.Redis.Addr))
	case app.RedisRequired(cfg.WebApp):
		logger.Fatal("failed to connect to redis", zap.Error(err))
	default:
		logger.Warn("redis unavailable, running without it", zap.Error(err))
		redisClient = nil
	}

	server, err := wireServer(db, redisClient, nrApp, cfg, logger)
	if err != nil {
		logger.Fatal("failed to wire server", zap.Error(err))
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}

	logger.Info("server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config, logger *zap.Logger) (*http.Server, error) {
	bridge, err := app.NewBridge(cfg.WebApp, redisClient, logger)
	if err != nil {
		return nil, err
	}
	encoder, err := app.NewEncoder(cfg.WebApp)
	if err != nil {
		return nil, err
	}
	registry, err := app.NewRegistry(cfg.WebApp, db, redisClient)
	if err != nil {
		return nil, err
	}

	adapter := service.NewFormAdapter(service.FormAdapterDeps{
		Bridge:   bridge,
		Encoder:  encoder,
		Registry: registry,
		Logger:   logger,
	})
	containers := app.NewContainerStore(redisClient)

	router := app.NewRouter(app.RouterDeps{
		FormHandler:    handler.NewFormHandler(adapter, containers),
		PageHandler:    handler.NewPageHandler(adapter, cfg.WebApp.Title),
		AllowedOrigins: cfg.WebApp.AllowedOrigins,
		RedisClient:    redisClient,
		NewRelicApp:    nrApp,
		Logger:         logger,
	})

	logger.Info("form adapter wired",
		zap.String("bridge", cfg.WebApp.Bridge),
		zap.String("wire_format", cfg.WebApp.WireFormat),
		zap.String("registry", cfg.WebApp.RegistrySource),
	)

	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, nil
}
