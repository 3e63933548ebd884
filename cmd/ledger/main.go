// Package main is the entry point for the ledger service, the HTTP finance
// service the client talks to.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	flag "github.com/spf13/pflag"

	"github.com/finance-tracker/client/config"
	"github.com/finance-tracker/client/internal/infra/db"
	"github.com/finance-tracker/client/internal/infra/dependency"
	"github.com/finance-tracker/client/internal/integration/persistence"
	"github.com/finance-tracker/client/internal/integration/persistence/model"
)

func main() {
	seed := flag.Bool("seed", true, "insert the default platforms into an empty database")
	addrOverride := flag.String("addr", "", "listen address, overrides SERVER_HOST and SERVER_PORT")
	flag.Parse()

	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting ledger service",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(model.AllModels()...); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	if *seed {
		inserted, err := persistence.SeedPlatforms(context.Background(), database.DB())
		if err != nil {
			slog.Error("Failed to seed platforms", "error", err)
			os.Exit(1)
		}
		if inserted > 0 {
			slog.Info("Seeded default platforms", "count", inserted)
		}
	}

	injector := dependency.NewInjector(cfg, database.DB())
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Expired rate limit windows are dropped once a minute
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 1m", func() {
		if removed := injector.LoginRateLimiter.Cleanup(); removed > 0 {
			slog.Debug("Dropped expired login rate limit entries", "count", removed)
		}
	}); err != nil {
		slog.Error("Failed to schedule rate limiter cleanup", "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	defer func() { <-scheduler.Stop().Done() }()

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	if *addrOverride != "" {
		addr = *addrOverride
	}
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return
	}

	slog.Info("Server exited properly")
}
