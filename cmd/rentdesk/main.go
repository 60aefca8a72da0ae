// Command rentdesk runs the rental-issue tracking backend: account
// registration and login, token-based identity, and the complaint
// lifecycle between tenants and their landlords.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rentdesk/rentdesk-core/internal/api"
	"github.com/rentdesk/rentdesk-core/internal/auth"
	"github.com/rentdesk/rentdesk-core/internal/complaint"
	"github.com/rentdesk/rentdesk-core/internal/infrastructure/config"
	"github.com/rentdesk/rentdesk-core/internal/infrastructure/database"
	"github.com/rentdesk/rentdesk-core/internal/infrastructure/logging"
	"github.com/rentdesk/rentdesk-core/internal/infrastructure/metrics"
	_ "github.com/rentdesk/rentdesk-core/migrations" // registers embedded schema migrations
)

// version is set at build time via -ldflags.
var version = "dev"

const defaultConfigPath = "configs/config.yaml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "rentdesk: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configPath := os.Getenv("RENTDESK_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.Logging, version)
	logger.Info("starting rentdesk", "version", version, "config", configPath)

	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("close database", "error", err)
		}
	}()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	users := auth.NewUserRepository(db.DB)
	complaints := complaint.NewRepository(db.DB)

	tokens := auth.NewTokens(cfg.Security.JWT.Secret, cfg.TokenTTL())
	authService := auth.NewService(users, tokens)
	complaintService := complaint.NewService(complaints)

	collector := metrics.NewCollector()

	server, err := api.New(api.Deps{
		Config:     cfg,
		Logger:     logger,
		DB:         db,
		Auth:       authService,
		Complaints: complaintService,
		Metrics:    collector,
	})
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	if err := server.Close(); err != nil {
		return fmt.Errorf("stop server: %w", err)
	}
	logger.Info("rentdesk stopped")
	return nil
}
