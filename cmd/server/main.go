// Package main implements the entry point for the TaskVault API server,
// a multi-tenant task management backend with JWT authentication.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/taskvault/taskvault-api/internal/config"
	"github.com/taskvault/taskvault-api/internal/platform/logger"
)

// main initializes configuration, logging and the database, applies pending
// schema migrations, wires the application dependencies and runs the HTTP
// server until it is signalled to stop.
func main() {
	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := runMigrations(db, appLogger); err != nil {
		appLogger.Error("Failed to apply database migrations", "error", err)
		os.Exit(1)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		appLogger.Error("Failed to build application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(context.Background()); err != nil {
		appLogger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return cfg, appLogger, nil
}
