package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"thirdcoast.systems/rasterkernels/internal/application"
	"thirdcoast.systems/rasterkernels/internal/config"
	"thirdcoast.systems/rasterkernels/internal/db"
	"thirdcoast.systems/rasterkernels/internal/logging"
)

func main() {
	startupCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	err := run(startupCtx)
	cancel()
	if err != nil {
		slog.Error("migrator failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	conf, err := config.LoadConfig(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.Setup(*conf)
	slog.Info("Starting database migrator service")

	if err := conf.RequireDatabase(); err != nil {
		return fmt.Errorf("migrator needs a database: %w", err)
	}

	// Connect to database with retry logic
	pool, err := application.OpenDBPoolWithRetry(ctx, *conf)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()
	slog.Info("Database pool connection established")

	databaseConnection, err := db.NewDatabaseConnection(ctx, pool)
	if err != nil {
		return fmt.Errorf("create database connection: %w", err)
	}

	if err := databaseConnection.Migrate(ctx); err != nil {
		return fmt.Errorf("run PostgreSQL migrations: %w", err)
	}
	slog.Info("Database migrations completed successfully")

	// A down-migration may have removed the table on purpose.
	if _, down := os.LookupEnv("GOOSE_DOWN_TO"); down {
		return nil
	}
	if err := databaseConnection.VerifyKernelPresets(ctx); err != nil {
		return fmt.Errorf("kernel preset table check: %w", err)
	}
	slog.Info("convolution_kernels table matches registry")
	return nil
}
