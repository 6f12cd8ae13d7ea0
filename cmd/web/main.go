package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"thirdcoast.systems/rasterkernels/cmd/web/internal/web"
	"thirdcoast.systems/rasterkernels/internal/application"
	"thirdcoast.systems/rasterkernels/internal/config"
	"thirdcoast.systems/rasterkernels/internal/db"
	"thirdcoast.systems/rasterkernels/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		slog.Error("web service exited", "error", err)
		os.Exit(1)
	}
}

// run owns every resource the service opens, so its defers complete before
// main decides the exit status.
func run(ctx context.Context) error {
	conf, err := config.LoadConfig(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.Setup(*conf)

	slog.Info("Starting web service", "config", *conf)

	var dbc *db.DatabaseConnection
	if conf.RequireDatabase() == nil {
		pool, err := application.OpenDBPoolWithRetry(ctx, *conf)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		dbc, err = db.NewDatabaseConnection(ctx, pool)
		if err != nil {
			return fmt.Errorf("create database connection: %w", err)
		}
	} else {
		slog.Info("DATABASE_DSN not set; serving presets from memory only")
	}

	e, err := web.NewWebserver(ctx, dbc)
	if err != nil {
		return fmt.Errorf("create webserver: %w", err)
	}

	addr := ":" + strconv.Itoa(conf.WebServerPort)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	slog.Info("Listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		// Echo returns an error on Shutdown; treat it as normal if context is done.
		if errors.Is(err, http.ErrServerClosed) || ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
