package db

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const migrationsDir = "sql/migrations"

type DatabaseConnection struct {
	*pgxpool.Pool
}

// NewDatabaseConnection wraps pool after confirming it answers a ping.
func NewDatabaseConnection(ctx context.Context, pool *pgxpool.Pool) (*DatabaseConnection, error) {
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("could not ping the database: %w", err)
	}
	return &DatabaseConnection{pool}, nil
}

// Close closes the database connection
func (db *DatabaseConnection) Close() {
	db.Pool.Close()
}

//go:embed sql/migrations/*.sql
var embedMigrations embed.FS

// migrationTarget reads GOOSE_UP_TO / GOOSE_DOWN_TO. down is true when a
// down-migration was requested.
func migrationTarget(lookup func(string) (string, bool)) (version int64, down bool, err error) {
	if v, ok := lookup("GOOSE_DOWN_TO"); ok {
		version, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("failed to parse GOOSE_DOWN_TO version: %w", err)
		}
		return version, true, nil
	}
	if v, ok := lookup("GOOSE_UP_TO"); ok {
		version, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("failed to parse GOOSE_UP_TO version: %w", err)
		}
		return version, false, nil
	}
	return goose.MaxVersion, false, nil
}

// Migrate runs the goose migrations
func (db *DatabaseConnection) Migrate(ctx context.Context) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	stdDb := stdlib.OpenDBFromPool(db.Pool)
	defer stdDb.Close()

	currentVersion, err := goose.GetDBVersionContext(ctx, stdDb)
	if err != nil {
		return err
	}

	migrations, err := goose.CollectMigrations(migrationsDir, 0, goose.MaxVersion)
	if err != nil {
		return err
	}
	for _, m := range migrations {
		slog.Info("embedded migration", "source", m.Source, "version", m.Version, "current", m.Version == currentVersion)
	}

	target, down, err := migrationTarget(os.LookupEnv)
	if err != nil {
		return err
	}
	if down {
		return goose.DownToContext(ctx, stdDb, migrationsDir, target)
	}
	return goose.UpToContext(ctx, stdDb, migrationsDir, target)
}
