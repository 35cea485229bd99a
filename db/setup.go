package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// SetupPostgres applies all pending migrations to the database at dsn.
func SetupPostgres(ctx context.Context, dsn string, logger *zap.Logger) error {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer sqlDB.Close()

	if err = sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err = goose.UpContext(ctx, sqlDB, migrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	if logger != nil {
		version, vErr := goose.GetDBVersionContext(ctx, sqlDB)
		if vErr == nil {
			logger.Info("database migrated", zap.Int64("version", version))
		}
	}

	return nil
}

// Migrations exposes the embedded migration files.
func Migrations() embed.FS {
	return migrations
}
