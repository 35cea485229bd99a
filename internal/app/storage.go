package app

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/project/librarysrv/config"
	"github.com/project/librarysrv/db"
	"github.com/project/librarysrv/internal/usecase/repository"
	pkglogger "github.com/project/librarysrv/pkg/logger"
	"go.uber.org/zap"
)

type storage struct {
	collections repository.Collections
	transactor  repository.Transactor
	close       func()
}

func openStorage(ctx context.Context, logger *zap.Logger, cfg *config.Config) (*storage, error) {
	logRepo := pkglogger.Enabled(logger, cfg.Log.LogDBRepo)

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		if err := db.SetupPostgres(ctx, cfg.PG.MigrationURL, logRepo); err != nil {
			return nil, err
		}

		pool, err := pgxpool.New(ctx, cfg.PG.URL)
		if err != nil {
			return nil, fmt.Errorf("can not create pgxpool: %w", err)
		}

		return &storage{
			collections: repository.NewPostgres(logRepo, pool),
			transactor:  repository.NewTransactor(pkglogger.Enabled(logger, cfg.Log.LogTransactor), pool),
			close:       pool.Close,
		}, nil

	case config.BackendBadger:
		bdb, err := repository.OpenBadger(logRepo, cfg.Storage.BadgerPath, cfg.Storage.BadgerInMemory)
		if err != nil {
			return nil, err
		}

		return &storage{
			collections: repository.NewBadger(logRepo, bdb),
			transactor:  repository.NewNoopTransactor(),
			close:       closeBadger(logger, bdb),
		}, nil

	case config.BackendJSON:
		collections, err := repository.NewJSONFile(logRepo, cfg.Storage.DataDir)
		if err != nil {
			return nil, err
		}

		return &storage{
			collections: collections,
			transactor:  repository.NewNoopTransactor(),
			close:       func() {},
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Storage.Backend)
	}
}

func closeBadger(logger *zap.Logger, bdb *badger.DB) func() {
	return func() {
		pkglogger.CheckError(bdb.Close(), logger, "can not close badger")
	}
}
