package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/project/librarysrv/config"
	"github.com/project/librarysrv/internal/controller"
	"github.com/project/librarysrv/internal/entity"
	"github.com/project/librarysrv/internal/server"
	"github.com/project/librarysrv/internal/usecase/library"
	"github.com/project/librarysrv/internal/usecase/repository"
	pkglogger "github.com/project/librarysrv/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Run starts the server and blocks until SIGINT or SIGTERM.
func Run(logger *zap.Logger, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return run(ctx, logger, cfg)
}

func run(ctx context.Context, logger *zap.Logger, cfg *config.Config) error {
	shutdownTracer, err := initTracer(cfg.Observability.JaegerURL)
	if err != nil {
		return err
	}
	defer shutdownTracer(logger)

	storage, err := openStorage(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer storage.close()

	logRepo := pkglogger.Enabled(logger, cfg.Log.LogDBRepo)
	authors := repository.NewStore[entity.Author](logRepo, repository.AuthorsCollection, storage.collections, storage.transactor)
	books := repository.NewStore[entity.Book](logRepo, repository.BooksCollection, storage.collections, storage.transactor)
	publishers := repository.NewStore[entity.Publisher](logRepo, repository.PublishersCollection, storage.collections, storage.transactor)

	var outboxRepository library.OutboxRepository
	if cfg.Outbox.Enabled {
		outboxRepository = repository.NewOutbox(storage.collections, cfg.Outbox.AttemptsRetry)
	}

	useCases := library.New(pkglogger.Enabled(logger, cfg.Log.LogUseCase), authors, books, publishers, outboxRepository)
	ctrl := controller.New(pkglogger.Enabled(logger, cfg.Log.LogController), useCases, useCases, useCases)
	srv := server.New(pkglogger.Enabled(logger, cfg.Log.LogServer), ctrl, cfg.Server.Addr, cfg.Server.Greeting)

	if err = srv.Listen(); err != nil {
		return err
	}
	logger.Info("library server started",
		zap.String("addr", srv.Addr().String()),
		zap.String("backend", cfg.Storage.Backend))

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Serve(gCtx)
	})

	if cfg.Observability.MetricsPort != "" {
		g.Go(func() error {
			return runMetrics(gCtx, logger, cfg.Observability.MetricsPort)
		})
	}

	if outboxRepository != nil {
		worker := newOutbox(logger, cfg, outboxRepository)
		worker.Start(gCtx, cfg.Outbox.Workers, cfg.Outbox.BatchSize, cfg.Outbox.WaitTimeMS, cfg.Outbox.InProgressTTLMS)
		g.Go(func() error {
			worker.Wait()
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return fmt.Errorf("library server: %w", err)
	}

	logger.Info("library server stopped")
	return nil
}
