package app

import (
	"github.com/project/librarysrv/config"
	"github.com/project/librarysrv/internal/usecase/outbox"
	"github.com/project/librarysrv/internal/usecase/repository"
	pkglogger "github.com/project/librarysrv/pkg/logger"
	"go.uber.org/zap"
)

// newOutbox builds the delivery workers. They run without a database
// transaction whatever the backend: the outbox collection is guarded by the
// repository lock, and a row lock held around it would serialize every
// worker behind the slowest webhook.
func newOutbox(logger *zap.Logger, cfg *config.Config, outboxRepository outbox.Repository) outbox.Outbox {
	handler := outbox.NewHTTPHandler(outbox.NewHTTPClient(), map[repository.OutboxKind]string{
		repository.OutboxKindAuthor:    cfg.Outbox.AuthorSendURL,
		repository.OutboxKindBook:      cfg.Outbox.BookSendURL,
		repository.OutboxKindPublisher: cfg.Outbox.PublisherSendURL,
	})

	return outbox.New(
		pkglogger.Enabled(logger, cfg.Log.LogOutboxWorker),
		outboxRepository,
		handler,
		cfg,
		repository.NewNoopTransactor(),
	)
}
