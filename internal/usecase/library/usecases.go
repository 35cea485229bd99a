package library

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/project/librarysrv/internal/entity"
	"github.com/project/librarysrv/internal/log"
	"github.com/project/librarysrv/internal/usecase/repository"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// UnverifiedCount is reported by the book counters when the books could not
// be read. It is large enough to block any restricted delete.
const UnverifiedCount = math.MaxInt32

const (
	kindAuthor    = "author"
	kindBook      = "book"
	kindPublisher = "publisher"
)

type (
	Repository[T entity.Record[T]] interface {
		GetAll(ctx context.Context) ([]T, error)
		GetByID(ctx context.Context, id string) (T, bool, error)
		FindByField(ctx context.Context, field, substring string) ([]T, error)
		FindByForeignKey(ctx context.Context, field, id string) ([]T, error)
		Add(ctx context.Context, item T) (T, error)
		Update(ctx context.Context, id string, fields map[string]any) (T, bool, error)
		Delete(ctx context.Context, id string) (T, bool, error)
	}

	AuthorRepository    = Repository[entity.Author]
	BooksRepository     = Repository[entity.Book]
	PublisherRepository = Repository[entity.Publisher]

	OutboxRepository interface {
		SendMessage(ctx context.Context, idempotencyKey string, kind repository.OutboxKind, message []byte) error
		GetMessages(ctx context.Context, batchSize int, inProgressTTL time.Duration) ([]repository.OutboxData, error)
		MarkAs(ctx context.Context, idempotencyKeys []string, s repository.Status) error
	}
)

var _ AuthorUseCase = (*libraryImpl)(nil)
var _ BooksUseCase = (*libraryImpl)(nil)
var _ PublisherUseCase = (*libraryImpl)(nil)

type libraryImpl struct {
	logger              *zap.Logger
	authorRepository    AuthorRepository
	booksRepository     BooksRepository
	publisherRepository PublisherRepository
	outboxRepository    OutboxRepository
}

// New builds the use cases. outboxRepository may be nil, in which case no
// change notifications are queued.
func New(
	logger *zap.Logger,
	authorRepository AuthorRepository,
	booksRepository BooksRepository,
	publisherRepository PublisherRepository,
	outboxRepository OutboxRepository,
) *libraryImpl {
	return &libraryImpl{
		logger:              logger,
		authorRepository:    authorRepository,
		booksRepository:     booksRepository,
		publisherRepository: publisherRepository,
		outboxRepository:    outboxRepository,
	}
}

func traceOf(ctx context.Context) (trace.Span, string) {
	span := trace.SpanFromContext(ctx)
	return span, span.SpanContext().TraceID().String()
}

func (l *libraryImpl) notify(ctx context.Context, kind repository.OutboxKind, action entity.ChangeAction, id string, v any) {
	if l.outboxRepository == nil {
		return
	}
	_, traceID := traceOf(ctx)

	raw, err := json.Marshal(v)
	if log.ErrorNotify(l.logger, err, "can not serialize changed entity", traceID, kind.String(), id) {
		return
	}

	message, err := json.Marshal(entity.Change{Action: action, ID: id, Entity: raw})
	if log.ErrorNotify(l.logger, err, "can not serialize change", traceID, kind.String(), id) {
		return
	}

	idempotencyKey := kind.String() + "_" + id + "_" + uuid.NewString()
	err = l.outboxRepository.SendMessage(ctx, idempotencyKey, kind, message)
	log.ErrorNotify(l.logger, err, "can not queue change notification", traceID, kind.String(), id)
}

func getByID[T entity.Record[T]](ctx context.Context, repo Repository[T], id string, notFound error) (T, error) {
	item, found, err := repo.GetByID(ctx, id)
	if err != nil || !found {
		var zero T
		return zero, fmt.Errorf("%w with id %q", notFound, id)
	}
	return item, nil
}

func searchBy[T entity.Record[T]](ctx context.Context, repo Repository[T], field, term string, notFound error) ([]T, error) {
	if term == "" {
		return nil, fmt.Errorf("%w: search term is required", entity.ErrValidation)
	}

	items, err := repo.FindByField(ctx, field, term)
	if err != nil || len(items) == 0 {
		return nil, fmt.Errorf("%w matching %q", notFound, term)
	}
	return items, nil
}

// ensureUnique fails with ErrConflict when another record already carries
// value in field, ignoring case.
func ensureUnique[T entity.Record[T]](ctx context.Context, repo Repository[T], field, value, excludeID, kind string) error {
	candidates, err := repo.FindByField(ctx, field, value)
	if err != nil {
		return err
	}

	if lo.ContainsBy(candidates, func(c T) bool {
		return c.GetID() != excludeID && strings.EqualFold(c.Field(field), value)
	}) {
		return fmt.Errorf("%w: %s with %s %q already exists", entity.ErrConflict, kind, field, value)
	}
	return nil
}

// resolveByName prefers a single exact match and falls back to a single
// substring match.
func resolveByName[T entity.Record[T]](ctx context.Context, repo Repository[T], field, name string, notFound error) (T, error) {
	var zero T

	candidates, err := repo.FindByField(ctx, field, name)
	if err != nil {
		return zero, err
	}

	exact := lo.Filter(candidates, func(c T, _ int) bool {
		return strings.EqualFold(c.Field(field), name)
	})

	switch {
	case len(exact) == 1:
		return exact[0], nil
	case len(exact) > 1:
		return zero, fmt.Errorf("%w: %q matches %d records", entity.ErrAmbiguousReference, name, len(exact))
	case len(candidates) == 1:
		return candidates[0], nil
	case len(candidates) == 0:
		return zero, fmt.Errorf("%w with %s %q", notFound, field, name)
	default:
		return zero, fmt.Errorf("%w: %q matches %d records", entity.ErrAmbiguousReference, name, len(candidates))
	}
}

func nameIndex[T entity.Record[T]](ctx context.Context, repo Repository[T], field string) map[string]string {
	items, err := repo.GetAll(ctx)
	if err != nil {
		return map[string]string{}
	}
	return lo.SliceToMap(items, func(it T) (string, string) {
		return it.GetID(), it.Field(field)
	})
}
