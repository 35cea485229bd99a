package repository

import (
	"context"
	"encoding/json"
	"time"
)

const (
	AuthorsCollection    = "authors"
	BooksCollection      = "books"
	PublishersCollection = "publishers"
	OutboxCollection     = "outbox"
)

type (
	// Collections persists whole collections. Read of a collection that was
	// never written returns an empty slice and no error.
	Collections interface {
		Read(ctx context.Context, name string) ([]json.RawMessage, error)
		Write(ctx context.Context, name string, records []json.RawMessage) error
	}

	OutboxRepository interface {
		SendMessage(ctx context.Context, idempotencyKey string, kind OutboxKind, message []byte) error
		GetMessages(ctx context.Context, batchSize int, inProgressTTL time.Duration) ([]OutboxData, error)
		MarkAs(ctx context.Context, idempotencyKeys []string, s Status) error
	}

	OutboxData struct {
		IdempotencyKey string
		Kind           OutboxKind
		RawData        []byte
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}
)

type OutboxKind int

const (
	OutboxKindUndefined OutboxKind = iota
	OutboxKindAuthor
	OutboxKindBook
	OutboxKindPublisher
)

func (o OutboxKind) String() string {
	switch o {
	case OutboxKindAuthor:
		return "author"
	case OutboxKindBook:
		return "book"
	case OutboxKindPublisher:
		return "publisher"
	default:
		return "undefined"
	}
}
