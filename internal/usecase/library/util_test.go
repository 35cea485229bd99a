package library

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/project/librarysrv/internal/entity"
	"github.com/project/librarysrv/internal/usecase/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var errInternal = errors.New("internal error")

type memCollections struct {
	mu       sync.Mutex
	data     map[string][]json.RawMessage
	readErr  map[string]error
	writeErr error
}

func newMemCollections() *memCollections {
	return &memCollections{
		data:    make(map[string][]json.RawMessage),
		readErr: make(map[string]error),
	}
}

func (m *memCollections) Read(_ context.Context, name string) ([]json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.readErr[name]; err != nil {
		return nil, err
	}
	return append([]json.RawMessage{}, m.data[name]...), nil
}

func (m *memCollections) Write(_ context.Context, name string, records []json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return m.writeErr
	}
	m.data[name] = append([]json.RawMessage(nil), records...)
	return nil
}

func (m *memCollections) failReads(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr[name] = errInternal
}

func initLibraryTest(t *testing.T, outbox OutboxRepository) (context.Context, *memCollections, *libraryImpl) {
	t.Helper()

	logger := zaptest.NewLogger(t)
	collections := newMemCollections()
	transactor := repository.NewNoopTransactor()

	l := New(logger,
		repository.NewStore[entity.Author](logger, repository.AuthorsCollection, collections, transactor),
		repository.NewStore[entity.Book](logger, repository.BooksCollection, collections, transactor),
		repository.NewStore[entity.Publisher](logger, repository.PublishersCollection, collections, transactor),
		outbox,
	)
	return context.Background(), collections, l
}

func seedAuthor(t *testing.T, l *libraryImpl, name, nationality string) entity.Author {
	t.Helper()
	author, err := l.AddAuthor(context.Background(), map[string]any{"name": name, "nationality": nationality})
	require.NoError(t, err)
	return author
}

func seedPublisher(t *testing.T, l *libraryImpl, name, country string) entity.Publisher {
	t.Helper()
	publisher, err := l.AddPublisher(context.Background(), map[string]any{"name": name, "country": country})
	require.NoError(t, err)
	return publisher
}
