package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/pashagolub/pgxmock/v4"
)

type txLayer uint

const (
	none txLayer = iota
	extract
)

type errLayer uint

const (
	null errLayer = iota
	db
	scan
	f
	beginTx
	commitTx
	rollBackTx
)

var errInternal = errors.New("internal error")

func insertTxInMock(ctx context.Context, mock pgxmock.PgxPoolIface) context.Context {
	mock.ExpectBegin()
	tx, _ := mock.Begin(ctx)
	ctx = context.WithValue(ctx, txInjector{}, tx)
	return ctx
}

type memCollections struct {
	mu       sync.Mutex
	data     map[string][]json.RawMessage
	readErr  error
	writeErr error
	writes   int
}

func newMemCollections() *memCollections {
	return &memCollections{data: make(map[string][]json.RawMessage)}
}

func (m *memCollections) Read(_ context.Context, name string) ([]json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.readErr != nil {
		return nil, m.readErr
	}

	out := make([]json.RawMessage, len(m.data[name]))
	copy(out, m.data[name])
	return out, nil
}

func (m *memCollections) Write(_ context.Context, name string, records []json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return m.writeErr
	}

	m.writes++
	m.data[name] = append([]json.RawMessage(nil), records...)
	return nil
}
