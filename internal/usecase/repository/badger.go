package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

const badgerKeyPrefix = "collection/"

var _ Collections = (*badgerCollections)(nil)

type badgerCollections struct {
	logger *zap.Logger
	db     *badger.DB
}

func NewBadger(logger *zap.Logger, db *badger.DB) *badgerCollections {
	return &badgerCollections{
		logger: logger,
		db:     db,
	}
}

type badgerLogger struct {
	logger *zap.SugaredLogger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warnf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

// OpenBadger opens the database at path, or an in-memory one when inMemory
// is set.
func OpenBadger(logger *zap.Logger, path string, inMemory bool) (*badger.DB, error) {
	var opts badger.Options
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if path == "" {
			return nil, errors.New("path is required for persistent badger database")
		}
		if err := os.MkdirAll(path, 0750); err != nil {
			return nil, fmt.Errorf("create badger directory %s: %w", path, err)
		}
		opts = badger.DefaultOptions(path).WithSyncWrites(true)
	}

	if logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: logger.Sugar()})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}

	return db, nil
}

func (b *badgerCollections) Read(_ context.Context, name string) ([]json.RawMessage, error) {
	records := make([]json.RawMessage, 0)

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerKeyPrefix + name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &records)
		})
	})

	if err != nil {
		if b.logger != nil {
			b.logger.Error("can not read badger collection", zap.String("collection", name), zap.Error(err))
		}
		return nil, err
	}

	return records, nil
}

func (b *badgerCollections) Write(_ context.Context, name string, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return err
	}

	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(badgerKeyPrefix+name), data)
	})
}
