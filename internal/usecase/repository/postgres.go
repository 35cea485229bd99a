package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/project/librarysrv/pkg/logger"
	"go.uber.org/zap"
)

type DataBase interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

var _ Collections = (*postgresCollections)(nil)

// postgresCollections stores each collection as one JSONB row of the
// collections table. Statements join the transaction carried by ctx, if any.
type postgresCollections struct {
	logger *zap.Logger
	db     DataBase
}

func NewPostgres(logger *zap.Logger, db DataBase) *postgresCollections {
	return &postgresCollections{
		logger: logger,
		db:     db,
	}
}

func (p *postgresCollections) executor(ctx context.Context) DataBase {
	if tx, err := extractTx(ctx); err == nil {
		return tx
	}
	return p.db
}

func (p *postgresCollections) Read(ctx context.Context, name string) ([]json.RawMessage, error) {
	const query = `
SELECT records
FROM collections
WHERE name = $1
FOR UPDATE
`
	var raw []byte
	err := p.executor(ctx).QueryRow(ctx, query, name).Scan(&raw)

	if errors.Is(err, pgx.ErrNoRows) {
		return []json.RawMessage{}, nil
	}

	if logger.CheckError(err, p.logger, "can not select collection", zap.String("collection", name)) {
		return nil, err
	}

	records := make([]json.RawMessage, 0)
	if err = json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (p *postgresCollections) Write(ctx context.Context, name string, records []json.RawMessage) error {
	const query = `
INSERT INTO collections (name, records, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE
SET records = EXCLUDED.records, updated_at = now()
`
	if records == nil {
		records = []json.RawMessage{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return err
	}

	_, err = p.executor(ctx).Exec(ctx, query, name, data)
	if logger.CheckError(err, p.logger, "can not upsert collection", zap.String("collection", name)) {
		return err
	}

	return nil
}
