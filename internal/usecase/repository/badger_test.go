package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestBadger_WriteRead(t *testing.T) {
	t.Parallel()

	logger := zaptest.NewLogger(t)
	database, err := OpenBadger(logger, "", true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	c := NewBadger(logger, database)
	ctx := context.Background()

	records, err := c.Read(ctx, PublishersCollection)
	require.NoError(t, err)
	require.Empty(t, records)

	require.NoError(t, c.Write(ctx, PublishersCollection, []json.RawMessage{
		json.RawMessage(`{"id":"p1","name":"Planeta","country":"Spain"}`),
	}))

	records, err = c.Read(ctx, PublishersCollection)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.JSONEq(t, `{"id":"p1","name":"Planeta","country":"Spain"}`, string(records[0]))

	records, err = c.Read(ctx, AuthorsCollection)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestBadger_Persistent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	database, err := OpenBadger(nil, dir, false)
	require.NoError(t, err)
	require.NoError(t, NewBadger(nil, database).Write(ctx, AuthorsCollection, []json.RawMessage{json.RawMessage(`{"id":"a1"}`)}))
	require.NoError(t, database.Close())

	database, err = OpenBadger(nil, dir, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	records, err := NewBadger(nil, database).Read(ctx, AuthorsCollection)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestBadger_PathRequired(t *testing.T) {
	t.Parallel()

	_, err := OpenBadger(nil, "", false)
	require.Error(t, err)
}
