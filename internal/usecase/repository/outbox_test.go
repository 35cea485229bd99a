package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const attemptsRetry = 1

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func newTestOutbox(c *clock) (*outboxRepository, *memCollections) {
	collections := newMemCollections()
	o := NewOutbox(collections, attemptsRetry)
	o.now = c.Now
	return o, collections
}

func Test_outboxRepository_SendMessage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := &clock{now: time.Unix(1700000000, 0)}
	o, collections := newTestOutbox(c)

	require.NoError(t, o.SendMessage(ctx, "author_1", OutboxKindAuthor, []byte(`{"id":"1"}`)))
	require.NoError(t, o.SendMessage(ctx, "author_1", OutboxKindAuthor, []byte(`{"id":"1"}`)))
	require.Len(t, collections.data[OutboxCollection], 1)

	require.ErrorIs(t, o.SendMessage(ctx, "author_2", OutboxKindAuthor, []byte("not json")), ErrInvalidOutboxMessage)

	collections.writeErr = errInternal
	require.ErrorIs(t, o.SendMessage(ctx, "book_1", OutboxKindBook, []byte(`{}`)), errInternal)
}

func Test_outboxRepository_GetMessages(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := &clock{now: time.Unix(1700000000, 0)}
	o, collections := newTestOutbox(c)

	require.NoError(t, o.SendMessage(ctx, "first", OutboxKindAuthor, []byte(`{"n":1}`)))
	c.now = c.now.Add(time.Second)
	require.NoError(t, o.SendMessage(ctx, "second", OutboxKindBook, []byte(`{"n":2}`)))
	c.now = c.now.Add(time.Second)
	require.NoError(t, o.SendMessage(ctx, "third", OutboxKindPublisher, []byte(`{"n":3}`)))

	got, err := o.GetMessages(ctx, 2, time.Minute)
	require.NoError(t, err)
	require.Equal(t, []OutboxData{
		{IdempotencyKey: "first", Kind: OutboxKindAuthor, RawData: []byte(`{"n":1}`)},
		{IdempotencyKey: "second", Kind: OutboxKindBook, RawData: []byte(`{"n":2}`)},
	}, got)

	got, err = o.GetMessages(ctx, 5, time.Minute)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "third", got[0].IdempotencyKey)

	got, err = o.GetMessages(ctx, 5, time.Minute)
	require.NoError(t, err)
	require.Empty(t, got)

	c.now = c.now.Add(2 * time.Minute)
	got, err = o.GetMessages(ctx, 5, time.Minute)
	require.NoError(t, err)
	require.Len(t, got, 3)

	collections.readErr = errInternal
	_, err = o.GetMessages(ctx, 5, time.Minute)
	require.ErrorIs(t, err, errInternal)
}

func Test_outboxRepository_MarkAs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := &clock{now: time.Unix(1700000000, 0)}
	o, collections := newTestOutbox(c)

	require.NoError(t, o.MarkAs(ctx, nil, Success))
	require.Zero(t, collections.writes)

	require.NoError(t, o.SendMessage(ctx, "ok", OutboxKindAuthor, []byte(`{}`)))
	require.NoError(t, o.SendMessage(ctx, "retry", OutboxKindBook, []byte(`{}`)))

	_, err := o.GetMessages(ctx, 10, time.Minute)
	require.NoError(t, err)

	require.NoError(t, o.MarkAs(ctx, []string{"ok"}, Success))
	records, err := o.load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "retry", records[0].IdempotencyKey)

	require.NoError(t, o.MarkAs(ctx, []string{"retry"}, Created))
	records, err = o.load(ctx)
	require.NoError(t, err)
	require.Equal(t, Created.String(), records[0].Status)
	require.Equal(t, 1, records[0].Attempts)

	_, err = o.GetMessages(ctx, 10, time.Minute)
	require.NoError(t, err)

	require.NoError(t, o.MarkAs(ctx, []string{"retry"}, Created))
	records, err = o.load(ctx)
	require.NoError(t, err)
	require.Equal(t, Abandoned.String(), records[0].Status)
	require.Equal(t, 2, records[0].Attempts)

	got, err := o.GetMessages(ctx, 10, time.Minute)
	require.NoError(t, err)
	require.Empty(t, got)
}
