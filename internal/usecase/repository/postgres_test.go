package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func Test_postgresCollections_Read(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		txL        txLayer
		rows       []byte
		dbErr      error
		want       int
		errRequire error
	}{
		{
			name: "ok with transaction",
			txL:  extract,
			rows: []byte(`[{"id":"1"},{"id":"2"}]`),
			want: 2,
		},
		{
			name: "ok without transaction",
			txL:  none,
			rows: []byte(`[{"id":"1"}]`),
			want: 1,
		},
		{
			name:  "collection never written",
			txL:   none,
			dbErr: pgx.ErrNoRows,
			want:  0,
		},
		{
			name:       "error in query",
			txL:        none,
			dbErr:      errInternal,
			errRequire: errInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewPool()
			require.NoError(t, err)

			ctx := context.Background()
			if tt.txL == extract {
				ctx = insertTxInMock(ctx, mock)
			}

			expected := mock.ExpectQuery(`SELECT records`).WithArgs(AuthorsCollection)
			if tt.dbErr != nil {
				expected.WillReturnError(tt.dbErr)
			} else {
				expected.WillReturnRows(pgxmock.NewRows([]string{"records"}).AddRow(tt.rows))
			}

			c := NewPostgres(nil, mock)
			got, err := c.Read(ctx, AuthorsCollection)
			require.ErrorIs(t, err, tt.errRequire)
			if tt.errRequire == nil {
				require.Len(t, got, tt.want)
			}
		})
	}
}

func Test_postgresCollections_Write(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		txL        txLayer
		errRequire error
	}{
		{
			name: "ok with transaction",
			txL:  extract,
		},
		{
			name: "ok without transaction",
			txL:  none,
		},
		{
			name:       "error in exec",
			txL:        none,
			errRequire: errInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewPool()
			require.NoError(t, err)

			ctx := context.Background()
			if tt.txL == extract {
				ctx = insertTxInMock(ctx, mock)
			}

			records := []json.RawMessage{json.RawMessage(`{"id":"1"}`)}
			expected := mock.ExpectExec(`INSERT INTO collections`).WithArgs(BooksCollection, []byte(`[{"id":"1"}]`))
			if tt.errRequire != nil {
				expected.WillReturnError(tt.errRequire)
			} else {
				expected.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			c := NewPostgres(nil, mock)
			err = c.Write(ctx, BooksCollection, records)
			require.ErrorIs(t, err, tt.errRequire)
		})
	}
}
