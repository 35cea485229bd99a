package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(nil)
	require.NoError(t, err)

	require.Equal(t, defaultAddr, cfg.Server.Addr)
	require.True(t, cfg.Server.Greeting)
	require.Equal(t, BackendJSON, cfg.Storage.Backend)
	require.Equal(t, defaultDataDir, cfg.Storage.DataDir)
	require.False(t, cfg.Outbox.Enabled)
	require.Equal(t, defaultLogLevel, cfg.Log.Level)
	require.True(t, cfg.Log.LogController)
	require.Empty(t, cfg.PG.URL)
}

func TestNewConfig_Env(t *testing.T) {
	t.Setenv("SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("SERVER_GREETING", "false")
	t.Setenv("STORAGE_BACKEND", "Postgres")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "6432")
	t.Setenv("POSTGRES_DB", "library")
	t.Setenv("POSTGRES_USER", "user")
	t.Setenv("POSTGRES_PASSWORD", "p@ss")
	t.Setenv("OUTBOX_ENABLED", "true")
	t.Setenv("OUTBOX_WORKERS", "3")
	t.Setenv("OUTBOX_WAIT_TIME_MS", "250")
	t.Setenv("OUTBOX_BOOK_SEND_URL", "http://hooks/books")
	t.Setenv("LOG_CONTROLLER_ENABLED", "false")

	cfg, err := NewConfig(nil)
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	require.False(t, cfg.Server.Greeting)
	require.Equal(t, BackendPostgres, cfg.Storage.Backend)
	require.Equal(t, "postgres://user:p%40ss@db:6432/library?pool_max_conns=10&sslmode=disable", cfg.PG.URL)
	require.Equal(t, "postgres://user:p%40ss@db:6432/library?sslmode=disable", cfg.PG.MigrationURL)

	require.True(t, cfg.Outbox.Enabled)
	require.Equal(t, 3, cfg.Outbox.Workers)
	require.Equal(t, defaultBatchSize, cfg.Outbox.BatchSize)
	require.Equal(t, 250*time.Millisecond, cfg.Outbox.WaitTimeMS)
	require.Equal(t, "http://hooks/books", cfg.Outbox.BookSendURL)
	require.Equal(t, defaultAttemptsRetry, cfg.Outbox.AttemptsRetry)

	require.False(t, cfg.Log.LogController)
	require.True(t, cfg.Log.LogUseCase)
}

func TestNewConfig_Flags(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":1111")
	t.Setenv("DATA_DIR", "/from/env")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--addr", ":2222", "--backend", "badger"}))

	cfg, err := NewConfig(fs)
	require.NoError(t, err)
	require.Equal(t, ":2222", cfg.Server.Addr)
	require.Equal(t, BackendBadger, cfg.Storage.Backend)
	require.Equal(t, "/from/env", cfg.Storage.DataDir)
}

func TestNewConfig_UnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "mongo")

	_, err := NewConfig(nil)
	require.ErrorIs(t, err, ErrUnknownBackend)
}

func TestNewConfig_InvalidOutbox(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "zero batch", env: map[string]string{"OUTBOX_BATCH_SIZE": "0"}},
		{name: "zero workers", env: map[string]string{"OUTBOX_WORKERS": "0"}},
		{name: "negative batch", env: map[string]string{"OUTBOX_BATCH_SIZE": "-5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OUTBOX_ENABLED", "true")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := NewConfig(nil)
			require.ErrorIs(t, err, ErrInvalidOutbox)
		})
	}
}

func TestNewConfig_DisabledOutboxSkipsValidation(t *testing.T) {
	t.Setenv("OUTBOX_BATCH_SIZE", "0")

	cfg, err := NewConfig(nil)
	require.NoError(t, err)
	require.False(t, cfg.Outbox.Enabled)
}
