package app

import (
	"context"
	"testing"
	"time"

	"github.com/project/librarysrv/config"
	"github.com/project/librarysrv/internal/usecase/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()

	return &config.Config{
		Server: config.ServerConfig{Addr: "127.0.0.1:0", Greeting: true},
		Storage: config.StorageConfig{
			Backend:        backend,
			DataDir:        t.TempDir(),
			BadgerInMemory: true,
		},
		Outbox: config.OutboxConfig{
			Enabled:         true,
			Workers:         1,
			BatchSize:       10,
			WaitTimeMS:      10 * time.Millisecond,
			InProgressTTLMS: time.Second,
			AttemptsRetry:   3,
		},
	}
}

func TestOpenStorage(t *testing.T) {
	t.Parallel()

	for _, backend := range []string{config.BackendJSON, config.BackendBadger} {
		t.Run(backend, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig(t, backend)
			s, err := openStorage(context.Background(), zaptest.NewLogger(t), cfg)
			require.NoError(t, err)
			defer s.close()

			ctx := context.Background()
			records, err := s.collections.Read(ctx, repository.AuthorsCollection)
			require.NoError(t, err)
			require.Empty(t, records)

			require.NoError(t, s.transactor.WithTx(ctx, func(ctx context.Context) error {
				return s.collections.Write(ctx, repository.AuthorsCollection, nil)
			}))
		})
	}
}

func TestOpenStorage_UnknownBackend(t *testing.T) {
	t.Parallel()

	_, err := openStorage(context.Background(), zaptest.NewLogger(t), testConfig(t, "mongo"))
	require.ErrorIs(t, err, config.ErrUnknownBackend)
}

func TestRun_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, zaptest.NewLogger(t), testConfig(t, config.BackendJSON)) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop")
	}
}

func TestInitTracer_Disabled(t *testing.T) {
	t.Parallel()

	shutdown, err := initTracer("")
	require.NoError(t, err)
	shutdown(zaptest.NewLogger(t))
}
