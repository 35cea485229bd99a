package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	BackendJSON     = "json"
	BackendPostgres = "postgres"
	BackendBadger   = "badger"
)

const (
	defaultAddr            = ":7000"
	defaultGreeting        = true
	defaultBackend         = BackendJSON
	defaultDataDir         = "data"
	defaultBadgerPath      = "data/badger"
	defaultMaxConn         = "10"
	defaultWorkers         = 1
	defaultBatchSize       = 100
	defaultWaitTimeMS      = 1000
	defaultInProgressTTLMS = 30000
	defaultAttemptsRetry   = 2000
	defaultLogValue        = true
	defaultLogLevel        = "info"
)

var (
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrInvalidOutbox  = errors.New("invalid outbox config")
)

type (
	Config struct {
		Server        ServerConfig
		Storage       StorageConfig
		PG            PGConfig
		Outbox        OutboxConfig
		Log           LogConfig
		Observability ObservabilityConfig
	}

	ServerConfig struct {
		Addr     string `env:"SERVER_ADDR"`
		Greeting bool   `env:"SERVER_GREETING"`
	}

	StorageConfig struct {
		Backend        string `env:"STORAGE_BACKEND"`
		DataDir        string `env:"DATA_DIR"`
		BadgerPath     string `env:"BADGER_PATH"`
		BadgerInMemory bool   `env:"BADGER_IN_MEMORY"`
	}

	PGConfig struct {
		URL          string
		MigrationURL string
		Host         string `env:"POSTGRES_HOST"`
		Port         string `env:"POSTGRES_PORT"`
		DB           string `env:"POSTGRES_DB"`
		User         string `env:"POSTGRES_USER"`
		Password     string `env:"POSTGRES_PASSWORD"`
		MaxConn      string `env:"POSTGRES_MAX_CONN"`
	}

	OutboxConfig struct {
		Enabled          bool          `env:"OUTBOX_ENABLED"`
		Workers          int           `env:"OUTBOX_WORKERS"`
		BatchSize        int           `env:"OUTBOX_BATCH_SIZE"`
		WaitTimeMS       time.Duration `env:"OUTBOX_WAIT_TIME_MS"`
		InProgressTTLMS  time.Duration `env:"OUTBOX_IN_PROGRESS_TTL_MS"`
		AuthorSendURL    string        `env:"OUTBOX_AUTHOR_SEND_URL"`
		BookSendURL      string        `env:"OUTBOX_BOOK_SEND_URL"`
		PublisherSendURL string        `env:"OUTBOX_PUBLISHER_SEND_URL"`
		AttemptsRetry    int           `env:"OUTBOX_ATTEMPTS_RETRY"`
	}

	LogConfig struct {
		File            string `env:"LOG_FILE"`
		Level           string `env:"LOG_LEVEL"`
		LogServer       bool   `env:"LOG_SERVER_ENABLED"`
		LogController   bool   `env:"LOG_CONTROLLER_ENABLED"`
		LogTransactor   bool   `env:"LOG_TRANSACTOR_ENABLED"`
		LogUseCase      bool   `env:"LOG_USECASE_ENABLED"`
		LogDBRepo       bool   `env:"LOG_DB_REPO_ENABLED"`
		LogOutboxWorker bool   `env:"LOG_OUTBOX_WORKER_ENABLED"`
	}

	ObservabilityConfig struct {
		MetricsPort string `env:"METRICS_PORT"`
		JaegerURL   string `env:"JAEGER_URL"`
	}
)

// RegisterFlags declares the command line flags understood by NewConfig.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("addr", defaultAddr, "TCP address to listen on")
	fs.Bool("greeting", defaultGreeting, "send a welcome envelope on connect")
	fs.String("backend", defaultBackend, "storage backend: json, postgres or badger")
	fs.String("data-dir", defaultDataDir, "directory of the json collections")
	fs.String("badger-path", defaultBadgerPath, "directory of the badger database")
	fs.String("log-file", "", "log file, stderr when empty")
	fs.String("log-level", defaultLogLevel, "log level")
	fs.String("metrics-port", "", "port of the prometheus endpoint, disabled when empty")
}

var flagKeys = map[string]string{
	"addr":         "server_addr",
	"greeting":     "server_greeting",
	"backend":      "storage_backend",
	"data-dir":     "data_dir",
	"badger-path":  "badger_path",
	"log-file":     "log_file",
	"log-level":    "log_level",
	"metrics-port": "metrics_port",
}

// NewConfig reads the configuration from flags, then the environment, then
// defaults. fs may be nil.
func NewConfig(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	v := viper.New()

	if fs != nil {
		for name, key := range flagKeys {
			if flag := fs.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, err
				}
			}
		}
	}

	var err error
	if cfg.Server.Addr, err = parseEnvString(v, "server_addr", "SERVER_ADDR", defaultAddr); err != nil {
		return nil, err
	}
	if cfg.Server.Greeting, err = parseEnvBool(v, "server_greeting", "SERVER_GREETING", defaultGreeting); err != nil {
		return nil, err
	}

	if cfg.Storage.Backend, err = parseEnvString(v, "storage_backend", "STORAGE_BACKEND", defaultBackend); err != nil {
		return nil, err
	}
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))

	switch cfg.Storage.Backend {
	case BackendJSON, BackendPostgres, BackendBadger:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Storage.Backend)
	}

	if cfg.Storage.DataDir, err = parseEnvString(v, "data_dir", "DATA_DIR", defaultDataDir); err != nil {
		return nil, err
	}
	if cfg.Storage.BadgerPath, err = parseEnvString(v, "badger_path", "BADGER_PATH", defaultBadgerPath); err != nil {
		return nil, err
	}
	if cfg.Storage.BadgerInMemory, err = parseEnvBool(v, "badger_in_memory", "BADGER_IN_MEMORY", false); err != nil {
		return nil, err
	}

	if cfg.Storage.Backend == BackendPostgres {
		if err = parsePostgres(v, cfg); err != nil {
			return nil, err
		}
	}

	if err = parseOutbox(v, cfg); err != nil {
		return nil, err
	}

	if err = parseLog(v, cfg); err != nil {
		return nil, err
	}

	if cfg.Observability.MetricsPort, err = parseEnvString(v, "metrics_port", "METRICS_PORT", ""); err != nil {
		return nil, err
	}
	if cfg.Observability.JaegerURL, err = parseEnvString(v, "jaeger_url", "JAEGER_URL", ""); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parsePostgres(v *viper.Viper, cfg *Config) error {
	var err error
	if cfg.PG.Host, err = parseEnvString(v, "pg_host", "POSTGRES_HOST", "localhost"); err != nil {
		return err
	}
	if cfg.PG.Port, err = parseEnvString(v, "pg_port", "POSTGRES_PORT", "5432"); err != nil {
		return err
	}
	if cfg.PG.DB, err = parseEnvString(v, "pg_db", "POSTGRES_DB"); err != nil {
		return err
	}
	if cfg.PG.User, err = parseEnvString(v, "pg_user", "POSTGRES_USER"); err != nil {
		return err
	}
	if cfg.PG.Password, err = parseEnvString(v, "pg_password", "POSTGRES_PASSWORD"); err != nil {
		return err
	}
	if cfg.PG.MaxConn, err = parseEnvString(v, "db_MaxCon", "POSTGRES_MAX_CONN", defaultMaxConn); err != nil {
		return err
	}

	base := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.PG.User, cfg.PG.Password),
		Host:   net.JoinHostPort(cfg.PG.Host, cfg.PG.Port),
		Path:   "/" + cfg.PG.DB,
	}

	query := url.Values{}
	query.Set("sslmode", "disable")
	base.RawQuery = query.Encode()
	cfg.PG.MigrationURL = base.String()

	query.Set("pool_max_conns", cfg.PG.MaxConn)
	base.RawQuery = query.Encode()
	cfg.PG.URL = base.String()

	return nil
}

func parseOutbox(v *viper.Viper, cfg *Config) error {
	var err error
	if cfg.Outbox.Enabled, err = parseEnvBool(v, "outbox", "OUTBOX_ENABLED"); err != nil {
		return err
	}

	if !cfg.Outbox.Enabled {
		return nil
	}

	if cfg.Outbox.Workers, err = parseEnvInt(v, "outbox_workers", "OUTBOX_WORKERS", defaultWorkers); err != nil {
		return err
	}
	if cfg.Outbox.BatchSize, err = parseEnvInt(v, "outbox_batch", "OUTBOX_BATCH_SIZE", defaultBatchSize); err != nil {
		return err
	}
	if cfg.Outbox.Workers <= 0 {
		return fmt.Errorf("%w: OUTBOX_WORKERS must be positive, got %d", ErrInvalidOutbox, cfg.Outbox.Workers)
	}
	if cfg.Outbox.BatchSize <= 0 {
		return fmt.Errorf("%w: OUTBOX_BATCH_SIZE must be positive, got %d", ErrInvalidOutbox, cfg.Outbox.BatchSize)
	}

	var ms int
	if ms, err = parseEnvInt(v, "outbox_wait", "OUTBOX_WAIT_TIME_MS", defaultWaitTimeMS); err != nil {
		return err
	}
	cfg.Outbox.WaitTimeMS = time.Duration(ms) * time.Millisecond

	if ms, err = parseEnvInt(v, "outbox_ttl", "OUTBOX_IN_PROGRESS_TTL_MS", defaultInProgressTTLMS); err != nil {
		return err
	}
	cfg.Outbox.InProgressTTLMS = time.Duration(ms) * time.Millisecond

	if cfg.Outbox.AuthorSendURL, err = parseEnvString(v, "outbox_author_url", "OUTBOX_AUTHOR_SEND_URL"); err != nil {
		return err
	}
	if cfg.Outbox.BookSendURL, err = parseEnvString(v, "outbox_book_url", "OUTBOX_BOOK_SEND_URL"); err != nil {
		return err
	}
	if cfg.Outbox.PublisherSendURL, err = parseEnvString(v, "outbox_publisher_url", "OUTBOX_PUBLISHER_SEND_URL"); err != nil {
		return err
	}

	if cfg.Outbox.AttemptsRetry, err = parseEnvInt(v, "attempts", "OUTBOX_ATTEMPTS_RETRY", defaultAttemptsRetry); err != nil {
		return err
	}

	return nil
}

func parseLog(v *viper.Viper, cfg *Config) error {
	var err error
	if cfg.Log.File, err = parseEnvString(v, "log_file", "LOG_FILE", ""); err != nil {
		return err
	}
	if cfg.Log.Level, err = parseEnvString(v, "log_level", "LOG_LEVEL", defaultLogLevel); err != nil {
		return err
	}

	toggles := []struct {
		dst    *bool
		key    string
		envVar string
	}{
		{&cfg.Log.LogServer, "log_server", "LOG_SERVER_ENABLED"},
		{&cfg.Log.LogController, "log_controller", "LOG_CONTROLLER_ENABLED"},
		{&cfg.Log.LogTransactor, "log_transactor", "LOG_TRANSACTOR_ENABLED"},
		{&cfg.Log.LogUseCase, "log_usecase", "LOG_USECASE_ENABLED"},
		{&cfg.Log.LogDBRepo, "log_db", "LOG_DB_REPO_ENABLED"},
		{&cfg.Log.LogOutboxWorker, "log_outbox_worker", "LOG_OUTBOX_WORKER_ENABLED"},
	}

	for _, toggle := range toggles {
		if *toggle.dst, err = parseEnvBool(v, toggle.key, toggle.envVar, defaultLogValue); err != nil {
			return err
		}
	}

	return nil
}

func parseEnvBool(v *viper.Viper, key, envVar string, defaultValue ...bool) (bool, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return false, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetBool(key), nil
}

func parseEnvInt(v *viper.Viper, key, envVar string, defaultValue ...int) (int, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return 0, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetInt(key), nil
}

func parseEnvString(v *viper.Viper, key, envVar string, defaultValue ...string) (string, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return "", err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetString(key), nil
}
