package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Config holds runtime settings for the socialcli client.
//
// Fields:
//   - ServerURL: base URL of the backend REST API, e.g. http://localhost:8000/api.
//   - RequestTimeout: per-request timeout of the underlying http.Client.
//   - StoreBackend: where credentials are persisted (memory, sqlite, redis).
//   - DataDir / DatabaseFile: location of the sqlite file for the sqlite store.
//   - RedisAddr / RedisPrefix: connection and key namespace for the redis store.
//   - LogBackend / LogLevel: logger implementation (slog, zap) and threshold.
type Config struct {
	ServerURL      string        `env:"SOCIAL_SERVER_URL"`
	RequestTimeout time.Duration `env:"SOCIAL_REQUEST_TIMEOUT"`
	StoreBackend   string        `env:"SOCIAL_STORE"`
	DataDir        string        `env:"SOCIAL_DATA_DIR"`
	DatabaseFile   string        `env:"SOCIAL_DATABASE_FILE"`
	RedisAddr      string        `env:"SOCIAL_REDIS_ADDR"`
	RedisPrefix    string        `env:"SOCIAL_REDIS_PREFIX"`
	LogBackend     string        `env:"SOCIAL_LOG_BACKEND"`
	LogLevel       string        `env:"SOCIAL_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000/api"
	c.RequestTimeout = 15 * time.Second
	c.StoreBackend = StoreSQLite
	c.DataDir = ".social"
	c.DatabaseFile = "social.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPrefix = "socialcli:"
	c.LogBackend = "slog"
	c.LogLevel = "warn"
}

// DatabasePath is the sqlite file location inside DataDir.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// Load constructs a Config, applies defaults, then overlays values from a
// JSON file (if -c/--config is given), the environment (including an
// optional .env file) and command-line flags. Later sources take precedence
// over earlier ones.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfig is Load over os.Args, panicking on error.
func LoadConfig() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return cfg
}
