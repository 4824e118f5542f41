package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/socialcli/internal/flagx"
	"github.com/dmitrijs2005/socialcli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so request_timeout can be "15s" or integer nanoseconds.
type JsonConfig struct {
	ServerURL      string         `json:"server_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StoreBackend   string         `json:"store_backend"`
	DataDir        string         `json:"data_dir"`
	DatabaseFile   string         `json:"database_file"`
	RedisAddr      string         `json:"redis_addr"`
	RedisPrefix    string         `json:"redis_prefix"`
	LogBackend     string         `json:"log_backend"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays cfg with the non-empty values of the JSON file named by
// -c/--config in args. Without the flag it is a no-op.
func parseJson(cfg *Config, args []string) error {
	path := flagx.JSONConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.ServerURL, jc.ServerURL)
	setString(&cfg.StoreBackend, jc.StoreBackend)
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.DatabaseFile, jc.DatabaseFile)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.RedisPrefix, jc.RedisPrefix)
	setString(&cfg.LogBackend, jc.LogBackend)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
