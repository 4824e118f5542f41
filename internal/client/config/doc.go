// Package config loads runtime configuration for the socialcli client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or --config.
//  3. Environment: an optional .env file, then SOCIAL_* variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend API base URL
//	-t int      request timeout (seconds)
//	-s string   credential store backend (memory, sqlite, redis)
//	-d string   data directory
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:8000/api",
//	  "request_timeout": "15s",
//	  "store_backend": "sqlite",
//	  "data_dir": ".social",
//	  "database_file": "social.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_prefix": "socialcli:",
//	  "log_backend": "slog",
//	  "log_level": "warn"
//	}
package config
