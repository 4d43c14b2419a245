// Package config loads runtime configuration for the shop CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: an optional .env file, then SHOPCLI_* variables (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   API base URL
//	-s string   storage backend: sqlite, redis or memory
//	-d string   SQLite session database file
//	-r string   Redis URL
//	-l string   log level
//	-m string   metrics listen address
//
// Environment variables
//
//	SHOPCLI_API_URL, SHOPCLI_STORAGE, SHOPCLI_STORAGE_DSN, SHOPCLI_REDIS_URL,
//	SHOPCLI_CSRF_TOKEN, SHOPCLI_LOG_FORMAT, SHOPCLI_LOG_LEVEL, SHOPCLI_METRICS_ADDR
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://shop.example.com/api",
//	  "storage_backend": "redis",
//	  "storage_dsn": "session.db",
//	  "redis_url": "redis://localhost:6379/0",
//	  "csrf_token": "",
//	  "log_format": "json",
//	  "log_level": "debug",
//	  "metrics_addr": ":9091"
//	}
//
// Primary API
//
//   - type Config                     holds the settings above
//   - func LoadConfig() *Config       builds Config by applying defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()   sets sensible defaults
package config
