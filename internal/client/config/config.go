package config

// Config holds runtime settings for the shop CLI.
//
// Fields:
//   - APIBaseURL: base URL every API endpoint is appended to.
//   - StorageBackend: "sqlite", "redis" or "memory".
//   - StorageDSN: SQLite database file.
//   - RedisURL: redis:// URL used by the redis backend.
//   - CSRFToken: optional csrftoken cookie value to seed the cookie jar with.
//   - LogFormat: "text", "json" or "zap".
//   - LogLevel: debug, info, warn or error.
//   - MetricsAddr: listen address for /metrics; empty disables it.
type Config struct {
	APIBaseURL     string
	StorageBackend string
	StorageDSN     string
	RedisURL       string
	CSRFToken      string
	LogFormat      string
	LogLevel       string
	MetricsAddr    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api"
	c.StorageBackend = "sqlite"
	c.StorageDSN = "session.db"
	c.RedisURL = ""
	c.CSRFToken = ""
	c.LogFormat = "text"
	c.LogLevel = "info"
	c.MetricsAddr = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
