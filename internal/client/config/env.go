package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "SHOPCLI_"

// envFile is loaded into the process environment when it exists. Variables
// already set in the environment win over the file.
var envFile = ".env"

// parseEnv overlays Config with SHOPCLI_* environment variables.
// Unset or empty variables leave the current value. A malformed env file
// panics.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	for name, dst := range map[string]*string{
		"API_URL":      &cfg.APIBaseURL,
		"STORAGE":      &cfg.StorageBackend,
		"STORAGE_DSN":  &cfg.StorageDSN,
		"REDIS_URL":    &cfg.RedisURL,
		"CSRF_TOKEN":   &cfg.CSRFToken,
		"LOG_FORMAT":   &cfg.LogFormat,
		"LOG_LEVEL":    &cfg.LogLevel,
		"METRICS_ADDR": &cfg.MetricsAddr,
	} {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}
}
