package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/shopauth/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   API base URL
//	-s string   storage backend (sqlite, redis, memory)
//	-d string   SQLite database file
//	-r string   Redis URL
//	-l string   log level
//	-m string   metrics listen address
//
// os.Args is filtered with flagx.FilterArgs first so -c/-config does not
// trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-d", "-r", "-l", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "session storage backend: sqlite, redis or memory")
	fs.StringVar(&cfg.StorageDSN, "d", cfg.StorageDSN, "SQLite session database file")
	fs.StringVar(&cfg.RedisURL, "r", cfg.RedisURL, "Redis URL for the redis backend")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "address to serve /metrics on (disabled when empty)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
