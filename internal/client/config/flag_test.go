package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd", "-a", "http://127.0.0.1:9090/api", "-s", "memory", "-l", "debug"}, expectPanic: false,
			expected: &Config{APIBaseURL: "http://127.0.0.1:9090/api", StorageBackend: "memory", LogLevel: "debug"}},
		{name: "Test2 all flags with config file", args: []string{"cmd", "-c", "cfg.json", "-d", "s.db", "-r", "redis://r:6379", "-m", ":9091"}, expectPanic: false,
			expected: &Config{StorageDSN: "s.db", RedisURL: "redis://r:6379", MetricsAddr: ":9091"}},
		{name: "Test3 equals form", args: []string{"cmd", "-a=http://h/api"}, expectPanic: false,
			expected: &Config{APIBaseURL: "http://h/api"}},
		{name: "Test4 missing value", args: []string{"cmd", "-a"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
