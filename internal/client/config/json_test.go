package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_base_url":    "https://json.example.com/api",
		"storage_backend": "memory",
		"log_format":      "zap",
		"metrics_addr":    "127.0.0.1:9091",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{StorageDSN: "keep.db"}
		parseJson(cfg)

		assert.Equal(t, "https://json.example.com/api", cfg.APIBaseURL)
		assert.Equal(t, "memory", cfg.StorageBackend)
		assert.Equal(t, "zap", cfg.LogFormat)
		assert.Equal(t, "127.0.0.1:9091", cfg.MetricsAddr)
		assert.Equal(t, "keep.db", cfg.StorageDSN, "absent keys keep earlier values")
	})

	t.Run("short flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-a", "http://x/api", "-c", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "https://json.example.com/api", cfg.APIBaseURL)
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{APIBaseURL: "http://defaults/api"}
		parseJson(cfg)

		assert.Equal(t, "http://defaults/api", cfg.APIBaseURL)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
