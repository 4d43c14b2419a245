package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/shopauth/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent or
// empty keys keep the value from earlier sources.
type JsonConfig struct {
	APIBaseURL     string `json:"api_base_url"`
	StorageBackend string `json:"storage_backend"`
	StorageDSN     string `json:"storage_dsn"`
	RedisURL       string `json:"redis_url"`
	CSRFToken      string `json:"csrf_token"`
	LogFormat      string `json:"log_format"`
	LogLevel       string `json:"log_level"`
	MetricsAddr    string `json:"metrics_addr"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag nothing is loaded. Read and unmarshal
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.APIBaseURL, jc.APIBaseURL)
	overlay(&cfg.StorageBackend, jc.StorageBackend)
	overlay(&cfg.StorageDSN, jc.StorageDSN)
	overlay(&cfg.RedisURL, jc.RedisURL)
	overlay(&cfg.CSRFToken, jc.CSRFToken)
	overlay(&cfg.LogFormat, jc.LogFormat)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.MetricsAddr, jc.MetricsAddr)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
