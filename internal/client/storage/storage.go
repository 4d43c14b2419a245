package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

//go:generate mockgen -source=storage.go -destination=mocks/storage_mock.go -package=mocks Storage

// Storage is a flat string key/value store that survives process restarts.
//
// Get returns ("", nil) for an absent key. SetMany writes all pairs or none.
// Remove is idempotent: removing absent keys is not an error.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, values map[string]string) error
	Remove(ctx context.Context, keys ...string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Options selects and configures a backend for Open.
type Options struct {
	Backend string
	// DSN is the SQLite data source, e.g. "session.db" or "file::memory:".
	DSN string
	// RedisURL is a redis:// URL.
	RedisURL string
	// Namespace prefixes keys in shared backends (Redis).
	Namespace string
}

// Open returns the backend named in opts.
func Open(ctx context.Context, opts Options) (Storage, error) {
	switch opts.Backend {
	case BackendMemory:
		return NewMemoryStorage(), nil
	case "", BackendSQLite:
		return OpenSQLite(ctx, opts.DSN)
	case BackendRedis:
		return OpenRedis(ctx, opts.RedisURL, opts.Namespace)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}

// NamespaceFor derives a key namespace from an API base URL so that two
// servers sharing one Redis never see each other's sessions. Scheme and host
// make up the origin, as in a browser.
func NamespaceFor(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return "shopauth"
	}
	return "shopauth:" + strings.ToLower(u.Scheme+"://"+u.Host)
}
