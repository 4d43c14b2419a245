// Package storage provides the key/value persistence behind the session
// store.
//
// # Backends
//
//   - MemoryStorage: process-local map, for tests and throwaway sessions.
//   - SQLiteStorage: a single-table SQLite database (modernc.org/sqlite),
//     schema managed by embedded goose migrations. This is the default and
//     plays the role of browser local storage: it survives restarts.
//   - RedisStorage: go-redis v9, keys prefixed by a namespace derived from
//     the API origin.
//
// Use Open to pick a backend by name.
package storage
