package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shopauth/internal/client/migrations"
	"github.com/dmitrijs2005/shopauth/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// SQLiteStorage keeps keys in the session_storage table.
type SQLiteStorage struct {
	db *sql.DB
	q  dbx.DBTX
}

// NewSQLiteStorage wraps an already migrated database.
func NewSQLiteStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db: db, q: db}
}

// OpenSQLite opens the database at dsn and applies pending migrations.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStorage, error) {
	if dsn == "" {
		return nil, errors.New("sqlite storage: empty dsn")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", dsn, err)
	}
	// each connection to :memory: gets its own database
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite %q: %w", dsn, err)
	}
	return NewSQLiteStorage(db), nil
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *SQLiteStorage) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.q.QueryRowContext(ctx, `SELECT value FROM session_storage WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get storage[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStorage) Set(ctx context.Context, key, value string) error {
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO session_storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set storage[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStorage) SetMany(ctx context.Context, values map[string]string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		inTx := &SQLiteStorage{db: s.db, q: tx}
		for k, v := range values {
			if err := inTx.Set(ctx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStorage) Remove(ctx context.Context, keys ...string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, k := range keys {
			if _, err := tx.ExecContext(ctx, `DELETE FROM session_storage WHERE key = ?`, k); err != nil {
				return fmt.Errorf("failed to remove storage[%s]: %w", k, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
