package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/lockbox/internal/dbx"
	"github.com/dmitrijs2005/lockbox/internal/storage/migrations"
)

// SQLiteStore implements Store over a single kv table using a DBTX
// (either *sql.DB or *sql.Tx).
type SQLiteStore struct {
	db     dbx.DBTX
	closer func() error
}

// NewSQLiteStore returns a SQLiteStore bound to the given DBTX. The caller
// owns the connection lifecycle; Close is a no-op.
func NewSQLiteStore(db dbx.DBTX) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenSQLite opens (or creates) the database at dsn, applies pending
// migrations, and returns a store that closes the connection on Close.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db, closer: db.Close}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to select value: %w", err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value string) error {
	query := `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert value: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
