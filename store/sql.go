package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
)

// SQLStore keeps the board's key-value entries in a single board_kv
// table. The SQL is written to run unchanged on sqlite and postgres.
type SQLStore struct {
	db *sql.DB
}

// Safe to run on every start - uses IF NOT EXISTS.
const schema = `
CREATE TABLE IF NOT EXISTS board_kv (
    name TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// OpenSQL connects through the given database/sql driver ("sqlite" or
// "postgres"), verifies the connection and creates the table.
func OpenSQL(driver, url string) (*SQLStore, error) {
	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM board_kv WHERE name = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO board_kv (name, value) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	slog.Debug("board state written", "key", key, "size", humanize.Bytes(uint64(len(value))))
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
