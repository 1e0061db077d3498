package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps all slots in a single SQLite database. It offers the
// same semantics as FileStore for installs that prefer one artifact over
// a directory of slot files.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	q := `
	CREATE TABLE IF NOT EXISTS saves (
		slot INTEGER PRIMARY KEY,
		data BLOB NOT NULL
	);
	`
	if _, err := db.ExecContext(ctx, q); err != nil {
		return nil, fmt.Errorf("failed to create saves table: %v", err)
	}

	return &SQLiteStore{
		db: db,
	}, nil
}

func (s *SQLiteStore) Close(ctx context.Context) error {
	return s.db.Close()
}

func (s *SQLiteStore) Write(ctx context.Context, slot int, data []byte) error {
	q := `
	INSERT OR REPLACE INTO saves (slot, data)
	VALUES (?, ?);
	`
	if _, err := s.db.ExecContext(ctx, q, slot, data); err != nil {
		return fmt.Errorf("failed to insert save: %v", err)
	}
	return nil
}

func (s *SQLiteStore) Read(ctx context.Context, slot int) ([]byte, error) {
	q := `
	SELECT data FROM saves WHERE slot = ?;
	`
	var data []byte
	if err := s.db.QueryRowContext(ctx, q, slot).Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan save: %v", err)
	}
	return data, nil
}
