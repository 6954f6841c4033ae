package keyvalue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hbridge/careconnect-cli/internal/dbx"
)

// SQLiteRepository persists pairs in the keyvalue table. It accepts any
// dbx.DBTX, so it works both on the bare connection and inside a
// transaction started by dbx.WithTx.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Get returns the stored value, or (nil, nil) when the key is absent.
func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM keyvalue WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get keyvalue[%s]: %w", key, err)
	}
	return value, nil
}

// Set upserts the value; the last write wins.
func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO keyvalue (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set keyvalue[%s]: %w", key, err)
	}
	return nil
}

// Delete removes the key; deleting an absent key is not an error.
func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM keyvalue WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete keyvalue[%s]: %w", key, err)
	}
	return nil
}

// Clear removes every stored pair.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM keyvalue`)
	if err != nil {
		return fmt.Errorf("failed to clear keyvalue: %w", err)
	}
	return nil
}
