package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// kvSchema is portable across sqlite and mysql; the explicit key length
// keeps mysql happy with the primary key.
const kvSchema = `CREATE TABLE IF NOT EXISTS kv (
	k VARCHAR(255) PRIMARY KEY,
	v TEXT NOT NULL
)`

// SQLKV implements KV on a single-table SQL store.
type SQLKV struct {
	db *sqlx.DB
}

// NewSQLKV creates the kv table if needed and returns a SQLKV.
func NewSQLKV(ctx context.Context, db *sqlx.DB) (*SQLKV, error) {
	if _, err := db.ExecContext(ctx, kvSchema); err != nil {
		return nil, fmt.Errorf("db.ExecContext(create kv table) > %w", err)
	}
	return &SQLKV{db: db}, nil
}

// Get returns the value for key, reporting whether it existed.
func (kv *SQLKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := kv.db.GetContext(ctx, &value, "SELECT v FROM kv WHERE k = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("db.GetContext(kv %s) > %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (kv *SQLKV) Set(ctx context.Context, key, value string) error {
	// REPLACE works on both sqlite and mysql, unlike ON CONFLICT clauses.
	if _, err := kv.db.ExecContext(ctx, "REPLACE INTO kv (k, v) VALUES (?, ?)", key, value); err != nil {
		return fmt.Errorf("db.ExecContext(replace kv %s) > %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (kv *SQLKV) Remove(ctx context.Context, key string) error {
	if _, err := kv.db.ExecContext(ctx, "DELETE FROM kv WHERE k = ?", key); err != nil {
		return fmt.Errorf("db.ExecContext(delete kv %s) > %w", key, err)
	}
	return nil
}
