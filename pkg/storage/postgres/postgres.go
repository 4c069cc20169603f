// Package postgres implements a PostgreSQL-backed key-value backend.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"bkstore/pkg/storage"
)

// KV persists values in a single kv table.
type KV struct {
	db *sql.DB
}

// New creates a PostgreSQL backend. The caller must ensure the database has
// a kv table:
// CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value BYTEA NOT NULL);
func New(db *sql.DB) *KV {
	return &KV{db: db}
}

// Migrate creates the kv table if it does not exist.
func (kv *KV) Migrate(ctx context.Context) error {
	_, err := kv.db.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value BYTEA NOT NULL)")
	return err
}

// Get returns the value stored under key.
func (kv *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := kv.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key=$1", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNoKey
	}
	return v, err
}

// Set writes value under key.
func (kv *KV) Set(ctx context.Context, key string, value []byte) error {
	_, err := kv.db.ExecContext(ctx, "INSERT INTO kv (key,value) VALUES ($1,$2) ON CONFLICT (key) DO UPDATE SET value=$2", key, value)
	return err
}

// Delete removes key.
func (kv *KV) Delete(ctx context.Context, key string) error {
	_, err := kv.db.ExecContext(ctx, "DELETE FROM kv WHERE key=$1", key)
	return err
}
