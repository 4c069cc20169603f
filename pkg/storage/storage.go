// Package storage defines the key-value persistence boundary for the
// storefront. Values are JSON blobs; the store layer owns their shape.
package storage

import (
	"context"
	"errors"
)

// KV is the behavior required of a backing store.
type KV interface {
	// Get returns the value stored under key, or ErrNoKey if absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// ErrNoKey indicates the requested key has never been written.
var ErrNoKey = errors.New("key not found")
