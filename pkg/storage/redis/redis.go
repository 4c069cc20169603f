// Package redis implements a redis-backed key-value backend.
package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"bkstore/pkg/storage"
)

// KV persists values in redis. Keys are namespaced so the storefront data
// can share an instance with the session keys.
type KV struct {
	client *redis.Client
	prefix string
}

// New creates a redis backend on the given client. prefix may be empty.
func New(client *redis.Client, prefix string) *KV {
	return &KV{client: client, prefix: prefix}
}

// Get returns the value stored under key.
func (kv *KV) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := kv.client.Get(ctx, kv.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrNoKey
	}
	return v, err
}

// Set writes value under key.
func (kv *KV) Set(ctx context.Context, key string, value []byte) error {
	return kv.client.Set(ctx, kv.prefix+key, value, 0).Err()
}

// Delete removes key.
func (kv *KV) Delete(ctx context.Context, key string) error {
	return kv.client.Del(ctx, kv.prefix+key).Err()
}
