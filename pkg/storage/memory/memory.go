// Package memory implements an in-memory key-value backend.
package memory

import (
	"context"
	"sync"

	"bkstore/pkg/storage"
)

// KV provides an in-memory implementation of storage.KV.
type KV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates an empty in-memory backend.
func New() *KV {
	return &KV{data: make(map[string][]byte)}
}

// Get returns the value stored under key.
func (kv *KV) Get(ctx context.Context, key string) ([]byte, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	v, ok := kv.data[key]
	if !ok {
		return nil, storage.ErrNoKey
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set writes value under key.
func (kv *KV) Set(ctx context.Context, key string, value []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	kv.data[key] = v
	return nil
}

// Delete removes key.
func (kv *KV) Delete(ctx context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.data, key)
	return nil
}
