// Package store implements the storefront core: catalog, accounts, orders,
// cart and order analytics over an injectable key-value backend.
//
// Every operation is a full read-collection, mutate, write-collection cycle
// against the backend. Mutations are serialized behind a per-Store mutex;
// two Store instances over the same backend can still clobber each other,
// which matches the single-session contract of the original storefront.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"bkstore/pkg/storage"
)

// Backend keys. One key per collection, plus the order-number counter.
const (
	keyProducts = "products"
	keyUsers    = "users"
	keyOrders   = "orders"
	keyCounter  = "orderCounter"
	keyCart     = "cart"
)

var (
	// ErrNotFound indicates a lookup by id or username matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrInvalidOrder indicates order input with no items, a negative
	// price, or a quantity below one.
	ErrInvalidOrder = errors.New("order needs at least one item with price >= 0 and quantity >= 1")
	// ErrNotConvertible indicates a convert-to-invoice on an order that is
	// not a sales order.
	ErrNotConvertible = errors.New("only sales orders can be converted to invoices")
	// ErrBadCredentials indicates a password check failed.
	ErrBadCredentials = errors.New("invalid username or password")
	// ErrDuplicateID indicates an add with an id that is already taken.
	ErrDuplicateID = errors.New("id already exists")
)

// Store is the storefront façade. All methods are safe for concurrent use
// within one Store instance.
type Store struct {
	mu  sync.Mutex
	kv  storage.KV
	now func() time.Time
}

// New creates a Store over the given backend. Call Seed before first use on
// an empty backend.
func New(kv storage.KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// read decodes the value under key into v. An absent key leaves v untouched
// so callers can pass an initialized empty collection.
func (s *Store) read(ctx context.Context, key string, v any) error {
	b, err := s.kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNoKey) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// write encodes v under key.
func (s *Store) write(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, b); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// counter returns the current order counter, defaulting to the seed value
// when the key is absent.
func (s *Store) counter(ctx context.Context) (int, error) {
	b, err := s.kv.Get(ctx, keyCounter)
	if errors.Is(err, storage.ErrNoKey) {
		return counterStart, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", keyCounter, err)
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", keyCounter, err)
	}
	return n, nil
}

func (s *Store) setCounter(ctx context.Context, n int) error {
	if err := s.kv.Set(ctx, keyCounter, []byte(strconv.Itoa(n))); err != nil {
		return fmt.Errorf("write %s: %w", keyCounter, err)
	}
	return nil
}
