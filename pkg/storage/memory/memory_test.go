package memory

import (
	"context"
	"errors"
	"testing"

	"bkstore/pkg/storage"
)

func TestKV(t *testing.T) {
	ctx := context.Background()
	kv := New()

	if _, err := kv.Get(ctx, "missing"); !errors.Is(err, storage.ErrNoKey) {
		t.Fatalf("expected ErrNoKey, got %v", err)
	}
	if err := kv.Set(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, err := kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(v) != `{"a":1}` {
		t.Fatalf("unexpected value: %s", v)
	}
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := kv.Get(ctx, "k"); !errors.Is(err, storage.ErrNoKey) {
		t.Fatalf("expected ErrNoKey after delete, got %v", err)
	}
	// deleting again is a no-op
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestKVCopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := New()

	in := []byte("original")
	if err := kv.Set(ctx, "k", in); err != nil {
		t.Fatalf("set: %v", err)
	}
	in[0] = 'X'

	v, err := kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(v) != "original" {
		t.Fatalf("stored value aliased caller buffer: %s", v)
	}
}
