package repository

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {

	cache := NewMemoryCache()
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "missing"); ok {
		t.Fatalf("expected miss for unknown key")
	}

	if err := cache.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	val, ok := cache.Get(ctx, "k")
	if !ok || val != "v" {
		t.Errorf("expected v, got %q (ok=%v)", val, ok)
	}
}

func TestMemoryCache_Expires(t *testing.T) {

	cache := NewMemoryCache()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	if err := cache.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now = now.Add(30 * time.Second)
	if _, ok := cache.Get(ctx, "k"); !ok {
		t.Fatalf("expected hit before ttl")
	}

	now = now.Add(time.Minute)
	if _, ok := cache.Get(ctx, "k"); ok {
		t.Errorf("expected miss after ttl")
	}
	if cache.Len() != 0 {
		t.Errorf("expected expired entry to be dropped, have %d", cache.Len())
	}
}
