package assets

import (
	"errors"
	"fmt"
	"testing"
)

// TestCacheLazyLoading tests that resources load on first access only
func TestCacheLazyLoading(t *testing.T) {
	loads := make(map[string]int)
	cache := NewCache(10, func(key string) (string, error) {
		loads[key]++
		return "asset:" + key, nil
	})

	// First access loads
	item, err := cache.Get("tree")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if item != "asset:tree" {
		t.Errorf("Get() = %q, want %q", item, "asset:tree")
	}

	// Repeated access is memoized
	for i := 0; i < 5; i++ {
		if _, err := cache.Get("tree"); err != nil {
			t.Fatalf("Get() error = %v", err)
		}
	}
	if loads["tree"] != 1 {
		t.Errorf("loader ran %d times for one key, want 1", loads["tree"])
	}
}

// TestCacheLoadFailure tests that loader errors surface and nothing is cached
func TestCacheLoadFailure(t *testing.T) {
	missing := errors.New("no such resource")
	attempts := 0
	cache := NewCache(10, func(key string) (int, error) {
		attempts++
		return 0, missing
	})

	if _, err := cache.Get("ghost"); !errors.Is(err, missing) {
		t.Errorf("Get() error = %v, want wrapped %v", err, missing)
	}

	// A failed load is not memoized; the next Get tries again
	cache.Get("ghost")
	if attempts != 2 {
		t.Errorf("loader ran %d times after failures, want 2", attempts)
	}
}

// TestCachePreload tests bulk loading ahead of use
func TestCachePreload(t *testing.T) {
	cache := NewCache(10, func(key int) (int, error) {
		if key < 0 {
			return 0, fmt.Errorf("bad key %d", key)
		}
		return key * 2, nil
	})

	if err := cache.Preload(1, 2, 3); err != nil {
		t.Fatalf("Preload() error = %v", err)
	}
	if cache.Len() != 3 {
		t.Errorf("Len() = %d after Preload, want 3", cache.Len())
	}

	if err := cache.Preload(4, -1, 5); err == nil {
		t.Error("Preload() with a failing key returned nil error")
	}
}

// TestCacheRemoveAndClear tests eviction and reload behavior
func TestCacheRemoveAndClear(t *testing.T) {
	loads := 0
	cache := NewCache(10, func(key string) (string, error) {
		loads++
		return key, nil
	})

	keys := []string{"item1", "item2", "item3"}
	for _, key := range keys {
		if _, err := cache.Get(key); err != nil {
			t.Fatalf("Get(%q) error = %v", key, err)
		}
	}

	// Remove evicts one key; the next Get reloads it
	cache.Remove("item2")
	if cache.Len() != 2 {
		t.Errorf("Len() = %d after Remove, want 2", cache.Len())
	}
	cache.Get("item2")
	if loads != 4 {
		t.Errorf("loader ran %d times, want 4 (three loads plus one reload)", loads)
	}

	// ClearCache evicts everything
	cache.ClearCache()
	if cache.Len() != 0 {
		t.Errorf("Len() = %d after ClearCache, want 0", cache.Len())
	}
	for _, key := range keys {
		if _, err := cache.Get(key); err != nil {
			t.Errorf("Get(%q) after ClearCache error = %v", key, err)
		}
	}
}

// TestCacheCapacity tests the capacity limit
func TestCacheCapacity(t *testing.T) {
	const capacity = 5
	cache := NewCache(capacity, func(key int) (int, error) {
		return key, nil
	})

	for i := 0; i < capacity; i++ {
		if _, err := cache.Get(i); err != nil {
			t.Fatalf("Get(%d) error = %v", i, err)
		}
	}

	// One more should fail
	if _, err := cache.Get(capacity); err == nil {
		t.Error("expected error when exceeding cache capacity, but got none")
	}

	// Cached keys keep working at capacity
	if _, err := cache.Get(0); err != nil {
		t.Errorf("Get() of cached key at capacity error = %v", err)
	}
}
