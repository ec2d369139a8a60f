// Package assets provides a lazy-loading, memoizing resource cache keyed by
// caller-defined identifiers. The entity store does not depend on it; it
// lives here because simulation code using the store tends to need one.
package assets

import "fmt"

// Loader produces the resource for a key. It runs at most once per key while
// the key stays cached.
type Loader[K comparable, T any] func(K) (T, error)

type Cache[K comparable, T any] interface {
	Get(K) (T, error)
	Preload(...K) error
	Remove(K)
	ClearCache()
}

var _ Cache[int, any] = &LazyCache[int, any]{}

// LazyCache loads resources through its Loader on first access and memoizes
// them until removed or cleared.
type LazyCache[K comparable, T any] struct {
	loader      Loader[K, T]
	items       map[K]T
	maxCapacity int
}

func NewCache[K comparable, T any](capacity int, loader Loader[K, T]) *LazyCache[K, T] {
	return &LazyCache[K, T]{
		loader:      loader,
		items:       make(map[K]T),
		maxCapacity: capacity,
	}
}

// Get returns the cached resource for key, loading and memoizing it on first
// access. Load failures are returned to the caller and nothing is cached.
func (c *LazyCache[K, T]) Get(key K) (T, error) {
	if item, found := c.items[key]; found {
		return item, nil
	}
	var zero T
	if len(c.items) >= c.maxCapacity {
		return zero, fmt.Errorf("cache at maximum capacity (%d)", c.maxCapacity)
	}
	item, err := c.loader(key)
	if err != nil {
		return zero, fmt.Errorf("failed to load asset %v: %w", key, err)
	}
	c.items[key] = item
	return item, nil
}

// Preload loads the given keys ahead of use, stopping at the first failure.
func (c *LazyCache[K, T]) Preload(keys ...K) error {
	for _, key := range keys {
		if _, err := c.Get(key); err != nil {
			return err
		}
	}
	return nil
}

// Remove evicts one key; the next Get reloads it.
func (c *LazyCache[K, T]) Remove(key K) {
	delete(c.items, key)
}

// ClearCache evicts everything.
func (c *LazyCache[K, T]) ClearCache() {
	c.items = make(map[K]T)
}

// Len returns the number of cached resources.
func (c *LazyCache[K, T]) Len() int {
	return len(c.items)
}
