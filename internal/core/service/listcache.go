package service

import (
	"sync"

	"github.com/studiofolio/site-console/internal/core/domain"
)

// ListCache is the in-memory collection backing a listing screen. It is
// reconciled immediately after every successful mutation so the screen
// never diverges from the backend beyond one round trip.
//
// All operations are identity-idempotent: after Upsert(r) there is exactly
// one entry with r's identity, whatever was there before.
type ListCache[T domain.Resource] struct {
	mu    sync.RWMutex
	items []T
}

func NewListCache[T domain.Resource]() *ListCache[T] {
	return &ListCache[T]{}
}

// Replace swaps in a freshly listed collection.
func (c *ListCache[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T(nil), items...)
}

// Upsert replaces the entry with rec's identity, or appends when absent.
func (c *ListCache[T]) Upsert(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.ResourceID() == rec.ResourceID() {
			c.items[i] = rec
			return
		}
	}
	c.items = append(c.items, rec)
}

// Remove drops the entry with the given identity, if present.
func (c *ListCache[T]) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.ResourceID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Patch applies fn to the entry with the given identity in place. Used by
// the toggle fast path, which must not force a full list reload. Returns
// false when the identity is not cached.
func (c *ListCache[T]) Patch(id string, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ResourceID() == id {
			fn(&c.items[i])
			return true
		}
	}
	return false
}

// Get returns the cached entry with the given identity.
func (c *ListCache[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.ResourceID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Snapshot returns a copy of the list in display order.
func (c *ListCache[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

// Len reports the number of cached entries.
func (c *ListCache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
