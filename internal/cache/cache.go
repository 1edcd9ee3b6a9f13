// Package cache provides a process-local TTL cache for generated
// explanation text. Entries expire lazily on read; a concurrent miss on
// the same key may cause redundant upstream work, and the last writer
// wins. That is acceptable here: values are idempotent-equivalent
// explanatory text, not state.
package cache

import (
	"sync"
	"time"
)

// Clock returns the current time. Injectable for tests.
type Clock func() time.Time

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache is a key -> {expiry, value} map. Expired entries are treated
// as absent and silently overwritten on the next write.
type TTLCache[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	ttl     time.Duration
	clock   Clock
}

// New creates a TTLCache with the given entry lifetime. A nil clock
// defaults to time.Now.
func New[V any](ttl time.Duration, clock Clock) *TTLCache[V] {
	if clock == nil {
		clock = time.Now
	}
	return &TTLCache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get returns the live value for key, if any.
func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.clock().After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the cache's TTL, replacing any
// previous entry.
func (c *TTLCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: c.clock().Add(c.ttl),
	}
}

// Len returns the number of stored entries, live or expired. Entries are
// never proactively evicted.
func (c *TTLCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
