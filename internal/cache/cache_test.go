package cache

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestTTLCache_GetSet(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	cache := New[string](time.Minute, clock.Now)

	if _, ok := cache.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}

	cache.Set("key", "value")
	got, ok := cache.Get("key")
	if !ok || got != "value" {
		t.Errorf("Get() = %q, %v; want value, true", got, ok)
	}
}

func TestTTLCache_Expiry(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	cache := New[int](time.Minute, clock.Now)

	cache.Set("key", 7)

	clock.Advance(time.Minute)
	if _, ok := cache.Get("key"); !ok {
		t.Error("entry at exactly its deadline should still be live")
	}

	clock.Advance(time.Second)
	if _, ok := cache.Get("key"); ok {
		t.Error("expected expiry after TTL elapsed")
	}
}

func TestTTLCache_SetRefreshesEntry(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	cache := New[string](time.Minute, clock.Now)

	cache.Set("key", "first")
	clock.Advance(50 * time.Second)
	cache.Set("key", "second")
	clock.Advance(30 * time.Second)

	// The rewrite reset the deadline; the original one has passed.
	got, ok := cache.Get("key")
	if !ok || got != "second" {
		t.Errorf("Get() = %q, %v; want second, true", got, ok)
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
}

func TestTTLCache_NilClockUsesWallTime(t *testing.T) {
	cache := New[string](time.Minute, nil)
	cache.Set("key", "value")

	if _, ok := cache.Get("key"); !ok {
		t.Error("expected hit with default clock")
	}
}
