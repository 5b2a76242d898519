// Package cache implements a process-wide read-through cache.
//
// A value computed for a key is stored and served without recomputing until
// its TTL elapses or the key is invalidated. Concurrent misses for the same key
// share a single computation. Errors are returned to every waiting caller and
// are never stored.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/daniilsolovey/article-feed/internal/metrics"
)

type entry struct {
	value     any
	expiresAt time.Time
}

type Cache struct {
	name string
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
}

// New creates a cache. A zero ttl keeps entries until they are invalidated.
func New(name string, ttl time.Duration) *Cache {
	return &Cache{
		name:    name,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// Get returns a stored, unexpired value.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.expired(e) {
		return nil, false
	}

	return e.value, true
}

func (c *Cache) Set(key string, value any) {
	e := entry{value: value}
	if c.ttl > 0 {
		e.expiresAt = c.now().Add(c.ttl)
	}

	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
}

// Invalidate evicts a single key.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	c.group.Forget(key)
}

// Purge evicts every key.
func (c *Cache) Purge() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetOrCompute returns the stored value for key or computes, stores and returns it.
// Concurrent callers share one computation running with the first caller's ctx.
// A computation in flight during Invalidate or Purge still stores its result.
func (c *Cache) GetOrCompute(ctx context.Context, key string, compute func(context.Context) (any, error)) (any, error) {
	if v, ok := c.Get(key); ok {
		metrics.RecordCacheHit(c.name)
		return v, nil
	}
	metrics.RecordCacheMiss(c.name)

	v, err, _ := c.group.Do(key, func() (any, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}

		v, err := compute(ctx)
		if err != nil {
			return nil, err
		}

		c.Set(key, v)
		return v, nil
	})

	return v, err
}

// Fetch is a typed GetOrCompute.
func Fetch[V any](ctx context.Context, c *Cache, key string, compute func(context.Context) (V, error)) (V, error) {
	v, err := c.GetOrCompute(ctx, key, func(ctx context.Context) (any, error) {
		return compute(ctx)
	})
	if err != nil {
		var zero V
		return zero, err
	}

	typed, ok := v.(V)
	if !ok {
		var zero V
		return zero, fmt.Errorf("cache %s: unexpected value type %T for key %q", c.name, v, key)
	}

	return typed, nil
}

func (c *Cache) expired(e entry) bool {
	return !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt)
}
