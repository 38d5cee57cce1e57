// ABOUTME: In-memory cache with TTL-based expiration
// ABOUTME: Thread-safe, typed via generics, with a stoppable cleanup goroutine

package cache

import (
	"log/slog"
	"sync"
	"time"
)

const cleanupInterval = 1 * time.Minute

type entry[T any] struct {
	data      T
	expiresAt time.Time
}

// Cache holds values of one type with a shared default TTL.
type Cache[T any] struct {
	mu    sync.RWMutex
	store map[string]entry[T]
	ttl   time.Duration
	stop  chan struct{}
	once  sync.Once
}

// New creates a cache and starts its background cleanup.
// Callers should Stop it when done so tests do not leak goroutines.
func New[T any](ttl time.Duration) *Cache[T] {
	c := &Cache[T]{
		store: make(map[string]entry[T]),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Get returns the cached value for key if present and unexpired.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.store[key]
	c.mu.RUnlock()

	var zero T
	if !ok {
		slog.Debug("cache miss", "key", key)
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.store, key)
		c.mu.Unlock()
		slog.Debug("cache expired", "key", key)
		return zero, false
	}

	slog.Debug("cache hit", "key", key)
	return e.data, true
}

// Set stores a value under the default TTL.
func (c *Cache[T]) Set(key string, value T) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL.
func (c *Cache[T]) SetWithTTL(key string, value T, ttl time.Duration) {
	c.mu.Lock()
	c.store[key] = entry[T]{data: value, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
	slog.Debug("cache set", "key", key, "ttl", ttl)
}

// Clear removes one key.
func (c *Cache[T]) Clear(key string) {
	c.mu.Lock()
	delete(c.store, key)
	c.mu.Unlock()
}

// Stop terminates the cleanup goroutine. Safe to call more than once.
func (c *Cache[T]) Stop() {
	c.once.Do(func() { close(c.stop) })
}

func (c *Cache[T]) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for key, e := range c.store {
				if now.After(e.expiresAt) {
					delete(c.store, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
