package tmdb

import (
	"sync"
	"time"
)

type cacheEntry struct {
	data      any
	expiresAt time.Time
}

// cache is a process-local TTL cache for API responses. Expired entries are
// removed lazily on read and swept on write once per TTL interval.
type cache struct {
	mu        sync.RWMutex
	entries   map[string]cacheEntry
	ttl       time.Duration
	nextSweep time.Time
}

func newCache(ttl time.Duration) *cache {
	return &cache{
		entries:   make(map[string]cacheEntry),
		ttl:       ttl,
		nextSweep: time.Now().Add(ttl),
	}
}

func (c *cache) Get(key string) (any, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have
		// refreshed the entry.
		if e, exists := c.entries[key]; exists && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return entry.data, true
}

func (c *cache) Set(key string, value any) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if now.After(c.nextSweep) {
		for k, e := range c.entries {
			if now.After(e.expiresAt) {
				delete(c.entries, k)
			}
		}
		c.nextSweep = now.Add(c.ttl)
	}

	c.entries[key] = cacheEntry{
		data:      value,
		expiresAt: now.Add(c.ttl),
	}
}
