// Package cache provides bank-name caches backed by Redis or process memory.
package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	expiresAt time.Time
	name      string
}

// MemoryBankNameCache keeps names in process memory. Expired entries are
// dropped lazily on read. A zero ttl never expires.
type MemoryBankNameCache struct {
	entries map[int]entry
	now     func() time.Time
	mu      sync.RWMutex
}

// NewMemoryBankNameCache creates an empty in-memory cache
func NewMemoryBankNameCache() *MemoryBankNameCache {
	return &MemoryBankNameCache{
		entries: make(map[int]entry),
		now:     time.Now,
	}
}

// Get returns the cached name for code
func (c *MemoryBankNameCache) Get(_ context.Context, code int) (string, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[code]
	c.mu.RUnlock()

	if !ok {
		return "", false, nil
	}

	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, code)
		c.mu.Unlock()
		return "", false, nil
	}

	return e.name, true, nil
}

// Set stores name for code
func (c *MemoryBankNameCache) Set(_ context.Context, code int, name string, ttl time.Duration) error {
	e := entry{name: name}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[code] = e
	c.mu.Unlock()

	return nil
}
