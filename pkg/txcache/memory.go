package txcache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	entry     Entry
	expiresAt time.Time
}

type memoryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemory creates an in-process cache. Expired entries are dropped on access.
func NewMemory(ttl time.Duration) Cache {
	return &memoryCache{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *memoryCache) Put(_ context.Context, executionID string, entry *Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for id, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, id)
		}
	}
	c.entries[executionID] = memoryEntry{entry: *entry, expiresAt: now.Add(c.ttl)}
	return nil
}

func (c *memoryCache) Get(_ context.Context, executionID string) (*Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[executionID]
	if !ok {
		return nil, ErrMiss
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, executionID)
		return nil, ErrMiss
	}
	entry := e.entry
	return &entry, nil
}

func (c *memoryCache) Delete(_ context.Context, executionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, executionID)
	return nil
}

func (c *memoryCache) Close() error {
	return nil
}
