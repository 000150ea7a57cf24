package cache

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type memoryEntry struct {
	location  entity.Location
	expiresAt time.Time
}

// memoryPositionCache is a size-bounded LRU whose entries also expire after maxTTL.
// Shorter per-entry TTLs are checked on read.
type memoryPositionCache struct {
	entries *expirable.LRU[string, memoryEntry]
	maxTTL  time.Duration
	now     func() time.Time
}

// NewMemoryPositionCache is the single-instance fallback when Redis is not configured.
// It holds at most size entries, none longer than maxTTL.
func NewMemoryPositionCache(size int, maxTTL time.Duration) service.PositionCache {
	return newMemoryPositionCache(size, maxTTL, time.Now)
}

func newMemoryPositionCache(size int, maxTTL time.Duration, now func() time.Time) *memoryPositionCache {
	return &memoryPositionCache{
		entries: expirable.NewLRU[string, memoryEntry](size, nil, maxTTL),
		maxTTL:  maxTTL,
		now:     now,
	}
}

func (c *memoryPositionCache) Get(_ context.Context, key string) (*entity.Location, bool, error) {
	entry, ok := c.entries.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(entry.expiresAt) {
		c.entries.Remove(key)

		return nil, false, nil
	}

	location := entry.location

	return &location, true, nil
}

func (c *memoryPositionCache) Set(_ context.Context, key string, location *entity.Location, ttl time.Duration) error {
	if location == nil || ttl <= 0 {
		return nil
	}
	if c.maxTTL > 0 && ttl > c.maxTTL {
		ttl = c.maxTTL
	}

	c.entries.Add(key, memoryEntry{location: *location, expiresAt: c.now().Add(ttl)})

	return nil
}
