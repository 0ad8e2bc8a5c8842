package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/nickbeaird/recordexpungPDX/internal/classify"
)

// MemoryCache implements in-memory expiring caching
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a classification from the cache
func (c *MemoryCache) Get(key string) (classify.Classification, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(classify.Classification), true
	}
	return classify.Classification{}, false
}

// Set stores a classification with the default TTL
func (c *MemoryCache) Set(key string, value classify.Classification) {
	c.cache.SetDefault(key, value)
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(key string) {
	c.cache.Delete(key)
}

// Clear removes all values from the cache
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}

// Len returns the number of cached items, including expired ones not yet cleaned up
func (c *MemoryCache) Len() int {
	return c.cache.ItemCount()
}
