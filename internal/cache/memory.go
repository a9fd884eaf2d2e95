package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/openfnol/fnoltriage/internal/model"
)

// MemoryCache implements in-memory result caching with expiry
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a cached result
func (c *MemoryCache) Get(key string) (*model.Result, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(*model.Result), true
	}
	return nil, false
}

// Set stores a result with the default TTL
func (c *MemoryCache) Set(key string, result *model.Result) {
	c.cache.SetDefault(key, result)
}

// Clear removes all cached results
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}
