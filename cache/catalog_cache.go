// Package cache holds a small TTL cache for catalog metadata the
// storefront recomputes otherwise on every request (category list,
// price bounds). The catalog only changes on restart, so a short TTL
// is plenty.
package cache

import (
	"sync"
	"time"
)

const TTL = 5 * time.Minute

// Metadata is what the storefront filter sidebar needs.
type Metadata struct {
	Categories []string `json:"categories"`
	MinPrice   float64  `json:"min_price"`
	MaxPrice   float64  `json:"max_price"`
}

type entry struct {
	data      Metadata
	fetchedAt time.Time
}

// CatalogCache caches filter metadata. Safe for concurrent use.
type CatalogCache struct {
	mu    sync.RWMutex
	entry *entry
	ttl   time.Duration
}

func New() *CatalogCache {
	return &CatalogCache{ttl: TTL}
}

func (c *CatalogCache) Get() (Metadata, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entry != nil && time.Since(c.entry.fetchedAt) < c.ttl {
		return c.entry.data, true
	}
	return Metadata{}, false
}

func (c *CatalogCache) Set(data Metadata) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = &entry{data: data, fetchedAt: time.Now()}
}

// Invalidate drops the cached metadata.
func (c *CatalogCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = nil
}
