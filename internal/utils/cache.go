package utils

import (
	"sync"
	"time"
)

// ResultCache memoizes values by key. When full, the least recently accessed
// entry is evicted. A capacity of zero disables caching.
type ResultCache[V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[string]CacheItem[V]
	hits     int
	misses   int
	now      func() time.Time
}

type CacheItem[V any] struct {
	value      V
	lastAccess time.Time
}

func NewResultCache[V any](capacity int) *ResultCache[V] {
	return &ResultCache[V]{
		capacity: capacity,
		items:    make(map[string]CacheItem[V]),
		now:      time.Now,
	}
}

// GetOrCompute returns the cached value for key, computing and storing it on
// a miss. The boolean reports whether it was a hit.
func (c *ResultCache[V]) GetOrCompute(key string, compute func() V) (V, bool) {
	c.mu.Lock()
	if item, exists := c.items[key]; exists {
		c.hits += 1
		item.lastAccess = c.now()
		c.items[key] = item
		c.mu.Unlock()
		return item.value, true
	}
	c.misses += 1
	c.mu.Unlock()

	value := compute()
	if c.capacity <= 0 {
		return value, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= c.capacity {
		c.evictOldest()
	}
	c.items[key] = CacheItem[V]{
		value:      value,
		lastAccess: c.now(),
	}
	return value, false
}

func (c *ResultCache[V]) evictOldest() {
	var oldestKey string
	var oldest time.Time
	first := true

	for key, item := range c.items {
		if first || item.lastAccess.Before(oldest) {
			oldestKey = key
			oldest = item.lastAccess
			first = false
		}
	}
	delete(c.items, oldestKey)
}

func (c *ResultCache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *ResultCache[V]) HitRate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hits+c.misses > 0 {
		return float64(c.hits) / float64(c.hits+c.misses)
	} else {
		return 0.0
	}
}
