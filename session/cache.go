package session

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/itsuki-jitera/rail-track-app-sub005/geometry"
	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
)

// DefaultCacheCapacity is the default number of entries kept in a
// CharacteristicCache.
const DefaultCacheCapacity = 256

// CharacteristicCache is a bounded LRU cache of measurement
// characteristics keyed by (p, q, lambda), owned by a single Session
// (§9: "Characteristic coefficient caches ... owned by a session object,
// not a global").
type CharacteristicCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	entries  map[string]*list.Element
}

type cacheEntry struct {
	key   string
	value trackdata.MeasurementCharacteristic
}

// NewCharacteristicCache creates a cache with the given capacity. A
// non-positive capacity falls back to DefaultCacheCapacity.
func NewCharacteristicCache(capacity int) *CharacteristicCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &CharacteristicCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
	}
}

func cacheKey(p, q, lambda float64) string {
	return fmt.Sprintf("%.6f|%.6f|%.6f", p, q, lambda)
}

// Get returns the cached characteristic for (p,q,lambda), computing and
// inserting it via geometry.Characteristic on a miss.
func (c *CharacteristicCache) Get(p, q, lambda float64) trackdata.MeasurementCharacteristic {
	key := cacheKey(p, q, lambda)

	c.mu.Lock()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		v := el.Value.(*cacheEntry).value
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	value := geometry.Characteristic(p, q, lambda)

	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*cacheEntry).value
	}
	el := c.order.PushFront(&cacheEntry{key: key, value: value})
	c.entries[key] = el
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}
	return value
}

// Len returns the number of entries currently cached.
func (c *CharacteristicCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Clear empties the cache.
func (c *CharacteristicCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.entries = make(map[string]*list.Element)
}
