// internal/cache/lru.go
//
// Tiny TTL-aware LRU used as the in-process fallback for the response
// cache.  No external deps; good for a few thousand entries.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// LRU is a generic least-recently-used cache with per-entry expiry.
// Safe for concurrent use.
type LRU[K comparable, V any] struct {
	mu   sync.Mutex
	cap  int
	ll   *list.List
	dict map[K]*list.Element
}

type pair[K comparable, V any] struct {
	key       K
	val       V
	expiresAt time.Time
}

// New returns an LRU with the given capacity.  Capacities below one are
// clamped to one.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU[K, V]{
		cap:  capacity,
		ll:   list.New(),
		dict: make(map[K]*list.Element, capacity),
	}
}

// Get retrieves a live value and marks it MRU.  Expired entries are
// dropped on access.
func (c *LRU[K, V]) Get(key K) (val V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, hit := c.dict[key]
	if !hit {
		return val, false
	}
	p := ele.Value.(pair[K, V])
	if time.Now().After(p.expiresAt) {
		c.ll.Remove(ele)
		delete(c.dict, key)
		return val, false
	}
	c.ll.MoveToFront(ele)
	return p.val, true
}

// Add inserts or updates a value with its expiry.  The least recently
// used entry is evicted when the cache is full.
func (c *LRU[K, V]) Add(key K, val V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := pair[K, V]{key: key, val: val, expiresAt: time.Now().Add(ttl)}
	if ele, hit := c.dict[key]; hit {
		ele.Value = p
		c.ll.MoveToFront(ele)
		return
	}
	ele := c.ll.PushFront(p)
	c.dict[key] = ele
	if c.ll.Len() > c.cap {
		last := c.ll.Back()
		c.ll.Remove(last)
		delete(c.dict, last.Value.(pair[K, V]).key)
	}
}

// Len reports current size, expired entries included until touched.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
