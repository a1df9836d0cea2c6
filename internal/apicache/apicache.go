// internal/apicache/apicache.go
//
// Edge-style cache for serialized read-endpoint responses.
//
// Context
// -------
// The profile and projects endpoints are side-effect-free and keyed by
// tenant identifier, so their JSON bodies are cached for a short TTL.
// With a Redis address configured the cache is shared across instances;
// without one it degrades to an in-process LRU.  Cache faults fail open:
// a Redis hiccup means a store read, never a request failure.
package apicache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jatinPrakash2720/portfolio-hub/internal/cache"
	"github.com/jatinPrakash2720/portfolio-hub/internal/metrics"
)

const opTimeout = 250 * time.Millisecond

// Cache serves and stores serialized response bodies.
type Cache struct {
	rdb *redis.Client // nil → LRU only
	lru *cache.LRU[string, []byte]
	ttl time.Duration
}

// New builds a Cache.  rdb may be nil; capacity sizes the LRU fallback.
func New(rdb *redis.Client, capacity int, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, lru: cache.New[string, []byte](capacity), ttl: ttl}
}

// Get returns a cached body for key, if present and fresh.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.rdb != nil {
		opCtx, cancel := context.WithTimeout(ctx, opTimeout)
		defer cancel()

		val, err := c.rdb.Get(opCtx, key).Bytes()
		switch {
		case err == nil:
			metrics.APICacheHitTotal.WithLabelValues("redis").Inc()
			return val, true
		case errors.Is(err, redis.Nil):
			// miss, fall through
		default:
			zap.S().Warnw("api cache read failed, serving from store", "key", key, "err", err)
		}
		metrics.APICacheMissTotal.Inc()
		return nil, false
	}

	if val, ok := c.lru.Get(key); ok {
		metrics.APICacheHitTotal.WithLabelValues("lru").Inc()
		return val, true
	}
	metrics.APICacheMissTotal.Inc()
	return nil, false
}

// Set stores a body under key for the configured TTL.  Failures are
// logged and swallowed.
func (c *Cache) Set(ctx context.Context, key string, body []byte) {
	if c.rdb != nil {
		opCtx, cancel := context.WithTimeout(ctx, opTimeout)
		defer cancel()

		if err := c.rdb.Set(opCtx, key, body, c.ttl).Err(); err != nil {
			zap.S().Warnw("api cache write failed", "key", key, "err", err)
		}
		return
	}
	c.lru.Add(key, body, c.ttl)
}
