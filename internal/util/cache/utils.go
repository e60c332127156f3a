package cache_utils

import (
	"time"

	"logweave/internal/cache"

	"github.com/dgraph-io/ristretto"
)

const (
	DefaultCacheExpiry = 10 * time.Minute
	defaultEntryCost   = 1
)

// CacheUtil is a typed view over the shared cache. Keys are namespaced with a
// prefix per consumer so features cannot collide.
type CacheUtil[T any] struct {
	cache  *ristretto.Cache
	prefix string
	expiry time.Duration
}

func NewCacheUtil[T any](cache *ristretto.Cache, prefix string) *CacheUtil[T] {
	return &CacheUtil[T]{
		cache:  cache,
		prefix: prefix,
		expiry: DefaultCacheExpiry,
	}
}

func NewDefaultCacheUtil[T any](prefix string) *CacheUtil[T] {
	return NewCacheUtil[T](cache.GetCache(), prefix)
}

func (c *CacheUtil[T]) Get(key string) *T {
	value, found := c.cache.Get(c.prefix + key)
	if !found {
		return nil
	}

	item, ok := value.(*T)
	if !ok {
		return nil
	}

	return item
}

func (c *CacheUtil[T]) Set(key string, item *T) {
	c.cache.SetWithTTL(c.prefix+key, item, defaultEntryCost, c.expiry)
}

func (c *CacheUtil[T]) Invalidate(key string) {
	c.cache.Del(c.prefix + key)
}

// Wait blocks until buffered writes are applied. Sets are asynchronous, so
// tests call this before asserting on Get.
func (c *CacheUtil[T]) Wait() {
	c.cache.Wait()
}
