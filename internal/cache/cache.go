package cache

import (
	"sync"

	"github.com/dgraph-io/ristretto"
)

var (
	once  sync.Once
	store *ristretto.Cache
)

// GetCache returns the process-wide in-memory cache. Entries carry their own
// TTLs and are evicted by cost, so heavy search results age out under pressure.
func GetCache() *ristretto.Cache {
	once.Do(func() {
		cache, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: 1 << 20,
			MaxCost:     64 << 20,
			BufferItems: 64,
		})
		if err != nil {
			panic(err)
		}

		store = cache
	})

	return store
}
