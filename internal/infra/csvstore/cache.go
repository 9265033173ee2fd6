package csvstore

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/exp/slices"
)

// DefaultCacheTTL bounds how long a parsed file is reused before it is re-read.
const DefaultCacheTTL = 5 * time.Minute

// fileCache holds the decoded rows of a single file. A non-positive TTL
// disables caching.
type fileCache[V any] struct {
	path  string
	cache *ttlcache.Cache[string, []V]
}

func newFileCache[V any](path string, ttl time.Duration) *fileCache[V] {
	c := &fileCache[V]{path: path}
	if ttl > 0 {
		c.cache = ttlcache.New(
			ttlcache.WithTTL[string, []V](ttl),
			ttlcache.WithDisableTouchOnHit[string, []V](),
		)
	}
	return c
}

func (c *fileCache[V]) get() ([]V, bool) {
	if c.cache == nil {
		return nil, false
	}
	item := c.cache.Get(c.path)
	if item == nil {
		return nil, false
	}
	return slices.Clone(item.Value()), true
}

func (c *fileCache[V]) set(values []V) {
	if c.cache == nil {
		return
	}
	c.cache.Set(c.path, slices.Clone(values), ttlcache.DefaultTTL)
}

func (c *fileCache[V]) invalidate() {
	if c.cache == nil {
		return
	}
	c.cache.Delete(c.path)
}
