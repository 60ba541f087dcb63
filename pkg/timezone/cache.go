package timezone

import (
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/maypok86/otter/v2"

	"github.com/codeGROOVE-dev/jdcal/pkg/tzconvert"
)

// DefaultCacheSize is the number of Julian Days a Cache remembers by default.
const DefaultCacheSize = 10_000

// Cache memoizes the offsets of another resolver. Lookups of the same
// Julian Day, as happen when a user steps one field back and forth, skip
// the tz database. Resolvers are pure, so entries never expire.
type Cache struct {
	next   tzconvert.OffsetResolver
	cache  *otter.Cache[uint64, float64]
	logger *slog.Logger
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache wraps r in a bounded cache holding up to size entries. A size
// of zero or less selects DefaultCacheSize. A nil logger uses slog.Default.
func NewCache(r tzconvert.OffsetResolver, size int, logger *slog.Logger) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	cache := otter.Must(&otter.Options[uint64, float64]{
		MaximumSize:     size,
		InitialCapacity: min(size, 1024),
	})
	return &Cache{next: r, cache: cache, logger: logger}
}

// OffsetHours returns the cached offset for jd, resolving it on a miss.
func (c *Cache) OffsetHours(jd float64) float64 {
	// Keyed on the exact bit pattern: a transition may fall between any two
	// distinct Julian Days.
	key := math.Float64bits(jd)
	if offset, found := c.cache.GetIfPresent(key); found {
		c.hits.Add(1)
		return offset
	}
	c.misses.Add(1)
	offset := c.next.OffsetHours(jd)
	c.cache.Set(key, offset)
	c.logger.Debug("offset cache miss", "jd", jd, "offset_hours", offset)
	return offset
}

// Stats reports cache hits and misses since creation.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Unwrap returns the resolver behind the cache.
func (c *Cache) Unwrap() tzconvert.OffsetResolver { return c.next }

func (c *Cache) String() string {
	return Name(c.next)
}
