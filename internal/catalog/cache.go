package catalog

import (
	"sync"
	"time"
)

// DefaultTTL controls how long a computed snapshot is reused before the
// views are rebuilt from the source.
const DefaultTTL = 5 * time.Minute

type snapshot struct {
	all         []Product
	featured    []Product
	byCategory  map[string][]Product
	lastUpdated time.Time
}

// Cache holds precomputed catalog views over a fixed product source.
// A stale access rebuilds all three views in one pass; between rebuilds the
// snapshot is immutable. Views are returned by reference and must be treated
// as read-only by callers.
type Cache struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	source func() []Product
	snap   *snapshot
}

// NewCache wires a cache around source. A non-positive ttl falls back to
// DefaultTTL; a nil clock falls back to time.Now.
func NewCache(source func() []Product, ttl time.Duration, now func() time.Time) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{ttl: ttl, now: now, source: source}
}

func (c *Cache) All() []Product {
	return c.current().all
}

func (c *Cache) Featured() []Product {
	return c.current().featured
}

// Category returns the precomputed view for name, or an empty slice when the
// category has no entry.
func (c *Cache) Category(name string) []Product {
	if items, ok := c.current().byCategory[name]; ok {
		return items
	}
	return []Product{}
}

func (c *Cache) current() *snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if c.snap == nil || now.Sub(c.snap.lastUpdated) > c.ttl {
		c.snap = c.recompute(now)
	}
	return c.snap
}

func (c *Cache) recompute(now time.Time) *snapshot {
	all := c.source()
	snap := &snapshot{
		all:         all,
		featured:    make([]Product, 0),
		byCategory:  make(map[string][]Product),
		lastUpdated: now,
	}
	for _, p := range all {
		if p.Featured {
			snap.featured = append(snap.featured, p)
		}
		snap.byCategory[p.Category] = append(snap.byCategory[p.Category], p)
	}
	return snap
}
