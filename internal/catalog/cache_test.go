package catalog

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func testSource() []Product {
	return []Product{
		prod("m1", "Oxford Shirt", "Cole Street", CategoryMen, 54, true),
		prod("m2", "Chore Jacket", "Atlas", CategoryMen, 148, false),
		prod("w1", "Wrap Dress", "Lumen", CategoryWomen, 118, true),
		prod("w2", "Tank Top", "Cole Street", CategoryWomen, 24, false),
	}
}

func countingCache(ttl time.Duration, clock *fakeClock) (*Cache, *int) {
	computes := new(int)
	cache := NewCache(func() []Product {
		*computes++
		return testSource()
	}, ttl, clock.Now)
	return cache, computes
}

func TestCacheIdempotentWithinTTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	cache, computes := countingCache(5*time.Minute, clock)

	first := cache.All()
	clock.Advance(4 * time.Minute)
	second := cache.All()

	if *computes != 1 {
		t.Fatalf("recomputes = %d, want 1", *computes)
	}
	if len(first) != len(second) {
		t.Fatalf("views differ: %d vs %d items", len(first), len(second))
	}
	// Same snapshot, not a re-derived one.
	if &first[0] != &second[0] {
		t.Error("second read returned a different backing slice within TTL")
	}
}

func TestCacheRecomputesAfterExpiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	cache, computes := countingCache(5*time.Minute, clock)

	cache.All()
	cache.Featured()
	cache.Category(CategoryMen)
	if *computes != 1 {
		t.Fatalf("recomputes = %d after three reads, want 1", *computes)
	}

	clock.Advance(5*time.Minute + time.Second)
	cache.Featured()
	if *computes != 2 {
		t.Fatalf("recomputes = %d after expiry, want 2", *computes)
	}

	// One recomputation refreshed every view; further reads stay cached.
	cache.All()
	cache.Category(CategoryWomen)
	if *computes != 2 {
		t.Fatalf("recomputes = %d, want 2", *computes)
	}
}

func TestCacheViews(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	cache, _ := countingCache(5*time.Minute, clock)

	if got := len(cache.All()); got != 4 {
		t.Errorf("all = %d items, want 4", got)
	}
	for _, p := range cache.Featured() {
		if !p.Featured {
			t.Errorf("non-featured product %s in featured view", p.ID)
		}
	}
	if got := len(cache.Featured()); got != 2 {
		t.Errorf("featured = %d items, want 2", got)
	}
	assertIDs(t, cache.Category(CategoryMen), "m1", "m2")
	assertIDs(t, cache.Category(CategoryWomen), "w1", "w2")
	if got := cache.Category("Unisex"); len(got) != 0 {
		t.Errorf("unknown category view = %v, want empty", ids(got))
	}
}

func TestCacheDefaults(t *testing.T) {
	cache := NewCache(testSource, 0, nil)
	if cache.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", cache.ttl, DefaultTTL)
	}
	if got := len(cache.All()); got != 4 {
		t.Errorf("all = %d items, want 4", got)
	}
}

func TestCacheEmptySource(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	cache := NewCache(func() []Product { return nil }, time.Minute, clock.Now)

	res := Run(cache.All(), Params{})
	if res.Pagination.Total != 0 || len(res.Products) != 0 {
		t.Errorf("empty catalog result = %+v", res)
	}
}
