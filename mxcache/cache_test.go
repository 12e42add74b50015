package mxcache

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/addrkit/addrkit/testutil"
	"github.com/addrkit/addrkit/types"
)

var mxExample = []types.MX{
	{Host: "mx1.example.org", Pref: 10},
	{Host: "mx2.example.org", Pref: 20},
}

func newTestCache(options ...Option) (*Cache, *testutil.Clock) {
	clock := testutil.NewClock()

	c := New(append([]Option{WithoutCleanup()}, options...)...)
	c.now = clock.Now

	return c, clock
}

func TestCacheGetSet(t *testing.T) {
	c, _ := newTestCache()

	if _, ok := c.Get("example.org"); ok {
		t.Error("Expected a miss on an empty cache")
	}

	c.Set("example.org", mxExample, 0)

	got, ok := c.Get("example.org")
	if !ok {
		t.Fatal("Expected a hit after Set")
	}

	if len(got) != len(mxExample) || got[0].Host != "mx1.example.org" {
		t.Errorf("Unexpected records %+v", got)
	}
}

func TestCacheDomainCaseNormalization(t *testing.T) {
	c, _ := newTestCache()

	c.Set("Example.COM", mxExample, 0)

	if _, ok := c.Get("example.com"); !ok {
		t.Error("Expected differently cased spellings of a domain to collide")
	}

	if c.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", c.Len())
	}
}

func TestCacheEmptyRecordsAreAHit(t *testing.T) {
	c, _ := newTestCache()

	c.Set("example.org", []types.MX{}, 0)

	got, ok := c.Get("example.org")
	if !ok {
		t.Fatal("Expected a cached no-MX answer to count as present")
	}

	if len(got) != 0 {
		t.Errorf("Expected no records, got %+v", got)
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	c, clock := newTestCache()

	c.Set("example.org", mxExample, 50*time.Millisecond)

	if _, ok := c.Get("example.org"); !ok {
		t.Fatal("Expected a hit within the TTL")
	}

	clock.Advance(51 * time.Millisecond)

	if _, ok := c.Get("example.org"); ok {
		t.Fatal("Expected a miss after the TTL elapsed")
	}

	s := c.Stats()
	if s.Misses != 1 || s.Evictions != 1 {
		t.Errorf("Expected the expired read to count a miss and an eviction, got %+v", s)
	}

	if s.Size != 0 {
		t.Errorf("Expected the expired entry to be gone, size is %d", s.Size)
	}
}

func TestCacheLRUEviction(t *testing.T) {
	c, _ := newTestCache(WithMaxSize(3))

	c.Set("a.example", mxExample, 0)
	c.Set("b.example", mxExample, 0)
	c.Set("c.example", mxExample, 0)

	// Touching A makes B the least recently used entry.
	if _, ok := c.Get("a.example"); !ok {
		t.Fatal("Expected a hit for a.example")
	}

	c.Set("d.example", mxExample, 0)

	if _, ok := c.Get("b.example"); ok {
		t.Error("Expected b.example to have been evicted")
	}

	for _, domain := range []string{"a.example", "c.example", "d.example"} {
		if _, ok := c.Get(domain); !ok {
			t.Errorf("Expected %s to survive the eviction", domain)
		}
	}
}

func TestCacheCapacityInvariant(t *testing.T) {
	const max = 5
	c, _ := newTestCache(WithMaxSize(max))

	for i := 0; i < 50; i++ {
		c.Set(fmt.Sprintf("domain-%d.example", i%13), mxExample, 0)

		if l := c.Len(); l > max {
			t.Fatalf("Capacity invariant violated after set %d: %d entries, max %d", i, l, max)
		}
	}
}

func TestCacheOverwriteDoesNotGrow(t *testing.T) {
	c, _ := newTestCache()

	c.Set("example.org", mxExample, 0)
	c.Set("example.org", mxExample[:1], 0)

	if c.Len() != 1 {
		t.Errorf("Expected an overwrite to keep size at 1, got %d", c.Len())
	}

	got, _ := c.Get("example.org")
	if len(got) != 1 {
		t.Errorf("Expected the overwritten records, got %+v", got)
	}
}

func TestCacheHitRate(t *testing.T) {
	c, _ := newTestCache()

	c.Set("example.org", mxExample, 0)

	c.Get("example.org")
	c.Get("example.org")
	c.Get("nope.example")

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Fatalf("Expected 2 hits and 1 miss, got %+v", s)
	}

	if math.Abs(s.HitRate-66.67) > 0.01 {
		t.Errorf("Expected a hit rate of ~66.67, got %.4f", s.HitRate)
	}
}

func TestCacheHitRateWithoutTraffic(t *testing.T) {
	c, _ := newTestCache()

	if r := c.Stats().HitRate; r != 0 {
		t.Errorf("Expected a 0 hit rate without requests, got %.4f", r)
	}
}

func TestCacheFlush(t *testing.T) {
	c, _ := newTestCache()

	// Flushing an empty cache is a no-op.
	if removed := c.Flush(); removed != 0 {
		t.Errorf("Expected an empty flush to remove nothing, got %d", removed)
	}
	if s := c.Stats(); s.Evictions != 0 {
		t.Errorf("Expected no evictions from an empty flush, got %+v", s)
	}

	const n = 4
	for i := 0; i < n; i++ {
		c.Set(fmt.Sprintf("domain-%d.example", i), mxExample, 0)
	}

	if removed := c.Flush(); removed != n {
		t.Errorf("Expected flush to remove %d entries, got %d", n, removed)
	}

	s := c.Stats()
	if s.Size != 0 {
		t.Errorf("Expected an empty cache after flush, size is %d", s.Size)
	}

	if s.Evictions != n {
		t.Errorf("Expected %d evictions after flushing %d entries, got %d", n, n, s.Evictions)
	}
}

func TestCacheDelete(t *testing.T) {
	c, _ := newTestCache()

	c.Set("example.org", mxExample, 0)

	if !c.Delete("EXAMPLE.org") {
		t.Error("Expected Delete to report the entry as present")
	}

	if c.Delete("example.org") {
		t.Error("Expected the second Delete to report absence")
	}

	if s := c.Stats(); s.Evictions != 1 {
		t.Errorf("Expected the delete to count as one eviction, got %+v", s)
	}
}

func TestCacheCleanExpired(t *testing.T) {
	c, clock := newTestCache()

	c.Set("short-a.example", mxExample, 10*time.Millisecond)
	c.Set("short-b.example", mxExample, 10*time.Millisecond)
	c.Set("long.example", mxExample, time.Hour)

	if removed := c.CleanExpired(); removed != 0 {
		t.Errorf("Expected nothing to be expired yet, removed %d", removed)
	}

	clock.Advance(20 * time.Millisecond)

	if removed := c.CleanExpired(); removed != 2 {
		t.Errorf("Expected 2 expired entries to be removed, got %d", removed)
	}

	if _, ok := c.Get("long.example"); !ok {
		t.Error("Expected the long-lived entry to survive the sweep")
	}

	// A second sweep finds nothing.
	if removed := c.CleanExpired(); removed != 0 {
		t.Errorf("Expected an idempotent sweep, removed %d", removed)
	}
}

func TestCacheOpportunisticCleanup(t *testing.T) {
	clock := testutil.NewClock()

	c := New(WithCleanupProbability(1))
	c.now = clock.Now
	c.chance = func() float64 { return 0 } // always below the probability

	c.Set("stale.example", mxExample, 10*time.Millisecond)
	clock.Advance(20 * time.Millisecond)

	c.Set("fresh.example", mxExample, time.Hour)

	if c.Len() != 1 {
		t.Errorf("Expected the stale entry to be swept during Set, %d entries remain", c.Len())
	}
}

func TestCacheDisabled(t *testing.T) {
	c, _ := newTestCache(Disabled())

	if c.Enabled() {
		t.Fatal("Expected the cache to report itself as disabled")
	}

	c.Set("example.org", mxExample, 0)

	if _, ok := c.Get("example.org"); ok {
		t.Error("Expected a disabled cache to always miss")
	}

	if c.Delete("example.org") {
		t.Error("Expected Delete on a disabled cache to be a no-op")
	}

	if removed := c.CleanExpired(); removed != 0 {
		t.Errorf("Expected CleanExpired on a disabled cache to return 0, got %d", removed)
	}

	s := c.Stats()
	if s.Hits != 0 || s.Misses != 0 || s.Evictions != 0 || s.Size != 0 {
		t.Errorf("Expected all-zero statistics on a disabled cache, got %+v", s)
	}
}

func TestCacheResetStats(t *testing.T) {
	c, _ := newTestCache()

	c.Set("example.org", mxExample, 0)
	c.Get("example.org")
	c.Get("nope.example")

	c.ResetStats()

	s := c.Stats()
	if s.Hits != 0 || s.Misses != 0 || s.Evictions != 0 {
		t.Errorf("Expected zeroed counters after reset, got %+v", s)
	}

	if s.Size != 1 {
		t.Errorf("Expected reset to leave contents alone, size is %d", s.Size)
	}

	if _, ok := c.Get("example.org"); !ok {
		t.Error("Expected the entry to survive a statistics reset")
	}
}
