// Package mxcache holds MX lookup results for a bounded amount of time.
//
// Entries expire lazily: a stale entry is dropped the moment a read finds it,
// so no background sweeper is needed. To bound growth from domains that are
// written once and never read again, Set occasionally triggers a full expiry
// scan (see WithCleanupProbability). Eviction is least-recently-used rather
// than insertion-ordered: validation traffic is typically heavily skewed
// towards a handful of popular domains, and FIFO eviction would throw those
// out while they're still hot.
package mxcache

import (
	"container/list"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/addrkit/addrkit/types"
)

const (
	DefaultTTL                = 5 * time.Minute
	DefaultMaxSize            = 1000
	DefaultCleanupProbability = 0.1
)

func New(options ...Option) *Cache {
	c := &Cache{
		entries:            make(map[string]*list.Element),
		order:              list.New(),
		maxSize:            DefaultMaxSize,
		defaultTTL:         DefaultTTL,
		enabled:            true,
		cleanupEnabled:     true,
		cleanupProbability: DefaultCleanupProbability,
		now:                time.Now,
		chance:             rand.Float64,
	}

	for _, o := range options {
		o(c)
	}

	return c
}

// Cache maps lowercased domain names to MX lookup results. It is safe for
// concurrent use; every operation is atomic with respect to the others.
type Cache struct {
	lock    sync.Mutex
	entries map[string]*list.Element
	order   *list.List // front is the next eviction candidate, back is most recently used

	maxSize            int
	defaultTTL         time.Duration
	enabled            bool
	cleanupEnabled     bool
	cleanupProbability float64

	hits      uint64
	misses    uint64
	evictions uint64

	// overridable for deterministic tests
	now    func() time.Time
	chance func() float64
}

type entry struct {
	domain   string
	records  []types.MX
	storedAt time.Time
	ttl      time.Duration
}

// Get returns the cached records for a domain. The boolean reports presence;
// a present, empty slice is a cached "domain has no MX records" answer. A hit
// marks the entry as most recently used. Finding an expired entry removes it
// and counts as both a miss and an eviction.
func (c *Cache) Get(domain string) ([]types.MX, bool) {
	if !c.enabled {
		return nil, false
	}

	domain = strings.ToLower(domain)

	c.lock.Lock()
	defer c.lock.Unlock()

	el, ok := c.entries[domain]
	if !ok {
		c.misses++
		return nil, false
	}

	e := el.Value.(*entry)
	if c.isExpired(e) {
		c.removeElement(el)
		c.misses++
		c.evictions++
		return nil, false
	}

	c.order.MoveToBack(el)
	c.hits++

	return e.records, true
}

// Set stores records for a domain. A non-positive ttl falls back to the
// cache's default. When the cache is full and the domain isn't already
// present, the least-recently-used entry makes way first.
func (c *Cache) Set(domain string, records []types.MX, ttl time.Duration) {
	if !c.enabled {
		return
	}

	domain = strings.ToLower(domain)
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if el, ok := c.entries[domain]; ok {
		e := el.Value.(*entry)
		e.records = records
		e.storedAt = c.now()
		e.ttl = ttl
		c.order.MoveToBack(el)
	} else {
		if c.order.Len() >= c.maxSize {
			if oldest := c.order.Front(); oldest != nil {
				c.removeElement(oldest)
				c.evictions++
			}
		}

		c.entries[domain] = c.order.PushBack(&entry{
			domain:   domain,
			records:  records,
			storedAt: c.now(),
			ttl:      ttl,
		})
	}

	if c.cleanupEnabled && c.chance() < c.cleanupProbability {
		c.removeExpired()
	}
}

// Delete removes a single domain and reports whether it was present. Counts
// as an eviction when it was.
func (c *Cache) Delete(domain string) bool {
	if !c.enabled {
		return false
	}

	domain = strings.ToLower(domain)

	c.lock.Lock()
	defer c.lock.Unlock()

	el, ok := c.entries[domain]
	if !ok {
		return false
	}

	c.removeElement(el)
	c.evictions++

	return true
}

// Flush empties the cache and returns the amount of entries removed. The
// removed entries are added to the eviction counter as a bulk eviction.
func (c *Cache) Flush() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	removed := c.order.Len()

	c.entries = make(map[string]*list.Element)
	c.order.Init()
	c.evictions += uint64(removed)

	return removed
}

// CleanExpired scans the whole cache and drops every entry whose TTL has
// elapsed, returning the amount removed.
func (c *Cache) CleanExpired() int {
	if !c.enabled {
		return 0
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	return c.removeExpired()
}

// removeExpired assumes the caller holds the lock.
func (c *Cache) removeExpired() int {
	var removed int

	for el := c.order.Front(); el != nil; {
		next := el.Next()

		if c.isExpired(el.Value.(*entry)) {
			c.removeElement(el)
			c.evictions++
			removed++
		}

		el = next
	}

	return removed
}

func (c *Cache) isExpired(e *entry) bool {
	return c.now().Sub(e.storedAt) > e.ttl
}

// removeElement assumes the caller holds the lock and does not touch the
// counters, those belong to the caller since the reason differs per call site.
func (c *Cache) removeElement(el *list.Element) {
	e := el.Value.(*entry)
	delete(c.entries, e.domain)
	c.order.Remove(el)
}

// Len returns the number of live entries, including ones that expired but
// haven't been touched since.
func (c *Cache) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.order.Len()
}

// Enabled reports whether the cache participates in lookups at all.
func (c *Cache) Enabled() bool {
	return c.enabled
}
