package mxcache

import "time"

type Option func(c *Cache)

// WithMaxSize caps the number of live entries. Values below 1 are ignored.
func WithMaxSize(max int) Option {
	return func(c *Cache) {
		if max > 0 {
			c.maxSize = max
		}
	}
}

// WithTTL sets the TTL applied when Set is called without an explicit one.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.defaultTTL = ttl
		}
	}
}

// WithCleanupProbability tunes the chance that a Set triggers a full expiry
// scan. It's an amortized-cost knob, not a correctness requirement.
func WithCleanupProbability(p float64) Option {
	return func(c *Cache) {
		c.cleanupProbability = p
	}
}

// WithoutCleanup disables the opportunistic expiry scan on Set. CleanExpired
// remains available for explicit invocation.
func WithoutCleanup() Option {
	return func(c *Cache) {
		c.cleanupEnabled = false
	}
}

// Disabled turns the cache into a no-op: Get always misses without counting,
// Set and Delete do nothing. Statistics remain queryable and stay all-zero.
func Disabled() Option {
	return func(c *Cache) {
		c.enabled = false
	}
}
