package mxcache

// Stats is a point-in-time view of the cache counters. The hit rate is
// computed on read and isn't stored, 0 means no requests were seen yet.
type Stats struct {
	Hits      uint64  `json:"hits"`
	Misses    uint64  `json:"misses"`
	Evictions uint64  `json:"evictions"`
	Size      int     `json:"size"`
	HitRate   float64 `json:"hit_rate"`
}

func (c *Cache) Stats() Stats {
	c.lock.Lock()
	defer c.lock.Unlock()

	s := Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      c.order.Len(),
	}

	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total) * 100
	}

	return s
}

// ResetStats zeroes the counters. Cache contents are left untouched.
func (c *Cache) ResetStats() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.hits = 0
	c.misses = 0
	c.evictions = 0
}
