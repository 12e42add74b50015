package services

import (
	"github.com/sirupsen/logrus"

	"github.com/addrkit/addrkit/mxcache"
)

func NewCacheService(cache *mxcache.Cache, logger *logrus.Logger) CacheSvc {
	return CacheSvc{
		cache:  cache,
		logger: logger.WithField("svc", "cache"),
	}
}

type CacheSvc struct {
	cache  *mxcache.Cache
	logger *logrus.Entry
}

func (c *CacheSvc) Stats() mxcache.Stats {
	return c.cache.Stats()
}

// Flush empties the cache and reports how many entries were dropped.
func (c *CacheSvc) Flush() int {
	removed := c.cache.Flush()

	c.logger.WithField("removed", removed).Info("Cache flushed")
	return removed
}

// Delete removes a single domain, reporting whether it was present.
func (c *CacheSvc) Delete(domain string) bool {
	removed := c.cache.Delete(domain)

	c.logger.WithFields(logrus.Fields{
		"domain":  domain,
		"removed": removed,
	}).Debug("Cache delete")

	return removed
}
