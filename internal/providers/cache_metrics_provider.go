package providers

import (
	"perfumefinder/internal/structures"
	"strings"
)

// MetricsCacheProvider counts hits and misses per response kind. The kind is
// the cache key prefix up to the first colon ("search:...", "detail:...").
type MetricsCacheProvider struct {
	inner   CacheProviderInterface
	metrics MetricsProviderInterface
}

func cacheKind(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}

func (c *MetricsCacheProvider) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	if ok {
		c.metrics.IncCacheHits(cacheKind(key))
	} else {
		c.metrics.IncCacheMisses(cacheKind(key))
	}
	return val, ok
}

func (c *MetricsCacheProvider) Set(key string, value []byte) {
	c.inner.Set(key, value)
}

func (c *MetricsCacheProvider) Stats() CacheStats {
	return c.inner.Stats()
}

// NewInstrumentedCacheProvider skips the wrapper when caching is off so the
// noop cache does not report a miss for every request.
func NewInstrumentedCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) CacheProviderInterface {
	inner := NewCacheProvider(conf, logger)
	if _, disabled := inner.(*noopCache); disabled {
		return inner
	}
	return &MetricsCacheProvider{
		inner:   inner,
		metrics: metrics,
	}
}
