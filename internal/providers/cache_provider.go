package providers

import (
	"github.com/coocood/freecache"
	"perfumefinder/internal/structures"
	"unsafe"
)

const defaultCacheTTL = 60

// CacheStats is the view of the response cache reported on /health.
type CacheStats struct {
	Enabled bool    `json:"enabled"`
	Entries int64   `json:"entries"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}

// CacheProviderInterface stores rendered catalogue responses keyed by
// "<kind>:<query>".
type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Stats() CacheStats
}

type CacheProvider struct {
	responses *freecache.Cache
	ttlSec    int
}

func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Response cache disabled")
		return &noopCache{}
	}

	ttl := int(conf.Cache.TTL.Seconds())
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	logger.Infof(TypeApp, "Response cache: %dMB, ttl %ds", conf.Cache.Size, ttl)

	return &CacheProvider{
		responses: freecache.NewCache(conf.Cache.Size << 20),
		ttlSec:    ttl,
	}
}

// keyBytes avoids a copy per lookup; freecache never retains or mutates the key slice.
func keyBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (c *CacheProvider) Get(key string) ([]byte, bool) {
	body, err := c.responses.Get(keyBytes(key))
	if err != nil {
		return nil, false
	}
	return body, true
}

// Set drops the entry silently when it exceeds freecache's per-entry limit
// (1/1024 of the cache size).
func (c *CacheProvider) Set(key string, value []byte) {
	_ = c.responses.Set(keyBytes(key), value, c.ttlSec)
}

func (c *CacheProvider) Stats() CacheStats {
	return CacheStats{
		Enabled: true,
		Entries: c.responses.EntryCount(),
		Hits:    c.responses.HitCount(),
		Misses:  c.responses.MissCount(),
		HitRate: c.responses.HitRate(),
	}
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool) { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)      {}
func (n *noopCache) Stats() CacheStats           { return CacheStats{} }
