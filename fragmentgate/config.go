package fragmentgate

import (
	"time"

	"github.com/MananTank/responsive-rsc/internal/cacheinfra"
)

// CacheConfig exposes the snapshot cache options for consumers of the
// package. The defaults size the cache so that a page session never evicts.
type CacheConfig struct {
	Capacity           int
	NumShards          int
	TTL                time.Duration
	EvictionPercentage int
	EvictionInterval   time.Duration
}

// DefaultCacheConfig returns a CacheConfig populated with sensible
// defaults.
func DefaultCacheConfig() CacheConfig {
	return convertFromInternal(cacheinfra.DefaultConfig())
}

// Validate checks whether the configuration values are valid.
func (c CacheConfig) Validate() error {
	return c.toInternal().Validate()
}

func (c CacheConfig) toInternal() cacheinfra.Config {
	return cacheinfra.Config{
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		TTL:                c.TTL,
		EvictionPercentage: c.EvictionPercentage,
		EvictionInterval:   c.EvictionInterval,
	}
}

func convertFromInternal(cfg cacheinfra.Config) CacheConfig {
	return CacheConfig{
		Capacity:           cfg.Capacity,
		NumShards:          cfg.NumShards,
		TTL:                cfg.TTL,
		EvictionPercentage: cfg.EvictionPercentage,
		EvictionInterval:   cfg.EvictionInterval,
	}
}
