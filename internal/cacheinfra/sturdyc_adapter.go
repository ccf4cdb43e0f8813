// Package cacheinfra adapts sturdyc as the snapshot store backing each
// fragment gate. Entries are encoded render snapshots keyed by canonical
// cache key; the defaults make the store effectively session-scoped.
package cacheinfra

import (
	"context"
	"time"

	"github.com/viccon/sturdyc"
)

// Config holds the snapshot store configuration.
type Config struct {
	// Capacity is the maximum number of snapshots the store holds.
	// Must be greater than 0.
	Capacity int

	// NumShards determines the number of shards for concurrent access.
	// Must be greater than 0.
	NumShards int

	// TTL is how long a snapshot stays valid. Session-scoped caching wants
	// this longer than any realistic page lifetime. Must be greater than 0.
	TTL time.Duration

	// EvictionPercentage is the share of entries evicted when the store hits
	// capacity. Must be between 1 and 100.
	EvictionPercentage int

	// EvictionInterval sets how often expired snapshots are collected.
	// Zero uses the sturdyc default.
	EvictionInterval time.Duration
}

// DefaultConfig returns a configuration sized so that eviction is
// effectively off for a page session: distinct visited parameter
// combinations are expected to number in the hundreds, not the tens of
// thousands.
func DefaultConfig() Config {
	return Config{
		Capacity:           16384,
		NumShards:          64,
		TTL:                24 * time.Hour,
		EvictionPercentage: 10,
	}
}

// Validate checks if the configuration values are valid.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}
	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}
	if c.TTL <= 0 {
		return &ConfigError{Field: "TTL", Message: "must be greater than 0"}
	}
	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}
	if c.EvictionInterval < 0 {
		return &ConfigError{Field: "EvictionInterval", Message: "must be non-negative"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// SnapshotStore wraps a sturdyc client holding encoded render snapshots.
type SnapshotStore struct {
	client *sturdyc.Client[[]byte]
}

// NewSnapshotStore validates the configuration and initializes the backing
// sturdyc client.
func NewSnapshotStore(cfg Config) (*SnapshotStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var options []sturdyc.Option
	if cfg.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(cfg.EvictionInterval))
	}

	client := sturdyc.New[[]byte](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		options...,
	)

	return &SnapshotStore{client: client}, nil
}

// Get returns the snapshot stored under key, if any.
func (s *SnapshotStore) Get(key string) ([]byte, bool) {
	return s.client.Get(key)
}

// Set stores snapshot under key, replacing any previous entry.
func (s *SnapshotStore) Set(key string, snapshot []byte) {
	s.client.Set(key, snapshot)
}

// GetOrFetch returns the snapshot under key, calling fetch to produce and
// store it on a miss. Concurrent calls for the same key share a single
// in-flight fetch, which is what keeps repeat parameter states from
// producing duplicate round trips.
func (s *SnapshotStore) GetOrFetch(ctx context.Context, key string, fetch func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	return s.client.GetOrFetch(ctx, key, fetch)
}

// Size returns the number of stored snapshots.
func (s *SnapshotStore) Size() int {
	return s.client.Size()
}

// Keys returns every stored cache key.
func (s *SnapshotStore) Keys() []string {
	return s.client.ScanKeys()
}
