// Package di wires the coordinator, key codec and gate cache configuration
// behind a single container so a page mount builds its gates from one
// place.
package di

import (
	"context"

	"github.com/MananTank/responsive-rsc/coordinator"
	"github.com/MananTank/responsive-rsc/fragmentgate"
	"github.com/MananTank/responsive-rsc/hooks"
	"github.com/MananTank/responsive-rsc/searchparams"
)

// Container provides dependency injection for one page mount: the
// coordinator singleton, the shared key codec, and the cache configuration
// applied to every gate it creates.
type Container struct {
	coord    *coordinator.Coordinator
	codec    searchparams.KeyCodec
	cacheCfg fragmentgate.CacheConfig
}

// NewContainer creates a container around a coordinator built from
// coordCfg, with cacheCfg applied to gates created through it.
func NewContainer(coordCfg coordinator.Config, cacheCfg fragmentgate.CacheConfig) (*Container, error) {
	if err := cacheCfg.Validate(); err != nil {
		return nil, err
	}

	codec := coordCfg.Codec
	if codec == nil {
		codec = searchparams.NewDefaultKeyCodec()
		coordCfg.Codec = codec
	}

	coord, err := coordinator.New(coordCfg)
	if err != nil {
		return nil, err
	}

	return &Container{
		coord:    coord,
		codec:    codec,
		cacheCfg: cacheCfg,
	}, nil
}

// NewContainerWithDefaults creates a container using the default gate cache
// configuration.
func NewContainerWithDefaults(coordCfg coordinator.Config) (*Container, error) {
	return NewContainer(coordCfg, fragmentgate.DefaultCacheConfig())
}

// Coordinator returns the coordinator singleton.
func (c *Container) Coordinator() *coordinator.Coordinator {
	return c.coord
}

// KeyCodec returns the shared key codec instance.
func (c *Container) KeyCodec() searchparams.KeyCodec {
	return c.codec
}

// CacheConfig returns a copy of the gate cache configuration.
func (c *Container) CacheConfig() fragmentgate.CacheConfig {
	return c.cacheCfg
}

// NewGate creates a gate bound to the container's coordinator. The
// container's cache configuration applies unless opts carries its own.
func (c *Container) NewGate(opts fragmentgate.Options) (*fragmentgate.Gate, error) {
	if opts.Cache == nil {
		cfg := c.cacheCfg
		opts.Cache = &cfg
	}
	return fragmentgate.New(c.coord, opts)
}

// Context mounts the container's coordinator on ctx so the hooks accessors
// work below it.
func (c *Container) Context(ctx context.Context) context.Context {
	return hooks.WithCoordinator(ctx, c.coord)
}
