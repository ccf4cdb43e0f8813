// Package hooks provides context-scoped accessors over a mounted
// coordinator and gate, the Go analogue of the host framework's scoped
// value propagation. Reads outside the required scope are programming
// errors and panic immediately; they are meant to be caught during
// development, not recovered at runtime.
package hooks

import (
	"context"

	"github.com/MananTank/responsive-rsc/coordinator"
	"github.com/MananTank/responsive-rsc/fragmentgate"
	"github.com/MananTank/responsive-rsc/searchparams"
)

type coordinatorContextKey struct{}

type gateContextKey struct{}

// WithCoordinator mounts c on the context, making the parameter accessors
// available to everything below.
func WithCoordinator(ctx context.Context, c *coordinator.Coordinator) context.Context {
	return context.WithValue(ctx, coordinatorContextKey{}, c)
}

// WithGate mounts g on the context, making IsPending available to the
// fragment subtree.
func WithGate(ctx context.Context, g *fragmentgate.Gate) context.Context {
	return context.WithValue(ctx, gateContextKey{}, g)
}

// SearchParams returns the merged navigation parameters. It panics when no
// coordinator is mounted on the context.
func SearchParams(ctx context.Context) searchparams.ParamMap {
	return coordinatorFrom(ctx, "SearchParams").Params()
}

// SetSearchParams returns the parameter setter. It panics when no
// coordinator is mounted on the context.
func SetSearchParams(ctx context.Context) coordinator.Setter {
	return coordinatorFrom(ctx, "SetSearchParams").Setter()
}

// IsPending reports whether the enclosing fragment's parameters are in
// flight. It panics when no gate is mounted on the context.
func IsPending(ctx context.Context) bool {
	g, ok := ctx.Value(gateContextKey{}).(*fragmentgate.Gate)
	if !ok {
		panic("hooks: IsPending called outside a gate scope; wrap the context with hooks.WithGate")
	}
	return g.Pending()
}

func coordinatorFrom(ctx context.Context, accessor string) *coordinator.Coordinator {
	c, ok := ctx.Value(coordinatorContextKey{}).(*coordinator.Coordinator)
	if !ok {
		panic("hooks: " + accessor + " called outside a coordinator scope; wrap the context with hooks.WithCoordinator")
	}
	return c
}
