package fragmentgate

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MananTank/responsive-rsc/coordinator"
	"github.com/MananTank/responsive-rsc/internal/cacheinfra"
	"github.com/MananTank/responsive-rsc/render"
	"github.com/MananTank/responsive-rsc/searchparams"
)

// ErrNilFragment is returned when Render is called without a fragment.
var ErrNilFragment = errors.New("fragmentgate: nil fragment")

// Fragment produces rendered output for the given parameters. Fragments
// are opaque to the gate: arbitrary asynchronous producers that receive
// only the parameters the gate declared.
type Fragment func(ctx context.Context, params searchparams.ParamMap) (render.Output, error)

// Options configures a Gate.
type Options struct {
	// SearchParamsUsed declares which navigation parameters the wrapped
	// fragment depends on. Required, and every name must be non-empty.
	SearchParamsUsed []string
	// Fallback is served by TryRender while the fragment is suspended.
	Fallback render.Output
	// SuspendOnTransition controls whether the gate suspends while its
	// declared parameters are in flight. Defaults to true when nil.
	SuspendOnTransition *bool
	// Cache overrides the snapshot cache configuration.
	Cache *CacheConfig
	// Logger to use. A console logger is used if nil.
	Logger *zerolog.Logger
}

// Validate checks the option invariants.
func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.SearchParamsUsed,
			validation.Required,
			validation.Each(validation.Required),
		),
	)
}

// Gate is the cache-and-suspend wrapper around one responsive fragment
// site. It suspends rendering while any declared parameter is pending and
// serves previously rendered output for revisited parameter combinations
// from its own session-scoped snapshot cache. Each Gate owns its cache
// exclusively; nothing is shared across gates or across remounts.
type Gate struct {
	coord     *coordinator.Coordinator
	used      []string
	fallback  render.Output
	suspend   bool
	codec     searchparams.KeyCodec
	snapshots *cacheinfra.SnapshotStore
	log       zerolog.Logger
}

// New creates a gate bound to coord.
func New(coord *coordinator.Coordinator, opts Options) (*Gate, error) {
	if coord == nil {
		return nil, errors.New("fragmentgate: coordinator is required")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("fragmentgate: invalid options: %w", err)
	}

	cacheCfg := DefaultCacheConfig()
	if opts.Cache != nil {
		cacheCfg = *opts.Cache
	}
	snapshots, err := cacheinfra.NewSnapshotStore(cacheCfg.toInternal())
	if err != nil {
		return nil, fmt.Errorf("fragmentgate: snapshot store: %w", err)
	}

	suspend := true
	if opts.SuspendOnTransition != nil {
		suspend = *opts.SuspendOnTransition
	}

	var logger zerolog.Logger
	if opts.Logger == nil {
		logger = zerolog.New(zerolog.NewConsoleWriter())
	} else {
		logger = *opts.Logger
	}
	logger = logger.With().
		Str("component", "fragmentgate").
		Str("instance", uuid.NewString()).
		Strs("params", opts.SearchParamsUsed).
		Logger()

	return &Gate{
		coord:     coord,
		used:      append([]string(nil), opts.SearchParamsUsed...),
		fallback:  opts.Fallback,
		suspend:   suspend,
		codec:     coord.Codec(),
		snapshots: snapshots,
		log:       logger,
	}, nil
}

// Pending reports whether a pending delta exists that shares at least one
// key with this gate's declared parameters. This is the flag exposed to
// descendants that render an inline stale affordance instead of relying on
// the placeholder.
func (g *Gate) Pending() bool {
	return g.coord.Pending().Touches(g.used)
}

// Fallback returns the placeholder output declared for this gate.
func (g *Gate) Fallback() render.Output {
	return g.fallback
}

// CacheSize returns the number of snapshots in this gate's cache.
func (g *Gate) CacheSize() int {
	return g.snapshots.Size()
}

// CacheKeys returns the cache keys currently held, for observability.
func (g *Gate) CacheKeys() []string {
	return g.snapshots.Keys()
}

// Render resolves the fragment for the current merged parameters. While the
// gate's declared parameters are pending and suspension is enabled, Render
// suspends: it blocks until the pending delta clears, waking through the
// coordinator's signal store. Cancelling ctx (the subtree being torn down)
// abandons the suspension, deregisters the listener, and returns ctx.Err().
//
// Once resolvable, the gate's snapshot cache wins: a cached entry for the
// current cache key is served verbatim instead of executing the fragment,
// so revisiting a combination shows the exact previously rendered result.
// On a miss the fragment runs with the parameters restricted to the
// declared names and, unless the gate is mid-transition with suspension
// disabled, the result is cached for future replays.
func (g *Gate) Render(ctx context.Context, fragment Fragment) (render.Output, error) {
	if fragment == nil {
		return render.Output{}, ErrNilFragment
	}
	if g.suspend {
		if err := g.awaitSettled(ctx); err != nil {
			return render.Output{}, err
		}
	}
	return g.renderNow(ctx, fragment)
}

// TryRender is the poll form of Render: it never blocks, returning the
// fallback and false while Render would suspend.
func (g *Gate) TryRender(ctx context.Context, fragment Fragment) (render.Output, bool, error) {
	if fragment == nil {
		return render.Output{}, false, ErrNilFragment
	}
	if g.suspend && g.Pending() {
		return g.fallback, false, nil
	}
	out, err := g.renderNow(ctx, fragment)
	if err != nil {
		return render.Output{}, false, err
	}
	return out, true, nil
}

func (g *Gate) renderNow(ctx context.Context, fragment Fragment) (render.Output, error) {
	merged := g.coord.Params()
	key := g.codec.CacheKey(merged, g.used)

	if snapshot, ok := g.snapshots.Get(key); ok {
		g.log.Debug().Str("cache_key", key).Msg("cache hit")
		return render.Decode(snapshot)
	}

	scoped := scopeParams(merged, g.used)

	if g.Pending() {
		// Mid-transition with suspension disabled: the value is not clean,
		// render it but keep it out of the cache.
		g.log.Debug().Str("cache_key", key).Msg("uncached render during transition")
		return fragment(ctx, scoped)
	}

	snapshot, err := g.snapshots.GetOrFetch(ctx, key, func(ctx context.Context) ([]byte, error) {
		out, err := fragment(ctx, scoped)
		if err != nil {
			return nil, err
		}
		return render.Encode(out)
	})
	if err != nil {
		return render.Output{}, err
	}
	g.log.Debug().Str("cache_key", key).Msg("cache miss, fragment output cached")
	return render.Decode(snapshot)
}

// awaitSettled blocks while the pending delta intersects the declared
// parameters. The listener only signals; the loop re-reads the store, so a
// stale wakeup from a superseded delta is harmless.
func (g *Gate) awaitSettled(ctx context.Context) error {
	store := g.coord.PendingStore()
	if !store.Get().Touches(g.used) {
		return nil
	}

	notify := make(chan struct{}, 1)
	unsubscribe := store.Subscribe(func(*coordinator.Delta) {
		select {
		case notify <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	g.log.Debug().Msg("fragment suspended")
	for {
		// Re-check after subscribing so a clear racing the registration is
		// never missed.
		if !store.Get().Touches(g.used) {
			g.log.Debug().Msg("fragment resumed")
			return nil
		}
		select {
		case <-notify:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// scopeParams restricts merged to the declared names, dropping unset
// entries so fragments see exactly what their cache key encodes.
func scopeParams(merged searchparams.ParamMap, used []string) searchparams.ParamMap {
	scoped := make(searchparams.ParamMap, len(used))
	for _, name := range used {
		if merged.Has(name) {
			scoped.SetList(name, merged[name]...)
		}
	}
	return scoped
}
