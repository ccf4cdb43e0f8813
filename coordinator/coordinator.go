package coordinator

import (
	"context"
	"sort"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rs/zerolog"

	"github.com/MananTank/responsive-rsc/router"
	"github.com/MananTank/responsive-rsc/searchparams"
	"github.com/MananTank/responsive-rsc/signal"
)

// Delta is the subset of parameters currently in flight between "requested"
// and "confirmed by the server". Changed maps each affected name to its new
// value; a name that became unset maps to nil. A nil *Delta means no
// navigation is in flight.
type Delta struct {
	Changed searchparams.ParamMap
}

// Touches reports whether the delta affects any of the given names.
// A nil delta touches nothing.
func (d *Delta) Touches(names []string) bool {
	if d == nil {
		return false
	}
	for _, name := range names {
		if _, ok := d.Changed[name]; ok {
			return true
		}
	}
	return false
}

// Keys returns the affected parameter names, sorted.
func (d *Delta) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, 0, len(d.Changed))
	for name := range d.Changed {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}

// Config configures a Coordinator.
type Config struct {
	// Initial is the server-confirmed parameter snapshot for the current
	// navigation (the page-provided base).
	Initial searchparams.ParamMap
	// Router drives URL replacement navigations.
	Router router.Router
	// History swaps the visible URL without a navigation, for the
	// instant-replay path.
	History router.History
	// Codec builds visited keys. The default codec is used if nil.
	Codec searchparams.KeyCodec
	// Logger to use. A console logger is used if nil.
	Logger *zerolog.Logger
}

// Validate checks that the required collaborators are present.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Router, validation.Required),
		validation.Field(&c.History, validation.Required),
	)
}

// Coordinator owns the authoritative merged parameter state for one page
// mount: the page-provided base, the client override, the session's
// visited-combination set, and the pending-delta signal every gate
// observes. One coordinator per page mount.
type Coordinator struct {
	mu       sync.Mutex
	base     searchparams.ParamMap
	override searchparams.ParamMap
	merged   searchparams.ParamMap

	visited *xsync.MapOf[string, struct{}]
	pending *signal.Store[*Delta]
	tr      transition

	rt    router.Router
	hist  router.History
	codec searchparams.KeyCodec
	log   zerolog.Logger
}

// New creates a coordinator from the validated config.
func New(cfg Config) (*Coordinator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	codec := cfg.Codec
	if codec == nil {
		codec = searchparams.NewDefaultKeyCodec()
	}

	var logger zerolog.Logger
	if cfg.Logger == nil {
		logger = zerolog.New(zerolog.NewConsoleWriter())
	} else {
		logger = *cfg.Logger
	}
	logger = logger.With().
		Str("component", "coordinator").
		Str("instance", uuid.NewString()).
		Logger()

	base := cfg.Initial.Clone()
	visited := xsync.NewMapOf[string, struct{}]()
	// The initial combination was already fetched by the page itself.
	visited.Store(codec.VisitedKey(base), struct{}{})

	return &Coordinator{
		base:     base,
		override: searchparams.ParamMap{},
		merged:   base.Clone(),
		visited:  visited,
		pending:  signal.New[*Delta](nil),
		rt:       cfg.Router,
		hist:     cfg.History,
		codec:    codec,
		log:      logger,
	}, nil
}

// Params returns a copy of the current merged parameters: the page base
// overridden by the client override.
func (c *Coordinator) Params() searchparams.ParamMap {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.merged.Clone()
}

// Confirm installs a new server-confirmed snapshot, typically after a
// completed navigation delivered fresh page parameters. The merged view is
// recomputed so the base-overridden-by-override invariant holds.
func (c *Coordinator) Confirm(base searchparams.ParamMap) {
	c.mu.Lock()
	c.base = base.Clone()
	c.merged = searchparams.Merge(c.base, c.override)
	c.mu.Unlock()
	c.log.Debug().Msg("server snapshot confirmed")
}

// Pending returns the current pending delta, or nil when no navigation is
// in flight.
func (c *Coordinator) Pending() *Delta {
	return c.pending.Get()
}

// PendingStore exposes the observable pending-delta signal so gates can
// subscribe for resumption. The store is owned by this coordinator and
// shared by every gate under it.
func (c *Coordinator) PendingStore() *signal.Store[*Delta] {
	return c.pending
}

// Codec returns the key codec this coordinator builds visited keys with.
// Gates derive their cache keys through the same codec so the two key
// spaces never diverge.
func (c *Coordinator) Codec() searchparams.KeyCodec {
	return c.codec
}

// Navigating reports whether a replace transition is still in flight.
func (c *Coordinator) Navigating() bool {
	return c.tr.inFlight()
}

// VisitedCount returns how many distinct parameter combinations have been
// requested this session.
func (c *Coordinator) VisitedCount() int {
	return c.visited.Size()
}

// apply runs the setter algorithm. The override is installed synchronously
// so the triggering control reflects the new value before any async work,
// the pending delta is published before the navigation is requested, and
// the delta is cleared only by transition settlement.
func (c *Coordinator) apply(resolve func(searchparams.ParamMap) searchparams.ParamMap) {
	c.mu.Lock()
	prev := c.merged
	next := resolve(c.merged.Clone())
	c.override = next.Clone()
	c.merged = searchparams.Merge(c.base, c.override)
	merged := c.merged.Clone()
	c.mu.Unlock()

	key := c.codec.VisitedKey(merged)
	path := searchparams.PathWithQuery(c.rt.CurrentPath(), merged)

	if _, seen := c.visited.LoadOrStore(key, struct{}{}); seen {
		// Instant replay: combination already fetched this session, only the
		// visible URL needs to catch up.
		c.log.Debug().Str("visited_key", key).Msg("replaying visited combination")
		c.hist.ReplaceState(path)
		return
	}

	delta := &Delta{Changed: searchparams.Diff(prev, merged)}
	// Register the new generation before the delta becomes visible, so a
	// previous transition settling mid-publish observes itself superseded
	// instead of clearing the fresh delta.
	tok := c.tr.begin()
	c.pending.Set(delta)
	c.log.Debug().
		Strs("changed", delta.Keys()).
		Str("visited_key", key).
		Msg("pending delta published")

	c.tr.run(tok,
		func(ctx context.Context) error {
			return c.rt.Replace(ctx, path, router.ReplaceOptions{Scroll: false})
		},
		func(err error, superseded bool) {
			if err != nil {
				c.log.Error().Err(err).Str("path", path).Msg("navigation replace failed")
			}
			if superseded {
				return
			}
			// Cleared on settlement no matter the outcome, so gates can
			// never be left suspended by a failed navigation.
			c.pending.Set(nil)
			c.log.Debug().Msg("pending delta cleared")
		},
	)
}
