// Package fragmentgate provides the cache-and-suspend wrapper that makes a
// server-rendered fragment behave like a client-cached one.
//
// # Overview
//
// A Gate wraps one responsive fragment site. It declares which navigation
// parameters the fragment depends on, and on every render:
//
//  1. suspends while any declared parameter is pending (an unseen
//     combination is in flight), resuming the instant the coordinator
//     clears the pending delta
//  2. computes the fragment's cache key from the merged parameters
//     restricted to the declared names
//  3. serves a cached snapshot verbatim on a hit, without executing the
//     fragment, so switching back to a visited combination shows the exact
//     previously rendered result
//  4. on a miss, executes the fragment and caches the encoded result
//
// # Basic usage
//
//	gate, err := fragmentgate.New(coord, fragmentgate.Options{
//		SearchParamsUsed: []string{"from", "to"},
//		Fallback:         render.Output{HTML: "<p>loading…</p>"},
//	})
//	if err != nil {
//		return err
//	}
//
//	out, err := gate.Render(ctx, func(ctx context.Context, p searchparams.ParamMap) (render.Output, error) {
//		return fetchDashboard(ctx, p.Get("from"), p.Get("to"))
//	})
//
// Render blocks while suspended; cancel ctx to abandon the wait when the
// subtree is torn down. TryRender is the non-blocking form: it returns the
// declared fallback and false whenever Render would suspend, for callers
// on a poll-based scheduler.
//
// # Suspension semantics
//
// A gate declaring {"a"} suspends iff the pending delta contains "a"; a
// delta touching only other parameters never suspends it. Suspension waits
// on the coordinator's pending-delta store, so all suspended gates resume
// in the same scheduling pass that clears the delta. Set
// Options.SuspendOnTransition to false to render through transitions
// instead; mid-transition renders are served uncached since they are not a
// clean value to keep.
//
// # Cache behavior
//
// Each gate owns its snapshot cache exclusively, keyed by the canonical
// form of its declared parameter subset. Entries are msgpack-encoded
// render.Output snapshots and accumulate for the life of the gate:
// unbounded growth across distinct visited combinations is the accepted
// tradeoff for session-scoped instant replay. Concurrent misses for the
// same key share one fragment execution.
package fragmentgate
