// Package coordinator owns the authoritative navigation-parameter state for
// one page mount and decides, on every change, whether a combination is new
// (publish a pending delta and replace the URL through the router) or
// already visited (swap the visible URL and replay from fragment caches).
//
// # Setter algorithm
//
// Each Dispatch/Set/Update invocation:
//
//  1. resolves the requested parameter map (applying the function form to
//     the current merged parameters)
//  2. installs it as the override state synchronously, so Params reflects
//     the change before any asynchronous work starts
//  3. serializes the merged map to its canonical visited key
//  4. if the key was seen this session: updates only the visible URL via
//     History and returns, with no fetch and no pending delta
//  5. otherwise records the key, publishes the changed subset as the
//     pending delta, and starts an interruptible transition that asks the
//     Router to replace the URL without scrolling
//  6. when that transition settles (success, failure, or panic) the
//     pending delta is cleared, unless a newer transition superseded it
//
// The ordering guarantees fall out of the sequence above: override before
// pending, pending before navigation, clear only on settlement. A failed
// replace therefore cannot leave gates suspended; the visible URL may then
// disagree with the server-confirmed page, which is accepted.
//
// # Re-entrancy
//
// Dispatching again while a transition is pending computes the new delta
// from the latest merged state and overwrites the pending delta; the older
// transition is cancelled through its context and its settlement is ignored.
package coordinator
