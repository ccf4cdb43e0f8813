// Package searchparams models the flat navigation-parameter state a page
// encodes in its address, and the canonical string keys derived from it.
//
// # Overview
//
// The package exports:
//
//   - ParamMap: parameter name to ordered string values, with unset-value
//     semantics shared by every operation
//   - Merge: the page-provided base overridden by client overrides
//   - Diff: the changed subset between two merged snapshots, using deep
//     positional equality for list values
//   - KeyCodec: deterministic visited keys and per-fragment cache keys
//   - EncodeQuery/DecodeQuery/PathWithQuery: the URL query wire form
//
// # Key canonicalization
//
// Both key kinds drop unset entries, sort by parameter name, and join
// key=value pairs with "&", so the same effective parameter subset always
// produces the same key regardless of how the map was built:
//
//	codec := searchparams.NewDefaultKeyCodec()
//	codec.VisitedKey(m)              // all set parameters
//	codec.CacheKey(m, []string{"from", "to"})
//
// A cache key restricted to {"from", "to"} over a map holding
// from=2024-01-01 and to=2024-01-31 is exactly
// "from=2024-01-01&to=2024-01-31".
//
// # Unset semantics
//
// A key mapped to an empty list or to a single empty string is unset: it is
// omitted from canonical keys and from query encoding, and Diff treats it
// as equal to an absent key. Merge still lets an unset override entry
// shadow a set base value, which is how a client clears a page parameter.
package searchparams
