// Package router declares the navigation layer consumed by the coordinator
// and provides an in-memory implementation for tests and examples. The real
// routing layer lives in the host environment; the coordinator only needs
// the narrow surface defined here.
package router

import "context"

// ReplaceOptions controls a Replace navigation.
type ReplaceOptions struct {
	// Scroll requests scrolling to the top after the navigation.
	Scroll bool
}

// Router is the navigation layer: it knows the current path and can replace
// it without a full reload. Replace blocks until the navigation settles and
// honors ctx cancellation, which is how an in-flight navigation is
// interrupted by a newer one.
type Router interface {
	CurrentPath() string
	Replace(ctx context.Context, path string, opts ReplaceOptions) error
}

// History mutates the visible URL without triggering a navigation. It backs
// the instant-replay path for previously visited parameter combinations.
type History interface {
	ReplaceState(path string)
}
