package coordinator

import "github.com/MananTank/responsive-rsc/searchparams"

// Update describes a requested change to the search parameters: either a
// literal replacement map or a function of the current merged parameters,
// mirroring a reducer-style state setter.
type Update interface {
	resolve(current searchparams.ParamMap) searchparams.ParamMap
}

type literalUpdate struct {
	next searchparams.ParamMap
}

func (u literalUpdate) resolve(searchparams.ParamMap) searchparams.ParamMap {
	return u.next
}

type funcUpdate struct {
	fn func(searchparams.ParamMap) searchparams.ParamMap
}

func (u funcUpdate) resolve(current searchparams.ParamMap) searchparams.ParamMap {
	return u.fn(current)
}

// Replace builds an Update that installs next as the new override state.
func Replace(next searchparams.ParamMap) Update {
	return literalUpdate{next: next}
}

// Modify builds an Update computed from the current merged parameters.
func Modify(fn func(searchparams.ParamMap) searchparams.ParamMap) Update {
	return funcUpdate{fn: fn}
}

// Setter is the write accessor handed to consumer components.
type Setter func(Update)

// Dispatch applies an Update through the setter algorithm.
func (c *Coordinator) Dispatch(u Update) {
	c.apply(u.resolve)
}

// Set replaces the override state with next.
func (c *Coordinator) Set(next searchparams.ParamMap) {
	c.Dispatch(Replace(next))
}

// Update computes the new override state from the current merged
// parameters.
func (c *Coordinator) Update(fn func(searchparams.ParamMap) searchparams.ParamMap) {
	c.Dispatch(Modify(fn))
}

// Setter returns the dispatch function as a Setter.
func (c *Coordinator) Setter() Setter {
	return c.Dispatch
}
