// Package problem defines the single extension point the search core
// consumes: the Problem contract a domain implements, and the State
// constraint the arena and driver require of a domain's state type.
package problem

import "upside-down-research.com/oss/searchengine/internal/action"

// State is the constraint the core places on a domain's state type. The
// core never compares two States with Go's == (equality/dedup is handled
// entirely through the fingerprint function a domain passes to search.Run
// separately, not through the type system), so State only needs to be a
// concrete, copyable Go type — any struct, array, map, or slice works. The
// arena stores states by value in its parallel slice; for a plain struct or
// array that copy-on-append already gives "the arena owns an independent
// copy per node" for free. A domain whose State embeds a slice or map field
// must copy that field on every Apply rather than mutating it in place,
// since a slice/map header copy still aliases the same backing storage.
type State = any

// Problem is the contract a domain satisfies. The core never branches on
// domain identity; the generic search driver in package search is
// parameterized over (S State, P Problem[S]) and never sees a concrete
// domain type.
type Problem[S State] interface {
	// PossibleActions returns every Action applicable in state. Order need
	// not be deterministic for correctness but should be for reproducible
	// traces. An empty slice is a valid dead end.
	PossibleActions(state S) []action.Action

	// Apply returns a new state reflecting act's effect on state. It must
	// not mutate state. act is assumed to have come from PossibleActions(state)
	// (or be semantically equivalent); Apply may panic on a foreign action.
	Apply(state S, act action.Action) S

	// IsGoal is a total function over S.
	IsGoal(state S) bool

	// Heuristic returns a non-negative estimate of the remaining cost to a
	// goal. Zero is always a valid heuristic (reduces A* to uniform-cost
	// search). For A* optimality the domain must supply an admissible,
	// preferably consistent, heuristic — the core does not enforce this.
	Heuristic(state S) float64
}

// Loader constructs a domain instance from a filesystem path, returning the
// initial state and the Problem that interprets it. A returned error is the
// idiomatic-Go rendering of the reference engine's "loader fails fatally":
// the caller (the solve façade) treats it as a fatal abort rather than a
// recoverable search outcome.
type Loader[S State, P Problem[S]] func(path string) (S, P, error)
