// Package search implements the generic best-first expansion loop: it
// couples the arena, the frontier, the closed set, and a Problem's
// callbacks, following the reference engine's generic_search exactly
// (see original_source/search_core/src/search/search.rs).
package search

import (
	"errors"
	"math"

	"upside-down-research.com/oss/searchengine/internal/action"
	"upside-down-research.com/oss/searchengine/internal/closedset"
	"upside-down-research.com/oss/searchengine/internal/frontier"
	"upside-down-research.com/oss/searchengine/internal/problem"
	"upside-down-research.com/oss/searchengine/internal/searchtree"
)

// ErrNoSolution is returned when the frontier empties without a goal state
// ever being generated.
var ErrNoSolution = errors.New("no solution found")

// ErrIterationLimit is returned when a configured pop-count bound is
// exceeded before a goal is found, guarding against unbounded search on a
// domain with no reachable goal.
var ErrIterationLimit = errors.New("search: iteration limit exceeded")

// Result carries the plan and the expansion statistics spec.md §6 asks the
// façade to print alongside it.
type Result struct {
	Actions        []action.Action
	Cost           int
	NodesGenerated int // total successors generated, including duplicates
	UniqueAdmitted int // successors newly admitted to the closed set
}

// Fingerprint is the function the driver uses to compute a state's
// closed-set key. Domains typically implement this by hashing a canonical
// encoding of their own fields; see closedset.Hash64 for a helper.
type Fingerprint[S problem.State] func(S) uint64

// Run executes the generic best-first search described in spec.md §4.6:
//
//  1. seed the frontier with the root, g=0, h=+Inf so it is the only
//     candidate regardless of strategy (the root is otherwise the only
//     entry, so this placeholder never actually competes against anything);
//  2. pop, expand via the arena, fingerprint each successor and skip it if
//     already closed, goal-test, and insert into the frontier with its
//     (g, h) pair;
//  3. repeat until the frontier empties (no solution) or a goal is found.
//
// Goal-checking happens at successor-generation time, not at pop time —
// this means an initial state that is already a goal is NOT detected as
// trivially solved: the root is still expanded once, and only a successor
// of the root can satisfy IsGoal. This mirrors the reference engine
// verbatim (spec.md §8, the "initial-is-goal anomaly"); a domain whose
// goal is only true at the root must expose a self-loop action for this
// driver to find a (possibly zero-cost) plan at all.
//
// maxIterations, if given and positive, bounds the number of frontier pops
// before the search aborts with ErrIterationLimit; omitted or non-positive
// means unbounded.
func Run[S problem.State, P problem.Problem[S]](
	tree *searchtree.Tree[S],
	p P,
	fr frontier.Frontier,
	fingerprint Fingerprint[S],
	maxIterations ...int,
) (Result, error) {
	limit := 0
	if len(maxIterations) > 0 {
		limit = maxIterations[0]
	}

	fr.Insert(0, 0, math.MaxFloat64)
	closed := closedset.New()

	var result Result
	iterations := 0

	for {
		cur, ok := fr.Pop()
		if !ok {
			return result, ErrNoSolution
		}

		iterations++
		if limit > 0 && iterations > limit {
			return result, ErrIterationLimit
		}

		children := tree.Expand(cur, p.PossibleActions, p.Apply)
		for _, succ := range children {
			result.NodesGenerated++

			state := tree.State(succ)
			// A state is closed on first generation and never reopened, even
			// if a cheaper path to it turns up later. That is optimal for BFS
			// under uniform cost and for A* with a consistent heuristic, but
			// not for A* with a heuristic that is only admissible.
			if !closed.Insert(fingerprint(state)) {
				continue
			}
			result.UniqueAdmitted++

			if p.IsGoal(state) {
				result.Actions = tree.Trace(succ)
				result.Cost = tree.Node(succ).Cost
				return result, nil
			}

			fr.Insert(succ, tree.Node(succ).Cost, p.Heuristic(state))
		}
	}
}
