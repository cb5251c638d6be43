// Package counters is a reference Problem implementation: a small set of
// bounded integer counters, with goal conditions expressed as linear
// inequalities between counters. It exists only as a test/demo fixture —
// ported from original_source/search_core/src/problems/counters_problem,
// matching spec.md §8 scenario 1 ("c0=1, c1=1, c2=1; goal c0+1<=c1 AND
// c1+1<=c2; max value 10") — and is never imported by the core packages.
package counters

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"upside-down-research.com/oss/searchengine/internal/action"
	"upside-down-research.com/oss/searchengine/internal/value"
)

// State holds the current value of every counter. Apply always rebuilds the
// map fresh rather than mutating the receiver, so the arena's "states never
// mutate in place" invariant holds despite State embedding a map.
type State struct {
	Counters map[string]int32
}

// Fingerprint hashes a canonical (sorted-key) encoding of the counters, so
// two states with the same values fingerprint identically regardless of map
// iteration order.
func (s State) Fingerprint() uint64 {
	names := make([]string, 0, len(s.Counters))
	for n := range s.Counters {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, n := range names {
		fmt.Fprintf(&b, "%s=%d;", n, s.Counters[n])
	}
	return value.NewText(b.String()).Hash()
}

func (s State) clone() State {
	cp := make(map[string]int32, len(s.Counters))
	for k, v := range s.Counters {
		cp[k] = v
	}
	return State{Counters: cp}
}

// LinearExpr is a sum of coefficient*counter terms plus a constant, the
// building block for goal conditions (ported from the reference engine's
// LinearExpr/Condition/Goal types).
type LinearExpr struct {
	Terms    []Term
	Constant int32
}

// Term is one coefficient*counter addend of a LinearExpr.
type Term struct {
	Coefficient int32
	Counter     string
}

func (e LinearExpr) evaluate(s State) int32 {
	sum := e.Constant
	for _, t := range e.Terms {
		v, ok := s.Counters[t.Counter]
		if !ok {
			panic(fmt.Sprintf("counters: unknown counter %q in goal expression", t.Counter))
		}
		sum += t.Coefficient * v
	}
	return sum
}

// Condition compares two LinearExprs with a relational operator.
type Condition struct {
	Left     LinearExpr
	Operator string // one of "=", "<=", "<", ">=", ">"
	Right    LinearExpr
}

func (c Condition) satisfied(s State) bool {
	l, r := c.Left.evaluate(s), c.Right.evaluate(s)
	switch c.Operator {
	case "=":
		return l == r
	case "<=":
		return l <= r
	case "<":
		return l < r
	case ">=":
		return l >= r
	case ">":
		return l > r
	default:
		panic(fmt.Sprintf("counters: unknown operator %q", c.Operator))
	}
}

// Goal is a conjunction of Conditions.
type Goal struct {
	Conditions []Condition
}

func (g Goal) satisfied(s State) bool {
	for _, c := range g.Conditions {
		if !c.satisfied(s) {
			return false
		}
	}
	return true
}

// Problem is the counters domain's Problem[State] realization.
type Problem struct {
	MaxValue int32
	Goal     Goal
}

const (
	paramCounter = "counter"
)

func increaseName(counter string) string { return "increase_counter" + counter }
func decreaseName(counter string) string { return "decrease_counter" + counter }

// PossibleActions returns, for every counter, an increase action if it has
// room below MaxValue and a decrease action if it can go no lower than 1,
// matching the reference domain's bounds exactly.
func (p Problem) PossibleActions(s State) []action.Action {
	names := make([]string, 0, len(s.Counters))
	for n := range s.Counters {
		names = append(names, n)
	}
	sort.Strings(names)

	var actions []action.Action
	for _, n := range names {
		v := s.Counters[n]
		if v+1 <= p.MaxValue {
			actions = append(actions, action.New(increaseName(n), 1, map[string]value.Value{
				paramCounter: value.NewText(n),
			}))
		}
		if v-1 >= 1 {
			actions = append(actions, action.New(decreaseName(n), 1, map[string]value.Value{
				paramCounter: value.NewText(n),
			}))
		}
	}
	return actions
}

// Apply increments or decrements the named counter, depending on the
// action's name prefix, exactly mirroring the Rust reference's dispatch.
func (p Problem) Apply(s State, act action.Action) State {
	counterVal, ok := act.Param(paramCounter)
	if !ok {
		panic(fmt.Sprintf("counters: action %q missing %q parameter", act.Name(), paramCounter))
	}
	counter, ok := counterVal.Text()
	if !ok {
		panic(fmt.Sprintf("counters: action %q has non-text %q parameter", act.Name(), paramCounter))
	}

	next := s.clone()
	switch {
	case strings.HasPrefix(act.Name(), "increase_"):
		next.Counters[counter]++
	case strings.HasPrefix(act.Name(), "decrease_"):
		next.Counters[counter]--
	default:
		panic(fmt.Sprintf("counters: unknown action type %q", act.Name()))
	}
	return next
}

// IsGoal delegates to the Goal's conjunction of conditions.
func (p Problem) IsGoal(s State) bool { return p.Goal.satisfied(s) }

// Heuristic is the zero heuristic: admissible (and trivially consistent),
// reducing A* to uniform-cost search. spec.md §8 scenario 5 exercises this
// exact configuration to confirm A*-with-h=0 matches BFS's optimal cost.
func (p Problem) Heuristic(State) float64 { return 0 }

// Fingerprint wraps State.Fingerprint as a plain function, the
// search.Fingerprint[State] that search.Run and solve.Solve take.
func Fingerprint(s State) uint64 { return s.Fingerprint() }

// parseOffsetCounter parses the integer <offset> token (such as "1" or "+3")
// of a goal condition string of the form "<left> <op1> <offset> <op2> <right>".
func parseOffsetCounter(tok string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("counters: invalid integer token %q: %w", tok, err)
	}
	return int32(n), nil
}
