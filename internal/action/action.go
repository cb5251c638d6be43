// Package action defines the domain-independent Action record: a named,
// costed, parameterized operator that every Problem implementation emits
// from PossibleActions and consumes in Apply.
package action

import (
	"sort"
	"strconv"
	"strings"

	"upside-down-research.com/oss/searchengine/internal/value"
)

// Action is an immutable operator record. Name is the dispatch key a domain
// uses to select its apply-logic; Parameters carry the bound arguments; Cost
// contributes additively to a search node's g-value. Two actions differing
// only in Parameters are distinct — equality compares all three fields.
type Action struct {
	name       string
	cost       int
	parameters map[string]value.Value
}

// New builds an Action. Cost must be non-negative; a negative cost would
// break the monotonic g-value invariant the arena relies on, so New clamps
// it to zero rather than silently corrupting search results.
func New(name string, cost int, parameters map[string]value.Value) Action {
	if cost < 0 {
		cost = 0
	}
	cp := make(map[string]value.Value, len(parameters))
	for k, v := range parameters {
		cp[k] = v
	}
	return Action{name: name, cost: cost, parameters: cp}
}

// Name returns the action's dispatch key.
func (a Action) Name() string { return a.name }

// Cost returns the action's non-negative cost contribution to g.
func (a Action) Cost() int { return a.cost }

// Param looks up a single bound parameter by name.
func (a Action) Param(key string) (value.Value, bool) {
	v, ok := a.parameters[key]
	return v, ok
}

// Parameters returns a defensive copy of the bound parameter map.
func (a Action) Parameters() map[string]value.Value {
	cp := make(map[string]value.Value, len(a.parameters))
	for k, v := range a.parameters {
		cp[k] = v
	}
	return cp
}

// Equal compares name, cost, and every parameter structurally.
func (a Action) Equal(o Action) bool {
	if a.name != o.name || a.cost != o.cost {
		return false
	}
	if len(a.parameters) != len(o.parameters) {
		return false
	}
	for k, v := range a.parameters {
		ov, ok := o.parameters[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// String renders "name(cost)" for logging; parameters are omitted since
// domains may bind large containers that aren't useful in a log line.
func (a Action) String() string {
	var b strings.Builder
	b.WriteString(a.name)
	b.WriteByte('(')
	b.WriteString(strconv.Itoa(a.cost))
	b.WriteByte(')')
	return b.String()
}

// Names extracts the Name of each Action in order, the shape the solve
// façade prints on success (spec: "Solution found with actions: [...]").
func Names(actions []Action) []string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.name
	}
	return names
}

// TotalCost sums the Cost of every Action in the slice.
func TotalCost(actions []Action) int {
	total := 0
	for _, a := range actions {
		total += a.cost
	}
	return total
}

// sortedParamKeys is used by domains that need deterministic iteration over
// an Action's parameters (e.g. when building a canonical fingerprint).
func sortedParamKeys(m map[string]value.Value) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

// SortedParamKeys returns the action's parameter keys in sorted order.
func (a Action) SortedParamKeys() []string {
	return sortedParamKeys(a.parameters)
}
