// Package searchtree implements the arena: an index-addressed, append-only
// store of tree topology (parent, children, action, g-cost) running in
// lockstep with a parallel store of state payloads. Nodes and states are
// never removed or mutated after insertion — the tree only grows.
package searchtree

import (
	"upside-down-research.com/oss/searchengine/internal/action"
	"upside-down-research.com/oss/searchengine/internal/problem"
)

// Node holds one arena entry's topology. The root (index 0) has no Parent
// and no Action; its Cost is 0.
type Node struct {
	Parent    int // -1 for the root
	Children  []int
	Action    action.Action
	HasAction bool
	Cost      int
}

// Tree is the two-parallel-arena store described in the data model: nodes[i]
// and states[i] share an index, both grow append-only, index 0 is the root.
type Tree[S problem.State] struct {
	nodes  []Node
	states []S
}

// New creates an arena with one root node at index 0 holding initial.
func New[S problem.State](initial S) *Tree[S] {
	return &Tree[S]{
		nodes:  []Node{{Parent: -1}},
		states: []S{initial},
	}
}

// Len returns the number of entries in the arena (nodes and states are
// always the same length).
func (t *Tree[S]) Len() int { return len(t.nodes) }

// Node returns the topology record at idx.
func (t *Tree[S]) Node(idx int) Node { return t.nodes[idx] }

// State returns the state payload at idx.
func (t *Tree[S]) State(idx int) S { return t.states[idx] }

// AddChild computes apply(states[parent], act), appends the resulting
// topology/state pair to the arena, links it into parent's Children, and
// returns the new index.
func (t *Tree[S]) AddChild(parent int, act action.Action, apply func(S, action.Action) S) int {
	newState := apply(t.states[parent], act)
	newCost := t.nodes[parent].Cost + act.Cost()

	idx := len(t.nodes)
	t.nodes = append(t.nodes, Node{
		Parent:    parent,
		Action:    act,
		HasAction: true,
		Cost:      newCost,
	})
	t.states = append(t.states, newState)
	t.nodes[parent].Children = append(t.nodes[parent].Children, idx)
	return idx
}

// Expand calls possibleActions on states[idx] and AddChild for each result,
// preserving order, returning the child indices produced.
func (t *Tree[S]) Expand(idx int, possibleActions func(S) []action.Action, apply func(S, action.Action) S) []int {
	state := t.states[idx]
	actions := possibleActions(state)
	children := make([]int, 0, len(actions))
	for _, act := range actions {
		children = append(children, t.AddChild(idx, act, apply))
	}
	return children
}

// Trace walks parent pointers from idx to the root, collecting each node's
// Action, then reverses — the root's absent action is skipped.
func (t *Tree[S]) Trace(idx int) []action.Action {
	var actions []action.Action
	for cur := idx; cur != -1; cur = t.nodes[cur].Parent {
		n := t.nodes[cur]
		if n.HasAction {
			actions = append(actions, n.Action)
		}
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	return actions
}
