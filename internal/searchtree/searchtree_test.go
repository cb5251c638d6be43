package searchtree

import (
	"testing"

	"upside-down-research.com/oss/searchengine/internal/action"
)

func TestTreeGrowsAppendOnly(t *testing.T) {
	tree := New[int](0)
	if tree.Len() != 1 {
		t.Fatalf("Expected a fresh tree to have 1 entry (the root), got %d", tree.Len())
	}
	if tree.State(0) != 0 {
		t.Errorf("Expected root state 0, got %d", tree.State(0))
	}
	if tree.Node(0).Parent != -1 {
		t.Errorf("Expected root Parent == -1, got %d", tree.Node(0).Parent)
	}
}

func TestAddChildLinksParentAndAccumulatesCost(t *testing.T) {
	tree := New[int](10)
	incAction := action.New("inc", 3, nil)

	childApply := func(s int, act action.Action) int { return s + act.Cost() }
	idx := tree.AddChild(0, incAction, childApply)

	if idx != 1 {
		t.Fatalf("Expected first child at index 1, got %d", idx)
	}
	if tree.State(idx) != 13 {
		t.Errorf("Expected child state 13, got %d", tree.State(idx))
	}
	if tree.Node(idx).Cost != 3 {
		t.Errorf("Expected child cost 3, got %d", tree.Node(idx).Cost)
	}
	if tree.Node(idx).Parent != 0 {
		t.Errorf("Expected child parent 0, got %d", tree.Node(idx).Parent)
	}
	if len(tree.Node(0).Children) != 1 || tree.Node(0).Children[0] != idx {
		t.Errorf("Expected root.Children == [%d], got %v", idx, tree.Node(0).Children)
	}
}

func TestExpandPreservesOrderAndReturnsAllChildren(t *testing.T) {
	tree := New[int](0)
	actions := []action.Action{
		action.New("a", 1, nil),
		action.New("b", 2, nil),
		action.New("c", 3, nil),
	}
	possible := func(int) []action.Action { return actions }
	apply := func(s int, act action.Action) int { return s + act.Cost() }

	children := tree.Expand(0, possible, apply)
	if len(children) != 3 {
		t.Fatalf("Expected 3 children, got %d", len(children))
	}
	wantStates := []int{1, 2, 3}
	for i, idx := range children {
		if tree.State(idx) != wantStates[i] {
			t.Errorf("child %d state = %d, want %d", i, tree.State(idx), wantStates[i])
		}
	}
}

func TestTraceReconstructsActionsInOrder(t *testing.T) {
	tree := New[int](0)
	apply := func(s int, act action.Action) int { return s + act.Cost() }

	n1 := tree.AddChild(0, action.New("first", 1, nil), apply)
	n2 := tree.AddChild(n1, action.New("second", 1, nil), apply)
	n3 := tree.AddChild(n2, action.New("third", 1, nil), apply)

	trace := tree.Trace(n3)
	want := []string{"first", "second", "third"}
	if len(trace) != len(want) {
		t.Fatalf("Trace returned %d actions, want %d", len(trace), len(want))
	}
	for i, a := range trace {
		if a.Name() != want[i] {
			t.Errorf("Trace()[%d] = %q, want %q", i, a.Name(), want[i])
		}
	}
}

func TestTraceFromRootIsEmpty(t *testing.T) {
	tree := New[int](0)
	if trace := tree.Trace(0); len(trace) != 0 {
		t.Errorf("Expected empty trace from root, got %v", trace)
	}
}
