package counters

import (
	"testing"

	"upside-down-research.com/oss/searchengine/internal/action"
)

func TestFingerprintIgnoresMapIterationOrder(t *testing.T) {
	a := State{Counters: map[string]int32{"c0": 1, "c1": 2}}
	b := State{Counters: map[string]int32{"c1": 2, "c0": 1}}
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("Expected states with identical counter values to fingerprint identically")
	}
}

func TestFingerprintDiffersOnDifferentValues(t *testing.T) {
	a := State{Counters: map[string]int32{"c0": 1}}
	b := State{Counters: map[string]int32{"c0": 2}}
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("Expected states with differing counter values to fingerprint differently")
	}
}

func TestPossibleActionsRespectsBounds(t *testing.T) {
	p := Problem{MaxValue: 3}

	t.Run("at minimum, only increase is offered", func(t *testing.T) {
		s := State{Counters: map[string]int32{"c0": 1}}
		actions := p.PossibleActions(s)
		if len(actions) != 1 || actions[0].Name() != increaseName("c0") {
			t.Errorf("Expected only increase_counterc0 at the floor, got %v", names(actions))
		}
	})

	t.Run("at maximum, only decrease is offered", func(t *testing.T) {
		s := State{Counters: map[string]int32{"c0": 3}}
		actions := p.PossibleActions(s)
		if len(actions) != 1 || actions[0].Name() != decreaseName("c0") {
			t.Errorf("Expected only decrease_counterc0 at the ceiling, got %v", names(actions))
		}
	})

	t.Run("in the middle, both are offered", func(t *testing.T) {
		s := State{Counters: map[string]int32{"c0": 2}}
		actions := p.PossibleActions(s)
		if len(actions) != 2 {
			t.Errorf("Expected 2 actions in the middle of the range, got %d", len(actions))
		}
	})
}

func TestApplyAppliesTheNamedDelta(t *testing.T) {
	p := Problem{MaxValue: 10}
	s := State{Counters: map[string]int32{"c0": 1}}

	actions := p.PossibleActions(s)
	var inc action.Action
	for _, a := range actions {
		if a.Name() == increaseName("c0") {
			inc = a
		}
	}

	next := p.Apply(s, inc)
	if next.Counters["c0"] != 2 {
		t.Errorf("Expected c0 == 2 after increase, got %d", next.Counters["c0"])
	}
	if s.Counters["c0"] != 1 {
		t.Error("Expected Apply not to mutate the original state")
	}
}

func TestConditionOperators(t *testing.T) {
	s := State{Counters: map[string]int32{"a": 2, "b": 3}}
	left := LinearExpr{Terms: []Term{{Coefficient: 1, Counter: "a"}}}
	right := LinearExpr{Terms: []Term{{Coefficient: 1, Counter: "b"}}}

	cases := []struct {
		op   string
		want bool
	}{
		{"<=", true}, {"<", true}, {">=", false}, {">", false}, {"=", false},
	}
	for _, c := range cases {
		cond := Condition{Left: left, Operator: c.op, Right: right}
		if got := cond.satisfied(s); got != c.want {
			t.Errorf("Condition{a %s b} with a=2,b=3: got %v, want %v", c.op, got, c.want)
		}
	}
}

func names(actions []action.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.Name()
	}
	return out
}
