package o11y

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNoopRecorderDoesNothing(t *testing.T) {
	var r NoopRecorder
	// must not panic; there is nothing else observable about a no-op.
	r.RecordRun(context.Background(), "run-1", RunStats{Solved: true})
}

func TestPrometheusRecorderUpdatesGauges(t *testing.T) {
	r := NewPrometheusRecorder("", "searchengine")
	r.RecordRun(context.Background(), "run-1", RunStats{
		Domain: "counters", Strategy: "A*",
		NodesGenerated: 12, UniqueAdmitted: 9, PlanLength: 3, PlanCost: 3, Solved: true,
	})

	got := testutil.ToFloat64(r.nodesGenerated.WithLabelValues("counters", "A*"))
	if got != 12 {
		t.Errorf("Expected nodesGenerated gauge 12, got %v", got)
	}
	got = testutil.ToFloat64(r.planCost.WithLabelValues("counters", "A*"))
	if got != 3 {
		t.Errorf("Expected planCost gauge 3, got %v", got)
	}
}

func TestPrometheusRecorderCountsOutcomes(t *testing.T) {
	r := NewPrometheusRecorder("", "searchengine")
	r.RecordRun(context.Background(), "run-1", RunStats{Domain: "counters", Strategy: "BFS", Solved: true})
	r.RecordRun(context.Background(), "run-2", RunStats{Domain: "counters", Strategy: "BFS", Solved: false})

	solved := testutil.ToFloat64(r.runsTotal.WithLabelValues("counters", "BFS", "solved"))
	failed := testutil.ToFloat64(r.runsTotal.WithLabelValues("counters", "BFS", "failed"))
	if solved != 1 || failed != 1 {
		t.Errorf("Expected 1 solved and 1 failed run, got solved=%v failed=%v", solved, failed)
	}
}

func TestMultiFansOutToEveryRecorder(t *testing.T) {
	a := NewPrometheusRecorder("", "a")
	b := NewPrometheusRecorder("", "b")
	m := Multi{a, b}

	m.RecordRun(context.Background(), "run-1", RunStats{Domain: "counters", Strategy: "DFS", NodesGenerated: 5, Solved: true})

	if got := testutil.ToFloat64(a.nodesGenerated.WithLabelValues("counters", "DFS")); got != 5 {
		t.Errorf("Expected recorder a to observe nodesGenerated 5, got %v", got)
	}
	if got := testutil.ToFloat64(b.nodesGenerated.WithLabelValues("counters", "DFS")); got != 5 {
		t.Errorf("Expected recorder b to observe nodesGenerated 5, got %v", got)
	}
}
