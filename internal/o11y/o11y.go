// Package o11y records search-run telemetry: Prometheus gauges/counters
// updated in-process (with an optional push to a Pushgateway) and an
// optional InfluxDB point per run, following the gauge-registry and
// blocking-write patterns the teacher's metric manager used for LLM call
// telemetry, retargeted from "LLM duration/counter" to "search expansion
// stats". Unlike the teacher's version, a Recorder is an explicit value
// constructed by the caller — no package-level init() reaching out to
// localhost, no hardcoded credentials, and a no-op Recorder by default so
// the CLI works with zero configuration.
package o11y

import (
	"context"
	"fmt"
	"sync"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// RunStats is the per-search data a Recorder records, matching the
// statistics spec.md §6 asks the façade to print.
type RunStats struct {
	Strategy       string
	Domain         string
	NodesGenerated int
	UniqueAdmitted int
	PlanLength     int
	PlanCost       int
	Solved         bool
}

// Recorder observes completed search runs. NoopRecorder satisfies it with
// no side effects; PrometheusRecorder additionally exposes gauges/counters
// and, if configured with a Pushgateway address, pushes them after each run.
type Recorder interface {
	RecordRun(ctx context.Context, runID string, stats RunStats)
}

// NoopRecorder discards every run; it is the Solve façade's default so
// callers that never configure an o11y.Recorder see no behavior change.
type NoopRecorder struct{}

func (NoopRecorder) RecordRun(context.Context, string, RunStats) {}

// PrometheusRecorder tracks per-(domain,strategy) gauges for the last run's
// node counts and plan cost/length, plus a monotonic counter of runs
// attempted vs. solved. If PushGatewayAddr is set, each RecordRun pushes the
// registry to that address; a push failure is logged, not fatal — metrics
// are an observability aid, never load-bearing for the search result.
type PrometheusRecorder struct {
	PushGatewayAddr string
	JobName         string

	mu             sync.Mutex
	nodesGenerated *prometheus.GaugeVec
	uniqueAdmitted *prometheus.GaugeVec
	planCost       *prometheus.GaugeVec
	planLength     *prometheus.GaugeVec
	runsTotal      *prometheus.CounterVec
	registry       *prometheus.Registry
}

// NewPrometheusRecorder builds a Recorder with its own private registry
// (never the global DefaultRegisterer, so multiple Recorders never
// collide), following the teacher's MetricManager's per-instance GaugeVec
// construction.
func NewPrometheusRecorder(pushGatewayAddr, jobName string) *PrometheusRecorder {
	labels := []string{"domain", "strategy"}
	r := &PrometheusRecorder{
		PushGatewayAddr: pushGatewayAddr,
		JobName:         jobName,
		registry:        prometheus.NewRegistry(),
		nodesGenerated: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "search_nodes_generated", Help: "Successors generated on the last run.",
		}, labels),
		uniqueAdmitted: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "search_unique_admitted", Help: "Successors newly admitted to the closed set on the last run.",
		}, labels),
		planCost: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "search_plan_cost", Help: "Total cost of the returned plan.",
		}, labels),
		planLength: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "search_plan_length", Help: "Number of actions in the returned plan.",
		}, labels),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "search_runs_total", Help: "Search runs attempted, by outcome.",
		}, append(labels, "outcome")),
	}
	r.registry.MustRegister(r.nodesGenerated, r.uniqueAdmitted, r.planCost, r.planLength, r.runsTotal)
	return r
}

// RecordRun updates the registry and, if configured, pushes it.
func (r *PrometheusRecorder) RecordRun(ctx context.Context, runID string, stats RunStats) {
	r.mu.Lock()
	defer r.mu.Unlock()

	labels := prometheus.Labels{"domain": stats.Domain, "strategy": stats.Strategy}
	r.nodesGenerated.With(labels).Set(float64(stats.NodesGenerated))
	r.uniqueAdmitted.With(labels).Set(float64(stats.UniqueAdmitted))
	r.planCost.With(labels).Set(float64(stats.PlanCost))
	r.planLength.With(labels).Set(float64(stats.PlanLength))

	outcome := "failed"
	if stats.Solved {
		outcome = "solved"
	}
	r.runsTotal.With(prometheus.Labels{"domain": stats.Domain, "strategy": stats.Strategy, "outcome": outcome}).Inc()

	if r.PushGatewayAddr == "" {
		return
	}
	pusher := push.New(r.PushGatewayAddr, r.JobName).Gatherer(r.registry).Grouping("run_id", runID)
	if err := pusher.PushContext(ctx); err != nil {
		// Observability is best-effort: a pushgateway outage must never
		// fail a search run.
		fmt.Printf("o11y: push to %s failed: %v\n", r.PushGatewayAddr, err)
	}
}

// InfluxRecorder additionally writes one point per run to an InfluxDB
// bucket, for longer-horizon trend analysis across many runs than the
// Prometheus gauges (which only ever hold the latest value) can offer.
type InfluxRecorder struct {
	URL, Token, Org, Bucket string
}

func (r InfluxRecorder) RecordRun(ctx context.Context, runID string, stats RunStats) {
	client := influxdb2.NewClient(r.URL, r.Token)
	defer client.Close()

	writeAPI := client.WriteAPIBlocking(r.Org, r.Bucket)
	point := write.NewPoint(
		"search_run",
		map[string]string{"domain": stats.Domain, "strategy": stats.Strategy, "run_id": runID},
		map[string]interface{}{
			"nodes_generated": stats.NodesGenerated,
			"unique_admitted": stats.UniqueAdmitted,
			"plan_cost":       stats.PlanCost,
			"plan_length":     stats.PlanLength,
			"solved":          stats.Solved,
		},
		time.Now(),
	)
	if err := writeAPI.WritePoint(ctx, point); err != nil {
		fmt.Printf("o11y: influx write failed: %v\n", err)
	}
}

// Multi fans a single RecordRun call out to every configured Recorder.
type Multi []Recorder

func (m Multi) RecordRun(ctx context.Context, runID string, stats RunStats) {
	for _, r := range m {
		r.RecordRun(ctx, runID, stats)
	}
}
