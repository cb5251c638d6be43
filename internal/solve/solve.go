// Package solve assembles the core (arena, frontier, driver) given a
// problem loader, an input path, and a strategy name, and reports the plan,
// cost, and expansion statistics — the "Solve façade" of spec.md §4.7.
package solve

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"upside-down-research.com/oss/searchengine/internal/action"
	"upside-down-research.com/oss/searchengine/internal/frontier"
	"upside-down-research.com/oss/searchengine/internal/o11y"
	"upside-down-research.com/oss/searchengine/internal/problem"
	"upside-down-research.com/oss/searchengine/internal/search"
	"upside-down-research.com/oss/searchengine/internal/searchtree"
)

// ErrNoSolution is re-exported so callers need not import internal/search.
var ErrNoSolution = search.ErrNoSolution

// Report is what a caller gets back on success: the plan plus the
// statistics spec.md §6 names.
type Report struct {
	Domain         string
	Strategy       string
	RunID          string
	Actions        []action.Action
	Cost           int
	Length         int
	NodesGenerated int
	UniqueAdmitted int
}

type options struct {
	logger        *log.Logger
	dumpDir       string
	recorder      o11y.Recorder
	maxIterations int
}

// Option configures a Solve call.
type Option func(*options)

// WithLogger overrides the default charmbracelet/log logger.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithDumpDir enables an arena.json dump under dir/<runID>/ for offline
// inspection of the search tree after the run completes.
func WithDumpDir(dir string) Option {
	return func(o *options) { o.dumpDir = dir }
}

// WithRecorder attaches an o11y.Recorder; the default is a no-op.
func WithRecorder(r o11y.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// WithMaxIterations bounds the number of frontier pops before a run aborts
// with search.ErrIterationLimit. Zero or omitted means unbounded.
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIterations = n }
}

// Solve loads a domain instance from path via loader, runs the named
// strategy, prints the spec.md §6 output, and returns a Report. fingerprint
// computes a state's closed-set key (see package search).
func Solve[S problem.State, P problem.Problem[S]](
	ctx context.Context,
	domainName, path, strategy string,
	loader problem.Loader[S, P],
	fingerprint search.Fingerprint[S],
	opts ...Option,
) (Report, error) {
	o := options{logger: log.Default(), recorder: o11y.NoopRecorder{}}
	for _, apply := range opts {
		apply(&o)
	}

	runID := uuid.NewString()
	o.logger.Info("loading problem", "domain", domainName, "path", path, "run_id", runID)

	initial, p, err := loader(path)
	if err != nil {
		return Report{}, fmt.Errorf("solve: load %q: %w", path, err)
	}

	fr, err := frontier.New(strategy)
	if err != nil {
		return Report{}, fmt.Errorf("solve: %w", err)
	}

	tree := searchtree.New(initial)
	result, err := search.Run[S, P](tree, p, fr, fingerprint, o.maxIterations)

	report := Report{
		Domain:         domainName,
		Strategy:       strategy,
		RunID:          runID,
		Actions:        result.Actions,
		Cost:           result.Cost,
		Length:         len(result.Actions),
		NodesGenerated: result.NodesGenerated,
		UniqueAdmitted: result.UniqueAdmitted,
	}

	if o.dumpDir != "" {
		if dumpErr := tree.SaveArena(o.dumpDir, runID); dumpErr != nil {
			o.logger.Warn("failed to write arena dump", "error", dumpErr)
		}
	}

	o.recorder.RecordRun(ctx, runID, o11y.RunStats{
		Strategy:       strategy,
		Domain:         domainName,
		NodesGenerated: result.NodesGenerated,
		UniqueAdmitted: result.UniqueAdmitted,
		PlanLength:     report.Length,
		PlanCost:       report.Cost,
		Solved:         err == nil,
	})

	if err != nil {
		if errors.Is(err, search.ErrNoSolution) {
			fmt.Printf("Nodes generated: %d, unique admitted: %d\n", result.NodesGenerated, result.UniqueAdmitted)
			fmt.Println("Search failed: No solution found")
			return report, fmt.Errorf("solve: domain %q strategy %q: %w", domainName, strategy, ErrNoSolution)
		}
		return report, fmt.Errorf("solve: %w", err)
	}

	fmt.Printf("Nodes generated: %d, unique admitted: %d\n", result.NodesGenerated, result.UniqueAdmitted)
	fmt.Printf("Solution found with actions: %v\n", action.Names(result.Actions))
	fmt.Printf("Total cost of actions: %d\n", report.Cost)
	fmt.Printf("Total length of the solution: %d\n", report.Length)

	return report, nil
}
