package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"upside-down-research.com/oss/searchengine/internal/config"
	"upside-down-research.com/oss/searchengine/internal/domains/counters"
	"upside-down-research.com/oss/searchengine/internal/domains/rushhour"
	"upside-down-research.com/oss/searchengine/internal/o11y"
	"upside-down-research.com/oss/searchengine/internal/solve"
)

// runner is a domain-erased entry point into solve.Solve[S, P]: each
// registered domain supplies one, closing over its own State/Problem type
// parameters so the CLI layer never needs generics.
type runner func(ctx context.Context, path, strategy string, opts ...solve.Option) (solve.Report, error)

var domains = map[string]runner{
	"counters": func(ctx context.Context, path, strategy string, opts ...solve.Option) (solve.Report, error) {
		return solve.Solve(ctx, "counters", path, strategy, counters.Load, counters.Fingerprint, opts...)
	},
	"rushhour": func(ctx context.Context, path, strategy string, opts ...solve.Option) (solve.Report, error) {
		return solve.Solve(ctx, "rushhour", path, strategy, rushhour.Load, rushhour.Fingerprint, opts...)
	},
}

// DomainNames lists the registered domains, in no particular order; the
// solve command uses it in its unknown-domain error.
func DomainNames() []string {
	names := make([]string, 0, len(domains))
	for n := range domains {
		names = append(names, n)
	}
	return names
}

// SolveCommand runs a search over a problem file.
type SolveCommand struct {
	ProblemFile string `arg:"" name:"problem" help:"Problem file to solve" type:"path"`
	Domain      string `name:"domain" help:"Domain: counters, rushhour" required:""`
	Strategy    string `name:"strategy" help:"Strategy: A*, GBFS, BFS, DFS (defaults to the config file's default_strategy)"`
	Config      string `name:"config" help:"Configuration file path" type:"path"`
	Dump        string `name:"dump" help:"Directory to write an arena.json dump into" type:"path"`
}

// Run executes the solve command.
func (cmd *SolveCommand) Run() error {
	run, ok := domains[cmd.Domain]
	if !ok {
		return fmt.Errorf("unknown domain %q (available: %v)", cmd.Domain, DomainNames())
	}

	cfg, err := config.LoadConfig(cmd.Config)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	strategy := cmd.Strategy
	if strategy == "" {
		strategy = cfg.Search.DefaultStrategy
	}

	dumpDir := cmd.Dump
	if dumpDir == "" && cfg.Output.PreserveHistory {
		dumpDir = cfg.Output.Directory
	}

	var recorder o11y.Recorder = o11y.NoopRecorder{}
	var recorders o11y.Multi
	if cfg.Metrics.PushGatewayAddr != "" {
		recorders = append(recorders, o11y.NewPrometheusRecorder(cfg.Metrics.PushGatewayAddr, cfg.Metrics.JobName))
	}
	if cfg.Metrics.InfluxURL != "" && cfg.Metrics.InfluxToken != "" && cfg.Metrics.InfluxOrg != "" && cfg.Metrics.InfluxBucket != "" {
		recorders = append(recorders, &o11y.InfluxRecorder{
			URL:    cfg.Metrics.InfluxURL,
			Token:  cfg.Metrics.InfluxToken,
			Org:    cfg.Metrics.InfluxOrg,
			Bucket: cfg.Metrics.InfluxBucket,
		})
	}
	if len(recorders) > 0 {
		recorder = recorders
	}

	_, err = run(context.Background(), cmd.ProblemFile, strategy,
		solve.WithLogger(log.Default()),
		solve.WithDumpDir(dumpDir),
		solve.WithRecorder(recorder),
		solve.WithMaxIterations(cfg.Search.MaxIterations),
	)
	return err
}
