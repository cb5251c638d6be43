package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"upside-down-research.com/oss/searchengine/internal/commands"
)

var CLI struct {
	Solve    commands.SolveCommand    `cmd:"" help:"Run a search strategy over a problem file" default:"withargs"`
	Validate commands.ValidateCommand `cmd:"" help:"Validate a problem file"`
	Doctor   commands.DoctorCommand   `cmd:"" help:"Run system diagnostics"`
	Config   commands.ConfigCommand   `cmd:"" help:"Manage configuration"`
}

func main() {
	log.SetLevel(log.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("solve"),
		kong.Description("A generic forward state-space search engine (A*, GBFS, BFS, DFS) over pluggable domains."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: false,
			Summary: true,
		}),
	)

	if ctx.Command() == "" {
		fmt.Println("Quick start:")
		fmt.Println("  $ solve config init                                     # Create config file")
		fmt.Println("  $ solve doctor                                          # Verify setup")
		fmt.Println("  $ solve validate problem.json                          # Check a problem file")
		fmt.Println("  $ solve solve problem.json --domain=counters --strategy=A*")
		fmt.Println()
		fmt.Println("Run 'solve --help' for all commands")
		os.Exit(0)
	}

	if err := ctx.Run(); err != nil {
		log.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
