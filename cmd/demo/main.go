// Command demo runs both reference domains end-to-end without needing an
// on-disk problem file, reproducing spec.md §8 scenarios 1 and 2.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"upside-down-research.com/oss/searchengine/internal/domains/counters"
	"upside-down-research.com/oss/searchengine/internal/domains/rushhour"
	"upside-down-research.com/oss/searchengine/internal/frontier"
	"upside-down-research.com/oss/searchengine/internal/search"
	"upside-down-research.com/oss/searchengine/internal/searchtree"
)

func countersDemo() error {
	// c0=1, c1=1, c2=1; goal c0+1<=c1 AND c1+1<=c2; max value 10.
	initial := counters.State{Counters: map[string]int32{"c0": 1, "c1": 1, "c2": 1}}
	p := counters.Problem{
		MaxValue: 10,
		Goal: counters.Goal{Conditions: []counters.Condition{
			{
				Left:     counters.LinearExpr{Terms: []counters.Term{{Coefficient: 1, Counter: "c0"}}, Constant: 1},
				Operator: "<=",
				Right:    counters.LinearExpr{Terms: []counters.Term{{Coefficient: 1, Counter: "c1"}}},
			},
			{
				Left:     counters.LinearExpr{Terms: []counters.Term{{Coefficient: 1, Counter: "c1"}}, Constant: 1},
				Operator: "<=",
				Right:    counters.LinearExpr{Terms: []counters.Term{{Coefficient: 1, Counter: "c2"}}},
			},
		}},
	}

	fr, err := frontier.New(string(frontier.BFS))
	if err != nil {
		return err
	}
	tree := searchtree.New[counters.State](initial)
	result, err := search.Run[counters.State, counters.Problem](tree, p, fr, counters.Fingerprint)

	fmt.Println("=== counters (BFS) ===")
	printResult(result, err)
	return nil
}

func rushhourDemo() error {
	// 6x6 grid: red horizontal car at row 2 columns {0,1}; one blocking
	// vertical car at column 3 rows {1,2}.
	initial := rushhour.State{
		RowSize: 6,
		ColSize: 6,
		Vehicles: map[string]rushhour.Vehicle{
			"red":     {Kind: rushhour.HorizontalCar, Row: 2, Col: 0},
			"blocker": {Kind: rushhour.VerticalCar, Row: 1, Col: 3},
		},
	}
	p := rushhour.Problem{}

	fr, err := frontier.New(string(frontier.AStar))
	if err != nil {
		return err
	}
	tree := searchtree.New[rushhour.State](initial)
	result, err := search.Run[rushhour.State, rushhour.Problem](tree, p, fr, rushhour.Fingerprint)

	fmt.Println("=== rushhour (A*) ===")
	printResult(result, err)
	return nil
}

func printResult(result search.Result, err error) {
	fmt.Printf("Nodes generated: %d, unique admitted: %d\n", result.NodesGenerated, result.UniqueAdmitted)
	if err != nil {
		fmt.Println("Search failed: No solution found")
		return
	}
	names := make([]string, 0, len(result.Actions))
	for _, a := range result.Actions {
		names = append(names, a.Name())
	}
	fmt.Printf("Solution found with actions: %v\n", names)
	fmt.Printf("Total cost of actions: %d\n", result.Cost)
	fmt.Printf("Total length of the solution: %d\n", len(result.Actions))
}

func main() {
	log.SetLevel(log.InfoLevel)

	if err := countersDemo(); err != nil {
		log.Error("counters demo failed", "error", err)
		os.Exit(1)
	}
	fmt.Println()
	if err := rushhourDemo(); err != nil {
		log.Error("rushhour demo failed", "error", err)
		os.Exit(1)
	}
}
