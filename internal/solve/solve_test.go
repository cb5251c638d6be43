package solve

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"upside-down-research.com/oss/searchengine/internal/domains/counters"
	"upside-down-research.com/oss/searchengine/internal/domains/rushhour"
)

func writeScenario1(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "counters.json")
	data := `{
		"Counters": {"0": 1, "1": 1, "2": 1},
		"Goal": {"g1": "c0 + 1 <= c1", "g2": "c1 + 1 <= c2"},
		"max_value": 10
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSolveFindsScenario1Plan(t *testing.T) {
	path := writeScenario1(t)

	report, err := Solve(context.Background(), "counters", path, "BFS", counters.Load, counters.Fingerprint)
	if err != nil {
		t.Fatalf("Solve() returned an error: %v", err)
	}
	if report.Length != 3 {
		t.Errorf("Expected a plan of length 3, got %d", report.Length)
	}
	if report.Cost != 3 {
		t.Errorf("Expected total cost 3, got %d", report.Cost)
	}
	if report.RunID == "" {
		t.Error("Expected a non-empty RunID")
	}
}

func TestSolveFindsScenario2Plan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rushhour.json")
	// 6x6 grid, red horizontal car at row 2 columns {0,1}; one blocking
	// vertical car at column 3 rows {1,2}. The blocker must slide up once
	// before red can slide the remaining four cells to the exit column.
	data := `{
		"problem1": {
			"grid": {"row_size": 6, "col_size": 6},
			"vehicles": [
				{"name": "red", "kind": "HorizontalCar", "position": [2, 0]},
				{"name": "blocker", "kind": "VerticalCar", "position": [1, 3]}
			]
		}
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	report, err := Solve(context.Background(), "rushhour", path, "A*", rushhour.Load, rushhour.Fingerprint)
	if err != nil {
		t.Fatalf("Solve() returned an error: %v", err)
	}
	if report.Length != 5 {
		t.Errorf("Expected a plan of length 5 (1 blocker move + 4 red moves), got %d", report.Length)
	}
	if report.Cost != 5 {
		t.Errorf("Expected total cost 5, got %d", report.Cost)
	}
}

func TestSolveReturnsErrNoSolutionForUnsatisfiableGoal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "counters.json")
	// c0 + 1 <= c0 can never hold for any integer value, and c0 is pinned
	// at both its floor and ceiling with max_value 1, so the root is a dead
	// end with zero successors.
	data := `{
		"Counters": {"0": 1},
		"Goal": {"g1": "c0 + 1 <= c0"},
		"max_value": 1
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Solve(context.Background(), "counters", path, "BFS", counters.Load, counters.Fingerprint)
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("Expected ErrNoSolution, got %v", err)
	}
}

func TestSolveRejectsUnknownStrategy(t *testing.T) {
	path := writeScenario1(t)

	_, err := Solve(context.Background(), "counters", path, "unknown-strategy", counters.Load, counters.Fingerprint)
	if err == nil {
		t.Error("Expected an error for an unrecognized strategy")
	}
}

func TestSolveWithDumpDirWritesArena(t *testing.T) {
	path := writeScenario1(t)
	dumpDir := t.TempDir()

	report, err := Solve(context.Background(), "counters", path, "BFS", counters.Load, counters.Fingerprint, WithDumpDir(dumpDir))
	if err != nil {
		t.Fatalf("Solve() returned an error: %v", err)
	}

	runDir := filepath.Join(dumpDir, report.RunID)
	entries, err := os.ReadDir(runDir)
	if err != nil {
		t.Fatalf("Expected a dump directory at %s: %v", runDir, err)
	}
	if len(entries) == 0 {
		t.Error("Expected the dump directory to contain at least one file")
	}
}
