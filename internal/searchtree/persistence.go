package searchtree

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// arenaNode is the JSON-serializable projection of one arena entry. State is
// captured as a string snapshot (via fmt.Sprintf("%+v", ...)) rather than a
// structured field, since S is an opaque generic type with no required
// Marshal method — this keeps the arena dump usable for debugging without
// imposing a serialization contract on every domain.
type arenaNode struct {
	Index      int      `json:"index"`
	Parent     int      `json:"parent"`
	Children   []int    `json:"children"`
	ActionName string   `json:"action_name,omitempty"`
	Cost       int      `json:"cost"`
	State      string   `json:"state"`
}

type arenaDump struct {
	RunID      string      `json:"run_id"`
	TotalNodes int         `json:"total_nodes"`
	Nodes      []arenaNode `json:"nodes"`
}

// SaveArena writes the full arena topology and a string snapshot of every
// state to <dir>/<runID>/arena.json, for offline inspection of a search
// run. This realizes the "arena + indices ... keeps the structures
// trivially serializable for debugging" design note: the reference design
// names the property but assigns it no operation, so this is new surface,
// not a change to search semantics.
func (t *Tree[S]) SaveArena(dir, runID string) error {
	runDir := filepath.Join(dir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return fmt.Errorf("searchtree: create run directory: %w", err)
	}

	dump := arenaDump{RunID: runID, TotalNodes: len(t.nodes)}
	for i, n := range t.nodes {
		entry := arenaNode{
			Index:    i,
			Parent:   n.Parent,
			Children: n.Children,
			Cost:     n.Cost,
			State:    fmt.Sprintf("%+v", t.states[i]),
		}
		if n.HasAction {
			entry.ActionName = n.Action.Name()
		}
		dump.Nodes = append(dump.Nodes, entry)
	}

	path := filepath.Join(runDir, "arena.json")
	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("searchtree: marshal arena: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("searchtree: write arena dump: %w", err)
	}

	log.Info("arena dump written", "path", path, "nodes", dump.TotalNodes)
	return nil
}
