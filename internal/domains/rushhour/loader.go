package rushhour

import (
	"encoding/json"
	"fmt"
	"os"
)

// fileSchema is the on-disk shape the original Rust domain reads: a single
// top-level key (the problem's name, ignored) whose value carries the grid
// dimensions and the vehicle list.
//
//	{
//	  "problem1": {
//	    "grid": {"row_size": 6, "col_size": 6},
//	    "vehicles": [
//	      {"name": "red", "kind": "HorizontalCar", "position": [2, 0]},
//	      {"name": "blocker", "kind": "VerticalCar", "position": [1, 3]}
//	    ]
//	  }
//	}
type fileSchema struct {
	Grid struct {
		RowSize int `json:"row_size"`
		ColSize int `json:"col_size"`
	} `json:"grid"`
	Vehicles []struct {
		Name     string `json:"name"`
		Kind     string `json:"kind"`
		Position [2]int `json:"position"`
	} `json:"vehicles"`
}

func parseKind(kind string) (VehicleKind, error) {
	switch kind {
	case "HorizontalCar":
		return HorizontalCar, nil
	case "VerticalCar":
		return VerticalCar, nil
	case "HorizontalTruck":
		return HorizontalTruck, nil
	case "VerticalTruck":
		return VerticalTruck, nil
	default:
		return 0, fmt.Errorf("rushhour: unknown vehicle kind %q", kind)
	}
}

// Load parses a rush-hour problem file, returning the initial State and the
// Problem it is paired with. It is a problem.Loader[State, Problem].
func Load(path string) (State, Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}, Problem{}, fmt.Errorf("rushhour: read %q: %w", path, err)
	}

	var top map[string]fileSchema
	if err := json.Unmarshal(data, &top); err != nil {
		return State{}, Problem{}, fmt.Errorf("rushhour: parse %q: %w", path, err)
	}
	if len(top) != 1 {
		return State{}, Problem{}, fmt.Errorf("rushhour: %q: expected exactly one top-level problem entry, got %d", path, len(top))
	}

	var file fileSchema
	for _, v := range top {
		file = v
	}

	vehicles := make(map[string]Vehicle, len(file.Vehicles))
	for _, v := range file.Vehicles {
		kind, err := parseKind(v.Kind)
		if err != nil {
			return State{}, Problem{}, err
		}
		if _, dup := vehicles[v.Name]; dup {
			return State{}, Problem{}, fmt.Errorf("rushhour: %q: duplicate vehicle name %q", path, v.Name)
		}
		vehicles[v.Name] = Vehicle{Kind: kind, Row: v.Position[0], Col: v.Position[1]}
	}
	if _, ok := vehicles["red"]; !ok {
		return State{}, Problem{}, fmt.Errorf("rushhour: %q: missing required vehicle named %q", path, "red")
	}

	state := State{
		RowSize:  file.Grid.RowSize,
		ColSize:  file.Grid.ColSize,
		Vehicles: vehicles,
	}
	return state, Problem{}, nil
}
