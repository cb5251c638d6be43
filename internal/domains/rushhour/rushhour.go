// Package rushhour is a reference Problem implementation: a sliding-block
// puzzle on a RowSize x ColSize grid where horizontal and vertical
// cars/trucks block each other, and the goal is to slide the car named "red"
// right until its rightmost cell is in the grid's last column. Ported from original_source's red_car_problem.rs,
// matching spec.md §8 scenario 2 (6x6 grid, red horizontal car blocked by
// one vertical car). It exists only as a test/demo fixture and is never
// imported by the core packages.
package rushhour

import (
	"fmt"
	"sort"
	"strings"

	"upside-down-research.com/oss/searchengine/internal/action"
	"upside-down-research.com/oss/searchengine/internal/value"
)

// VehicleKind distinguishes the four shapes the reference domain supports.
type VehicleKind int

const (
	HorizontalCar VehicleKind = iota
	VerticalCar
	HorizontalTruck
	VerticalTruck
)

func (k VehicleKind) length() int {
	switch k {
	case HorizontalCar, VerticalCar:
		return 2
	default:
		return 3
	}
}

func (k VehicleKind) horizontal() bool {
	return k == HorizontalCar || k == HorizontalTruck
}

func (k VehicleKind) String() string {
	switch k {
	case HorizontalCar:
		return "HorizontalCar"
	case VerticalCar:
		return "VerticalCar"
	case HorizontalTruck:
		return "HorizontalTruck"
	case VerticalTruck:
		return "VerticalTruck"
	default:
		return "Unknown"
	}
}

// Vehicle is one car or truck on the grid, anchored at its top-left cell.
type Vehicle struct {
	Kind VehicleKind
	Row  int
	Col  int
}

// cells returns every grid cell the vehicle currently occupies.
func (v Vehicle) cells() [][2]int {
	cells := make([][2]int, v.Kind.length())
	for i := range cells {
		if v.Kind.horizontal() {
			cells[i] = [2]int{v.Row, v.Col + i}
		} else {
			cells[i] = [2]int{v.Row + i, v.Col}
		}
	}
	return cells
}

// State is the grid configuration: the grid's dimensions plus each
// vehicle's kind and anchor cell (cell occupancy is derived from these on
// demand, not stored). Apply always rebuilds the
// Vehicles map fresh, so the arena's "states never mutate in place"
// invariant holds despite State embedding a map.
type State struct {
	RowSize, ColSize int
	Vehicles         map[string]Vehicle
}

func (s State) clone() State {
	cp := make(map[string]Vehicle, len(s.Vehicles))
	for k, v := range s.Vehicles {
		cp[k] = v
	}
	return State{RowSize: s.RowSize, ColSize: s.ColSize, Vehicles: cp}
}

func (s State) occupied() map[[2]int]string {
	occ := make(map[[2]int]string)
	for name, v := range s.Vehicles {
		for _, c := range v.cells() {
			occ[c] = name
		}
	}
	return occ
}

// Fingerprint hashes a canonical (sorted-by-name) encoding of every
// vehicle's position, so two states with identical layouts fingerprint
// identically regardless of map iteration order.
func (s State) Fingerprint() uint64 {
	names := make([]string, 0, len(s.Vehicles))
	for n := range s.Vehicles {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, n := range names {
		v := s.Vehicles[n]
		fmt.Fprintf(&b, "%s:%d:%d,%d;", n, v.Kind, v.Row, v.Col)
	}
	return value.NewText(b.String()).Hash()
}

// direction is one of the four slide directions a vehicle may attempt.
type direction struct {
	name   string
	dr, dc int
}

var (
	dirUp    = direction{"up", -1, 0}
	dirDown  = direction{"down", 1, 0}
	dirLeft  = direction{"left", 0, -1}
	dirRight = direction{"right", 0, 1}
)

func (v Vehicle) canMove(s State, d direction, occ map[[2]int]string) bool {
	if v.Kind.horizontal() != (d.dc != 0) {
		return false
	}
	if d.dc > 0 {
		endCol := v.Col + v.Kind.length()
		if endCol >= s.ColSize {
			return false
		}
		_, blocked := occ[[2]int{v.Row, endCol}]
		return !blocked
	}
	if d.dc < 0 {
		if v.Col == 0 {
			return false
		}
		_, blocked := occ[[2]int{v.Row, v.Col - 1}]
		return !blocked
	}
	if d.dr > 0 {
		endRow := v.Row + v.Kind.length()
		if endRow >= s.RowSize {
			return false
		}
		_, blocked := occ[[2]int{endRow, v.Col}]
		return !blocked
	}
	// d.dr < 0
	if v.Row == 0 {
		return false
	}
	_, blocked := occ[[2]int{v.Row - 1, v.Col}]
	return !blocked
}

const paramVehicle = "vehicle"
const paramMove = "move"

func actionName(name string, d direction) string {
	return fmt.Sprintf("move_%s_%s", name, d.name)
}

// Problem is the rush-hour domain's Problem[State] realization.
type Problem struct{}

// PossibleActions offers every legal single-step slide for every vehicle.
func (Problem) PossibleActions(s State) []action.Action {
	occ := s.occupied()

	names := make([]string, 0, len(s.Vehicles))
	for n := range s.Vehicles {
		names = append(names, n)
	}
	sort.Strings(names)

	var actions []action.Action
	for _, name := range names {
		v := s.Vehicles[name]
		dirs := []direction{dirLeft, dirRight}
		if !v.Kind.horizontal() {
			dirs = []direction{dirUp, dirDown}
		}
		for _, d := range dirs {
			if v.canMove(s, d, occ) {
				actions = append(actions, action.New(actionName(name, d), 1, map[string]value.Value{
					paramVehicle: value.NewText(name),
					paramMove:    value.NewText(d.name),
				}))
			}
		}
	}
	return actions
}

// Apply slides the named vehicle one cell in the named direction.
func (Problem) Apply(s State, act action.Action) State {
	vehicleVal, ok := act.Param(paramVehicle)
	if !ok {
		panic(fmt.Sprintf("rushhour: action %q missing %q parameter", act.Name(), paramVehicle))
	}
	name, ok := vehicleVal.Text()
	if !ok {
		panic(fmt.Sprintf("rushhour: action %q has non-text %q parameter", act.Name(), paramVehicle))
	}
	moveVal, ok := act.Param(paramMove)
	if !ok {
		panic(fmt.Sprintf("rushhour: action %q missing %q parameter", act.Name(), paramMove))
	}
	moveName, _ := moveVal.Text()

	next := s.clone()
	v, ok := next.Vehicles[name]
	if !ok {
		panic(fmt.Sprintf("rushhour: vehicle %q not found", name))
	}
	switch moveName {
	case dirUp.name:
		v.Row--
	case dirDown.name:
		v.Row++
	case dirLeft.name:
		v.Col--
	case dirRight.name:
		v.Col++
	default:
		panic(fmt.Sprintf("rushhour: unknown move %q", moveName))
	}
	next.Vehicles[name] = v
	return next
}

// IsGoal reports whether the vehicle named "red" has reached the right edge
// of the grid (its rightmost occupied column is the last column).
func (Problem) IsGoal(s State) bool {
	red, ok := s.Vehicles["red"]
	if !ok {
		return false
	}
	return red.Col+red.Kind.length()-1 == s.ColSize-1
}

// Heuristic is the Manhattan distance from the red car's rightmost cell to
// the grid's right edge — admissible for a unit-cost slide, since no single
// move can close more than one column of that gap.
func (Problem) Heuristic(s State) float64 {
	red, ok := s.Vehicles["red"]
	if !ok {
		return 0
	}
	gap := s.ColSize - (red.Col + red.Kind.length())
	if gap < 0 {
		gap = 0
	}
	return float64(gap)
}

// Fingerprint wraps State.Fingerprint as a plain function, the
// search.Fingerprint[State] that search.Run and solve.Solve take.
func Fingerprint(s State) uint64 { return s.Fingerprint() }
