// Package value implements the admissible fluent value union domains use to
// build Action parameters and State payloads: integers, reals, booleans,
// strings, grid positions, and a handful of container shapes over those.
package value

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Kind tags which variant of the union a Value holds.
type Kind int

const (
	KindInt Kind = iota
	KindInt64
	KindReal
	KindText
	KindBool
	KindPosition
	KindPositions
	KindIntArray
	KindInt64Array
	KindBoolArray
	KindStringArray
	KindMap
)

// Position is a 2-D integer coordinate, used by grid-based domains
// (sliding-block puzzles, pathing problems) as a first-class fluent value.
type Position struct {
	X, Y int32
}

// Value is a closed, equality-comparable, hashable union of the fluent
// shapes a domain may store in an Action's parameters or reference from a
// State. Construct one with the New* functions; the zero Value has
// KindInt and is equal to NewInt(0).
type Value struct {
	kind Kind

	i   int32
	i64 int64
	f   float64
	s   string
	b   bool
	pos Position

	positions map[string]Position
	ints      []int32
	int64s    []int64
	bools     []bool
	strs      []string
	// m holds a map[string]Value as the general MapToValue container; the
	// narrower MapToInt/MapToString/MapToStringArray shapes named in the
	// data model are represented by wrapping each leaf in a Value of the
	// matching kind, so only this one map type is needed internally.
	m map[string]Value
}

// NewInt builds an Int32 value.
func NewInt(i int32) Value { return Value{kind: KindInt, i: i} }

// NewInt64 builds an Int64 value.
func NewInt64(i int64) Value { return Value{kind: KindInt64, i64: i} }

// NewReal builds a Real value. NaN is disallowed, matching the reference
// engine's totally-ordered-float requirement; callers that cannot guarantee
// a finite input should check with math.IsNaN themselves before calling.
func NewReal(f float64) (Value, error) {
	if math.IsNaN(f) {
		return Value{}, fmt.Errorf("value: NaN is not a valid Real")
	}
	return Value{kind: KindReal, f: f}, nil
}

// MustReal is NewReal but panics on NaN; for call sites building Values from
// constants or already-validated domain arithmetic.
func MustReal(f float64) Value {
	v, err := NewReal(f)
	if err != nil {
		panic(err)
	}
	return v
}

// NewText builds a Text value.
func NewText(s string) Value { return Value{kind: KindText, s: s} }

// NewBool builds a Bool value.
func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

// NewPosition builds a Position value.
func NewPosition(x, y int32) Value {
	return Value{kind: KindPosition, pos: Position{X: x, Y: y}}
}

// NewPositions builds an ordered mapping from text to Position. The input
// map is copied defensively so the caller's map may be mutated afterward.
func NewPositions(m map[string]Position) Value {
	cp := make(map[string]Position, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Value{kind: KindPositions, positions: cp}
}

// NewIntArray builds a sequence of Int32.
func NewIntArray(xs []int32) Value {
	return Value{kind: KindIntArray, ints: append([]int32(nil), xs...)}
}

// NewInt64Array builds a sequence of Int64.
func NewInt64Array(xs []int64) Value {
	return Value{kind: KindInt64Array, int64s: append([]int64(nil), xs...)}
}

// NewBoolArray builds a sequence of Bool.
func NewBoolArray(xs []bool) Value {
	return Value{kind: KindBoolArray, bools: append([]bool(nil), xs...)}
}

// NewStringArray builds a sequence of Text.
func NewStringArray(xs []string) Value {
	return Value{kind: KindStringArray, strs: append([]string(nil), xs...)}
}

// NewMap builds an ordered mapping from text to Value. Per the data model,
// every leaf must itself be admissible (Text, StringArray, Int, Bool, Value,
// MapToInt, or MapToText); NewMap does not re-validate leaf shapes beyond
// requiring them to already be constructed Values.
func NewMap(m map[string]Value) Value {
	cp := make(map[string]Value, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Value{kind: KindMap, m: cp}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) Int() (int32, bool)   { return v.i, v.kind == KindInt }
func (v Value) Int64() (int64, bool) { return v.i64, v.kind == KindInt64 }
func (v Value) Real() (float64, bool) { return v.f, v.kind == KindReal }
func (v Value) Text() (string, bool)  { return v.s, v.kind == KindText }
func (v Value) Bool() (bool, bool)    { return v.b, v.kind == KindBool }
func (v Value) Position() (Position, bool) { return v.pos, v.kind == KindPosition }

// Equal reports structural equality. Two Values of different Kind are never
// equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == o.i
	case KindInt64:
		return v.i64 == o.i64
	case KindReal:
		return v.f == o.f
	case KindText:
		return v.s == o.s
	case KindBool:
		return v.b == o.b
	case KindPosition:
		return v.pos == o.pos
	case KindPositions:
		return equalPositionMaps(v.positions, o.positions)
	case KindIntArray:
		return equalSlices(v.ints, o.ints)
	case KindInt64Array:
		return equalSlices(v.int64s, o.int64s)
	case KindBoolArray:
		return equalSlices(v.bools, o.bools)
	case KindStringArray:
		return equalSlices(v.strs, o.strs)
	case KindMap:
		if len(v.m) != len(o.m) {
			return false
		}
		for k, lv := range v.m {
			rv, ok := o.m[k]
			if !ok || !lv.Equal(rv) {
				return false
			}
		}
		return true
	}
	return false
}

func equalPositionMaps(a, b map[string]Position) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Hash returns a 64-bit fingerprint over the Value's structural content,
// stable across process runs (xxhash over a canonical byte encoding, map
// keys sorted so iteration order never affects the digest).
func (v Value) Hash() uint64 {
	var b strings.Builder
	v.encode(&b)
	return xxhash.Sum64String(b.String())
}

func (v Value) encode(b *strings.Builder) {
	fmt.Fprintf(b, "%d|", v.kind)
	switch v.kind {
	case KindInt:
		fmt.Fprintf(b, "%d", v.i)
	case KindInt64:
		fmt.Fprintf(b, "%d", v.i64)
	case KindReal:
		fmt.Fprintf(b, "%g", v.f)
	case KindText:
		b.WriteString(v.s)
	case KindBool:
		fmt.Fprintf(b, "%v", v.b)
	case KindPosition:
		fmt.Fprintf(b, "%d,%d", v.pos.X, v.pos.Y)
	case KindPositions:
		for _, k := range sortedKeys(v.positions) {
			p := v.positions[k]
			fmt.Fprintf(b, "%s=%d,%d;", k, p.X, p.Y)
		}
	case KindIntArray:
		for _, x := range v.ints {
			fmt.Fprintf(b, "%d,", x)
		}
	case KindInt64Array:
		for _, x := range v.int64s {
			fmt.Fprintf(b, "%d,", x)
		}
	case KindBoolArray:
		for _, x := range v.bools {
			fmt.Fprintf(b, "%v,", x)
		}
	case KindStringArray:
		for _, x := range v.strs {
			b.WriteString(x)
			b.WriteByte(',')
		}
	case KindMap:
		for _, k := range sortedMapKeys(v.m) {
			b.WriteString(k)
			b.WriteByte('=')
			v.m[k].encode(b)
			b.WriteByte(';')
		}
	}
}

func sortedKeys(m map[string]Position) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

func sortedMapKeys(m map[string]Value) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

// String renders a debug-friendly representation; not part of the wire
// format, only used in logs and panics.
func (v Value) String() string {
	var b strings.Builder
	v.encode(&b)
	return b.String()
}
