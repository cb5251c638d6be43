package value

import "testing"

func TestScalarConstructors(t *testing.T) {
	t.Run("Int", func(t *testing.T) {
		v := NewInt(42)
		got, ok := v.Int()
		if !ok || got != 42 {
			t.Errorf("Expected (42, true), got (%d, %v)", got, ok)
		}
		if _, ok := v.Text(); ok {
			t.Error("Int value should not report ok for Text()")
		}
	})

	t.Run("Real rejects NaN", func(t *testing.T) {
		_, err := NewReal(float64NaN())
		if err == nil {
			t.Error("Expected error constructing Real from NaN")
		}
	})

	t.Run("Real accepts finite", func(t *testing.T) {
		v := MustReal(3.5)
		got, ok := v.Real()
		if !ok || got != 3.5 {
			t.Errorf("Expected (3.5, true), got (%v, %v)", got, ok)
		}
	})

	t.Run("Text", func(t *testing.T) {
		v := NewText("hello")
		got, ok := v.Text()
		if !ok || got != "hello" {
			t.Errorf("Expected (\"hello\", true), got (%q, %v)", got, ok)
		}
	})

	t.Run("Bool", func(t *testing.T) {
		v := NewBool(true)
		got, ok := v.Bool()
		if !ok || !got {
			t.Errorf("Expected (true, true), got (%v, %v)", got, ok)
		}
	})

	t.Run("Position", func(t *testing.T) {
		v := NewPosition(1, 2)
		got, ok := v.Position()
		if !ok || got != (Position{X: 1, Y: 2}) {
			t.Errorf("Expected ({1 2}, true), got (%v, %v)", got, ok)
		}
	})
}

func TestEqual(t *testing.T) {
	t.Run("same kind and content are equal", func(t *testing.T) {
		if !NewInt(5).Equal(NewInt(5)) {
			t.Error("Expected NewInt(5) == NewInt(5)")
		}
	})

	t.Run("different kind never equal", func(t *testing.T) {
		if NewInt(5).Equal(NewInt64(5)) {
			t.Error("Expected Int(5) != Int64(5)")
		}
	})

	t.Run("maps compare by content regardless of build order", func(t *testing.T) {
		a := NewMap(map[string]Value{"x": NewInt(1), "y": NewInt(2)})
		b := NewMap(map[string]Value{"y": NewInt(2), "x": NewInt(1)})
		if !a.Equal(b) {
			t.Error("Expected maps with same content to be equal")
		}
	})

	t.Run("int arrays compare element-wise", func(t *testing.T) {
		a := NewIntArray([]int32{1, 2, 3})
		b := NewIntArray([]int32{1, 2, 3})
		c := NewIntArray([]int32{1, 2, 4})
		if !a.Equal(b) {
			t.Error("Expected equal int arrays to compare equal")
		}
		if a.Equal(c) {
			t.Error("Expected differing int arrays to compare unequal")
		}
	})
}

func TestHash(t *testing.T) {
	t.Run("equal values hash the same", func(t *testing.T) {
		a := NewMap(map[string]Value{"x": NewInt(1), "y": NewInt(2)})
		b := NewMap(map[string]Value{"y": NewInt(2), "x": NewInt(1)})
		if a.Hash() != b.Hash() {
			t.Error("Expected map iteration order not to affect Hash()")
		}
	})

	t.Run("different values usually hash differently", func(t *testing.T) {
		if NewInt(1).Hash() == NewInt(2).Hash() {
			t.Error("Expected NewInt(1) and NewInt(2) to hash differently")
		}
	})
}

func float64NaN() float64 {
	var zero float64
	return zero / zero
}
