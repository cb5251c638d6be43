package closedset

import "testing"

func TestInsertReportsFirstAdmission(t *testing.T) {
	s := New()
	if !s.Insert(1) {
		t.Error("Expected first Insert of a fingerprint to return true")
	}
	if s.Insert(1) {
		t.Error("Expected second Insert of the same fingerprint to return false")
	}
	if s.Len() != 1 {
		t.Errorf("Expected Len() == 1, got %d", s.Len())
	}
}

func TestHash64IsDeterministic(t *testing.T) {
	if Hash64("a") != Hash64("a") {
		t.Error("Expected Hash64 to be deterministic for the same input")
	}
	if Hash64("a") == Hash64("b") {
		t.Error("Expected Hash64(\"a\") != Hash64(\"b\")")
	}
}
