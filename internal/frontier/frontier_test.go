package frontier

import "testing"

func TestNewUnknownStrategy(t *testing.T) {
	if _, err := New("unknown"); err == nil {
		t.Error("Expected an error for an unknown strategy")
	}
}

func TestBFSIsFIFO(t *testing.T) {
	fr, err := New(string(BFS))
	if err != nil {
		t.Fatalf("New(BFS) failed: %v", err)
	}
	fr.Insert(1, 0, 0)
	fr.Insert(2, 0, 0)
	fr.Insert(3, 0, 0)

	want := []int{1, 2, 3}
	for _, w := range want {
		got, ok := fr.Pop()
		if !ok || got != w {
			t.Errorf("Pop() = (%d, %v), want (%d, true)", got, ok, w)
		}
	}
	if _, ok := fr.Pop(); ok {
		t.Error("Expected Pop() on an empty BFS frontier to report false")
	}
}

func TestDFSIsLIFO(t *testing.T) {
	fr, err := New(string(DFS))
	if err != nil {
		t.Fatalf("New(DFS) failed: %v", err)
	}
	fr.Insert(1, 0, 0)
	fr.Insert(2, 0, 0)
	fr.Insert(3, 0, 0)

	want := []int{3, 2, 1}
	for _, w := range want {
		got, ok := fr.Pop()
		if !ok || got != w {
			t.Errorf("Pop() = (%d, %v), want (%d, true)", got, ok, w)
		}
	}
}

func TestAStarOrdersByGPlusH(t *testing.T) {
	fr, err := New(string(AStar))
	if err != nil {
		t.Fatalf("New(A*) failed: %v", err)
	}
	fr.Insert(1, 10, 0) // priority 10
	fr.Insert(2, 1, 2)  // priority 3
	fr.Insert(3, 5, 0)  // priority 5

	want := []int{2, 3, 1}
	for _, w := range want {
		got, ok := fr.Pop()
		if !ok || got != w {
			t.Errorf("Pop() = (%d, %v), want (%d, true)", got, ok, w)
		}
	}
}

func TestAStarTieBreaksByInsertionOrder(t *testing.T) {
	fr, _ := New(string(AStar))
	fr.Insert(1, 5, 0)
	fr.Insert(2, 5, 0)
	fr.Insert(3, 5, 0)

	want := []int{1, 2, 3}
	for _, w := range want {
		got, _ := fr.Pop()
		if got != w {
			t.Errorf("Pop() = %d, want %d (insertion-order tie-break)", got, w)
		}
	}
}

func TestGBFSOrdersByHOnly(t *testing.T) {
	fr, err := New(string(GBFS))
	if err != nil {
		t.Fatalf("New(GBFS) failed: %v", err)
	}
	fr.Insert(1, 100, 5) // high g, but low h
	fr.Insert(2, 0, 10)

	got, _ := fr.Pop()
	if got != 1 {
		t.Errorf("Expected GBFS to ignore g and pop node 1 (lower h) first, got %d", got)
	}
}
