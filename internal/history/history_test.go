package history

import "testing"

type intState struct {
	target *int
	value  int
}

func (s intState) Apply() { *s.target = s.value }

func TestUndoRedo(t *testing.T) {
	h := New(0)
	v := 0

	v = 1
	h.Snapshot("set 1", intState{&v, 0}, intState{&v, 1})
	v = 2
	h.Snapshot("set 2", intState{&v, 1}, intState{&v, 2})

	if !h.Undo() || v != 1 {
		t.Fatalf("Expected 1 after undo, got %d", v)
	}
	if !h.Undo() || v != 0 {
		t.Fatalf("Expected 0 after second undo, got %d", v)
	}
	if h.Undo() {
		t.Error("Expected undo on empty stack to report false")
	}
	if !h.Redo() || v != 1 {
		t.Fatalf("Expected 1 after redo, got %d", v)
	}
	if h.Len() != 1 || !h.CanRedo() {
		t.Errorf("Expected 1 undo entry and a pending redo, got len=%d canRedo=%v", h.Len(), h.CanRedo())
	}
}

func TestSnapshotClearsRedo(t *testing.T) {
	h := New(0)
	v := 0
	h.Snapshot("a", intState{&v, 0}, intState{&v, 1})
	h.Undo()
	h.Snapshot("b", intState{&v, 0}, intState{&v, 5})
	if h.CanRedo() {
		t.Error("Expected redo stack to be cleared by a new snapshot")
	}
}

func TestLimitDropsOldest(t *testing.T) {
	h := New(2)
	v := 0
	for i := 1; i <= 3; i++ {
		h.Snapshot("step", intState{&v, i - 1}, intState{&v, i})
	}
	if h.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", h.Len())
	}
	h.Undo()
	h.Undo()
	if v != 1 {
		t.Errorf("Expected oldest kept state 1, got %d", v)
	}
}

func TestObserver(t *testing.T) {
	h := New(0)
	var ops []Op
	h.Observe(func(op Op, e Entry) { ops = append(ops, op) })
	v := 0
	h.Snapshot("a", intState{&v, 0}, intState{&v, 1})
	h.Undo()
	h.Redo()
	want := []Op{OpPush, OpUndo, OpRedo}
	if len(ops) != len(want) {
		t.Fatalf("Expected %v, got %v", want, ops)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("Expected %v at %d, got %v", want[i], i, ops[i])
		}
	}
}
