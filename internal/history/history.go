// Package history implements the undo/redo journal.
//
// An entry holds two immutable values: the state before and after a
// user action. Each value is a small command object whose concrete type
// selects the setter; Apply publishes the captured state.
package history

import "log/slog"

// Value is a captured state that can be re-published.
type Value interface {
	Apply()
}

type Entry struct {
	Label    string
	Previous Value
	Next     Value
}

// Op identifies a journal change for observers.
type Op string

const (
	OpPush Op = "push"
	OpUndo Op = "undo"
	OpRedo Op = "redo"
)

// Observer is notified after every push, undo and redo.
type Observer func(op Op, e Entry)

// History is a pair of stacks. It is not safe for concurrent use; the
// editor owns it on its event goroutine.
type History struct {
	undo     []Entry
	redo     []Entry
	limit    int
	observer Observer
}

// New returns a journal that keeps at most limit undo entries.
// A limit of 0 means unbounded.
func New(limit int) *History {
	return &History{limit: limit}
}

// Observe installs fn. Only one observer is kept.
func (h *History) Observe(fn Observer) {
	h.observer = fn
}

// Snapshot records one undoable entry. Next is assumed to be already
// applied by the caller. Any redo entries are discarded.
func (h *History) Snapshot(label string, previous, next Value) {
	e := Entry{Label: label, Previous: previous, Next: next}
	h.undo = append(h.undo, e)
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.redo = nil
	slog.Debug("history snapshot", "label", label, "depth", len(h.undo))
	h.notify(OpPush, e)
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Undo applies the previous value of the latest entry.
func (h *History) Undo() bool {
	if len(h.undo) == 0 {
		return false
	}
	e := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	e.Previous.Apply()
	h.redo = append(h.redo, e)
	h.notify(OpUndo, e)
	return true
}

// Redo re-applies the next value of the latest undone entry.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	e := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	e.Next.Apply()
	h.undo = append(h.undo, e)
	h.notify(OpRedo, e)
	return true
}

// Len returns the number of undoable entries.
func (h *History) Len() int { return len(h.undo) }

func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
}

func (h *History) notify(op Op, e Entry) {
	if h.observer != nil {
		h.observer(op, e)
	}
}
