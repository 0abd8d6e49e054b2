package editor

import (
	"testing"

	"github.com/inamate/core2d/internal/shapes"
)

func TestPasteWithEmptyClipboardDoesNothing(t *testing.T) {
	e := newEditor()
	pasted, err := e.Shapes.Paste()
	if err != nil || pasted != nil {
		t.Errorf("Expected nothing pasted, got %v (%v)", pasted, err)
	}
	if e.history.Len() != 0 {
		t.Errorf("Expected no history entry, got %d", e.history.Len())
	}
	if e.Shapes.CanPaste() {
		t.Error("Expected an empty clipboard")
	}
}

func TestCopyIsDetachedFromOriginals(t *testing.T) {
	e := newEditor()
	r := e.addRect(0, 0, 10, 10)
	e.selectAll()
	entries := e.history.Len()

	if n, err := e.Shapes.Copy(); err != nil || n != 1 {
		t.Fatalf("Expected one shape copied, got %d (%v)", n, err)
	}
	if e.history.Len() != entries {
		t.Error("Expected copy to record no history")
	}
	r.TopLeft.Move(100, 100)

	pasted, err := e.Shapes.Paste()
	if err != nil || len(pasted) != 1 {
		t.Fatalf("Expected one pasted shape, got %d (%v)", len(pasted), err)
	}
	p := pasted[0].(*shapes.Rectangle)
	if p.TopLeft.X != DuplicateOffset {
		t.Errorf("Expected the paste at the copied position plus offset, got %v", p.TopLeft.X)
	}
	if p.Owner() != e.page.CurrentLayer().ID() {
		t.Errorf("Expected the layer to own the paste, got %q", p.Owner())
	}

	again, _ := e.Shapes.Paste()
	if q := again[0].(*shapes.Rectangle); q.TopLeft.X != 2*DuplicateOffset || q == p {
		t.Errorf("Expected a second, further offset paste, got %v", q.TopLeft.X)
	}
}

func TestCutKeepsSharedPointsAndUndoes(t *testing.T) {
	e := newEditor()
	f := e.factory
	shared := f.CreatePointShape(10, 10)
	l1 := f.CreateLineShape(f.CreatePointShape(0, 0), shared, shapes.NewStyle("s"), true)
	l2 := f.CreateLineShape(shared, f.CreatePointShape(20, 0), shapes.NewStyle("s"), true)
	layer := e.page.CurrentLayer()
	e.AddShape(layer, l1)
	e.AddShape(layer, l2)
	e.selectAll()
	entries := e.history.Len()

	if n, err := e.Shapes.Cut(); err != nil || n != 2 {
		t.Fatalf("Expected two shapes cut, got %d (%v)", n, err)
	}
	if layer.Len() != 0 || e.history.Len() != entries+1 {
		t.Fatalf("Expected an empty layer and one entry, got %d shapes and %d entries", layer.Len(), e.history.Len()-entries)
	}
	if len(e.selection.Selected()) != 0 {
		t.Error("Expected cut to clear the selection")
	}

	pasted, err := e.Shapes.Paste()
	if err != nil || len(pasted) != 2 {
		t.Fatalf("Expected two pasted lines, got %d (%v)", len(pasted), err)
	}
	c1, c2 := pasted[0].(*shapes.Line), pasted[1].(*shapes.Line)
	if c1.End != c2.Start || c1.End == shared {
		t.Error("Expected the pasted lines to share a new point")
	}
	if c1.End.X != 10 {
		t.Errorf("Expected the first paste after cut in place, got %v", c1.End.X)
	}

	e.history.Undo()
	e.history.Undo()
	if layer.Len() != 2 || layer.Shapes()[0] != l1 {
		t.Errorf("Expected undo to restore the cut lines, got %d shapes", layer.Len())
	}
}
