package scene

import (
	"errors"
	"testing"

	"github.com/inamate/core2d/internal/shapes"
)

func newPoint(f shapes.Factory, x, y float64) shapes.Shape {
	return f.CreatePointShape(x, y)
}

func TestCopyOnWriteLeavesPublishedSliceIntact(t *testing.T) {
	f := shapes.NewFactory()
	l := NewLayer("L")
	a, b := newPoint(f, 0, 0), newPoint(f, 1, 1)
	l.AddShape(a)
	l.AddShape(b)

	published := l.Shapes()
	l.RemoveShape(a)

	if len(published) != 2 || published[0] != a {
		t.Error("Expected previously published slice to stay unchanged")
	}
	if l.Len() != 1 || l.Shapes()[0] != b {
		t.Errorf("Expected [b], got %v", l.Shapes())
	}
}

func TestInsertAndReplace(t *testing.T) {
	f := shapes.NewFactory()
	a, b, c := newPoint(f, 0, 0), newPoint(f, 1, 1), newPoint(f, 2, 2)
	seq := []shapes.Shape{a, c}

	ins := Insert(seq, 1, b)
	if len(seq) != 2 || ins[1] != b || ins[2] != c {
		t.Errorf("Unexpected insert result %v", ins)
	}
	rep := Replace(seq, 0, b)
	if seq[0] != a || rep[0] != b {
		t.Error("Expected Replace to copy")
	}
	if IndexOf(ins, c) != 2 || IndexOf(seq, b) != -1 {
		t.Error("Unexpected IndexOf result")
	}
}

func TestShapesStateApplyInvalidates(t *testing.T) {
	f := shapes.NewFactory()
	l := NewLayer("L")
	invalidated := 0
	l.OnInvalidate = func(*Layer) { invalidated++ }

	ShapesState{Layer: l, Shapes: []shapes.Shape{newPoint(f, 0, 0)}}.Apply()
	if l.Len() != 1 || invalidated != 1 {
		t.Errorf("Expected 1 shape and 1 invalidation, got %d and %d", l.Len(), invalidated)
	}
}

func TestPageLayers(t *testing.T) {
	p := NewPage("Page1", 800, 600)
	if p.CurrentLayer() == nil || len(p.Layers) != 1 {
		t.Fatal("Expected one current layer")
	}
	second := p.AddLayer("Layer2")
	if err := p.SetCurrentLayer(second); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := p.SetCurrentLayer(NewLayer("stray")); !errors.Is(err, ErrLayerNotFound) {
		t.Errorf("Expected ErrLayerNotFound, got %v", err)
	}
	if got, err := p.LayerByID(second.ID()); err != nil || got != second {
		t.Errorf("Expected to find layer 2, got %v %v", got, err)
	}
}

func TestFindShapeDescendsIntoGroups(t *testing.T) {
	f := shapes.NewFactory()
	p := NewPage("Page1", 800, 600)
	g := f.CreateGroupShape("g")
	child := f.CreateLineShape(f.CreatePointShape(0, 0), f.CreatePointShape(1, 1), nil, true)
	g.AddShape(child)
	p.CurrentLayer().AddShape(g)

	found, layer, ok := p.FindShape(child.ID())
	if !ok || found != shapes.Shape(child) || layer != p.CurrentLayer() {
		t.Error("Expected to find group child")
	}
	if _, _, ok := p.FindShape("missing"); ok {
		t.Error("Expected missing shape not to be found")
	}
}

func TestSplitLinesIsPendingUntilApplied(t *testing.T) {
	f := shapes.NewFactory()
	l := NewLayer("L")
	line := f.CreateLineShape(f.CreatePointShape(0, 0), f.CreatePointShape(100, 0), nil, true)
	other := newPoint(f, 5, 5)
	l.AddShape(line)
	l.AddShape(other)
	oldEnd := line.End

	mid := f.CreatePointShape(50, 0)
	split := f.CreateLineShape(mid, oldEnd, nil, true)
	seq, before, after := SplitLines(l, l.Shapes(), LineSplit{Line: line, Point: mid, Split: split})

	if line.End != oldEnd || l.Len() != 2 {
		t.Fatal("Expected SplitLines to leave the layer and line untouched")
	}
	if len(seq) != 3 || seq[1] != shapes.Shape(split) {
		t.Fatalf("Expected the split right after its line, got %v", seq)
	}
	if split.Owner() != l.ID() {
		t.Error("Expected the split to be owned by the layer")
	}

	previous := ShapesState{Layer: l, Shapes: l.Shapes(), Ends: before}
	next := ShapesState{Layer: l, Shapes: seq, Ends: after}
	next.Apply()
	if line.End != mid || l.Len() != 3 {
		t.Error("Expected the split to be applied")
	}
	previous.Apply()
	if line.End != oldEnd || l.Len() != 2 {
		t.Error("Expected the previous value to restore the line")
	}

	_, before, _ = SplitLines(l, []shapes.Shape{other}, LineSplit{Line: line, Point: mid, Split: split})
	if len(before) != 0 {
		t.Error("Expected a split of a missing line to be skipped")
	}
}
