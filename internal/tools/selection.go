package tools

import (
	"slices"

	"github.com/inamate/core2d/internal/scene"
	"github.com/inamate/core2d/internal/shapes"
)

type selectionState int

const (
	selectionIdle selectionState = iota
	selectionDrag
	selectionBand
)

// Select picks shapes by click or rubber band and drags the selection.
// A drag records one history entry when the button is released.
type Select struct {
	base
	state  selectionState
	lastX  float64
	lastY  float64
	before scene.PointsState
	moved  []shapes.Shape
	band   *shapes.Rectangle
}

func NewSelect(ctx Context) *Select {
	return &Select{base: base{ctx: ctx}}
}

func (t *Select) Title() string { return "Selection" }

func (t *Select) BeginDown(args InputArgs) {
	e, ok := t.env()
	sel := t.selection()
	if !ok || sel == nil || t.state != selectionIdle {
		return
	}
	x, y := t.snap(args)
	layer := e.page.CurrentLayer()
	t.ctx.SetToolIdle(false)

	if hit := sel.TryToGetShape(x, y); hit != nil {
		if !slices.Contains(sel.Selected(), hit) {
			sel.Select(layer, hit)
		}
		t.moved = unlocked(sel.Selected())
		t.before = scene.CapturePoints(layer, t.moved...)
		t.lastX, t.lastY = x, y
		t.state = selectionDrag
		return
	}

	sel.Deselect()
	f := e.factory
	t.band = f.CreateRectangleShape(f.CreatePointShape(x, y), f.CreatePointShape(x, y), t.helperStyle(), true, false)
	e.page.Working.AddShape(t.band)
	e.page.Working.RaiseInvalidate()
	t.state = selectionBand
}

func (t *Select) BeginUp(args InputArgs) {
	e, ok := t.env()
	sel := t.selection()
	if !ok || sel == nil {
		return
	}
	switch t.state {
	case selectionDrag:
		after := scene.CapturePoints(e.page.CurrentLayer(), t.moved...)
		if h := t.ctx.History(); h != nil && !after.Equal(t.before) {
			h.Snapshot("Move", t.before, after)
		}
		sel.OnUpdateDecorator()
	case selectionBand:
		rect := t.band.Rect()
		e.page.Working.RemoveShape(t.band)
		e.page.Working.RaiseInvalidate()
		if found := sel.TryToGetShapes(rect); len(found) > 0 {
			sel.Select(e.page.CurrentLayer(), found...)
		}
	default:
		return
	}
	t.clear()
}

func (t *Select) EndDown(InputArgs) {
	if t.state != selectionIdle {
		t.Reset()
	}
}

func (t *Select) EndUp(InputArgs) {}

func (t *Select) Move(args InputArgs) {
	e, ok := t.env()
	if !ok {
		return
	}
	x, y := t.snap(args)
	switch t.state {
	case selectionDrag:
		dx, dy := x-t.lastX, y-t.lastY
		if dx == 0 && dy == 0 {
			return
		}
		t.ctx.MoveShapes(t.moved, dx, dy)
		t.lastX, t.lastY = x, y
		e.page.CurrentLayer().RaiseInvalidate()
		if sel := t.selection(); sel != nil {
			sel.OnUpdateDecorator()
		}
	case selectionBand:
		t.band.BottomRight.Set(x, y)
		e.page.Working.RaiseInvalidate()
	default:
		t.hover(e, x, y)
	}
}

// Reset cancels a drag by restoring the captured coordinates.
func (t *Select) Reset() {
	switch t.state {
	case selectionDrag:
		t.before.Apply()
	case selectionBand:
		if t.ctx != nil {
			t.discard(t.band)
		}
	}
	t.clear()
}

func (t *Select) clear() {
	t.state = selectionIdle
	t.moved = nil
	t.band = nil
	t.before = scene.PointsState{}
	if t.ctx != nil {
		t.ctx.SetToolIdle(true)
	}
}

func unlocked(list []shapes.Shape) []shapes.Shape {
	out := make([]shapes.Shape, 0, len(list))
	for _, s := range list {
		if !s.HasState(shapes.Locked) {
			out = append(out, s)
		}
	}
	return out
}
