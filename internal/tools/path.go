package tools

import (
	"github.com/inamate/core2d/internal/overlay"
	"github.com/inamate/core2d/internal/shapes"
)

// Path draws a polyline. Each BeginDown fixes the floating point and
// starts a new segment; EndDown commits when at least one segment is
// fixed and cancels otherwise.
type Path struct {
	base
	drawing bool
	path    *shapes.Path
	figure  *shapes.Figure
	overlay *overlay.Path
}

func NewPath(ctx Context) *Path {
	return &Path{base: base{ctx: ctx}}
}

func (t *Path) Title() string { return "Path" }

func (t *Path) floating() *shapes.LineSegment {
	return t.figure.Segments[len(t.figure.Segments)-1].(*shapes.LineSegment)
}

func (t *Path) BeginDown(args InputArgs) {
	e, ok := t.env()
	if !ok {
		return
	}
	x, y := t.snap(args)
	f := e.factory
	if !t.drawing {
		start := f.CreatePointShape(x, y)
		if c := t.connectionPoint(e, x, y); c != nil {
			start = c
		}
		t.figure = &shapes.Figure{
			StartPoint: start,
			Segments:   []shapes.Segment{&shapes.LineSegment{Point: f.CreatePointShape(x, y)}},
		}
		t.path = f.CreatePathShape("", t.style(e), []*shapes.Figure{t.figure}, shapes.EvenOdd,
			e.options.DefaultIsStroked, e.options.DefaultIsFilled)
		t.begin(e, t.path)
		t.overlay = overlay.NewPath(e.page.Helper, t.helperStyle(), f)
		t.overlay.AddPoint(start)
		t.overlay.AddPoint(t.floating().Point)
		t.overlay.Move()
		t.drawing = true
		return
	}

	seg := t.floating()
	seg.Point.Set(x, y)
	if c := t.connectionPoint(e, x, y); c != nil {
		t.overlay.ReplacePoint(seg.Point, c)
		seg.Point = c
	}
	next := &shapes.LineSegment{Point: f.CreatePointShape(x, y)}
	next.Point.SetOwner(t.path.ID())
	t.figure.Segments = append(t.figure.Segments, next)
	t.path.MarkDirty()
	t.overlay.AddPoint(next.Point)
	t.overlay.Move()
}

func (t *Path) BeginUp(InputArgs) {}
func (t *Path) EndUp(InputArgs)   {}

func (t *Path) EndDown(InputArgs) {
	if !t.drawing {
		return
	}
	e, ok := t.env()
	if !ok || len(t.figure.Segments) < 2 {
		t.Reset()
		return
	}
	t.figure.Segments = t.figure.Segments[:len(t.figure.Segments)-1]
	t.commit(e, t.path)
	t.Reset()
}

func (t *Path) Move(args InputArgs) {
	e, ok := t.env()
	if !ok {
		return
	}
	x, y := t.snap(args)
	t.hover(e, x, y)
	if t.drawing {
		t.floating().Point.Set(x, y)
		e.page.Working.RaiseInvalidate()
		t.overlay.Move()
	}
}

func (t *Path) Reset() {
	if t.drawing {
		t.discard(t.path)
	} else if t.ctx != nil {
		t.ctx.SetToolIdle(true)
	}
	t.drawing = false
	t.path, t.figure = nil, nil
	if t.overlay != nil {
		t.overlay.Reset()
		t.overlay = nil
	}
}
