package tools

import "github.com/inamate/core2d/internal/shapes"

// Point places a standalone point with one click. When the click lands
// on a line the point splits it instead.
type Point struct {
	base
}

func NewPoint(ctx Context) *Point {
	return &Point{base: base{ctx: ctx}}
}

func (t *Point) Title() string { return "Point" }

func (t *Point) BeginDown(args InputArgs) {
	e, ok := t.env()
	if !ok {
		return
	}
	x, y := t.snap(args)
	p := e.factory.CreatePointShape(x, y)
	p.SetState(p.State() | shapes.Standalone)
	p.SetStyle(t.style(e))
	t.ctx.SetShapeName(p)

	if sel := t.selection(); sel != nil && e.options.TryToConnect {
		if split, ok := sel.TryToSplitLine(args.X, args.Y, p); ok {
			t.ctx.SplitLines(e.page.CurrentLayer(), split)
			return
		}
	}
	t.ctx.AddShape(e.page.CurrentLayer(), p)
}

func (t *Point) BeginUp(InputArgs) {}
func (t *Point) EndDown(InputArgs) {}
func (t *Point) EndUp(InputArgs)   {}

func (t *Point) Move(args InputArgs) {
	e, ok := t.env()
	if !ok {
		return
	}
	x, y := t.snap(args)
	t.hover(e, x, y)
}

func (t *Point) Reset() {
	if t.ctx != nil {
		t.ctx.SetToolIdle(true)
	}
}

// None ignores all input.
type None struct{}

func (None) Title() string       { return "None" }
func (None) BeginDown(InputArgs) {}
func (None) BeginUp(InputArgs)   {}
func (None) EndDown(InputArgs)   {}
func (None) EndUp(InputArgs)     {}
func (None) Move(InputArgs)      {}
func (None) Reset()              {}
