package tools

import (
	"fmt"

	"github.com/inamate/core2d/internal/overlay"
	"github.com/inamate/core2d/internal/shapes"
)

type EllipseMode int

const (
	// EllipseRectangle places the two corners independently.
	EllipseRectangle EllipseMode = iota
	// EllipseCircle fixes the center on the first click and keeps the box square.
	EllipseCircle
)

func (m EllipseMode) String() string {
	if m == EllipseCircle {
		return "circle"
	}
	return "rectangle"
}

func ParseEllipseMode(name string) (EllipseMode, error) {
	switch name {
	case "rectangle":
		return EllipseRectangle, nil
	case "circle":
		return EllipseCircle, nil
	}
	return 0, fmt.Errorf("unknown ellipse mode %q", name)
}

type Ellipse struct {
	base
	Mode EllipseMode

	state   cornerState
	ellipse *shapes.Ellipse
	overlay *overlay.Corners
	cx, cy  float64
}

func NewEllipse(ctx Context) *Ellipse {
	return &Ellipse{base: base{ctx: ctx}}
}

func (t *Ellipse) Title() string { return "Ellipse" }

func (t *Ellipse) BeginDown(args InputArgs) {
	e, ok := t.env()
	if !ok {
		return
	}
	x, y := t.snap(args)
	switch t.state {
	case cornerTopLeft:
		f := e.factory
		t.cx, t.cy = x, y
		t.ellipse = f.CreateEllipseShape(f.CreatePointShape(x, y), f.CreatePointShape(x, y), t.style(e),
			e.options.DefaultIsStroked, e.options.DefaultIsFilled)
		// Circle mode rewrites both corners, so it never adopts a shared point.
		if t.Mode == EllipseRectangle {
			if c := t.connectionPoint(e, x, y); c != nil {
				t.ellipse.TopLeft = c
			}
		}
		t.begin(e, t.ellipse)
		t.overlay = overlay.NewEllipse(e.page.Helper, t.ellipse, t.helperStyle(), f)
		t.overlay.ToStateBottomRight()
		t.overlay.Move()
		t.state = cornerBottomRight
	case cornerBottomRight:
		t.update(x, y)
		if t.Mode == EllipseRectangle {
			if c := t.connectionPoint(e, x, y); c != nil && c != t.ellipse.TopLeft {
				t.ellipse.BottomRight = c
			}
		}
		t.commit(e, t.ellipse)
		t.Reset()
	}
}

func (t *Ellipse) update(x, y float64) {
	if t.Mode == EllipseCircle {
		CircleConstrain(t.ellipse.TopLeft, t.ellipse.BottomRight, t.cx, t.cy, x, y)
		return
	}
	t.ellipse.BottomRight.Set(x, y)
}

func (t *Ellipse) BeginUp(InputArgs) {}
func (t *Ellipse) EndUp(InputArgs)   {}

func (t *Ellipse) EndDown(InputArgs) {
	if t.state != cornerTopLeft {
		t.Reset()
	}
}

func (t *Ellipse) Move(args InputArgs) {
	e, ok := t.env()
	if !ok {
		return
	}
	x, y := t.snap(args)
	t.hover(e, x, y)
	if t.state == cornerBottomRight {
		t.update(x, y)
		e.page.Working.RaiseInvalidate()
		t.overlay.Move()
	}
}

func (t *Ellipse) Reset() {
	if t.state == cornerBottomRight {
		t.discard(t.ellipse)
	} else if t.ctx != nil {
		t.ctx.SetToolIdle(true)
	}
	t.state = cornerTopLeft
	t.ellipse = nil
	if t.overlay != nil {
		t.overlay.Reset()
		t.overlay = nil
	}
}
