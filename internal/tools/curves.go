package tools

import (
	"github.com/inamate/core2d/internal/overlay"
	"github.com/inamate/core2d/internal/shapes"
)

// curveState counts the control points already fixed.
type curveState int

const (
	curveIdle curveState = iota
	curvePoint2
	curvePoint3
	curvePoint4
)

// Arc places the bounding corners P1 and P2, then the start ray P3 and
// the end ray P4.
type Arc struct {
	base
	state   curveState
	arc     *shapes.Arc
	overlay *overlay.Arc
}

func NewArc(ctx Context) *Arc {
	return &Arc{base: base{ctx: ctx}}
}

func (t *Arc) Title() string { return "Arc" }

func (t *Arc) BeginDown(args InputArgs) {
	e, ok := t.env()
	if !ok {
		return
	}
	x, y := t.snap(args)
	connect := func(p **shapes.Point) {
		if c := t.connectionPoint(e, x, y); c != nil {
			*p = c
		}
	}
	switch t.state {
	case curveIdle:
		f := e.factory
		t.arc = f.CreateArcShape(f.CreatePointShape(x, y), f.CreatePointShape(x, y),
			f.CreatePointShape(x, y), f.CreatePointShape(x, y), t.style(e),
			e.options.DefaultIsStroked, e.options.DefaultIsFilled)
		connect(&t.arc.P1)
		t.begin(e, t.arc)
		t.overlay = overlay.NewArc(e.page.Helper, t.arc, t.helperStyle(), f)
		t.overlay.ToStatePoint2()
		t.overlay.Move()
		t.state = curvePoint2
	case curvePoint2:
		t.arc.P2.Set(x, y)
		connect(&t.arc.P2)
		t.arc.P3.Set(x, y)
		t.overlay.ToStatePoint3()
		t.overlay.Move()
		t.state = curvePoint3
	case curvePoint3:
		t.arc.P3.Set(x, y)
		connect(&t.arc.P3)
		t.arc.P4.Set(x, y)
		t.overlay.ToStatePoint4()
		t.overlay.Move()
		t.state = curvePoint4
	case curvePoint4:
		t.arc.P4.Set(x, y)
		connect(&t.arc.P4)
		t.commit(e, t.arc)
		t.Reset()
	}
}

func (t *Arc) BeginUp(InputArgs) {}
func (t *Arc) EndUp(InputArgs)   {}

func (t *Arc) EndDown(InputArgs) {
	if t.state != curveIdle {
		t.Reset()
	}
}

func (t *Arc) Move(args InputArgs) {
	e, ok := t.env()
	if !ok {
		return
	}
	x, y := t.snap(args)
	t.hover(e, x, y)
	switch t.state {
	case curvePoint2:
		t.arc.P2.Set(x, y)
	case curvePoint3:
		t.arc.P3.Set(x, y)
	case curvePoint4:
		t.arc.P4.Set(x, y)
	default:
		return
	}
	e.page.Working.RaiseInvalidate()
	t.overlay.Move()
}

func (t *Arc) Reset() {
	if t.state != curveIdle {
		t.discard(t.arc)
	} else if t.ctx != nil {
		t.ctx.SetToolIdle(true)
	}
	t.state = curveIdle
	t.arc = nil
	if t.overlay != nil {
		t.overlay.Reset()
		t.overlay = nil
	}
}

// CubicBezier places P1, then the end point P4, then the control points
// P2 and P3.
type CubicBezier struct {
	base
	state   curveState
	bezier  *shapes.CubicBezier
	overlay *overlay.CubicBezier
}

func NewCubicBezier(ctx Context) *CubicBezier {
	return &CubicBezier{base: base{ctx: ctx}}
}

func (t *CubicBezier) Title() string { return "CubicBezier" }

func (t *CubicBezier) BeginDown(args InputArgs) {
	e, ok := t.env()
	if !ok {
		return
	}
	x, y := t.snap(args)
	connect := func(p **shapes.Point) {
		if c := t.connectionPoint(e, x, y); c != nil {
			*p = c
		}
	}
	switch t.state {
	case curveIdle:
		f := e.factory
		t.bezier = f.CreateCubicBezierShape(f.CreatePointShape(x, y), f.CreatePointShape(x, y),
			f.CreatePointShape(x, y), f.CreatePointShape(x, y), t.style(e),
			e.options.DefaultIsStroked, e.options.DefaultIsFilled)
		connect(&t.bezier.P1)
		t.begin(e, t.bezier)
		t.overlay = overlay.NewCubicBezier(e.page.Helper, t.bezier, t.helperStyle(), f)
		t.overlay.ToStatePoint4()
		t.overlay.Move()
		t.state = curvePoint4
	case curvePoint4:
		t.bezier.P3.Set(x, y)
		t.bezier.P4.Set(x, y)
		connect(&t.bezier.P4)
		t.overlay.ToStatePoint2()
		t.overlay.Move()
		t.state = curvePoint2
	case curvePoint2:
		t.bezier.P2.Set(x, y)
		connect(&t.bezier.P2)
		t.overlay.ToStatePoint3()
		t.overlay.Move()
		t.state = curvePoint3
	case curvePoint3:
		t.bezier.P3.Set(x, y)
		connect(&t.bezier.P3)
		t.commit(e, t.bezier)
		t.Reset()
	}
}

func (t *CubicBezier) BeginUp(InputArgs) {}
func (t *CubicBezier) EndUp(InputArgs)   {}

func (t *CubicBezier) EndDown(InputArgs) {
	if t.state != curveIdle {
		t.Reset()
	}
}

func (t *CubicBezier) Move(args InputArgs) {
	e, ok := t.env()
	if !ok {
		return
	}
	x, y := t.snap(args)
	t.hover(e, x, y)
	switch t.state {
	case curvePoint4:
		t.bezier.P2.Set(x, y)
		t.bezier.P3.Set(x, y)
		t.bezier.P4.Set(x, y)
	case curvePoint2:
		t.bezier.P2.Set(x, y)
	case curvePoint3:
		t.bezier.P3.Set(x, y)
	default:
		return
	}
	e.page.Working.RaiseInvalidate()
	t.overlay.Move()
}

func (t *CubicBezier) Reset() {
	if t.state != curveIdle {
		t.discard(t.bezier)
	} else if t.ctx != nil {
		t.ctx.SetToolIdle(true)
	}
	t.state = curveIdle
	t.bezier = nil
	if t.overlay != nil {
		t.overlay.Reset()
		t.overlay = nil
	}
}

// QuadraticBezier places P1, then the end point P3, then the control point P2.
type QuadraticBezier struct {
	base
	state   curveState
	bezier  *shapes.QuadraticBezier
	overlay *overlay.QuadraticBezier
}

func NewQuadraticBezier(ctx Context) *QuadraticBezier {
	return &QuadraticBezier{base: base{ctx: ctx}}
}

func (t *QuadraticBezier) Title() string { return "QuadraticBezier" }

func (t *QuadraticBezier) BeginDown(args InputArgs) {
	e, ok := t.env()
	if !ok {
		return
	}
	x, y := t.snap(args)
	connect := func(p **shapes.Point) {
		if c := t.connectionPoint(e, x, y); c != nil {
			*p = c
		}
	}
	switch t.state {
	case curveIdle:
		f := e.factory
		t.bezier = f.CreateQuadraticBezierShape(f.CreatePointShape(x, y), f.CreatePointShape(x, y),
			f.CreatePointShape(x, y), t.style(e), e.options.DefaultIsStroked, e.options.DefaultIsFilled)
		connect(&t.bezier.P1)
		t.begin(e, t.bezier)
		t.overlay = overlay.NewQuadraticBezier(e.page.Helper, t.bezier, t.helperStyle(), f)
		t.overlay.ToStatePoint3()
		t.overlay.Move()
		t.state = curvePoint3
	case curvePoint3:
		t.bezier.P3.Set(x, y)
		connect(&t.bezier.P3)
		t.overlay.ToStatePoint2()
		t.overlay.Move()
		t.state = curvePoint2
	case curvePoint2:
		t.bezier.P2.Set(x, y)
		connect(&t.bezier.P2)
		t.commit(e, t.bezier)
		t.Reset()
	}
}

func (t *QuadraticBezier) BeginUp(InputArgs) {}
func (t *QuadraticBezier) EndUp(InputArgs)   {}

func (t *QuadraticBezier) EndDown(InputArgs) {
	if t.state != curveIdle {
		t.Reset()
	}
}

func (t *QuadraticBezier) Move(args InputArgs) {
	e, ok := t.env()
	if !ok {
		return
	}
	x, y := t.snap(args)
	t.hover(e, x, y)
	switch t.state {
	case curvePoint3:
		t.bezier.P2.Set(x, y)
		t.bezier.P3.Set(x, y)
	case curvePoint2:
		t.bezier.P2.Set(x, y)
	default:
		return
	}
	e.page.Working.RaiseInvalidate()
	t.overlay.Move()
}

func (t *QuadraticBezier) Reset() {
	if t.state != curveIdle {
		t.discard(t.bezier)
	} else if t.ctx != nil {
		t.ctx.SetToolIdle(true)
	}
	t.state = curveIdle
	t.bezier = nil
	if t.overlay != nil {
		t.overlay.Reset()
		t.overlay = nil
	}
}
