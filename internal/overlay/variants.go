package overlay

import (
	"github.com/inamate/core2d/internal/scene"
	"github.com/inamate/core2d/internal/shapes"
)

// Line shows the two endpoint handles of a line.
type Line struct {
	handles
	shape *shapes.Line
}

func NewLine(layer *scene.Layer, shape *shapes.Line, style *shapes.Style, factory shapes.Factory) *Line {
	return &Line{handles: newHandles(layer, factory, style), shape: shape}
}

func (o *Line) ToStateEnd() {
	o.point(o.shape.Start)
	o.point(o.shape.End)
}

func (o *Line) Move()  { o.move() }
func (o *Line) Reset() { o.reset() }

// Corners shows the top-left and bottom-right handles of a box shape.
// Ellipses also get a guide outline.
type Corners struct {
	handles
	box   *shapes.Box
	guide bool
}

func NewRectangle(layer *scene.Layer, shape *shapes.Rectangle, style *shapes.Style, factory shapes.Factory) *Corners {
	return &Corners{handles: newHandles(layer, factory, style), box: &shape.Box}
}

func NewEllipse(layer *scene.Layer, shape *shapes.Ellipse, style *shapes.Style, factory shapes.Factory) *Corners {
	return &Corners{handles: newHandles(layer, factory, style), box: &shape.Box, guide: true}
}

func NewText(layer *scene.Layer, shape *shapes.Text, style *shapes.Style, factory shapes.Factory) *Corners {
	return &Corners{handles: newHandles(layer, factory, style), box: &shape.Box}
}

func NewImage(layer *scene.Layer, shape *shapes.Image, style *shapes.Style, factory shapes.Factory) *Corners {
	return &Corners{handles: newHandles(layer, factory, style), box: &shape.Box}
}

func (o *Corners) ToStateBottomRight() {
	if o.guide {
		o.ellipse(o.box.TopLeft, o.box.BottomRight)
	}
	o.point(o.box.TopLeft)
	o.point(o.box.BottomRight)
}

func (o *Corners) Move()  { o.move() }
func (o *Corners) Reset() { o.reset() }

// Arc shows the bounding ellipse, then the start and end rays.
type Arc struct {
	handles
	shape  *shapes.Arc
	center *shapes.Point
}

func NewArc(layer *scene.Layer, shape *shapes.Arc, style *shapes.Style, factory shapes.Factory) *Arc {
	return &Arc{handles: newHandles(layer, factory, style), shape: shape, center: factory.CreatePointShape(0, 0)}
}

func (o *Arc) updateCenter() {
	o.center.Set((o.shape.P1.X+o.shape.P2.X)/2, (o.shape.P1.Y+o.shape.P2.Y)/2)
}

func (o *Arc) ToStatePoint2() {
	o.ellipse(o.shape.P1, o.shape.P2)
	o.point(o.shape.P1)
	o.point(o.shape.P2)
}

func (o *Arc) ToStatePoint3() {
	o.updateCenter()
	o.line(o.center, o.shape.P3)
	o.point(o.shape.P3)
}

func (o *Arc) ToStatePoint4() {
	o.updateCenter()
	o.line(o.center, o.shape.P4)
	o.point(o.shape.P4)
}

func (o *Arc) Move() {
	o.updateCenter()
	o.move()
}

func (o *Arc) Reset() { o.reset() }

// CubicBezier shows the end handles, then each control point with its
// tangent line.
type CubicBezier struct {
	handles
	shape *shapes.CubicBezier
}

func NewCubicBezier(layer *scene.Layer, shape *shapes.CubicBezier, style *shapes.Style, factory shapes.Factory) *CubicBezier {
	return &CubicBezier{handles: newHandles(layer, factory, style), shape: shape}
}

func (o *CubicBezier) ToStatePoint4() {
	o.point(o.shape.P1)
	o.point(o.shape.P4)
}

func (o *CubicBezier) ToStatePoint2() {
	o.line(o.shape.P1, o.shape.P2)
	o.point(o.shape.P2)
}

func (o *CubicBezier) ToStatePoint3() {
	o.line(o.shape.P4, o.shape.P3)
	o.point(o.shape.P3)
}

func (o *CubicBezier) Move()  { o.move() }
func (o *CubicBezier) Reset() { o.reset() }

type QuadraticBezier struct {
	handles
	shape *shapes.QuadraticBezier
}

func NewQuadraticBezier(layer *scene.Layer, shape *shapes.QuadraticBezier, style *shapes.Style, factory shapes.Factory) *QuadraticBezier {
	return &QuadraticBezier{handles: newHandles(layer, factory, style), shape: shape}
}

func (o *QuadraticBezier) ToStatePoint3() {
	o.point(o.shape.P1)
	o.point(o.shape.P3)
}

func (o *QuadraticBezier) ToStatePoint2() {
	o.line(o.shape.P1, o.shape.P2)
	o.line(o.shape.P2, o.shape.P3)
	o.point(o.shape.P2)
}

func (o *QuadraticBezier) Move()  { o.move() }
func (o *QuadraticBezier) Reset() { o.reset() }

// Path adds one handle per placed point.
type Path struct {
	handles
}

func NewPath(layer *scene.Layer, style *shapes.Style, factory shapes.Factory) *Path {
	return &Path{handles: newHandles(layer, factory, style)}
}

func (o *Path) AddPoint(p *shapes.Point) { o.point(p) }

// ReplacePoint moves the handle of a placed point onto its replacement.
func (o *Path) ReplacePoint(old, p *shapes.Point) { o.retarget(old, p) }

func (o *Path) Move()  { o.move() }
func (o *Path) Reset() { o.reset() }
