package hittest

import (
	"github.com/inamate/core2d/internal/shapes"
	"github.com/inamate/core2d/internal/spatial"
)

func pointHit(p *shapes.Point, target spatial.Point2, radius float64) bool {
	return p != nil && p.Vec().ExpandToRect(radius).Contains(target.X, target.Y)
}

func firstPointHit(target spatial.Point2, radius float64, pts ...*shapes.Point) *shapes.Point {
	for _, p := range pts {
		if pointHit(p, target, radius) {
			return p
		}
	}
	return nil
}

func controlPolygon(pts ...*shapes.Point) spatial.Polygon2 {
	poly := spatial.Polygon2{Points: make([]spatial.Point2, 0, len(pts))}
	for _, p := range pts {
		poly.Points = append(poly.Points, p.Vec())
	}
	return poly
}

type pointBounds struct{}

func (pointBounds) Kind() shapes.Kind { return shapes.KindPoint }

func (pointBounds) TryToGetPoint(_ *Registry, s shapes.Shape, target spatial.Point2, radius, _ float64) *shapes.Point {
	p := must[*shapes.Point](s, shapes.KindPoint)
	if pointHit(p, target, radius) {
		return p
	}
	return nil
}

func (pointBounds) Contains(_ *Registry, s shapes.Shape, target spatial.Point2, radius, _ float64) bool {
	return pointHit(must[*shapes.Point](s, shapes.KindPoint), target, radius)
}

func (pointBounds) Overlaps(_ *Registry, s shapes.Shape, rect spatial.Rect2, radius, _ float64) bool {
	p := must[*shapes.Point](s, shapes.KindPoint)
	return p.Vec().ExpandToRect(radius).IntersectsWith(rect)
}

type lineBounds struct{}

func (lineBounds) Kind() shapes.Kind { return shapes.KindLine }

func (lineBounds) TryToGetPoint(_ *Registry, s shapes.Shape, target spatial.Point2, radius, _ float64) *shapes.Point {
	l := must[*shapes.Line](s, shapes.KindLine)
	return firstPointHit(target, radius, l.Start, l.End)
}

func (lineBounds) Contains(_ *Registry, s shapes.Shape, target spatial.Point2, radius, _ float64) bool {
	l := must[*shapes.Line](s, shapes.KindLine)
	return spatial.DistanceToSegment(target, l.Start.Vec(), l.End.Vec()) <= radius
}

func (lineBounds) Overlaps(_ *Registry, s shapes.Shape, rect spatial.Rect2, _, _ float64) bool {
	l := must[*shapes.Line](s, shapes.KindLine)
	return spatial.SegmentIntersectsRect(l.Start.Vec(), l.End.Vec(), rect)
}

// boxed is implemented by the rectangle-like variants.
type boxed interface {
	shapes.Shape
	Rect() spatial.Rect2
}

func corners(s shapes.Shape) []*shapes.Point {
	return s.GetPoints(nil)
}

type boxBounds[T boxed] struct {
	kind shapes.Kind
}

func (b boxBounds[T]) Kind() shapes.Kind { return b.kind }

func (b boxBounds[T]) TryToGetPoint(_ *Registry, s shapes.Shape, target spatial.Point2, radius, _ float64) *shapes.Point {
	v := must[T](s, b.kind)
	return firstPointHit(target, radius, corners(v)...)
}

func (b boxBounds[T]) Contains(_ *Registry, s shapes.Shape, target spatial.Point2, _, _ float64) bool {
	return must[T](s, b.kind).Rect().Contains(target.X, target.Y)
}

func (b boxBounds[T]) Overlaps(_ *Registry, s shapes.Shape, rect spatial.Rect2, _, _ float64) bool {
	return must[T](s, b.kind).Rect().IntersectsWith(rect)
}

type ellipseBounds struct{}

func (ellipseBounds) Kind() shapes.Kind { return shapes.KindEllipse }

func (ellipseBounds) TryToGetPoint(_ *Registry, s shapes.Shape, target spatial.Point2, radius, _ float64) *shapes.Point {
	e := must[*shapes.Ellipse](s, shapes.KindEllipse)
	return firstPointHit(target, radius, e.TopLeft, e.BottomRight)
}

// Contains uses the ellipse equation. A degenerate ellipse falls back to
// its bounding rect.
func (ellipseBounds) Contains(_ *Registry, s shapes.Shape, target spatial.Point2, _, _ float64) bool {
	r := must[*shapes.Ellipse](s, shapes.KindEllipse).Rect()
	if r.IsEmpty() {
		return r.Contains(target.X, target.Y)
	}
	cx, cy := r.Center()
	rx, ry := r.Width/2, r.Height/2
	dx, dy := (target.X-cx)/rx, (target.Y-cy)/ry
	return dx*dx+dy*dy <= 1
}

func (ellipseBounds) Overlaps(_ *Registry, s shapes.Shape, rect spatial.Rect2, _, _ float64) bool {
	return must[*shapes.Ellipse](s, shapes.KindEllipse).Rect().IntersectsWith(rect)
}

// arcBounds treats the arc body as the rect of its ellipse corners.
type arcBounds struct{}

func (arcBounds) Kind() shapes.Kind { return shapes.KindArc }

func (arcBounds) TryToGetPoint(_ *Registry, s shapes.Shape, target spatial.Point2, radius, _ float64) *shapes.Point {
	a := must[*shapes.Arc](s, shapes.KindArc)
	return firstPointHit(target, radius, a.P1, a.P2, a.P3, a.P4)
}

func (arcBounds) Contains(_ *Registry, s shapes.Shape, target spatial.Point2, _, _ float64) bool {
	a := must[*shapes.Arc](s, shapes.KindArc)
	return spatial.FromPoints(a.P1.X, a.P1.Y, a.P2.X, a.P2.Y).Contains(target.X, target.Y)
}

func (arcBounds) Overlaps(_ *Registry, s shapes.Shape, rect spatial.Rect2, _, _ float64) bool {
	a := must[*shapes.Arc](s, shapes.KindArc)
	return spatial.FromPoints(a.P1.X, a.P1.Y, a.P2.X, a.P2.Y).IntersectsWith(rect)
}

// polyBounds hit-tests beziers by their control polygon.
type polyBounds[T shapes.Shape] struct {
	kind shapes.Kind
}

func (b polyBounds[T]) Kind() shapes.Kind { return b.kind }

func (b polyBounds[T]) TryToGetPoint(_ *Registry, s shapes.Shape, target spatial.Point2, radius, _ float64) *shapes.Point {
	v := must[T](s, b.kind)
	return firstPointHit(target, radius, v.GetPoints(nil)...)
}

func (b polyBounds[T]) Contains(_ *Registry, s shapes.Shape, target spatial.Point2, _, _ float64) bool {
	v := must[T](s, b.kind)
	return controlPolygon(v.GetPoints(nil)...).Contains(target.X, target.Y)
}

func (b polyBounds[T]) Overlaps(_ *Registry, s shapes.Shape, rect spatial.Rect2, _, _ float64) bool {
	v := must[T](s, b.kind)
	return controlPolygon(v.GetPoints(nil)...).Overlaps(rect)
}

type pathBounds struct{}

func (pathBounds) Kind() shapes.Kind { return shapes.KindPath }

func (pathBounds) TryToGetPoint(_ *Registry, s shapes.Shape, target spatial.Point2, radius, _ float64) *shapes.Point {
	p := must[*shapes.Path](s, shapes.KindPath)
	return firstPointHit(target, radius, p.GetPoints(nil)...)
}

// Contains is true inside any figure's control polygon or within radius
// of its outline.
func (pathBounds) Contains(_ *Registry, s shapes.Shape, target spatial.Point2, radius, _ float64) bool {
	p := must[*shapes.Path](s, shapes.KindPath)
	for _, f := range p.Figures {
		poly := controlPolygon(f.GetPoints(nil)...)
		if poly.Contains(target.X, target.Y) {
			return true
		}
		for i := 1; i < len(poly.Points); i++ {
			if spatial.DistanceToSegment(target, poly.Points[i-1], poly.Points[i]) <= radius {
				return true
			}
		}
	}
	return false
}

func (pathBounds) Overlaps(_ *Registry, s shapes.Shape, rect spatial.Rect2, _, _ float64) bool {
	p := must[*shapes.Path](s, shapes.KindPath)
	for _, f := range p.Figures {
		if controlPolygon(f.GetPoints(nil)...).Overlaps(rect) {
			return true
		}
	}
	return false
}

type groupBounds struct{}

func (groupBounds) Kind() shapes.Kind { return shapes.KindGroup }

// TryToGetPoint checks connectors first, then children through the registry.
func (groupBounds) TryToGetPoint(h *Registry, s shapes.Shape, target spatial.Point2, radius, scale float64) *shapes.Point {
	g := must[*shapes.Group](s, shapes.KindGroup)
	if p := firstPointHit(target, radius, g.Connectors...); p != nil {
		return p
	}
	for _, child := range g.Shapes {
		if p := h.TryToGetPoint(child, target, radius, scale); p != nil {
			return p
		}
	}
	return nil
}

func (groupBounds) Contains(h *Registry, s shapes.Shape, target spatial.Point2, radius, scale float64) bool {
	g := must[*shapes.Group](s, shapes.KindGroup)
	for _, child := range g.Shapes {
		if h.Contains(child, target, radius, scale) {
			return true
		}
	}
	return false
}

func (groupBounds) Overlaps(h *Registry, s shapes.Shape, rect spatial.Rect2, radius, scale float64) bool {
	g := must[*shapes.Group](s, shapes.KindGroup)
	for _, child := range g.Shapes {
		if h.Overlaps(child, rect, radius, scale) {
			return true
		}
	}
	for _, c := range g.Connectors {
		if c.Vec().ExpandToRect(radius).IntersectsWith(rect) {
			return true
		}
	}
	return false
}
