package shapes

import "github.com/inamate/core2d/internal/spatial"

// Line is a straight segment between two points.
type Line struct {
	Base
	Start *Point
	End   *Point
}

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) GetPoints(pts []*Point) []*Point {
	return append(pts, l.Start, l.End)
}

func (l *Line) Move(dx, dy float64) {
	l.Start.Move(dx, dy)
	l.End.Move(dx, dy)
}

func (l *Line) IsDirty() bool { return l.isDirty() || anyDirty(l.Start, l.End) }

func (l *Line) Invalidate() {
	l.invalidate()
	invalidateAll(l.Start, l.End)
}

func (l *Line) Draw(r Renderer) { r.DrawLine(l) }

// Box is the two-corner geometry shared by rectangle-like shapes.
type Box struct {
	TopLeft     *Point
	BottomRight *Point
}

func (b *Box) GetPoints(pts []*Point) []*Point {
	return append(pts, b.TopLeft, b.BottomRight)
}

func (b *Box) Move(dx, dy float64) {
	b.TopLeft.Move(dx, dy)
	b.BottomRight.Move(dx, dy)
}

// Rect returns the normalized rect between the two corners.
func (b *Box) Rect() spatial.Rect2 {
	return spatial.FromPoints(b.TopLeft.X, b.TopLeft.Y, b.BottomRight.X, b.BottomRight.Y)
}

type Rectangle struct {
	Base
	Box
}

func (r *Rectangle) Kind() Kind    { return KindRectangle }
func (r *Rectangle) IsDirty() bool { return r.isDirty() || anyDirty(r.TopLeft, r.BottomRight) }

func (r *Rectangle) Draw(dc Renderer) { dc.DrawRectangle(r) }

func (r *Rectangle) Invalidate() {
	r.invalidate()
	invalidateAll(r.TopLeft, r.BottomRight)
}

type Ellipse struct {
	Base
	Box
}

func (e *Ellipse) Kind() Kind      { return KindEllipse }
func (e *Ellipse) IsDirty() bool   { return e.isDirty() || anyDirty(e.TopLeft, e.BottomRight) }
func (e *Ellipse) Draw(r Renderer) { r.DrawEllipse(e) }

func (e *Ellipse) Invalidate() {
	e.invalidate()
	invalidateAll(e.TopLeft, e.BottomRight)
}

// Image references an external bitmap by key.
type Image struct {
	Base
	Box
	Key string
}

func (i *Image) Kind() Kind      { return KindImage }
func (i *Image) IsDirty() bool   { return i.isDirty() || anyDirty(i.TopLeft, i.BottomRight) }
func (i *Image) Draw(r Renderer) { r.DrawImage(i) }

func (i *Image) Invalidate() {
	i.invalidate()
	invalidateAll(i.TopLeft, i.BottomRight)
}

// Arc is an elliptical arc defined by its bounding corners (P1, P2) and the
// start (P3) and end (P4) direction points.
type Arc struct {
	Base
	P1, P2, P3, P4 *Point
}

func (a *Arc) Kind() Kind { return KindArc }

func (a *Arc) GetPoints(pts []*Point) []*Point {
	return append(pts, a.P1, a.P2, a.P3, a.P4)
}

func (a *Arc) Move(dx, dy float64) {
	for _, p := range Points(a) {
		p.Move(dx, dy)
	}
}

func (a *Arc) IsDirty() bool { return a.isDirty() || anyDirty(a.P1, a.P2, a.P3, a.P4) }

func (a *Arc) Invalidate() {
	a.invalidate()
	invalidateAll(a.P1, a.P2, a.P3, a.P4)
}

func (a *Arc) Draw(r Renderer) { r.DrawArc(a) }

type CubicBezier struct {
	Base
	P1, P2, P3, P4 *Point
}

func (b *CubicBezier) Kind() Kind { return KindCubicBezier }

func (b *CubicBezier) GetPoints(pts []*Point) []*Point {
	return append(pts, b.P1, b.P2, b.P3, b.P4)
}

func (b *CubicBezier) Move(dx, dy float64) {
	for _, p := range Points(b) {
		p.Move(dx, dy)
	}
}

func (b *CubicBezier) IsDirty() bool { return b.isDirty() || anyDirty(b.P1, b.P2, b.P3, b.P4) }

func (b *CubicBezier) Invalidate() {
	b.invalidate()
	invalidateAll(b.P1, b.P2, b.P3, b.P4)
}

func (b *CubicBezier) Draw(r Renderer) { r.DrawCubicBezier(b) }

type QuadraticBezier struct {
	Base
	P1, P2, P3 *Point
}

func (q *QuadraticBezier) Kind() Kind { return KindQuadraticBezier }

func (q *QuadraticBezier) GetPoints(pts []*Point) []*Point {
	return append(pts, q.P1, q.P2, q.P3)
}

func (q *QuadraticBezier) Move(dx, dy float64) {
	for _, p := range Points(q) {
		p.Move(dx, dy)
	}
}

func (q *QuadraticBezier) IsDirty() bool { return q.isDirty() || anyDirty(q.P1, q.P2, q.P3) }

func (q *QuadraticBezier) Invalidate() {
	q.invalidate()
	invalidateAll(q.P1, q.P2, q.P3)
}

func (q *QuadraticBezier) Draw(r Renderer) { r.DrawQuadraticBezier(q) }
