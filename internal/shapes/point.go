package shapes

import "github.com/inamate/core2d/internal/spatial"

// Point is a mutable coordinate. The same *Point may be referenced by
// several shapes; that sharing is what a connection is.
type Point struct {
	Base
	X float64
	Y float64
}

func (p *Point) Kind() Kind { return KindPoint }

// Set moves the point to an absolute position.
func (p *Point) Set(x, y float64) {
	if p.X == x && p.Y == y {
		return
	}
	p.X, p.Y = x, y
	p.dirty = true
}

func (p *Point) Move(dx, dy float64) {
	p.X += dx
	p.Y += dy
	p.dirty = true
}

func (p *Point) GetPoints(pts []*Point) []*Point {
	return append(pts, p)
}

func (p *Point) IsDirty() bool { return p.isDirty() }
func (p *Point) Invalidate()   { p.invalidate() }
func (p *Point) Draw(r Renderer) {
	r.DrawPoint(p)
}

// Vec returns the current coordinates as a value.
func (p *Point) Vec() spatial.Point2 {
	return spatial.Point2{X: p.X, Y: p.Y}
}
