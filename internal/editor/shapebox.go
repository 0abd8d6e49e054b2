package editor

import (
	"cmp"

	"github.com/inamate/core2d/internal/shapes"
	"github.com/inamate/core2d/internal/spatial"
)

// ShapeBox is a short-lived view of a shape's bounds and points used by
// the layout commands.
type ShapeBox struct {
	Shape  shapes.Shape
	Points []*shapes.Point
	Bounds spatial.Rect2
}

func NewShapeBox(s shapes.Shape) *ShapeBox {
	b := &ShapeBox{Shape: s, Points: shapes.Points(s)}
	b.Update()
	return b
}

// Update recomputes Bounds from the current point coordinates.
func (b *ShapeBox) Update() {
	pts := make([]spatial.Point2, len(b.Points))
	for i, p := range b.Points {
		pts[i] = p.Vec()
	}
	b.Bounds = spatial.FromPointList(pts)
}

func (b *ShapeBox) CenterX() float64 { return b.Bounds.X + b.Bounds.Width/2 }
func (b *ShapeBox) CenterY() float64 { return b.Bounds.Y + b.Bounds.Height/2 }

// MoveBy moves every point of the box once.
func (b *ShapeBox) MoveBy(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	for _, p := range b.Points {
		p.Move(dx, dy)
	}
	b.Update()
}

// Transform maps every point of the box through m.
func (b *ShapeBox) Transform(m spatial.Matrix2D) {
	for _, p := range b.Points {
		p.Set(m.TransformPoint(p.X, p.Y))
	}
	b.Update()
}

func CompareLeft(a, b *ShapeBox) int    { return cmp.Compare(a.Bounds.Left(), b.Bounds.Left()) }
func CompareRight(a, b *ShapeBox) int   { return cmp.Compare(a.Bounds.Right(), b.Bounds.Right()) }
func CompareTop(a, b *ShapeBox) int     { return cmp.Compare(a.Bounds.Top(), b.Bounds.Top()) }
func CompareBottom(a, b *ShapeBox) int  { return cmp.Compare(a.Bounds.Bottom(), b.Bounds.Bottom()) }
func CompareCenterX(a, b *ShapeBox) int { return cmp.Compare(a.CenterX(), b.CenterX()) }
func CompareCenterY(a, b *ShapeBox) int { return cmp.Compare(a.CenterY(), b.CenterY()) }
func CompareWidth(a, b *ShapeBox) int   { return cmp.Compare(a.Bounds.Width, b.Bounds.Width) }
func CompareHeight(a, b *ShapeBox) int  { return cmp.Compare(a.Bounds.Height, b.Bounds.Height) }

// boxesBounds is the union of the boxes' bounds.
func boxesBounds(boxes []*ShapeBox) spatial.Rect2 {
	var r spatial.Rect2
	for i, b := range boxes {
		if i == 0 {
			r = b.Bounds
			continue
		}
		r = r.Union(b.Bounds)
	}
	return r
}
