package spatial

// Rect2 represents an axis-aligned rectangle in world space.
type Rect2 struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// FromPoints returns the normalized rect spanning two corners.
func FromPoints(x1, y1, x2, y2 float64) Rect2 {
	return Rect2{
		X:      min(x1, x2),
		Y:      min(y1, y2),
		Width:  max(x1, x2) - min(x1, x2),
		Height: max(y1, y2) - min(y1, y2),
	}
}

// FromPointList returns the bounding rect of a point list. An empty list
// yields the zero rect.
func FromPointList(pts []Point2) Rect2 {
	if len(pts) == 0 {
		return Rect2{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return Rect2{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func (r Rect2) Left() float64   { return r.X }
func (r Rect2) Top() float64    { return r.Y }
func (r Rect2) Right() float64  { return r.X + r.Width }
func (r Rect2) Bottom() float64 { return r.Y + r.Height }

// Contains checks if a point is inside the rect. Edges are inside.
func (r Rect2) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// IntersectsWith reports whether both axis projections overlap.
// Touching edges count as overlap.
func (r Rect2) IntersectsWith(other Rect2) bool {
	return other.Left() <= r.Right() &&
		other.Right() >= r.Left() &&
		other.Top() <= r.Bottom() &&
		other.Bottom() >= r.Top()
}

// IsEmpty checks if the rect has zero or negative area.
func (r Rect2) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rect containing both rects. The zero rect is
// treated as "no bounds yet"; degenerate rects (zero width lines) still count.
func (r Rect2) Union(other Rect2) Rect2 {
	if r == (Rect2{}) {
		return other
	}
	if other == (Rect2{}) {
		return r
	}

	minX := min(r.X, other.X)
	minY := min(r.Y, other.Y)
	maxX := max(r.Right(), other.Right())
	maxY := max(r.Bottom(), other.Bottom())

	return Rect2{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// Center returns the center point of the rect.
func (r Rect2) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}
