package spatial

import "math"

// Point2 is an immutable 2D coordinate value.
type Point2 struct {
	X float64
	Y float64
}

// ExpandToRect returns the rect centered on p with half extents equal to radius.
func (p Point2) ExpandToRect(radius float64) Rect2 {
	size := radius * 2
	return Rect2{X: p.X - radius, Y: p.Y - radius, Width: size, Height: size}
}

// DistanceTo returns the euclidean distance between two points.
func (p Point2) DistanceTo(other Point2) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Snap rounds v to the nearest multiple of step. A non-positive step
// returns v unchanged.
func Snap(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	r := math.Mod(v, step)
	if math.Abs(r) >= step/2 {
		return v + math.Copysign(step, v) - r
	}
	return v - r
}
