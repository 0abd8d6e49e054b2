package spatial

// Polygon2 is a closed polygon given by its vertices in order.
type Polygon2 struct {
	Points []Point2
}

// Contains uses the even-odd rule.
func (p Polygon2) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := p.Points[i], p.Points[j]
		if (pi.Y > y) != (pj.Y > y) &&
			x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

// Bounds returns the bounding rect of all vertices.
func (p Polygon2) Bounds() Rect2 {
	return FromPointList(p.Points)
}

// Overlaps reports whether the polygon and the rect share any area or edge.
func (p Polygon2) Overlaps(r Rect2) bool {
	if len(p.Points) == 0 || !p.Bounds().IntersectsWith(r) {
		return false
	}
	for _, pt := range p.Points {
		if r.Contains(pt.X, pt.Y) {
			return true
		}
	}
	corners := [4]Point2{
		{r.Left(), r.Top()},
		{r.Right(), r.Top()},
		{r.Right(), r.Bottom()},
		{r.Left(), r.Bottom()},
	}
	for _, c := range corners {
		if p.Contains(c.X, c.Y) {
			return true
		}
	}
	n := len(p.Points)
	for i := 0; i < n; i++ {
		if SegmentIntersectsRect(p.Points[i], p.Points[(i+1)%n], r) {
			return true
		}
	}
	return false
}
