package spatial

import (
	"math"
	"testing"
)

func TestExpandToRectContainsCenter(t *testing.T) {
	points := []Point2{{0, 0}, {10, -5}, {-123.5, 42.25}, {1e6, 1e-6}}
	radii := []float64{0.5, 1, 4, 100}

	for _, p := range points {
		for _, r := range radii {
			rect := p.ExpandToRect(r)
			if !rect.Contains(p.X, p.Y) {
				t.Errorf("Expected rect %+v to contain %+v", rect, p)
			}
			if rect.Contains(p.X+r+0.001, p.Y) {
				t.Errorf("Expected rect %+v not to contain x=%v", rect, p.X+r+0.001)
			}
			if rect.Width != 2*r || rect.Height != 2*r {
				t.Errorf("Expected size %v, got %vx%v", 2*r, rect.Width, rect.Height)
			}
		}
	}
}

func TestRectContainsInclusive(t *testing.T) {
	r := Rect2{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{10, 10, true},
		{5, 10, true},
		{10.0001, 5, false},
		{-0.0001, 5, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestIntersectsWithTouchingEdges(t *testing.T) {
	a := Rect2{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name string
		b    Rect2
		want bool
	}{
		{"overlap", Rect2{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"touching right edge", Rect2{X: 10, Y: 0, Width: 5, Height: 5}, true},
		{"touching corner", Rect2{X: 10, Y: 10, Width: 5, Height: 5}, true},
		{"inside", Rect2{X: 2, Y: 2, Width: 1, Height: 1}, true},
		{"apart x", Rect2{X: 11, Y: 0, Width: 5, Height: 5}, false},
		{"apart y", Rect2{X: 0, Y: -6, Width: 5, Height: 5}, false},
	}
	for _, tt := range tests {
		if got := a.IntersectsWith(tt.b); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
		if got := tt.b.IntersectsWith(a); got != tt.want {
			t.Errorf("%s (reversed): expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestFromPointsNormalizes(t *testing.T) {
	r := FromPoints(50, 40, 10, 20)
	want := Rect2{X: 10, Y: 20, Width: 40, Height: 20}
	if r != want {
		t.Errorf("Expected %+v, got %+v", want, r)
	}
}

func TestUnionKeepsDegenerateRects(t *testing.T) {
	line := FromPoints(0, 5, 10, 5)
	other := Rect2{X: 20, Y: 0, Width: 5, Height: 5}
	u := line.Union(other)
	want := Rect2{X: 0, Y: 0, Width: 25, Height: 5}
	if u != want {
		t.Errorf("Expected %+v, got %+v", want, u)
	}
	if got := (Rect2{}).Union(other); got != other {
		t.Errorf("Expected zero rect union to return other, got %+v", got)
	}
}

func TestPolygonContainsEvenOdd(t *testing.T) {
	square := Polygon2{Points: []Point2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	if !square.Contains(5, 5) {
		t.Error("Expected center to be inside")
	}
	if square.Contains(15, 5) {
		t.Error("Expected outside point to be outside")
	}
	if (Polygon2{Points: []Point2{{0, 0}, {1, 1}}}).Contains(0.5, 0.5) {
		t.Error("Expected degenerate polygon to contain nothing")
	}
}

func TestPolygonOverlaps(t *testing.T) {
	tri := Polygon2{Points: []Point2{{0, 0}, {10, 0}, {0, 10}}}
	if !tri.Overlaps(Rect2{X: 1, Y: 1, Width: 1, Height: 1}) {
		t.Error("Expected rect inside triangle to overlap")
	}
	if tri.Overlaps(Rect2{X: 8, Y: 8, Width: 1, Height: 1}) {
		t.Error("Expected rect beyond hypotenuse not to overlap")
	}
	if !tri.Overlaps(Rect2{X: -5, Y: -5, Width: 20, Height: 20}) {
		t.Error("Expected enclosing rect to overlap")
	}
}

func TestDistanceToSegment(t *testing.T) {
	a, b := Point2{0, 0}, Point2{10, 0}
	tests := []struct {
		p    Point2
		want float64
	}{
		{Point2{5, 3}, 3},
		{Point2{-4, 3}, 5},
		{Point2{10, 0}, 0},
	}
	for _, tt := range tests {
		if got := DistanceToSegment(tt.p, a, b); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("DistanceToSegment(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestSegmentIntersectsRect(t *testing.T) {
	r := Rect2{X: 0, Y: 0, Width: 10, Height: 10}
	if !SegmentIntersectsRect(Point2{-5, 5}, Point2{15, 5}, r) {
		t.Error("Expected crossing segment to intersect")
	}
	if SegmentIntersectsRect(Point2{-5, -5}, Point2{-1, 20}, r) {
		t.Error("Expected segment left of rect not to intersect")
	}
}

func TestSegmentIntersection(t *testing.T) {
	p, ok := SegmentIntersection(Point2{0, 0}, Point2{10, 10}, Point2{0, 10}, Point2{10, 0})
	if !ok || p.X != 5 || p.Y != 5 {
		t.Errorf("Expected (5,5), got %+v ok=%v", p, ok)
	}
	if _, ok := SegmentIntersection(Point2{0, 0}, Point2{1, 0}, Point2{0, 1}, Point2{1, 1}); ok {
		t.Error("Expected parallel segments not to intersect")
	}
}

func TestSnap(t *testing.T) {
	tests := []struct{ v, step, want float64 }{
		{14, 10, 10},
		{16, 10, 20},
		{-16, 10, -20},
		{7, 0, 7},
	}
	for _, tt := range tests {
		if got := Snap(tt.v, tt.step); got != tt.want {
			t.Errorf("Snap(%v, %v) = %v, want %v", tt.v, tt.step, got, tt.want)
		}
	}
}

func TestMatrixRotateAtAndInvert(t *testing.T) {
	m := RotateAt(90, 5, 5)
	x, y := m.TransformPoint(10, 5)
	if math.Abs(x-5) > 1e-9 || math.Abs(y-10) > 1e-9 {
		t.Errorf("Expected (5,10), got (%v,%v)", x, y)
	}
	id := m.Multiply(m.Invert())
	if !id.IsIdentity() {
		t.Errorf("Expected identity, got %v", id)
	}
	fx, fy := ScaleAt(-1, 1, 5, 0).TransformPoint(0, 3)
	if fx != 10 || fy != 3 {
		t.Errorf("Expected flip to (10,3), got (%v,%v)", fx, fy)
	}
}
