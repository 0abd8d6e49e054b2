package pathconv

import (
	"errors"
	"math"
	"testing"

	"github.com/inamate/core2d/internal/shapes"
	"github.com/inamate/core2d/internal/spatial"
)

var f = shapes.NewFactory()

func rectangle(x1, y1, x2, y2 float64) *shapes.Rectangle {
	return f.CreateRectangleShape(f.CreatePointShape(x1, y1), f.CreatePointShape(x2, y2), shapes.NewStyle("s"), true, true)
}

func near(a, b spatial.Rect2) bool {
	const eps = 1e-6
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.Width-b.Width) < eps && math.Abs(a.Height-b.Height) < eps
}

func TestToPathShapeRectangle(t *testing.T) {
	c := New(nil)
	p, err := c.ToPathShape(rectangle(0, 0, 10, 20))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(p.Figures) != 1 || !p.Figures[0].IsClosed {
		t.Fatalf("Expected one closed figure, got %d", len(p.Figures))
	}
	if got := shapes.Bounds(p); !near(got, spatial.Rect2{Width: 10, Height: 20}) {
		t.Errorf("Expected bounds 10x20, got %+v", got)
	}
	for _, pt := range p.GetPoints(nil) {
		if pt.Owner() != p.ID() {
			t.Fatal("Expected every point to be owned by the path")
		}
	}
}

func TestToPathShapeEllipse(t *testing.T) {
	c := New(nil)
	e := f.CreateEllipseShape(f.CreatePointShape(0, 0), f.CreatePointShape(20, 10), shapes.NewStyle("s"), true, false)
	p, err := c.ToPathShape(e)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	cubics := 0
	for _, seg := range p.Figures[0].Segments {
		if _, ok := seg.(*shapes.CubicSegment); ok {
			cubics++
		}
	}
	if cubics != 4 {
		t.Errorf("Expected 4 cubic quarters, got %d", cubics)
	}
	first := p.Figures[0].Segments[0].(*shapes.CubicSegment)
	if math.Abs(first.Point1.Y-(5+5*kappa)) > 1e-9 {
		t.Errorf("Expected first control point at y=%v, got %v", 5+5*kappa, first.Point1.Y)
	}
}

func TestToPathShapeCopiesPaths(t *testing.T) {
	c := New(nil)
	src, _ := c.ToPathShape(rectangle(0, 0, 1, 1))
	dst, err := c.ToPathShape(src)
	if err != nil {
		t.Fatal(err)
	}
	if dst == src || dst.ID() == src.ID() || dst.Figures[0].StartPoint == src.Figures[0].StartPoint {
		t.Error("Expected an independent copy")
	}
}

type bogusSegment struct{ p *shapes.Point }

func (s bogusSegment) GetPoints(pts []*shapes.Point) []*shapes.Point { return append(pts, s.p) }
func (s bogusSegment) EndPoint() *shapes.Point                       { return s.p }

func TestUnsupportedInput(t *testing.T) {
	c := New(nil)
	if _, err := c.ToFillPathShape(f.CreatePointShape(1, 1)); !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("Expected ErrUnsupportedShape, got %v", err)
	}

	fig := &shapes.Figure{StartPoint: f.CreatePointShape(0, 0), Segments: []shapes.Segment{bogusSegment{f.CreatePointShape(1, 1)}}}
	p := f.CreatePathShape("p", shapes.NewStyle("s"), []*shapes.Figure{fig}, shapes.EvenOdd, true, false)
	if _, err := c.Simplify(p); !errors.Is(err, ErrUnsupportedSegment) {
		t.Errorf("Expected ErrUnsupportedSegment, got %v", err)
	}

	a := f.CreateArcShape(f.CreatePointShape(0, 0), f.CreatePointShape(0, 10),
		f.CreatePointShape(0, 0), f.CreatePointShape(0, 10), shapes.NewStyle("s"), true, false)
	if _, err := c.ToPathShape(a); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("Expected ErrEmptyPath for a flat arc, got %v", err)
	}
	if _, err := c.Op(nil, Union); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("Expected ErrEmptyPath with no sources, got %v", err)
	}
}

func TestOp(t *testing.T) {
	c := New(nil)
	a, b := rectangle(0, 0, 10, 10), rectangle(5, 5, 15, 15)

	tests := []struct {
		op   Operator
		want spatial.Rect2
	}{
		{Union, spatial.Rect2{Width: 15, Height: 15}},
		{Intersect, spatial.Rect2{X: 5, Y: 5, Width: 5, Height: 5}},
		{Difference, spatial.Rect2{Width: 10, Height: 10}},
		{ReverseDifference, spatial.Rect2{X: 5, Y: 5, Width: 10, Height: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			p, err := c.Op([]shapes.Shape{a, b}, tt.op)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := shapes.Bounds(p); !near(got, tt.want) {
				t.Errorf("Expected bounds %+v, got %+v", tt.want, got)
			}
			if p.FillRule != shapes.NonZero {
				t.Error("Expected a non-zero result")
			}
		})
	}
}

func TestStrokePathWidensLine(t *testing.T) {
	c := New(nil)
	style := shapes.NewStyle("s")
	style.Thickness = 4
	style.LineCap = shapes.FlatCap
	line := f.CreateLineShape(f.CreatePointShape(0, 0), f.CreatePointShape(100, 0), style, true)

	p, err := c.ToStrokePathShape(line)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := shapes.Bounds(p); !near(got, spatial.Rect2{X: 0, Y: -2, Width: 100, Height: 4}) {
		t.Errorf("Expected a 100x4 outline, got %+v", got)
	}
	if p.IsStroked() || !p.IsFilled() {
		t.Error("Expected the outline to be filled only")
	}
}

func TestParseOperator(t *testing.T) {
	for o := Difference; o <= ReverseDifference; o++ {
		got, err := ParseOperator(o.String())
		if err != nil || got != o {
			t.Errorf("Expected %v, got %v (%v)", o, got, err)
		}
	}
	if _, err := ParseOperator("merge"); err == nil {
		t.Error("Expected an error for an unknown operator")
	}
}
