package pathconv

import (
	"fmt"
	"math"

	"github.com/tdewolff/canvas"

	"github.com/inamate/core2d/internal/shapes"
)

func (c *Converter) toCanvas(s shapes.Shape) (*canvas.Path, error) {
	p := &canvas.Path{}
	switch v := s.(type) {
	case *shapes.Line:
		p.MoveTo(v.Start.X, v.Start.Y)
		p.LineTo(v.End.X, v.End.Y)
	case *shapes.Rectangle:
		rect(p, &v.Box)
	case *shapes.Text:
		rect(p, &v.Box)
	case *shapes.Image:
		rect(p, &v.Box)
	case *shapes.Ellipse:
		ellipse(p, &v.Box)
	case *shapes.Arc:
		if err := arc(p, v); err != nil {
			return nil, err
		}
	case *shapes.CubicBezier:
		p.MoveTo(v.P1.X, v.P1.Y)
		p.CubeTo(v.P2.X, v.P2.Y, v.P3.X, v.P3.Y, v.P4.X, v.P4.Y)
	case *shapes.QuadraticBezier:
		p.MoveTo(v.P1.X, v.P1.Y)
		p.QuadTo(v.P2.X, v.P2.Y, v.P3.X, v.P3.Y)
	case *shapes.Path:
		for _, f := range v.Figures {
			if err := figure(p, f); err != nil {
				return nil, fmt.Errorf("path %s: %w", v.ID(), err)
			}
		}
	case *shapes.Group:
		for _, child := range v.Shapes {
			q, err := c.toCanvas(child)
			if err != nil {
				return nil, err
			}
			p = p.Append(q)
		}
	default:
		return nil, fmt.Errorf("%s %s: %w", s.Kind(), s.ID(), ErrUnsupportedShape)
	}
	return p, nil
}

func rect(p *canvas.Path, b *shapes.Box) {
	r := b.Rect()
	p.MoveTo(r.Left(), r.Top())
	p.LineTo(r.Right(), r.Top())
	p.LineTo(r.Right(), r.Bottom())
	p.LineTo(r.Left(), r.Bottom())
	p.Close()
}

// ellipse draws four cubic quarters clockwise from the right-most point.
func ellipse(p *canvas.Path, b *shapes.Box) {
	r := b.Rect()
	cx, cy := r.Center()
	rx, ry := r.Width/2, r.Height/2
	ox, oy := rx*kappa, ry*kappa
	p.MoveTo(cx+rx, cy)
	p.CubeTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubeTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubeTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubeTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// arc sweeps clockwise on the ellipse inscribed in P1/P2 from the ray
// through P3 to the ray through P4.
func arc(p *canvas.Path, a *shapes.Arc) error {
	r := (&shapes.Box{TopLeft: a.P1, BottomRight: a.P2}).Rect()
	if r.Width == 0 || r.Height == 0 {
		return fmt.Errorf("arc %s: %w", a.ID(), ErrEmptyPath)
	}
	cx, cy := r.Center()
	rx, ry := r.Width/2, r.Height/2
	start := math.Atan2((a.P3.Y-cy)/ry, (a.P3.X-cx)/rx)
	end := math.Atan2((a.P4.Y-cy)/ry, (a.P4.X-cx)/rx)
	sweep := end - start
	for sweep <= 0 {
		sweep += 2 * math.Pi
	}
	p.MoveTo(cx+rx*math.Cos(start), cy+ry*math.Sin(start))
	p.ArcTo(rx, ry, 0, sweep > math.Pi, true, cx+rx*math.Cos(end), cy+ry*math.Sin(end))
	return nil
}

func figure(p *canvas.Path, f *shapes.Figure) error {
	p.MoveTo(f.StartPoint.X, f.StartPoint.Y)
	for _, seg := range f.Segments {
		switch s := seg.(type) {
		case *shapes.LineSegment:
			p.LineTo(s.Point.X, s.Point.Y)
		case *shapes.QuadraticSegment:
			p.QuadTo(s.Point1.X, s.Point1.Y, s.Point2.X, s.Point2.Y)
		case *shapes.CubicSegment:
			p.CubeTo(s.Point1.X, s.Point1.Y, s.Point2.X, s.Point2.Y, s.Point3.X, s.Point3.Y)
		case *shapes.ArcSegment:
			p.ArcTo(s.RadiusX, s.RadiusY, s.RotationAngle, s.IsLargeArc, s.SweepClockwise, s.Point.X, s.Point.Y)
		default:
			return fmt.Errorf("%T: %w", seg, ErrUnsupportedSegment)
		}
	}
	if f.IsClosed {
		p.Close()
	}
	return nil
}

// figuresOf rebuilds shape figures from a canvas path. Each MoveTo starts
// a figure; Close marks it closed without adding a segment.
func (c *Converter) figuresOf(p *canvas.Path, filled bool) []*shapes.Figure {
	var (
		out []*shapes.Figure
		cur *shapes.Figure
	)
	pt := func(v canvas.Point) *shapes.Point {
		return c.factory.CreatePointShape(v.X, v.Y)
	}
	sc := p.Scanner()
	for sc.Scan() {
		cmd := sc.Cmd()
		if cmd == canvas.MoveToCmd {
			cur = &shapes.Figure{StartPoint: pt(sc.End()), IsFilled: filled}
			out = append(out, cur)
			continue
		}
		if cur == nil {
			continue
		}
		switch cmd {
		case canvas.LineToCmd:
			cur.Segments = append(cur.Segments, &shapes.LineSegment{Point: pt(sc.End())})
		case canvas.QuadToCmd:
			cur.Segments = append(cur.Segments, &shapes.QuadraticSegment{Point1: pt(sc.CP1()), Point2: pt(sc.End())})
		case canvas.CubeToCmd:
			cur.Segments = append(cur.Segments, &shapes.CubicSegment{
				Point1: pt(sc.CP1()),
				Point2: pt(sc.CP2()),
				Point3: pt(sc.End()),
			})
		case canvas.ArcToCmd:
			rx, ry, rot, large, sweep := sc.Arc()
			cur.Segments = append(cur.Segments, &shapes.ArcSegment{
				Point:          pt(sc.End()),
				RadiusX:        rx,
				RadiusY:        ry,
				RotationAngle:  rot,
				IsLargeArc:     large,
				SweepClockwise: sweep,
			})
		case canvas.CloseCmd:
			cur.IsClosed = true
		}
	}
	kept := out[:0]
	for _, f := range out {
		if len(f.Segments) > 0 {
			kept = append(kept, f)
		}
	}
	return kept
}
