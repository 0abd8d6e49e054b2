package shapes

import "github.com/inamate/core2d/internal/typeid"

// Copy returns a deep copy of the shapes with fresh ids. Points shared
// between the given shapes stay shared between the copies; owner links
// that pointed inside the copied set are rewritten to the new ids.
func Copy(src ...Shape) []Shape {
	c := copier{
		points: make(map[*Point]*Point),
		ids:    make(map[string]string),
	}
	out := make([]Shape, 0, len(src))
	for _, s := range src {
		out = append(out, c.shape(s))
	}
	for _, s := range out {
		c.relink(s)
	}
	return out
}

type copier struct {
	points map[*Point]*Point
	ids    map[string]string
}

func (c *copier) base(dst, src *Base) {
	dst.copyFrom(src)
	dst.id = typeid.NewShapeID()
	c.ids[src.id] = dst.id
}

func (c *copier) point(p *Point) *Point {
	if p == nil {
		return nil
	}
	if cp, ok := c.points[p]; ok {
		return cp
	}
	cp := &Point{X: p.X, Y: p.Y}
	c.base(&cp.Base, &p.Base)
	c.points[p] = cp
	return cp
}

func (c *copier) box(b Box) Box {
	return Box{TopLeft: c.point(b.TopLeft), BottomRight: c.point(b.BottomRight)}
}

func (c *copier) shape(s Shape) Shape {
	switch v := s.(type) {
	case *Point:
		return c.point(v)
	case *Line:
		n := &Line{Start: c.point(v.Start), End: c.point(v.End)}
		c.base(&n.Base, &v.Base)
		return n
	case *Rectangle:
		n := &Rectangle{Box: c.box(v.Box)}
		c.base(&n.Base, &v.Base)
		return n
	case *Ellipse:
		n := &Ellipse{Box: c.box(v.Box)}
		c.base(&n.Base, &v.Base)
		return n
	case *Text:
		n := &Text{Box: c.box(v.Box), Text: v.Text}
		c.base(&n.Base, &v.Base)
		return n
	case *Image:
		n := &Image{Box: c.box(v.Box), Key: v.Key}
		c.base(&n.Base, &v.Base)
		return n
	case *Arc:
		n := &Arc{P1: c.point(v.P1), P2: c.point(v.P2), P3: c.point(v.P3), P4: c.point(v.P4)}
		c.base(&n.Base, &v.Base)
		return n
	case *CubicBezier:
		n := &CubicBezier{P1: c.point(v.P1), P2: c.point(v.P2), P3: c.point(v.P3), P4: c.point(v.P4)}
		c.base(&n.Base, &v.Base)
		return n
	case *QuadraticBezier:
		n := &QuadraticBezier{P1: c.point(v.P1), P2: c.point(v.P2), P3: c.point(v.P3)}
		c.base(&n.Base, &v.Base)
		return n
	case *Path:
		n := &Path{FillRule: v.FillRule}
		c.base(&n.Base, &v.Base)
		for _, f := range v.Figures {
			n.Figures = append(n.Figures, c.figure(f))
		}
		return n
	case *Group:
		n := &Group{}
		c.base(&n.Base, &v.Base)
		for _, child := range v.Shapes {
			n.Shapes = append(n.Shapes, c.shape(child))
		}
		for _, conn := range v.Connectors {
			n.Connectors = append(n.Connectors, c.point(conn))
		}
		return n
	}
	panic("shapes: copy of unknown shape variant")
}

func (c *copier) figure(f *Figure) *Figure {
	n := &Figure{StartPoint: c.point(f.StartPoint), IsClosed: f.IsClosed, IsFilled: f.IsFilled}
	for _, seg := range f.Segments {
		switch s := seg.(type) {
		case *LineSegment:
			n.Segments = append(n.Segments, &LineSegment{Point: c.point(s.Point)})
		case *QuadraticSegment:
			n.Segments = append(n.Segments, &QuadraticSegment{Point1: c.point(s.Point1), Point2: c.point(s.Point2)})
		case *CubicSegment:
			n.Segments = append(n.Segments, &CubicSegment{
				Point1: c.point(s.Point1),
				Point2: c.point(s.Point2),
				Point3: c.point(s.Point3),
			})
		case *ArcSegment:
			cp := *s
			cp.Point = c.point(s.Point)
			n.Segments = append(n.Segments, &cp)
		}
	}
	return n
}

func (c *copier) relink(s Shape) {
	for _, p := range s.GetPoints(nil) {
		if id, ok := c.ids[p.Owner()]; ok {
			p.SetOwner(id)
		}
	}
	if g, ok := s.(*Group); ok {
		for _, child := range g.Shapes {
			if id, ok := c.ids[child.Owner()]; ok {
				child.SetOwner(id)
			}
			c.relink(child)
		}
	}
}
