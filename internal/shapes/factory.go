package shapes

// Factory creates shapes with default state. Styles passed in are
// assigned as given; callers clone templates before passing them.
type Factory interface {
	CreatePointShape(x, y float64) *Point
	CreateLineShape(start, end *Point, style *Style, isStroked bool) *Line
	CreateRectangleShape(topLeft, bottomRight *Point, style *Style, isStroked, isFilled bool) *Rectangle
	CreateEllipseShape(topLeft, bottomRight *Point, style *Style, isStroked, isFilled bool) *Ellipse
	CreateArcShape(p1, p2, p3, p4 *Point, style *Style, isStroked, isFilled bool) *Arc
	CreateCubicBezierShape(p1, p2, p3, p4 *Point, style *Style, isStroked, isFilled bool) *CubicBezier
	CreateQuadraticBezierShape(p1, p2, p3 *Point, style *Style, isStroked, isFilled bool) *QuadraticBezier
	CreateTextShape(topLeft, bottomRight *Point, style *Style, text string, isStroked bool) *Text
	CreateImageShape(topLeft, bottomRight *Point, style *Style, key string, isStroked, isFilled bool) *Image
	CreatePathShape(name string, style *Style, figures []*Figure, fillRule FillRule, isStroked, isFilled bool) *Path
	CreateGroupShape(name string) *Group
	CreateShapeStyle(name string) *Style
}

type factory struct{}

// NewFactory returns the default factory.
func NewFactory() Factory {
	return factory{}
}

// adopt points the owner link of each point at the shape.
func adopt(owner string, pts ...*Point) {
	for _, p := range pts {
		if p.Owner() == "" {
			p.SetOwner(owner)
		}
	}
}

func (factory) CreatePointShape(x, y float64) *Point {
	return &Point{Base: newBase("", nil, Visible|Printable, false, false), X: x, Y: y}
}

func (factory) CreateLineShape(start, end *Point, style *Style, isStroked bool) *Line {
	l := &Line{Base: newBase("", style, DefaultShapeState, isStroked, false), Start: start, End: end}
	adopt(l.id, start, end)
	return l
}

func (factory) CreateRectangleShape(topLeft, bottomRight *Point, style *Style, isStroked, isFilled bool) *Rectangle {
	r := &Rectangle{
		Base: newBase("", style, DefaultShapeState, isStroked, isFilled),
		Box:  Box{TopLeft: topLeft, BottomRight: bottomRight},
	}
	adopt(r.id, topLeft, bottomRight)
	return r
}

func (factory) CreateEllipseShape(topLeft, bottomRight *Point, style *Style, isStroked, isFilled bool) *Ellipse {
	e := &Ellipse{
		Base: newBase("", style, DefaultShapeState, isStroked, isFilled),
		Box:  Box{TopLeft: topLeft, BottomRight: bottomRight},
	}
	adopt(e.id, topLeft, bottomRight)
	return e
}

func (factory) CreateArcShape(p1, p2, p3, p4 *Point, style *Style, isStroked, isFilled bool) *Arc {
	a := &Arc{Base: newBase("", style, DefaultShapeState, isStroked, isFilled), P1: p1, P2: p2, P3: p3, P4: p4}
	adopt(a.id, p1, p2, p3, p4)
	return a
}

func (factory) CreateCubicBezierShape(p1, p2, p3, p4 *Point, style *Style, isStroked, isFilled bool) *CubicBezier {
	b := &CubicBezier{Base: newBase("", style, DefaultShapeState, isStroked, isFilled), P1: p1, P2: p2, P3: p3, P4: p4}
	adopt(b.id, p1, p2, p3, p4)
	return b
}

func (factory) CreateQuadraticBezierShape(p1, p2, p3 *Point, style *Style, isStroked, isFilled bool) *QuadraticBezier {
	q := &QuadraticBezier{Base: newBase("", style, DefaultShapeState, isStroked, isFilled), P1: p1, P2: p2, P3: p3}
	adopt(q.id, p1, p2, p3)
	return q
}

func (factory) CreateTextShape(topLeft, bottomRight *Point, style *Style, text string, isStroked bool) *Text {
	t := &Text{
		Base: newBase("", style, DefaultShapeState, isStroked, false),
		Box:  Box{TopLeft: topLeft, BottomRight: bottomRight},
		Text: text,
	}
	adopt(t.id, topLeft, bottomRight)
	return t
}

func (factory) CreateImageShape(topLeft, bottomRight *Point, style *Style, key string, isStroked, isFilled bool) *Image {
	i := &Image{
		Base: newBase("", style, DefaultShapeState, isStroked, isFilled),
		Box:  Box{TopLeft: topLeft, BottomRight: bottomRight},
		Key:  key,
	}
	adopt(i.id, topLeft, bottomRight)
	return i
}

func (factory) CreatePathShape(name string, style *Style, figures []*Figure, fillRule FillRule, isStroked, isFilled bool) *Path {
	p := &Path{Base: newBase(name, style, DefaultShapeState, isStroked, isFilled), Figures: figures, FillRule: fillRule}
	adopt(p.id, p.GetPoints(nil)...)
	return p
}

func (factory) CreateGroupShape(name string) *Group {
	return &Group{Base: newBase(name, nil, DefaultShapeState, false, false)}
}

func (factory) CreateShapeStyle(name string) *Style {
	return NewStyle(name)
}
