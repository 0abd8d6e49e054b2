package shapes

type FillRule int

const (
	EvenOdd FillRule = iota
	NonZero
)

func (f FillRule) String() string {
	if f == NonZero {
		return "nonzero"
	}
	return "evenodd"
}

// Segment is one piece of a figure. The start of a segment is the end
// point of the previous one (or the figure's StartPoint).
type Segment interface {
	GetPoints(pts []*Point) []*Point
	// EndPoint is where the next segment starts.
	EndPoint() *Point
}

type LineSegment struct {
	Point *Point
}

func (s *LineSegment) GetPoints(pts []*Point) []*Point { return append(pts, s.Point) }
func (s *LineSegment) EndPoint() *Point                { return s.Point }

type QuadraticSegment struct {
	Point1 *Point
	Point2 *Point
}

func (s *QuadraticSegment) GetPoints(pts []*Point) []*Point { return append(pts, s.Point1, s.Point2) }
func (s *QuadraticSegment) EndPoint() *Point                { return s.Point2 }

type CubicSegment struct {
	Point1 *Point
	Point2 *Point
	Point3 *Point
}

func (s *CubicSegment) GetPoints(pts []*Point) []*Point {
	return append(pts, s.Point1, s.Point2, s.Point3)
}
func (s *CubicSegment) EndPoint() *Point { return s.Point3 }

// ArcSegment is an SVG-style elliptical arc ending at Point.
type ArcSegment struct {
	Point          *Point
	RadiusX        float64
	RadiusY        float64
	RotationAngle  float64
	IsLargeArc     bool
	SweepClockwise bool
}

func (s *ArcSegment) GetPoints(pts []*Point) []*Point { return append(pts, s.Point) }
func (s *ArcSegment) EndPoint() *Point                { return s.Point }

// Figure is a connected run of segments.
type Figure struct {
	StartPoint *Point
	Segments   []Segment
	IsClosed   bool
	IsFilled   bool
}

func (f *Figure) GetPoints(pts []*Point) []*Point {
	pts = append(pts, f.StartPoint)
	for _, s := range f.Segments {
		pts = s.GetPoints(pts)
	}
	return pts
}

// Path is a compound geometry of one or more figures.
type Path struct {
	Base
	Figures  []*Figure
	FillRule FillRule
}

func (p *Path) Kind() Kind { return KindPath }

func (p *Path) GetPoints(pts []*Point) []*Point {
	for _, f := range p.Figures {
		pts = f.GetPoints(pts)
	}
	return pts
}

// Move shifts every distinct point once, even if a figure reuses it.
func (p *Path) Move(dx, dy float64) {
	for _, pt := range Points(p) {
		pt.Move(dx, dy)
	}
}

func (p *Path) IsDirty() bool {
	return p.isDirty() || anyDirty(p.GetPoints(nil)...)
}

func (p *Path) Invalidate() {
	p.invalidate()
	invalidateAll(p.GetPoints(nil)...)
}

func (p *Path) Draw(r Renderer) { r.DrawPath(p) }
