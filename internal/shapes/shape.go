package shapes

import "github.com/inamate/core2d/internal/spatial"

// Kind tags the closed set of shape variants.
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindRectangle
	KindEllipse
	KindArc
	KindCubicBezier
	KindQuadraticBezier
	KindText
	KindImage
	KindPath
	KindGroup
)

var kindNames = [...]string{
	KindPoint:           "Point",
	KindLine:            "Line",
	KindRectangle:       "Rectangle",
	KindEllipse:         "Ellipse",
	KindArc:             "Arc",
	KindCubicBezier:     "CubicBezier",
	KindQuadraticBezier: "QuadraticBezier",
	KindText:            "Text",
	KindImage:           "Image",
	KindPath:            "Path",
	KindGroup:           "Group",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Shape is implemented only by the variants in this package.
type Shape interface {
	ID() string
	Kind() Kind
	Name() string
	SetName(name string)
	Style() *Style
	SetStyle(style *Style)
	State() StateFlags
	SetState(state StateFlags)
	HasState(flag StateFlags) bool
	Owner() string
	SetOwner(ownerID string)
	Record() *Record
	SetRecord(record *Record)
	Property(name string) (string, bool)
	SetProperty(name, value string)
	Properties() map[string]string
	IsStroked() bool
	IsFilled() bool

	// GetPoints appends the constituent points and returns the extended slice.
	GetPoints(pts []*Point) []*Point
	Move(dx, dy float64)
	IsDirty() bool
	Invalidate()
	Draw(r Renderer)

	base() *Base
}

// Renderer draws the concrete variants. Each variant's Draw calls exactly
// one method.
type Renderer interface {
	DrawPoint(p *Point)
	DrawLine(l *Line)
	DrawRectangle(r *Rectangle)
	DrawEllipse(e *Ellipse)
	DrawArc(a *Arc)
	DrawCubicBezier(b *CubicBezier)
	DrawQuadraticBezier(q *QuadraticBezier)
	DrawText(t *Text)
	DrawImage(i *Image)
	DrawPath(p *Path)
}

// Points returns the distinct points of all shapes, in first-seen order.
func Points(shapes ...Shape) []*Point {
	var all []*Point
	for _, s := range shapes {
		all = s.GetPoints(all)
	}
	seen := make(map[*Point]struct{}, len(all))
	distinct := all[:0]
	for _, p := range all {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		distinct = append(distinct, p)
	}
	return distinct
}

func anyDirty(pts ...*Point) bool {
	for _, p := range pts {
		if p != nil && p.IsDirty() {
			return true
		}
	}
	return false
}

func invalidateAll(pts ...*Point) {
	for _, p := range pts {
		if p != nil {
			p.Invalidate()
		}
	}
}

// Bounds returns the bounding rect of the shapes' constituent points.
func Bounds(shapes ...Shape) spatial.Rect2 {
	pts := Points(shapes...)
	vs := make([]spatial.Point2, len(pts))
	for i, p := range pts {
		vs[i] = p.Vec()
	}
	return spatial.FromPointList(vs)
}
