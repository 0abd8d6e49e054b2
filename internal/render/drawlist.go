package render

import (
	"encoding/json"
	"math"

	"github.com/inamate/core2d/internal/scene"
	"github.com/inamate/core2d/internal/shapes"
	"github.com/inamate/core2d/internal/spatial"
)

// PathCommand is a single path instruction in Canvas2D order:
// ["M", x, y], ["L", x, y], ["Q", x1, y1, x, y],
// ["C", x1, y1, x2, y2, x, y] or ["Z"].
type PathCommand []interface{}

// DrawCommand represents a single drawing operation for the frontend to execute.
// The frontend receives a list of these and executes them on a Canvas2D context.
type DrawCommand struct {
	Op            string        `json:"op"`                      // Operation: "path", "text", "image"
	ObjectID      string        `json:"objectId,omitempty"`      // For hit correlation
	Transform     []float64     `json:"transform,omitempty"`     // [a, b, c, d, e, f] affine matrix
	Path          []PathCommand `json:"path,omitempty"`          // Path data for "path" ops
	FillRule      string        `json:"fillRule,omitempty"`      // "nonzero" or "evenodd"
	Fill          string        `json:"fill,omitempty"`          // Fill color, empty when not filled
	FillOpacity   float64       `json:"fillOpacity,omitempty"`   // Fill alpha
	Stroke        string        `json:"stroke,omitempty"`        // Stroke color, empty when not stroked
	StrokeOpacity float64       `json:"strokeOpacity,omitempty"` // Stroke alpha
	StrokeWidth   float64       `json:"strokeWidth,omitempty"`   // Stroke width
	LineCap       string        `json:"lineCap,omitempty"`       // "butt", "square" or "round"
	Dashes        []float64     `json:"dashes,omitempty"`        // Dash pattern
	Text          string        `json:"text,omitempty"`          // Bound text for "text" ops
	FontName      string        `json:"fontName,omitempty"`      // Font family
	FontSize      float64       `json:"fontSize,omitempty"`      // Font size
	ImageKey      string        `json:"imageKey,omitempty"`      // Bitmap key for "image" ops
	Width         float64       `json:"width,omitempty"`         // Box width for "text" and "image" ops
	Height        float64       `json:"height,omitempty"`        // Box height for "text" and "image" ops
}

// kappa places the control points of a quarter-ellipse cubic.
const kappa = 0.5522847498

// PointRadius is the half size of the square drawn for a point.
const PointRadius = 3.0

// DecoratorID tags the selection decorator command.
const DecoratorID = "decorator"

// DrawList is a shapes.Renderer that records draw commands in painter's
// order.
type DrawList struct {
	Commands []DrawCommand
}

// Compile renders the visible real layers of page back to front, then the
// working and helper layers. A visible decorator rect is drawn last.
func Compile(page *scene.Page, decorator spatial.Rect2, showDecorator bool) []DrawCommand {
	if page == nil {
		return nil
	}
	d := &DrawList{}
	for _, l := range page.Layers {
		d.DrawLayer(l)
	}
	d.DrawLayer(page.Working)
	d.DrawLayer(page.Helper)
	if showDecorator {
		d.DrawDecorator(decorator)
	}
	return d.Commands
}

// DrawLayer draws every shape of a visible layer.
func (d *DrawList) DrawLayer(l *scene.Layer) {
	if l == nil || !l.IsVisible {
		return
	}
	for _, s := range l.Shapes() {
		s.Draw(d)
	}
}

// DrawDecorator outlines the selection bounds with a dashed stroke.
func (d *DrawList) DrawDecorator(r spatial.Rect2) {
	d.Commands = append(d.Commands, DrawCommand{
		Op:            "path",
		ObjectID:      DecoratorID,
		Path:          rectPath(r),
		Stroke:        "#0078d7",
		StrokeOpacity: 1,
		StrokeWidth:   1,
		LineCap:       "butt",
		Dashes:        []float64{4, 4},
	})
}

func (d *DrawList) path(s shapes.Shape, path []PathCommand, fillRule shapes.FillRule) {
	if len(path) == 0 {
		return
	}
	cmd := DrawCommand{Op: "path", ObjectID: s.ID(), Path: path, FillRule: fillRule.String()}
	paint(&cmd, s)
	d.Commands = append(d.Commands, cmd)
}

// paint copies the style of s onto cmd. Shapes without a style are drawn
// with a one unit black stroke.
func paint(cmd *DrawCommand, s shapes.Shape) {
	st := s.Style()
	if st == nil {
		if s.IsStroked() {
			cmd.Stroke, cmd.StrokeOpacity, cmd.StrokeWidth = "#000000", 1, 1
		}
		return
	}
	if s.IsStroked() {
		cmd.Stroke = st.Stroke.Hex()
		cmd.StrokeOpacity = st.Stroke.Opacity()
		cmd.StrokeWidth = st.Thickness
		cmd.LineCap = lineCap(st.LineCap)
		cmd.Dashes = st.Dashes
	}
	if s.IsFilled() {
		cmd.Fill = st.Fill.Hex()
		cmd.FillOpacity = st.Fill.Opacity()
	}
}

func lineCap(c shapes.LineCap) string {
	switch c {
	case shapes.SquareCap:
		return "square"
	case shapes.RoundCap:
		return "round"
	default:
		return "butt"
	}
}

func rectPath(r spatial.Rect2) []PathCommand {
	return []PathCommand{
		{"M", r.Left(), r.Top()},
		{"L", r.Right(), r.Top()},
		{"L", r.Right(), r.Bottom()},
		{"L", r.Left(), r.Bottom()},
		{"Z"},
	}
}

// ellipsePath draws four cubic quarters clockwise from the right-most point.
func ellipsePath(r spatial.Rect2) []PathCommand {
	cx, cy := r.Center()
	rx, ry := r.Width/2, r.Height/2
	kx, ky := rx*kappa, ry*kappa
	return []PathCommand{
		{"M", cx + rx, cy},
		{"C", cx + rx, cy + ky, cx + kx, cy + ry, cx, cy + ry},
		{"C", cx - kx, cy + ry, cx - rx, cy + ky, cx - rx, cy},
		{"C", cx - rx, cy - ky, cx - kx, cy - ry, cx, cy - ry},
		{"C", cx + kx, cy - ry, cx + rx, cy - ky, cx + rx, cy},
		{"Z"},
	}
}

func (d *DrawList) DrawPoint(p *shapes.Point) {
	d.path(p, rectPath(p.Vec().ExpandToRect(PointRadius)), shapes.EvenOdd)
}

func (d *DrawList) DrawLine(l *shapes.Line) {
	d.path(l, []PathCommand{{"M", l.Start.X, l.Start.Y}, {"L", l.End.X, l.End.Y}}, shapes.EvenOdd)
}

func (d *DrawList) DrawRectangle(r *shapes.Rectangle) {
	d.path(r, rectPath(r.Rect()), shapes.EvenOdd)
}

func (d *DrawList) DrawEllipse(e *shapes.Ellipse) {
	d.path(e, ellipsePath(e.Rect()), shapes.EvenOdd)
}

// DrawArc sweeps clockwise on the P1/P2 ellipse from the P3 ray to the
// P4 ray.
func (d *DrawList) DrawArc(a *shapes.Arc) {
	r := spatial.FromPoints(a.P1.X, a.P1.Y, a.P2.X, a.P2.Y)
	if r.Width == 0 || r.Height == 0 {
		return
	}
	cx, cy := r.Center()
	rx, ry := r.Width/2, r.Height/2
	start := math.Atan2((a.P3.Y-cy)/ry, (a.P3.X-cx)/rx)
	end := math.Atan2((a.P4.Y-cy)/ry, (a.P4.X-cx)/rx)
	sweep := end - start
	for sweep <= 0 {
		sweep += 2 * math.Pi
	}
	path := []PathCommand{{"M", cx + rx*math.Cos(start), cy + ry*math.Sin(start)}}
	path = append(path, arcCubics(cx, cy, rx, ry, 0, start, sweep)...)
	d.path(a, path, shapes.EvenOdd)
}

func (d *DrawList) DrawCubicBezier(b *shapes.CubicBezier) {
	d.path(b, []PathCommand{
		{"M", b.P1.X, b.P1.Y},
		{"C", b.P2.X, b.P2.Y, b.P3.X, b.P3.Y, b.P4.X, b.P4.Y},
	}, shapes.EvenOdd)
}

func (d *DrawList) DrawQuadraticBezier(q *shapes.QuadraticBezier) {
	d.path(q, []PathCommand{
		{"M", q.P1.X, q.P1.Y},
		{"Q", q.P2.X, q.P2.Y, q.P3.X, q.P3.Y},
	}, shapes.EvenOdd)
}

func (d *DrawList) DrawText(t *shapes.Text) {
	r := t.Rect()
	cmd := DrawCommand{
		Op:        "text",
		ObjectID:  t.ID(),
		Transform: spatial.Translate(r.X, r.Y).ToSlice(),
		Text:      t.BoundText(),
		Width:     r.Width,
		Height:    r.Height,
	}
	paint(&cmd, t)
	if st := t.Style(); st != nil {
		cmd.FontName, cmd.FontSize = st.FontName, st.FontSize
	}
	d.Commands = append(d.Commands, cmd)
}

func (d *DrawList) DrawImage(i *shapes.Image) {
	r := i.Rect()
	d.Commands = append(d.Commands, DrawCommand{
		Op:        "image",
		ObjectID:  i.ID(),
		Transform: spatial.Translate(r.X, r.Y).ToSlice(),
		ImageKey:  i.Key,
		Width:     r.Width,
		Height:    r.Height,
	})
}

func (d *DrawList) DrawPath(p *shapes.Path) {
	var path []PathCommand
	for _, f := range p.Figures {
		path = append(path, figurePath(f)...)
	}
	d.path(p, path, p.FillRule)
}

func figurePath(f *shapes.Figure) []PathCommand {
	if f.StartPoint == nil {
		return nil
	}
	path := []PathCommand{{"M", f.StartPoint.X, f.StartPoint.Y}}
	cur := f.StartPoint
	for _, seg := range f.Segments {
		switch s := seg.(type) {
		case *shapes.LineSegment:
			path = append(path, PathCommand{"L", s.Point.X, s.Point.Y})
		case *shapes.QuadraticSegment:
			path = append(path, PathCommand{"Q", s.Point1.X, s.Point1.Y, s.Point2.X, s.Point2.Y})
		case *shapes.CubicSegment:
			path = append(path, PathCommand{"C", s.Point1.X, s.Point1.Y, s.Point2.X, s.Point2.Y, s.Point3.X, s.Point3.Y})
		case *shapes.ArcSegment:
			path = append(path, endpointArc(cur.X, cur.Y, s.Point.X, s.Point.Y,
				s.RadiusX, s.RadiusY, s.RotationAngle, s.IsLargeArc, s.SweepClockwise)...)
		default:
			continue
		}
		cur = seg.EndPoint()
	}
	if f.IsClosed {
		path = append(path, PathCommand{"Z"})
	}
	return path
}

// ToJSON serializes draw commands to JSON.
func ToJSON(commands []DrawCommand) (string, error) {
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
