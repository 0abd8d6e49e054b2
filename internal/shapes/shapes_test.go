package shapes

import "testing"

func newLine(f Factory, x1, y1, x2, y2 float64) *Line {
	return f.CreateLineShape(f.CreatePointShape(x1, y1), f.CreatePointShape(x2, y2), NewStyle("line"), true)
}

func TestStateFlagsString(t *testing.T) {
	if got := Default.String(); got != "Default" {
		t.Errorf("Expected Default, got %s", got)
	}
	if got := (Visible | Connector | Input).String(); got != "Visible|Connector|Input" {
		t.Errorf("Expected Visible|Connector|Input, got %s", got)
	}
}

func TestFactoryDefaults(t *testing.T) {
	f := NewFactory()
	l := newLine(f, 0, 0, 10, 10)
	if !l.HasState(Standalone) || !l.HasState(Visible) {
		t.Errorf("Expected default state, got %s", l.State())
	}
	if l.Start.Owner() != l.ID() || l.End.Owner() != l.ID() {
		t.Error("Expected line endpoints to be owned by the line")
	}
	if l.Start.HasState(Standalone) {
		t.Error("Expected endpoint not to be standalone")
	}
	if l.Kind().String() != "Line" {
		t.Errorf("Expected Line, got %s", l.Kind())
	}
}

func TestPointsDeduplicatesSharedPoints(t *testing.T) {
	f := NewFactory()
	shared := f.CreatePointShape(5, 5)
	a := f.CreateLineShape(f.CreatePointShape(0, 0), shared, nil, true)
	b := f.CreateLineShape(shared, f.CreatePointShape(9, 9), nil, true)

	pts := Points(a, b)
	if len(pts) != 3 {
		t.Fatalf("Expected 3 distinct points, got %d", len(pts))
	}
	if pts[1] != shared {
		t.Error("Expected shared point to keep its first-seen position")
	}
}

func TestPathMoveTouchesSharedPointOnce(t *testing.T) {
	f := NewFactory()
	start := f.CreatePointShape(0, 0)
	fig := &Figure{
		StartPoint: start,
		Segments: []Segment{
			&LineSegment{Point: f.CreatePointShape(10, 0)},
			&LineSegment{Point: start},
		},
	}
	p := f.CreatePathShape("p", nil, []*Figure{fig}, EvenOdd, true, false)
	p.Move(3, 4)
	if start.X != 3 || start.Y != 4 {
		t.Errorf("Expected start at (3,4), got (%v,%v)", start.X, start.Y)
	}
}

func TestDirtyTracking(t *testing.T) {
	f := NewFactory()
	r := f.CreateRectangleShape(f.CreatePointShape(0, 0), f.CreatePointShape(1, 1), nil, true, false)
	if !r.IsDirty() {
		t.Error("Expected new shape to be dirty")
	}
	r.Invalidate()
	if r.IsDirty() {
		t.Error("Expected shape to be clean after Invalidate")
	}
	r.BottomRight.Set(2, 2)
	if !r.IsDirty() {
		t.Error("Expected shape to be dirty after moving a corner")
	}
}

func TestGroupAddAndRelease(t *testing.T) {
	f := NewFactory()
	l := newLine(f, 0, 0, 1, 1)
	pt := f.CreatePointShape(2, 2)
	pt.SetState(pt.State() | Standalone)

	g := f.CreateGroupShape("g")
	g.AddShape(l)
	g.AddConnectorAsInput(pt)

	if l.Owner() != g.ID() || l.HasState(Standalone) {
		t.Error("Expected child to be reparented and not standalone")
	}
	if !pt.HasState(Connector|Input) || pt.HasState(Standalone) || pt.Owner() != g.ID() {
		t.Errorf("Unexpected connector state %s owner %s", pt.State(), pt.Owner())
	}
	if got := len(Points(g)); got != 3 {
		t.Errorf("Expected 3 group points, got %d", got)
	}

	released := g.Release("layer")
	if len(released) != 2 || released[0] != Shape(pt) || released[1] != Shape(l) {
		t.Fatalf("Expected connector then child, got %v", released)
	}
	if pt.HasState(Connector) || pt.HasState(Input) || !pt.HasState(Standalone) {
		t.Errorf("Expected connector flags cleared, got %s", pt.State())
	}
	if l.Owner() != "layer" || !l.HasState(Standalone) {
		t.Error("Expected child restored as standalone layer shape")
	}
}

func TestTextBinding(t *testing.T) {
	f := NewFactory()
	txt := f.CreateTextShape(f.CreatePointShape(0, 0), f.CreatePointShape(10, 10), nil, "{Name}: {Value} {Missing} {", true)
	txt.SetRecord(NewRecord(map[string]string{"Name": "pump"}))
	txt.SetProperty("Value", "42")

	want := "pump: 42 {Missing} {"
	if got := txt.BoundText(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestCopyKeepsInternalSharing(t *testing.T) {
	f := NewFactory()
	shared := f.CreatePointShape(5, 5)
	a := f.CreateLineShape(f.CreatePointShape(0, 0), shared, nil, true)
	b := f.CreateLineShape(shared, f.CreatePointShape(9, 9), nil, true)

	copies := Copy(a, b)
	ca, cb := copies[0].(*Line), copies[1].(*Line)
	if ca.ID() == a.ID() {
		t.Error("Expected copy to get a new id")
	}
	if ca.End != cb.Start {
		t.Error("Expected copies to share the copied point")
	}
	if ca.End == shared {
		t.Error("Expected copied point to be a new instance")
	}
	if ca.Start.Owner() != ca.ID() {
		t.Errorf("Expected copied endpoint owner %s, got %s", ca.ID(), ca.Start.Owner())
	}
	ca.Move(1, 1)
	if a.Start.X != 0 {
		t.Error("Expected original to be untouched by moving the copy")
	}
}

type countingRenderer struct {
	calls map[string]int
}

func (r *countingRenderer) hit(name string)                      { r.calls[name]++ }
func (r *countingRenderer) DrawPoint(*Point)                     { r.hit("point") }
func (r *countingRenderer) DrawLine(*Line)                       { r.hit("line") }
func (r *countingRenderer) DrawRectangle(*Rectangle)             { r.hit("rect") }
func (r *countingRenderer) DrawEllipse(*Ellipse)                 { r.hit("ellipse") }
func (r *countingRenderer) DrawArc(*Arc)                         { r.hit("arc") }
func (r *countingRenderer) DrawCubicBezier(*CubicBezier)         { r.hit("cubic") }
func (r *countingRenderer) DrawQuadraticBezier(*QuadraticBezier) { r.hit("quad") }
func (r *countingRenderer) DrawText(*Text)                       { r.hit("text") }
func (r *countingRenderer) DrawImage(*Image)                     { r.hit("image") }
func (r *countingRenderer) DrawPath(*Path)                       { r.hit("path") }

func TestGroupDrawVisitsChildrenAndConnectors(t *testing.T) {
	f := NewFactory()
	g := f.CreateGroupShape("g")
	g.AddShape(newLine(f, 0, 0, 1, 1))
	g.AddShape(f.CreateEllipseShape(f.CreatePointShape(0, 0), f.CreatePointShape(1, 1), nil, true, false))
	g.AddConnectorAsNone(f.CreatePointShape(0, 0))

	r := &countingRenderer{calls: map[string]int{}}
	g.Draw(r)
	if r.calls["line"] != 1 || r.calls["ellipse"] != 1 || r.calls["point"] != 1 {
		t.Errorf("Unexpected draw calls %v", r.calls)
	}
}
