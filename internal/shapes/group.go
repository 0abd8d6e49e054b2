package shapes

// Group owns ordered child shapes and ordered connector points.
// Every child and connector has Owner() == group.ID().
type Group struct {
	Base
	Shapes     []Shape
	Connectors []*Point
}

func (g *Group) Kind() Kind { return KindGroup }

// GetPoints yields connectors first, then the children's points.
func (g *Group) GetPoints(pts []*Point) []*Point {
	pts = append(pts, g.Connectors...)
	for _, s := range g.Shapes {
		pts = s.GetPoints(pts)
	}
	return pts
}

func (g *Group) Move(dx, dy float64) {
	for _, s := range g.Shapes {
		if !s.HasState(Connector) {
			s.Move(dx, dy)
		}
	}
	for _, c := range g.Connectors {
		c.Move(dx, dy)
	}
}

func (g *Group) IsDirty() bool {
	if g.isDirty() {
		return true
	}
	for _, s := range g.Shapes {
		if s.IsDirty() {
			return true
		}
	}
	return anyDirty(g.Connectors...)
}

func (g *Group) Invalidate() {
	g.invalidate()
	for _, s := range g.Shapes {
		s.Invalidate()
	}
	invalidateAll(g.Connectors...)
}

func (g *Group) Draw(r Renderer) {
	for _, s := range g.Shapes {
		s.Draw(r)
	}
	for _, c := range g.Connectors {
		c.Draw(r)
	}
}

// AddShape adopts s as a child. Standalone is cleared.
func (g *Group) AddShape(s Shape) {
	s.SetOwner(g.id)
	s.SetState(s.State() &^ Standalone)
	g.Shapes = append(g.Shapes, s)
	g.dirty = true
}

func (g *Group) AddConnectorAsNone(p *Point)   { g.addConnector(p, None) }
func (g *Group) AddConnectorAsInput(p *Point)  { g.addConnector(p, Input) }
func (g *Group) AddConnectorAsOutput(p *Point) { g.addConnector(p, Output) }

func (g *Group) addConnector(p *Point, tag StateFlags) {
	p.SetOwner(g.id)
	state := p.State() &^ (Standalone | None | Input | Output)
	p.SetState(state | Connector | tag)
	g.Connectors = append(g.Connectors, p)
	g.dirty = true
}

// Release detaches all children and connectors, restoring them as
// standalone shapes owned by ownerID. It returns connectors first, then
// children. The group keeps its lists so an undo can put it back.
func (g *Group) Release(ownerID string) []Shape {
	released := make([]Shape, 0, len(g.Connectors)+len(g.Shapes))
	for _, c := range g.Connectors {
		c.SetState(c.State()&^(Connector|None|Input|Output) | Standalone)
		c.SetOwner(ownerID)
		released = append(released, c)
	}
	for _, s := range g.Shapes {
		s.SetState(s.State() | Standalone)
		s.SetOwner(ownerID)
		released = append(released, s)
	}
	return released
}
