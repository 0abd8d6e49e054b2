package scene

import (
	"fmt"

	"github.com/inamate/core2d/internal/shapes"
	"github.com/inamate/core2d/internal/typeid"
)

// Page owns the real layers plus two transient layers: Working holds
// in-progress shapes and Helper holds overlay handles. Neither transient
// layer is hit-tested for selection or persisted.
type Page struct {
	id      string
	Name    string
	Width   float64
	Height  float64
	Working *Layer
	Helper  *Layer
	Layers  []*Layer

	currentLayer *Layer
}

// NewPage creates a page with a single real layer named "Layer1".
func NewPage(name string, width, height float64) *Page {
	p := &Page{
		id:      typeid.NewPageID(),
		Name:    name,
		Width:   width,
		Height:  height,
		Working: NewLayer("Working"),
		Helper:  NewLayer("Helper"),
	}
	p.currentLayer = p.AddLayer("Layer1")
	return p
}

func (p *Page) ID() string { return p.id }

func (p *Page) CurrentLayer() *Layer { return p.currentLayer }

// SetCurrentLayer switches the layer that tools commit into. The layer
// must belong to the page.
func (p *Page) SetCurrentLayer(l *Layer) error {
	for _, existing := range p.Layers {
		if existing == l {
			p.currentLayer = l
			return nil
		}
	}
	return fmt.Errorf("layer %q: %w", l.Name, ErrLayerNotFound)
}

// AddLayer appends a new real layer. Invalidation callbacks of the page's
// existing layers are copied to it.
func (p *Page) AddLayer(name string) *Layer {
	l := NewLayer(name)
	if p.Working != nil {
		l.OnInvalidate = p.Working.OnInvalidate
	}
	p.Layers = append(p.Layers, l)
	return l
}

// LayerByID returns the real layer with the given id.
func (p *Page) LayerByID(id string) (*Layer, error) {
	for _, l := range p.Layers {
		if l.ID() == id {
			return l, nil
		}
	}
	return nil, fmt.Errorf("layer %s: %w", id, ErrLayerNotFound)
}

// OnInvalidate installs fn on every layer of the page.
func (p *Page) OnInvalidate(fn func(l *Layer)) {
	p.Working.OnInvalidate = fn
	p.Helper.OnInvalidate = fn
	for _, l := range p.Layers {
		l.OnInvalidate = fn
	}
}

// VisibleShapes returns the shapes of all visible real layers, back to front.
func (p *Page) VisibleShapes() []shapes.Shape {
	var out []shapes.Shape
	for _, l := range p.Layers {
		if l.IsVisible {
			out = append(out, l.Shapes()...)
		}
	}
	return out
}

// FindShape looks a shape up by id across the real layers, descending
// into groups. It returns the top-level layer that holds it.
func (p *Page) FindShape(id string) (shapes.Shape, *Layer, bool) {
	for _, l := range p.Layers {
		for _, s := range l.Shapes() {
			if found := find(s, id); found != nil {
				return found, l, true
			}
		}
	}
	return nil, nil, false
}

func find(s shapes.Shape, id string) shapes.Shape {
	if s.ID() == id {
		return s
	}
	if g, ok := s.(*shapes.Group); ok {
		for _, c := range g.Connectors {
			if c.ID() == id {
				return c
			}
		}
		for _, child := range g.Shapes {
			if found := find(child, id); found != nil {
				return found
			}
		}
	}
	return nil
}
