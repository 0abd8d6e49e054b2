// Package overlay keeps handle decorations in the helper layer in sync
// with the shape a tool is drawing.
//
// Every overlay follows the same lifecycle: ToState methods add handles
// as the tool advances, Move copies live coordinates into them, and
// Reset removes everything the overlay added. Reset is idempotent and
// safe before any ToState call.
package overlay

import (
	"github.com/inamate/core2d/internal/scene"
	"github.com/inamate/core2d/internal/shapes"
)

// Overlay is the common surface of every variant.
type Overlay interface {
	Move()
	Reset()
}

// helperState marks handles: visible, constant screen size, never
// printable or standalone.
const helperState = shapes.Visible | shapes.Size

type link struct {
	helper *shapes.Point
	source *shapes.Point
}

// handles tracks what an overlay added to the helper layer.
type handles struct {
	layer   *scene.Layer
	factory shapes.Factory
	style   *shapes.Style
	added   []shapes.Shape
	links   []link
}

func newHandles(layer *scene.Layer, factory shapes.Factory, style *shapes.Style) handles {
	return handles{layer: layer, factory: factory, style: style}
}

func (h *handles) track(source *shapes.Point) *shapes.Point {
	p := h.factory.CreatePointShape(source.X, source.Y)
	p.SetState(helperState)
	h.links = append(h.links, link{helper: p, source: source})
	return p
}

// point adds a handle following source.
func (h *handles) point(source *shapes.Point) {
	p := h.track(source)
	p.SetStyle(h.style)
	h.publish(p)
}

// line adds a guide line between two sources.
func (h *handles) line(from, to *shapes.Point) {
	l := h.factory.CreateLineShape(h.track(from), h.track(to), h.style, true)
	l.SetState(helperState)
	h.publish(l)
}

// ellipse adds a guide ellipse spanning two corner sources.
func (h *handles) ellipse(topLeft, bottomRight *shapes.Point) {
	e := h.factory.CreateEllipseShape(h.track(topLeft), h.track(bottomRight), h.style, true, false)
	e.SetState(helperState)
	h.publish(e)
}

// retarget makes the handles that followed from follow to instead.
func (h *handles) retarget(from, to *shapes.Point) {
	for i := range h.links {
		if h.links[i].source == from {
			h.links[i].source = to
		}
	}
}

func (h *handles) publish(s shapes.Shape) {
	h.layer.SetShapes(scene.Append(h.layer.Shapes(), s))
	h.added = append(h.added, s)
}

func (h *handles) move() {
	for _, l := range h.links {
		l.helper.Set(l.source.X, l.source.Y)
	}
	h.layer.RaiseInvalidate()
}

func (h *handles) reset() {
	if len(h.added) > 0 {
		h.layer.SetShapes(scene.Without(h.layer.Shapes(), h.added...))
	}
	h.added = nil
	h.links = nil
	h.layer.RaiseInvalidate()
}

// Count returns the number of shapes currently added to the helper layer.
func (h *handles) Count() int { return len(h.added) }
