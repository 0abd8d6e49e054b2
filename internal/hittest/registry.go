// Package hittest answers "is this target near, inside or overlapping
// that shape" for every shape kind.
//
// Strategies are registered per shapes.Kind. Calling a strategy with a
// shape of another kind is a dispatch bug and panics with *ContractError.
package hittest

import (
	"fmt"

	"github.com/inamate/core2d/internal/shapes"
	"github.com/inamate/core2d/internal/spatial"
)

// Bounds is the hit-test strategy for one shape kind. The radius it
// receives is already adjusted for the view scale.
type Bounds interface {
	Kind() shapes.Kind
	TryToGetPoint(h *Registry, s shapes.Shape, target spatial.Point2, radius, scale float64) *shapes.Point
	Contains(h *Registry, s shapes.Shape, target spatial.Point2, radius, scale float64) bool
	Overlaps(h *Registry, s shapes.Shape, rect spatial.Rect2, radius, scale float64) bool
}

// ContractError reports a strategy invoked with the wrong variant.
type ContractError struct {
	Want shapes.Kind
	Got  shapes.Kind
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("hittest: %s bounds called with %s shape", e.Want, e.Got)
}

func must[T shapes.Shape](s shapes.Shape, want shapes.Kind) T {
	v, ok := s.(T)
	if !ok {
		panic(&ContractError{Want: want, Got: s.Kind()})
	}
	return v
}

// Registry dispatches to the registered strategy of each shape's kind.
type Registry struct {
	bounds map[shapes.Kind]Bounds
}

// NewRegistry returns a registry with strategies for every built-in kind.
func NewRegistry() *Registry {
	r := &Registry{bounds: make(map[shapes.Kind]Bounds)}
	r.Register(pointBounds{})
	r.Register(lineBounds{})
	r.Register(boxBounds[*shapes.Rectangle]{kind: shapes.KindRectangle})
	r.Register(ellipseBounds{})
	r.Register(boxBounds[*shapes.Text]{kind: shapes.KindText})
	r.Register(boxBounds[*shapes.Image]{kind: shapes.KindImage})
	r.Register(arcBounds{})
	r.Register(polyBounds[*shapes.CubicBezier]{kind: shapes.KindCubicBezier})
	r.Register(polyBounds[*shapes.QuadraticBezier]{kind: shapes.KindQuadraticBezier})
	r.Register(pathBounds{})
	r.Register(groupBounds{})
	return r
}

// Register installs or replaces the strategy for b.Kind().
func (h *Registry) Register(b Bounds) {
	h.bounds[b.Kind()] = b
}

func (h *Registry) lookup(s shapes.Shape) (Bounds, bool) {
	b, ok := h.bounds[s.Kind()]
	return b, ok
}

// effectiveRadius keeps Size-flagged shapes pickable at a constant screen size.
func effectiveRadius(s shapes.Shape, radius, scale float64) float64 {
	if s.HasState(shapes.Size) && scale != 1.0 {
		return radius / scale
	}
	return radius
}

// TryToGetPoint returns the constituent point of s within radius of target.
func (h *Registry) TryToGetPoint(s shapes.Shape, target spatial.Point2, radius, scale float64) *shapes.Point {
	b, ok := h.lookup(s)
	if !ok {
		return nil
	}
	return b.TryToGetPoint(h, s, target, effectiveRadius(s, radius, scale), scale)
}

func (h *Registry) Contains(s shapes.Shape, target spatial.Point2, radius, scale float64) bool {
	b, ok := h.lookup(s)
	if !ok {
		return false
	}
	return b.Contains(h, s, target, effectiveRadius(s, radius, scale), scale)
}

func (h *Registry) Overlaps(s shapes.Shape, rect spatial.Rect2, radius, scale float64) bool {
	b, ok := h.lookup(s)
	if !ok {
		return false
	}
	return b.Overlaps(h, s, rect, effectiveRadius(s, radius, scale), scale)
}

// TryToGetPointIn searches the shapes top-most first and returns the
// first point hit.
func (h *Registry) TryToGetPointIn(seq []shapes.Shape, target spatial.Point2, radius, scale float64) *shapes.Point {
	for i := len(seq) - 1; i >= 0; i-- {
		s := seq[i]
		if !s.HasState(shapes.Visible) {
			continue
		}
		if p := h.TryToGetPoint(s, target, radius, scale); p != nil {
			return p
		}
	}
	return nil
}

// TryToGetShape returns the top-most visible shape whose point or body is hit.
func (h *Registry) TryToGetShape(seq []shapes.Shape, target spatial.Point2, radius, scale float64) shapes.Shape {
	for i := len(seq) - 1; i >= 0; i-- {
		s := seq[i]
		if !s.HasState(shapes.Visible) {
			continue
		}
		if h.TryToGetPoint(s, target, radius, scale) != nil || h.Contains(s, target, radius, scale) {
			return s
		}
	}
	return nil
}

// TryToGetShapes returns every visible shape overlapping rect, top-most first.
func (h *Registry) TryToGetShapes(seq []shapes.Shape, rect spatial.Rect2, radius, scale float64) []shapes.Shape {
	var out []shapes.Shape
	for i := len(seq) - 1; i >= 0; i-- {
		s := seq[i]
		if !s.HasState(shapes.Visible) {
			continue
		}
		if h.Overlaps(s, rect, radius, scale) {
			out = append(out, s)
		}
	}
	return out
}
