package editor

import (
	"fmt"
	"slices"

	"github.com/inamate/core2d/internal/history"
	"github.com/inamate/core2d/internal/scene"
	"github.com/inamate/core2d/internal/shapes"
)

// ShapeService runs the composition commands on the current layer. Every
// command that changes the layer records exactly one history entry; a
// command with nothing to do records none.
type ShapeService struct {
	e *Editor

	// detached copies; pasted count of DuplicateOffset steps apart
	clipboard []shapes.Shape
	pasted    int
}

// run is the command boundary. A panic or error inside fn is logged and
// returned; the layer is only published by fn's final assignment, so it
// is left as it was.
func (s *ShapeService) run(name string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", name, r)
		}
		if err != nil {
			s.e.logger.Warn("command failed", "command", name, "error", err)
		}
	}()
	return fn()
}

func (s *ShapeService) layer() *scene.Layer { return s.e.page.CurrentLayer() }

// selected returns the selected shapes that live in layer, back-most first.
func (s *ShapeService) selected(layer *scene.Layer) []shapes.Shape {
	sel := s.e.selection.Selected()
	var out []shapes.Shape
	for _, sh := range layer.Shapes() {
		if slices.Contains(sel, sh) {
			out = append(out, sh)
		}
	}
	return out
}

func (s *ShapeService) snapshot(label string, previous, next history.Value) {
	next.Apply()
	s.e.history.Snapshot(label, previous, next)
	s.e.logger.Debug("command applied", "command", label)
}

// publish records the change from the layer's current sequence to seq.
func (s *ShapeService) publish(label string, layer *scene.Layer, seq []shapes.Shape) {
	previous := scene.ShapesState{Layer: layer, Shapes: layer.Shapes()}
	s.snapshot(label, previous, scene.ShapesState{Layer: layer, Shapes: seq})
}

// replace swaps each source for its results. A single source is
// replaced in place; several sources are removed and all results are
// appended at the front.
func (s *ShapeService) replace(label string, layer *scene.Layer, sources []shapes.Shape, results [][]shapes.Shape) []shapes.Shape {
	var added []shapes.Shape
	for _, r := range results {
		added = append(added, r...)
	}
	if len(added) == 0 {
		return nil
	}
	for _, a := range added {
		a.SetOwner(layer.ID())
	}
	seq := layer.Shapes()
	if len(sources) == 1 {
		i := scene.IndexOf(seq, sources[0])
		seq = scene.Insert(scene.Without(seq, sources[0]), i, added...)
	} else {
		seq = scene.Append(scene.Without(seq, sources...), added...)
	}
	s.publish(label, layer, seq)
	s.e.selection.Select(layer, added...)
	return added
}
