package editor

import (
	"github.com/inamate/core2d/internal/scene"
	"github.com/inamate/core2d/internal/shapes"
)

// Group wraps the selected shapes of the current layer in a new group.
// Points become None connectors, other shapes become children. The group
// is added front-most.
func (s *ShapeService) Group() (g *shapes.Group, err error) {
	err = s.run("group", func() error {
		layer := s.layer()
		src := s.selected(layer)
		if len(src) == 0 {
			return nil
		}
		g = s.GroupShapes(layer, src...)
		return nil
	})
	return g, err
}

// GroupShapes groups src, which must all be in layer, in one history entry.
func (s *ShapeService) GroupShapes(layer *scene.Layer, src ...shapes.Shape) *shapes.Group {
	before := captureMembership(src...)
	previous := membershipState{layer: layer, shapes: layer.Shapes(), members: before}

	g := s.e.factory.CreateGroupShape("")
	s.e.SetShapeName(g)
	g.SetOwner(layer.ID())
	for _, sh := range src {
		if p, ok := sh.(*shapes.Point); ok {
			g.AddConnectorAsNone(p)
			continue
		}
		g.AddShape(sh)
	}

	seq := scene.Append(scene.Without(layer.Shapes(), src...), g)
	next := membershipState{layer: layer, shapes: seq, members: captureMembership(src...)}
	s.snapshot("Group", previous, next)
	s.e.selection.Select(layer, g)
	s.e.logger.Info("shapes grouped", "group", g.ID(), "count", len(src))
	return g
}

// Ungroup puts the children and connectors of every selected group back
// into the layer where the group was. All groups are one history entry.
func (s *ShapeService) Ungroup() (released []shapes.Shape, err error) {
	err = s.run("ungroup", func() error {
		layer := s.layer()
		var groups []*shapes.Group
		for _, sh := range s.selected(layer) {
			if g, ok := sh.(*shapes.Group); ok {
				groups = append(groups, g)
			}
		}
		if len(groups) == 0 {
			return nil
		}

		var members []shapes.Shape
		for _, g := range groups {
			members = append(members, shapes.Shape(g))
			for _, c := range g.Connectors {
				members = append(members, c)
			}
			members = append(members, g.Shapes...)
		}
		previous := membershipState{layer: layer, shapes: layer.Shapes(), members: captureMembership(members...)}

		seq := layer.Shapes()
		for _, g := range groups {
			out := g.Release(layer.ID())
			i := scene.IndexOf(seq, g)
			seq = scene.Insert(scene.Without(seq, g), i, out...)
			released = append(released, out...)
		}
		next := membershipState{layer: layer, shapes: seq, members: captureMembership(members...)}
		s.snapshot("Ungroup", previous, next)
		s.e.selection.Select(layer, released...)
		return nil
	})
	return released, err
}
