package editor

import (
	"errors"
	"fmt"

	"github.com/inamate/core2d/internal/pathconv"
	"github.com/inamate/core2d/internal/scene"
	"github.com/inamate/core2d/internal/shapes"
)

// convert runs fn on every selected shape and replaces each source with
// its path. Shapes without path geometry are skipped.
func (s *ShapeService) convert(label string, fn func(shapes.Shape) (*shapes.Path, error)) ([]shapes.Shape, error) {
	var added []shapes.Shape
	err := s.run(label, func() error {
		layer := s.layer()
		var (
			sources []shapes.Shape
			results [][]shapes.Shape
		)
		for _, src := range s.selected(layer) {
			p, err := fn(src)
			if skippable(err) {
				s.e.logger.Debug("shape skipped", "command", label, "shape", src.ID(), "reason", err)
				continue
			}
			if err != nil {
				return fmt.Errorf("%s %s: %w", src.Kind(), src.ID(), err)
			}
			sources = append(sources, src)
			results = append(results, []shapes.Shape{p})
		}
		added = s.replace(label, layer, sources, results)
		return nil
	})
	return added, err
}

func skippable(err error) bool {
	return errors.Is(err, pathconv.ErrUnsupportedShape) || errors.Is(err, pathconv.ErrEmptyPath)
}

func (s *ShapeService) CreatePath() ([]shapes.Shape, error) {
	return s.convert("Create Path", s.e.converter.ToPathShape)
}

func (s *ShapeService) CreateStrokePath() ([]shapes.Shape, error) {
	return s.convert("Create Stroke Path", s.e.converter.ToStrokePathShape)
}

func (s *ShapeService) CreateFillPath() ([]shapes.Shape, error) {
	return s.convert("Create Fill Path", s.e.converter.ToFillPathShape)
}

func (s *ShapeService) CreateWindingPath() ([]shapes.Shape, error) {
	return s.convert("Create Winding Path", s.e.converter.ToWindingPathShape)
}

func (s *ShapeService) Simplify() ([]shapes.Shape, error) {
	return s.convert("Simplify", s.e.converter.Simplify)
}

// PathOp combines the selected shapes, back-most first, into one path
// that replaces them at the front. It needs at least two shapes.
func (s *ShapeService) PathOp(op pathconv.Operator) (result *shapes.Path, err error) {
	label := "Path " + op.String()
	err = s.run(label, func() error {
		layer := s.layer()
		src := s.selected(layer)
		if len(src) < 2 {
			return nil
		}
		p, err := s.e.converter.Op(src, op)
		if skippable(err) {
			return nil
		}
		if err != nil {
			return err
		}
		s.e.SetShapeName(p)
		p.SetOwner(layer.ID())
		s.publish(label, layer, scene.Append(scene.Without(layer.Shapes(), src...), p))
		s.e.selection.Select(layer, p)
		result = p
		return nil
	})
	return result, err
}

// Break decomposes every selected shape into simpler ones. A one-figure
// path becomes one shape per segment, a multi-figure path one path per
// figure, a group the broken form of each child. Other shapes are turned
// into paths first. The sources are removed, never modified.
func (s *ShapeService) Break() ([]shapes.Shape, error) {
	var added []shapes.Shape
	err := s.run("break", func() error {
		layer := s.layer()
		var (
			sources []shapes.Shape
			results [][]shapes.Shape
		)
		for _, src := range s.selected(layer) {
			out, err := s.breakShape(src)
			if err != nil {
				return err
			}
			if len(out) == 0 {
				continue
			}
			sources = append(sources, src)
			results = append(results, out)
		}
		added = s.replace("Break", layer, sources, results)
		return nil
	})
	return added, err
}

func (s *ShapeService) breakShape(src shapes.Shape) ([]shapes.Shape, error) {
	switch v := src.(type) {
	case *shapes.Point:
		return nil, nil
	case *shapes.Group:
		var out []shapes.Shape
		for _, child := range v.Shapes {
			broken, err := s.breakShape(child)
			if err != nil {
				return nil, err
			}
			out = append(out, broken...)
		}
		return out, nil
	case *shapes.Path:
		return s.breakPath(v)
	}
	p, err := s.e.converter.ToPathShape(src)
	if skippable(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", src.Kind(), src.ID(), err)
	}
	return s.breakPath(p)
}

func (s *ShapeService) breakPath(p *shapes.Path) ([]shapes.Shape, error) {
	f := s.e.factory
	var out []shapes.Shape
	if len(p.Figures) > 1 {
		for _, fig := range p.Figures {
			part := f.CreatePathShape("", s.styleOf(p), []*shapes.Figure{fig}, p.FillRule, p.IsStroked(), p.IsFilled())
			out = append(out, part)
		}
	} else if len(p.Figures) == 1 {
		fig := p.Figures[0]
		start := fig.StartPoint
		for _, seg := range fig.Segments {
			sh, err := s.segmentShape(p, start, seg)
			if err != nil {
				return nil, fmt.Errorf("break %s: %w", p.ID(), err)
			}
			out = append(out, sh)
			start = seg.EndPoint()
		}
		if fig.IsClosed && start != fig.StartPoint && len(fig.Segments) > 0 {
			out = append(out, f.CreateLineShape(start, fig.StartPoint, s.styleOf(p), p.IsStroked()))
		}
	}
	for _, sh := range out {
		s.e.SetShapeName(sh)
	}
	return out, nil
}

// styleOf copies the style of sh, or makes a default one.
func (s *ShapeService) styleOf(sh shapes.Shape) *shapes.Style {
	if st := sh.Style(); st != nil {
		return st.Clone()
	}
	return s.e.factory.CreateShapeStyle("Default")
}

func (s *ShapeService) segmentShape(p *shapes.Path, start *shapes.Point, seg shapes.Segment) (shapes.Shape, error) {
	f := s.e.factory
	style := s.styleOf(p)
	switch v := seg.(type) {
	case *shapes.LineSegment:
		return f.CreateLineShape(start, v.Point, style, p.IsStroked()), nil
	case *shapes.QuadraticSegment:
		return f.CreateQuadraticBezierShape(start, v.Point1, v.Point2, style, p.IsStroked(), p.IsFilled()), nil
	case *shapes.CubicSegment:
		return f.CreateCubicBezierShape(start, v.Point1, v.Point2, v.Point3, style, p.IsStroked(), p.IsFilled()), nil
	case *shapes.ArcSegment:
		fig := &shapes.Figure{StartPoint: start, Segments: []shapes.Segment{v}, IsFilled: p.IsFilled()}
		return f.CreatePathShape("", style, []*shapes.Figure{fig}, p.FillRule, p.IsStroked(), p.IsFilled()), nil
	}
	return nil, fmt.Errorf("%T: %w", seg, pathconv.ErrUnsupportedSegment)
}
