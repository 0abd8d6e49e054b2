package editor

import (
	"fmt"
	"slices"

	"github.com/inamate/core2d/internal/scene"
	"github.com/inamate/core2d/internal/shapes"
	"github.com/inamate/core2d/internal/spatial"
)

type AlignMode int

const (
	AlignLeft AlignMode = iota
	AlignCentered
	AlignRight
	AlignTop
	AlignCenter
	AlignBottom
)

var alignNames = map[string]AlignMode{
	"left":     AlignLeft,
	"centered": AlignCentered,
	"right":    AlignRight,
	"top":      AlignTop,
	"center":   AlignCenter,
	"bottom":   AlignBottom,
}

func ParseAlignMode(name string) (AlignMode, error) {
	if m, ok := alignNames[name]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("unknown align mode %q", name)
}

// Direction is the axis of distribute, stack and flip.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func ParseDirection(name string) (Direction, error) {
	switch name {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}

// DuplicateOffset is how far copies are placed from their originals.
const DuplicateOffset = 10.0

// transform records one history entry for changing the point
// coordinates of the unlocked selection. fn returns false to skip.
func (s *ShapeService) transform(label string, fn func(sel []shapes.Shape) bool) error {
	return s.run(label, func() error {
		layer := s.layer()
		sel := unlocked(s.selected(layer))
		if len(sel) == 0 {
			return nil
		}
		before := scene.CapturePoints(layer, sel...)
		if !fn(sel) {
			before.Apply()
			return nil
		}
		after := scene.CapturePoints(layer, sel...)
		if after.Equal(before) {
			return nil
		}
		s.snapshot(label, before, after)
		s.e.selection.OnUpdateDecorator()
		return nil
	})
}

// MoveBy moves the unlocked selection by (dx, dy) using the configured
// move mode, in one history entry.
func (s *ShapeService) MoveBy(dx, dy float64) error {
	if dx == 0 && dy == 0 {
		return nil
	}
	return s.transform("Move", func(sel []shapes.Shape) bool {
		s.e.MoveShapes(sel, dx, dy)
		return true
	})
}

func boxesOf(sel []shapes.Shape) []*ShapeBox {
	boxes := make([]*ShapeBox, len(sel))
	for i, sh := range sel {
		boxes[i] = NewShapeBox(sh)
	}
	return boxes
}

// Align lines the selection up against the edge or center of its
// combined bounds.
func (s *ShapeService) Align(mode AlignMode) error {
	return s.transform("Align", func(sel []shapes.Shape) bool {
		if len(sel) < 2 {
			return false
		}
		boxes := boxesOf(sel)
		r := boxesBounds(boxes)
		cx, cy := r.Center()
		for _, b := range boxes {
			switch mode {
			case AlignLeft:
				b.MoveBy(r.Left()-b.Bounds.Left(), 0)
			case AlignCentered:
				b.MoveBy(cx-b.CenterX(), 0)
			case AlignRight:
				b.MoveBy(r.Right()-b.Bounds.Right(), 0)
			case AlignTop:
				b.MoveBy(0, r.Top()-b.Bounds.Top())
			case AlignCenter:
				b.MoveBy(0, cy-b.CenterY())
			case AlignBottom:
				b.MoveBy(0, r.Bottom()-b.Bounds.Bottom())
			}
		}
		return true
	})
}

// Distribute spaces three or more shapes evenly between the outer two.
func (s *ShapeService) Distribute(dir Direction) error {
	return s.transform("Distribute", func(sel []shapes.Shape) bool {
		if len(sel) < 3 {
			return false
		}
		boxes := boxesOf(sel)
		r := boxesBounds(boxes)
		if dir == Horizontal {
			slices.SortStableFunc(boxes, CompareLeft)
			total := 0.0
			for _, b := range boxes {
				total += b.Bounds.Width
			}
			gap := (r.Width - total) / float64(len(boxes)-1)
			x := r.Left()
			for _, b := range boxes {
				b.MoveBy(x-b.Bounds.Left(), 0)
				x += b.Bounds.Width + gap
			}
			return true
		}
		slices.SortStableFunc(boxes, CompareTop)
		total := 0.0
		for _, b := range boxes {
			total += b.Bounds.Height
		}
		gap := (r.Height - total) / float64(len(boxes)-1)
		y := r.Top()
		for _, b := range boxes {
			b.MoveBy(0, y-b.Bounds.Top())
			y += b.Bounds.Height + gap
		}
		return true
	})
}

// Stack packs the selection edge to edge starting at the left-most or
// top-most shape.
func (s *ShapeService) Stack(dir Direction) error {
	return s.transform("Stack", func(sel []shapes.Shape) bool {
		if len(sel) < 2 {
			return false
		}
		boxes := boxesOf(sel)
		if dir == Horizontal {
			slices.SortStableFunc(boxes, CompareLeft)
			x := boxes[0].Bounds.Left()
			for _, b := range boxes {
				b.MoveBy(x-b.Bounds.Left(), 0)
				x += b.Bounds.Width
			}
			return true
		}
		slices.SortStableFunc(boxes, CompareTop)
		y := boxes[0].Bounds.Top()
		for _, b := range boxes {
			b.MoveBy(0, y-b.Bounds.Top())
			y += b.Bounds.Height
		}
		return true
	})
}

// applyMatrix maps every distinct point of sel through m once.
func applyMatrix(sel []shapes.Shape, m spatial.Matrix2D) {
	for _, p := range shapes.Points(sel...) {
		p.Set(m.TransformPoint(p.X, p.Y))
	}
}

// Rotate turns the selection by degrees about the center of its bounds.
func (s *ShapeService) Rotate(degrees float64) error {
	if degrees == 0 {
		return nil
	}
	return s.transform("Rotate", func(sel []shapes.Shape) bool {
		cx, cy := shapes.Bounds(sel...).Center()
		applyMatrix(sel, spatial.RotateAt(degrees, cx, cy))
		return true
	})
}

// Flip mirrors the selection about the center of its bounds.
func (s *ShapeService) Flip(dir Direction) error {
	return s.transform("Flip", func(sel []shapes.Shape) bool {
		cx, cy := shapes.Bounds(sel...).Center()
		if dir == Horizontal {
			applyMatrix(sel, spatial.ScaleAt(-1, 1, cx, cy))
		} else {
			applyMatrix(sel, spatial.ScaleAt(1, -1, cx, cy))
		}
		return true
	})
}

// Delete removes the selected shapes from the current layer.
func (s *ShapeService) Delete() error {
	return s.run("delete", func() error {
		layer := s.layer()
		sel := s.selected(layer)
		if len(sel) == 0 {
			return nil
		}
		s.publish("Delete", layer, scene.Without(layer.Shapes(), sel...))
		s.e.selection.Deselect()
		s.e.logger.Info("shapes deleted", "count", len(sel))
		return nil
	})
}

// Duplicate appends offset deep copies of the selection and selects them.
// Points shared inside the selection stay shared among the copies.
func (s *ShapeService) Duplicate() (copies []shapes.Shape, err error) {
	err = s.run("duplicate", func() error {
		layer := s.layer()
		sel := s.selected(layer)
		if len(sel) == 0 {
			return nil
		}
		copies = shapes.Copy(sel...)
		for _, c := range copies {
			s.e.SetShapeName(c)
			c.SetOwner(layer.ID())
		}
		for _, p := range shapes.Points(copies...) {
			p.Move(DuplicateOffset, DuplicateOffset)
		}
		s.publish("Duplicate", layer, scene.Append(layer.Shapes(), copies...))
		s.e.selection.Select(layer, copies...)
		return nil
	})
	return copies, err
}
