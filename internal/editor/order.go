package editor

import (
	"slices"

	"github.com/inamate/core2d/internal/scene"
	"github.com/inamate/core2d/internal/shapes"
)

// moveTo removes sh from the current layer and reinserts it at index to.
func (s *ShapeService) moveTo(label string, sh shapes.Shape, to func(from, last int) int) error {
	return s.run(label, func() error {
		layer := s.layer()
		seq := layer.Shapes()
		from := scene.IndexOf(seq, sh)
		if from < 0 {
			return nil
		}
		i := to(from, len(seq)-1)
		if i < 0 || i > len(seq)-1 || i == from {
			return nil
		}
		s.publish(label, layer, scene.Insert(scene.Without(seq, sh), i, sh))
		return nil
	})
}

func (s *ShapeService) BringToFront(sh shapes.Shape) error {
	return s.moveTo("Bring to Front", sh, func(_, last int) int { return last })
}

func (s *ShapeService) BringForward(sh shapes.Shape) error {
	return s.moveTo("Bring Forward", sh, func(from, _ int) int { return from + 1 })
}

func (s *ShapeService) SendBackward(sh shapes.Shape) error {
	return s.moveTo("Send Backward", sh, func(from, _ int) int { return from - 1 })
}

func (s *ShapeService) SendToBack(sh shapes.Shape) error {
	return s.moveTo("Send to Back", sh, func(int, int) int { return 0 })
}

// reorder applies a stable reordering of the whole layer given which
// positions are selected.
func (s *ShapeService) reorder(label string, fn func(seq []shapes.Shape, sel []bool)) error {
	return s.run(label, func() error {
		layer := s.layer()
		selected := s.selected(layer)
		if len(selected) == 0 {
			return nil
		}
		seq := slices.Clone(layer.Shapes())
		sel := make([]bool, len(seq))
		for i, sh := range seq {
			sel[i] = slices.Contains(selected, sh)
		}
		fn(seq, sel)
		if slices.Equal(seq, layer.Shapes()) {
			return nil
		}
		s.publish(label, layer, seq)
		return nil
	})
}

// BringToFrontSelected moves the selection above everything else,
// keeping its relative order.
func (s *ShapeService) BringToFrontSelected() error {
	return s.reorder("Bring to Front", func(seq []shapes.Shape, sel []bool) {
		partition(seq, sel, false)
	})
}

func (s *ShapeService) SendToBackSelected() error {
	return s.reorder("Send to Back", func(seq []shapes.Shape, sel []bool) {
		partition(seq, sel, true)
	})
}

// BringForwardSelected lifts every selected shape over its nearest
// unselected neighbour. A selected run moves as one block.
func (s *ShapeService) BringForwardSelected() error {
	return s.reorder("Bring Forward", func(seq []shapes.Shape, sel []bool) {
		for i := len(seq) - 2; i >= 0; i-- {
			if sel[i] && !sel[i+1] {
				seq[i], seq[i+1] = seq[i+1], seq[i]
				sel[i], sel[i+1] = sel[i+1], sel[i]
			}
		}
	})
}

func (s *ShapeService) SendBackwardSelected() error {
	return s.reorder("Send Backward", func(seq []shapes.Shape, sel []bool) {
		for i := 1; i < len(seq); i++ {
			if sel[i] && !sel[i-1] {
				seq[i], seq[i-1] = seq[i-1], seq[i]
				sel[i], sel[i-1] = sel[i-1], sel[i]
			}
		}
	})
}

// partition stably puts the selected shapes first when selectedFirst is
// set and last otherwise.
func partition(seq []shapes.Shape, sel []bool, selectedFirst bool) {
	var first, second []shapes.Shape
	for i, sh := range seq {
		if sel[i] == selectedFirst {
			first = append(first, sh)
		} else {
			second = append(second, sh)
		}
	}
	copy(seq, append(first, second...))
}
