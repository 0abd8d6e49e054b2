package editor

import (
	"github.com/inamate/core2d/internal/scene"
	"github.com/inamate/core2d/internal/shapes"
)

// Copy puts detached copies of the selection on the clipboard. Later
// edits to the originals do not reach it. Copy records no history.
func (s *ShapeService) Copy() (int, error) {
	var n int
	err := s.run("copy", func() error {
		sel := s.selected(s.layer())
		if len(sel) == 0 {
			return nil
		}
		s.clipboard = shapes.Copy(sel...)
		s.pasted = 1
		n = len(sel)
		return nil
	})
	return n, err
}

// Cut copies the selection and removes it in one history entry. The
// first paste after a cut lands where the shapes were.
func (s *ShapeService) Cut() (int, error) {
	var n int
	err := s.run("cut", func() error {
		layer := s.layer()
		sel := s.selected(layer)
		if len(sel) == 0 {
			return nil
		}
		clipboard := shapes.Copy(sel...)
		s.publish("Cut", layer, scene.Without(layer.Shapes(), sel...))
		s.clipboard, s.pasted = clipboard, 0
		s.e.selection.Deselect()
		n = len(sel)
		s.e.logger.Info("shapes cut", "count", n)
		return nil
	})
	return n, err
}

// Paste appends a fresh copy of the clipboard to the current layer and
// selects it. Each paste lands one DuplicateOffset further than the last.
func (s *ShapeService) Paste() (pasted []shapes.Shape, err error) {
	err = s.run("paste", func() error {
		if len(s.clipboard) == 0 {
			return nil
		}
		layer := s.layer()
		pasted = shapes.Copy(s.clipboard...)
		for _, c := range pasted {
			s.e.SetShapeName(c)
			c.SetOwner(layer.ID())
		}
		d := DuplicateOffset * float64(s.pasted)
		for _, p := range shapes.Points(pasted...) {
			p.Move(d, d)
		}
		s.publish("Paste", layer, scene.Append(layer.Shapes(), pasted...))
		s.pasted++
		s.e.selection.Select(layer, pasted...)
		return nil
	})
	return pasted, err
}

// CanPaste reports whether the clipboard holds anything.
func (s *ShapeService) CanPaste() bool { return len(s.clipboard) > 0 }
