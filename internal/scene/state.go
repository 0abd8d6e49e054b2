package scene

import (
	"errors"

	"github.com/inamate/core2d/internal/shapes"
)

var ErrLayerNotFound = errors.New("layer not found")

// ShapesState is a history value: a captured layer shape sequence and
// the ends of any lines split with it. Applying it publishes both.
type ShapesState struct {
	Layer  *Layer
	Shapes []shapes.Shape
	Ends   []LineEnd
}

func (s ShapesState) Apply() {
	for _, e := range s.Ends {
		e.Line.End = e.End
		e.Line.MarkDirty()
	}
	s.Layer.SetShapes(s.Shapes)
	s.Layer.RaiseInvalidate()
}

// LineEnd is the end point a line had at some moment.
type LineEnd struct {
	Line *shapes.Line
	End  *shapes.Point
}

// LineSplit is a split found during a gesture but not applied yet. Line
// is cut at Point and Split runs from Point to the old end.
type LineSplit struct {
	Line  *shapes.Line
	Point *shapes.Point
	Split *shapes.Line
}

// SplitLines returns seq with every Split placed right after its source
// line, plus the line ends before and after. Splits whose line is not in
// seq are skipped. Nothing is mutated.
func SplitLines(layer *Layer, seq []shapes.Shape, splits ...LineSplit) (out []shapes.Shape, before, after []LineEnd) {
	out = seq
	for _, sp := range splits {
		i := IndexOf(out, sp.Line)
		if i < 0 {
			continue
		}
		sp.Split.SetOwner(layer.ID())
		out = Insert(out, i+1, sp.Split)
		before = append(before, LineEnd{Line: sp.Line, End: sp.Line.End})
		after = append(after, LineEnd{Line: sp.Line, End: sp.Point})
	}
	return out, before, after
}
