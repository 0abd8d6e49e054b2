package scene

import (
	"slices"

	"github.com/inamate/core2d/internal/shapes"
	"github.com/inamate/core2d/internal/typeid"
)

// Layer holds an ordered shape sequence: index 0 is back-most.
//
// The sequence is copy-on-write. Shapes() returns the published slice,
// which must never be mutated; every change builds a new slice and
// publishes it with SetShapes in one assignment.
type Layer struct {
	id        string
	Name      string
	IsVisible bool
	shapes    []shapes.Shape

	// OnInvalidate is called by RaiseInvalidate to request a repaint.
	OnInvalidate func(l *Layer)
}

func NewLayer(name string) *Layer {
	return &Layer{id: typeid.NewLayerID(), Name: name, IsVisible: true}
}

func (l *Layer) ID() string { return l.id }

func (l *Layer) Shapes() []shapes.Shape { return l.shapes }

func (l *Layer) SetShapes(s []shapes.Shape) { l.shapes = s }

func (l *Layer) Len() int { return len(l.shapes) }

// RaiseInvalidate requests a repaint. The repaint is never awaited.
func (l *Layer) RaiseInvalidate() {
	if l.OnInvalidate != nil {
		l.OnInvalidate(l)
	}
}

// IndexOf returns the position of s, or -1.
func IndexOf(seq []shapes.Shape, s shapes.Shape) int {
	return slices.Index(seq, s)
}

// Append returns a new sequence with s added at the front-most position.
func Append(seq []shapes.Shape, s ...shapes.Shape) []shapes.Shape {
	out := make([]shapes.Shape, 0, len(seq)+len(s))
	out = append(out, seq...)
	return append(out, s...)
}

// Insert returns a new sequence with s at index i.
func Insert(seq []shapes.Shape, i int, s ...shapes.Shape) []shapes.Shape {
	return slices.Insert(slices.Clone(seq), i, s...)
}

// Replace returns a new sequence with the element at i replaced by s.
func Replace(seq []shapes.Shape, i int, s shapes.Shape) []shapes.Shape {
	out := slices.Clone(seq)
	out[i] = s
	return out
}

// Without returns a new sequence with every listed shape removed.
func Without(seq []shapes.Shape, remove ...shapes.Shape) []shapes.Shape {
	out := make([]shapes.Shape, 0, len(seq))
	for _, s := range seq {
		if !slices.Contains(remove, s) {
			out = append(out, s)
		}
	}
	return out
}

// AddShape publishes seq+s.
func (l *Layer) AddShape(s shapes.Shape) {
	l.shapes = Append(l.shapes, s)
}

// RemoveShape publishes the sequence without s.
func (l *Layer) RemoveShape(s shapes.Shape) {
	if IndexOf(l.shapes, s) < 0 {
		return
	}
	l.shapes = Without(l.shapes, s)
}
