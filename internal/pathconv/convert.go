// Package pathconv turns shapes into path shapes and runs boolean
// operations on them using github.com/tdewolff/canvas.
package pathconv

import (
	"errors"
	"fmt"

	"github.com/tdewolff/canvas"

	"github.com/inamate/core2d/internal/shapes"
)

var (
	ErrUnsupportedSegment = errors.New("unsupported path segment")
	ErrUnsupportedShape   = errors.New("shape has no path geometry")
	ErrEmptyPath          = errors.New("path is empty")
)

// kappa places the control points of a quarter ellipse.
const kappa = 0.5522847498

type Operator int

const (
	Difference Operator = iota
	Intersect
	Union
	Xor
	ReverseDifference
)

func (o Operator) String() string {
	switch o {
	case Difference:
		return "difference"
	case Intersect:
		return "intersect"
	case Union:
		return "union"
	case Xor:
		return "xor"
	case ReverseDifference:
		return "reverse-difference"
	}
	return fmt.Sprintf("operator(%d)", int(o))
}

// ParseOperator accepts the names produced by Operator.String.
func ParseOperator(name string) (Operator, error) {
	for o := Difference; o <= ReverseDifference; o++ {
		if o.String() == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown path operator %q", name)
}

type Converter struct {
	factory shapes.Factory
	// Tolerance bounds the flattening error of stroke outlines.
	Tolerance float64
}

func New(factory shapes.Factory) *Converter {
	if factory == nil {
		factory = shapes.NewFactory()
	}
	return &Converter{factory: factory, Tolerance: canvas.Tolerance}
}

// ToPathShape returns a path with the same outline as s. Paths are copied.
func (c *Converter) ToPathShape(s shapes.Shape) (*shapes.Path, error) {
	if p, ok := s.(*shapes.Path); ok {
		return shapes.Copy(p)[0].(*shapes.Path), nil
	}
	p, err := c.toCanvas(s)
	if err != nil {
		return nil, err
	}
	return c.fromCanvas(p, s, shapes.EvenOdd, s.IsStroked(), s.IsFilled())
}

// ToStrokePathShape returns the outline of the stroke of s as a filled path.
func (c *Converter) ToStrokePathShape(s shapes.Shape) (*shapes.Path, error) {
	p, err := c.toCanvas(s)
	if err != nil {
		return nil, err
	}
	width, capper := 1.0, canvas.Capper(canvas.ButtCap)
	if st := s.Style(); st != nil {
		if st.Thickness > 0 {
			width = st.Thickness
		}
		capper = capFor(st.LineCap)
	}
	return c.fromCanvas(p.Stroke(width, capper, canvas.MiterJoin, c.Tolerance), s, shapes.NonZero, false, true)
}

// ToFillPathShape returns the filled area of s with overlaps resolved.
func (c *Converter) ToFillPathShape(s shapes.Shape) (*shapes.Path, error) {
	p, err := c.toCanvas(s)
	if err != nil {
		return nil, err
	}
	return c.fromCanvas(p.Settle(fillRuleOf(s)), s, shapes.NonZero, false, true)
}

// ToWindingPathShape rewrites s so it fills the same area under the
// non-zero rule.
func (c *Converter) ToWindingPathShape(s shapes.Shape) (*shapes.Path, error) {
	p, err := c.toCanvas(s)
	if err != nil {
		return nil, err
	}
	return c.fromCanvas(p.Settle(fillRuleOf(s)), s, shapes.NonZero, s.IsStroked(), s.IsFilled())
}

// Simplify removes self-intersections and overlapping contours.
func (c *Converter) Simplify(s shapes.Shape) (*shapes.Path, error) {
	return c.ToWindingPathShape(s)
}

// Op folds op over src from the back-most shape to the front-most. The
// result takes its style from the first source.
func (c *Converter) Op(src []shapes.Shape, op Operator) (*shapes.Path, error) {
	if len(src) == 0 {
		return nil, ErrEmptyPath
	}
	acc, err := c.toCanvas(src[0])
	if err != nil {
		return nil, err
	}
	for _, s := range src[1:] {
		q, err := c.toCanvas(s)
		if err != nil {
			return nil, err
		}
		switch op {
		case Difference:
			acc = acc.Not(q)
		case Intersect:
			acc = acc.And(q)
		case Union:
			acc = acc.Or(q)
		case Xor:
			acc = acc.Xor(q)
		case ReverseDifference:
			acc = q.Not(acc)
		default:
			return nil, fmt.Errorf("op %s: unknown operator", op)
		}
	}
	return c.fromCanvas(acc, src[0], shapes.NonZero, src[0].IsStroked(), src[0].IsFilled())
}

func capFor(lc shapes.LineCap) canvas.Capper {
	switch lc {
	case shapes.RoundCap:
		return canvas.RoundCap
	case shapes.SquareCap:
		return canvas.SquareCap
	}
	return canvas.ButtCap
}

func fillRuleOf(s shapes.Shape) canvas.FillRule {
	if p, ok := s.(*shapes.Path); ok && p.FillRule == shapes.EvenOdd {
		return canvas.EvenOdd
	}
	return canvas.NonZero
}

func (c *Converter) fromCanvas(p *canvas.Path, src shapes.Shape, rule shapes.FillRule, stroked, filled bool) (*shapes.Path, error) {
	if p == nil || p.Empty() {
		return nil, ErrEmptyPath
	}
	figures := c.figuresOf(p, filled)
	if len(figures) == 0 {
		return nil, ErrEmptyPath
	}
	var style *shapes.Style
	if st := src.Style(); st != nil {
		style = st.Clone()
	} else {
		style = c.factory.CreateShapeStyle("Path")
	}
	return c.factory.CreatePathShape(src.Name(), style, figures, rule, stroked, filled), nil
}
