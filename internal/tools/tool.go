// Package tools implements the pointer-driven drawing tool state machines.
//
// A tool creates its shape in the page's working layer on the first
// BeginDown, updates it live on Move, and on the final BeginDown moves
// it into the current layer through Context.AddShape, which records one
// history entry. EndDown cancels. Tools never touch history while a
// gesture is in progress.
//
// Every collaborator comes from Context. When one is missing the tool
// does nothing.
package tools

import (
	"github.com/inamate/core2d/internal/config"
	"github.com/inamate/core2d/internal/history"
	"github.com/inamate/core2d/internal/scene"
	"github.com/inamate/core2d/internal/shapes"
	"github.com/inamate/core2d/internal/spatial"
)

type Modifier int

const (
	ModifierNone    Modifier = 0
	ModifierAlt     Modifier = 1 << 0
	ModifierControl Modifier = 1 << 1
	ModifierShift   Modifier = 1 << 2
)

// InputArgs is one pointer event in world coordinates.
type InputArgs struct {
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Modifier Modifier `json:"modifier,omitempty"`
}

type Tool interface {
	Title() string
	BeginDown(args InputArgs)
	BeginUp(args InputArgs)
	EndDown(args InputArgs)
	EndUp(args InputArgs)
	Move(args InputArgs)
	Reset()
}

// Selection snaps coordinates, finds connection targets and tracks the
// selected shapes.
type Selection interface {
	TryToSnap(x, y float64) (float64, float64)
	TryToGetConnectionPoint(x, y float64) *shapes.Point
	TryToHoverShape(x, y float64) bool
	TryToSplitLine(x, y float64, point *shapes.Point) (scene.LineSplit, bool)
	TryToGetShape(x, y float64) shapes.Shape
	TryToGetShapes(rect spatial.Rect2) []shapes.Shape
	Select(layer *scene.Layer, selected ...shapes.Shape)
	Deselect()
	Selected() []shapes.Shape
	OnUpdateDecorator()
	OnHideDecorator()
}

// Context is the editor as seen by a tool.
type Context interface {
	Factory() shapes.Factory
	Selection() Selection
	Page() *scene.Page
	Options() *config.Editor
	History() *history.History
	CurrentStyle() *shapes.Style
	HelperStyle() *shapes.Style
	SetShapeName(s shapes.Shape)
	// AddShape publishes the shape and any pending line splits into layer
	// and records one history entry.
	AddShape(layer *scene.Layer, s shapes.Shape, splits ...scene.LineSplit)
	// SplitLines publishes splits into layer as one history entry.
	SplitLines(layer *scene.Layer, splits ...scene.LineSplit)
	// MoveShapes moves shapes by the configured move mode without history.
	MoveShapes(selected []shapes.Shape, dx, dy float64)
	SetToolIdle(idle bool)
}

// env bundles the collaborators a gesture needs.
type env struct {
	factory shapes.Factory
	page    *scene.Page
	options *config.Editor
}

// base carries the plumbing shared by the drawing tools.
type base struct {
	ctx Context

	// line splits found during the gesture, published on commit
	splits []scene.LineSplit
}

func (b *base) env() (env, bool) {
	if b.ctx == nil {
		return env{}, false
	}
	e := env{factory: b.ctx.Factory(), page: b.ctx.Page(), options: b.ctx.Options()}
	return e, e.factory != nil && e.page != nil && e.options != nil
}

func (b *base) selection() Selection {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Selection()
}

func (b *base) snap(args InputArgs) (float64, float64) {
	if sel := b.selection(); sel != nil {
		return sel.TryToSnap(args.X, args.Y)
	}
	return args.X, args.Y
}

// connectionPoint returns an existing point to share at (x, y), if
// connecting is enabled and one is in reach.
func (b *base) connectionPoint(e env, x, y float64) *shapes.Point {
	sel := b.selection()
	if sel == nil || !e.options.TryToConnect {
		return nil
	}
	return sel.TryToGetConnectionPoint(x, y)
}

// connectOrSplit shares an existing point when one is in reach and
// otherwise looks for a line to split with p. A connection point always
// wins over a split. A found split stays pending until commit, and a line
// is split at most once per gesture. It returns the point the caller
// should use.
func (b *base) connectOrSplit(e env, x, y, rawX, rawY float64, p *shapes.Point) *shapes.Point {
	if !e.options.TryToConnect {
		return p
	}
	if c := b.connectionPoint(e, x, y); c != nil {
		return c
	}
	sel := b.selection()
	if sel == nil {
		return p
	}
	split, ok := sel.TryToSplitLine(rawX, rawY, p)
	if !ok {
		return p
	}
	for _, pending := range b.splits {
		if pending.Line == split.Line {
			return p
		}
	}
	b.splits = append(b.splits, split)
	return p
}

func (b *base) hover(e env, x, y float64) {
	if sel := b.selection(); sel != nil && e.options.TryToConnect {
		sel.TryToHoverShape(x, y)
	}
}

// style copies the current style so edits never reach the template.
func (b *base) style(e env) *shapes.Style {
	if s := b.ctx.CurrentStyle(); s != nil {
		return s.Clone()
	}
	return e.factory.CreateShapeStyle("Default")
}

func (b *base) begin(e env, s shapes.Shape) {
	b.ctx.SetToolIdle(false)
	b.ctx.SetShapeName(s)
	e.page.Working.AddShape(s)
	e.page.Working.RaiseInvalidate()
}

func (b *base) commit(e env, s shapes.Shape) {
	e.page.Working.RemoveShape(s)
	e.page.Working.RaiseInvalidate()
	splits := b.splits
	b.splits = nil
	b.ctx.AddShape(e.page.CurrentLayer(), s, splits...)
}

// discard drops an in-progress shape with its pending splits and
// signals idle.
func (b *base) discard(s shapes.Shape) {
	b.splits = nil
	if b.ctx == nil {
		return
	}
	if page := b.ctx.Page(); page != nil && s != nil {
		page.Working.RemoveShape(s)
		page.Working.RaiseInvalidate()
	}
	b.ctx.SetToolIdle(true)
}

func (b *base) helperStyle() *shapes.Style {
	return b.ctx.HelperStyle()
}

// CircleConstrain places tl and br so the box is the square of radius
// max(|cx-px|, |cy-py|) centered on (cx, cy).
func CircleConstrain(tl, br *shapes.Point, cx, cy, px, py float64) {
	r := max(abs(cx-px), abs(cy-py))
	tl.Set(cx-r, cy-r)
	br.Set(cx+r, cy+r)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
