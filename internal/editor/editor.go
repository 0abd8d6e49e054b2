// Package editor ties the page, the drawing tools, the selection service
// and the history together. It is the tools.Context every tool runs in.
package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/inamate/core2d/internal/config"
	"github.com/inamate/core2d/internal/hittest"
	"github.com/inamate/core2d/internal/history"
	"github.com/inamate/core2d/internal/pathconv"
	"github.com/inamate/core2d/internal/scene"
	"github.com/inamate/core2d/internal/selection"
	"github.com/inamate/core2d/internal/shapes"
	"github.com/inamate/core2d/internal/tools"
)

var ErrUnknownTool = errors.New("unknown tool")

// PathConverter does the geometry behind the path commands.
type PathConverter interface {
	ToPathShape(s shapes.Shape) (*shapes.Path, error)
	ToStrokePathShape(s shapes.Shape) (*shapes.Path, error)
	ToFillPathShape(s shapes.Shape) (*shapes.Path, error)
	ToWindingPathShape(s shapes.Shape) (*shapes.Path, error)
	Simplify(s shapes.Shape) (*shapes.Path, error)
	Op(src []shapes.Shape, op pathconv.Operator) (*shapes.Path, error)
}

// Editor owns one page and everything needed to edit it.
type Editor struct {
	logger    *slog.Logger
	options   *config.Editor
	factory   shapes.Factory
	page      *scene.Page
	history   *history.History
	hit       *hittest.Registry
	selection *selection.Service
	converter PathConverter

	currentStyle *shapes.Style
	helperStyle  *shapes.Style

	tools   map[string]tools.Tool
	tool    tools.Tool
	idle    bool
	counter map[shapes.Kind]int

	Shapes *ShapeService
}

type Option func(*Editor)

func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) { e.logger = l }
}

func WithFactory(f shapes.Factory) Option {
	return func(e *Editor) { e.factory = f }
}

func WithConverter(c PathConverter) Option {
	return func(e *Editor) { e.converter = c }
}

// New creates an editor with an empty page sized from options.
func New(options config.Editor, opts ...Option) *Editor {
	e := &Editor{
		logger:  slog.Default(),
		options: &options,
		factory: shapes.NewFactory(),
		hit:     hittest.NewRegistry(),
		idle:    true,
		counter: make(map[shapes.Kind]int),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.converter == nil {
		e.converter = pathconv.New(e.factory)
	}
	e.page = scene.NewPage("Page1", options.PageWidth, options.PageHeight)
	e.history = history.New(options.HistoryLimit)
	e.selection = selection.New(e.page, e.hit, e.factory, e.options, e.logger)
	e.currentStyle = e.factory.CreateShapeStyle("Default")
	e.helperStyle = e.factory.CreateShapeStyle("Helper")
	e.helperStyle.Stroke = shapes.ArgbColor{A: 255, R: 0, G: 120, B: 215}
	e.helperStyle.Thickness = 1
	e.Shapes = &ShapeService{e: e}

	e.tools = make(map[string]tools.Tool)
	for _, t := range []tools.Tool{
		tools.None{},
		tools.NewSelect(e),
		tools.NewPoint(e),
		tools.NewLine(e),
		tools.NewRectangle(e),
		tools.NewEllipse(e),
		tools.NewArc(e),
		tools.NewCubicBezier(e),
		tools.NewQuadraticBezier(e),
		tools.NewText(e),
		tools.NewImage(e),
		tools.NewPath(e),
	} {
		e.tools[strings.ToLower(t.Title())] = t
	}
	e.tool = e.tools["selection"]
	return e
}

// --- tools.Context ---

func (e *Editor) Factory() shapes.Factory     { return e.factory }
func (e *Editor) Selection() tools.Selection  { return e.selection }
func (e *Editor) Page() *scene.Page           { return e.page }
func (e *Editor) Options() *config.Editor     { return e.options }
func (e *Editor) History() *history.History   { return e.history }
func (e *Editor) CurrentStyle() *shapes.Style { return e.currentStyle }
func (e *Editor) HelperStyle() *shapes.Style  { return e.helperStyle }
func (e *Editor) SetToolIdle(idle bool)       { e.idle = idle }

// SetShapeName names s after its kind and a running per-kind counter.
func (e *Editor) SetShapeName(s shapes.Shape) {
	k := s.Kind()
	e.counter[k]++
	s.SetName(fmt.Sprintf("%s%d", k, e.counter[k]))
}

// AddShape publishes s as the front-most shape of layer, together with
// the line splits its gesture found, in one history entry.
func (e *Editor) AddShape(layer *scene.Layer, s shapes.Shape, splits ...scene.LineSplit) {
	if layer == nil || s == nil {
		return
	}
	s.SetOwner(layer.ID())
	seq, before, after := scene.SplitLines(layer, layer.Shapes(), splits...)
	previous := scene.ShapesState{Layer: layer, Shapes: layer.Shapes(), Ends: before}
	next := scene.ShapesState{Layer: layer, Shapes: scene.Append(seq, s), Ends: after}
	next.Apply()
	e.history.Snapshot("Create "+s.Kind().String(), previous, next)
	e.logger.Info("shape committed", "kind", s.Kind(), "shape", s.ID(), "name", s.Name(), "splits", len(after))
}

// SplitLines publishes splits into layer in one history entry.
func (e *Editor) SplitLines(layer *scene.Layer, splits ...scene.LineSplit) {
	if layer == nil {
		return
	}
	seq, before, after := scene.SplitLines(layer, layer.Shapes(), splits...)
	if len(after) == 0 {
		return
	}
	previous := scene.ShapesState{Layer: layer, Shapes: layer.Shapes(), Ends: before}
	next := scene.ShapesState{Layer: layer, Shapes: seq, Ends: after}
	next.Apply()
	e.history.Snapshot("Split Line", previous, next)
	e.logger.Debug("lines split", "count", len(after))
}

// MoveShapes moves the unlocked shapes without touching history. In
// point mode every distinct point moves once; in shape mode every shape
// moves itself.
func (e *Editor) MoveShapes(selected []shapes.Shape, dx, dy float64) {
	selected = unlocked(selected)
	if e.options.MoveMode == config.MoveShape {
		for _, s := range selected {
			s.Move(dx, dy)
		}
		return
	}
	for _, p := range shapes.Points(selected...) {
		p.Move(dx, dy)
	}
}

// --- tool switching and input ---

// SetTool cancels the active gesture and switches to the named tool.
func (e *Editor) SetTool(name string) error {
	t, ok := e.tools[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownTool)
	}
	e.tool.Reset()
	e.tool = t
	e.logger.Debug("tool changed", "tool", t.Title())
	return nil
}

// Tool returns the active tool.
func (e *Editor) Tool() tools.Tool { return e.tool }

// ToolByName returns a configured tool so callers can adjust its options.
func (e *Editor) ToolByName(name string) (tools.Tool, bool) {
	t, ok := e.tools[strings.ToLower(name)]
	return t, ok
}

// ToolNames lists the registered tool names in sorted order.
func (e *Editor) ToolNames() []string {
	names := make([]string, 0, len(e.tools))
	for n := range e.tools {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (e *Editor) IsToolIdle() bool { return e.idle }

func (e *Editor) BeginDown(args tools.InputArgs) { e.tool.BeginDown(args) }
func (e *Editor) BeginUp(args tools.InputArgs)   { e.tool.BeginUp(args) }
func (e *Editor) EndDown(args tools.InputArgs)   { e.tool.EndDown(args) }
func (e *Editor) EndUp(args tools.InputArgs)     { e.tool.EndUp(args) }
func (e *Editor) Move(args tools.InputArgs)      { e.tool.Move(args) }

// --- history ---

// Undo cancels any gesture in progress, then undoes one entry.
func (e *Editor) Undo() bool {
	e.tool.Reset()
	if !e.history.Undo() {
		return false
	}
	e.selection.Deselect()
	return true
}

func (e *Editor) Redo() bool {
	e.tool.Reset()
	if !e.history.Redo() {
		return false
	}
	e.selection.Deselect()
	return true
}

// --- accessors ---

func (e *Editor) SelectionService() *selection.Service { return e.selection }
func (e *Editor) Registry() *hittest.Registry          { return e.hit }
func (e *Editor) Logger() *slog.Logger                 { return e.logger }

// SetCurrentStyle replaces the template new shapes copy their style from.
func (e *Editor) SetCurrentStyle(s *shapes.Style) {
	if s != nil {
		e.currentStyle = s
	}
}

// Select replaces the selection with the shapes of the current layer
// whose ids are given. Unknown ids are ignored.
func (e *Editor) Select(ids ...string) []shapes.Shape {
	layer := e.page.CurrentLayer()
	var found []shapes.Shape
	for _, s := range layer.Shapes() {
		for _, id := range ids {
			if s.ID() == id {
				found = append(found, s)
				break
			}
		}
	}
	if len(found) == 0 {
		e.selection.Deselect()
		return nil
	}
	e.selection.Select(layer, found...)
	return found
}

func unlocked(list []shapes.Shape) []shapes.Shape {
	out := make([]shapes.Shape, 0, len(list))
	for _, s := range list {
		if !s.HasState(shapes.Locked) {
			out = append(out, s)
		}
	}
	return out
}
