// Package engine is the frontend facing API of one editing session. It
// takes pointer events and commands and answers with JSON queries and
// draw command lists.
package engine

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/inamate/core2d/internal/config"
	"github.com/inamate/core2d/internal/editor"
	"github.com/inamate/core2d/internal/render"
	"github.com/inamate/core2d/internal/scene"
	"github.com/inamate/core2d/internal/spatial"
	"github.com/inamate/core2d/internal/tools"
)

// Engine owns an editor and its input target. It is not safe for
// concurrent use; callers serialize access.
type Engine struct {
	editor *editor.Editor
	input  *InputTarget

	// Dirty flag - a layer asked for a repaint since the last render
	dirty bool
}

// NewEngine creates an engine with an empty page sized from options.
func NewEngine(options config.Editor, opts ...editor.Option) *Engine {
	e := &Engine{
		editor: editor.New(options, opts...),
		dirty:  true,
	}
	e.input = NewInputTarget(e.editor)
	e.editor.Page().OnInvalidate(func(*scene.Layer) { e.dirty = true })
	return e
}

// Editor exposes the underlying editor.
func (e *Engine) Editor() *editor.Editor { return e.editor }

// Input exposes the gated input target.
func (e *Engine) Input() *InputTarget { return e.input }

// --- Commands (frontend → backend) ---

// PointerDown is a primary button press.
func (e *Engine) PointerDown(args tools.InputArgs) bool { return e.track(e.input.BeginDown(args)) }

// PointerUp is a primary button release.
func (e *Engine) PointerUp(args tools.InputArgs) bool { return e.track(e.input.BeginUp(args)) }

// AltDown is a secondary button press. Tools treat it as cancel.
func (e *Engine) AltDown(args tools.InputArgs) bool { return e.track(e.input.EndDown(args)) }

// AltUp is a secondary button release.
func (e *Engine) AltUp(args tools.InputArgs) bool { return e.track(e.input.EndUp(args)) }

// PointerMove is a pointer move with or without a pressed button.
func (e *Engine) PointerMove(args tools.InputArgs) bool { return e.track(e.input.Move(args)) }

func (e *Engine) track(forwarded bool) bool {
	if forwarded {
		e.dirty = true
	}
	return forwarded
}

// SetTool switches the current tool by its lower-case title.
func (e *Engine) SetTool(name string) error {
	if err := e.editor.SetTool(name); err != nil {
		return err
	}
	e.dirty = true
	return nil
}

// SetSelection replaces the selection with shapes of the current layer.
func (e *Engine) SetSelection(ids []string) {
	e.editor.Select(ids...)
	e.dirty = true
}

// Undo reverts one history entry.
func (e *Engine) Undo() bool {
	ok := e.editor.Undo()
	e.dirty = e.dirty || ok
	return ok
}

// Redo reapplies one history entry.
func (e *Engine) Redo() bool {
	ok := e.editor.Redo()
	e.dirty = e.dirty || ok
	return ok
}

// --- Queries (frontend ← backend) ---

// NeedsRender reports whether anything changed since the last Render.
func (e *Engine) NeedsRender() bool { return e.dirty }

// DrawCommands compiles the page and the selection decorator.
func (e *Engine) DrawCommands() []render.DrawCommand {
	rect, visible := e.editor.SelectionService().Decorator()
	return render.Compile(e.editor.Page(), rect, visible)
}

// Frame returns the draw commands and clears the dirty flag.
func (e *Engine) Frame() []render.DrawCommand {
	cmds := e.DrawCommands()
	e.dirty = false
	return cmds
}

// Render returns the Frame as JSON.
func (e *Engine) Render() string {
	out, _ := render.ToJSON(e.Frame())
	return out
}

// HitTest returns the id of the top-most shape of the current layer at
// (x, y), or an empty string.
func (e *Engine) HitTest(x, y float64) string {
	if s := e.editor.SelectionService().TryToGetShape(x, y); s != nil {
		return s.ID()
	}
	return ""
}

// GetSelectionBounds returns the decorator rect as JSON.
func (e *Engine) GetSelectionBounds() string {
	rect, visible := e.editor.SelectionService().Decorator()
	if !visible {
		rect = spatial.Rect2{}
	}
	return RectToJSON(rect)
}

// SelectionIDs returns the ids of the selected shapes.
func (e *Engine) SelectionIDs() []string {
	selected := e.editor.SelectionService().Selected()
	ids := make([]string, len(selected))
	for i, s := range selected {
		ids[i] = s.ID()
	}
	return ids
}

// GetSelection returns the selected shape ids as a JSON array.
func (e *Engine) GetSelection() string {
	data, _ := json.Marshal(e.SelectionIDs())
	return string(data)
}

// GetTool returns the name of the current tool.
func (e *Engine) GetTool() string {
	return strings.ToLower(e.editor.Tool().Title())
}

// GetTools returns the tool names as a JSON array.
func (e *Engine) GetTools() string {
	data, _ := json.Marshal(e.editor.ToolNames())
	return string(data)
}

// HistoryState is the undo/redo availability shown by the frontend.
type HistoryState struct {
	CanUndo bool `json:"canUndo"`
	CanRedo bool `json:"canRedo"`
	Length  int  `json:"length"`
}

func (e *Engine) HistoryState() HistoryState {
	h := e.editor.History()
	return HistoryState{CanUndo: h.CanUndo(), CanRedo: h.CanRedo(), Length: h.Len()}
}

// GetHistory returns the HistoryState as JSON.
func (e *Engine) GetHistory() string {
	data, _ := json.Marshal(e.HistoryState())
	return string(data)
}

// ExportSVG writes the page without editing overlays as SVG. assets may
// be nil.
func (e *Engine) ExportSVG(w io.Writer, assets render.Assets) {
	page := e.editor.Page()
	render.WriteSVG(w, page.Width, page.Height, e.exportCommands(), assets)
}

// ExportPNG writes the page without editing overlays as PNG.
func (e *Engine) ExportPNG(w io.Writer, assets render.Assets) error {
	page := e.editor.Page()
	return render.WritePNG(w, page.Width, page.Height, e.exportCommands(), assets)
}

func (e *Engine) exportCommands() []render.DrawCommand {
	d := &render.DrawList{}
	for _, l := range e.editor.Page().Layers {
		d.DrawLayer(l)
	}
	return d.Commands
}

// RectToJSON serializes a Rect2 to JSON.
func RectToJSON(r spatial.Rect2) string {
	data, _ := json.Marshal(map[string]float64{
		"x":      r.X,
		"y":      r.Y,
		"width":  r.Width,
		"height": r.Height,
	})
	return string(data)
}
