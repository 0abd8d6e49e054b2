package engine

import (
	"github.com/inamate/core2d/internal/editor"
	"github.com/inamate/core2d/internal/tools"
)

// InputTarget forwards pointer events to the current tool while the
// current layer is visible. Events aimed at a hidden layer are dropped.
type InputTarget struct {
	editor *editor.Editor
}

func NewInputTarget(e *editor.Editor) *InputTarget {
	return &InputTarget{editor: e}
}

// IsAvailable reports whether events are forwarded.
func (t *InputTarget) IsAvailable() bool {
	if t == nil || t.editor == nil {
		return false
	}
	layer := t.editor.Page().CurrentLayer()
	return layer != nil && layer.IsVisible
}

func (t *InputTarget) BeginDown(args tools.InputArgs) bool {
	return t.forward(args, t.editor.BeginDown)
}

func (t *InputTarget) BeginUp(args tools.InputArgs) bool {
	return t.forward(args, t.editor.BeginUp)
}

func (t *InputTarget) EndDown(args tools.InputArgs) bool {
	return t.forward(args, t.editor.EndDown)
}

func (t *InputTarget) EndUp(args tools.InputArgs) bool {
	return t.forward(args, t.editor.EndUp)
}

func (t *InputTarget) Move(args tools.InputArgs) bool {
	return t.forward(args, t.editor.Move)
}

func (t *InputTarget) forward(args tools.InputArgs, fn func(tools.InputArgs)) bool {
	if !t.IsAvailable() {
		return false
	}
	fn(args)
	return true
}
