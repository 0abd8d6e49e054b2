package engine

import (
	"errors"
	"fmt"

	"github.com/inamate/core2d/internal/editor"
	"github.com/inamate/core2d/internal/pathconv"
)

var ErrUnknownCommand = errors.New("unknown command")

// Command is an editor action sent by the frontend. Only the fields the
// named action reads are set.
type Command struct {
	Name string `json:"name"`

	// For move-by
	DX float64 `json:"dx,omitempty"`
	DY float64 `json:"dy,omitempty"`

	// For align
	Mode string `json:"mode,omitempty"`

	// For distribute, stack and flip
	Direction string `json:"direction,omitempty"`

	// For rotate
	Degrees float64 `json:"degrees,omitempty"`

	// For path-op
	Operator string `json:"operator,omitempty"`

	// For select
	IDs []string `json:"ids,omitempty"`

	// For layer.visible
	Visible *bool `json:"visible,omitempty"`

	// For view.scale
	Scale float64 `json:"scale,omitempty"`
}

// Execute runs one command against the current layer and selection.
func (e *Engine) Execute(cmd Command) error {
	if err := e.execute(cmd); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	e.dirty = true
	return nil
}

func (e *Engine) execute(cmd Command) error {
	s := e.editor.Shapes
	switch cmd.Name {
	case "group":
		_, err := s.Group()
		return err
	case "ungroup":
		_, err := s.Ungroup()
		return err
	case "bring-to-front":
		return s.BringToFrontSelected()
	case "bring-forward":
		return s.BringForwardSelected()
	case "send-backward":
		return s.SendBackwardSelected()
	case "send-to-back":
		return s.SendToBackSelected()
	case "break":
		_, err := s.Break()
		return err
	case "create-path":
		_, err := s.CreatePath()
		return err
	case "create-stroke-path":
		_, err := s.CreateStrokePath()
		return err
	case "create-fill-path":
		_, err := s.CreateFillPath()
		return err
	case "create-winding-path":
		_, err := s.CreateWindingPath()
		return err
	case "simplify":
		_, err := s.Simplify()
		return err
	case "path-op":
		op, err := pathconv.ParseOperator(cmd.Operator)
		if err != nil {
			return err
		}
		_, err = s.PathOp(op)
		return err
	case "move-by":
		return s.MoveBy(cmd.DX, cmd.DY)
	case "align":
		mode, err := editor.ParseAlignMode(cmd.Mode)
		if err != nil {
			return err
		}
		return s.Align(mode)
	case "distribute", "stack", "flip":
		dir, err := editor.ParseDirection(cmd.Direction)
		if err != nil {
			return err
		}
		switch cmd.Name {
		case "distribute":
			return s.Distribute(dir)
		case "stack":
			return s.Stack(dir)
		}
		return s.Flip(dir)
	case "rotate":
		return s.Rotate(cmd.Degrees)
	case "delete":
		return s.Delete()
	case "duplicate":
		_, err := s.Duplicate()
		return err
	case "copy":
		_, err := s.Copy()
		return err
	case "cut":
		_, err := s.Cut()
		return err
	case "paste":
		_, err := s.Paste()
		return err
	case "select":
		e.editor.Select(cmd.IDs...)
		return nil
	case "deselect":
		e.editor.SelectionService().Deselect()
		return nil
	case "layer.visible":
		if cmd.Visible == nil {
			return errors.New("missing visible")
		}
		if !*cmd.Visible {
			e.editor.Tool().Reset()
		}
		e.editor.Page().CurrentLayer().IsVisible = *cmd.Visible
		return nil
	case "view.scale":
		return e.SetScale(cmd.Scale)
	default:
		return ErrUnknownCommand
	}
}
