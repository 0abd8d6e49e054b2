package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/inamate/core2d/internal/tools"
	"github.com/inamate/core2d/internal/typeid"
)

// ToolOptions are the per-tool settings a frontend can change. A nil
// field is left as it is.
type ToolOptions struct {
	EllipseMode *string `json:"ellipseMode,omitempty"` // rectangle or circle
	ImageKey    *string `json:"imageKey,omitempty"`    // asset key placed by the image tool
	Text        *string `json:"text,omitempty"`        // initial text of new text boxes
}

var ErrInvalidScale = errors.New("scale must be positive")

func (e *Engine) ellipseTool() *tools.Ellipse {
	t, _ := e.editor.ToolByName("ellipse")
	ellipse, _ := t.(*tools.Ellipse)
	return ellipse
}

func (e *Engine) imageTool() *tools.Image {
	t, _ := e.editor.ToolByName("image")
	image, _ := t.(*tools.Image)
	return image
}

func (e *Engine) textTool() *tools.Text {
	t, _ := e.editor.ToolByName("text")
	text, _ := t.(*tools.Text)
	return text
}

// SetToolOptions validates every given option before applying any.
func (e *Engine) SetToolOptions(o ToolOptions) error {
	var mode tools.EllipseMode
	if o.EllipseMode != nil {
		m, err := tools.ParseEllipseMode(*o.EllipseMode)
		if err != nil {
			return err
		}
		mode = m
	}
	if o.ImageKey != nil && *o.ImageKey != "" {
		if err := typeid.Validate(*o.ImageKey, typeid.PrefixAsset); err != nil {
			return fmt.Errorf("image key: %w", err)
		}
	}

	// A changed option applies to the next gesture.
	e.editor.Tool().Reset()
	if t := e.ellipseTool(); t != nil && o.EllipseMode != nil {
		t.Mode = mode
	}
	if t := e.imageTool(); t != nil && o.ImageKey != nil {
		t.Key = *o.ImageKey
	}
	if t := e.textTool(); t != nil && o.Text != nil {
		t.DefaultText = *o.Text
	}
	e.dirty = true
	return nil
}

// ToolOptions returns the current settings of the configurable tools.
func (e *Engine) ToolOptions() ToolOptions {
	var o ToolOptions
	if t := e.ellipseTool(); t != nil {
		mode := t.Mode.String()
		o.EllipseMode = &mode
	}
	if t := e.imageTool(); t != nil {
		key := t.Key
		o.ImageKey = &key
	}
	if t := e.textTool(); t != nil {
		text := t.DefaultText
		o.Text = &text
	}
	return o
}

// SetScale sets the view zoom used when hit-testing Size-flagged shapes.
func (e *Engine) SetScale(scale float64) error {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return ErrInvalidScale
	}
	e.editor.SelectionService().Scale = scale
	return nil
}

// Scale returns the view zoom.
func (e *Engine) Scale() float64 { return e.editor.SelectionService().Scale }
