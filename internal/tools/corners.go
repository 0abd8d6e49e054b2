package tools

import (
	"github.com/inamate/core2d/internal/overlay"
	"github.com/inamate/core2d/internal/shapes"
)

type cornerState int

const (
	cornerTopLeft cornerState = iota
	cornerBottomRight
)

// cornerTool drives the two-click box shapes: rectangle, text and image.
type cornerTool struct {
	base
	title string
	// create returns nil when the shape cannot be made yet.
	create  func(e env, tl, br *shapes.Point, style *shapes.Style) (shapes.Shape, *shapes.Box)
	overlay func(e env, s shapes.Shape, style *shapes.Style) *overlay.Corners

	state cornerState
	shape shapes.Shape
	box   *shapes.Box
	corn  *overlay.Corners
}

func (t *cornerTool) Title() string { return t.title }

func (t *cornerTool) BeginDown(args InputArgs) {
	e, ok := t.env()
	if !ok {
		return
	}
	x, y := t.snap(args)
	switch t.state {
	case cornerTopLeft:
		f := e.factory
		s, box := t.create(e, f.CreatePointShape(x, y), f.CreatePointShape(x, y), t.style(e))
		if s == nil {
			return
		}
		t.shape, t.box = s, box
		if c := t.connectionPoint(e, x, y); c != nil {
			box.TopLeft = c
		}
		t.begin(e, s)
		t.corn = t.overlay(e, s, t.helperStyle())
		t.corn.ToStateBottomRight()
		t.corn.Move()
		t.state = cornerBottomRight
	case cornerBottomRight:
		t.box.BottomRight.Set(x, y)
		if c := t.connectionPoint(e, x, y); c != nil && c != t.box.TopLeft {
			t.box.BottomRight = c
		}
		t.commit(e, t.shape)
		t.Reset()
	}
}

func (t *cornerTool) BeginUp(InputArgs) {}
func (t *cornerTool) EndUp(InputArgs)   {}

func (t *cornerTool) EndDown(InputArgs) {
	if t.state != cornerTopLeft {
		t.Reset()
	}
}

func (t *cornerTool) Move(args InputArgs) {
	e, ok := t.env()
	if !ok {
		return
	}
	x, y := t.snap(args)
	t.hover(e, x, y)
	if t.state == cornerBottomRight {
		t.box.BottomRight.Set(x, y)
		e.page.Working.RaiseInvalidate()
		t.corn.Move()
	}
}

func (t *cornerTool) Reset() {
	if t.state == cornerBottomRight {
		t.discard(t.shape)
	} else if t.ctx != nil {
		t.ctx.SetToolIdle(true)
	}
	t.state = cornerTopLeft
	t.shape, t.box = nil, nil
	if t.corn != nil {
		t.corn.Reset()
		t.corn = nil
	}
}

type Rectangle struct {
	cornerTool
}

func NewRectangle(ctx Context) *Rectangle {
	return &Rectangle{cornerTool{
		base:  base{ctx: ctx},
		title: "Rectangle",
		create: func(e env, tl, br *shapes.Point, style *shapes.Style) (shapes.Shape, *shapes.Box) {
			r := e.factory.CreateRectangleShape(tl, br, style, e.options.DefaultIsStroked, e.options.DefaultIsFilled)
			return r, &r.Box
		},
		overlay: func(e env, s shapes.Shape, style *shapes.Style) *overlay.Corners {
			return overlay.NewRectangle(e.page.Helper, s.(*shapes.Rectangle), style, e.factory)
		},
	}}
}

// Text places a text box with DefaultText.
type Text struct {
	cornerTool
	DefaultText string
}

func NewText(ctx Context) *Text {
	t := &Text{DefaultText: "Text"}
	t.cornerTool = cornerTool{
		base:  base{ctx: ctx},
		title: "Text",
		create: func(e env, tl, br *shapes.Point, style *shapes.Style) (shapes.Shape, *shapes.Box) {
			s := e.factory.CreateTextShape(tl, br, style, t.DefaultText, e.options.DefaultIsStroked)
			return s, &s.Box
		},
		overlay: func(e env, s shapes.Shape, style *shapes.Style) *overlay.Corners {
			return overlay.NewText(e.page.Helper, s.(*shapes.Text), style, e.factory)
		},
	}
	return t
}

// Image places an image box for Key. With no key set it does nothing.
type Image struct {
	cornerTool
	Key string
}

func NewImage(ctx Context) *Image {
	t := &Image{}
	t.cornerTool = cornerTool{
		base:  base{ctx: ctx},
		title: "Image",
		create: func(e env, tl, br *shapes.Point, style *shapes.Style) (shapes.Shape, *shapes.Box) {
			if t.Key == "" {
				return nil, nil
			}
			s := e.factory.CreateImageShape(tl, br, style, t.Key, e.options.DefaultIsStroked, e.options.DefaultIsFilled)
			return s, &s.Box
		},
		overlay: func(e env, s shapes.Shape, style *shapes.Style) *overlay.Corners {
			return overlay.NewImage(e.page.Helper, s.(*shapes.Image), style, e.factory)
		},
	}
	return t
}
