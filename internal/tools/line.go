package tools

import (
	"github.com/inamate/core2d/internal/overlay"
	"github.com/inamate/core2d/internal/shapes"
)

type lineState int

const (
	lineStart lineState = iota
	lineEnd
)

type Line struct {
	base
	state   lineState
	line    *shapes.Line
	overlay *overlay.Line
}

func NewLine(ctx Context) *Line {
	return &Line{base: base{ctx: ctx}}
}

func (t *Line) Title() string { return "Line" }

func (t *Line) BeginDown(args InputArgs) {
	e, ok := t.env()
	if !ok {
		return
	}
	x, y := t.snap(args)
	switch t.state {
	case lineStart:
		f := e.factory
		t.line = f.CreateLineShape(f.CreatePointShape(x, y), f.CreatePointShape(x, y), t.style(e), e.options.DefaultIsStroked)
		t.line.Start = t.connectOrSplit(e, x, y, args.X, args.Y, t.line.Start)
		t.begin(e, t.line)
		t.overlay = overlay.NewLine(e.page.Helper, t.line, t.helperStyle(), f)
		t.overlay.ToStateEnd()
		t.overlay.Move()
		t.state = lineEnd
	case lineEnd:
		t.line.End.Set(x, y)
		if end := t.connectOrSplit(e, x, y, args.X, args.Y, t.line.End); end != t.line.Start {
			t.line.End = end
		}
		t.commit(e, t.line)
		t.Reset()
	}
}

func (t *Line) BeginUp(InputArgs) {}
func (t *Line) EndUp(InputArgs)   {}

func (t *Line) EndDown(InputArgs) {
	if t.state != lineStart {
		t.Reset()
	}
}

func (t *Line) Move(args InputArgs) {
	e, ok := t.env()
	if !ok {
		return
	}
	x, y := t.snap(args)
	t.hover(e, x, y)
	if t.state == lineEnd {
		t.line.End.Set(x, y)
		e.page.Working.RaiseInvalidate()
		t.overlay.Move()
	}
}

func (t *Line) Reset() {
	if t.state == lineEnd {
		t.discard(t.line)
	} else if t.ctx != nil {
		t.ctx.SetToolIdle(true)
	}
	t.splits = nil
	t.state = lineStart
	t.line = nil
	if t.overlay != nil {
		t.overlay.Reset()
		t.overlay = nil
	}
}
