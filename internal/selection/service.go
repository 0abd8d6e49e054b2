// Package selection implements the snap, connect, hover and select
// collaborator used by the drawing tools.
package selection

import (
	"log/slog"
	"slices"

	"github.com/inamate/core2d/internal/config"
	"github.com/inamate/core2d/internal/hittest"
	"github.com/inamate/core2d/internal/scene"
	"github.com/inamate/core2d/internal/shapes"
	"github.com/inamate/core2d/internal/spatial"
)

// Service works on the current layer of its page. Only real layers are
// searched; the working and helper layers never are.
type Service struct {
	page    *scene.Page
	hit     *hittest.Registry
	factory shapes.Factory
	options *config.Editor
	logger  *slog.Logger

	// Scale is the view zoom used for Size-flagged shapes.
	Scale float64

	selected         []shapes.Shape
	hovered          shapes.Shape
	decorator        spatial.Rect2
	decoratorVisible bool
}

func New(page *scene.Page, hit *hittest.Registry, factory shapes.Factory, options *config.Editor, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		page:    page,
		hit:     hit,
		factory: factory,
		options: options,
		logger:  logger,
		Scale:   1,
	}
}

func (s *Service) layer() *scene.Layer {
	if s.page == nil {
		return nil
	}
	return s.page.CurrentLayer()
}

// TryToSnap rounds to the grid when grid snapping is on.
func (s *Service) TryToSnap(x, y float64) (float64, float64) {
	if s.options == nil || !s.options.SnapToGrid {
		return x, y
	}
	return spatial.Snap(x, s.options.SnapX), spatial.Snap(y, s.options.SnapY)
}

func (s *Service) threshold() float64 {
	if s.options == nil {
		return 0
	}
	return s.options.HitThreshold
}

func (s *Service) TryToGetConnectionPoint(x, y float64) *shapes.Point {
	l := s.layer()
	if l == nil {
		return nil
	}
	return s.hit.TryToGetPointIn(l.Shapes(), spatial.Point2{X: x, Y: y}, s.threshold(), s.Scale)
}

func (s *Service) TryToGetShape(x, y float64) shapes.Shape {
	l := s.layer()
	if l == nil {
		return nil
	}
	return s.hit.TryToGetShape(l.Shapes(), spatial.Point2{X: x, Y: y}, s.threshold(), s.Scale)
}

func (s *Service) TryToGetShapes(rect spatial.Rect2) []shapes.Shape {
	l := s.layer()
	if l == nil {
		return nil
	}
	return s.hit.TryToGetShapes(l.Shapes(), rect, s.threshold(), s.Scale)
}

// TryToHoverShape remembers the shape under (x, y) for highlighting.
func (s *Service) TryToHoverShape(x, y float64) bool {
	prev := s.hovered
	s.hovered = s.TryToGetShape(x, y)
	if s.hovered != prev {
		if l := s.layer(); l != nil {
			l.RaiseInvalidate()
		}
	}
	return s.hovered != nil
}

func (s *Service) Hovered() shapes.Shape { return s.hovered }

// TryToSplitLine finds the top-most line whose body is at (x, y) and
// returns the split that would join its two halves at point. Hitting an
// endpoint does not split. Nothing is applied: the caller publishes the
// split together with its own change.
func (s *Service) TryToSplitLine(x, y float64, point *shapes.Point) (scene.LineSplit, bool) {
	l := s.layer()
	if l == nil || s.factory == nil || point == nil {
		return scene.LineSplit{}, false
	}
	target := spatial.Point2{X: x, Y: y}
	seq := l.Shapes()
	for i := len(seq) - 1; i >= 0; i-- {
		line, ok := seq[i].(*shapes.Line)
		if !ok || line.HasState(shapes.Locked) || line.Start == point || line.End == point {
			continue
		}
		if s.hit.TryToGetPoint(line, target, s.threshold(), s.Scale) != nil {
			continue
		}
		if !s.hit.Contains(line, target, s.threshold(), s.Scale) {
			continue
		}

		split := s.factory.CreateLineShape(point, line.End, line.Style().Clone(), line.IsStroked())
		split.SetName(line.Name())
		s.logger.Debug("line split found", "line", line.ID(), "new", split.ID())
		return scene.LineSplit{Line: line, Point: point, Split: split}, true
	}
	return scene.LineSplit{}, false
}

func (s *Service) Select(layer *scene.Layer, selected ...shapes.Shape) {
	s.selected = slices.Clone(selected)
	s.OnUpdateDecorator()
	if layer != nil {
		layer.RaiseInvalidate()
	}
}

func (s *Service) Deselect() {
	s.selected = nil
	s.OnHideDecorator()
}

// Selected returns a copy of the selection.
func (s *Service) Selected() []shapes.Shape {
	return slices.Clone(s.selected)
}

func (s *Service) IsSelected(shape shapes.Shape) bool {
	return slices.Contains(s.selected, shape)
}

func (s *Service) OnUpdateDecorator() {
	if len(s.selected) == 0 {
		s.OnHideDecorator()
		return
	}
	s.decorator = shapes.Bounds(s.selected...)
	s.decoratorVisible = true
}

func (s *Service) OnHideDecorator() {
	s.decorator = spatial.Rect2{}
	s.decoratorVisible = false
}

// Decorator returns the selection bounds and whether they are shown.
func (s *Service) Decorator() (spatial.Rect2, bool) {
	return s.decorator, s.decoratorVisible
}
