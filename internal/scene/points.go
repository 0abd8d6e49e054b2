package scene

import (
	"github.com/inamate/core2d/internal/shapes"
	"github.com/inamate/core2d/internal/spatial"
)

// PointsState is a history value holding captured coordinates of a
// point set. Applying it writes the coordinates back.
type PointsState struct {
	Layer  *Layer
	Points []*shapes.Point
	Coords []spatial.Point2
}

// CapturePoints records the current coordinates of the distinct points
// of the given shapes.
func CapturePoints(layer *Layer, selected ...shapes.Shape) PointsState {
	pts := shapes.Points(selected...)
	coords := make([]spatial.Point2, len(pts))
	for i, p := range pts {
		coords[i] = p.Vec()
	}
	return PointsState{Layer: layer, Points: pts, Coords: coords}
}

func (s PointsState) Apply() {
	for i, p := range s.Points {
		p.Set(s.Coords[i].X, s.Coords[i].Y)
	}
	if s.Layer != nil {
		s.Layer.RaiseInvalidate()
	}
}

// Equal reports whether both states hold the same coordinates for the
// same points.
func (s PointsState) Equal(other PointsState) bool {
	if len(s.Points) != len(other.Points) {
		return false
	}
	for i := range s.Points {
		if s.Points[i] != other.Points[i] || s.Coords[i] != other.Coords[i] {
			return false
		}
	}
	return true
}
