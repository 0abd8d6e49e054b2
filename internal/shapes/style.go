package shapes

import (
	"fmt"

	"github.com/inamate/core2d/internal/typeid"
)

// ArgbColor is an 8-bit per channel color with alpha.
type ArgbColor struct {
	A uint8 `json:"a"`
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the color as "#rrggbb", dropping alpha.
func (c ArgbColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Opacity returns alpha in [0, 1].
func (c ArgbColor) Opacity() float64 {
	return float64(c.A) / 255.0
}

type LineCap int

const (
	FlatCap LineCap = iota
	SquareCap
	RoundCap
)

// Style is shared by reference between shapes. Tools and the factory copy
// a style before assigning it so edits never leak into the template.
type Style struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Stroke    ArgbColor `json:"stroke"`
	Fill      ArgbColor `json:"fill"`
	Thickness float64   `json:"thickness"`
	LineCap   LineCap   `json:"lineCap"`
	Dashes    []float64 `json:"dashes,omitempty"`
	FontName  string    `json:"fontName"`
	FontSize  float64   `json:"fontSize"`
}

// NewStyle returns a black-stroke, transparent-fill style.
func NewStyle(name string) *Style {
	return &Style{
		ID:        typeid.NewStyleID(),
		Name:      name,
		Stroke:    ArgbColor{A: 255},
		Fill:      ArgbColor{A: 0, R: 255, G: 255, B: 255},
		Thickness: 2,
		LineCap:   RoundCap,
		FontName:  "Calibri",
		FontSize:  12,
	}
}

// Clone returns an independent copy with a fresh id.
func (s *Style) Clone() *Style {
	if s == nil {
		return nil
	}
	c := *s
	c.ID = typeid.NewStyleID()
	if s.Dashes != nil {
		c.Dashes = append([]float64(nil), s.Dashes...)
	}
	return &c
}
