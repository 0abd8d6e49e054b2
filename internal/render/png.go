package render

import (
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/fogleman/gg"
)

// Rasterize draws commands onto a white context of the given size.
// Images are drawn from assets when it has them, otherwise as a
// placeholder frame.
func Rasterize(width, height float64, commands []DrawCommand, assets Assets) *gg.Context {
	dc := gg.NewContext(int(math.Ceil(width)), int(math.Ceil(height)))
	dc.SetColor(color.White)
	dc.Clear()
	for _, cmd := range commands {
		switch cmd.Op {
		case "path":
			rasterPath(dc, cmd)
		case "text":
			x, y := offset(cmd.Transform)
			dc.SetColor(parseColor(cmd.Stroke, 1))
			dc.DrawStringWrapped(cmd.Text, x, y, 0, 0, cmd.Width, 1.2, gg.AlignLeft)
		case "image":
			x, y := offset(cmd.Transform)
			if drawAsset(dc, cmd, assets) {
				continue
			}
			dc.SetColor(color.Gray{Y: 0x88})
			dc.SetLineWidth(1)
			dc.SetDash(2, 2)
			dc.DrawRectangle(x, y, cmd.Width, cmd.Height)
			dc.Stroke()
			dc.SetDash()
		}
	}
	return dc
}

// WritePNG rasterizes commands and encodes the result as PNG.
func WritePNG(w io.Writer, width, height float64, commands []DrawCommand, assets Assets) error {
	return Rasterize(width, height, commands, assets).EncodePNG(w)
}

// drawAsset scales the bitmap named by cmd into its box.
func drawAsset(dc *gg.Context, cmd DrawCommand, assets Assets) bool {
	if assets == nil || cmd.ImageKey == "" {
		return false
	}
	img, err := assets.Open(cmd.ImageKey)
	if err != nil {
		return false
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return false
	}
	x, y := offset(cmd.Transform)
	dc.Push()
	dc.Translate(x, y)
	dc.Scale(cmd.Width/float64(b.Dx()), cmd.Height/float64(b.Dy()))
	dc.DrawImage(img, 0, 0)
	dc.Pop()
	return true
}

func rasterPath(dc *gg.Context, cmd DrawCommand) {
	tracePath(dc, cmd.Path)
	if cmd.Fill != "" {
		if cmd.FillRule == "nonzero" {
			dc.SetFillRule(gg.FillRuleWinding)
		} else {
			dc.SetFillRule(gg.FillRuleEvenOdd)
		}
		dc.SetColor(parseColor(cmd.Fill, cmd.FillOpacity))
		dc.FillPreserve()
	}
	if cmd.Stroke != "" {
		dc.SetColor(parseColor(cmd.Stroke, cmd.StrokeOpacity))
		dc.SetLineWidth(cmd.StrokeWidth)
		switch cmd.LineCap {
		case "round":
			dc.SetLineCapRound()
		case "square":
			dc.SetLineCapSquare()
		default:
			dc.SetLineCapButt()
		}
		dc.SetDash(cmd.Dashes...)
		dc.StrokePreserve()
		dc.SetDash()
	}
	dc.ClearPath()
}

func tracePath(dc *gg.Context, path []PathCommand) {
	for _, cmd := range path {
		if len(cmd) == 0 {
			continue
		}
		op, _ := cmd[0].(string)
		n := make([]float64, len(cmd)-1)
		for i, v := range cmd[1:] {
			n[i] = toFloat64(v)
		}
		switch {
		case op == "M" && len(n) >= 2:
			dc.MoveTo(n[0], n[1])
		case op == "L" && len(n) >= 2:
			dc.LineTo(n[0], n[1])
		case op == "Q" && len(n) >= 4:
			dc.QuadraticTo(n[0], n[1], n[2], n[3])
		case op == "C" && len(n) >= 6:
			dc.CubicTo(n[0], n[1], n[2], n[3], n[4], n[5])
		case op == "Z":
			dc.ClosePath()
		}
	}
}

func offset(m []float64) (float64, float64) {
	if len(m) != 6 {
		return 0, 0
	}
	return m[4], m[5]
}

// parseColor reads "#rrggbb". Anything else is black.
func parseColor(hex string, opacity float64) color.NRGBA {
	c := color.NRGBA{A: uint8(math.Round(clamp01(opacity) * 255))}
	if len(hex) != 7 || hex[0] != '#' {
		return c
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return c
	}
	c.R, c.G, c.B = uint8(v>>16), uint8(v>>8), uint8(v)
	return c
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
