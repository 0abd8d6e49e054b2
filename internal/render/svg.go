package render

import (
	"fmt"
	"image"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// Assets resolves the bitmaps image shapes refer to by key.
type Assets interface {
	Open(key string) (image.Image, error)
	URL(key string) string
}

// WriteSVG writes commands as an SVG document of the given page size.
// Images link to their asset URL when assets is set.
func WriteSVG(w io.Writer, width, height float64, commands []DrawCommand, assets Assets) {
	canvas := svg.New(w)
	canvas.Start(int(math.Ceil(width)), int(math.Ceil(height)))
	for _, cmd := range commands {
		switch cmd.Op {
		case "path":
			canvas.Path(PathData(cmd.Path), svgStyle(cmd))
		case "text":
			canvas.Gtransform(matrixAttr(cmd.Transform))
			size := cmd.FontSize
			if size <= 0 {
				size = 12
			}
			fill := cmd.Stroke
			if fill == "" {
				fill = "#000000"
			}
			canvas.Text(0, int(math.Round(size)), cmd.Text,
				fmt.Sprintf("font-family:%s;font-size:%gpx;fill:%s", cmd.FontName, size, fill))
			canvas.Gend()
		case "image":
			canvas.Gtransform(matrixAttr(cmd.Transform))
			if assets != nil && cmd.ImageKey != "" {
				canvas.Image(0, 0, int(math.Round(cmd.Width)), int(math.Round(cmd.Height)), assets.URL(cmd.ImageKey))
				canvas.Gend()
				continue
			}
			canvas.Rect(0, 0, int(math.Round(cmd.Width)), int(math.Round(cmd.Height)),
				"fill:none;stroke:#888888;stroke-dasharray:2,2")
			canvas.Gend()
		}
	}
	canvas.End()
}

// PathData formats path commands as SVG path data.
func PathData(path []PathCommand) string {
	var sb strings.Builder
	for i, cmd := range path {
		if len(cmd) == 0 {
			continue
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		op, _ := cmd[0].(string)
		sb.WriteString(op)
		for _, v := range cmd[1:] {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(toFloat64(v), 'f', -1, 64))
		}
	}
	return sb.String()
}

func svgStyle(cmd DrawCommand) string {
	var parts []string
	if cmd.Fill != "" {
		parts = append(parts, "fill:"+cmd.Fill, fmt.Sprintf("fill-opacity:%g", cmd.FillOpacity))
		if cmd.FillRule != "" {
			parts = append(parts, "fill-rule:"+cmd.FillRule)
		}
	} else {
		parts = append(parts, "fill:none")
	}
	if cmd.Stroke != "" {
		parts = append(parts,
			"stroke:"+cmd.Stroke,
			fmt.Sprintf("stroke-opacity:%g", cmd.StrokeOpacity),
			fmt.Sprintf("stroke-width:%g", cmd.StrokeWidth))
		if cmd.LineCap != "" {
			parts = append(parts, "stroke-linecap:"+cmd.LineCap)
		}
		if len(cmd.Dashes) > 0 {
			dashes := make([]string, len(cmd.Dashes))
			for i, d := range cmd.Dashes {
				dashes[i] = strconv.FormatFloat(d, 'f', -1, 64)
			}
			parts = append(parts, "stroke-dasharray:"+strings.Join(dashes, ","))
		}
	}
	return strings.Join(parts, ";")
}

func matrixAttr(m []float64) string {
	if len(m) != 6 {
		return "matrix(1 0 0 1 0 0)"
	}
	return fmt.Sprintf("matrix(%g %g %g %g %g %g)", m[0], m[1], m[2], m[3], m[4], m[5])
}

// toFloat64 reads a path operand that may have been decoded from JSON.
func toFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
