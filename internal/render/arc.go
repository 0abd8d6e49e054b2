package render

import "math"

// arcCubics approximates an elliptical arc with one cubic per quarter turn
// or less. The arc starts at angle theta and sweeps by delta radians.
func arcCubics(cx, cy, rx, ry, phi, theta, delta float64) []PathCommand {
	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if n == 0 {
		return nil
	}
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
	at := func(x, y float64) (float64, float64) {
		return cx + x*cosPhi - y*sinPhi, cy + x*sinPhi + y*cosPhi
	}

	cmds := make([]PathCommand, 0, n)
	a := theta
	for range n {
		b := a + step
		cosA, sinA := math.Cos(a), math.Sin(a)
		cosB, sinB := math.Cos(b), math.Sin(b)
		x1, y1 := at(rx*(cosA-k*sinA), ry*(sinA+k*cosA))
		x2, y2 := at(rx*(cosB+k*sinB), ry*(sinB-k*cosB))
		x, y := at(rx*cosB, ry*sinB)
		cmds = append(cmds, PathCommand{"C", x1, y1, x2, y2, x, y})
		a = b
	}
	return cmds
}

// endpointArc converts an SVG endpoint arc from (x1, y1) to (x2, y2) into
// cubic commands. Degenerate radii draw a straight line.
func endpointArc(x1, y1, x2, y2, rx, ry, degrees float64, large, sweep bool) []PathCommand {
	if x1 == x2 && y1 == y2 {
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return []PathCommand{{"L", x2, y2}}
	}
	phi := degrees * math.Pi / 180
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
	dx, dy := (x1-x2)/2, (y1-y2)/2
	xp := cosPhi*dx + sinPhi*dy
	yp := -sinPhi*dx + cosPhi*dy

	if l := xp*xp/(rx*rx) + yp*yp/(ry*ry); l > 1 {
		s := math.Sqrt(l)
		rx, ry = rx*s, ry*s
	}
	num := rx*rx*ry*ry - rx*rx*yp*yp - ry*ry*xp*xp
	den := rx*rx*yp*yp + ry*ry*xp*xp
	coef := 0.0
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * yp / ry
	cyp := -coef * ry * xp / rx
	cx := cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	theta := math.Atan2((yp-cyp)/ry, (xp-cxp)/rx)
	end := math.Atan2((-yp-cyp)/ry, (-xp-cxp)/rx)
	delta := end - theta
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}
	return arcCubics(cx, cy, rx, ry, phi, theta, delta)
}
