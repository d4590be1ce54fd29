package path

// Higher level shapes reduced to their path equivalent.

// kappa scales a radius to place the control points of a cubic segment
// approximating a quarter circle.
const kappa = 0.5522847498307936

// AddRect appends a closed rectangle.
func (p *Path) AddRect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// AddRoundRect appends a closed rectangle with corners rounded by rx and
// ry. Radii are clamped to half the rectangle size; non-positive radii
// fall back to a plain rectangle.
func (p *Path) AddRoundRect(x, y, w, h, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		p.AddRect(x, y, w, h)
		return
	}
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}
	kx, ky := rx*kappa, ry*kappa
	x1, y1 := x+w, y+h

	p.MoveTo(x+rx, y)
	p.LineTo(x1-rx, y)
	p.CubicTo(x1-rx+kx, y, x1, y+ry-ky, x1, y+ry)
	p.LineTo(x1, y1-ry)
	p.CubicTo(x1, y1-ry+ky, x1-rx+kx, y1, x1-rx, y1)
	p.LineTo(x+rx, y1)
	p.CubicTo(x+rx-kx, y1, x, y1-ry+ky, x, y1-ry)
	p.LineTo(x, y+ry)
	p.CubicTo(x, y+ry-ky, x+rx-kx, y, x+rx, y)
	p.Close()
}

// AddEllipse appends a closed ellipse centered at (cx, cy) with radii rx
// and ry, built from four cubic segments.
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	kx, ky := rx*kappa, ry*kappa
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
}

// AddCircle appends a closed circle of radius r centered at (cx, cy).
func (p *Path) AddCircle(cx, cy, r float64) {
	p.AddEllipse(cx, cy, r, r)
}

// AddPolyline appends line segments through the given x,y pairs, closing
// the subpath when closed is true. Fewer than two points add nothing; a
// trailing unpaired number is ignored.
func (p *Path) AddPolyline(pts []float64, closed bool) {
	if len(pts) < 4 {
		return
	}
	p.MoveTo(pts[0], pts[1])
	for i := 2; i+1 < len(pts); i += 2 {
		p.LineTo(pts[i], pts[i+1])
	}
	if closed {
		p.Close()
	}
}
