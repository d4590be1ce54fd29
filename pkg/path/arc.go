package path

import "math"

// maxArcSpan is the maximum radians a single cubic segment may cover when
// approximating an elliptical arc.
const maxArcSpan = math.Pi / 8

// arcTo appends cubic segments approximating an elliptical arc from
// (x0, y0) to (x1, y1) with radii rx, ry and x-axis rotation rotDeg in
// degrees. Uses the cubic approximation of L. Maisonobe, "Drawing an
// elliptical arc using polylines, quadratic or cubic Bezier curves".
func (p *Path) arcTo(x0, y0, rx, ry, rotDeg float64, large, sweep bool, x1, y1 float64) {
	if rx == 0 || ry == 0 {
		p.LineTo(x1, y1)
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	rot := rotDeg * math.Pi / 180
	cx, cy := arcCenter(&rx, &ry, rot, x0, y0, x1, y1, sweep, !large)

	startAngle := math.Atan2(y0-cy, x0-cx) - rot
	endAngle := math.Atan2(y1-cy, x1-cx) - rot

	// Reparameterize the angles for the unstretched ellipse.
	etaStart := math.Atan2(math.Sin(startAngle)/ry, math.Cos(startAngle)/rx)
	etaEnd := math.Atan2(math.Sin(endAngle)/ry, math.Cos(endAngle)/rx)
	delta := etaEnd - etaStart
	if spansMajor := math.Abs(delta) > math.Pi; spansMajor != large {
		if delta < 0 {
			delta += 2 * math.Pi
		} else {
			delta -= 2 * math.Pi
		}
	}
	if delta < 0 && sweep {
		delta += 2 * math.Pi
	} else if delta >= 0 && !sweep {
		delta -= 2 * math.Pi
	}

	segs := int(math.Abs(delta)/maxArcSpan) + 1
	dEta := delta / float64(segs)
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3

	sinRot, cosRot := math.Sin(rot), math.Cos(rot)
	lx, ly := x0, y0
	ldx, ldy := ellipseTangent(rx, ry, sinRot, cosRot, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		var px, py float64
		if i == segs {
			// Land exactly on the requested end point.
			px, py = x1, y1
		} else {
			px, py = ellipsePoint(rx, ry, sinRot, cosRot, eta, cx, cy)
		}
		dx, dy := ellipseTangent(rx, ry, sinRot, cosRot, eta)
		p.CubicTo(lx+alpha*ldx, ly+alpha*ldy, px-alpha*dx, py-alpha*dy, px, py)
		lx, ly, ldx, ldy = px, py, dx, dy
	}
}

// ellipseTangent gives the derivative of the parameterized ellipse at eta.
func ellipseTangent(rx, ry, sinRot, cosRot, eta float64) (dx, dy float64) {
	a := -rx * math.Sin(eta)
	b := ry * math.Cos(eta)
	dx = a*cosRot - b*sinRot
	dy = a*sinRot + b*cosRot
	return
}

// ellipsePoint gives the point of the parameterized ellipse at eta.
func ellipsePoint(rx, ry, sinRot, cosRot, eta, cx, cy float64) (px, py float64) {
	a := rx * math.Cos(eta)
	b := ry * math.Sin(eta)
	px = cx + a*cosRot - b*sinRot
	py = cy + a*sinRot + b*cosRot
	return
}

// arcCenter locates the ellipse center for an endpoint-parameterized arc.
// When no ellipse with the given radii passes through both points the radii
// are scaled up minimally, preserving their ratio; rx and ry are pointers
// so the caller sees the adjustment. The problem is reduced to finding the
// center of a circle through the origin and one other point, then the
// coordinate changes are undone.
func arcCenter(rx, ry *float64, rot, startX, startY, endX, endY float64, sweep, smallArc bool) (cx, cy float64) {
	cos, sin := math.Cos(rot), math.Sin(rot)

	// Translate the start point to the origin, align the ellipse x-axis
	// with the coordinate x-axis, then scale x so the ellipse becomes a
	// circle of radius ry.
	nx, ny := endX-startX, endY-startY
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	nx *= *ry / *rx

	midX, midY := nx/2, ny/2
	midLenSq := midX*midX + midY*midY

	var hr float64
	if *ry**ry < midLenSq {
		// The requested ellipse cannot reach both endpoints; grow it.
		nry := math.Sqrt(midLenSq)
		if *rx == *ry {
			*rx = nry
		} else {
			*rx = *rx * nry / *ry
		}
		*ry = nry
	} else {
		hr = math.Sqrt(*ry**ry-midLenSq) / math.Sqrt(midLenSq)
	}
	if (sweep && smallArc) || (!sweep && !smallArc) {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	cx *= *rx / *ry
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}
