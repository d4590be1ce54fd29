package path

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrPathSyntax reports malformed path data.
var ErrPathSyntax = errors.New("path: invalid path data")

// Parse parses SVG path data ("M10 20L30 40z") into a Path. Both absolute
// and relative commands are accepted; elliptical arcs are approximated
// with cubic segments. An empty string yields an empty path.
func Parse(data string) (Path, error) {
	d := &dataParser{s: data}
	if err := d.run(); err != nil {
		return nil, err
	}
	return d.out, nil
}

type dataParser struct {
	s   string
	i   int
	out Path

	cmd byte // command being repeated

	x, y       float64 // current point
	sx, sy     float64 // subpath start
	ctlX, ctlY float64 // last control point, for S/T reflection
	prev       byte    // previous command, upper-cased
	started    bool
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func (d *dataParser) run() error {
	for {
		d.skipSep()
		if d.i >= len(d.s) {
			return nil
		}
		c := d.s[d.i]
		switch {
		case isCommand(c):
			d.cmd = c
			d.i++
		case d.cmd == 0:
			return fmt.Errorf("%w: expected command, got %q", ErrPathSyntax, c)
		}
		if !d.started && d.cmd != 'M' && d.cmd != 'm' {
			return fmt.Errorf("%w: path must begin with a moveto", ErrPathSyntax)
		}
		if err := d.apply(); err != nil {
			return err
		}
	}
}

func (d *dataParser) apply() error {
	rel := d.cmd >= 'a'
	upper := d.cmd
	if rel {
		upper -= 'a' - 'A'
	}
	switch upper {
	case 'M':
		pt, err := d.floats(2)
		if err != nil {
			return err
		}
		if rel && d.started {
			pt[0] += d.x
			pt[1] += d.y
		}
		d.out.MoveTo(pt[0], pt[1])
		d.x, d.y = pt[0], pt[1]
		d.sx, d.sy = pt[0], pt[1]
		d.started = true
		// Extra coordinate pairs after a moveto are linetos.
		if rel {
			d.cmd = 'l'
		} else {
			d.cmd = 'L'
		}
	case 'L':
		pt, err := d.floats(2)
		if err != nil {
			return err
		}
		if rel {
			pt[0] += d.x
			pt[1] += d.y
		}
		d.out.LineTo(pt[0], pt[1])
		d.x, d.y = pt[0], pt[1]
	case 'H':
		v, err := d.floats(1)
		if err != nil {
			return err
		}
		x := v[0]
		if rel {
			x += d.x
		}
		d.out.LineTo(x, d.y)
		d.x = x
	case 'V':
		v, err := d.floats(1)
		if err != nil {
			return err
		}
		y := v[0]
		if rel {
			y += d.y
		}
		d.out.LineTo(d.x, y)
		d.y = y
	case 'C':
		v, err := d.floats(6)
		if err != nil {
			return err
		}
		if rel {
			for i := 0; i < 6; i += 2 {
				v[i] += d.x
				v[i+1] += d.y
			}
		}
		d.out.CubicTo(v[0], v[1], v[2], v[3], v[4], v[5])
		d.ctlX, d.ctlY = v[2], v[3]
		d.x, d.y = v[4], v[5]
	case 'S':
		v, err := d.floats(4)
		if err != nil {
			return err
		}
		if rel {
			for i := 0; i < 4; i += 2 {
				v[i] += d.x
				v[i+1] += d.y
			}
		}
		c1x, c1y := d.x, d.y
		if d.prev == 'C' || d.prev == 'S' {
			c1x, c1y = 2*d.x-d.ctlX, 2*d.y-d.ctlY
		}
		d.out.CubicTo(c1x, c1y, v[0], v[1], v[2], v[3])
		d.ctlX, d.ctlY = v[0], v[1]
		d.x, d.y = v[2], v[3]
	case 'Q':
		v, err := d.floats(4)
		if err != nil {
			return err
		}
		if rel {
			for i := 0; i < 4; i += 2 {
				v[i] += d.x
				v[i+1] += d.y
			}
		}
		d.out.QuadTo(v[0], v[1], v[2], v[3])
		d.ctlX, d.ctlY = v[0], v[1]
		d.x, d.y = v[2], v[3]
	case 'T':
		v, err := d.floats(2)
		if err != nil {
			return err
		}
		if rel {
			v[0] += d.x
			v[1] += d.y
		}
		cx, cy := d.x, d.y
		if d.prev == 'Q' || d.prev == 'T' {
			cx, cy = 2*d.x-d.ctlX, 2*d.y-d.ctlY
		}
		d.out.QuadTo(cx, cy, v[0], v[1])
		d.ctlX, d.ctlY = cx, cy
		d.x, d.y = v[0], v[1]
	case 'A':
		v, err := d.floats(7)
		if err != nil {
			return err
		}
		if rel {
			v[5] += d.x
			v[6] += d.y
		}
		d.out.arcTo(d.x, d.y, v[0], v[1], v[2], v[3] != 0, v[4] != 0, v[5], v[6])
		d.x, d.y = v[5], v[6]
	case 'Z':
		d.out.Close()
		d.x, d.y = d.sx, d.sy
	default:
		return fmt.Errorf("%w: unsupported command %q", ErrPathSyntax, d.cmd)
	}
	d.prev = upper
	return nil
}

func (d *dataParser) skipSep() {
	for d.i < len(d.s) {
		switch d.s[d.i] {
		case ' ', '\t', '\n', '\r', ',':
			d.i++
		default:
			return
		}
	}
}

// floats reads exactly n numbers, honoring the compact forms path data
// allows: "10-5" is two numbers, as is "1.5.5".
func (d *dataParser) floats(n int) ([]float64, error) {
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		d.skipSep()
		start := d.i
		i := d.i
		if i < len(d.s) && (d.s[i] == '+' || d.s[i] == '-') {
			i++
		}
		seenDot := false
		seenExp := false
	scan:
		for i < len(d.s) {
			c := d.s[i]
			switch {
			case c >= '0' && c <= '9':
				i++
			case c == '.' && !seenDot && !seenExp:
				seenDot = true
				i++
			case (c == 'e' || c == 'E') && !seenExp && i > start:
				seenExp = true
				i++
				if i < len(d.s) && (d.s[i] == '+' || d.s[i] == '-') {
					i++
				}
			default:
				break scan
			}
		}
		if i == start {
			return nil, fmt.Errorf("%w: expected number for %q at offset %d",
				ErrPathSyntax, d.cmd, d.i)
		}
		v, err := strconv.ParseFloat(d.s[start:i], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPathSyntax, err)
		}
		out[k] = v
		d.i = i
	}
	return out, nil
}
