package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrTransformSyntax reports a malformed transform attribute.
var ErrTransformSyntax = errors.New("geom: invalid transform syntax")

// ParseFloats parses a whitespace or comma separated list of numbers, the
// form used by transform arguments, viewBox and point lists.
func ParseFloats(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("geom: bad number %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// argCount gives the accepted argument counts per transform kind.
var argCount = map[TransformKind][]int{
	TransformMatrix:    {6},
	TransformTranslate: {1, 2},
	TransformScale:     {1, 2},
	TransformRotate:    {1, 3},
	TransformSkewX:     {1},
	TransformSkewY:     {1},
}

func kindForName(name string) (TransformKind, bool) {
	switch name {
	case "matrix":
		return TransformMatrix, true
	case "translate":
		return TransformTranslate, true
	case "scale":
		return TransformScale, true
	case "rotate":
		return TransformRotate, true
	case "skewX":
		return TransformSkewX, true
	case "skewY":
		return TransformSkewY, true
	}
	return 0, false
}

// ParseTransformList parses a transform attribute value such as
// "translate(10 20) rotate(30, 5, 5)". An empty or all-space value yields
// an empty list.
func ParseTransformList(s string) (TransformList, error) {
	var list TransformList
	for _, chunk := range strings.Split(s, ")") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		name, args, ok := strings.Cut(chunk, "(")
		if !ok {
			return nil, fmt.Errorf("%w: missing '(' in %q", ErrTransformSyntax, chunk)
		}
		name = strings.TrimSpace(name)
		// A leading comma between operations is tolerated.
		name = strings.TrimPrefix(name, ",")
		name = strings.TrimSpace(name)
		kind, ok := kindForName(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown operation %q", ErrTransformSyntax, name)
		}
		vals, err := ParseFloats(args)
		if err != nil {
			return nil, err
		}
		valid := false
		for _, n := range argCount[kind] {
			if len(vals) == n {
				valid = true
				break
			}
		}
		if !valid {
			return nil, fmt.Errorf("%w: %s takes %v arguments, got %d",
				ErrTransformSyntax, name, argCount[kind], len(vals))
		}
		list = append(list, Transform{Kind: kind, Args: vals})
	}
	return list, nil
}
