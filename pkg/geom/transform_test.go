package geom

import (
	"math"
	"testing"
)

func TestParseTransformList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want TransformList
	}{
		{
			"empty", "", nil,
		},
		{
			"translate one arg",
			"translate(10)",
			TransformList{{Kind: TransformTranslate, Args: []float64{10}}},
		},
		{
			"comma separated args",
			"rotate(30, 5, 5)",
			TransformList{{Kind: TransformRotate, Args: []float64{30, 5, 5}}},
		},
		{
			"multiple operations",
			"translate(10 20) scale(2)",
			TransformList{
				{Kind: TransformTranslate, Args: []float64{10, 20}},
				{Kind: TransformScale, Args: []float64{2}},
			},
		},
		{
			"matrix",
			"matrix(1 0 0 1 -5 -5)",
			TransformList{{Kind: TransformMatrix, Args: []float64{1, 0, 0, 1, -5, -5}}},
		},
		{
			"comma between operations",
			"skewX(15), skewY(15)",
			TransformList{
				{Kind: TransformSkewX, Args: []float64{15}},
				{Kind: TransformSkewY, Args: []float64{15}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTransformList(tt.in)
			if err != nil {
				t.Fatalf("ParseTransformList(%q) error: %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTransformList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTransformListErrors(t *testing.T) {
	bad := []string{
		"spin(45)",
		"rotate(1 2)",
		"matrix(1 2 3)",
		"translate 10",
		"scale(x)",
	}
	for _, in := range bad {
		if _, err := ParseTransformList(in); err == nil {
			t.Errorf("ParseTransformList(%q) = nil error, want error", in)
		}
	}
}

func TestTransformListMatrix(t *testing.T) {
	list, err := ParseTransformList("translate(5 0) scale(2)")
	if err != nil {
		t.Fatal(err)
	}
	// The first listed operation applies first to the point.
	gx, gy := list.Matrix().Apply(1, 1)
	if gx != 7 || gy != 2 {
		t.Errorf("Apply(1,1) = (%v, %v), want (7, 2)", gx, gy)
	}
}

func TestRotateAboutPoint(t *testing.T) {
	list := TransformList{{Kind: TransformRotate, Args: []float64{180, 5, 5}}}
	gx, gy := list.Matrix().Apply(0, 0)
	if math.Abs(gx-10) > 1e-9 || math.Abs(gy-10) > 1e-9 {
		t.Errorf("rotate(180,5,5) Apply(0,0) = (%v, %v), want (10, 10)", gx, gy)
	}
}

func TestTransformListString(t *testing.T) {
	list := TransformList{
		{Kind: TransformTranslate, Args: []float64{10, 20}},
		{Kind: TransformRotate, Args: []float64{30}},
	}
	want := "translate(10, 20) rotate(30)"
	if got := list.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTransformListClone(t *testing.T) {
	orig := TransformList{{Kind: TransformTranslate, Args: []float64{1, 2}}}
	cp := orig.Clone()
	cp[0].Args[0] = 99
	if orig[0].Args[0] != 1 {
		t.Error("Clone shares argument storage with the original")
	}
}

func TestParseViewBox(t *testing.T) {
	vb, err := ParseViewBox("0 0 100 50")
	if err != nil {
		t.Fatal(err)
	}
	want := ViewBox{0, 0, 100, 50}
	if vb != want {
		t.Errorf("ParseViewBox = %+v, want %+v", vb, want)
	}
	if got := vb.String(); got != "0 0 100 50" {
		t.Errorf("String() = %q, want %q", got, "0 0 100 50")
	}
	if _, err := ParseViewBox("1 2 3"); err == nil {
		t.Error("ParseViewBox with 3 numbers = nil error, want error")
	}
}

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 5, 5}, Rect{0, 0, 25, 25}},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 2, 3, 3}, Rect{0, 0, 10, 10}},
		{"empty left", Rect{}, Rect{1, 1, 2, 2}, Rect{1, 1, 2, 2}},
		{"empty right", Rect{1, 1, 2, 2}, Rect{}, Rect{1, 1, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union = %+v, want %+v", got, tt.want)
			}
		})
	}
}
