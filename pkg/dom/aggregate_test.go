package dom

import (
	"testing"

	"github.com/vexel-dev/vexel/pkg/geom"
)

func mustSetTransform(t *testing.T, n Node, src string) {
	t.Helper()
	tl, err := geom.ParseTransformList(src)
	if err != nil {
		t.Fatalf("parse transform %q: %v", src, err)
	}
	if err := n.Base().SetTransform(tl); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
}

func TestAggregatePathUnionsBounds(t *testing.T) {
	g := newGrp()
	a := sizedBox(t, 10, 10)
	b := sizedBox(t, 10, 10)
	mustSetTransform(t, b, "translate(20 0)")
	if err := g.AppendChild(a); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}
	if err := g.AppendChild(b); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}

	got := AggregatePath(g).Bounds()
	want := geom.Rect{X: 0, Y: 0, W: 30, H: 10}
	if got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}

func TestAggregatePathRecursesGroups(t *testing.T) {
	outer := newGrp()
	inner := newGrp()
	mustSetTransform(t, inner, "scale(2)")
	leaf := sizedBox(t, 5, 5)
	if err := outer.AppendChild(inner); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}
	if err := inner.AppendChild(leaf); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}

	got := AggregatePath(outer).Bounds()
	want := geom.Rect{X: 0, Y: 0, W: 10, H: 10}
	if got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}

func TestAggregatePathIgnoresOwnTransform(t *testing.T) {
	// The aggregate is expressed in the node's local coordinates; the
	// node's own transform belongs to its parent's view of it.
	g := newGrp()
	mustSetTransform(t, g, "translate(100 100)")
	if err := g.AppendChild(sizedBox(t, 10, 10)); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}
	got := AggregatePath(g).Bounds()
	want := geom.Rect{X: 0, Y: 0, W: 10, H: 10}
	if got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}

func TestAggregatePathTranslateShiftsBounds(t *testing.T) {
	g := newGrp()
	b := sizedBox(t, 10, 10)
	if err := g.AppendChild(b); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}
	before := AggregatePath(g).Bounds()

	mustSetTransform(t, b, "translate(7 -3)")
	after := AggregatePath(g).Bounds()

	want := geom.Rect{X: before.X + 7, Y: before.Y - 3, W: before.W, H: before.H}
	if after != want {
		t.Errorf("bounds = %+v, want %+v", after, want)
	}
}

func TestAggregatePathSkipsEmpty(t *testing.T) {
	g := newGrp()
	if err := g.AppendChild(newGrp()); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}
	if err := g.AppendChild(NewFragment()); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}
	if got := AggregatePath(g); len(got) != 0 {
		t.Errorf("aggregate of empty groups = %v, want empty", got)
	}
}
