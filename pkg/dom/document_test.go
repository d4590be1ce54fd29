package dom

import (
	"testing"

	"github.com/vexel-dev/vexel/pkg/geom"
)

func TestDocumentSizeFallsBackToViewBox(t *testing.T) {
	doc := NewDocument()
	if err := doc.SetAttr("viewBox", ViewBox{MinX: 0, MinY: 0, W: 320, H: 240}); err != nil {
		t.Fatalf("SetAttr: %v", err)
	}
	if w, h := doc.Size(); w != 320 || h != 240 {
		t.Errorf("Size = %v, %v; want viewBox extent 320, 240", w, h)
	}
	if err := doc.SetSize(640, 480); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	if w, h := doc.Size(); w != 640 || h != 480 {
		t.Errorf("Size = %v, %v; want explicit 640, 480", w, h)
	}
}

func TestViewportTransform(t *testing.T) {
	doc := NewDocument()
	if err := doc.SetAttr("viewBox", ViewBox{MinX: 10, MinY: 20, W: 100, H: 50}); err != nil {
		t.Fatalf("SetAttr: %v", err)
	}
	if err := doc.SetSize(200, 100); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	m := doc.ViewportTransform()

	if x, y := m.Apply(10, 20); x != 0 || y != 0 {
		t.Errorf("viewBox origin maps to (%v, %v), want (0, 0)", x, y)
	}
	if x, y := m.Apply(110, 70); x != 200 || y != 100 {
		t.Errorf("viewBox corner maps to (%v, %v), want (200, 100)", x, y)
	}
}

func TestViewportTransformDefaultsIdentity(t *testing.T) {
	doc := NewDocument()
	if got := doc.ViewportTransform(); got != geom.Identity {
		t.Errorf("no viewBox: transform = %+v, want identity", got)
	}
	if err := doc.SetAttr("viewBox", ViewBox{W: 100, H: 50}); err != nil {
		t.Fatalf("SetAttr: %v", err)
	}
	// viewBox alone sizes the viewport, so the mapping stays 1:1.
	if got := doc.ViewportTransform(); got != geom.Identity {
		t.Errorf("viewBox-sized viewport: transform = %+v, want identity", got)
	}
}
