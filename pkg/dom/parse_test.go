package dom

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vexel-dev/vexel/pkg/markup"
)

func quietOpts(mode markup.ErrorMode) ReadOptions {
	return ReadOptions{
		Mode:   mode,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// ghost is registered without a factory, so parsing it cannot construct
// a typed node.
func init() { RegisterType(NewTypeInfo("ghost", nil, nil, nil)) }

func TestParseRoundTrip(t *testing.T) {
	in := rootOpen + ` width="200" height="100" viewBox="0 0 100 50" fill="#ff0000">` +
		`<grp transform="translate(10, 20)">` +
		`<box id="b1" width="40"/>` +
		`</grp>` +
		`<box fill="#008000">label</box>` +
		`</svg>`
	doc, err := ParseDocument(in, quietOpts(markup.StrictErrorMode))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if got := MarkupString(doc); got != in {
		t.Errorf("round trip:\ngot  %s\nwant %s", got, in)
	}

	got, ok := doc.ElementByID("b1")
	if !ok {
		t.Fatal("parsed identifier not registered")
	}
	if got.Base().Tag() != "box" {
		t.Errorf("b1 tag = %q, want box", got.Base().Tag())
	}
	if w := got.Base().NumberAttr("width", -1); w != 40 {
		t.Errorf("b1 width = %v, want 40", w)
	}
	if w, h := doc.Size(); w != 200 || h != 100 {
		t.Errorf("Size = %v, %v; want 200, 100", w, h)
	}
}

func TestParseRootMustBeSVG(t *testing.T) {
	_, err := ParseDocument(`<box/>`, quietOpts(markup.StrictErrorMode))
	if err == nil || !strings.Contains(err.Error(), "want <svg>") {
		t.Errorf("err = %v, want root element complaint", err)
	}
}

func TestParseUnknownTag(t *testing.T) {
	in := rootOpen + ` fill="none"><blob k="v"><box/></blob></svg>`

	_, err := ParseDocument(in, quietOpts(markup.StrictErrorMode))
	if err == nil || !strings.Contains(err.Error(), "unrecognized element") {
		t.Fatalf("strict err = %v, want unrecognized element", err)
	}

	doc, err := ParseDocument(in, quietOpts(markup.WarnErrorMode))
	if err != nil {
		t.Fatalf("warn mode: %v", err)
	}
	kids := doc.Children()
	if len(kids) != 1 || kids[0].Base().Tag() != "blob" {
		t.Fatalf("children = %v, want one blob", kids)
	}
	if _, ok := kids[0].(*Unknown); !ok {
		t.Errorf("blob node is %T, want *Unknown", kids[0])
	}
	if v, _ := kids[0].Base().Custom("k"); v != "v" {
		t.Errorf("blob custom k = %q, want v", v)
	}
	// Children inside the unknown element are kept too.
	if inner := kids[0].Base().Children(); len(inner) != 1 || inner[0].Base().Tag() != "box" {
		t.Errorf("blob children = %v, want one box", inner)
	}
	// And the whole thing serializes back out.
	if got := MarkupString(doc); got != in {
		t.Errorf("round trip:\ngot  %s\nwant %s", got, in)
	}
}

func TestParseUnconstructibleTag(t *testing.T) {
	in := rootOpen + ` fill="none"><ghost/></svg>`

	_, err := ParseDocument(in, quietOpts(markup.StrictErrorMode))
	if !errors.Is(err, ErrUnsupportedElement) {
		t.Fatalf("strict err = %v, want ErrUnsupportedElement", err)
	}

	doc, err := ParseDocument(in, quietOpts(markup.IgnoreErrorMode))
	if err != nil {
		t.Fatalf("ignore mode: %v", err)
	}
	kids := doc.Children()
	if len(kids) != 1 || kids[0].Base().Tag() != "ghost" {
		t.Fatalf("children = %v, want one ghost pass-through", kids)
	}
}

func TestParseDropsEventAttrs(t *testing.T) {
	in := rootOpen + ` fill="none"><box id="b1" onclick="b1/onclick"/></svg>`
	doc, err := ParseDocument(in, quietOpts(markup.StrictErrorMode))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	b, ok := doc.ElementByID("b1")
	if !ok {
		t.Fatal("b1 not registered")
	}
	if b.Base().Observed(EventClick) {
		t.Error("parsed element observes click: binding attribute not dropped")
	}
	if _, ok := b.Base().Custom("onclick"); ok {
		t.Error("binding attribute kept as custom")
	}
	want := rootOpen + ` fill="none"><box id="b1"/></svg>`
	if got := MarkupString(doc); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestParseDuplicateID(t *testing.T) {
	in := rootOpen + ` fill="none"><box id="dup"/><box id="dup" width="9"/></svg>`

	_, err := ParseDocument(in, quietOpts(markup.StrictErrorMode))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("strict err = %v, want ErrDuplicateID", err)
	}

	// Tolerant modes keep the element and drop its identifier.
	doc, err := ParseDocument(in, quietOpts(markup.WarnErrorMode))
	if err != nil {
		t.Fatalf("warn mode: %v", err)
	}
	kids := doc.Children()
	if len(kids) != 2 {
		t.Fatalf("children = %d, want 2", len(kids))
	}
	if got := kids[1].Base().ID(); got != "" {
		t.Errorf("second element id = %q, want empty", got)
	}
	if w := kids[1].Base().NumberAttr("width", -1); w != 9 {
		t.Errorf("second element width = %v, want 9", w)
	}
	holder, _ := doc.ElementByID("dup")
	if holder != kids[0] {
		t.Errorf("dup resolves to %v, want the first element", holder)
	}
}

func TestParseBadAttrValue(t *testing.T) {
	in := rootOpen + ` fill="none"><box width="wide"/></svg>`

	_, err := ParseDocument(in, quietOpts(markup.StrictErrorMode))
	if err == nil {
		t.Fatal("strict mode accepted an unparseable attribute")
	}

	doc, err := ParseDocument(in, quietOpts(markup.WarnErrorMode))
	if err != nil {
		t.Fatalf("warn mode: %v", err)
	}
	b := doc.Children()[0].Base()
	if b.HasAttr("width") {
		t.Error("unparseable value stored as typed attribute")
	}
	if v, _ := b.Custom("width"); v != "wide" {
		t.Errorf("custom width = %q, want the verbatim value", v)
	}
}

func TestParseContentTrimmed(t *testing.T) {
	in := rootOpen + ` fill="none"><box>
		spaced out
	</box></svg>`
	doc, err := ParseDocument(in, quietOpts(markup.StrictErrorMode))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if got := doc.Children()[0].Base().Content(); got != "spaced out" {
		t.Errorf("content = %q, want %q", got, "spaced out")
	}
}

func TestParseInvalidIDDropped(t *testing.T) {
	in := rootOpen + ` fill="none"><box id="not ok"/></svg>`
	doc, err := ParseDocument(in, quietOpts(markup.IgnoreErrorMode))
	if err != nil {
		t.Fatalf("ignore mode: %v", err)
	}
	if got := doc.Children()[0].Base().ID(); got != "" {
		t.Errorf("id = %q, want empty after invalid value", got)
	}
	if _, err := ParseDocument(in, quietOpts(markup.StrictErrorMode)); !errors.Is(err, ErrInvalidID) {
		t.Errorf("strict err = %v, want ErrInvalidID", err)
	}
}
