package protocol

import "testing"

func FuzzDecodeEvent(f *testing.F) {
	f.Add(EncodeEvent(&Event{Seq: 1, Kind: EventClick, Token: "a/onclick",
		Pointer: &PointerData{X: 1, Y: 2, ClickCount: 1}}))
	f.Add(EncodeEvent(&Event{Seq: 2, Kind: EventScroll, Token: "b/onscroll",
		Scroll: &ScrollData{Delta: -3}}))
	f.Add([]byte{})
	f.Add([]byte{0x00, 0x7f})

	f.Fuzz(func(t *testing.T, data []byte) {
		ev, err := DecodeEvent(data)
		if err != nil {
			return
		}
		// A decoded event must re-encode and decode to the same header.
		back, err := DecodeEvent(EncodeEvent(ev))
		if err != nil {
			t.Fatalf("re-decode failed: %v", err)
		}
		if back.Seq != ev.Seq || back.Kind != ev.Kind || back.Token != ev.Token {
			t.Fatalf("round trip changed header: %+v != %+v", back, ev)
		}
	})
}

func FuzzDecodePatches(f *testing.F) {
	f.Add(EncodePatches(&PatchFrame{Seq: 1, Patches: []Patch{
		NewSetAttrPatch(NodePath{0}, "fill", "red"),
		NewInsertNodePatch(NodePath{0, 1}, 2, "<circle r=\"5\"/>"),
	}}))
	f.Add([]byte{})
	f.Add([]byte{0x01, 0x01, 0xff})

	f.Fuzz(func(t *testing.T, data []byte) {
		pf, err := DecodePatches(data)
		if err != nil {
			return
		}
		if _, err := DecodePatches(EncodePatches(pf)); err != nil {
			t.Fatalf("re-decode failed: %v", err)
		}
	})
}

func FuzzDecodeFrame(f *testing.F) {
	seed, _ := NewFrame(FrameEvent, []byte{1, 2, 3}).Encode()
	f.Add(seed)
	f.Add([]byte{})
	f.Add([]byte{0x05, 0x00, 0xff, 0xff})

	f.Fuzz(func(t *testing.T, data []byte) {
		fr, err := DecodeFrame(data)
		if err != nil {
			return
		}
		wire, err := fr.Encode()
		if err != nil {
			t.Fatalf("re-encode failed: %v", err)
		}
		if _, err := DecodeFrame(wire); err != nil {
			t.Fatalf("re-decode failed: %v", err)
		}
	})
}
