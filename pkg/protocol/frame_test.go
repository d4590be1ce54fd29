package protocol

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		frame   *Frame
	}{
		{"empty payload", NewFrame(FrameControl, nil)},
		{"event", NewFrame(FrameEvent, []byte{0x01, 0x02, 0x03})},
		{"flagged", &Frame{Type: FramePatches, Flags: FlagSequenced | FlagFinal, Payload: []byte("abc")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := tc.frame.Encode()
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := DecodeFrame(data)
			if err != nil {
				t.Fatalf("DecodeFrame: %v", err)
			}
			if got.Type != tc.frame.Type || got.Flags != tc.frame.Flags {
				t.Errorf("header = (%v, %v), want (%v, %v)", got.Type, got.Flags, tc.frame.Type, tc.frame.Flags)
			}
			if !bytes.Equal(got.Payload, tc.frame.Payload) {
				t.Errorf("payload = %x, want %x", got.Payload, tc.frame.Payload)
			}
		})
	}
}

func TestEncodeTooLarge(t *testing.T) {
	f := NewFrame(FrameHandshake, make([]byte, MaxPayloadSize+1))
	if _, err := f.Encode(); !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("Encode = %v, want ErrFrameTooLarge", err)
	}

	f.Payload = f.Payload[:MaxPayloadSize]
	data, err := f.Encode()
	if err != nil {
		t.Fatalf("Encode at limit: %v", err)
	}
	if got, err := DecodeFrame(data); err != nil || len(got.Payload) != MaxPayloadSize {
		t.Errorf("DecodeFrame at limit = %d bytes, %v", len(got.Payload), err)
	}
}

func TestDecodeFrameTruncated(t *testing.T) {
	full, err := NewFrame(FrameEvent, []byte{1, 2, 3, 4}).Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for cut := 0; cut < len(full); cut++ {
		if _, err := DecodeFrame(full[:cut]); err == nil {
			t.Errorf("DecodeFrame of %d/%d bytes succeeded, want error", cut, len(full))
		}
	}
}

func TestDecodeFrameCopiesPayload(t *testing.T) {
	data, err := NewFrame(FrameEvent, []byte{7}).Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	f, err := DecodeFrame(data)
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	data[FrameHeaderSize] = 9
	if f.Payload[0] != 7 {
		t.Error("decoded payload aliases the input buffer")
	}
}

func TestReadWriteFrame(t *testing.T) {
	var buf bytes.Buffer
	want := NewFrame(FrameAck, []byte{0x2a})
	if err := WriteFrame(&buf, want); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	got, err := ReadFrame(&buf)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if got.Type != want.Type || !bytes.Equal(got.Payload, want.Payload) {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}

	if _, err := ReadFrame(&buf); !errors.Is(err, io.EOF) {
		t.Errorf("ReadFrame of drained buffer = %v, want io.EOF", err)
	}
}

func TestWriteFrameTooLarge(t *testing.T) {
	f := NewFrame(FramePatches, make([]byte, MaxPayloadSize+1))
	if err := WriteFrame(io.Discard, f); !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("WriteFrame = %v, want ErrFrameTooLarge", err)
	}
}

func TestFrameTypeString(t *testing.T) {
	if got := FrameEvent.String(); got != "Event" {
		t.Errorf("FrameEvent.String() = %q", got)
	}
	if got := FrameType(0x7f).String(); got != "Unknown" {
		t.Errorf("unknown type String() = %q", got)
	}
}
