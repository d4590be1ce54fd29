package protocol

import (
	"errors"
	"io"
)

const (
	// FrameHeaderSize is the fixed size of the frame header in bytes.
	FrameHeaderSize = 4

	// MaxPayloadSize is the largest payload the two-byte length field
	// can describe.
	MaxPayloadSize = 65535
)

// FrameType identifies what a frame's payload carries.
type FrameType uint8

const (
	FrameHandshake FrameType = 0x00 // connection setup
	FrameEvent     FrameType = 0x01 // viewer → server input events
	FramePatches   FrameType = 0x02 // server → viewer document patches
	FrameControl   FrameType = 0x03 // ping, resync, close
	FrameAck       FrameType = 0x04 // patch acknowledgment
	FrameError     FrameType = 0x05 // error message
)

func (ft FrameType) String() string {
	switch ft {
	case FrameHandshake:
		return "Handshake"
	case FrameEvent:
		return "Event"
	case FramePatches:
		return "Patches"
	case FrameControl:
		return "Control"
	case FrameAck:
		return "Ack"
	case FrameError:
		return "Error"
	default:
		return "Unknown"
	}
}

// FrameFlags carry per-frame processing hints.
type FrameFlags uint8

const (
	FlagSequenced FrameFlags = 0x01 // payload starts with a sequence number
	FlagFinal     FrameFlags = 0x02 // last frame of a batch
)

// Has reports whether flag is set.
func (ff FrameFlags) Has(flag FrameFlags) bool { return ff&flag != 0 }

var (
	ErrFrameTooLarge = errors.New("protocol: frame payload too large")
)

// Frame is one wire message: a typed header plus payload.
type Frame struct {
	Type    FrameType
	Flags   FrameFlags
	Payload []byte
}

// NewFrame builds a frame with no flags.
func NewFrame(ft FrameType, payload []byte) *Frame {
	return &Frame{Type: ft, Payload: payload}
}

// Encode returns the frame's wire bytes, header included. Payloads
// larger than MaxPayloadSize are rejected: the two-byte length field
// would wrap and the receiver would read a corrupt frame.
func (f *Frame) Encode() ([]byte, error) {
	length := len(f.Payload)
	if length > MaxPayloadSize {
		return nil, ErrFrameTooLarge
	}
	buf := make([]byte, FrameHeaderSize+length)
	buf[0] = byte(f.Type)
	buf[1] = byte(f.Flags)
	buf[2] = byte(length >> 8)
	buf[3] = byte(length)
	copy(buf[FrameHeaderSize:], f.Payload)
	return buf, nil
}

// DecodeFrame parses a frame from data. The payload is copied, so data
// may be reused afterwards.
func DecodeFrame(data []byte) (*Frame, error) {
	if len(data) < FrameHeaderSize {
		return nil, io.ErrUnexpectedEOF
	}
	ft := FrameType(data[0])
	flags := FrameFlags(data[1])
	length := int(data[2])<<8 | int(data[3])
	if len(data) < FrameHeaderSize+length {
		return nil, io.ErrUnexpectedEOF
	}
	payload := make([]byte, length)
	copy(payload, data[FrameHeaderSize:FrameHeaderSize+length])
	return &Frame{Type: ft, Flags: flags, Payload: payload}, nil
}

// ReadFrame reads one complete frame from r.
func ReadFrame(r io.Reader) (*Frame, error) {
	header := make([]byte, FrameHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}
	length := int(header[2])<<8 | int(header[3])
	payload := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, err
		}
	}
	return &Frame{Type: FrameType(header[0]), Flags: FrameFlags(header[1]), Payload: payload}, nil
}

// WriteFrame writes f to w, rejecting payloads the length field cannot
// describe.
func WriteFrame(w io.Writer, f *Frame) error {
	data, err := f.Encode()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
