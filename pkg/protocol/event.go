package protocol

import "errors"

// EventKind identifies an input event on the wire.
type EventKind uint8

const (
	EventClick     EventKind = 0x01
	EventMouseDown EventKind = 0x02
	EventMouseUp   EventKind = 0x03
	EventMouseMove EventKind = 0x04
	EventMouseOver EventKind = 0x05
	EventMouseOut  EventKind = 0x06
	EventScroll    EventKind = 0x10
)

func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "Click"
	case EventMouseDown:
		return "MouseDown"
	case EventMouseUp:
		return "MouseUp"
	case EventMouseMove:
		return "MouseMove"
	case EventMouseOver:
		return "MouseOver"
	case EventMouseOut:
		return "MouseOut"
	case EventScroll:
		return "Scroll"
	default:
		return "Unknown"
	}
}

// IsPointer reports whether the kind carries a pointer payload.
func (k EventKind) IsPointer() bool {
	return k >= EventClick && k <= EventMouseOut
}

// Modifiers is the bitmask of modifier keys held during an event.
type Modifiers uint8

const (
	ModCtrl  Modifiers = 0x01
	ModShift Modifiers = 0x02
	ModAlt   Modifiers = 0x04
)

// Has reports whether mod is set.
func (m Modifiers) Has(mod Modifiers) bool { return m&mod != 0 }

// PointerData is the payload of pointer event kinds.
type PointerData struct {
	X, Y       float64
	Button     uint8
	ClickCount uint8
	Modifiers  Modifiers
}

// ScrollData is the payload of scroll events.
type ScrollData struct {
	Delta     float64
	Modifiers Modifiers
}

// Event is one viewer input addressed at a document node by its binding
// token, "{identifier}/{event-attribute}". Exactly one of Pointer and
// Scroll is set, matching Kind.
type Event struct {
	Seq     uint64
	Kind    EventKind
	Token   string
	Pointer *PointerData
	Scroll  *ScrollData
}

var (
	ErrInvalidEventKind = errors.New("protocol: invalid event kind")
	ErrInvalidPayload   = errors.New("protocol: invalid event payload")
)

// EncodeEvent encodes ev to bytes.
func EncodeEvent(ev *Event) []byte {
	e := NewEncoder()
	EncodeEventTo(e, ev)
	return e.Bytes()
}

// EncodeEventTo encodes ev using the provided encoder. A missing
// payload encodes as zeroes so the wire form stays well-shaped.
func EncodeEventTo(e *Encoder, ev *Event) {
	e.WriteUvarint(ev.Seq)
	e.WriteByte(byte(ev.Kind))
	e.WriteString(ev.Token)

	switch {
	case ev.Kind.IsPointer():
		p := ev.Pointer
		if p == nil {
			p = &PointerData{}
		}
		e.WriteFloat64(p.X)
		e.WriteFloat64(p.Y)
		e.WriteByte(p.Button)
		e.WriteByte(p.ClickCount)
		e.WriteByte(byte(p.Modifiers))

	case ev.Kind == EventScroll:
		s := ev.Scroll
		if s == nil {
			s = &ScrollData{}
		}
		e.WriteFloat64(s.Delta)
		e.WriteByte(byte(s.Modifiers))
	}
}

// DecodeEvent decodes an event from bytes.
func DecodeEvent(data []byte) (*Event, error) {
	d := NewDecoder(data)
	return DecodeEventFrom(d)
}

// DecodeEventFrom decodes an event from a decoder.
func DecodeEventFrom(d *Decoder) (*Event, error) {
	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	kindByte, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	kind := EventKind(kindByte)
	token, err := d.ReadString()
	if err != nil {
		return nil, err
	}
	ev := &Event{Seq: seq, Kind: kind, Token: token}

	switch {
	case kind.IsPointer():
		p := &PointerData{}
		if p.X, err = d.ReadFloat64(); err != nil {
			return nil, err
		}
		if p.Y, err = d.ReadFloat64(); err != nil {
			return nil, err
		}
		if p.Button, err = d.ReadByte(); err != nil {
			return nil, err
		}
		if p.ClickCount, err = d.ReadByte(); err != nil {
			return nil, err
		}
		var mods byte
		if mods, err = d.ReadByte(); err != nil {
			return nil, err
		}
		p.Modifiers = Modifiers(mods)
		ev.Pointer = p

	case kind == EventScroll:
		s := &ScrollData{}
		if s.Delta, err = d.ReadFloat64(); err != nil {
			return nil, err
		}
		var mods byte
		if mods, err = d.ReadByte(); err != nil {
			return nil, err
		}
		s.Modifiers = Modifiers(mods)
		ev.Scroll = s

	default:
		return nil, ErrInvalidEventKind
	}
	return ev, nil
}
