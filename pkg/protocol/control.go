package protocol

import "errors"

// ControlType identifies a control message.
type ControlType uint8

const (
	ControlPing   ControlType = 0x01 // liveness probe
	ControlPong   ControlType = 0x02 // probe response
	ControlResync ControlType = 0x10 // viewer requests a fresh snapshot
	ControlClose  ControlType = 0x20 // orderly session close
)

func (ct ControlType) String() string {
	switch ct {
	case ControlPing:
		return "Ping"
	case ControlPong:
		return "Pong"
	case ControlResync:
		return "Resync"
	case ControlClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// CloseReason explains an orderly close.
type CloseReason uint8

const (
	CloseNormal         CloseReason = 0x00
	CloseGoingAway      CloseReason = 0x01
	CloseServerShutdown CloseReason = 0x02
	CloseError          CloseReason = 0x03
)

func (cr CloseReason) String() string {
	switch cr {
	case CloseNormal:
		return "Normal"
	case CloseGoingAway:
		return "GoingAway"
	case CloseServerShutdown:
		return "ServerShutdown"
	case CloseError:
		return "Error"
	default:
		return "Unknown"
	}
}

// PingPong carries the sender's clock so either side can measure
// round-trip time.
type PingPong struct {
	Timestamp uint64 // Unix milliseconds
}

// ResyncRequest asks the server for a fresh document snapshot after the
// viewer fell behind the patch stream.
type ResyncRequest struct {
	LastSeq uint64
}

// CloseMessage announces an orderly close.
type CloseMessage struct {
	Reason  CloseReason
	Message string
}

var ErrInvalidControlType = errors.New("protocol: invalid control type")

// EncodeControl encodes a control message. The payload value must match
// the control type; a nil payload encodes as zeroes.
func EncodeControl(ct ControlType, payload any) []byte {
	e := NewEncoder()
	e.WriteByte(byte(ct))
	switch ct {
	case ControlPing, ControlPong:
		pp, _ := payload.(*PingPong)
		if pp == nil {
			pp = &PingPong{}
		}
		e.WriteUint64(pp.Timestamp)
	case ControlResync:
		rr, _ := payload.(*ResyncRequest)
		if rr == nil {
			rr = &ResyncRequest{}
		}
		e.WriteUvarint(rr.LastSeq)
	case ControlClose:
		cm, _ := payload.(*CloseMessage)
		if cm == nil {
			cm = &CloseMessage{}
		}
		e.WriteByte(byte(cm.Reason))
		e.WriteString(cm.Message)
	}
	return e.Bytes()
}

// DecodeControl decodes a control message, returning its type and a
// payload value matching it.
func DecodeControl(data []byte) (ControlType, any, error) {
	d := NewDecoder(data)
	ctByte, err := d.ReadByte()
	if err != nil {
		return 0, nil, err
	}
	ct := ControlType(ctByte)
	switch ct {
	case ControlPing, ControlPong:
		ts, err := d.ReadUint64()
		if err != nil {
			return ct, nil, err
		}
		return ct, &PingPong{Timestamp: ts}, nil
	case ControlResync:
		lastSeq, err := d.ReadUvarint()
		if err != nil {
			return ct, nil, err
		}
		return ct, &ResyncRequest{LastSeq: lastSeq}, nil
	case ControlClose:
		reason, err := d.ReadByte()
		if err != nil {
			return ct, nil, err
		}
		msg, err := d.ReadString()
		if err != nil {
			return ct, nil, err
		}
		return ct, &CloseMessage{Reason: CloseReason(reason), Message: msg}, nil
	default:
		return ct, nil, ErrInvalidControlType
	}
}

// NewPing builds a ping carrying ts.
func NewPing(ts uint64) (ControlType, *PingPong) {
	return ControlPing, &PingPong{Timestamp: ts}
}

// NewPong builds the pong answering a ping stamped ts.
func NewPong(ts uint64) (ControlType, *PingPong) {
	return ControlPong, &PingPong{Timestamp: ts}
}
