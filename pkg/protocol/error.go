package protocol

// ErrorCode classifies an error frame.
type ErrorCode uint16

const (
	ErrUnknown      ErrorCode = 0x0000
	ErrInvalidFrame ErrorCode = 0x0001 // malformed frame
	ErrInvalidEvent ErrorCode = 0x0002 // malformed event payload
	ErrUnknownToken ErrorCode = 0x0003 // no node bound to the event token
	ErrRateLimited  ErrorCode = 0x0004 // event queue full
	ErrServerError  ErrorCode = 0x0100 // internal server error
)

func (ec ErrorCode) String() string {
	switch ec {
	case ErrInvalidFrame:
		return "InvalidFrame"
	case ErrInvalidEvent:
		return "InvalidEvent"
	case ErrUnknownToken:
		return "UnknownToken"
	case ErrRateLimited:
		return "RateLimited"
	case ErrServerError:
		return "ServerError"
	default:
		return "Unknown"
	}
}

// ErrorMessage reports a failure to the peer. Fatal errors are followed
// by connection close.
type ErrorMessage struct {
	Code    ErrorCode
	Message string
	Fatal   bool
}

// EncodeErrorMessage encodes an ErrorMessage to bytes.
func EncodeErrorMessage(em *ErrorMessage) []byte {
	e := NewEncoder()
	e.WriteUint16(uint16(em.Code))
	e.WriteString(em.Message)
	e.WriteBool(em.Fatal)
	return e.Bytes()
}

// DecodeErrorMessage decodes an ErrorMessage from bytes.
func DecodeErrorMessage(data []byte) (*ErrorMessage, error) {
	d := NewDecoder(data)
	code, err := d.ReadUint16()
	if err != nil {
		return nil, err
	}
	message, err := d.ReadString()
	if err != nil {
		return nil, err
	}
	fatal, err := d.ReadBool()
	if err != nil {
		return nil, err
	}
	return &ErrorMessage{Code: ErrorCode(code), Message: message, Fatal: fatal}, nil
}
