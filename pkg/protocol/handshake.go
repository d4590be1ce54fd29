package protocol

// HandshakeStatus is the server's verdict on a connection attempt.
type HandshakeStatus uint8

const (
	HandshakeOK              HandshakeStatus = 0x00
	HandshakeVersionMismatch HandshakeStatus = 0x01
	HandshakeServerBusy      HandshakeStatus = 0x02
	HandshakeInvalidFormat   HandshakeStatus = 0x03
	HandshakeInternalError   HandshakeStatus = 0x04
)

func (hs HandshakeStatus) String() string {
	switch hs {
	case HandshakeOK:
		return "OK"
	case HandshakeVersionMismatch:
		return "VersionMismatch"
	case HandshakeServerBusy:
		return "ServerBusy"
	case HandshakeInvalidFormat:
		return "InvalidFormat"
	case HandshakeInternalError:
		return "InternalError"
	default:
		return "Unknown"
	}
}

// Version is a protocol version as major.minor. Majors must match for a
// connection to proceed; minors are backward compatible.
type Version struct {
	Major uint8
	Minor uint8
}

// CurrentVersion is the protocol version this package speaks.
var CurrentVersion = Version{Major: 1, Minor: 0}

// Compatible reports whether a peer speaking v can talk to us.
func (v Version) Compatible() bool { return v.Major == CurrentVersion.Major }

// ClientHello opens the handshake once the WebSocket is established.
type ClientHello struct {
	Version Version
	// LastSeq is the last patch sequence the viewer has applied, zero
	// for a fresh connection.
	LastSeq uint64
}

// ServerHello completes the handshake. On HandshakeOK it carries the
// session identifier, the full document markup the viewer starts from,
// and the patch sequence that snapshot corresponds to.
type ServerHello struct {
	Status    HandshakeStatus
	SessionID string
	Seq       uint64
	Markup    string
}

// EncodeClientHello encodes a ClientHello to bytes.
func EncodeClientHello(h *ClientHello) []byte {
	e := NewEncoder()
	e.WriteByte(h.Version.Major)
	e.WriteByte(h.Version.Minor)
	e.WriteUvarint(h.LastSeq)
	return e.Bytes()
}

// DecodeClientHello decodes a ClientHello from bytes.
func DecodeClientHello(data []byte) (*ClientHello, error) {
	d := NewDecoder(data)
	major, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	minor, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	lastSeq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	return &ClientHello{
		Version: Version{Major: major, Minor: minor},
		LastSeq: lastSeq,
	}, nil
}

// EncodeServerHello encodes a ServerHello to bytes.
func EncodeServerHello(h *ServerHello) []byte {
	e := NewEncoder()
	e.WriteByte(byte(h.Status))
	e.WriteString(h.SessionID)
	e.WriteUvarint(h.Seq)
	e.WriteString(h.Markup)
	return e.Bytes()
}

// DecodeServerHello decodes a ServerHello from bytes.
func DecodeServerHello(data []byte) (*ServerHello, error) {
	d := NewDecoder(data)
	status, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	sessionID, err := d.ReadString()
	if err != nil {
		return nil, err
	}
	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	markup, err := d.ReadString()
	if err != nil {
		return nil, err
	}
	return &ServerHello{
		Status:    HandshakeStatus(status),
		SessionID: sessionID,
		Seq:       seq,
		Markup:    markup,
	}, nil
}
