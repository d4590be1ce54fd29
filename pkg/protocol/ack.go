package protocol

// Ack acknowledges the patch stream up to LastSeq: the server may drop
// any buffered patches at or below it.
type Ack struct {
	LastSeq uint64
}

// EncodeAck encodes an Ack to bytes.
func EncodeAck(a *Ack) []byte {
	e := NewEncoder()
	e.WriteUvarint(a.LastSeq)
	return e.Bytes()
}

// DecodeAck decodes an Ack from bytes.
func DecodeAck(data []byte) (*Ack, error) {
	d := NewDecoder(data)
	lastSeq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	return &Ack{LastSeq: lastSeq}, nil
}
