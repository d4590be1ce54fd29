package protocol

// MaxVarintLen is the most bytes a varint can occupy; a uint64 needs at
// most 10 bytes at 7 data bits per byte.
const MaxVarintLen = 10

// EncodeUvarint writes v into buf in protobuf varint form and returns
// the number of bytes written. buf must have MaxVarintLen bytes free.
func EncodeUvarint(buf []byte, v uint64) int {
	i := 0
	for v >= 0x80 {
		buf[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	buf[i] = byte(v)
	return i + 1
}

// DecodeUvarint reads a varint from buf. A negative byte count reports
// failure: -1 for a truncated varint, -2 for one longer than
// MaxVarintLen.
func DecodeUvarint(buf []byte) (uint64, int) {
	var v uint64
	var shift uint
	for i, b := range buf {
		if i >= MaxVarintLen {
			return 0, -2
		}
		v |= uint64(b&0x7F) << shift
		if b < 0x80 {
			return v, i + 1
		}
		shift += 7
	}
	return 0, -1
}

// EncodeSvarint writes v in ZigZag varint form: 0, -1, 1, -2 map to
// 0, 1, 2, 3 so small magnitudes of either sign stay short.
func EncodeSvarint(buf []byte, v int64) int {
	return EncodeUvarint(buf, uint64((v<<1)^(v>>63)))
}

// DecodeSvarint reads a ZigZag varint. Negative byte counts are as for
// DecodeUvarint.
func DecodeSvarint(buf []byte) (int64, int) {
	uv, n := DecodeUvarint(buf)
	if n < 0 {
		return 0, n
	}
	v := int64(uv >> 1)
	if uv&1 != 0 {
		v = ^v
	}
	return v, n
}

// UvarintLen returns the encoded size of v.
func UvarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		n++
		v >>= 7
	}
	return n
}

// SvarintLen returns the encoded size of v in ZigZag form.
func SvarintLen(v int64) int {
	return UvarintLen(uint64((v << 1) ^ (v >> 63)))
}
