package protocol

import (
	"math"
	"testing"
)

func TestEncodeDecodeUvarint(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		bytes int
	}{
		{"zero", 0, 1},
		{"max one byte", 127, 1},
		{"min two bytes", 128, 2},
		{"max two bytes", 16383, 2},
		{"medium", 1_000_000, 3},
		{"max uint32", math.MaxUint32, 5},
		{"max uint64", math.MaxUint64, 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, MaxVarintLen)
			n := EncodeUvarint(buf, tc.value)
			if n != tc.bytes {
				t.Errorf("EncodeUvarint(%d) wrote %d bytes, want %d", tc.value, n, tc.bytes)
			}
			if got := UvarintLen(tc.value); got != tc.bytes {
				t.Errorf("UvarintLen(%d) = %d, want %d", tc.value, got, tc.bytes)
			}
			decoded, read := DecodeUvarint(buf[:n])
			if read != n {
				t.Errorf("DecodeUvarint read %d bytes, want %d", read, n)
			}
			if decoded != tc.value {
				t.Errorf("DecodeUvarint = %d, want %d", decoded, tc.value)
			}
		})
	}
}

func TestEncodeDecodeSvarint(t *testing.T) {
	values := []int64{0, 1, -1, 100, -100, 1_000_000, -1_000_000,
		math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64}
	for _, v := range values {
		buf := make([]byte, MaxVarintLen)
		n := EncodeSvarint(buf, v)
		if got := SvarintLen(v); got != n {
			t.Errorf("SvarintLen(%d) = %d, want %d", v, got, n)
		}
		decoded, read := DecodeSvarint(buf[:n])
		if read != n {
			t.Errorf("DecodeSvarint(%d) read %d bytes, want %d", v, read, n)
		}
		if decoded != v {
			t.Errorf("DecodeSvarint round trip = %d, want %d", decoded, v)
		}
	}
}

func TestDecodeUvarintErrors(t *testing.T) {
	if _, n := DecodeUvarint(nil); n != -1 {
		t.Errorf("empty buffer: n = %d, want -1", n)
	}
	if _, n := DecodeUvarint([]byte{0x80, 0x80}); n != -1 {
		t.Errorf("truncated varint: n = %d, want -1", n)
	}
	over := make([]byte, 11)
	for i := range over {
		over[i] = 0x80
	}
	if _, n := DecodeUvarint(over); n != -2 {
		t.Errorf("overlong varint: n = %d, want -2", n)
	}
}

func TestZigZagMapping(t *testing.T) {
	// Small magnitudes of either sign must stay one byte.
	for _, v := range []int64{0, -1, 1, -2, 2, -63, 63} {
		if got := SvarintLen(v); got != 1 {
			t.Errorf("SvarintLen(%d) = %d, want 1", v, got)
		}
	}
}
