package tinyjambu

import "encoding/binary"

// byte/word conversions. All wire values are little-endian at the 32-bit
// word boundary; this holds regardless of host byte order.

func fromLEBytes(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func toLEBytes(w uint32, b []byte) {
	binary.LittleEndian.PutUint32(b, w)
}

// fromLEPartial reads 1..3 little-endian bytes, zero-extended to 32 bits.
func fromLEPartial(b []byte) uint32 {
	var w uint32
	for i, x := range b {
		w |= uint32(x) << (8 * i)
	}
	return w
}

// toLEPartial writes the low len(b) bytes of w, little-endian.
func toLEPartial(w uint32, b []byte) {
	for i := range b {
		b[i] = byte(w >> (8 * i))
	}
}

// partialMask returns a mask covering the low n bytes of a 32-bit word,
// for n in 1..3.
func partialMask(n int) uint32 {
	return uint32(1)<<(8*n) - 1
}
