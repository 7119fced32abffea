package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// memchrGeneric scans eight bytes per step. XOR with the broadcast needle
// turns matching bytes into zero; (v - lo8) &^ v & hi8 then sets the high
// bit of the first zero byte, which TrailingZeros64 locates.
func memchrGeneric(haystack []byte, needle byte) int {
	n := len(haystack)
	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		v := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		if found := (v - lo8) &^ v & hi8; found != 0 {
			return i + bits.TrailingZeros64(found)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
