package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack, or
// -1 if needle is not present. An empty needle matches at 0.
//
// The scan runs Memchr on the needle's rarest byte and verifies the full
// needle at each hit.
//
// Example:
//
//	pos := simd.Memmem([]byte("I have a dog"), []byte("dog"))
//	fmt.Println(pos) // 9
func Memmem(haystack, needle []byte) int {
	switch {
	case len(needle) == 0:
		return 0
	case len(needle) > len(haystack):
		return -1
	case len(needle) == 1:
		return Memchr(haystack, needle[0])
	}

	rare, offset := rarestByte(needle)
	// The rare byte cannot sit before offset or after the last full window.
	for at := offset; at <= len(haystack)-len(needle)+offset; {
		hit := Memchr(haystack[at:len(haystack)-len(needle)+offset+1], rare)
		if hit < 0 {
			return -1
		}
		start := at + hit - offset
		if bytes.Equal(haystack[start:start+len(needle)], needle) {
			return start
		}
		at += hit + 1
	}
	return -1
}
