//go:build amd64

// Package simd provides the byte search primitives used by the prefilter.
//
// Memchr finds a single byte, Memmem a substring. On amd64 the search is
// dispatched at package initialization on the CPU features reported by
// golang.org/x/sys/cpu; elsewhere a portable SWAR (SIMD Within A Register)
// loop scans eight bytes per step. The dispatch only chooses the faster
// path: both return the same position.
package simd

import (
	"bytes"

	"golang.org/x/sys/cpu"
)

// hasAVX2 is set when the runtime's vectorized bytes.IndexByte can use
// 256-bit registers. Without AVX2 the SWAR loop is competitive on the short
// lines minigrep searches.
var hasAVX2 = cpu.X86.HasAVX2

// avx2MinLen is the haystack length from which the AVX2 path pays for its
// setup.
const avx2MinLen = 32

// Memchr returns the index of the first instance of needle in haystack, or
// -1 if needle is not present.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o')
//	fmt.Println(pos) // 4
func Memchr(haystack []byte, needle byte) int {
	if hasAVX2 && len(haystack) >= avx2MinLen {
		return bytes.IndexByte(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}
