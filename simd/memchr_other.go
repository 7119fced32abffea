//go:build !amd64

// Package simd provides the byte search primitives used by the prefilter.
//
// Memchr finds a single byte, Memmem a substring. On amd64 the search is
// dispatched at package initialization on the CPU features reported by
// golang.org/x/sys/cpu; elsewhere a portable SWAR (SIMD Within A Register)
// loop scans eight bytes per step. The dispatch only chooses the faster
// path: both return the same position.
package simd

// Memchr returns the index of the first instance of needle in haystack, or
// -1 if needle is not present.
func Memchr(haystack []byte, needle byte) int {
	return memchrGeneric(haystack, needle)
}
