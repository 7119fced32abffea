package simd

import (
	"bytes"
	"fmt"
	"testing"
)

func TestMemchr(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   byte
		want     int
	}{
		{"empty", "", 'a', -1},
		{"single hit", "a", 'a', 0},
		{"single miss", "b", 'a', -1},
		{"short", "hello", 'l', 2},
		{"chunk boundary", "01234567x", 'x', 8},
		{"second chunk", "0123456701234x67", 'x', 13},
		{"tail", "0123456789abcdefXYZ", 'Z', 18},
		{"high byte", "abc\xffdef", 0xff, 3},
		{"zero byte", "abc\x00def", 0, 3},
		{"long miss", string(bytes.Repeat([]byte("ab"), 100)), 'c', -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Memchr([]byte(tt.haystack), tt.needle); got != tt.want {
				t.Errorf("Memchr(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
			if got := memchrGeneric([]byte(tt.haystack), tt.needle); got != tt.want {
				t.Errorf("memchrGeneric(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

// TestMemchrAllPositions places the needle at every offset of haystacks of
// every length up to 80 and compares against bytes.IndexByte.
func TestMemchrAllPositions(t *testing.T) {
	for n := 1; n <= 80; n++ {
		haystack := bytes.Repeat([]byte{'.'}, n)
		for pos := 0; pos < n; pos++ {
			haystack[pos] = '#'
			if pos+1 < n {
				haystack[n-1] = '#'
			}
			want := bytes.IndexByte(haystack, '#')
			if got := Memchr(haystack, '#'); got != want {
				t.Fatalf("len %d pos %d: Memchr = %d, want %d", n, pos, got, want)
			}
			if got := memchrGeneric(haystack, '#'); got != want {
				t.Fatalf("len %d pos %d: memchrGeneric = %d, want %d", n, pos, got, want)
			}
			for i := range haystack {
				haystack[i] = '.'
			}
		}
	}
}

func TestRarestByte(t *testing.T) {
	tests := []struct {
		needle    string
		wantByte  byte
		wantIndex int
	}{
		{"a", 'a', 0},
		{"the", 'h', 1},
		{"zoo", 'z', 0},
		{"aa", 'a', 1},
	}
	for _, tt := range tests {
		b, i := rarestByte([]byte(tt.needle))
		if b != tt.wantByte || i != tt.wantIndex {
			t.Errorf("rarestByte(%q) = (%q, %d), want (%q, %d)", tt.needle, b, i, tt.wantByte, tt.wantIndex)
		}
	}
}

func BenchmarkMemchr(b *testing.B) {
	for _, size := range []int{16, 64, 1024} {
		haystack := bytes.Repeat([]byte("a"), size)
		haystack[size-1] = 'x'
		b.Run(fmt.Sprint(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				Memchr(haystack, 'x')
			}
		})
	}
}
