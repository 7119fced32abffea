// Package prefilter finds candidate start offsets for a pattern before the
// backtracking matcher runs.
//
// A prefilter is built from the literal prefixes of a pattern (see package
// literal). Every match of the pattern must begin with one of those prefixes,
// so offsets where no prefix occurs can be skipped without running the
// matcher. A prefilter never changes which line matches; it only reduces the
// number of offsets the matcher has to try.
//
// Three implementations are selected by the shape of the prefix set:
//
//   - a single one-byte prefix uses simd.Memchr
//   - a single longer prefix uses simd.Memmem
//   - two or more prefixes use an Aho-Corasick automaton
package prefilter

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/minigrep/literal"
	"github.com/coregx/minigrep/simd"
)

// Prefilter reports the next offset where a match may begin.
type Prefilter interface {
	// Find returns the smallest position >= start where one of the
	// prefixes occurs in haystack, or -1 if there is none.
	Find(haystack []byte, start int) int

	// IsComplete reports whether an occurrence of a prefix is by itself a
	// match of the whole pattern.
	IsComplete() bool

	// LiteralLen returns the length of the prefix when the prefilter holds
	// exactly one complete literal, and 0 otherwise.
	LiteralLen() int
}

// Builder selects and constructs a Prefilter for a prefix set.
type Builder struct {
	prefixes *literal.Seq
}

// NewBuilder returns a builder for the given prefixes. A nil or empty
// sequence builds no prefilter.
func NewBuilder(prefixes *literal.Seq) *Builder {
	return &Builder{prefixes: prefixes}
}

// Build returns the best prefilter for the prefix set, or nil when none
// applies.
func (b *Builder) Build() Prefilter {
	if b.prefixes == nil || b.prefixes.IsEmpty() {
		return nil
	}

	seq := b.prefixes.Clone()
	seq.Minimize()

	// An empty prefix matches everywhere and filters nothing.
	if seq.MinLen() == 0 {
		return nil
	}

	if seq.Len() == 1 {
		lit := seq.Get(0)
		if len(lit.Bytes) == 1 {
			return newMemchrPrefilter(lit.Bytes[0], lit.Complete)
		}
		return newMemmemPrefilter(lit.Bytes, lit.Complete)
	}
	return newAhoCorasickPrefilter(seq)
}

// memchrPrefilter searches for a single byte.
type memchrPrefilter struct {
	needle   byte
	complete bool
}

func newMemchrPrefilter(needle byte, complete bool) Prefilter {
	return &memchrPrefilter{needle: needle, complete: complete}
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := simd.Memchr(haystack[start:], p.needle)
	if idx < 0 {
		return -1
	}
	return start + idx
}

func (p *memchrPrefilter) IsComplete() bool {
	return p.complete
}

func (p *memchrPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

// memmemPrefilter searches for a single substring.
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

func newMemmemPrefilter(needle []byte, complete bool) Prefilter {
	return &memmemPrefilter{
		needle:   append([]byte(nil), needle...),
		complete: complete,
	}
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start+len(p.needle) > len(haystack) {
		return -1
	}
	idx := simd.Memmem(haystack[start:], p.needle)
	if idx < 0 {
		return -1
	}
	return start + idx
}

func (p *memmemPrefilter) IsComplete() bool {
	return p.complete
}

func (p *memmemPrefilter) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

// ahoCorasickPrefilter searches for any of several prefixes at once.
//
// The prefix set is minimized before the automaton is built, so no prefix is
// a prefix of another and the leftmost occurrence is the earliest candidate.
type ahoCorasickPrefilter struct {
	auto     *ahocorasick.Automaton
	complete bool
}

// newAhoCorasickPrefilter returns nil if the automaton cannot be built.
func newAhoCorasickPrefilter(seq *literal.Seq) Prefilter {
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &ahoCorasickPrefilter{auto: auto, complete: seq.AllComplete()}
}

func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

func (p *ahoCorasickPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen is 0: occurrences of different prefixes have different lengths.
func (p *ahoCorasickPrefilter) LiteralLen() int {
	return 0
}
