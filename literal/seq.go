// Package literal extracts literal byte sequences from compiled patterns.
//
// The extracted literals feed the prefilter: when every match of a pattern
// must begin with one of a small set of literals, start offsets where none
// of them occurs can be skipped without running the matcher.
//
// Key concepts:
//   - A Literal is a byte sequence every match at some offset must begin with
//   - A Seq is a set of alternative literals, e.g. from (cat|dog)
//   - A Literal is Complete when finding it is equivalent to a match
package literal

import (
	"bytes"
	"sort"
)

// Literal is a byte sequence extracted from a pattern.
//
// Example:
//   - Pattern `hello` → Literal{"hello", Complete: true}
//   - Pattern `hello\d` → Literal{"hello", Complete: false}
type Literal struct {
	// Bytes is the literal text as it appears in the pattern.
	Bytes []byte

	// Complete is true when an occurrence of Bytes is by itself a match of
	// the whole pattern.
	Complete bool
}

// NewLiteral creates a Literal.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a debugging representation: "literal{bytes, complete=bool}".
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is a set of alternative literals.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("cat"), true),
//	    literal.NewLiteral([]byte("dog"), true),
//	)
//	fmt.Println(seq.Len()) // Output: 2
type Seq struct {
	literals []Literal
}

// NewSeq creates a sequence from lits.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals. A nil Seq is empty.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the i-th literal. It panics if i is out of range.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty reports whether the sequence holds no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// AllComplete reports whether the sequence is non-empty and every literal in
// it is complete.
func (s *Seq) AllComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, lit := range s.literals {
		if !lit.Complete {
			return false
		}
	}
	return true
}

// MinLen returns the length of the shortest literal, or 0 for an empty
// sequence.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	n := s.literals[0].Len()
	for _, lit := range s.literals[1:] {
		n = min(n, lit.Len())
	}
	return n
}

// Clone returns a deep copy of the sequence.
func (s *Seq) Clone() *Seq {
	if s == nil {
		return nil
	}
	cloned := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		cloned[i] = Literal{
			Bytes:    append([]byte(nil), lit.Bytes...),
			Complete: lit.Complete,
		}
	}
	return &Seq{literals: cloned}
}

// Minimize removes duplicate literals and literals that have another literal
// of the sequence as a prefix. An occurrence of "foobar" is always an
// occurrence of "foo", so "foo" alone finds the same candidate offsets.
//
// The remaining literals are ordered shortest first.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("foo"), true),
//	    literal.NewLiteral([]byte("foobar"), true),
//	)
//	seq.Minimize()
//	fmt.Println(seq.Len()) // Output: 1
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}

	sort.SliceStable(s.literals, func(i, j int) bool {
		return len(s.literals[i].Bytes) < len(s.literals[j].Bytes)
	})

	kept := make([]Literal, 0, len(s.literals))
	for _, lit := range s.literals {
		redundant := false
		for i, k := range kept {
			if !bytes.HasPrefix(lit.Bytes, k.Bytes) {
				continue
			}
			redundant = true
			// An exact duplicate is complete if either copy is.
			if len(k.Bytes) == len(lit.Bytes) && lit.Complete {
				kept[i].Complete = true
			}
			break
		}
		if !redundant {
			kept = append(kept, lit)
		}
	}
	s.literals = kept
}
