// Package backtrack evaluates a compiled pattern against one input line by
// recursive descent over the pattern tree.
//
// The search is deliberately limited:
//   - quantifiers are greedy and never give back what they consumed, so
//     `a+a` does not match "aaa";
//   - alternation commits to the first branch that matches and is never
//     revisited when a later element of the sequence fails.
//
// A failed group, quantifier iteration or alternation branch leaves the
// capture table exactly as it was before the attempt.
package backtrack

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/minigrep/syntax"
)

// Matcher runs a compiled pattern. It holds no per-search state and is safe
// for concurrent use as long as each goroutine passes its own Captures.
type Matcher struct {
	pattern *syntax.Pattern

	// nested marks group and alternation nodes that contain capturing
	// descendants and therefore need a snapshot before they are attempted.
	nested map[*syntax.Node]bool
}

// New returns a Matcher for p.
func New(p *syntax.Pattern) *Matcher {
	m := &Matcher{pattern: p, nested: make(map[*syntax.Node]bool)}
	for _, n := range p.Nodes {
		m.markNested(n)
	}
	return m
}

// markNested reports whether n or any descendant captures, recording the
// answer for groups with capturing descendants.
func (m *Matcher) markNested(n *syntax.Node) bool {
	inner := false
	for _, sub := range n.Sub {
		if m.markNested(sub) {
			inner = true
		}
	}
	if inner && (n.Op == syntax.OpGroup || n.Op == syntax.OpAlternation) {
		m.nested[n] = true
	}
	return inner || n.Capturing()
}

// Pattern returns the pattern m was built from.
func (m *Matcher) Pattern() *syntax.Pattern {
	return m.pattern
}

// NewCaptures returns an empty capture table sized for m's pattern.
func (m *Matcher) NewCaptures() *Captures {
	return NewCaptures(m.pattern.NumGroups)
}

// Match aligns the pattern with input starting at byte offset at.
// atLineStart reports whether at is a true line start for the purpose of a
// leading Start anchor. On success it returns the end offset of the match
// and records group 0 as [at, end) in caps.
//
// caps must come from NewCaptures; groups recorded by a failed attempt may
// remain in it, so callers reset it between attempts.
func (m *Matcher) Match(input string, at int, atLineStart bool, caps *Captures) (int, bool) {
	s := searcher{m: m, input: input, caps: caps, lineStart: atLineStart}
	end, ok := s.sequence(m.pattern.Nodes, at, true)
	if !ok {
		return -1, false
	}
	caps.Set(0, at, end)
	return end, true
}

type searcher struct {
	m         *Matcher
	input     string
	caps      *Captures
	lineStart bool
}

// sequence matches nodes consecutively from pos. top is true only for the
// pattern's top-level sequence, the one place a Start anchor can match.
func (s *searcher) sequence(nodes []*syntax.Node, pos int, top bool) (int, bool) {
	for i, n := range nodes {
		switch n.Op {
		case syntax.OpStart:
			if i != 0 || !top || !s.lineStart {
				return pos, false
			}
		case syntax.OpEnd:
			if i != len(nodes)-1 || pos != len(s.input) {
				return pos, false
			}
		default:
			next, ok := s.node(n, pos)
			if !ok {
				return pos, false
			}
			pos = next
		}
	}
	return pos, true
}

// node matches a single non-anchor node at pos. On failure the capture
// table is unchanged.
func (s *searcher) node(n *syntax.Node, pos int) (int, bool) {
	switch n.Op {
	case syntax.OpLiteral:
		if !strings.HasPrefix(s.input[pos:], n.Text) {
			return pos, false
		}
		return pos + len(n.Text), true

	case syntax.OpDigit, syntax.OpAlphanumeric, syntax.OpAnyChar, syntax.OpCharGroup:
		if pos >= len(s.input) {
			return pos, false
		}
		r, size := utf8.DecodeRuneInString(s.input[pos:])
		if !matchClass(n, r) {
			return pos, false
		}
		return pos + size, true

	case syntax.OpOneOrMore:
		sub := n.Sub[0]
		next, ok := s.node(sub, pos)
		if !ok {
			return pos, false
		}
		for next > pos {
			pos = next
			if next, ok = s.node(sub, pos); !ok {
				break
			}
		}
		return pos, true

	case syntax.OpZeroOrOne:
		if next, ok := s.node(n.Sub[0], pos); ok {
			return next, true
		}
		return pos, true

	case syntax.OpGroup:
		var saved []int
		if s.m.nested[n] {
			saved = s.caps.save()
		}
		end, ok := s.sequence(n.Sub, pos, false)
		if !ok {
			if saved != nil {
				s.caps.restore(saved)
			}
			return pos, false
		}
		if n.Index > 0 {
			s.caps.Set(n.Index, pos, end)
		}
		return end, true

	case syntax.OpAlternation:
		return s.alternation(n, pos)

	case syntax.OpBackReference:
		text, ok := s.caps.Text(s.input, n.Index)
		if !ok || !strings.HasPrefix(s.input[pos:], text) {
			return pos, false
		}
		return pos + len(text), true
	}

	// Anchors only match as elements of a sequence.
	return pos, false
}

// alternation tries each branch in order against its own copy of the
// capture table and commits the first that matches.
func (s *searcher) alternation(n *syntax.Node, pos int) (int, bool) {
	for _, branch := range n.Sub {
		trial := s.caps
		if s.m.nested[n] {
			trial = s.caps.Clone()
		}
		sub := searcher{m: s.m, input: s.input, caps: trial, lineStart: s.lineStart}
		end, ok := sub.node(branch, pos)
		if !ok {
			continue
		}
		if trial != s.caps {
			s.caps.CopyFrom(trial)
		}
		if n.Index > 0 {
			s.caps.Set(n.Index, pos, end)
		}
		return end, true
	}
	return pos, false
}

func matchClass(n *syntax.Node, r rune) bool {
	switch n.Op {
	case syntax.OpDigit:
		return IsDigit(r)
	case syntax.OpAlphanumeric:
		return IsWord(r)
	case syntax.OpAnyChar:
		return true
	case syntax.OpCharGroup:
		return n.Contains(r)
	}
	return false
}

// IsDigit reports whether r matches \d: an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsWord reports whether r matches \w: a letter, a decimal digit or '_'.
func IsWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
