// Package syntax compiles minigrep patterns into an abstract syntax tree.
//
// A pattern is compiled into an ordered sequence of nodes. Each node is one
// of a closed set of kinds identified by its Op:
//   - OpLiteral: a run of characters matched verbatim
//   - OpDigit, OpAlphanumeric, OpAnyChar: single-character class tests
//   - OpCharGroup: a bracketed set of characters, optionally negated
//   - OpStart, OpEnd: zero-width line anchors
//   - OpOneOrMore, OpZeroOrOne: postfix quantifiers over exactly one node
//   - OpGroup: a parenthesized sub-sequence, usually capturing
//   - OpAlternation: an ordered list of branches inside one group
//   - OpBackReference: a reference to an earlier capture by index
//
// Capture indices are assigned at compile time in order of opening
// parentheses, so the same group always has the same index regardless of
// which branches execute at match time.
//
// The tree is immutable after compilation and may be shared between
// goroutines.
package syntax

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Op identifies the kind of a Node.
type Op uint8

// Node kinds.
const (
	OpLiteral Op = iota + 1
	OpDigit
	OpAlphanumeric
	OpAnyChar
	OpCharGroup
	OpStart
	OpEnd
	OpOneOrMore
	OpZeroOrOne
	OpAlternation
	OpGroup
	OpBackReference
)

var opNames = [...]string{
	OpLiteral:       "Literal",
	OpDigit:         "Digit",
	OpAlphanumeric:  "Alphanumeric",
	OpAnyChar:       "AnyChar",
	OpCharGroup:     "CharGroup",
	OpStart:         "Start",
	OpEnd:           "End",
	OpOneOrMore:     "OneOrMore",
	OpZeroOrOne:     "ZeroOrOne",
	OpAlternation:   "Alternation",
	OpGroup:         "Group",
	OpBackReference: "BackReference",
}

// String returns the name of the op.
func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// IsQuantifier reports whether op is a postfix repetition operator.
func (op Op) IsQuantifier() bool {
	return op == OpOneOrMore || op == OpZeroOrOne
}

// IsAnchor reports whether op is a zero-width anchor.
func (op Op) IsAnchor() bool {
	return op == OpStart || op == OpEnd
}

// Node is one element of a compiled pattern.
//
// Which fields are meaningful depends on Op:
//
//	OpLiteral        Text
//	OpCharGroup      Members, Negated
//	OpOneOrMore      Sub[0] is the repeated node
//	OpZeroOrOne      Sub[0] is the optional node
//	OpGroup          Sub is the sequence, Index is the capture index (0 = non-capturing)
//	OpAlternation    Sub are the branches (each an OpGroup), Index is the capture index
//	OpBackReference  Index is the referenced capture
type Node struct {
	Op      Op
	Text    string
	Members []rune
	Negated bool
	Sub     []*Node
	Index   int
}

// Contains reports whether r is a member of an OpCharGroup node, taking
// negation into account.
func (n *Node) Contains(r rune) bool {
	for _, m := range n.Members {
		if m == r {
			return !n.Negated
		}
	}
	return n.Negated
}

// Capturing reports whether a successful match of n records a capture.
func (n *Node) Capturing() bool {
	return (n.Op == OpGroup || n.Op == OpAlternation) && n.Index > 0
}

// String renders n back into pattern syntax.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	switch n.Op {
	case OpLiteral:
		for i := 0; i < len(n.Text); {
			r, size := utf8.DecodeRuneInString(n.Text[i:])
			if strings.ContainsRune(metaChars, r) {
				b.WriteByte('\\')
			}
			b.WriteString(n.Text[i : i+size])
			i += size
		}
	case OpDigit:
		b.WriteString(`\d`)
	case OpAlphanumeric:
		b.WriteString(`\w`)
	case OpAnyChar:
		b.WriteByte('.')
	case OpStart:
		b.WriteByte('^')
	case OpEnd:
		b.WriteByte('$')
	case OpCharGroup:
		b.WriteByte('[')
		if n.Negated {
			b.WriteByte('^')
		}
		b.WriteString(string(n.Members))
		b.WriteByte(']')
	case OpOneOrMore:
		n.Sub[0].write(b)
		b.WriteByte('+')
	case OpZeroOrOne:
		n.Sub[0].write(b)
		b.WriteByte('?')
	case OpGroup:
		if n.Index > 0 {
			b.WriteByte('(')
		}
		for _, sub := range n.Sub {
			sub.write(b)
		}
		if n.Index > 0 {
			b.WriteByte(')')
		}
	case OpAlternation:
		b.WriteByte('(')
		for i, branch := range n.Sub {
			if i > 0 {
				b.WriteByte('|')
			}
			for _, sub := range branch.Sub {
				sub.write(b)
			}
		}
		b.WriteByte(')')
	case OpBackReference:
		b.WriteByte('\\')
		b.WriteString(strconv.Itoa(n.Index))
	default:
		b.WriteString(n.Op.String())
	}
}

// metaChars are the characters that must be escaped to be taken literally.
const metaChars = `\.+?()|[]^$`

// Pattern is a compiled pattern.
type Pattern struct {
	// Expr is the source text the pattern was compiled from.
	Expr string

	// Nodes is the top-level sequence.
	Nodes []*Node

	// NumGroups is the number of capturing groups.
	NumGroups int
}

// AnchoredStart reports whether the top-level sequence begins with a Start
// anchor.
func (p *Pattern) AnchoredStart() bool {
	return len(p.Nodes) > 0 && p.Nodes[0].Op == OpStart
}

// AnchoredEnd reports whether the top-level sequence ends with an End anchor.
func (p *Pattern) AnchoredEnd() bool {
	return len(p.Nodes) > 0 && p.Nodes[len(p.Nodes)-1].Op == OpEnd
}

// String renders the compiled sequence back into pattern syntax. The result
// compiles to a pattern with the same matching behavior.
func (p *Pattern) String() string {
	var b strings.Builder
	for _, n := range p.Nodes {
		n.write(&b)
	}
	return b.String()
}

// MaxDepth returns the deepest group nesting level in p. A pattern without
// groups has depth 0.
func (p *Pattern) MaxDepth() int {
	return maxDepth(p.Nodes)
}

func maxDepth(nodes []*Node) int {
	depth := 0
	for _, n := range nodes {
		d := 0
		switch n.Op {
		case OpGroup:
			d = 1 + maxDepth(n.Sub)
		case OpAlternation:
			for _, branch := range n.Sub {
				d = max(d, 1+maxDepth(branch.Sub))
			}
		case OpOneOrMore, OpZeroOrOne:
			d = maxDepth(n.Sub)
		}
		depth = max(depth, d)
	}
	return depth
}
