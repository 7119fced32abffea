package syntax

import (
	"strings"
	"unicode/utf8"
)

// Flags control compilation.
type Flags uint8

const (
	// Strict rejects malformed patterns instead of reading the offending
	// characters literally.
	Strict Flags = 1 << iota
)

// DefaultMaxDepth is the group nesting limit used by Compile.
const DefaultMaxDepth = 100

// Compile compiles expr into a Pattern.
//
// Without Strict, compilation only fails when groups nest deeper than
// DefaultMaxDepth: an unterminated bracket or group runs to the end of the
// pattern, a quantifier with nothing to bind becomes a literal, and a
// trailing backslash is dropped.
//
// Example:
//
//	p, err := syntax.Compile(`(\w+) \1`, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.NumGroups) // 1
func Compile(expr string, flags Flags) (*Pattern, error) {
	return CompileDepth(expr, flags, DefaultMaxDepth)
}

// CompileDepth is like Compile with an explicit group nesting limit.
func CompileDepth(expr string, flags Flags, maxDepth int) (*Pattern, error) {
	c := &compiler{flags: flags, maxDepth: maxDepth}
	nodes, err := c.sequence(decode(expr), 0)
	if err != nil {
		return nil, err
	}
	return &Pattern{
		Expr:      expr,
		Nodes:     nodes,
		NumGroups: c.groups,
	}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(expr string, flags Flags) *Pattern {
	p, err := Compile(expr, flags)
	if err != nil {
		panic("syntax: Compile(`" + expr + "`): " + err.Error())
	}
	return p
}

// rawByte is added to a pattern byte that is not valid UTF-8. The sum lies
// above utf8.MaxRune, so it never collides with a decoded character, and
// encode writes the original byte back.
const rawByte rune = utf8.MaxRune + 1

// decode splits expr into characters, keeping invalid bytes as raw bytes.
func decode(expr string) []rune {
	src := make([]rune, 0, len(expr))
	for i := 0; i < len(expr); {
		r, size := utf8.DecodeRuneInString(expr[i:])
		if r == utf8.RuneError && size == 1 {
			r = rawByte + rune(expr[i])
		}
		src = append(src, r)
		i += size
	}
	return src
}

// encode is the inverse of decode.
func encode(src ...rune) string {
	var b strings.Builder
	for _, r := range src {
		if r >= rawByte {
			b.WriteByte(byte(r - rawByte))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type compiler struct {
	flags    Flags
	maxDepth int

	// groups counts opening parentheses seen so far; it is the index of the
	// most recently opened group.
	groups int
}

func (c *compiler) strict() bool {
	return c.flags&Strict != 0
}

// sequence compiles src, the full pattern or the body of one alternation
// branch, into a node sequence. depth is the number of enclosing groups.
func (c *compiler) sequence(src []rune, depth int) ([]*Node, error) {
	var (
		nodes []*Node
		lit   []rune
	)
	flush := func() {
		if len(lit) > 0 {
			nodes = append(nodes, &Node{Op: OpLiteral, Text: encode(lit...)})
			lit = lit[:0]
		}
	}

	for i := 0; i < len(src); i++ {
		r := src[i]
		switch r {
		case '\\':
			flush()
			if i+1 >= len(src) {
				if c.strict() {
					return nil, &Error{Code: ErrTrailingBackslash, Expr: `\`}
				}
				continue
			}
			i++
			nodes = append(nodes, c.escape(src[i]))
			if n := nodes[len(nodes)-1]; n.Op == OpBackReference && c.strict() {
				if n.Index == 0 || n.Index > c.groups {
					return nil, &Error{Code: ErrInvalidBackref, Expr: n.String()}
				}
			}

		case '.':
			flush()
			nodes = append(nodes, &Node{Op: OpAnyChar})

		case '^':
			flush()
			nodes = append(nodes, &Node{Op: OpStart})

		case '$':
			flush()
			nodes = append(nodes, &Node{Op: OpEnd})

		case '[':
			flush()
			end, closed := classEnd(src, i)
			if !closed && c.strict() {
				return nil, &Error{Code: ErrMissingBracket, Expr: encode(src[i:]...)}
			}
			nodes = append(nodes, charGroup(src[i+1:end]))
			i = end

		case '(':
			flush()
			end, closed := groupEnd(src, i)
			if !closed && c.strict() {
				return nil, &Error{Code: ErrMissingParen, Expr: encode(src[i:]...)}
			}
			if depth+1 > c.maxDepth {
				return nil, &Error{Code: ErrNestingDepth, Expr: encode(src[i:min(end+1, len(src))]...)}
			}
			c.groups++
			n, err := c.group(src[i+1:end], c.groups, depth+1)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
			i = end

		case ')':
			if c.strict() {
				return nil, &Error{Code: ErrUnexpectedParen, Expr: encode(src[:i+1]...)}
			}
			lit = append(lit, r)

		case '+', '?':
			op := OpOneOrMore
			if r == '?' {
				op = OpZeroOrOne
			}
			switch {
			case len(lit) > 0:
				last := lit[len(lit)-1]
				lit = lit[:len(lit)-1]
				flush()
				nodes = append(nodes, &Node{Op: op, Sub: []*Node{{Op: OpLiteral, Text: encode(last)}}})
			case len(nodes) > 0:
				prev := nodes[len(nodes)-1]
				if c.strict() {
					if prev.Op.IsAnchor() {
						return nil, &Error{Code: ErrMissingRepeatArgument, Expr: prev.String() + string(r)}
					}
					if prev.Op.IsQuantifier() {
						return nil, &Error{Code: ErrInvalidNestedRepeat, Expr: prev.String() + string(r)}
					}
				}
				nodes[len(nodes)-1] = &Node{Op: op, Sub: []*Node{prev}}
			default:
				if c.strict() {
					return nil, &Error{Code: ErrMissingRepeatArgument, Expr: string(r)}
				}
				nodes = append(nodes, &Node{Op: OpLiteral, Text: string(r)})
			}

		default:
			// '|' lands here too: alternation is only recognized inside a
			// group, see group.
			lit = append(lit, r)
		}
	}
	flush()
	return nodes, nil
}

// escape compiles the character following a backslash.
func (c *compiler) escape(r rune) *Node {
	switch {
	case r == 'd':
		return &Node{Op: OpDigit}
	case r == 'w':
		return &Node{Op: OpAlphanumeric}
	case r >= '0' && r <= '9':
		return &Node{Op: OpBackReference, Index: int(r - '0')}
	default:
		return &Node{Op: OpLiteral, Text: encode(r)}
	}
}

// group compiles the body of a parenthesized group with capture index index.
// A body with a top-level '|' becomes an Alternation whose branches are
// non-capturing Groups; the alternation itself owns the capture.
func (c *compiler) group(body []rune, index, depth int) (*Node, error) {
	branches := splitBranches(body)
	if len(branches) == 1 {
		seq, err := c.sequence(body, depth)
		if err != nil {
			return nil, err
		}
		return &Node{Op: OpGroup, Sub: seq, Index: index}, nil
	}

	alt := &Node{Op: OpAlternation, Index: index, Sub: make([]*Node, 0, len(branches))}
	for _, branch := range branches {
		seq, err := c.sequence(branch, depth)
		if err != nil {
			return nil, err
		}
		alt.Sub = append(alt.Sub, &Node{Op: OpGroup, Sub: seq})
	}
	return alt, nil
}

func charGroup(body []rune) *Node {
	n := &Node{Op: OpCharGroup}
	if len(body) > 0 && body[0] == '^' {
		n.Negated = true
		body = body[1:]
	}
	n.Members = make([]rune, len(body))
	for i, r := range body {
		// An invalid input byte decodes to utf8.RuneError; so does a raw
		// pattern byte here.
		if r >= rawByte {
			r = utf8.RuneError
		}
		n.Members[i] = r
	}
	return n
}

// classEnd returns the index of the ']' closing the bracket expression that
// opens at src[open]. If there is none it returns len(src) and false.
func classEnd(src []rune, open int) (int, bool) {
	i := open + 1
	if i < len(src) && src[i] == '^' {
		i++
	}
	for ; i < len(src); i++ {
		if src[i] == ']' {
			return i, true
		}
	}
	return len(src), false
}

// groupEnd returns the index of the ')' closing the group that opens at
// src[open]. Escaped characters and bracket expressions are skipped. If the
// group is unterminated it returns len(src) and false.
func groupEnd(src []rune, open int) (int, bool) {
	depth := 0
	for i := open; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case '[':
			i, _ = classEnd(src, i)
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return len(src), false
}

// splitBranches splits a group body on '|' at nesting depth zero.
func splitBranches(body []rune) [][]rune {
	var (
		branches [][]rune
		start    int
		depth    int
	)
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			i++
		case '[':
			i, _ = classEnd(body, i)
		case '(':
			depth++
		case ')':
			depth--
		case '|':
			if depth == 0 {
				branches = append(branches, body[start:i])
				start = i + 1
			}
		}
	}
	return append(branches, body[start:])
}
