package literal

import (
	"unicode/utf8"

	"github.com/coregx/minigrep/syntax"
)

// ExtractorConfig configures literal extraction limits.
//
// Example:
//
//	config := literal.ExtractorConfig{
//	    MaxLiterals:   64,
//	    MaxLiteralLen: 64,
//	    MaxClassSize:  10,
//	}
//	extractor := literal.New(config)
type ExtractorConfig struct {
	// MaxLiterals limits the number of alternative literals. A pattern that
	// would need more yields no literals at all. Default: 64.
	MaxLiterals int

	// MaxLiteralLen truncates longer literals. A truncated literal is never
	// complete. Default: 64.
	MaxLiteralLen int

	// MaxClassSize limits the character groups that are expanded into one
	// literal per member. Default: 10.
	MaxClassSize int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  10,
	}
}

// Extractor extracts prefix literals from compiled patterns.
//
// Example:
//
//	p := syntax.MustCompile(`(hello|world)!`, 0)
//	extractor := literal.New(literal.DefaultConfig())
//	prefixes := extractor.ExtractPrefixes(p)
//	// prefixes = ["hello", "world"], neither complete
type Extractor struct {
	config ExtractorConfig
}

// New creates an Extractor.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractPrefixes returns a set of literals such that every match of p
// begins with at least one of them. The result is empty when no such set
// exists within the configured limits, e.g. when the pattern starts with a
// class like \d or an optional element.
//
// Anchors are not considered: a pattern starting with ^ yields no prefixes.
func (e *Extractor) ExtractPrefixes(p *syntax.Pattern) *Seq {
	lits, ok := e.prefixes(p.Nodes)
	if !ok || len(lits) == 0 {
		return NewSeq()
	}
	seq := NewSeq(lits...)
	seq.Minimize()
	return seq
}

// prefixes returns the literals any match of nodes must begin with.
func (e *Extractor) prefixes(nodes []*syntax.Node) ([]Literal, bool) {
	if len(nodes) == 0 {
		return nil, false
	}
	first := nodes[0]
	whole := len(nodes) == 1

	var (
		lits []Literal
		ok   bool
	)
	switch first.Op {
	case syntax.OpLiteral:
		return []Literal{e.literal(first.Text, whole)}, true

	case syntax.OpCharGroup:
		if first.Negated || len(first.Members) == 0 || len(first.Members) > e.config.MaxClassSize {
			return nil, false
		}
		lits = make([]Literal, 0, len(first.Members))
		for _, r := range first.Members {
			// RuneError stands for any invalid input byte.
			if r == utf8.RuneError {
				return nil, false
			}
			lits = append(lits, e.literal(string(r), whole))
		}
		ok = true

	case syntax.OpGroup:
		if len(first.Sub) == 0 {
			return e.prefixes(nodes[1:])
		}
		lits, ok = e.prefixes(first.Sub)

	case syntax.OpAlternation:
		for _, branch := range first.Sub {
			branchLits, branchOK := e.prefixes(branch.Sub)
			if !branchOK {
				return nil, false
			}
			lits = append(lits, branchLits...)
		}
		ok = len(lits) > 0

	case syntax.OpOneOrMore:
		lits, ok = e.prefixes(first.Sub[:1])
		whole = false

	default:
		return nil, false
	}

	if !ok || len(lits) > e.config.MaxLiterals {
		return nil, false
	}
	if !whole {
		for i := range lits {
			lits[i].Complete = false
		}
	}
	return lits, true
}

func (e *Extractor) literal(text string, complete bool) Literal {
	b := []byte(text)
	if len(b) > e.config.MaxLiteralLen {
		b = b[:e.config.MaxLiteralLen]
		complete = false
	}
	return NewLiteral(b, complete)
}
