package meta

import "github.com/coregx/minigrep/syntax"

// Strategy represents the choice of offsets at which the matcher is run.
//
// Strategy selection is automatic and depends only on the anchors of the
// pattern's top-level sequence.
type Strategy int

const (
	// UseSearch tries every offset from 0 through len(input), in order.
	// The first offset that matches wins.
	// Selected when the pattern begins with no Start anchor and ends with
	// no End anchor.
	UseSearch Strategy = iota

	// UseAnchoredStart tries offset 0 only, as a line start. Input after
	// the match is allowed.
	// Selected for patterns that begin with ^ and do not end with $.
	UseAnchoredStart

	// UseAnchoredEnd tries every offset like UseSearch; the trailing End
	// anchor makes every match consume the rest of the line.
	// Selected for patterns that end with $ and do not begin with ^.
	UseAnchoredEnd

	// UseAnchoredBoth tries offset 0 only; the match must consume the
	// whole line.
	// Selected for patterns that begin with ^ and end with $.
	UseAnchoredBoth
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseSearch:
		return "UseSearch"
	case UseAnchoredStart:
		return "UseAnchoredStart"
	case UseAnchoredEnd:
		return "UseAnchoredEnd"
	case UseAnchoredBoth:
		return "UseAnchoredBoth"
	default:
		return "Unknown"
	}
}

// Anchored reports whether the strategy makes a single attempt at offset 0.
func (s Strategy) Anchored() bool {
	return s == UseAnchoredStart || s == UseAnchoredBoth
}

// SelectStrategy returns the strategy for p.
func SelectStrategy(p *syntax.Pattern) Strategy {
	start, end := p.AnchoredStart(), p.AnchoredEnd()
	switch {
	case start && end:
		return UseAnchoredBoth
	case start:
		return UseAnchoredStart
	case end:
		return UseAnchoredEnd
	default:
		return UseSearch
	}
}
