package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPatternString(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{`abc`, `abc`},
		{`^\d+$`, `^\d+$`},
		{`[^xyz]a?`, `[^xyz]a?`},
		{`(cat|dog)s`, `(cat|dog)s`},
		{`(\w+) \1`, `(\w+) \1`},
		{`a\.b`, `a\.b`},
		{`a|b`, `a\|b`},
		{`+x`, `\+x`},
		{`(ab`, `(ab)`},
	}
	for _, tt := range tests {
		p := MustCompile(tt.expr, 0)
		if got := p.String(); got != tt.want {
			t.Errorf("Compile(%q).String() = %q, want %q", tt.expr, got, tt.want)
		}
	}
}

// TestPatternStringRecompiles checks that rendering and recompiling yields
// the same tree for patterns whose literals are not split by escapes.
func TestPatternStringRecompiles(t *testing.T) {
	for _, expr := range []string{
		`^(\w+)-(\d+)$`,
		`[abc]+x?`,
		`((a|b)c)\2`,
		`.+end`,
	} {
		p := MustCompile(expr, 0)
		again := MustCompile(p.String(), 0)
		if diff := cmp.Diff(p.Nodes, again.Nodes, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%q does not survive a round trip (-first +second):\n%s", expr, diff)
		}
	}
}

func TestMaxDepth(t *testing.T) {
	tests := []struct {
		expr string
		want int
	}{
		{`abc`, 0},
		{`(a)`, 1},
		{`(a)(b)`, 1},
		{`((a)|(b(c)))`, 3},
		{`((a))+`, 2},
	}
	for _, tt := range tests {
		if got := MustCompile(tt.expr, 0).MaxDepth(); got != tt.want {
			t.Errorf("MaxDepth(%q) = %d, want %d", tt.expr, got, tt.want)
		}
	}
}

func TestNodeContains(t *testing.T) {
	n := class("abc", false)
	if !n.Contains('b') || n.Contains('x') {
		t.Errorf("[abc] membership wrong")
	}
	neg := class("abc", true)
	if neg.Contains('b') || !neg.Contains('x') {
		t.Errorf("[^abc] membership wrong")
	}
}

func TestOpString(t *testing.T) {
	if got := OpAlternation.String(); got != "Alternation" {
		t.Errorf("OpAlternation.String() = %q", got)
	}
	if got := Op(200).String(); got != "Op(200)" {
		t.Errorf("Op(200).String() = %q", got)
	}
}
