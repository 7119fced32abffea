package meta

import (
	"testing"

	"github.com/coregx/minigrep/syntax"
)

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		pattern  string
		want     Strategy
		anchored bool
	}{
		{`abc`, UseSearch, false},
		{`^abc`, UseAnchoredStart, true},
		{`abc$`, UseAnchoredEnd, false},
		{`^abc$`, UseAnchoredBoth, true},
		{`\^abc\$`, UseSearch, false},
		{`[$]`, UseSearch, false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := SelectStrategy(syntax.MustCompile(tt.pattern, 0))
			if got != tt.want {
				t.Errorf("SelectStrategy(%q) = %s, want %s", tt.pattern, got, tt.want)
			}
			if got.Anchored() != tt.anchored {
				t.Errorf("%s.Anchored() = %v, want %v", got, got.Anchored(), tt.anchored)
			}
		})
	}
}

func TestStrategyString(t *testing.T) {
	tests := []struct {
		strategy Strategy
		want     string
	}{
		{UseSearch, "UseSearch"},
		{UseAnchoredStart, "UseAnchoredStart"},
		{UseAnchoredEnd, "UseAnchoredEnd"},
		{UseAnchoredBoth, "UseAnchoredBoth"},
		{Strategy(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.strategy.String(); got != tt.want {
			t.Errorf("Strategy(%d).String() = %q, want %q", int(tt.strategy), got, tt.want)
		}
	}
}
