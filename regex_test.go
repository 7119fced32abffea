package minigrep

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/coregx/minigrep/meta"
	"github.com/coregx/minigrep/syntax"
)

// TestMatchLine covers the documented behavior of the pattern language.
func TestMatchLine(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"digits", `\d+`, "abc123", true},
		{"anchored digits", `^\d+$`, "123abc", false},
		{"negated group rejects", `[^xyz]`, "x", false},
		{"negated group accepts", `[^xyz]`, "a", true},
		{"alternation", `(cat|dog)`, "I have a dog", true},
		{"backreference", `(\w+) \1`, "hello hello", true},
		{"backreference mismatch", `(\w+) \1`, "hello world", false},
		{"optional absent", `a?b`, "b", true},
		{"optional present", `a?b`, "ab", true},
		// Unanchored patterns are substring searches, so "cb" matches at
		// offset 1 where a? takes nothing.
		{"optional unanchored matches substring", `a?b`, "cb", true},
		{"anchored optional", `^a?b`, "cb", false},

		{"literal", `apple`, "pineapple", true},
		{"literal missing", `apple`, "orange", false},
		{"any", `c.t`, "cut", true},
		{"any needs a char", `c.t`, "ct", false},
		{"word underscore", `\w`, "_", true},
		{"word punctuation", `\w`, "!?", false},
		{"digit", `\d`, "abc", false},
		{"positive group", `[abc]`, "xxb", true},
		{"start anchor", `^log`, "logs", true},
		{"start anchor elsewhere", `^log`, "slog", false},
		{"end anchor", `dog$`, "hotdog", true},
		{"end anchor elsewhere", `dog$`, "dogs", false},
		{"whole line", `^abc$`, "abc", true},
		{"one or more", `ca+t`, "caaat", true},
		{"one or more needs one", `ca+t`, "ct", false},
		{"greedy does not give back", `a+a`, "aaa", false},
		{"alternation commits", `(a|ab)c`, "abc", false},
		{"alternation order", `(ab|a)c`, "abc", true},
		{"nested groups", `((a)b)\2`, "aba", true},
		{"group quantifier", `(ab)+c`, "ababc", true},
		{"three branches", `(red|green|blue) car`, "a green car", true},
		{"escaped metachar", `1\+1`, "1+1=2", true},
		{"escaped metachar literal only", `1\+1`, "11", false},
		{"unset backreference", `(a)?\1b`, "b", false},
		{"empty pattern", ``, "anything", true},
		{"empty pattern empty input", ``, "", true},
		{"unicode word", `\w+`, "日本語", true},
		{"unicode digit is not \\d", `\d`, "٣", false},
		{"unicode any", `^.$`, "é", true},

		{"lenient unclosed group", `(abc`, "xabc", true},
		{"lenient unclosed class", `[abc`, "b", true},
		{"lenient stray paren", `abc)`, "abc)", true},
		{"lenient leading quantifier", `+a`, "+a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchLine(tt.input, tt.pattern); got != tt.want {
				t.Errorf("MatchLine(%q, %q) = %v, want %v", tt.input, tt.pattern, got, tt.want)
			}
		})
	}
}

// Pattern bytes that are not valid UTF-8 match the same raw bytes in the
// input, and never the middle of a valid character.
func TestMatchLineInvalidUTF8(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"\xe9", "caf\xe9", true},
		{"\xe9", "café", false},
		{"caf\xe9$", "caf\xe9", true},
		{"[\xe9]", "caf\xe9", true},
		{"[\xe9]", "café", false},
		{"\xa9", "café", false},
		{"\xa9", "\xa9x", true},
		{"(\xe9|\xff)+x", "a\xff\xe9x", true},
	}

	off := DefaultConfig()
	off.EnablePrefilter = false

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q/%q", tt.pattern, tt.input), func(t *testing.T) {
			if got := MatchLine(tt.input, tt.pattern); got != tt.want {
				t.Errorf("MatchLine(%q, %q) = %v, want %v", tt.input, tt.pattern, got, tt.want)
			}
			re, err := CompileWithConfig(tt.pattern, off)
			if err != nil {
				t.Fatal(err)
			}
			if got := re.MatchString(tt.input); got != tt.want {
				t.Errorf("without prefilter = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchLineTooDeep(t *testing.T) {
	pattern := strings.Repeat("(", 101) + "a" + strings.Repeat(")", 101)
	if MatchLine("a", pattern) {
		t.Error("MatchLine should report false for a pattern nesting 101 groups")
	}

	pattern = strings.Repeat("(", 100) + "a" + strings.Repeat(")", 100)
	if !MatchLine("a", pattern) {
		t.Error("MatchLine should accept a pattern nesting 100 groups")
	}
}

func TestCompileStrict(t *testing.T) {
	tests := []struct {
		pattern string
		code    syntax.ErrorCode
	}{
		{`(abc`, syntax.ErrMissingParen},
		{`abc)`, syntax.ErrUnexpectedParen},
		{`[abc`, syntax.ErrMissingBracket},
		{`abc\`, syntax.ErrTrailingBackslash},
		{`+a`, syntax.ErrMissingRepeatArgument},
		{`a+?`, syntax.ErrInvalidNestedRepeat},
		{`(a)\2`, syntax.ErrInvalidBackref},
	}

	config := DefaultConfig()
	config.Strict = true

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if _, err := Compile(tt.pattern); err != nil {
				t.Fatalf("lenient Compile(%q) error: %v", tt.pattern, err)
			}

			re, err := CompileWithConfig(tt.pattern, config)
			if re != nil {
				t.Errorf("strict CompileWithConfig(%q) returned a Regex", tt.pattern)
			}
			var synErr *syntax.Error
			if !errors.As(err, &synErr) {
				t.Fatalf("error = %v, want *syntax.Error", err)
			}
			if synErr.Code != tt.code {
				t.Errorf("Code = %q, want %q", synErr.Code, tt.code)
			}
		})
	}
}

func TestCompileInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.MaxLiterals = 0

	_, err := CompileWithConfig(`abc`, config)
	var cfgErr *meta.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want *meta.ConfigError", err)
	}
	if cfgErr.Field != "MaxLiterals" {
		t.Errorf("Field = %q, want MaxLiterals", cfgErr.Field)
	}
}

func TestMustCompilePanics(t *testing.T) {
	pattern := strings.Repeat("(", 101)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustCompile() did not panic")
		}
		msg, ok := r.(string)
		if !ok || !strings.HasPrefix(msg, "minigrep: Compile(`") {
			t.Errorf("panic = %v, want minigrep: Compile(...) message", r)
		}
	}()
	MustCompile(pattern)
}

func TestFind(t *testing.T) {
	tests := []struct {
		pattern   string
		input     string
		wantIndex []int
		wantText  string
		wantSub   []string
	}{
		{`\d+`, "age: 42 years", []int{5, 7}, "42", []string{"42"}},
		{`(cat|dog)`, "I have a dog", []int{9, 12}, "dog", []string{"dog", "dog"}},
		{`(\w+)=(\w+)`, "set key=value now", []int{4, 13}, "key=value", []string{"key=value", "key", "value"}},
		{`(x)?y`, "y", []int{0, 1}, "y", []string{"y", ""}},
		{`a?`, "bbb", []int{0, 0}, "", []string{""}},
		{`z`, "abc", nil, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re := MustCompile(tt.pattern)
			if got := re.FindStringIndex(tt.input); !reflect.DeepEqual(got, tt.wantIndex) {
				t.Errorf("FindStringIndex(%q) = %v, want %v", tt.input, got, tt.wantIndex)
			}
			if got := re.FindString(tt.input); got != tt.wantText {
				t.Errorf("FindString(%q) = %q, want %q", tt.input, got, tt.wantText)
			}
			if got := re.FindStringSubmatch(tt.input); !reflect.DeepEqual(got, tt.wantSub) {
				t.Errorf("FindStringSubmatch(%q) = %q, want %q", tt.input, got, tt.wantSub)
			}
		})
	}
}

func TestFindStringSubmatchIndex(t *testing.T) {
	re := MustCompile(`(a)|(b)`)
	// Top-level | is literal, so this pattern is the group (a) followed by "|(b)".
	if got := re.FindStringSubmatchIndex("a|b"); !reflect.DeepEqual(got, []int{0, 3, 0, 1, 2, 3}) {
		t.Errorf("FindStringSubmatchIndex = %v", got)
	}

	re = MustCompile(`x(y)?`)
	if got := re.FindStringSubmatchIndex("x"); !reflect.DeepEqual(got, []int{0, 1, -1, -1}) {
		t.Errorf("FindStringSubmatchIndex = %v, want [0 1 -1 -1]", got)
	}
	if got := re.FindStringSubmatchIndex("none"); got != nil {
		t.Errorf("FindStringSubmatchIndex = %v, want nil", got)
	}
}

func TestMatchBytes(t *testing.T) {
	re := MustCompile(`\d`)
	if !re.Match([]byte("a1")) {
		t.Error("Match([]byte(a1)) = false")
	}
	if re.Match(nil) {
		t.Error("Match(nil) = true")
	}
}

func TestRegexAccessors(t *testing.T) {
	re := MustCompile(`^(a)(b(c))$`)
	if re.NumSubexp() != 3 {
		t.Errorf("NumSubexp() = %d, want 3", re.NumSubexp())
	}
	if re.String() != `^(a)(b(c))$` {
		t.Errorf("String() = %q", re.String())
	}
	if got := re.Pattern().String(); got != `^(a)(b(c))$` {
		t.Errorf("Pattern().String() = %q", got)
	}
	if re.Pattern().NumGroups != 3 {
		t.Errorf("Pattern().NumGroups = %d, want 3", re.Pattern().NumGroups)
	}
	if re.Strategy() != meta.UseAnchoredBoth {
		t.Errorf("Strategy() = %s, want UseAnchoredBoth", re.Strategy())
	}
	re.MatchString("abc")
	if re.Stats().Searches != 1 {
		t.Errorf("Stats().Searches = %d, want 1", re.Stats().Searches)
	}
}

func TestQuoteMeta(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello", "hello"},
		{"1+1=2?", `1\+1=2\?`},
		{"(a|b)", `\(a\|b\)`},
		{"[x]", `\[x\]`},
		{"^$", `\^\$`},
		{`a.b\c`, `a\.b\\c`},
		{"*{}", "*{}"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := QuoteMeta(tt.input)
			if got != tt.want {
				t.Errorf("QuoteMeta(%q) = %q, want %q", tt.input, got, tt.want)
			}

			config := DefaultConfig()
			config.Strict = true
			re, err := CompileWithConfig(`^`+got+`$`, config)
			if err != nil {
				t.Fatalf("quoted pattern %q does not compile strictly: %v", got, err)
			}
			if !re.MatchString(tt.input) {
				t.Errorf("quoted pattern %q does not match %q", got, tt.input)
			}
		})
	}
}
