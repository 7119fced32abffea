// Package minigrep matches single lines of text against a small
// grep-style pattern language.
//
// The language covers:
//   - literal characters, and \ to escape any metacharacter
//   - . (any character), \d (ASCII digit), \w (letter, digit or _)
//   - [abc] and [^abc] character groups
//   - + (one or more) and ? (zero or one), both greedy
//   - ^ and $ anchors
//   - (...) capturing groups, (a|b) alternation inside a group
//   - \1 to \9 backreferences
//
// Matching is a limited backtracking search: quantifiers never give back
// what they consumed, and an alternation commits to the first branch that
// matches. Patterns therefore behave differently from Perl or stdlib regexp
// in a few cases; `a+a` does not match "aaa".
//
// Compilation is lenient by default. A malformed pattern such as `(abc` or
// `[abc` still compiles, to the closest well-formed reading. Strict mode
// (Config.Strict) rejects such patterns with a *syntax.Error.
//
// Basic usage:
//
//	if minigrep.MatchLine("I have a dog", `(cat|dog)`) {
//	    fmt.Println("matched!")
//	}
//
//	re := minigrep.MustCompile(`(\w+) \1`)
//	fmt.Println(re.FindStringSubmatch("say hello hello")) // [hello hello hello]
package minigrep

import (
	"github.com/coregx/minigrep/meta"
	"github.com/coregx/minigrep/syntax"
)

// Regex represents a compiled pattern.
//
// A Regex is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	re := minigrep.MustCompile(`hello`)
//	if re.MatchString("hello world") {
//	    println("matched!")
//	}
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Config controls compilation and search. See meta.Config for its fields.
type Config = meta.Config

// MatchLine reports whether pattern matches anywhere in input.
//
// The pattern is compiled leniently with the default configuration. The
// only pattern lenient compilation rejects is one that nests groups more
// than 100 deep; MatchLine reports false for it.
func MatchLine(input, pattern string) bool {
	re, err := Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(input)
}

// Compile compiles a pattern with the default configuration.
//
// Example:
//
//	re, err := minigrep.Compile(`\d+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, meta.DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
//
// Example:
//
//	var pairRegex = minigrep.MustCompile(`(\w+)=(\w+)`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("minigrep: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with a custom configuration.
//
// Example:
//
//	config := minigrep.DefaultConfig()
//	config.Strict = true
//	re, err := minigrep.CompileWithConfig(`(abc`, config) // error: missing closing )
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// QuoteMeta returns a string that escapes all pattern metacharacters inside
// the argument text; the returned string is a pattern matching the literal
// text.
//
// Example:
//
//	escaped := minigrep.QuoteMeta("1+1=2?")
//	// escaped = `1\+1=2\?`
func QuoteMeta(s string) string {
	const special = `\.+?()|[]^$`

	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}

// MatchString reports whether the pattern matches anywhere in s.
func (r *Regex) MatchString(s string) bool {
	return r.engine.IsMatch(s)
}

// Match reports whether the pattern matches anywhere in b.
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(string(b))
}

// FindString returns the text of the first match in s, or "" if there is
// none. Use FindStringIndex to tell an empty match from no match.
func (r *Regex) FindString(s string) string {
	m := r.engine.Find(s)
	if m == nil {
		return ""
	}
	return m.String()
}

// FindStringIndex returns a two-element slice holding the byte offsets of
// the first match in s, or nil if there is none.
//
// Example:
//
//	re := minigrep.MustCompile(`\d+`)
//	loc := re.FindStringIndex("age: 42") // [5 7]
func (r *Regex) FindStringIndex(s string) []int {
	m := r.engine.Find(s)
	if m == nil {
		return nil
	}
	return []int{m.Start(), m.End()}
}

// FindStringSubmatch returns the text of the first match in s followed by
// the text of each group, or nil if there is no match. A group that did not
// participate in the match is "".
//
// Example:
//
//	re := minigrep.MustCompile(`(\w+)=(\w+)`)
//	re.FindStringSubmatch("key=value") // ["key=value" "key" "value"]
func (r *Regex) FindStringSubmatch(s string) []string {
	m := r.engine.Find(s)
	if m == nil {
		return nil
	}
	return m.Groups()
}

// FindStringSubmatchIndex returns the byte offset pairs of the first match
// and each group, or nil if there is no match. A group that did not
// participate is reported as -1, -1.
func (r *Regex) FindStringSubmatchIndex(s string) []int {
	m := r.engine.Find(s)
	if m == nil {
		return nil
	}
	return m.Slots()
}

// NumSubexp returns the number of parenthesized groups in the pattern.
func (r *Regex) NumSubexp() int {
	return r.engine.NumCaptures()
}

// String returns the source text used to compile the pattern.
func (r *Regex) String() string {
	return r.pattern
}

// Pattern returns the compiled syntax tree the engine matches with.
func (r *Regex) Pattern() *syntax.Pattern {
	return r.engine.Pattern()
}

// Strategy returns the search strategy chosen for the pattern.
func (r *Regex) Strategy() meta.Strategy {
	return r.engine.Strategy()
}

// Stats returns the engine's execution statistics.
func (r *Regex) Stats() meta.Stats {
	return r.engine.Stats()
}
