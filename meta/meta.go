package meta

import (
	"sync/atomic"
	"unicode/utf8"

	"github.com/coregx/minigrep/backtrack"
	"github.com/coregx/minigrep/literal"
	"github.com/coregx/minigrep/prefilter"
	"github.com/coregx/minigrep/syntax"
)

// Engine runs a compiled pattern against single lines of input.
//
// The Engine:
//  1. Selects a strategy from the pattern's anchors
//  2. Extracts literal prefixes and builds a prefilter (if any apply)
//  3. Runs the backtracking matcher at every offset the strategy allows
//
// Thread safety: the pattern, matcher and prefilter are immutable after
// compilation. Per-search capture tables come from a sync.Pool, so one
// Engine can be used from multiple goroutines concurrently.
//
// Example:
//
//	engine, err := meta.Compile(`(cat|dog)s`)
//	if err != nil {
//	    return err
//	}
//	if m := engine.Find("two dogs"); m != nil {
//	    println(m.String()) // "dogs"
//	}
type Engine struct {
	// stats must stay the first field so its uint64 counters are 8-byte
	// aligned for atomic access on 32-bit platforms.
	stats Stats

	pattern   *syntax.Pattern
	matcher   *backtrack.Matcher
	prefilter prefilter.Prefilter
	strategy  Strategy
	config    Config
	pool      *searchStatePool
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// Searches counts calls to IsMatch and Find.
	Searches uint64

	// Attempts counts matcher runs, one per offset tried.
	Attempts uint64

	// PrefilterCandidates counts offsets reported by the prefilter.
	PrefilterCandidates uint64

	// PrefilterMisses counts searches the prefilter ended without running
	// the matcher at any further offset.
	PrefilterMisses uint64

	// PrefilterAbandoned counts searches in which the prefilter was retired
	// for skipping too few offsets.
	PrefilterAbandoned uint64
}

// Compile compiles a pattern with the default configuration.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with a custom configuration.
//
// Returns a *ConfigError if config is invalid, or a *syntax.Error if the
// pattern cannot be compiled.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var flags syntax.Flags
	if config.Strict {
		flags |= syntax.Strict
	}
	p, err := syntax.CompileDepth(pattern, flags, config.MaxRecursionDepth)
	if err != nil {
		return nil, err
	}
	return NewEngine(p, config), nil
}

// NewEngine builds an engine for an already compiled pattern. config must
// be valid; its compile-time fields are ignored.
func NewEngine(p *syntax.Pattern, config Config) *Engine {
	strategy := SelectStrategy(p)

	var pf prefilter.Prefilter
	if config.EnablePrefilter && !strategy.Anchored() {
		pf = buildPrefilter(p, config)
	}

	return &Engine{
		pattern:   p,
		matcher:   backtrack.New(p),
		prefilter: pf,
		strategy:  strategy,
		config:    config,
		pool:      newSearchStatePool(p.NumGroups, pf),
	}
}

func buildPrefilter(p *syntax.Pattern, config Config) prefilter.Prefilter {
	extractorConfig := literal.DefaultConfig()
	extractorConfig.MaxLiterals = config.MaxLiterals

	prefixes := literal.New(extractorConfig).ExtractPrefixes(p)
	if prefixes.IsEmpty() || prefixes.MinLen() < config.MinLiteralLen {
		return nil
	}
	// The offset loop never starts inside a valid character, so a prefix
	// that begins with a continuation byte could report offsets it skips.
	for i := 0; i < prefixes.Len(); i++ {
		if !utf8.RuneStart(prefixes.Get(i).Bytes[0]) {
			return nil
		}
	}
	return prefilter.NewBuilder(prefixes).Build()
}

// Pattern returns the compiled pattern.
func (e *Engine) Pattern() *syntax.Pattern {
	return e.pattern
}

// Strategy returns the execution strategy selected for this engine.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.config
}

// HasPrefilter reports whether the engine skips offsets with a prefilter.
func (e *Engine) HasPrefilter() bool {
	return e.prefilter != nil
}

// NumCaptures returns the number of capture groups in the pattern.
// Group 0 (the entire match) is not counted.
func (e *Engine) NumCaptures() int {
	return e.pattern.NumGroups
}

// Stats returns a snapshot of the execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		Searches:            atomic.LoadUint64(&e.stats.Searches),
		Attempts:            atomic.LoadUint64(&e.stats.Attempts),
		PrefilterCandidates: atomic.LoadUint64(&e.stats.PrefilterCandidates),
		PrefilterMisses:     atomic.LoadUint64(&e.stats.PrefilterMisses),
		PrefilterAbandoned:  atomic.LoadUint64(&e.stats.PrefilterAbandoned),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.Searches, 0)
	atomic.StoreUint64(&e.stats.Attempts, 0)
	atomic.StoreUint64(&e.stats.PrefilterCandidates, 0)
	atomic.StoreUint64(&e.stats.PrefilterMisses, 0)
	atomic.StoreUint64(&e.stats.PrefilterAbandoned, 0)
}

// IsMatch reports whether the pattern matches anywhere in input.
func (e *Engine) IsMatch(input string) bool {
	atomic.AddUint64(&e.stats.Searches, 1)

	// A complete prefilter hit is a match by itself.
	if e.strategy == UseSearch && e.prefilter != nil && e.prefilter.IsComplete() {
		atomic.AddUint64(&e.stats.PrefilterCandidates, 1)
		if e.prefilter.Find([]byte(input), 0) >= 0 {
			return true
		}
		atomic.AddUint64(&e.stats.PrefilterMisses, 1)
		return false
	}

	state := e.pool.get()
	defer e.pool.put(state)
	return e.search(input, state)
}

// Find returns the first match in input, or nil if there is none.
//
// The first match is the one starting at the smallest offset; its extent
// and captures are those of the first successful alignment at that offset.
func (e *Engine) Find(input string) *Match {
	atomic.AddUint64(&e.stats.Searches, 1)

	state := e.pool.get()
	defer e.pool.put(state)
	if !e.search(input, state) {
		return nil
	}
	return NewMatch(input, state.caps.Slots())
}

// search runs the strategy's offset loop, leaving the winning attempt's
// captures in state.caps.
func (e *Engine) search(input string, state *searchState) bool {
	if e.strategy.Anchored() {
		return e.attempt(input, 0, state)
	}

	if state.tracker == nil {
		for at := 0; ; {
			if e.attempt(input, at, state) {
				return true
			}
			if at >= len(input) {
				return false
			}
			_, width := utf8.DecodeRuneInString(input[at:])
			at += width
		}
	}

	haystack := []byte(input)
	wasActive := state.tracker.IsActive()
	defer func() {
		if wasActive && !state.tracker.IsActive() {
			atomic.AddUint64(&e.stats.PrefilterAbandoned, 1)
		}
	}()

	for at := 0; at <= len(input); {
		pos := state.tracker.Find(haystack, at)
		if pos < 0 {
			atomic.AddUint64(&e.stats.PrefilterMisses, 1)
			return false
		}
		if state.tracker.IsActive() {
			atomic.AddUint64(&e.stats.PrefilterCandidates, 1)
		}
		if e.attempt(input, pos, state) {
			return true
		}
		if pos >= len(input) {
			return false
		}
		_, width := utf8.DecodeRuneInString(input[pos:])
		at = pos + width
	}
	return false
}

// attempt runs the matcher at a single offset.
func (e *Engine) attempt(input string, at int, state *searchState) bool {
	atomic.AddUint64(&e.stats.Attempts, 1)
	state.caps.Reset()
	_, ok := e.matcher.Match(input, at, at == 0, state.caps)
	return ok
}
