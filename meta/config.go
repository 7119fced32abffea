// Package meta implements the engine that decides where in a line the
// backtracking matcher is run.
//
// The engine coordinates two components:
//   - Prefilter: fast literal search that skips offsets which cannot begin
//     a match (optional)
//   - Matcher: the recursive backtracking matcher from package backtrack
//
// Strategy selection is based on the pattern's anchors. A pattern that
// begins with ^ is tried once at offset 0; any other pattern is tried at
// every offset, first match wins.
//
// The engine is the layer the public API is built on; it hides strategy
// selection and per-search state from callers.
package meta

import "fmt"

// Config controls engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // try every offset
//	engine, err := meta.CompileWithConfig(`(cat|dog)s`, config)
type Config struct {
	// Strict rejects malformed patterns instead of compiling them
	// leniently.
	// Default: false
	Strict bool

	// EnablePrefilter enables literal-based prefiltering.
	// When false, no prefilter is used even if literals are available.
	// Default: true
	EnablePrefilter bool

	// MaxRecursionDepth limits group nesting at compile time. The matcher
	// recurses once per nesting level.
	// Default: 100
	MaxRecursionDepth int

	// MinLiteralLen is the minimum length of every prefilter literal.
	// A prefix set with a shorter literal builds no prefilter.
	// Default: 1
	MinLiteralLen int

	// MaxLiterals limits the number of literals extracted for prefiltering.
	// Default: 64
	MaxLiterals int
}

// DefaultConfig returns a configuration with the default settings: lenient
// compilation, prefilter enabled, nesting limited to 100 levels.
func DefaultConfig() Config {
	return Config{
		Strict:            false,
		EnablePrefilter:   true,
		MaxRecursionDepth: 100,
		MinLiteralLen:     1,
		MaxLiterals:       64,
	}
}

// Validate checks if the configuration is valid.
// Returns a *ConfigError if any parameter is out of range.
//
// Valid ranges:
//   - MaxRecursionDepth: 1 to 1,000
//   - MinLiteralLen: 1 to 64 (checked only when EnablePrefilter is set)
//   - MaxLiterals: 1 to 1,000 (checked only when EnablePrefilter is set)
func (c Config) Validate() error {
	if c.MaxRecursionDepth < 1 || c.MaxRecursionDepth > 1_000 {
		return &ConfigError{
			Field:   "MaxRecursionDepth",
			Message: "must be between 1 and 1,000",
		}
	}

	if c.EnablePrefilter {
		if c.MinLiteralLen < 1 || c.MinLiteralLen > 64 {
			return &ConfigError{
				Field:   "MinLiteralLen",
				Message: "must be between 1 and 64",
			}
		}
		if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
			return &ConfigError{
				Field:   "MaxLiterals",
				Message: "must be between 1 and 1,000",
			}
		}
	}

	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("minigrep: invalid config: %s: %s", e.Field, e.Message)
}
