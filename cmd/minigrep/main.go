// Command minigrep prints the lines of its input that match a pattern.
//
// Usage:
//
//	minigrep [flags] -E <pattern> [files...]
//
// With no files it reads standard input. The exit status is 0 if any line
// matched, 1 if none did and 2 if an error occurred.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/coregx/minigrep"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

// CLI represents the command-line interface.
type CLI struct {
	Pattern     string   `name:"extended-regexp" short:"E" required:"" placeholder:"PATTERN" help:"Pattern to match against each line"`
	Files       []string `arg:"" optional:"" help:"Files to search; standard input when none are given"`
	Recursive   bool     `short:"r" help:"Search directories recursively"`
	Status      bool     `help:"Print only a status line, Code 0 or Code 1"`
	Strict      bool     `help:"Reject malformed patterns instead of compiling them leniently"`
	Config      string   `help:"YAML file with engine configuration" placeholder:"FILE"`
	Color       string   `enum:"auto,always,never" default:"auto" help:"Highlight matches (auto, always, never)"`
	Interactive bool     `short:"i" help:"Read lines from an interactive prompt"`
	Verbose     bool     `short:"v" help:"Enable debug logging"`
}

// kongExit carries an exit request from kong out of the parser.
type kongExit int

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses args and executes the command, returning the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("minigrep"),
		kong.Description("Print lines that match a pattern."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(status int) { panic(kongExit(status)) }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "minigrep: %v\n", err)
		return exitError
	}

	defer func() {
		if r := recover(); r != nil {
			status, ok := r.(kongExit)
			if !ok {
				panic(r)
			}
			code = int(status)
		}
	}()

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "minigrep: %v\n", err)
		return exitError
	}

	logger := newLogger(stderr, cli.Verbose)
	code, err = cli.Run(logger, stdin, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "minigrep: %v\n", err)
		return exitError
	}
	return code
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Run compiles the pattern and searches every input. Errors that stop the
// whole command are returned; errors on a single file are logged and turn
// the exit status into exitError.
func (c *CLI) Run(logger *slog.Logger, stdin io.Reader, stdout io.Writer) (int, error) {
	config := minigrep.DefaultConfig()
	if c.Config != "" {
		loaded, err := loadConfig(c.Config, config)
		if err != nil {
			return exitError, err
		}
		config = loaded
		logger.Debug("loaded config", "path", c.Config, "config", fmt.Sprintf("%+v", config))
	}
	if c.Strict {
		config.Strict = true
	}

	re, err := minigrep.CompileWithConfig(c.Pattern, config)
	if err != nil {
		return exitError, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	logPattern(logger, re)

	hl := newHighlighter(c.Color, stdout)

	if c.Interactive {
		return exitMatch, runInteractive(newPrompt, re, hl, stdout, logger)
	}

	s := &searcher{
		re:     re,
		hl:     hl,
		out:    stdout,
		logger: logger,
		prefix: len(c.Files) > 1 || c.Recursive,
		quiet:  c.Status,
	}
	if len(c.Files) == 0 {
		s.search("(standard input)", stdin)
	}
	for _, path := range c.Files {
		s.searchPath(path, c.Recursive)
	}

	code := exitNoMatch
	if s.matched {
		code = exitMatch
	}
	if c.Status {
		fmt.Fprintf(stdout, "Code %d\n", code)
	}

	logger.Debug("search finished",
		"lines", s.lines,
		"matches", s.matches,
		"stats", fmt.Sprintf("%+v", re.Stats()),
	)

	if s.failures > 0 {
		return exitError, nil
	}
	return code, nil
}

// logPattern reports how the pattern compiled when debug logging is on.
func logPattern(logger *slog.Logger, re *minigrep.Regex) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	logger.Debug("compiled pattern",
		"pattern", re.String(),
		"ast", re.Pattern().String(),
		"groups", re.NumSubexp(),
		"strategy", re.Strategy().String(),
	)
}
