package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/chzyer/readline"

	"github.com/coregx/minigrep"
)

// lineReader is the subset of *readline.Instance the prompt loop uses.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

// newPrompt opens a readline prompt on the terminal.
func newPrompt() (lineReader, error) {
	return readline.New("minigrep> ")
}

// runInteractive reads lines from a prompt and reports whether each one
// matches, until end of input. An interrupt discards the current line.
func runInteractive(open func() (lineReader, error), re *minigrep.Regex, hl *highlighter, out io.Writer, logger *slog.Logger) error {
	rl, err := open()
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		loc := re.FindStringIndex(line)
		if loc == nil {
			fmt.Fprintln(out, "no match")
			continue
		}
		fmt.Fprintf(out, "match: %s\n", hl.line(line, loc))
		if groups := re.FindStringSubmatch(line); len(groups) > 1 {
			logger.Debug("groups", "values", groups[1:])
		}
	}
}
