package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// highlighter colors match spans and file names. A disabled highlighter
// returns its input unchanged.
type highlighter struct {
	match *color.Color
	file  *color.Color
}

// newHighlighter resolves mode (auto, always or never) against out.
func newHighlighter(mode string, out io.Writer) *highlighter {
	h := &highlighter{
		match: color.New(color.FgRed, color.Bold),
		file:  color.New(color.FgMagenta),
	}
	if useColor(mode, out) {
		h.match.EnableColor()
		h.file.EnableColor()
	} else {
		h.match.DisableColor()
		h.file.DisableColor()
	}
	return h
}

func useColor(mode string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if color.NoColor {
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// line returns s with the span loc highlighted.
func (h *highlighter) line(s string, loc []int) string {
	if loc == nil || loc[0] == loc[1] {
		return s
	}
	return s[:loc[0]] + h.match.Sprint(s[loc[0]:loc[1]]) + s[loc[1]:]
}

func (h *highlighter) name(s string) string {
	return h.file.Sprint(s)
}
