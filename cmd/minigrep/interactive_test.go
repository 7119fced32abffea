package main

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/chzyer/readline"

	"github.com/coregx/minigrep"
)

// scriptedReader replays lines, then the final error.
type scriptedReader struct {
	lines  []string
	errs   map[int]error
	end    error
	pos    int
	closed bool
}

func (r *scriptedReader) Readline() (string, error) {
	if err, ok := r.errs[r.pos]; ok {
		delete(r.errs, r.pos)
		return "", err
	}
	if r.pos >= len(r.lines) {
		return "", r.end
	}
	line := r.lines[r.pos]
	r.pos++
	return line, nil
}

func (r *scriptedReader) Close() error {
	r.closed = true
	return nil
}

func TestRunInteractive(t *testing.T) {
	re := minigrep.MustCompile(`(cat|dog)`)
	hl := newHighlighter("never", io.Discard)
	logger := newLogger(io.Discard, false)

	t.Run("lines until EOF", func(t *testing.T) {
		r := &scriptedReader{
			lines: []string{"I have a dog", "no pets"},
			errs:  map[int]error{1: readline.ErrInterrupt},
			end:   io.EOF,
		}
		var out bytes.Buffer
		err := runInteractive(func() (lineReader, error) { return r, nil }, re, hl, &out, logger)
		assert.NoError(t, err)
		assert.Equal(t, "match: I have a dog\nno match\n\n", out.String())
		assert.True(t, r.closed)
	})

	t.Run("read error", func(t *testing.T) {
		boom := errors.New("terminal gone")
		r := &scriptedReader{end: boom}
		err := runInteractive(func() (lineReader, error) { return r, nil }, re, hl, io.Discard, logger)
		assert.IsError(t, err, ErrReadInput)
		assert.IsError(t, err, boom)
	})

	t.Run("open error", func(t *testing.T) {
		boom := errors.New("no tty")
		err := runInteractive(func() (lineReader, error) { return nil, boom }, re, hl, io.Discard, logger)
		assert.IsError(t, err, boom)
	})
}
