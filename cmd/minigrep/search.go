package main

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/coregx/minigrep"
)

// maxLineLen bounds a single input line.
const maxLineLen = 16 << 20

// searcher prints the matching lines of each input it is given and
// remembers whether anything matched or failed.
type searcher struct {
	re     *minigrep.Regex
	hl     *highlighter
	out    io.Writer
	logger *slog.Logger

	prefix bool // print "name:" before each line
	quiet  bool // print nothing per line

	matched  bool
	failures int
	lines    int
	matches  int
}

// searchPath searches a file, or with recursive a directory tree.
func (s *searcher) searchPath(path string, recursive bool) {
	info, err := os.Stat(path)
	if err != nil {
		s.fail(path, err)
		return
	}
	if !info.IsDir() {
		s.searchFile(path)
		return
	}
	if !recursive {
		s.fail(path, fmt.Errorf("is a directory"))
		return
	}

	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			s.fail(p, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			s.searchFile(p)
		}
		return nil
	})
	if err != nil {
		s.fail(path, err)
	}
}

func (s *searcher) searchFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		s.fail(path, err)
		return
	}
	defer f.Close()

	s.search(path, f)
}

// search scans r line by line.
func (s *searcher) search(name string, r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineLen)

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		s.lines++

		loc := s.re.FindStringIndex(line)
		if loc == nil {
			continue
		}
		s.matched = true
		s.matches++
		if s.quiet {
			continue
		}

		if s.prefix {
			fmt.Fprint(s.out, s.hl.name(name), ":")
		}
		fmt.Fprintln(s.out, s.hl.line(line, loc))
	}
	if err := scanner.Err(); err != nil {
		s.fail(name, err)
	}
}

func (s *searcher) fail(name string, err error) {
	s.failures++
	s.logger.Error("skipping input", "name", name, "error", fmt.Errorf("%w: %w", ErrReadInput, err))
}
