package main

import "errors"

// Sentinel errors reported by the command.
var (
	ErrCompile   = errors.New("invalid pattern")
	ErrConfig    = errors.New("invalid config file")
	ErrReadInput = errors.New("failed to read input")
)
