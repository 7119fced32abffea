package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/coregx/minigrep"
)

// fileConfig is the YAML form of the engine configuration. Fields left out
// of the file keep the value they already have.
type fileConfig struct {
	Strict            *bool `yaml:"strict"`
	Prefilter         *bool `yaml:"prefilter"`
	MaxRecursionDepth *int  `yaml:"max_recursion_depth"`
	MinLiteralLen     *int  `yaml:"min_literal_len"`
	MaxLiterals       *int  `yaml:"max_literals"`
}

// loadConfig reads the YAML file at path over base and validates the result.
func loadConfig(path string, base minigrep.Config) (minigrep.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return parseConfig(data, base)
}

func parseConfig(data []byte, base minigrep.Config) (minigrep.Config, error) {
	var fc fileConfig
	if err := yaml.UnmarshalWithOptions(data, &fc, yaml.Strict()); err != nil {
		return base, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	config := base
	if fc.Strict != nil {
		config.Strict = *fc.Strict
	}
	if fc.Prefilter != nil {
		config.EnablePrefilter = *fc.Prefilter
	}
	if fc.MaxRecursionDepth != nil {
		config.MaxRecursionDepth = *fc.MaxRecursionDepth
	}
	if fc.MinLiteralLen != nil {
		config.MinLiteralLen = *fc.MinLiteralLen
	}
	if fc.MaxLiterals != nil {
		config.MaxLiterals = *fc.MaxLiterals
	}

	if err := config.Validate(); err != nil {
		return base, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return config, nil
}
