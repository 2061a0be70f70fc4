/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for blueprint.
package config

import (
	"fmt"

	"bennypowers.dev/blueprint/typography"
	"bennypowers.dev/blueprint/validator"
)

// Config represents the blueprint configuration.
type Config struct {
	// Prefix is the CSS variable prefix used when rendering token names.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Projects lists project files to load (paths or globs).
	Projects []string `yaml:"projects" json:"projects"`

	// Typography is the type scale given to new projects and to project
	// files that omit one.
	Typography typography.ScaleConfig `yaml:"typography" json:"typography"`

	// Heuristics enables non-blocking style warnings during validation.
	Heuristics bool `yaml:"heuristics" json:"heuristics"`

	// Normalize enables normalization suggestions during validation.
	Normalize bool `yaml:"normalize" json:"normalize"`

	// Outputs lists the files written by the convert command when it is
	// given no output flags.
	Outputs []OutputSpec `yaml:"outputs,omitempty" json:"outputs,omitempty"`
}

// OutputSpec describes one convert output.
type OutputSpec struct {
	// Format is the output format, e.g. "css", "typescript", "android".
	Format string `yaml:"format" json:"format"`

	// Path is the output file. A {category} placeholder writes one file
	// per token category.
	Path string `yaml:"path" json:"path"`

	// Prefix overrides the global prefix for this output.
	Prefix string `yaml:"prefix,omitempty" json:"prefix,omitempty"`

	// Delimiter separates key segments in flattened names.
	Delimiter string `yaml:"delimiter,omitempty" json:"delimiter,omitempty"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Typography: typography.DefaultScale(),
	}
}

// Scale returns the configured type scale with defaults filled in.
func (c *Config) Scale() typography.ScaleConfig {
	return c.Typography.WithDefaults()
}

// ValidatorOptions returns the report options selected by the config.
func (c *Config) ValidatorOptions() validator.Options {
	return validator.Options{
		IncludeHeuristics:    c.Heuristics,
		IncludeNormalization: c.Normalize,
	}
}

// Validate checks the configured type scale.
func (c *Config) Validate() error {
	if err := c.Scale().Validate(); err != nil {
		return fmt.Errorf("invalid typography config: %w", err)
	}
	for i, out := range c.Outputs {
		if out.Format == "" || out.Path == "" {
			return fmt.Errorf("invalid output %d: format and path are required", i)
		}
	}
	return nil
}
