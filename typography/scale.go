/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package typography generates modular type scales and maps heading levels onto them.
package typography

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

const (
	// DefaultBase is the base font size in px used when a project has none configured.
	DefaultBase = 16.0

	// DefaultRatio is the modular scale ratio used when a project has none configured.
	DefaultRatio = 1.25

	// RootFontSize is the assumed root font size for rem conversion.
	// It is fixed regardless of Base so rem output depends only on px.
	RootFontSize = 16.0

	// precision is the number of decimal places kept for px and rem values.
	precision = 4
)

// stepOffsets are the exponents applied to the ratio when no presets are given.
var stepOffsets = [...]int{-2, -1, 0, 1, 2, 3, 4}

var (
	// ErrInvalidBase indicates a non-positive base size.
	ErrInvalidBase = errors.New("base must be a positive number")

	// ErrInvalidRatio indicates a ratio that does not grow the scale.
	ErrInvalidRatio = errors.New("ratio must be greater than 1")

	// ErrInvalidPreset indicates a non-positive preset size.
	ErrInvalidPreset = errors.New("presets must be positive numbers")
)

// ScaleConfig configures a modular type scale.
type ScaleConfig struct {
	// Base is the base font size in px.
	Base float64 `yaml:"base" json:"base"`

	// Ratio is the multiplier between adjacent steps.
	Ratio float64 `yaml:"ratio" json:"ratio"`

	// Presets are explicit px sizes. When non-empty they replace
	// ratio-based generation entirely.
	Presets []float64 `yaml:"presets,omitempty" json:"presets,omitempty"`
}

// DefaultScale returns the scale new projects start with.
func DefaultScale() ScaleConfig {
	return ScaleConfig{Base: DefaultBase, Ratio: DefaultRatio}
}

// WithDefaults fills a zero Base or Ratio from the package defaults.
func (c ScaleConfig) WithDefaults() ScaleConfig {
	if c.Base == 0 {
		c.Base = DefaultBase
	}
	if c.Ratio == 0 {
		c.Ratio = DefaultRatio
	}
	return c
}

// Clone returns a copy that shares no memory with c.
func (c ScaleConfig) Clone() ScaleConfig {
	if c.Presets != nil {
		c.Presets = append([]float64(nil), c.Presets...)
	}
	return c
}

// Validate reports whether the configuration describes a usable scale.
// Presets take precedence, so base and ratio are only checked without them.
func (c ScaleConfig) Validate() error {
	if len(c.Presets) > 0 {
		for i, px := range c.Presets {
			if !(px > 0) || math.IsInf(px, 0) {
				return fmt.Errorf("preset %d (%v): %w", i, px, ErrInvalidPreset)
			}
		}
		return nil
	}
	if !(c.Base > 0) || math.IsInf(c.Base, 0) {
		return fmt.Errorf("base %v: %w", c.Base, ErrInvalidBase)
	}
	if !(c.Ratio > 1) || math.IsInf(c.Ratio, 0) {
		return fmt.Errorf("ratio %v: %w", c.Ratio, ErrInvalidRatio)
	}
	return nil
}

// Step is one size in a generated type scale.
type Step struct {
	// Name is the step's token name, e.g. "font-size-0".
	Name string `json:"name"`

	// Px is the size in pixels, rounded to four decimal places.
	Px float64 `json:"px"`

	// Rem is the size in rem units, e.g. "0.64rem".
	Rem string `json:"rem"`

	// Index is the position of the step in the generated sequence.
	Index int `json:"index"`
}

// GenerateScale returns the ordered steps for cfg.
//
// With presets, each preset becomes one step in input order. Otherwise
// seven steps are generated as Base * Ratio^offset for offsets -2 through 4.
// Index is always positional, never a measure of magnitude.
func GenerateScale(cfg ScaleConfig) []Step {
	if len(cfg.Presets) > 0 {
		steps := make([]Step, len(cfg.Presets))
		for i, px := range cfg.Presets {
			steps[i] = newStep(px, i)
		}
		return steps
	}

	steps := make([]Step, len(stepOffsets))
	for i, offset := range stepOffsets {
		steps[i] = newStep(cfg.Base*math.Pow(cfg.Ratio, float64(offset)), i)
	}
	return steps
}

// StepNames returns the names of steps in order.
func StepNames(steps []Step) []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	return names
}

// StepName returns the token name of the step at index.
func StepName(index int) string {
	return "font-size-" + strconv.Itoa(index)
}

func newStep(px float64, index int) Step {
	rounded := round(px)
	return Step{
		Name:  StepName(index),
		Px:    rounded,
		Rem:   FormatNumber(round(rounded/RootFontSize)) + "rem",
		Index: index,
	}
}

func round(v float64) float64 {
	p := math.Pow(10, precision)
	return math.Round(v*p) / p
}

// FormatNumber renders v in its shortest decimal form without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
