/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token data model: categories,
// per-category token sets and the project snapshot the core computes from.
package token

import (
	"maps"
	"slices"
	"strings"
	"time"

	"bennypowers.dev/blueprint/typography"
)

// Token is a named design value within one category.
type Token struct {
	// Category owns the token.
	Category Category `json:"category"`

	// Name is the token's identifier (e.g., "primary").
	Name string `json:"name"`

	// Value is the literal CSS value (e.g., "#ff0000").
	Value string `json:"value"`
}

// CSSVariableName returns the CSS custom property name for this token.
// e.g., "--primary" or "--ds-primary"
func (t Token) CSSVariableName(prefix string) string {
	if prefix != "" {
		return "--" + strings.TrimSuffix(prefix, "-") + "-" + t.Name
	}
	return "--" + t.Name
}

// Set holds the literal tokens of a project, one name→value record per category.
type Set struct {
	Colors  map[string]string `yaml:"colors,omitempty" json:"colors"`
	Spacing map[string]string `yaml:"spacing,omitempty" json:"spacing"`
	Radii   map[string]string `yaml:"radii,omitempty" json:"radii"`
	Shadows map[string]string `yaml:"shadows,omitempty" json:"shadows"`
}

// NewSet returns a set with an empty record for every category.
func NewSet() Set {
	return Set{
		Colors:  map[string]string{},
		Spacing: map[string]string{},
		Radii:   map[string]string{},
		Shadows: map[string]string{},
	}
}

// Get returns the record for category c. The result may be nil.
func (s Set) Get(c Category) map[string]string {
	switch c {
	case Colors:
		return s.Colors
	case Spacing:
		return s.Spacing
	case Radii:
		return s.Radii
	case Shadows:
		return s.Shadows
	default:
		return nil
	}
}

// With returns a copy of s whose record for c is replaced by record.
// Other records are shared with s; callers treat sets as immutable.
func (s Set) With(c Category, record map[string]string) Set {
	switch c {
	case Colors:
		s.Colors = record
	case Spacing:
		s.Spacing = record
	case Radii:
		s.Radii = record
	case Shadows:
		s.Shadows = record
	}
	return s
}

// Lookup returns the value of name in category c.
func (s Set) Lookup(c Category, name string) (string, bool) {
	v, ok := s.Get(c)[name]
	return v, ok
}

// Names returns the token names of category c sorted lexicographically.
func (s Set) Names(c Category) []string {
	return slices.Sorted(maps.Keys(s.Get(c)))
}

// Sorted returns the tokens of category c ordered by name.
func (s Set) Sorted(c Category) []Token {
	record := s.Get(c)
	tokens := make([]Token, 0, len(record))
	for _, name := range s.Names(c) {
		tokens = append(tokens, Token{Category: c, Name: name, Value: record[name]})
	}
	return tokens
}

// Len returns the total number of literal tokens.
func (s Set) Len() int {
	n := 0
	for _, c := range Categories {
		n += len(s.Get(c))
	}
	return n
}

// Clone returns a deep copy of s. Nil records become empty records.
func (s Set) Clone() Set {
	out := NewSet()
	for _, c := range Categories {
		record := s.Get(c)
		if record != nil {
			out = out.With(c, maps.Clone(record))
		}
	}
	return out
}

// Typography holds the type scale configuration and heading assignments.
type Typography struct {
	Scale    typography.ScaleConfig `yaml:"scale" json:"scale"`
	Headings typography.HeadingsMap `yaml:"headings,omitempty" json:"headings"`
}

// Clone returns a deep copy of t.
func (t Typography) Clone() Typography {
	return Typography{
		Scale:    t.Scale.Clone(),
		Headings: t.Headings.Clone(),
	}
}

// Project is a snapshot of one design-token project.
// Core functions read projects by value and never mutate them.
type Project struct {
	ID         string     `yaml:"id,omitempty" json:"id"`
	Name       string     `yaml:"name" json:"name"`
	Prefix     string     `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Tokens     Set        `yaml:"tokens" json:"tokens"`
	Typography Typography `yaml:"typography" json:"typography"`
	CreatedAt  time.Time  `yaml:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt  time.Time  `yaml:"updatedAt,omitempty" json:"updatedAt"`
}

// Clone returns a deep copy of p.
func (p Project) Clone() Project {
	p.Tokens = p.Tokens.Clone()
	p.Typography = p.Typography.Clone()
	return p
}
