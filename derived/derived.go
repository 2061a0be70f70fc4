/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package derived merges a project's literal tokens with the virtual tokens
// computed from its typography configuration.
package derived

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"bennypowers.dev/blueprint/token"
	"bennypowers.dev/blueprint/typography"
)

const (
	// CategoryFontSizes is the category of virtual font-size tokens.
	CategoryFontSizes = "fontSizes"

	// SourceTypographyScale marks tokens derived from the type scale.
	SourceTypographyScale = "typography-scale"
)

// VirtualToken is a font-size token computed from the type scale.
// It is never stored; it is recomputed from the project on demand.
type VirtualToken struct {
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Px       float64 `json:"px"`
	Index    int     `json:"index"`
	Source   string  `json:"source"`
}

// Entry is one row of the combined token listing.
type Entry struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	Virtual  bool   `json:"virtual,omitempty"`
	Source   string `json:"source,omitempty"`
}

// FontSizeTokens returns one virtual token per type scale step, in step order.
// Projects without a configured base or ratio fall back to the defaults.
func FontSizeTokens(p token.Project) []VirtualToken {
	steps := typography.GenerateScale(p.Typography.Scale.WithDefaults())
	return lo.Map(steps, func(s typography.Step, _ int) VirtualToken {
		return VirtualToken{
			Category: CategoryFontSizes,
			Name:     s.Name,
			Value:    s.Rem,
			Px:       s.Px,
			Index:    s.Index,
			Source:   SourceTypographyScale,
		}
	})
}

// ListAll returns every literal and virtual token of p ordered by category
// name, then token name. Both comparisons are plain byte-wise string order,
// so the result is a total order and repeated calls serialize identically.
func ListAll(p token.Project) []Entry {
	entries := make([]Entry, 0, p.Tokens.Len()+7)
	for _, c := range token.Categories {
		for _, tok := range p.Tokens.Sorted(c) {
			entries = append(entries, Entry{Category: c.String(), Name: tok.Name, Value: tok.Value})
		}
	}
	for _, v := range FontSizeTokens(p) {
		entries = append(entries, Entry{
			Category: v.Category,
			Name:     v.Name,
			Value:    v.Value,
			Virtual:  true,
			Source:   v.Source,
		})
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Or(cmp.Compare(a.Category, b.Category), cmp.Compare(a.Name, b.Name))
	})
	return entries
}
