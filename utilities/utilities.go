/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package utilities compiles a project's tokens into utility class CSS.
package utilities

import (
	"strings"

	"github.com/samber/lo"

	"bennypowers.dev/blueprint/derived"
	"bennypowers.dev/blueprint/token"
)

// Family names in canonical generation order.
const (
	FamilyFontSize = "fontSize"
	FamilySpacing  = "spacing"
	FamilyColor    = "color"
)

// Segment is the CSS generated for one utility family.
type Segment struct {
	Family     string `json:"family"`
	CSS        string `json:"css"`
	ClassCount int    `json:"classCount"`
}

// Output is the generated CSS for a project.
type Output struct {
	Segments     []Segment `json:"segments"`
	Concatenated string    `json:"concatenated"`
	TotalClasses int       `json:"totalClasses"`
}

// Family builds the segment for one utility family.
type Family struct {
	Name  string
	Build func(token.Project) Segment
}

// Families is the canonical family order. New families are appended here.
var Families = []Family{
	{Name: FamilyFontSize, Build: fontSizeSegment},
	{Name: FamilySpacing, Build: spacingSegment},
	{Name: FamilyColor, Build: colorSegment},
}

// rule is one utility class template: the class prefix and the
// properties it sets to the token value, in emission order.
type rule struct {
	prefix     string
	properties []string
}

var spacingRules = []rule{
	{"m", []string{"margin"}},
	{"p", []string{"padding"}},
	{"mx", []string{"margin-left", "margin-right"}},
	{"my", []string{"margin-top", "margin-bottom"}},
	{"mt", []string{"margin-top"}},
	{"mr", []string{"margin-right"}},
	{"mb", []string{"margin-bottom"}},
	{"ml", []string{"margin-left"}},
	{"px", []string{"padding-left", "padding-right"}},
	{"py", []string{"padding-top", "padding-bottom"}},
	{"pt", []string{"padding-top"}},
	{"pr", []string{"padding-right"}},
	{"pb", []string{"padding-bottom"}},
	{"pl", []string{"padding-left"}},
}

var colorRules = []rule{
	{"text", []string{"color"}},
	{"bg", []string{"background-color"}},
	{"border", []string{"border-color"}},
}

// Generate compiles p into utility CSS, one segment per family in
// canonical order. Output depends only on the token values, so equal
// snapshots always produce identical text.
func Generate(p token.Project) Output {
	segments := make([]Segment, 0, len(Families))
	for _, f := range Families {
		segments = append(segments, f.Build(p))
	}

	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.CSS)
	}

	return Output{
		Segments:     segments,
		Concatenated: b.String(),
		TotalClasses: lo.SumBy(segments, func(s Segment) int { return s.ClassCount }),
	}
}

// fontSizeSegment emits one .text-{index} class per scale step, in step order.
func fontSizeSegment(p token.Project) Segment {
	var b strings.Builder
	virtual := derived.FontSizeTokens(p)
	for _, v := range virtual {
		writeClass(&b, "text-"+strings.TrimPrefix(v.Name, "font-size-"), []string{"font-size"}, v.Value)
	}
	return Segment{Family: FamilyFontSize, CSS: b.String(), ClassCount: len(virtual)}
}

func spacingSegment(p token.Project) Segment {
	return ruleSegment(FamilySpacing, p.Tokens.Sorted(token.Spacing), spacingRules)
}

func colorSegment(p token.Project) Segment {
	return ruleSegment(FamilyColor, p.Tokens.Sorted(token.Colors), colorRules)
}

func ruleSegment(family string, tokens []token.Token, rules []rule) Segment {
	var b strings.Builder
	for _, tok := range tokens {
		for _, r := range rules {
			writeClass(&b, r.prefix+"-"+tok.Name, r.properties, tok.Value)
		}
	}
	return Segment{Family: family, CSS: b.String(), ClassCount: len(tokens) * len(rules)}
}

func writeClass(b *strings.Builder, class string, properties []string, value string) {
	b.WriteByte('.')
	b.WriteString(class)
	b.WriteByte('{')
	for _, prop := range properties {
		b.WriteString(prop)
		b.WriteByte(':')
		b.WriteString(value)
		b.WriteByte(';')
	}
	b.WriteByte('}')
}
