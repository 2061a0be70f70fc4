/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/blueprint/derived"
	"bennypowers.dev/blueprint/token"
)

// Row holds computed display values for a single token.
type Row struct {
	Category string `json:"category"`
	Name     string `json:"name"`  // CSS variable name with prefix
	Token    string `json:"token"` // Bare token name
	Value    string `json:"value"`
	Virtual  bool   `json:"virtual,omitempty"`
	Source   string `json:"source,omitempty"`
	IsColor  bool   `json:"-"` // Whether the value parses as a CSS color
}

// MarkdownOptions configures markdown output.
type MarkdownOptions struct {
	Title      string
	IncludeTOC bool
	ShowLinks  bool
}

// ComputeRows transforms listed entries into display rows.
func ComputeRows(entries []derived.Entry, prefix string) []Row {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		row := Row{
			Category: e.Category,
			Name:     NameToCSSVar(e.Name, prefix),
			Token:    e.Name,
			Value:    e.Value,
			Virtual:  e.Virtual,
			Source:   e.Source,
		}
		if e.Category == token.Colors.String() {
			if _, err := csscolorparser.Parse(e.Value); err == nil {
				row.IsColor = true
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// NameToCSSVar converts a token name to a CSS variable name.
// e.g., "primary" with prefix "rh" → "--rh-primary"
func NameToCSSVar(name, prefix string) string {
	if prefix != "" {
		return "--" + prefix + "-" + name
	}
	return "--" + name
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, category, val int) {
	name, category, val = 4, 8, 5 // minimums for headers
	for _, r := range rows {
		name = max(name, len(r.Name))
		category = max(category, len(r.Category))
		val = max(val, len(r.Value))
	}
	return
}

// parseColor parses a CSS color and clamps it into the sRGB gamut.
func parseColor(value string) (colorful.Color, bool) {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return colorful.Color{}, false
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped(), true
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, ok := parseColor(value)
	if !ok {
		return ""
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Lightness returns the CIE L* lightness of a color value in [0, 1].
func Lightness(value string) (float64, bool) {
	c, ok := parseColor(value)
	if !ok {
		return 0, false
	}
	l, _, _ := c.Lab()
	return l, true
}

// Table renders rows as an aligned table.
func Table(w io.Writer, rows []Row, swatches bool) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, categoryW, _ := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if swatches && r.IsColor {
			swatch = ColorSwatch(r.Value)
		}
		marker := ""
		if r.Virtual {
			marker = " (" + r.Source + ")"
		}
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %s%s%s\n", nameW, r.Name, categoryW, r.Category, swatch, r.Value, marker); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders rows as markdown tables grouped by category, preserving
// the order in which categories first appear.
func Markdown(w io.Writer, rows []Row, opts MarkdownOptions) error {
	order, byCategory := groupByCategory(rows)

	var b strings.Builder
	if opts.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", opts.Title)
	}
	if opts.IncludeTOC && len(order) > 0 {
		b.WriteString(GenerateTOC(order))
		b.WriteString("\n")
	}

	for i, category := range order {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s {#%s}\n\n", toTitleCase(category), slugify(category))
		renderTokenTable(&b, byCategory[category], opts.ShowLinks)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func groupByCategory(rows []Row) ([]string, map[string][]Row) {
	order := make([]string, 0)
	byCategory := make(map[string][]Row)
	for _, r := range rows {
		if _, exists := byCategory[r.Category]; !exists {
			order = append(order, r.Category)
		}
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}
	return order, byCategory
}

// GenerateTOC generates a markdown table of contents for category headings.
func GenerateTOC(categories []string) string {
	var sb strings.Builder
	sb.WriteString("## Table Of Contents\n\n")
	for _, category := range categories {
		fmt.Fprintf(&sb, "- [%s](#%s)\n", toTitleCase(category), slugify(category))
	}
	return sb.String()
}

func renderTokenTable(b *strings.Builder, rows []Row, showLinks bool) {
	nameW, valW := 4, 5
	hasSource := false
	for _, r := range rows {
		nameW = max(nameW, len(formatTokenName(r, showLinks)))
		valW = max(valW, len(r.Value))
		if r.Source != "" {
			hasSource = true
		}
	}
	srcW := 6 // "Source"
	for _, r := range rows {
		srcW = max(srcW, len(r.Source))
	}

	if hasSource {
		fmt.Fprintf(b, "| %-*s | %-*s | %-*s |\n", nameW, "Name", valW, "Value", srcW, "Source")
		fmt.Fprintf(b, "|-%s-|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW), strings.Repeat("-", srcW))
	} else {
		fmt.Fprintf(b, "| %-*s | %-*s |\n", nameW, "Name", valW, "Value")
		fmt.Fprintf(b, "|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW))
	}

	for _, r := range rows {
		name := formatTokenName(r, showLinks)
		if hasSource {
			fmt.Fprintf(b, "| %-*s | %-*s | %-*s |\n", nameW, name, valW, r.Value, srcW, r.Source)
		} else {
			fmt.Fprintf(b, "| %-*s | %-*s |\n", nameW, name, valW, r.Value)
		}
	}
}

func formatTokenName(r Row, showLinks bool) string {
	if showLinks {
		return fmt.Sprintf("[%s](#%s)", r.Name, slugify(r.Name))
	}
	return r.Name
}

// CSS renders rows as CSS custom properties.
func CSS(w io.Writer, rows []Row) error {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "  %s: %s;\n", r.Name, r.Value)
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Names renders just the token names, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}

// JSON renders v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// slugify converts a name to a URL-safe anchor ID.
// e.g., "Font Sizes" -> "font-sizes"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' || r == '.' {
			result.WriteRune('-')
		}
	}
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// toTitleCase converts a category name to Title Case, splitting camelCase
// words first: "fontSizes" becomes "Font Sizes".
func toTitleCase(s string) string {
	var spaced strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			spaced.WriteRune(' ')
		}
		spaced.WriteRune(r)
	}
	caser := cases.Title(language.English)
	return caser.String(spaced.String())
}
