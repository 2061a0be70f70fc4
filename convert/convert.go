/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert serializes listed tokens into formats consumed by other
// toolchains: stylesheets, TypeScript, Swift, Android resources and JSON.
package convert

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/blueprint/derived"
	"bennypowers.dev/blueprint/token"
	"bennypowers.dev/blueprint/typography"
)

// Options configures serialization.
type Options struct {
	// Prefix is added to output variable names.
	Prefix string

	// Delimiter separates category, name and prefix in flattened keys.
	// Defaults to "-".
	Delimiter string
}

// dtcgTypes maps listing categories to Design Tokens Community Group types.
var dtcgTypes = map[string]string{
	token.Colors.String():     "color",
	token.Spacing.String():    "dimension",
	token.Radii.String():      "dimension",
	token.Shadows.String():    "shadow",
	derived.CategoryFontSizes: "dimension",
}

// Convert renders entries in format. Entries are emitted in the order given,
// which for derived.ListAll is category then name.
func Convert(entries []derived.Entry, format Format, opts Options) ([]byte, error) {
	if opts.Delimiter == "" {
		opts.Delimiter = "-"
	}
	switch format {
	case FormatDTCG:
		return formatDTCG(entries)
	case FormatFlatJSON:
		return formatFlatJSON(entries, opts)
	case FormatAndroid:
		return formatAndroid(entries, opts), nil
	case FormatSwift:
		return formatSwift(entries, opts), nil
	case FormatTypeScript:
		return formatTypeScript(entries, opts), nil
	case FormatSCSS:
		return formatSCSS(entries, opts), nil
	case FormatCSS:
		return []byte(rootBlock(entries, opts)), nil
	case FormatLitCSS:
		return formatLitCSS(entries, opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// key is the flattened identifier of an entry, unique across categories.
func key(e derived.Entry, opts Options) string {
	return applyPrefix(e.Category+opts.Delimiter+e.Name, opts.Prefix, opts.Delimiter)
}

func formatDTCG(entries []derived.Entry) ([]byte, error) {
	groups := make(map[string]map[string]any)
	for _, e := range entries {
		group, ok := groups[e.Category]
		if !ok {
			group = make(map[string]any)
			groups[e.Category] = group
		}
		node := map[string]any{"$value": e.Value}
		if t, ok := dtcgTypes[e.Category]; ok {
			node["$type"] = t
		}
		if e.Virtual {
			node["$extensions"] = map[string]any{"dev.bennypowers.blueprint": map[string]any{"source": e.Source}}
		}
		group[e.Name] = node
	}
	return marshal(groups)
}

func formatFlatJSON(entries []derived.Entry, opts Options) ([]byte, error) {
	result := make(map[string]string, len(entries))
	for _, e := range entries {
		result[key(e, opts)] = e.Value
	}
	return marshal(result)
}

func marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func formatAndroid(entries []derived.Entry, opts Options) []byte {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	sb.WriteString("\n<resources>\n")
	for _, e := range entries {
		name := toSnakeCase(key(e, opts))
		kind, value := androidResource(e)
		fmt.Fprintf(&sb, "    <%s name=\"%s\">%s</%s>\n", kind, escapeXML(name), escapeXML(value), kind)
	}
	sb.WriteString("</resources>\n")
	return []byte(sb.String())
}

// androidResource picks the resource element and value for e. Lengths
// become dp, font sizes sp, with rem and em taken relative to the root font size.
func androidResource(e derived.Entry) (kind, value string) {
	switch e.Category {
	case token.Colors.String():
		if c, err := csscolorparser.Parse(e.Value); err == nil {
			return "color", androidColor(c)
		}
	case token.Spacing.String(), token.Radii.String(), derived.CategoryFontSizes:
		if px, ok := pixels(e.Value); ok {
			unit := "dp"
			if e.Category == derived.CategoryFontSizes {
				unit = "sp"
			}
			return "dimen", number(px) + unit
		}
	}
	return "string", e.Value
}

// androidColor renders #AARRGGBB, or #RRGGBB when fully opaque.
func androidColor(c csscolorparser.Color) string {
	r, g, b, a := c.RGBA255()
	if a == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", a, r, g, b)
}

func formatSwift(entries []derived.Entry, opts Options) []byte {
	var sb strings.Builder
	sb.WriteString("import SwiftUI\n\n")
	sb.WriteString("public enum DesignTokens {\n")
	for _, e := range entries {
		name := toCamelCase(key(e, opts))
		switch e.Category {
		case token.Colors.String():
			if c, err := csscolorparser.Parse(e.Value); err == nil {
				fmt.Fprintf(&sb, "    public static let %s = Color(red: %s, green: %s, blue: %s, opacity: %s)\n",
					name, number(c.R), number(c.G), number(c.B), number(c.A))
				continue
			}
		case token.Spacing.String(), token.Radii.String(), derived.CategoryFontSizes:
			if px, ok := pixels(e.Value); ok {
				fmt.Fprintf(&sb, "    public static let %s: CGFloat = %s\n", name, number(px))
				continue
			}
		}
		fmt.Fprintf(&sb, "    public static let %s = %s\n", name, strconv.Quote(e.Value))
	}
	sb.WriteString("}\n")
	return []byte(sb.String())
}

func formatTypeScript(entries []derived.Entry, opts Options) []byte {
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "export const %s = %s as const;\n", toCamelCase(key(e, opts)), strconv.Quote(e.Value))
	}
	return []byte(sb.String())
}

func formatSCSS(entries []derived.Entry, opts Options) []byte {
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "$%s: %s;\n", applyPrefix(e.Name, opts.Prefix, "-"), e.Value)
	}
	return []byte(sb.String())
}

// rootBlock renders entries as custom properties named like the CSS the
// rest of the tool emits: --prefix-name.
func rootBlock(entries []derived.Entry, opts Options) string {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "  --%s: %s;\n", applyPrefix(e.Name, opts.Prefix, "-"), e.Value)
	}
	sb.WriteString("}\n")
	return sb.String()
}

func formatLitCSS(entries []derived.Entry, opts Options) []byte {
	var sb strings.Builder
	sb.WriteString("import { css } from 'lit';\n\n")
	sb.WriteString("export const tokens = css`\n")
	sb.WriteString(strings.ReplaceAll(rootBlock(entries, opts), "`", "\\`"))
	sb.WriteString("`;\n")
	return []byte(sb.String())
}

// pixels converts a px, rem or em length to pixels.
func pixels(value string) (float64, bool) {
	for _, unit := range []string{"px", "rem", "em"} {
		num, ok := strings.CutSuffix(value, unit)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, false
		}
		if unit != "px" {
			v *= typography.RootFontSize
		}
		return v, true
	}
	return 0, false
}

func number(v float64) string {
	return typography.FormatNumber(math.Round(v*1000) / 1000)
}
