/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"strings"
	"unicode"
)

// applyPrefix joins prefix and name with delimiter, or returns name alone.
func applyPrefix(name, prefix, delimiter string) string {
	if prefix == "" {
		return name
	}
	return prefix + delimiter + name
}

// toCamelCase converts a string to camelCase.
func toCamelCase(s string) string {
	words := splitIntoWords(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(strings.ToLower(w[1:]))
	}
	return b.String()
}

// toSnakeCase converts a string to snake_case.
func toSnakeCase(s string) string {
	return strings.ToLower(strings.Join(splitIntoWords(s), "_"))
}

// splitIntoWords splits a string on hyphens, underscores, dots, spaces
// and camelCase boundaries. A word starting with a digit stays attached to
// the previous word so "font-size-0" becomes "font", "size0".
func splitIntoWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for i, r := range s {
		switch {
		case r == '-' || r == '_' || r == '.' || r == ' ':
			if next := nextRune(s, i); unicode.IsDigit(next) && current.Len() > 0 {
				continue
			}
			flush()
		case unicode.IsUpper(r) && i > 0:
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}

func nextRune(s string, i int) rune {
	for _, r := range s[i+1:] {
		return r
	}
	return 0
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escapeXML escapes special XML characters.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
