/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"regexp"
	"strconv"
	"strings"

	"bennypowers.dev/blueprint/token"
)

var (
	shortHexPattern   = regexp.MustCompile(`^#([0-9a-f]{3}|[0-9a-f]{4})$`)
	rgbFuncPattern    = regexp.MustCompile(`(?i)^rgba?\(`)
	rgbNamePattern    = regexp.MustCompile(`(?i)^rgba?`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	numericPattern    = regexp.MustCompile(`^(\d*\.?\d+)(px|rem|em|%)`)
)

// Normalize returns the canonical form of value for category c.
//
// Surrounding whitespace is trimmed for every category. Hex colors are
// lowercased and 3/4 digit forms expanded to 6/8 digits. rgb()/rgba()
// function names are lowercased and whitespace runs collapsed; their
// arguments are left alone. Spacing and radii have a leading number
// re-rendered without trailing zeros (4.0px → 4px) and anything after the
// unit is dropped. Everything else is returned as is. Normalize is idempotent.
func Normalize(c token.Category, value string) string {
	v := strings.TrimSpace(value)
	switch c {
	case token.Colors:
		switch {
		case strings.HasPrefix(v, "#"):
			v = expandShortHex(strings.ToLower(v))
		case rgbFuncPattern.MatchString(v):
			v = rgbNamePattern.ReplaceAllStringFunc(v, strings.ToLower)
			v = whitespacePattern.ReplaceAllString(v, " ")
		}
	case token.Spacing, token.Radii:
		v = normalizeNumericWithUnit(v)
	}
	return v
}

// expandShortHex turns #abc into #aabbcc and #abcd into #aabbccdd.
func expandShortHex(hex string) string {
	if !shortHexPattern.MatchString(hex) {
		return hex
	}
	var sb strings.Builder
	sb.WriteByte('#')
	for _, r := range hex[1:] {
		sb.WriteRune(r)
		sb.WriteRune(r)
	}
	return sb.String()
}

// normalizeNumericWithUnit re-renders the leading <number><unit> of v.
func normalizeNumericWithUnit(v string) string {
	m := numericPattern.FindStringSubmatchIndex(v)
	if m == nil {
		return v
	}
	num, err := strconv.ParseFloat(v[m[2]:m[3]], 64)
	if err != nil {
		return v
	}
	return strconv.FormatFloat(num, 'f', -1, 64) + v[m[4]:m[5]]
}
