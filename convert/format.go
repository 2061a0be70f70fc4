/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"
	"strings"
)

// Format represents an output format for token serialization.
type Format string

const (
	// FormatDTCG outputs Design Tokens Community Group JSON, grouped by category.
	FormatDTCG Format = "dtcg"

	// FormatFlatJSON outputs flat key-value JSON.
	FormatFlatJSON Format = "json"

	// FormatAndroid outputs Android-style XML resources.
	FormatAndroid Format = "android"

	// FormatSwift outputs iOS Swift constants.
	FormatSwift Format = "swift"

	// FormatTypeScript outputs a TypeScript ESM module with camelCase exports.
	FormatTypeScript Format = "typescript"

	// FormatSCSS outputs SCSS variables with kebab-case names.
	FormatSCSS Format = "scss"

	// FormatCSS outputs CSS custom properties with :root selector.
	FormatCSS Format = "css"

	// FormatLitCSS outputs CSS custom properties wrapped in Lit's css template tag.
	FormatLitCSS Format = "lit-css"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatDTCG),
		string(FormatFlatJSON),
		string(FormatAndroid),
		string(FormatSwift),
		string(FormatTypeScript),
		string(FormatSCSS),
		string(FormatCSS),
		string(FormatLitCSS),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "dtcg", "":
		return FormatDTCG, nil
	case "json", "flat", "flat-json":
		return FormatFlatJSON, nil
	case "android", "xml":
		return FormatAndroid, nil
	case "swift", "ios":
		return FormatSwift, nil
	case "typescript", "ts":
		return FormatTypeScript, nil
	case "scss", "sass":
		return FormatSCSS, nil
	case "css":
		return FormatCSS, nil
	case "lit-css", "lit":
		return FormatLitCSS, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// Extension returns the conventional file extension for f.
func (f Format) Extension() string {
	switch f {
	case FormatAndroid:
		return ".xml"
	case FormatSwift:
		return ".swift"
	case FormatTypeScript, FormatLitCSS:
		return ".ts"
	case FormatSCSS:
		return ".scss"
	case FormatCSS:
		return ".css"
	default:
		return ".json"
	}
}
