/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"fmt"
	"regexp"

	"bennypowers.dev/blueprint/token"
)

// NamePattern is the identifier grammar: a lowercase letter followed by
// lowercase letters, digits or hyphens. Names satisfying it are valid CSS
// custom property names once prefixed with "--".
var NamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateName returns a finding when name is not a valid token identifier.
// Length is not checked here; see the heuristics in Validate.
func ValidateName(name string) *ValidationError {
	if NamePattern.MatchString(name) {
		return nil
	}
	return &ValidationError{
		Code:     CodeInvalidName,
		Field:    FieldName,
		Message:  "Name must start with a lowercase letter and contain only lowercase letters, digits, or hyphens.",
		Severity: SeverityError,
	}
}

// grammar is the accepted value syntax of one category.
type grammar struct {
	pattern *regexp.Regexp
	help    string
}

var (
	// rgb()/rgba() values are matched by prefix only; the arguments are not checked.
	colorGrammar = grammar{
		pattern: regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$|^rgba?\(`),
		help:    "Expect hex (#rgb, #rgba, #rrggbb, #rrggbbaa) or rgb()/rgba().",
	}
	spacingGrammar = grammar{
		pattern: regexp.MustCompile(`^(\d*\.?\d+)(px|rem|em|%)$`),
		help:    "Expect number with unit: px | rem | em | %.",
	}
	radiusGrammar = grammar{
		pattern: regexp.MustCompile(`^(\d*\.?\d+)(px|rem|%)$`),
		help:    "Expect number with unit: px | rem | %.",
	}
	shadowGrammar = grammar{
		pattern: regexp.MustCompile(`(?s)^.+$`),
		help:    "Any non-empty CSS shadow value.",
	}
)

func grammarFor(c token.Category) (grammar, bool) {
	switch c {
	case token.Colors:
		return colorGrammar, true
	case token.Spacing:
		return spacingGrammar, true
	case token.Radii:
		return radiusGrammar, true
	case token.Shadows:
		return shadowGrammar, true
	default:
		return grammar{}, false
	}
}

// ValidateValue returns a finding when value does not match the grammar of category c.
// The empty string is invalid for every category.
func ValidateValue(c token.Category, value string) *ValidationError {
	g, ok := grammarFor(c)
	if !ok {
		return &ValidationError{
			Code:     CodeInvalidValue,
			Field:    FieldValue,
			Message:  fmt.Sprintf("Unknown token category %s.", c),
			Severity: SeverityError,
		}
	}
	if value != "" && g.pattern.MatchString(value) {
		return nil
	}
	return &ValidationError{
		Code:     CodeInvalidValue,
		Field:    FieldValue,
		Message:  fmt.Sprintf("Invalid %s token value. %s", c, g.help),
		Severity: SeverityError,
	}
}
