/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"regexp"
	"strings"

	"bennypowers.dev/blueprint/token"
	"bennypowers.dev/blueprint/validator"
)

// ErrorCodeParse marks a line that does not match the declaration grammar.
const ErrorCodeParse = "parse"

// declarationPattern matches one pasted declaration:
//
//	--token-name: value;
//	token-name: value
//
// The leading dashes are not captured.
var declarationPattern = regexp.MustCompile(`^(?:--)?([a-zA-Z0-9][a-zA-Z0-9_-]*)\s*:\s*([^;]+);?$`)

var commentPrefixes = []string{"//", "/*", "*", "#"}

// Line is one input line of a batch paste.
// Blank and comment lines carry only Line and Raw.
type Line struct {
	// Line is the 1-based line number.
	Line int `json:"line"`

	// Raw is the untrimmed input text.
	Raw string `json:"raw"`

	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`

	// ErrorCodes lists the codes of Errors, with "parse" for lines that
	// failed the declaration grammar.
	ErrorCodes []string                    `json:"errorCodes,omitempty"`
	Errors     []validator.ValidationError `json:"errors,omitempty"`
}

// HasErrors reports whether the line carries any error.
func (l Line) HasErrors() bool {
	return len(l.Errors) > 0
}

// Declared reports whether the line matched the declaration grammar.
func (l Line) Declared() bool {
	return l.Name != ""
}

// BatchResult is the outcome of parsing a batch paste.
type BatchResult struct {
	// Entries maps each name to the value of its first error-free line.
	Entries map[string]string `json:"entries"`

	// Lines holds every input line in order.
	Lines []Line `json:"lines"`

	// OK is true when no line carries an error.
	OK bool `json:"ok"`

	// Errors is the subset of Lines that carry errors.
	Errors []Line `json:"errors"`
}

// ParseBatch parses text containing one token declaration per line.
//
// Every declared name is counted across the whole batch. Names seen more
// than once get a batch_conflict error on every line that declared them.
// Entries are recorded during the per-line pass, so the first error-free
// occurrence of a name is kept and later duplicates never replace it.
func ParseBatch(c token.Category, text string) BatchResult {
	rawLines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	entries := make(map[string]string)
	lines := make([]Line, 0, len(rawLines))
	counts := make(map[string]int)

	for i, raw := range rawLines {
		line := Line{Line: i + 1, Raw: raw}
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || isComment(trimmed) {
			lines = append(lines, line)
			continue
		}

		m := declarationPattern.FindStringSubmatch(trimmed)
		if m == nil {
			line.ErrorCodes = []string{ErrorCodeParse}
			line.Errors = []validator.ValidationError{{
				Code:     validator.CodeInvalidValue,
				Field:    validator.FieldGeneral,
				Message:  "Unable to parse line as token declaration",
				Severity: validator.SeverityError,
			}}
			lines = append(lines, line)
			continue
		}

		line.Name = m[1]
		line.Value = strings.TrimSpace(m[2])
		if err := validator.ValidateName(line.Name); err != nil {
			line.addError(*err)
		}
		if err := validator.ValidateValue(c, line.Value); err != nil {
			line.addError(*err)
		}
		counts[line.Name]++

		if !line.HasErrors() {
			if _, seen := entries[line.Name]; !seen {
				entries[line.Name] = line.Value
			}
		}
		lines = append(lines, line)
	}

	for i := range lines {
		name := lines[i].Name
		if name == "" || counts[name] < 2 {
			continue
		}
		lines[i].addError(validator.ValidationError{
			Code:     validator.CodeBatchConflict,
			Field:    validator.FieldName,
			Message:  fmt.Sprintf("Duplicate in batch: %s", name),
			Severity: validator.SeverityError,
			Details: map[string]string{
				"name":     name,
				"expected": "Each name appears only once in a batch",
			},
		})
	}

	result := BatchResult{
		Entries: entries,
		Lines:   lines,
		Errors:  []Line{},
	}
	for _, l := range lines {
		if l.HasErrors() {
			result.Errors = append(result.Errors, l)
		}
	}
	result.OK = len(result.Errors) == 0
	return result
}

func (l *Line) addError(err validator.ValidationError) {
	l.Errors = append(l.Errors, err)
	l.ErrorCodes = append(l.ErrorCodes, string(err.Code))
}

func isComment(trimmed string) bool {
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
