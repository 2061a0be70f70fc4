/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"regexp"
	"strings"

	"bennypowers.dev/blueprint/token"
)

// MaxNameLength is the length above which a name draws a style warning.
const MaxNameLength = 30

var consecutiveHyphensPattern = regexp.MustCompile(`--+`)

// Options selects the optional stages of Validate.
type Options struct {
	// IncludeHeuristics appends non-blocking style warnings for long names,
	// consecutive hyphens and trailing hyphens.
	IncludeHeuristics bool

	// IncludeNormalization attaches the normalized value to the report.
	IncludeNormalization bool
}

// Normalized is the normalization suggestion of a report.
type Normalized struct {
	// Value is the normalized value.
	Value string `json:"value"`

	// Changed is true when Value differs from the input.
	Changed bool `json:"changed"`
}

// Report is the structured validation result for one name/value pair.
type Report struct {
	// OK is true iff no finding has severity error.
	OK bool `json:"ok"`

	// Errors holds every finding in the order it was produced.
	Errors []ValidationError `json:"errors"`

	// ByField partitions Errors by the field they apply to.
	ByField map[Field][]ValidationError `json:"byField"`

	// Normalized is set when Options.IncludeNormalization was requested.
	Normalized *Normalized `json:"normalized,omitempty"`
}

// Validate checks name and value for category c and builds a report.
func Validate(c token.Category, name, value string, opts Options) Report {
	var errs []ValidationError
	if err := ValidateName(name); err != nil {
		errs = append(errs, *err)
	}
	if err := ValidateValue(c, value); err != nil {
		errs = append(errs, *err)
	}
	if opts.IncludeHeuristics {
		errs = append(errs, nameWarnings(name)...)
	}

	report := Report{
		OK:      !HasBlocking(errs),
		Errors:  errs,
		ByField: map[Field][]ValidationError{},
	}
	for _, e := range errs {
		field := e.Field
		if field == "" {
			field = FieldGeneral
		}
		report.ByField[field] = append(report.ByField[field], e)
	}

	if opts.IncludeNormalization {
		norm := Normalize(c, value)
		report.Normalized = &Normalized{Value: norm, Changed: norm != value}
	}
	return report
}

func nameWarnings(name string) []ValidationError {
	var warns []ValidationError
	if len(name) > MaxNameLength {
		warns = append(warns, styleWarning("Name is long; consider a shorter semantic alias."))
	}
	if consecutiveHyphensPattern.MatchString(name) {
		warns = append(warns, styleWarning("Consecutive hyphens; prefer single separators."))
	}
	if strings.HasSuffix(name, "-") {
		warns = append(warns, styleWarning("Trailing hyphen; remove for consistency."))
	}
	return warns
}

func styleWarning(msg string) ValidationError {
	return ValidationError{
		Code:     CodeStyleWarning,
		Field:    FieldName,
		Message:  msg,
		Severity: SeverityWarning,
	}
}

// Result is the outcome of validating several tokens at once.
type Result struct {
	OK     bool              `json:"ok"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidateEntries validates every name/value pair of entries for category c.
// Entries are visited in name order so findings are reported deterministically.
func ValidateEntries(c token.Category, entries map[string]string) Result {
	set := token.NewSet().With(c, entries)
	var errs []ValidationError
	for _, tok := range set.Sorted(c) {
		if err := ValidateName(tok.Name); err != nil {
			errs = append(errs, *err)
		}
		if err := ValidateValue(c, tok.Value); err != nil {
			errs = append(errs, *err)
		}
	}
	return Result{OK: len(errs) == 0, Errors: errs}
}
