/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator validates, normalizes and repairs design token names and values.
//
// Invalid input is never an error in the Go sense: every function returns a
// structured result the caller can surface inline.
package validator

import (
	"strings"
)

// Code classifies a validation finding.
type Code string

const (
	// CodeInvalidName means the name fails the identifier grammar.
	CodeInvalidName Code = "invalid_name"

	// CodeInvalidValue means the value fails its category grammar, or a batch
	// line fails the declaration grammar.
	CodeInvalidValue Code = "invalid_value"

	// CodeDuplicateName means the name already exists in the target category.
	CodeDuplicateName Code = "duplicate_name"

	// CodeNotFound means a referenced token does not exist.
	CodeNotFound Code = "not_found"

	// CodeBatchConflict means the same name appears more than once in one batch.
	CodeBatchConflict Code = "batch_conflict"

	// CodeStyleWarning is a non-blocking naming heuristic.
	CodeStyleWarning Code = "style_warning"
)

// Field is the part of the input a finding applies to.
type Field string

// Fields a finding can apply to.
const (
	FieldName    Field = "name"
	FieldValue   Field = "value"
	FieldGeneral Field = "general"
)

// Severity decides whether a finding blocks validity.
type Severity string

// Severities. Only SeverityError blocks validity.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationError is a single validation finding.
type ValidationError struct {
	// Code classifies the finding.
	Code Code `json:"code"`
	// Field is the input the finding applies to.
	Field Field `json:"field"`
	// Message is a human-readable description.
	Message string `json:"message"`
	// Severity is SeverityError or SeverityWarning.
	Severity Severity `json:"severity"`
	// Details carries optional structured context.
	Details map[string]string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.Field != "" {
		sb.WriteString(string(e.Field))
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Code != "" {
		sb.WriteString(" (")
		sb.WriteString(string(e.Code))
		sb.WriteString(")")
	}
	return sb.String()
}

// Blocking reports whether e makes its input invalid. Warnings never block.
func (e ValidationError) Blocking() bool {
	return e.Severity != SeverityWarning
}

// Summary counts findings by severity.
type Summary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Summarize counts errs by severity. Findings without a severity count as errors.
func Summarize(errs []ValidationError) Summary {
	var s Summary
	for _, e := range errs {
		if e.Blocking() {
			s.Errors++
		} else {
			s.Warnings++
		}
	}
	return s
}

// HasBlocking reports whether any of errs blocks validity.
func HasBlocking(errs []ValidationError) bool {
	for _, e := range errs {
		if e.Blocking() {
			return true
		}
	}
	return false
}
