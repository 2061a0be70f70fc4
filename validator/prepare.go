/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import "bennypowers.dev/blueprint/token"

// PrepareOptions configures PrepareInsertion.
type PrepareOptions struct {
	// AutoSuggestName replaces an invalid name with SuggestName's repair.
	AutoSuggestName bool

	// AutoNormalizeValue replaces the value with its normalized form.
	AutoNormalizeValue bool

	// EnsureUnique resolves the name against the existing names.
	EnsureUnique bool

	// IncludeHeuristics adds style warnings to the final report.
	IncludeHeuristics bool
}

// Input is the name/value pair as the user supplied it.
type Input struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Prepared is the outcome of PrepareInsertion.
type Prepared struct {
	Input         Input  `json:"input"`
	FinalName     string `json:"finalName"`
	FinalValue    string `json:"finalValue"`
	DidChangeName bool   `json:"didChangeName"`
	// DidChangeValue is true when normalization altered the value.
	DidChangeValue bool `json:"didChangeValue"`
	// Report validates FinalName and FinalValue.
	Report Report `json:"report"`
	// SuggestedName is set when an invalid input name was repaired.
	SuggestedName string `json:"suggestedName,omitempty"`
	// NormalizedValue is set when normalization altered the input value.
	NormalizedValue string `json:"normalizedValue,omitempty"`
}

// PrepareInsertion runs the repair pipeline used before adding a token:
// name suggestion, uniqueness resolution, value normalization, then validation
// of the result. Each stage only runs when enabled in opts.
func PrepareInsertion(c token.Category, name, value string, existing []string, opts PrepareOptions) Prepared {
	out := Prepared{Input: Input{Name: name, Value: value}}
	workingName, workingValue := name, value

	if opts.AutoSuggestName && ValidateName(workingName) != nil {
		if suggestion := SuggestName(workingName); suggestion != workingName {
			out.SuggestedName = suggestion
			workingName = suggestion
		}
	}

	if opts.EnsureUnique {
		workingName = EnsureUnique(existing, workingName)
	}

	if opts.AutoNormalizeValue {
		if norm := Normalize(c, workingValue); norm != workingValue {
			out.NormalizedValue = norm
			workingValue = norm
		}
	}

	out.FinalName = workingName
	out.FinalValue = workingValue
	out.DidChangeName = workingName != name
	out.DidChangeValue = workingValue != value
	out.Report = Validate(c, workingName, workingValue, Options{
		IncludeHeuristics:    opts.IncludeHeuristics,
		IncludeNormalization: opts.AutoNormalizeValue,
	})
	return out
}
