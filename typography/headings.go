/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package typography

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Level is an HTML heading level.
type Level string

// Heading levels, largest first.
const (
	H1 Level = "h1"
	H2 Level = "h2"
	H3 Level = "h3"
	H4 Level = "h4"
	H5 Level = "h5"
	H6 Level = "h6"
)

// Levels lists every heading level in order.
var Levels = []Level{H1, H2, H3, H4, H5, H6}

// HeadingsMap assigns a type scale step name to each heading level.
type HeadingsMap map[Level]string

// Clone returns a copy of m.
func (m HeadingsMap) Clone() HeadingsMap {
	if m == nil {
		return nil
	}
	out := make(HeadingsMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// DefaultHeadings maps h1..h6 onto the six largest steps, largest first.
// When fewer than six steps exist the remaining levels reuse the smallest.
// With no steps at all every level maps to the empty name.
func DefaultHeadings(steps []Step) HeadingsMap {
	sorted := slices.Clone(steps)
	slices.SortStableFunc(sorted, func(a, b Step) int {
		return cmp.Compare(b.Px, a.Px)
	})

	m := make(HeadingsMap, len(Levels))
	for i, level := range Levels {
		switch {
		case len(sorted) == 0:
			m[level] = ""
		case i < len(sorted):
			m[level] = sorted[i].Name
		default:
			m[level] = sorted[len(sorted)-1].Name
		}
	}
	return m
}

// HeadingError reports a heading level that references a missing step.
type HeadingError struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e HeadingError) Error() string {
	return e.Message
}

// HeadingsResult is the outcome of ValidateHeadings.
type HeadingsResult struct {
	OK     bool           `json:"ok"`
	Errors []HeadingError `json:"errors,omitempty"`
}

// ValidateHeadings checks that every level of m names one of available.
// Levels are checked in order h1..h6 so errors are reported deterministically.
func ValidateHeadings(m HeadingsMap, available []string) HeadingsResult {
	known := make(map[string]struct{}, len(available))
	for _, name := range available {
		known[name] = struct{}{}
	}

	var errs []HeadingError
	for _, level := range Levels {
		name := m[level]
		if _, ok := known[name]; ok {
			continue
		}
		errs = append(errs, HeadingError{
			Level:   level,
			Message: fmt.Sprintf("Heading %s references missing token %s", strings.ToUpper(string(level)), name),
		})
	}
	return HeadingsResult{OK: len(errs) == 0, Errors: errs}
}
