/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	disallowedRunPattern = regexp.MustCompile(`[^a-z0-9]+`)
	disallowedPattern    = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRunPattern     = regexp.MustCompile(`-+`)
	numericSuffixPattern = regexp.MustCompile(`-\d+$`)
)

// fallbackName is used when nothing usable remains of the input.
const fallbackName = "t"

// SuggestName repairs input into a name that satisfies NamePattern.
// The same input always yields the same suggestion.
//
//	SuggestName("Primary Color / Brand") == "primary-color-brand"
//	SuggestName("   ") == "t"
func SuggestName(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = disallowedRunPattern.ReplaceAllString(s, "-")
	s = hyphenRunPattern.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	s = strings.TrimLeftFunc(s, func(r rune) bool { return r < 'a' || r > 'z' })
	if s == "" {
		s = fallbackName
	}
	if !startsWithLetter(s) {
		s = fallbackName + "-" + s
	}
	if !NamePattern.MatchString(s) {
		s = fallbackName + "-" + disallowedPattern.ReplaceAllString(s, "")
		s = hyphenRunPattern.ReplaceAllString(s, "-")
	}
	return s
}

func startsWithLetter(s string) bool {
	return s != "" && s[0] >= 'a' && s[0] <= 'z'
}

// EnsureUnique returns proposed, or the first free "<root>-N" (N ≥ 2) when
// proposed or its root collides with existing. The root is proposed without
// any trailing "-<digits>", so "gap-3" against {gap, gap-2, gap-3} yields "gap-4".
func EnsureUnique(existing []string, proposed string) string {
	root := numericSuffixPattern.ReplaceAllString(proposed, "")
	if !slices.Contains(existing, proposed) && !slices.Contains(existing, root) {
		return proposed
	}
	taken := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		taken[name] = struct{}{}
	}
	for i := 2; ; i++ {
		candidate := root + "-" + strconv.Itoa(i)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}
