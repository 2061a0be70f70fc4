/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"fmt"
	"strings"
)

// Category is one of the fixed token categories of a project.
// Each category has its own value grammar.
type Category int

const (
	// Colors holds hex and rgb()/rgba() color values.
	Colors Category = iota

	// Spacing holds lengths in px, rem, em or %.
	Spacing

	// Radii holds border radii in px, rem or %.
	Radii

	// Shadows holds free-form box-shadow values.
	Shadows
)

// Categories lists every category in canonical order.
var Categories = []Category{Colors, Spacing, Radii, Shadows}

// String returns the plural category name used in project documents.
func (c Category) String() string {
	switch c {
	case Colors:
		return "colors"
	case Spacing:
		return "spacing"
	case Radii:
		return "radii"
	case Shadows:
		return "shadows"
	default:
		return "unknown"
	}
}

// Singular returns the singular form, e.g. "color" for Colors.
func (c Category) Singular() string {
	switch c {
	case Colors:
		return "color"
	case Spacing:
		return "spacing"
	case Radii:
		return "radius"
	case Shadows:
		return "shadow"
	default:
		return "unknown"
	}
}

// ParseCategory accepts plural or singular category names, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "colors", "color":
		return Colors, nil
	case "spacing":
		return Spacing, nil
	case "radii", "radius":
		return Radii, nil
	case "shadows", "shadow":
		return Shadows, nil
	default:
		return 0, fmt.Errorf("unknown token category %q (want colors, spacing, radii or shadows)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
