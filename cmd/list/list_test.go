/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"bytes"
	"strings"
	"testing"

	"bennypowers.dev/blueprint/cmd/render"
	"bennypowers.dev/blueprint/derived"
)

func TestFilterEntries(t *testing.T) {
	entries := []derived.Entry{
		{Category: "colors", Name: "brand", Value: "#ff0000"},
		{Category: "colors", Name: "ink", Value: "#000"},
		{Category: "spacing", Name: "sm", Value: "4px"},
		{Category: "fontSizes", Name: "font-size-0", Value: "0.64rem", Virtual: true, Source: derived.SourceTypographyScale},
	}

	t.Run("no filters", func(t *testing.T) {
		result := filterEntries(entries, "", false)
		if len(result) != 4 {
			t.Errorf("expected 4 entries, got %d", len(result))
		}
	})

	t.Run("filter by category", func(t *testing.T) {
		result := filterEntries(entries, "colors", false)
		if len(result) != 2 {
			t.Errorf("expected 2 color entries, got %d", len(result))
		}
		for _, e := range result {
			if e.Category != "colors" {
				t.Errorf("expected category colors, got %s", e.Category)
			}
		}
	})

	t.Run("hide virtual", func(t *testing.T) {
		result := filterEntries(entries, "", true)
		if len(result) != 3 {
			t.Errorf("expected 3 stored entries, got %d", len(result))
		}
		for _, e := range result {
			if e.Virtual {
				t.Errorf("expected stored entry, got virtual %s", e.Name)
			}
		}
	})

	t.Run("virtual category hidden", func(t *testing.T) {
		result := filterEntries(entries, "fontSizes", true)
		if len(result) != 0 {
			t.Errorf("expected 0 entries, got %d", len(result))
		}
	})
}

func TestOutput(t *testing.T) {
	rows := render.ComputeRows([]derived.Entry{
		{Category: "spacing", Name: "sm", Value: "4px"},
	}, "ds")

	t.Run("css", func(t *testing.T) {
		var buf bytes.Buffer
		if err := output(&buf, "css", rows, "", false); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "--ds-sm: 4px;") {
			t.Errorf("unexpected css output:\n%s", buf.String())
		}
	})

	t.Run("names", func(t *testing.T) {
		var buf bytes.Buffer
		if err := output(&buf, "names", rows, "", false); err != nil {
			t.Fatal(err)
		}
		if strings.TrimSpace(buf.String()) != "--ds-sm" {
			t.Errorf("unexpected names output: %q", buf.String())
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if err := output(&bytes.Buffer{}, "xml", rows, "", false); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}
