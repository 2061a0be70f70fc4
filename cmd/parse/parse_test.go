/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parse

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"bennypowers.dev/blueprint/parser"
	"bennypowers.dev/blueprint/token"
)

func TestBatchText_FromCSS(t *testing.T) {
	text, err := batchText([]byte(":root {\n  --sm: 4px;\n  margin: 0;\n}\n"), true)
	if err != nil {
		t.Fatal(err)
	}
	if text != "--sm: 4px;\n" {
		t.Errorf("batchText() = %q", text)
	}

	text, err = batchText([]byte("--sm: 4px;"), false)
	if err != nil || text != "--sm: 4px;" {
		t.Errorf("batchText() = %q, %v", text, err)
	}
}

func TestWriteTable(t *testing.T) {
	result := parser.ParseBatch(token.Spacing, "// spacing\n--sm: 4px;\n--sm: 8px;\nnope")
	var buf bytes.Buffer
	if err := writeTable(&buf, result); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if strings.Contains(out, "spacing") {
		t.Errorf("comment lines should be hidden:\n%s", out)
	}
	for _, want := range []string{
		"batch_conflict",
		"parse",
		"Unable to parse line as token declaration",
		"1 entries, 3 lines with errors",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	Cmd.SetIn(strings.NewReader("--brand: #fff;\n--brand: #000;\n"))
	Cmd.SetArgs([]string{"--category", "colors", "--format", "entries", "-"})

	err := Cmd.Execute()
	if !errors.Is(err, ErrBatchInvalid) {
		t.Fatalf("expected ErrBatchInvalid, got %v", err)
	}
	if !strings.Contains(buf.String(), `"brand": "#fff"`) {
		t.Errorf("expected first occurrence to win:\n%s", buf.String())
	}
}
