/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/blueprint/parser"
	"bennypowers.dev/blueprint/token"
	"bennypowers.dev/blueprint/validator"
)

func codes(errs []validator.ValidationError) []validator.Code {
	var out []validator.Code
	for _, e := range errs {
		out = append(out, e.Code)
	}
	return out
}

func TestParseBatch_Duplicates(t *testing.T) {
	res := parser.ParseBatch(token.Colors, "--dup: #111111;\n--dup: #222222;")

	assert.False(t, res.OK)
	assert.Equal(t, map[string]string{"dup": "#111111"}, res.Entries)
	require.Len(t, res.Lines, 2)
	for _, line := range res.Lines {
		assert.Contains(t, codes(line.Errors), validator.CodeBatchConflict)
		assert.Contains(t, line.ErrorCodes, "batch_conflict")
	}
	assert.Len(t, res.Errors, 2)

	conflict := res.Lines[1].Errors[0]
	assert.Equal(t, validator.FieldName, conflict.Field)
	assert.Equal(t, "dup", conflict.Details["name"])
}

func TestParseBatch_DuplicateAfterInvalid(t *testing.T) {
	res := parser.ParseBatch(token.Colors, "--dup: nope;\n--dup: #222222;")

	assert.False(t, res.OK)
	assert.Equal(t, "#222222", res.Entries["dup"])
	assert.Equal(t, []validator.Code{validator.CodeInvalidValue, validator.CodeBatchConflict}, codes(res.Lines[0].Errors))
	assert.Equal(t, []validator.Code{validator.CodeBatchConflict}, codes(res.Lines[1].Errors))
}

func TestParseBatch_InertLines(t *testing.T) {
	text := "\n   \n// comment\n/* block */\n * star\n# hash\n--md: 8px;"
	res := parser.ParseBatch(token.Spacing, text)

	assert.True(t, res.OK)
	assert.Empty(t, res.Errors)
	assert.Equal(t, map[string]string{"md": "8px"}, res.Entries)
	require.Len(t, res.Lines, 7)
	for _, line := range res.Lines[:6] {
		assert.False(t, line.Declared(), "line %d", line.Line)
		assert.Empty(t, line.Errors, "line %d", line.Line)
	}
	assert.Equal(t, 7, res.Lines[6].Line)
}

func TestParseBatch_Grammar(t *testing.T) {
	tests := []struct {
		name      string
		category  token.Category
		line      string
		wantName  string
		wantValue string
		wantCodes []validator.Code
	}{
		{"custom property", token.Colors, "--brand: #ffffff;", "brand", "#ffffff", nil},
		{"no dashes", token.Spacing, "gap: 4px", "gap", "4px", nil},
		{"surrounding whitespace", token.Radii, "   --sm :   2px ;  ", "sm", "2px", nil},
		{"underscore accepted by grammar", token.Spacing, "--a_b: 4px;", "a_b", "4px", []validator.Code{validator.CodeInvalidName}},
		{"uppercase name", token.Colors, "--Brand: #fff;", "Brand", "#fff", []validator.Code{validator.CodeInvalidName}},
		{"bad value", token.Spacing, "--md: large;", "md", "large", []validator.Code{validator.CodeInvalidValue}},
		{"shadow value", token.Shadows, "--card: 0 1px 2px rgba(0,0,0,.2);", "card", "0 1px 2px rgba(0,0,0,.2)", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parser.ParseBatch(tt.category, tt.line)
			require.Len(t, res.Lines, 1)
			line := res.Lines[0]
			assert.Equal(t, tt.wantName, line.Name)
			assert.Equal(t, tt.wantValue, line.Value)
			assert.Equal(t, tt.wantCodes, codes(line.Errors))
			assert.Equal(t, tt.wantCodes == nil, res.OK)
		})
	}
}

func TestParseBatch_Unparseable(t *testing.T) {
	for _, input := range []string{"just text", "--: 4px;", "--a: 1px; extra", "-x: 1px"} {
		t.Run(input, func(t *testing.T) {
			res := parser.ParseBatch(token.Spacing, input)
			require.Len(t, res.Lines, 1)
			line := res.Lines[0]
			assert.False(t, res.OK)
			assert.Equal(t, []string{parser.ErrorCodeParse}, line.ErrorCodes)
			require.Len(t, line.Errors, 1)
			assert.Equal(t, validator.CodeInvalidValue, line.Errors[0].Code)
			assert.Equal(t, validator.FieldGeneral, line.Errors[0].Field)
			assert.Empty(t, res.Entries)
		})
	}
}

func TestParseBatch_LineEndings(t *testing.T) {
	unix := parser.ParseBatch(token.Spacing, "--sm: 4px;\n--md: 8px;")
	windows := parser.ParseBatch(token.Spacing, "--sm: 4px;\r\n--md: 8px;")
	assert.Equal(t, unix.Entries, windows.Entries)
	assert.Len(t, windows.Lines, 2)
	assert.Equal(t, "--sm: 4px;", windows.Lines[0].Raw)
}

func TestExtractStylesheet(t *testing.T) {
	css := []byte(`:root {
  --brand: #ff0000;
  color: red;
  --space-md: 8px;
}

.card {
  --card-shadow: 0 1px 2px black;
}

.raised {
  --shadow: 0 1px 2px red,
    0 2px 4px blue;
}
`)
	decls, err := parser.ExtractStylesheet(css)
	require.NoError(t, err)
	assert.Equal(t, []parser.Declaration{
		{Name: "brand", Value: "#ff0000", Line: 2},
		{Name: "space-md", Value: "8px", Line: 4},
		{Name: "card-shadow", Value: "0 1px 2px black", Line: 8},
		{Name: "shadow", Value: "0 1px 2px red, 0 2px 4px blue", Line: 12},
	}, decls)

	res := parser.ParseBatch(token.Shadows, parser.RenderBatch(decls[2:]))
	assert.True(t, res.OK)
	assert.Equal(t, map[string]string{
		"card-shadow": "0 1px 2px black",
		"shadow":      "0 1px 2px red, 0 2px 4px blue",
	}, res.Entries)

	batch := parser.RenderBatch(decls[:2])
	assert.Equal(t, "--brand: #ff0000;\n--space-md: 8px;\n", batch)
}

func TestExtractStylesheet_Empty(t *testing.T) {
	decls, err := parser.ExtractStylesheet([]byte(".a { color: red; }"))
	require.NoError(t, err)
	assert.Empty(t, decls)
}

func TestCheckStylesheet(t *testing.T) {
	assert.NoError(t, parser.CheckStylesheet([]byte(".m-sm{margin:4px;}.p-sm{padding:4px;}")))

	err := parser.CheckStylesheet([]byte(".m-sm{margin:4px;"))
	assert.ErrorIs(t, err, parser.ErrMalformedStylesheet)
}
