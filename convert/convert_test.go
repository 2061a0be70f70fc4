/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/blueprint/derived"
)

var entries = []derived.Entry{
	{Category: "colors", Name: "brand", Value: "#ff0000"},
	{Category: "colors", Name: "veil", Value: "rgba(0, 0, 0, 0.5)"},
	{Category: "fontSizes", Name: "font-size-0", Value: "0.75rem", Virtual: true, Source: derived.SourceTypographyScale},
	{Category: "shadows", Name: "card", Value: "0 1px 2px #000"},
	{Category: "spacing", Name: "sm", Value: "4px"},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatDTCG},
		{"flat", FormatFlatJSON},
		{"XML", FormatAndroid},
		{"ios", FormatSwift},
		{"ts", FormatTypeScript},
		{"sass", FormatSCSS},
		{"lit", FormatLitCSS},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.in)
	}
	_, err := ParseFormat("yaml")
	assert.ErrorContains(t, err, "unknown format")
	assert.Equal(t, ".swift", FormatSwift.Extension())
	assert.Equal(t, ".json", FormatDTCG.Extension())
}

func TestConvert_DTCG(t *testing.T) {
	data, err := Convert(entries, FormatDTCG, Options{})
	require.NoError(t, err)

	var doc map[string]map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "color", doc["colors"]["brand"]["$type"])
	assert.Equal(t, "#ff0000", doc["colors"]["brand"]["$value"])
	assert.Equal(t, "dimension", doc["fontSizes"]["font-size-0"]["$type"])
	assert.Contains(t, doc["fontSizes"]["font-size-0"], "$extensions")
	assert.NotContains(t, doc["spacing"]["sm"], "$extensions")
}

func TestConvert_FlatJSON(t *testing.T) {
	data, err := Convert(entries, FormatFlatJSON, Options{Prefix: "ds", Delimiter: "."})
	require.NoError(t, err)

	var flat map[string]string
	require.NoError(t, json.Unmarshal(data, &flat))
	assert.Equal(t, "4px", flat["ds.spacing.sm"])
	assert.Len(t, flat, len(entries))
}

func TestConvert_Android(t *testing.T) {
	data, err := Convert(entries, FormatAndroid, Options{})
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `<color name="colors_brand">#FF0000</color>`)
	assert.Regexp(t, `<color name="colors_veil">#[0-9A-F]{2}000000</color>`, out)
	assert.Contains(t, out, `<dimen name="font_sizes_font_size0">12sp</dimen>`)
	assert.Contains(t, out, `<dimen name="spacing_sm">4dp</dimen>`)
	assert.Contains(t, out, `<string name="shadows_card">0 1px 2px #000</string>`)
}

func TestConvert_Swift(t *testing.T) {
	data, err := Convert(entries, FormatSwift, Options{})
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "public static let colorsBrand = Color(red: 1, green: 0, blue: 0, opacity: 1)")
	assert.Contains(t, out, "public static let spacingSm: CGFloat = 4")
	assert.Contains(t, out, "public static let fontSizesFontSize0: CGFloat = 12")
	assert.Contains(t, out, `public static let shadowsCard = "0 1px 2px #000"`)
}

func TestConvert_TypeScript(t *testing.T) {
	data, err := Convert(entries[:1], FormatTypeScript, Options{Prefix: "ds"})
	require.NoError(t, err)
	assert.Equal(t, "export const dsColorsBrand = \"#ff0000\" as const;\n", string(data))
}

func TestConvert_Stylesheets(t *testing.T) {
	sample := []derived.Entry{{Category: "spacing", Name: "sm", Value: "4px"}}

	css, err := Convert(sample, FormatCSS, Options{Prefix: "ds"})
	require.NoError(t, err)
	assert.Equal(t, ":root {\n  --ds-sm: 4px;\n}\n", string(css))

	scss, err := Convert(sample, FormatSCSS, Options{})
	require.NoError(t, err)
	assert.Equal(t, "$sm: 4px;\n", string(scss))

	lit, err := Convert(sample, FormatLitCSS, Options{})
	require.NoError(t, err)
	assert.Contains(t, string(lit), "export const tokens = css`\n:root {\n  --sm: 4px;\n}\n`;\n")
}

func TestSplitIntoWords(t *testing.T) {
	assert.Equal(t, []string{"font", "size0"}, splitIntoWords("font-size-0"))
	assert.Equal(t, []string{"font", "Sizes", "x"}, splitIntoWords("fontSizes-x"))
	assert.Equal(t, "fontSizesFontSize0", toCamelCase("fontSizes-font-size-0"))
	assert.Equal(t, "font_sizes_font_size0", toSnakeCase("fontSizes-font-size-0"))
}
