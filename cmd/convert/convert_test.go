/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/blueprint/config"
	"bennypowers.dev/blueprint/derived"
	"bennypowers.dev/blueprint/internal/mapfs"
)

var entries = []derived.Entry{
	{Category: "colors", Name: "brand", Value: "#ff0000"},
	{Category: "spacing", Name: "sm", Value: "4px"},
}

func TestParseOutputs(t *testing.T) {
	outputs, err := parseOutputs([]string{"scss:tokens.scss", "css:css/{category}.css"})
	require.NoError(t, err)
	assert.Equal(t, []config.OutputSpec{
		{Format: "scss", Path: "tokens.scss"},
		{Format: "css", Path: "css/{category}.css"},
	}, outputs)

	_, err = parseOutputs([]string{"tokens.scss"})
	assert.ErrorContains(t, err, "expected format:path")
}

func TestWriteOutputs(t *testing.T) {
	mfs := mapfs.New()
	err := writeOutputs(mfs, entries, []config.OutputSpec{
		{Format: "scss", Path: "/out/tokens.scss"},
		{Format: "css", Path: "/out/css/{category}.css", Prefix: "bp"},
	}, "ds")
	require.NoError(t, err)

	scss, err := mfs.ReadFile("/out/tokens.scss")
	require.NoError(t, err)
	assert.Equal(t, "$ds-brand: #ff0000;\n$ds-sm: 4px;\n", string(scss))

	colors, err := mfs.ReadFile("/out/css/colors.css")
	require.NoError(t, err)
	assert.Equal(t, ":root {\n  --bp-brand: #ff0000;\n}\n", string(colors))

	spacing, err := mfs.ReadFile("/out/css/spacing.css")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(spacing), "--bp-sm: 4px;"))
}

func TestWriteOutputs_ContinuesPastFailures(t *testing.T) {
	mfs := mapfs.New()
	err := writeOutputs(mfs, entries, []config.OutputSpec{
		{Format: "yaml", Path: "/out/bad.yaml"},
		{Format: "json", Path: "/out/good.json"},
	}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/out/bad.yaml")
	assert.True(t, mfs.Exists("/out/good.json"))
}
