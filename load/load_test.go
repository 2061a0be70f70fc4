/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load_test

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"bennypowers.dev/blueprint/config"
	"bennypowers.dev/blueprint/internal/mapfs"
	"bennypowers.dev/blueprint/load"
	"bennypowers.dev/blueprint/token"
	"bennypowers.dev/blueprint/typography"
)

func testdataDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata")
}

func TestLoad_YAML(t *testing.T) {
	p, err := load.Load(t.Context(), "brand.yaml", load.Options{Root: testdataDir()})
	require.NoError(t, err)

	assert.Equal(t, "Brand", p.Name)
	assert.Equal(t, "brand", p.Prefix)
	assert.Equal(t, "#ff6b35", p.Tokens.Colors["primary"])
	assert.Equal(t, []string{"md", "sm"}, p.Tokens.Names(token.Spacing))
	assert.Equal(t, 1.2, p.Typography.Scale.Ratio)
	assert.Equal(t, "font-size-6", p.Typography.Headings[typography.H1])
}

func TestLoad_JSONC(t *testing.T) {
	p, err := load.Load(t.Context(), "marketing.jsonc", load.Options{
		Root:   testdataDir(),
		Prefix: "mk",
		Strict: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Marketing", p.Name)
	assert.Equal(t, "mk", p.Prefix)
	assert.Equal(t, []float64{12, 16, 24}, p.Typography.Scale.Presets)
	assert.Equal(t, typography.DefaultBase, p.Typography.Scale.Base)
	assert.Equal(t, "font-size-1", p.Typography.Headings[typography.H3])
	assert.NotNil(t, p.Tokens.Radii)
}

func TestLoad_Strict(t *testing.T) {
	_, err := load.Load(t.Context(), "invalid.yaml", load.Options{Root: testdataDir()})
	require.NoError(t, err)

	_, err = load.Load(t.Context(), "invalid.yaml", load.Options{Root: testdataDir(), Strict: true})
	require.Error(t, err)
	errs := multierr.Errors(errors.Unwrap(err))
	assert.Len(t, errs, 3)
	assert.Contains(t, err.Error(), `color "Primary"`)
	assert.Contains(t, err.Error(), `spacing "md"`)
	assert.Contains(t, err.Error(), "Heading H1 references missing token font-size-9")
}

func TestLoad_ConfigDefaults(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/work/.config/blueprint.yaml", "prefix: cfg\ntypography:\n  ratio: 1.5\n", 0o644)
	mfs.AddFile("/work/plain.yml", "name: Plain\ntokens:\n  colors:\n    a: \"#000\"\n", 0o644)

	p, err := load.Load(t.Context(), "plain.yml", load.Options{Root: "/work", FS: mfs})
	require.NoError(t, err)
	assert.Equal(t, "cfg", p.Prefix)
	assert.Equal(t, 1.5, p.Typography.Scale.Ratio)
	assert.Len(t, p.Typography.Headings, 6)
}

func TestLoad_Errors(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/work/tokens.css", ":root{}", 0o644)
	mfs.AddFile("/work/bad.json", "{ name: ", 0o644)
	opts := load.Options{Root: "/work", FS: mfs, Config: config.Default()}

	_, err := load.Load(t.Context(), "tokens.css", opts)
	assert.ErrorIs(t, err, load.ErrUnsupportedFormat)

	_, err = load.Load(t.Context(), "missing.yaml", opts)
	assert.Error(t, err)

	_, err = load.Load(t.Context(), "bad.json", opts)
	assert.ErrorContains(t, err, "failed to parse JSON")
}

func TestLoadAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := load.LoadAll(ctx, []string{"brand.yaml"}, load.Options{Root: testdataDir()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecode_Auto(t *testing.T) {
	p, err := load.Decode([]byte(`{"name": "Sniffed"}`), load.FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, "Sniffed", p.Name)

	p, err = load.Decode([]byte("name: Sniffed\n"), load.FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, "Sniffed", p.Name)
	assert.NotNil(t, p.Tokens.Colors)
}

func TestSave_RoundTrip(t *testing.T) {
	for _, name := range []string{"out.yaml", "out.json"} {
		t.Run(name, func(t *testing.T) {
			mfs := mapfs.New()
			opts := load.Options{Root: "/work", FS: mfs, Config: config.Default()}

			p := load.ApplyDefaults(token.Project{Name: "Saved", Tokens: token.NewSet()}, opts.Config)
			p.Tokens.Spacing["sm"] = "4px"
			require.NoError(t, load.Save(name, p, opts))

			got, err := load.Load(t.Context(), name, opts)
			require.NoError(t, err)
			assert.Equal(t, "Saved", got.Name)
			assert.Equal(t, "4px", got.Tokens.Spacing["sm"])
			assert.Equal(t, p.Typography.Headings, got.Typography.Headings)
		})
	}
}

func TestSave_UnsupportedFormat(t *testing.T) {
	err := load.Save("out.toml", token.Project{}, load.Options{FS: mapfs.New()})
	assert.ErrorIs(t, err, load.ErrUnsupportedFormat)
}
