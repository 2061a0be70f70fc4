/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package utilities

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/blueprint/cmd/workspace"
	"bennypowers.dev/blueprint/config"
	"bennypowers.dev/blueprint/internal/mapfs"
	"bennypowers.dev/blueprint/utilities"
)

const project = `name: Brand
tokens:
  spacing:
    sm: 4px
  colors:
    brand: "#ff0000"
typography:
  scale:
    presets: [12, 16, 20]
`

func newGenerator(t *testing.T, family, format, output string) (*generator, *mapfs.MapFileSystem, *bytes.Buffer) {
	t.Helper()
	mfs := mapfs.New()
	mfs.AddFile("/work/brand.yaml", project, 0o644)
	cache, err := utilities.NewCache(4)
	require.NoError(t, err)
	var stdout bytes.Buffer
	return &generator{
		ws:     &workspace.Workspace{FS: mfs, Root: "/work", Config: config.Default()},
		path:   "brand.yaml",
		cache:  cache,
		family: family,
		format: format,
		output: output,
		stdout: &stdout,
	}, mfs, &stdout
}

func TestGenerate_Stdout(t *testing.T) {
	g, _, stdout := newGenerator(t, "", "css", "")
	require.NoError(t, g.generate(context.Background()))

	css := stdout.String()
	assert.Contains(t, css, ".text-0{font-size:0.75rem;}")
	assert.Contains(t, css, ".p-sm{padding:4px;}")
	assert.Contains(t, css, ".bg-brand{background-color:#ff0000;}")
}

func TestGenerate_FamilyToFile(t *testing.T) {
	g, mfs, stdout := newGenerator(t, utilities.FamilyColor, "css", "/work/out.css")
	require.NoError(t, g.generate(context.Background()))
	assert.Empty(t, stdout.String())

	data, err := mfs.ReadFile("/work/out.css")
	require.NoError(t, err)
	assert.Contains(t, string(data), ".text-brand{color:#ff0000;}")
	assert.NotContains(t, string(data), "padding")
}

func TestGenerate_CacheHit(t *testing.T) {
	g, _, stdout := newGenerator(t, "", "json", "")
	require.NoError(t, g.generate(context.Background()))
	require.NoError(t, g.generate(context.Background()))
	assert.Equal(t, 1, g.cache.Len())
	assert.Equal(t, 2, strings.Count(stdout.String(), `"totalClasses"`))
}

func TestSelectCSS(t *testing.T) {
	out := utilities.Output{
		Segments: []utilities.Segment{
			{Family: utilities.FamilyFontSize, CSS: "a"},
			{Family: utilities.FamilySpacing, CSS: "b"},
		},
		Concatenated: "ab",
	}
	assert.Equal(t, "ab", selectCSS(out, ""))
	assert.Equal(t, "b", selectCSS(out, utilities.FamilySpacing))
	assert.Equal(t, "", selectCSS(out, utilities.FamilyColor))
}

func TestWatchLoop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brand.yaml")
	require.NoError(t, os.WriteFile(path, []byte(project), 0o644))

	w, err := newWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, w, path, func() { calls <- struct{}{} })
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(project+"\n"), 0o644))

	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for regeneration")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch loop did not stop")
	}
}
