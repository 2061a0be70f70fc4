/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package project

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/blueprint/cmd/workspace"
	"bennypowers.dev/blueprint/config"
	"bennypowers.dev/blueprint/internal/mapfs"
	"bennypowers.dev/blueprint/load"
	"bennypowers.dev/blueprint/token"
	"bennypowers.dev/blueprint/typography"
	"bennypowers.dev/blueprint/validator"
)

func newWorkspace() (*workspace.Workspace, *mapfs.MapFileSystem) {
	mfs := mapfs.New()
	return &workspace.Workspace{FS: mfs, Root: "/work", Config: config.Default()}, mfs
}

func newCommand(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.SetContext(t.Context())
	var out bytes.Buffer
	cmd.SetOut(&out)
	return cmd, &out
}

func TestEditCycle(t *testing.T) {
	ws, mfs := newWorkspace()
	cmd, out := newCommand(t)

	require.NoError(t, initProject(cmd, ws, "Brand", "brand.yaml"))
	assert.Contains(t, out.String(), "created brand.yaml")
	assert.Error(t, initProject(cmd, ws, "Brand", "brand.yaml"), "existing file must not be overwritten")

	s, err := openIn(cmd, ws, "brand.yaml")
	require.NoError(t, err)
	require.NoError(t, s.commit(s.store.AddToken(token.Spacing, "sm", "4px")))

	before, err := mfs.ReadFile("/work/brand.yaml")
	require.NoError(t, err)

	s, err = openIn(cmd, ws, "brand.yaml")
	require.NoError(t, err)
	err = s.commit(s.store.AddToken(token.Spacing, "sm", "8px"))
	require.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, out.String(), "already exists")

	after, err := mfs.ReadFile("/work/brand.yaml")
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "rejected edit must leave the file unchanged")

	s, err = openIn(cmd, ws, "brand.yaml")
	require.NoError(t, err)
	require.NoError(t, s.commit(s.store.RenameToken(token.Spacing, "sm", "gutter")))

	p, err := load.Load(t.Context(), "brand.yaml", ws.LoadOptions(false))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"gutter": "4px"}, p.Tokens.Spacing)
	assert.NotEmpty(t, p.ID)
}

func TestImportBatchCommit(t *testing.T) {
	ws, _ := newWorkspace()
	cmd, _ := newCommand(t)
	require.NoError(t, initProject(cmd, ws, "Brand", "brand.json"))

	s, err := openIn(cmd, ws, "brand.json")
	require.NoError(t, err)
	_, result := s.store.ImportBatch(token.Colors, "--ink: #000;\n--paper: #FFF;")
	require.NoError(t, s.commit(result))

	p, err := load.Load(t.Context(), "brand.json", ws.LoadOptions(false))
	require.NoError(t, err)
	assert.Equal(t, []string{"ink", "paper"}, p.Tokens.Names(token.Colors))
}

func TestCommit_NotFoundHint(t *testing.T) {
	ws, _ := newWorkspace()
	cmd, out := newCommand(t)
	require.NoError(t, initProject(cmd, ws, "Brand", "brand.yaml"))

	s, err := openIn(cmd, ws, "brand.yaml")
	require.NoError(t, err)
	require.NoError(t, s.commit(s.store.AddToken(token.Radii, "round", "4px")))

	s, err = openIn(cmd, ws, "brand.yaml")
	require.NoError(t, err)
	result := s.store.DeleteToken(token.Radii, "rund")
	require.False(t, result.OK)
	assert.Equal(t, validator.CodeNotFound, result.Errors[0].Code)
	assert.ErrorIs(t, s.commit(result), ErrRejected)
	assert.Contains(t, out.String(), "did you mean round?")
}

func TestParseAssignments(t *testing.T) {
	base := typography.HeadingsMap{typography.H1: "font-size-6"}

	m, err := parseAssignments(base, []string{"h2=font-size-4", "H3 = 3"})
	require.NoError(t, err)
	assert.Equal(t, "font-size-6", m[typography.H1])
	assert.Equal(t, "font-size-4", m[typography.H2])
	assert.Equal(t, "font-size-3", m[typography.H3])
	assert.Len(t, base, 1, "base must not be modified")

	_, err = parseAssignments(base, []string{"h7=font-size-1"})
	assert.Error(t, err)
	_, err = parseAssignments(base, []string{"h1"})
	assert.Error(t, err)
}
