/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package server

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/blueprint/internal/mapfs"
	"bennypowers.dev/blueprint/typography"
	"bennypowers.dev/blueprint/validator"
)

const brand = `name: Brand
tokens:
  spacing:
    sm: 4px
  colors:
    brand: "#ff0000"
typography:
  scale:
    presets: [12, 16, 20]
`

func newServer(t *testing.T) *Server {
	t.Helper()
	mfs := mapfs.New()
	mfs.AddFile("/work/brand.yaml", brand, 0o644)
	s, err := New(Options{FS: mfs, Root: "/work"})
	require.NoError(t, err)
	return s
}

func TestValidateToken(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()

	_, out, err := s.validateToken(ctx, nil, ValidateTokenInput{Category: "colors", Name: "brand", Value: "#ABC", Normalize: true})
	require.NoError(t, err)
	assert.True(t, out.Report.OK)
	require.NotNil(t, out.Report.Normalized)
	assert.Equal(t, "#aabbcc", out.Report.Normalized.Value)
	assert.Nil(t, out.Prepared)

	_, out, err = s.validateToken(ctx, nil, ValidateTokenInput{
		Category: "colors",
		Name:     "Brand Color",
		Value:    "#ABC",
		Prepare:  true,
		Existing: []string{"brand-color"},
	})
	require.NoError(t, err)
	require.NotNil(t, out.Prepared)
	assert.Equal(t, "brand-color-2", out.Prepared.FinalName)
	assert.Equal(t, "#aabbcc", out.Prepared.FinalValue)

	_, _, err = s.validateToken(ctx, nil, ValidateTokenInput{Category: "fonts"})
	assert.Error(t, err)
}

func TestParseBatch(t *testing.T) {
	s := newServer(t)
	_, out, err := s.parseBatch(context.Background(), nil, ParseBatchInput{
		Category: "spacing",
		Text:     ":root { --sm: 4px; --md: 8px; }",
		FromCSS:  true,
	})
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, map[string]string{"sm": "4px", "md": "8px"}, out.Entries)
}

func TestTypeScale(t *testing.T) {
	s := newServer(t)
	_, out, err := s.typeScale(context.Background(), nil, TypeScaleInput{})
	require.NoError(t, err)
	assert.Len(t, out.Steps, 7)
	assert.Equal(t, "font-size-6", out.Headings[typography.H1])

	_, _, err = s.typeScale(context.Background(), nil, TypeScaleInput{Ratio: 0.5})
	assert.True(t, errors.Is(err, typography.ErrInvalidRatio))
}

func TestProjectTools(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()

	_, list, err := s.listTokens(ctx, nil, ProjectInput{Path: "brand.yaml"})
	require.NoError(t, err)
	require.Len(t, list.Entries, 5)
	assert.Equal(t, "colors", list.Entries[0].Category)

	_, css, err := s.generateUtilities(ctx, nil, ProjectInput{Path: "brand.yaml"})
	require.NoError(t, err)
	assert.Equal(t, 3+14+3, css.TotalClasses)

	_, fromPath, err := s.projectDigest(ctx, nil, ProjectInput{Path: "brand.yaml"})
	require.NoError(t, err)
	_, inline, err := s.projectDigest(ctx, nil, ProjectInput{Content: brand})
	require.NoError(t, err)
	assert.Equal(t, fromPath.Digest, inline.Digest)
	assert.Len(t, inline.Digest, 64)

	_, _, err = s.listTokens(ctx, nil, ProjectInput{})
	assert.ErrorIs(t, err, ErrNoProject)
}

func TestMCP_CallTool(t *testing.T) {
	ctx := context.Background()
	s := newServer(t)

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := s.MCP().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test", Version: "v0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, tools.Tools, 6)

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "validate_token",
		Arguments: map[string]any{"category": "spacing", "name": "gutter", "value": "abc"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.NotEmpty(t, res.Content)

	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	var out ValidateTokenOutput
	require.NoError(t, json.Unmarshal([]byte(text.Text), &out))
	assert.False(t, out.Report.OK)
	require.NotEmpty(t, out.Report.Errors)
	assert.Equal(t, validator.CodeInvalidValue, out.Report.Errors[0].Code)
}
