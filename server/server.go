/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package server exposes the token editor core as Model Context Protocol
// tools, so an assistant can validate, parse and generate tokens the same
// way the CLI does.
package server

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"bennypowers.dev/blueprint/config"
	"bennypowers.dev/blueprint/derived"
	"bennypowers.dev/blueprint/fs"
	"bennypowers.dev/blueprint/hash"
	"bennypowers.dev/blueprint/internal/logger"
	"bennypowers.dev/blueprint/internal/version"
	"bennypowers.dev/blueprint/load"
	"bennypowers.dev/blueprint/parser"
	"bennypowers.dev/blueprint/token"
	"bennypowers.dev/blueprint/typography"
	"bennypowers.dev/blueprint/utilities"
	"bennypowers.dev/blueprint/validator"
)

// Name is the implementation name reported to clients.
const Name = "blueprint"

// ErrNoProject is returned by project tools given neither a path nor inline content.
var ErrNoProject = errors.New("either path or content is required")

// Options configures New.
type Options struct {
	// FS resolves project paths. Defaults to the OS filesystem.
	FS fs.FileSystem

	// Root is the directory project paths are relative to.
	Root string

	// Config supplies defaults for scale and validation. Defaults to config.Default.
	Config *config.Config
}

// Server holds the state shared by tool handlers.
type Server struct {
	opts  Options
	cache *utilities.Cache
}

// New creates a Server from opts.
func New(opts Options) (*Server, error) {
	if opts.FS == nil {
		opts.FS = fs.NewOSFileSystem()
	}
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	cache, err := utilities.NewCache(utilities.DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	return &Server{opts: opts, cache: cache}, nil
}

// MCP builds the protocol server with every tool registered.
func (s *Server) MCP() *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: Name, Version: version.Get()}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "validate_token",
		Description: "Validate a token name and value for a category, optionally repairing them before insertion",
	}, s.validateToken)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "parse_batch",
		Description: "Parse pasted token declarations, one per line, into validated entries",
	}, s.parseBatch)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "type_scale",
		Description: "Generate a modular type scale and its default heading assignments",
	}, s.typeScale)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_tokens",
		Description: "List stored tokens of a project followed by tokens derived from its type scale",
	}, s.listTokens)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "generate_utilities",
		Description: "Generate font-size, spacing and color utility CSS for a project",
	}, s.generateUtilities)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "project_digest",
		Description: "Compute the SHA-256 digest of a project's canonical serialization",
	}, s.projectDigest)

	return srv
}

// Run serves the tools over stdio until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	logger.Debug("starting %s MCP server %s", Name, version.Get())
	return s.MCP().Run(ctx, &mcp.StdioTransport{})
}

// ValidateTokenInput is the input of validate_token.
type ValidateTokenInput struct {
	Category   string   `json:"category" jsonschema:"token category: colors, spacing, radii or shadows"`
	Name       string   `json:"name" jsonschema:"token name"`
	Value      string   `json:"value" jsonschema:"token value"`
	Heuristics bool     `json:"heuristics,omitempty" jsonschema:"include non-blocking style warnings"`
	Normalize  bool     `json:"normalize,omitempty" jsonschema:"include the normalized value"`
	Prepare    bool     `json:"prepare,omitempty" jsonschema:"repair the name, make it unique and normalize the value"`
	Existing   []string `json:"existing,omitempty" jsonschema:"names already present in the category"`
}

// ValidateTokenOutput is the output of validate_token.
type ValidateTokenOutput struct {
	Report   validator.Report    `json:"report"`
	Prepared *validator.Prepared `json:"prepared,omitempty"`
}

func (s *Server) validateToken(ctx context.Context, req *mcp.CallToolRequest, in ValidateTokenInput) (*mcp.CallToolResult, ValidateTokenOutput, error) {
	c, err := token.ParseCategory(in.Category)
	if err != nil {
		return nil, ValidateTokenOutput{}, err
	}
	if in.Prepare {
		prepared := validator.PrepareInsertion(c, in.Name, in.Value, in.Existing, validator.PrepareOptions{
			AutoSuggestName:    true,
			AutoNormalizeValue: true,
			EnsureUnique:       true,
			IncludeHeuristics:  in.Heuristics,
		})
		return nil, ValidateTokenOutput{Report: prepared.Report, Prepared: &prepared}, nil
	}
	report := validator.Validate(c, in.Name, in.Value, validator.Options{
		IncludeHeuristics:    in.Heuristics,
		IncludeNormalization: in.Normalize,
	})
	return nil, ValidateTokenOutput{Report: report}, nil
}

// ParseBatchInput is the input of parse_batch.
type ParseBatchInput struct {
	Category string `json:"category" jsonschema:"token category: colors, spacing, radii or shadows"`
	Text     string `json:"text" jsonschema:"one declaration per line, e.g. --name: value;"`
	FromCSS  bool   `json:"fromCss,omitempty" jsonschema:"extract custom properties from a stylesheet first"`
}

func (s *Server) parseBatch(ctx context.Context, req *mcp.CallToolRequest, in ParseBatchInput) (*mcp.CallToolResult, parser.BatchResult, error) {
	c, err := token.ParseCategory(in.Category)
	if err != nil {
		return nil, parser.BatchResult{}, err
	}
	text := in.Text
	if in.FromCSS {
		decls, err := parser.ExtractStylesheet([]byte(text))
		if err != nil {
			return nil, parser.BatchResult{}, err
		}
		text = parser.RenderBatch(decls)
	}
	return nil, parser.ParseBatch(c, text), nil
}

// TypeScaleInput is the input of type_scale. Zero base and ratio take the
// configured defaults.
type TypeScaleInput struct {
	Base    float64   `json:"base,omitempty" jsonschema:"base font size in pixels"`
	Ratio   float64   `json:"ratio,omitempty" jsonschema:"ratio between adjacent steps, greater than 1"`
	Presets []float64 `json:"presets,omitempty" jsonschema:"explicit pixel sizes, overriding base and ratio"`
}

// TypeScaleOutput is the output of type_scale.
type TypeScaleOutput struct {
	Config   typography.ScaleConfig `json:"config"`
	Steps    []typography.Step      `json:"steps"`
	Headings typography.HeadingsMap `json:"headings"`
}

func (s *Server) typeScale(ctx context.Context, req *mcp.CallToolRequest, in TypeScaleInput) (*mcp.CallToolResult, TypeScaleOutput, error) {
	cfg := s.opts.Config.Scale()
	if in.Base != 0 {
		cfg.Base = in.Base
	}
	if in.Ratio != 0 {
		cfg.Ratio = in.Ratio
	}
	if len(in.Presets) > 0 {
		cfg.Presets = in.Presets
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, TypeScaleOutput{}, err
	}
	steps := typography.GenerateScale(cfg)
	return nil, TypeScaleOutput{Config: cfg, Steps: steps, Headings: typography.DefaultHeadings(steps)}, nil
}

// ProjectInput names a project file, or carries its content inline.
type ProjectInput struct {
	Path    string `json:"path,omitempty" jsonschema:"project file path, relative to the server root"`
	Content string `json:"content,omitempty" jsonschema:"inline project document in YAML or JSON"`
}

// ListTokensOutput is the output of list_tokens.
type ListTokensOutput struct {
	Entries []derived.Entry `json:"entries"`
}

func (s *Server) listTokens(ctx context.Context, req *mcp.CallToolRequest, in ProjectInput) (*mcp.CallToolResult, ListTokensOutput, error) {
	p, err := s.project(ctx, in)
	if err != nil {
		return nil, ListTokensOutput{}, err
	}
	return nil, ListTokensOutput{Entries: derived.ListAll(p)}, nil
}

func (s *Server) generateUtilities(ctx context.Context, req *mcp.CallToolRequest, in ProjectInput) (*mcp.CallToolResult, utilities.Output, error) {
	p, err := s.project(ctx, in)
	if err != nil {
		return nil, utilities.Output{}, err
	}
	out, _, err := s.cache.Generate(p)
	return nil, out, err
}

// DigestOutput is the output of project_digest.
type DigestOutput struct {
	Digest string `json:"digest"`
}

func (s *Server) projectDigest(ctx context.Context, req *mcp.CallToolRequest, in ProjectInput) (*mcp.CallToolResult, DigestOutput, error) {
	p, err := s.project(ctx, in)
	if err != nil {
		return nil, DigestOutput{}, err
	}
	digest, err := hash.Digest(p)
	if err != nil {
		return nil, DigestOutput{}, err
	}
	return nil, DigestOutput{Digest: digest}, nil
}

func (s *Server) project(ctx context.Context, in ProjectInput) (token.Project, error) {
	switch {
	case in.Content != "":
		p, err := load.Decode([]byte(in.Content), load.FormatAuto)
		if err != nil {
			return token.Project{}, err
		}
		return load.ApplyDefaults(p, s.opts.Config), nil
	case in.Path != "":
		return load.Load(ctx, in.Path, load.Options{
			Root:   s.opts.Root,
			FS:     s.opts.FS,
			Config: s.opts.Config,
		})
	default:
		return token.Project{}, ErrNoProject
	}
}
