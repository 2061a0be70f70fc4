/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading blueprint project files.
package load

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/blueprint/config"
	"bennypowers.dev/blueprint/fs"
	"bennypowers.dev/blueprint/internal/logger"
	"bennypowers.dev/blueprint/token"
	"bennypowers.dev/blueprint/typography"
	"bennypowers.dev/blueprint/validator"
)

// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported project format")

// Format is a project file encoding.
type Format int

const (
	// FormatAuto sniffs the content: a leading '{' means JSON, anything else YAML.
	FormatAuto Format = iota
	FormatYAML
	FormatJSON
)

// Options configures how projects are loaded.
type Options struct {
	// Root is the directory relative paths and config are resolved from.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Config supplies the default prefix and type scale.
	// When nil, config is loaded from Root.
	Config *config.Config

	// Prefix overrides both the file and config prefix when set.
	Prefix string

	// Strict rejects projects containing invalid tokens or headings.
	Strict bool
}

// Load reads and decodes the project file at path.
//
// The loading process:
//  1. Optionally loads config from .config/blueprint.yaml
//  2. Reads and decodes the file by extension
//  3. Fills in a missing type scale from config and missing headings from the scale
//  4. Applies the prefix override
//  5. In strict mode, validates every token
func Load(ctx context.Context, path string, opts Options) (token.Project, error) {
	if err := ctx.Err(); err != nil {
		return token.Project{}, err
	}

	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.LoadOrDefault(filesystem, root)
	}

	format, err := FormatForPath(path)
	if err != nil {
		return token.Project{}, err
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return token.Project{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	p, err := Decode(data, format)
	if err != nil {
		return token.Project{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	p = ApplyDefaults(p, cfg)
	if opts.Prefix != "" {
		p.Prefix = opts.Prefix
	}
	logger.Debug("loaded project %q from %s (%d tokens)", p.Name, path, p.Tokens.Len())

	if opts.Strict {
		if err := Validate(p); err != nil {
			return token.Project{}, fmt.Errorf("invalid project %s: %w", path, err)
		}
	}
	return p, nil
}

// LoadAll loads every path in order, stopping at the first failure or
// when ctx is done.
func LoadAll(ctx context.Context, paths []string, opts Options) ([]token.Project, error) {
	projects := make([]token.Project, 0, len(paths))
	for _, path := range paths {
		p, err := Load(ctx, path, opts)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// FormatForPath picks the decoder for a file name by extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	case "":
		return FormatAuto, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Decode parses a project document. JSON input may contain comments and
// trailing commas.
func Decode(data []byte, format Format) (token.Project, error) {
	if format == FormatAuto {
		format = FormatYAML
		if isLikelyJSON(data) {
			format = FormatJSON
		}
	}

	var p token.Project
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(jsonc.ToJSON(data), &p); err != nil {
			return token.Project{}, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return token.Project{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return token.Project{}, ErrUnsupportedFormat
	}
	return p.Clone(), nil
}

// Encode renders p as a project document. FormatAuto writes YAML.
func Encode(p token.Project, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML, FormatAuto:
		data, err := yaml.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return data, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// Save writes p to path in the format its extension names.
// Relative paths are resolved against opts.Root.
func Save(path string, p token.Project, opts Options) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(p, format)
	if err != nil {
		return err
	}

	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}
	if !filepath.IsAbs(path) && opts.Root != "" {
		path = filepath.Join(opts.Root, path)
	}
	if err := filesystem.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Debug("saved project %q to %s", p.Name, path)
	return nil
}

// ApplyDefaults fills a project's missing type scale from cfg and each
// unassigned heading level from the default headings of the resulting scale.
func ApplyDefaults(p token.Project, cfg *config.Config) token.Project {
	p = p.Clone()
	if cfg == nil {
		cfg = config.Default()
	}

	scale := p.Typography.Scale
	if scale.Base == 0 && scale.Ratio == 0 && len(scale.Presets) == 0 {
		scale = cfg.Scale().Clone()
	}
	p.Typography.Scale = scale.WithDefaults()

	defaults := typography.DefaultHeadings(typography.GenerateScale(p.Typography.Scale))
	if p.Typography.Headings == nil {
		p.Typography.Headings = defaults
	}
	for _, level := range typography.Levels {
		if _, ok := p.Typography.Headings[level]; !ok {
			p.Typography.Headings[level] = defaults[level]
		}
	}
	if p.Prefix == "" {
		p.Prefix = cfg.Prefix
	}
	return p
}

// Validate checks every token, the type scale and the headings map of p,
// and returns all failures combined.
func Validate(p token.Project) error {
	var err error
	for _, c := range token.Categories {
		for _, tok := range p.Tokens.Sorted(c) {
			if verr := validator.ValidateName(tok.Name); verr != nil {
				err = multierr.Append(err, fmt.Errorf("%s %q: %w", c.Singular(), tok.Name, verr))
			}
			if verr := validator.ValidateValue(c, tok.Value); verr != nil {
				err = multierr.Append(err, fmt.Errorf("%s %q: %w", c.Singular(), tok.Name, verr))
			}
		}
	}

	scale := p.Typography.Scale.WithDefaults()
	if serr := scale.Validate(); serr != nil {
		err = multierr.Append(err, serr)
		return err
	}

	steps := typography.StepNames(typography.GenerateScale(scale))
	for _, herr := range typography.ValidateHeadings(p.Typography.Headings, steps).Errors {
		err = multierr.Append(err, herr)
	}
	return err
}

// isLikelyJSON reports whether data starts with '{' after whitespace and BOM.
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}
