/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides the convert command for blueprint.
package convert

import (
	"cmp"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"bennypowers.dev/blueprint/cmd/workspace"
	"bennypowers.dev/blueprint/config"
	convertlib "bennypowers.dev/blueprint/convert"
	"bennypowers.dev/blueprint/derived"
	"bennypowers.dev/blueprint/fs"
	"bennypowers.dev/blueprint/internal/logger"
)

// categoryPlaceholder in an output path writes one file per category.
const categoryPlaceholder = "{category}"

// Cmd is the convert cobra command.
var Cmd = &cobra.Command{
	Use:   "convert [projects...]",
	Short: "Export project tokens to other formats",
	Long: `Export the tokens of one or more projects, including the font sizes derived
from their type scales, to formats consumed by other toolchains.

Output Formats:
  dtcg       Design Tokens Community Group JSON (default)
  json       Flat key-value JSON
  android    Android XML resources (colors, dp and sp dimensions)
  swift      SwiftUI constants
  typescript TypeScript ESM module with 'as const' exports
  scss       SCSS variables
  css        CSS custom properties
  lit-css    CSS custom properties in a Lit css template

Examples:
  # Convert to TypeScript module
  blueprint convert --format typescript -o tokens.ts brand.yaml

  # Multi-output mode: generate multiple formats at once
  blueprint convert --outputs scss:tokens.scss --outputs android:values/tokens.xml brand.yaml

  # One file per category
  blueprint convert --outputs "css:css/{category}.css" brand.yaml

  # Use outputs from config file (.config/blueprint.yaml)
  blueprint convert`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().StringP("format", "f", "dtcg", "Output format: "+strings.Join(convertlib.ValidFormats(), ", "))
	Cmd.Flags().StringP("delimiter", "d", "-", "Delimiter for flattened keys")
	Cmd.Flags().StringArray("outputs", nil, "Multiple outputs as format:path pairs (repeatable, supports {category} template)")
	Cmd.Flags().Bool("no-virtual", false, "Omit tokens derived from the type scale")
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	formatFlag, _ := cmd.Flags().GetString("format")
	delimiter, _ := cmd.Flags().GetString("delimiter")
	outputsFlag, _ := cmd.Flags().GetStringArray("outputs")
	noVirtual, _ := cmd.Flags().GetBool("no-virtual")

	format, err := convertlib.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	cliOutputs, err := parseOutputs(outputsFlag)
	if err != nil {
		return err
	}
	if len(cliOutputs) > 0 && output != "" {
		return fmt.Errorf("--outputs and --output are mutually exclusive")
	}

	ws, err := workspace.Open(fs.NewOSFileSystem(), ".")
	if err != nil {
		return err
	}
	projects, err := ws.LoadProjects(cmd.Context(), args, false)
	if err != nil {
		return err
	}

	var entries []derived.Entry
	for _, p := range projects {
		entries = append(entries, derived.ListAll(p)...)
	}
	if noVirtual {
		entries = lo.Reject(entries, func(e derived.Entry, _ int) bool { return e.Virtual })
	}

	// CLI outputs take precedence over config outputs
	outputs := cliOutputs
	if len(outputs) == 0 && output == "" {
		outputs = ws.Config.Outputs
	}
	if len(outputs) > 0 {
		return writeOutputs(ws.FS, entries, outputs, ws.Prefix())
	}

	data, err := convertlib.Convert(entries, format, convertlib.Options{Prefix: ws.Prefix(), Delimiter: delimiter})
	if err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	if output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return writeFile(ws.FS, output, data)
}

func parseOutputs(specs []string) ([]config.OutputSpec, error) {
	outputs := make([]config.OutputSpec, 0, len(specs))
	for _, spec := range specs {
		formatPart, pathPart, found := strings.Cut(spec, ":")
		if !found || formatPart == "" || pathPart == "" {
			return nil, fmt.Errorf("invalid output spec %q: expected format:path", spec)
		}
		outputs = append(outputs, config.OutputSpec{Format: formatPart, Path: pathPart})
	}
	return outputs, nil
}

// writeOutputs generates every output, continuing past failures and
// returning them joined.
func writeOutputs(filesystem fs.FileSystem, entries []derived.Entry, outputs []config.OutputSpec, prefix string) error {
	var errs []error
	for _, out := range outputs {
		if err := writeOutput(filesystem, entries, out, prefix); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", out.Path, err))
		}
	}
	return errors.Join(errs...)
}

func writeOutput(filesystem fs.FileSystem, entries []derived.Entry, out config.OutputSpec, prefix string) error {
	format, err := convertlib.ParseFormat(out.Format)
	if err != nil {
		return err
	}
	opts := convertlib.Options{Prefix: cmp.Or(out.Prefix, prefix), Delimiter: out.Delimiter}

	if !strings.Contains(out.Path, categoryPlaceholder) {
		data, err := convertlib.Convert(entries, format, opts)
		if err != nil {
			return err
		}
		return writeFile(filesystem, out.Path, data)
	}

	groups := lo.GroupBy(entries, func(e derived.Entry) string { return e.Category })
	for _, category := range lo.Uniq(lo.Map(entries, func(e derived.Entry, _ int) string { return e.Category })) {
		data, err := convertlib.Convert(groups[category], format, opts)
		if err != nil {
			return err
		}
		if err := writeFile(filesystem, strings.ReplaceAll(out.Path, categoryPlaceholder, category), data); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(filesystem fs.FileSystem, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := filesystem.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating %s: %w", dir, err)
		}
	}
	if err := filesystem.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing to %s: %w", path, err)
	}
	logger.Info("wrote %s", path)
	return nil
}
