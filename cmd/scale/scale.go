/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scale provides the scale command for blueprint.
package scale

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/blueprint/cmd/render"
	"bennypowers.dev/blueprint/cmd/workspace"
	"bennypowers.dev/blueprint/fs"
	"bennypowers.dev/blueprint/typography"
)

// Output is the JSON shape of the scale command.
type Output struct {
	Config   typography.ScaleConfig `json:"config"`
	Steps    []typography.Step      `json:"steps"`
	Headings typography.HeadingsMap `json:"headings"`
}

// Cmd is the scale cobra command.
var Cmd = &cobra.Command{
	Use:   "scale",
	Short: "Print a modular type scale and its default headings",
	Long: `Print the font-size steps generated from a base size and ratio, or from
explicit pixel presets. Flags override the typography settings in the config file.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Float64("base", typography.DefaultBase, "Base font size in pixels")
	Cmd.Flags().Float64("ratio", typography.DefaultRatio, "Ratio between adjacent steps")
	Cmd.Flags().Float64Slice("presets", nil, "Explicit pixel sizes, overriding base and ratio")
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	ws, err := workspace.Open(fs.NewOSFileSystem(), ".")
	if err != nil {
		return err
	}

	cfg := ws.Config.Scale()
	if cmd.Flags().Changed("base") {
		cfg.Base, _ = cmd.Flags().GetFloat64("base")
	}
	if cmd.Flags().Changed("ratio") {
		cfg.Ratio, _ = cmd.Flags().GetFloat64("ratio")
	}
	if cmd.Flags().Changed("presets") {
		cfg.Presets, _ = cmd.Flags().GetFloat64Slice("presets")
	}
	cfg = cfg.WithDefaults()

	out, err := Build(cfg)
	if err != nil {
		return err
	}

	if format == "json" {
		return render.JSON(cmd.OutOrStdout(), out)
	}
	return writeTable(cmd.OutOrStdout(), out)
}

// Build validates cfg and computes its steps and default headings.
func Build(cfg typography.ScaleConfig) (Output, error) {
	if err := cfg.Validate(); err != nil {
		return Output{}, err
	}
	steps := typography.GenerateScale(cfg)
	return Output{
		Config:   cfg,
		Steps:    steps,
		Headings: typography.DefaultHeadings(steps),
	}, nil
}

func writeTable(w io.Writer, out Output) error {
	for _, s := range out.Steps {
		if _, err := fmt.Fprintf(w, "%-12s %10spx  %s\n", s.Name, typography.FormatNumber(s.Px), s.Rem); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, level := range typography.Levels {
		if _, err := fmt.Fprintf(w, "%s  %s\n", level, out.Headings[level]); err != nil {
			return err
		}
	}
	return nil
}
