/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for blueprint.
package validate

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"bennypowers.dev/blueprint/cmd/render"
	"bennypowers.dev/blueprint/cmd/workspace"
	"bennypowers.dev/blueprint/fs"
	"bennypowers.dev/blueprint/load"
	"bennypowers.dev/blueprint/token"
	"bennypowers.dev/blueprint/validator"
)

// ErrValidationFailed is returned when any checked token has a blocking error.
var ErrValidationFailed = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [--category C NAME VALUE | projects...]",
	Short: "Validate a token or project files",
	Long: `Validate a single token name and value against its category grammar,
or every token, the type scale and the headings map of project files.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("category", "c", "", "Token category (colors, spacing, radii, shadows)")
	Cmd.Flags().Bool("heuristics", false, "Include style warnings")
	Cmd.Flags().Bool("normalize", false, "Suggest a normalized value")
	Cmd.Flags().Bool("suggest", false, "Repair the name and value before validating")
	Cmd.Flags().StringSlice("existing", nil, "Existing names the suggested name must not collide with")
	Cmd.Flags().String("format", "text", "Output format: text, json")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	ws, err := workspace.Open(fs.NewOSFileSystem(), ".")
	if err != nil {
		return err
	}

	categoryFlag, _ := cmd.Flags().GetString("category")
	if categoryFlag == "" {
		return validateProjects(cmd, ws, args)
	}

	category, err := token.ParseCategory(categoryFlag)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("expected NAME and VALUE, got %d arguments", len(args))
	}
	return validateToken(cmd, ws, category, args[0], args[1])
}

func validateToken(cmd *cobra.Command, ws *workspace.Workspace, c token.Category, name, value string) error {
	format, _ := cmd.Flags().GetString("format")
	suggest, _ := cmd.Flags().GetBool("suggest")
	existing, _ := cmd.Flags().GetStringSlice("existing")

	opts := ws.Config.ValidatorOptions()
	if cmd.Flags().Changed("heuristics") {
		opts.IncludeHeuristics, _ = cmd.Flags().GetBool("heuristics")
	}
	if cmd.Flags().Changed("normalize") {
		opts.IncludeNormalization, _ = cmd.Flags().GetBool("normalize")
	}

	out := cmd.OutOrStdout()
	var report validator.Report
	if suggest {
		prepared := validator.PrepareInsertion(c, name, value, existing, validator.PrepareOptions{
			AutoSuggestName:    true,
			AutoNormalizeValue: true,
			EnsureUnique:       len(existing) > 0,
			IncludeHeuristics:  opts.IncludeHeuristics,
		})
		report = prepared.Report
		if format == "json" {
			if err := render.JSON(out, prepared); err != nil {
				return err
			}
		} else {
			writePrepared(out, c, prepared)
		}
	} else {
		report = validator.Validate(c, name, value, opts)
		if format == "json" {
			if err := render.JSON(out, report); err != nil {
				return err
			}
		} else {
			writeReport(out, c, name, value, report)
		}
	}

	if !report.OK {
		return ErrValidationFailed
	}
	return nil
}

func writeReport(w io.Writer, c token.Category, name, value string, report validator.Report) {
	status := "ok"
	if !report.OK {
		status = "invalid"
	}
	fmt.Fprintf(w, "%s %s: %s (%s)\n", c.Singular(), name, value, status)
	for _, e := range report.Errors {
		fmt.Fprintf(w, "  %s [%s] %s: %s\n", e.Severity, e.Code, e.Field, e.Message)
	}
	if report.Normalized != nil && report.Normalized.Changed {
		fmt.Fprintf(w, "  normalized: %s\n", report.Normalized.Value)
	}
}

func writePrepared(w io.Writer, c token.Category, p validator.Prepared) {
	if p.DidChangeName {
		fmt.Fprintf(w, "name: %s -> %s\n", p.Input.Name, p.FinalName)
	}
	if p.DidChangeValue {
		fmt.Fprintf(w, "value: %s -> %s\n", p.Input.Value, p.FinalValue)
	}
	writeReport(w, c, p.FinalName, p.FinalValue, p.Report)
}

func validateProjects(cmd *cobra.Command, ws *workspace.Workspace, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	paths, err := ws.ProjectPaths(args)
	if err != nil {
		return err
	}

	hasErrors := false
	for _, path := range paths {
		if !quiet {
			fmt.Fprintf(out, "Validating %s...\n", path)
		}

		p, err := load.Load(cmd.Context(), path, ws.LoadOptions(false))
		if err != nil {
			fmt.Fprintf(errOut, "Error loading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if verr := load.Validate(p); verr != nil {
			for _, e := range multierr.Errors(verr) {
				fmt.Fprintf(errOut, "  %s\n", e)
			}
			hasErrors = true
			continue
		}

		if !quiet {
			counts := make([]string, 0, len(token.Categories))
			for _, c := range token.Categories {
				counts = append(counts, fmt.Sprintf("%d %s", len(p.Tokens.Get(c)), c))
			}
			fmt.Fprintf(out, "  %s\n", strings.Join(counts, ", "))
		}
	}

	if hasErrors {
		return ErrValidationFailed
	}
	if !quiet {
		fmt.Fprintln(out, "All projects valid.")
	}
	return nil
}
