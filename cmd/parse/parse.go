/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parse provides the parse command for blueprint.
package parse

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/blueprint/cmd/render"
	"bennypowers.dev/blueprint/cmd/workspace"
	"bennypowers.dev/blueprint/fs"
	"bennypowers.dev/blueprint/internal/logger"
	"bennypowers.dev/blueprint/parser"
	"bennypowers.dev/blueprint/token"
)

// ErrBatchInvalid is returned when any parsed line carries an error.
var ErrBatchInvalid = errors.New("batch contains errors")

// Cmd is the parse cobra command.
var Cmd = &cobra.Command{
	Use:   "parse --category C [file|-]",
	Short: "Parse pasted token declarations",
	Long: `Parse one token declaration per line, in the form "--name: value;" or
"name: value". Blank lines and lines starting with //, /*, * or # are ignored.
With --from-css, custom properties are extracted from a stylesheet first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("category", "c", "", "Token category (colors, spacing, radii, shadows)")
	Cmd.Flags().Bool("from-css", false, "Read custom properties from a CSS stylesheet")
	Cmd.Flags().String("format", "table", "Output format: table, json, entries")
	_ = Cmd.MarkFlagRequired("category")
}

func run(cmd *cobra.Command, args []string) error {
	categoryFlag, _ := cmd.Flags().GetString("category")
	fromCSS, _ := cmd.Flags().GetBool("from-css")
	format, _ := cmd.Flags().GetString("format")

	category, err := token.ParseCategory(categoryFlag)
	if err != nil {
		return err
	}

	ws, err := workspace.Open(fs.NewOSFileSystem(), ".")
	if err != nil {
		return err
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}
	data, err := ws.ReadInput(cmd.InOrStdin(), name)
	if err != nil {
		return err
	}

	text, err := batchText(data, fromCSS)
	if err != nil {
		return err
	}
	result := parser.ParseBatch(category, text)

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		err = render.JSON(out, result)
	case "entries":
		err = render.JSON(out, result.Entries)
	default:
		err = writeTable(out, result)
	}
	if err != nil {
		return err
	}

	if !result.OK {
		return fmt.Errorf("%w: %d of %d lines", ErrBatchInvalid, len(result.Errors), len(result.Lines))
	}
	return nil
}

// batchText returns the batch paste text for data, converting a stylesheet
// into declarations when fromCSS is set.
func batchText(data []byte, fromCSS bool) (string, error) {
	if !fromCSS {
		return string(data), nil
	}
	decls, err := parser.ExtractStylesheet(data)
	if err != nil {
		return "", fmt.Errorf("error reading stylesheet: %w", err)
	}
	if err := parser.CheckStylesheet(data); err != nil {
		logger.Warn("%v", err)
	}
	logger.Debug("extracted %d custom properties", len(decls))
	return parser.RenderBatch(decls), nil
}

func writeTable(w io.Writer, result parser.BatchResult) error {
	var b strings.Builder
	for _, line := range result.Lines {
		if !line.Declared() && !line.HasErrors() {
			continue
		}
		status := "ok"
		if line.HasErrors() {
			status = strings.Join(line.ErrorCodes, ",")
		}
		fmt.Fprintf(&b, "%4d  %-24s %-20s %s\n", line.Line, line.Name, line.Value, status)
		for _, e := range line.Errors {
			fmt.Fprintf(&b, "      %s\n", e.Message)
		}
	}
	fmt.Fprintf(&b, "%d entries, %d lines with errors\n", len(result.Entries), len(result.Errors))
	_, err := io.WriteString(w, b.String())
	return err
}
