/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for blueprint.
package list

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"bennypowers.dev/blueprint/cmd/render"
	"bennypowers.dev/blueprint/cmd/workspace"
	"bennypowers.dev/blueprint/derived"
	"bennypowers.dev/blueprint/fs"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [projects...]",
	Short: "List tokens from project files",
	Long: `List every stored token of each project, followed by the font-size tokens
derived from its type scale. Without arguments, projects come from the config file.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("category", "c", "", "Filter by category (colors, spacing, radii, shadows, fontSizes)")
	Cmd.Flags().Bool("no-virtual", false, "Hide tokens derived from the type scale")
	Cmd.Flags().String("format", "table", "Output format: table, json, markdown, css, names")
	Cmd.Flags().Bool("swatches", false, "Show color swatches in table output (default when stdout is a terminal)")
}

func run(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	noVirtual, _ := cmd.Flags().GetBool("no-virtual")
	format, _ := cmd.Flags().GetString("format")
	swatches, _ := cmd.Flags().GetBool("swatches")
	if !cmd.Flags().Changed("swatches") {
		swatches = isatty.IsTerminal(os.Stdout.Fd())
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
	entries = filterEntries(entries, category, noVirtual)

	rows := render.ComputeRows(entries, ws.Prefix())
	title := "Design Tokens"
	if len(projects) == 1 && projects[0].Name != "" {
		title = projects[0].Name
	}
	return output(cmd.OutOrStdout(), format, rows, title, swatches)
}

func filterEntries(entries []derived.Entry, category string, noVirtual bool) []derived.Entry {
	return lo.Filter(entries, func(e derived.Entry, _ int) bool {
		if category != "" && e.Category != category {
			return false
		}
		return !noVirtual || !e.Virtual
	})
}

func output(w io.Writer, format string, rows []render.Row, title string, swatches bool) error {
	switch format {
	case "json":
		return render.JSON(w, rows)
	case "markdown":
		return render.Markdown(w, rows, render.MarkdownOptions{Title: title, IncludeTOC: true, ShowLinks: true})
	case "css":
		return render.CSS(w, rows)
	case "names":
		return render.Names(w, rows)
	case "table", "":
		return render.Table(w, rows, swatches)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
