/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package search provides the search command for blueprint.
package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"bennypowers.dev/blueprint/cmd/render"
	"bennypowers.dev/blueprint/cmd/workspace"
	"bennypowers.dev/blueprint/derived"
	"bennypowers.dev/blueprint/fs"
)

// Cmd is the search cobra command.
var Cmd = &cobra.Command{
	Use:   "search <query> [projects...]",
	Short: "Search tokens by name, value, or category",
	Long:  `Search design tokens by name, value, or category with optional regex or fuzzy matching.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("name", false, "Search names only")
	Cmd.Flags().Bool("value", false, "Search values only")
	Cmd.Flags().StringP("category", "c", "", "Filter by category")
	Cmd.Flags().Bool("regex", false, "Query is a regex")
	Cmd.Flags().Bool("fuzzy", false, "Match query characters in order, allowing gaps")
	Cmd.Flags().String("format", "table", "Output format: table, json, names")
}

// matcher reports whether a field matches the query.
type matcher func(s string) bool

func run(cmd *cobra.Command, args []string) error {
	query := args[0]
	projectArgs := args[1:]

	nameOnly, _ := cmd.Flags().GetBool("name")
	valueOnly, _ := cmd.Flags().GetBool("value")
	category, _ := cmd.Flags().GetString("category")
	useRegex, _ := cmd.Flags().GetBool("regex")
	useFuzzy, _ := cmd.Flags().GetBool("fuzzy")
	format, _ := cmd.Flags().GetString("format")

	match, err := newMatcher(query, useRegex, useFuzzy)
	if err != nil {
		return err
	}

	ws, err := workspace.Open(fs.NewOSFileSystem(), ".")
	if err != nil {
		return err
	}
	projects, err := ws.LoadProjects(cmd.Context(), projectArgs, false)
	if err != nil {
		return err
	}

	var matches []derived.Entry
	for _, p := range projects {
		for _, e := range derived.ListAll(p) {
			if category != "" && e.Category != category {
				continue
			}
			if matchEntry(e, match, nameOnly, valueOnly) {
				matches = append(matches, e)
			}
		}
	}

	rows := render.ComputeRows(matches, ws.Prefix())
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return render.JSON(out, rows)
	case "names":
		return render.Names(out, rows)
	default:
		return render.Table(out, rows, false)
	}
}

func newMatcher(query string, useRegex, useFuzzy bool) (matcher, error) {
	var pattern *regexp.Regexp
	if useRegex {
		var err error
		pattern, err = regexp.Compile(query)
		if err != nil {
			return nil, fmt.Errorf("invalid regex: %w", err)
		}
	}
	return func(s string) bool {
		return matchString(s, query, pattern, useFuzzy)
	}, nil
}

func matchEntry(e derived.Entry, match matcher, nameOnly, valueOnly bool) bool {
	switch {
	case nameOnly:
		return match(e.Name)
	case valueOnly:
		return match(e.Value)
	default:
		return match(e.Name) || match(e.Value) || match(e.Category)
	}
}

func matchString(s, query string, pattern *regexp.Regexp, useFuzzy bool) bool {
	if pattern != nil {
		return pattern.MatchString(s)
	}
	if useFuzzy {
		return fuzzy.MatchFold(query, s)
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}
