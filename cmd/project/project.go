/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project provides the project command group for blueprint, which
// edits project files through the token store.
package project

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/blueprint/cmd/render"
	"bennypowers.dev/blueprint/cmd/workspace"
	"bennypowers.dev/blueprint/fs"
	"bennypowers.dev/blueprint/load"
	"bennypowers.dev/blueprint/parser"
	"bennypowers.dev/blueprint/store"
	"bennypowers.dev/blueprint/token"
	"bennypowers.dev/blueprint/typography"
	"bennypowers.dev/blueprint/validator"
)

// ErrRejected is returned when the store refuses an edit. The file is left untouched.
var ErrRejected = errors.New("edit rejected")

// Cmd is the project cobra command.
var Cmd = &cobra.Command{
	Use:   "project",
	Short: "Create and edit project files",
	Long: `Create project files and add, update, delete, rename or import tokens.
Every edit is validated first; a rejected edit leaves the file unchanged.`,
}

var initCmd = &cobra.Command{
	Use:   "init <name> <file>",
	Short: "Create a new project file with the default type scale",
	Args:  cobra.ExactArgs(2),
	RunE:  runInit,
}

var addCmd = &cobra.Command{
	Use:   "add <file> <name> <value>",
	Short: "Add a token",
	Args:  cobra.ExactArgs(3),
	RunE:  runAdd,
}

var updateCmd = &cobra.Command{
	Use:   "update <file> <name> <value>",
	Short: "Replace the value of an existing token",
	Args:  cobra.ExactArgs(3),
	RunE:  runUpdate,
}

var removeCmd = &cobra.Command{
	Use:     "rm <file> <name>",
	Aliases: []string{"delete"},
	Short:   "Delete a token",
	Args:    cobra.ExactArgs(2),
	RunE:    runRemove,
}

var renameCmd = &cobra.Command{
	Use:   "rename <file> <from> <to>",
	Short: "Rename a token, keeping its value",
	Args:  cobra.ExactArgs(3),
	RunE:  runRename,
}

var importCmd = &cobra.Command{
	Use:   "import <file> [batch|-]",
	Short: "Import pasted declarations into a category",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runImport,
}

var scaleCmd = &cobra.Command{
	Use:   "scale <file>",
	Short: "Change the type scale and regenerate the headings map",
	Args:  cobra.ExactArgs(1),
	RunE:  runScale,
}

var headingsCmd = &cobra.Command{
	Use:   "headings <file> <level=step>...",
	Short: "Assign scale steps to heading levels",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runHeadings,
}

func init() {
	for _, c := range []*cobra.Command{addCmd, updateCmd, removeCmd, renameCmd, importCmd} {
		c.Flags().StringP("category", "c", "", "Token category (colors, spacing, radii, shadows)")
		_ = c.MarkFlagRequired("category")
	}
	importCmd.Flags().Bool("from-css", false, "Read custom properties from a CSS stylesheet")
	scaleCmd.Flags().Float64("base", 0, "Base font size in pixels")
	scaleCmd.Flags().Float64("ratio", 0, "Ratio between adjacent steps")
	scaleCmd.Flags().Float64Slice("presets", nil, "Explicit pixel sizes; pass an empty value to clear")

	Cmd.AddCommand(initCmd, addCmd, updateCmd, removeCmd, renameCmd, importCmd, scaleCmd, headingsCmd)
}

// session is one load-edit-save cycle on a project file.
type session struct {
	ws    *workspace.Workspace
	path  string
	store *store.Store
	out   io.Writer
}

func open(cmd *cobra.Command, path string) (*session, error) {
	ws, err := workspace.Open(fs.NewOSFileSystem(), ".")
	if err != nil {
		return nil, err
	}
	return openIn(cmd, ws, path)
}

func openIn(cmd *cobra.Command, ws *workspace.Workspace, path string) (*session, error) {
	opts := ws.LoadOptions(false)
	opts.Prefix = ""
	p, err := load.Load(cmd.Context(), path, opts)
	if err != nil {
		return nil, err
	}
	s := store.New(store.WithScale(ws.Config.Scale()))
	s.Open(p)
	return &session{ws: ws, path: path, store: s, out: cmd.OutOrStdout()}, nil
}

// commit writes the store's project back when result is OK.
func (s *session) commit(result validator.Result) error {
	if !result.OK {
		for _, e := range result.Errors {
			fmt.Fprintf(s.out, "error: %s\n", e.Error())
		}
		return fmt.Errorf("%w: %d errors", ErrRejected, len(result.Errors))
	}
	return s.save()
}

func (s *session) save() error {
	p, err := s.store.Snapshot()
	if err != nil {
		return err
	}
	opts := s.ws.LoadOptions(false)
	return load.Save(s.path, p, opts)
}

func category(cmd *cobra.Command) (token.Category, error) {
	name, _ := cmd.Flags().GetString("category")
	return token.ParseCategory(name)
}

func runInit(cmd *cobra.Command, args []string) error {
	ws, err := workspace.Open(fs.NewOSFileSystem(), ".")
	if err != nil {
		return err
	}
	return initProject(cmd, ws, args[0], args[1])
}

func initProject(cmd *cobra.Command, ws *workspace.Workspace, name, path string) error {
	full := path
	if !filepath.IsAbs(path) {
		full = filepath.Join(ws.Root, path)
	}
	if ws.FS.Exists(full) {
		return fmt.Errorf("%s already exists", path)
	}
	s := store.New(store.WithScale(ws.Config.Scale()))
	p := s.CreateProject(name)
	if err := load.Save(path, p, ws.LoadOptions(false)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", path, p.ID)
	return err
}

func runAdd(cmd *cobra.Command, args []string) error {
	c, err := category(cmd)
	if err != nil {
		return err
	}
	s, err := open(cmd, args[0])
	if err != nil {
		return err
	}
	return s.commit(s.store.AddToken(c, args[1], args[2]))
}

func runUpdate(cmd *cobra.Command, args []string) error {
	c, err := category(cmd)
	if err != nil {
		return err
	}
	s, err := open(cmd, args[0])
	if err != nil {
		return err
	}
	return s.commit(s.store.UpdateToken(c, args[1], args[2]))
}

func runRemove(cmd *cobra.Command, args []string) error {
	c, err := category(cmd)
	if err != nil {
		return err
	}
	s, err := open(cmd, args[0])
	if err != nil {
		return err
	}
	return s.commit(s.store.DeleteToken(c, args[1]))
}

func runRename(cmd *cobra.Command, args []string) error {
	c, err := category(cmd)
	if err != nil {
		return err
	}
	s, err := open(cmd, args[0])
	if err != nil {
		return err
	}
	return s.commit(s.store.RenameToken(c, args[1], args[2]))
}

func runImport(cmd *cobra.Command, args []string) error {
	c, err := category(cmd)
	if err != nil {
		return err
	}
	fromCSS, _ := cmd.Flags().GetBool("from-css")

	s, err := open(cmd, args[0])
	if err != nil {
		return err
	}
	var input string
	if len(args) > 1 {
		input = args[1]
	}
	data, err := s.ws.ReadInput(cmd.InOrStdin(), input)
	if err != nil {
		return err
	}
	text := string(data)
	if fromCSS {
		decls, err := parser.ExtractStylesheet(data)
		if err != nil {
			return err
		}
		text = parser.RenderBatch(decls)
	}

	batch, result := s.store.ImportBatch(c, text)
	if result.OK {
		fmt.Fprintf(s.out, "imported %d tokens\n", len(batch.Entries))
	}
	return s.commit(result)
}

func runScale(cmd *cobra.Command, args []string) error {
	var patch store.ScalePatch
	if cmd.Flags().Changed("base") {
		v, _ := cmd.Flags().GetFloat64("base")
		patch.Base = &v
	}
	if cmd.Flags().Changed("ratio") {
		v, _ := cmd.Flags().GetFloat64("ratio")
		patch.Ratio = &v
	}
	if cmd.Flags().Changed("presets") {
		v, _ := cmd.Flags().GetFloat64Slice("presets")
		patch.Presets = &v
	}

	s, err := open(cmd, args[0])
	if err != nil {
		return err
	}
	typ, err := s.store.UpdateTypeScale(patch)
	if err != nil {
		return err
	}
	if err := s.save(); err != nil {
		return err
	}
	return render.JSON(s.out, typ)
}

func runHeadings(cmd *cobra.Command, args []string) error {
	s, err := open(cmd, args[0])
	if err != nil {
		return err
	}
	snapshot, err := s.store.Snapshot()
	if err != nil {
		return err
	}
	m, err := parseAssignments(snapshot.Typography.Headings, args[1:])
	if err != nil {
		return err
	}
	res, err := s.store.SetHeadingsMap(m)
	if err != nil {
		return err
	}
	if !res.OK {
		for _, e := range res.Errors {
			fmt.Fprintf(s.out, "error: %s\n", e.Message)
		}
		return fmt.Errorf("%w: %d errors", ErrRejected, len(res.Errors))
	}
	return s.save()
}

// parseAssignments applies "h1=font-size-5" style assignments on top of base.
// A bare step index is accepted in place of the step name.
func parseAssignments(base typography.HeadingsMap, assignments []string) (typography.HeadingsMap, error) {
	m := base.Clone()
	if m == nil {
		m = make(typography.HeadingsMap, len(typography.Levels))
	}
	for _, a := range assignments {
		level, step, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("invalid heading assignment %q, want level=step", a)
		}
		lvl := typography.Level(strings.ToLower(strings.TrimSpace(level)))
		if !slices.Contains(typography.Levels, lvl) {
			return nil, fmt.Errorf("unknown heading level %q", level)
		}
		step = strings.TrimSpace(step)
		if i, err := strconv.Atoi(step); err == nil {
			step = typography.StepName(i)
		}
		m[lvl] = step
	}
	return m, nil
}
