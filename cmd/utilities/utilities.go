/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package utilities provides the utilities command for blueprint.
package utilities

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"bennypowers.dev/blueprint/cmd/render"
	"bennypowers.dev/blueprint/cmd/workspace"
	"bennypowers.dev/blueprint/fs"
	"bennypowers.dev/blueprint/internal/logger"
	"bennypowers.dev/blueprint/load"
	"bennypowers.dev/blueprint/parser"
	"bennypowers.dev/blueprint/utilities"
)

// debounce groups the burst of events editors emit for a single save.
const debounce = 100 * time.Millisecond

// ErrAmbiguousProject is returned when no project is named and the config
// lists more than one.
var ErrAmbiguousProject = errors.New("config lists several projects; name one")

// Cmd is the utilities cobra command.
var Cmd = &cobra.Command{
	Use:   "utilities [project]",
	Short: "Generate utility CSS classes from a project",
	Long: `Generate font-size, spacing and color utility classes from a project's
type scale and tokens. With --watch, the CSS is regenerated whenever the
project file changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Write CSS to file instead of stdout")
	Cmd.Flags().String("family", "", "Only emit one family (fontSize, spacing, color)")
	Cmd.Flags().String("format", "css", "Output format: css, json")
	Cmd.Flags().BoolP("watch", "w", false, "Regenerate when the project file changes")
}

type generator struct {
	ws     *workspace.Workspace
	path   string
	cache  *utilities.Cache
	family string
	format string
	output string
	stdout io.Writer
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	family, _ := cmd.Flags().GetString("family")
	format, _ := cmd.Flags().GetString("format")
	watch, _ := cmd.Flags().GetBool("watch")

	if family != "" && !lo.ContainsBy(utilities.Families, func(f utilities.Family) bool { return f.Name == family }) {
		return fmt.Errorf("unknown utility family %q", family)
	}

	ws, err := workspace.Open(fs.NewOSFileSystem(), ".")
	if err != nil {
		return err
	}
	paths, err := ws.ProjectPaths(args)
	if err != nil {
		return err
	}
	if len(paths) > 1 {
		return fmt.Errorf("%w: %v", ErrAmbiguousProject, paths)
	}

	cache, err := utilities.NewCache(utilities.DefaultCacheSize)
	if err != nil {
		return err
	}
	g := &generator{
		ws:     ws,
		path:   paths[0],
		cache:  cache,
		family: family,
		format: format,
		output: output,
		stdout: cmd.OutOrStdout(),
	}

	if err := g.generate(cmd.Context()); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	w, err := newWatcher(g.path)
	if err != nil {
		return err
	}
	defer w.Close()
	logger.Info("watching %s", g.path)
	return watchLoop(cmd.Context(), w, g.path, func() {
		if err := g.generate(cmd.Context()); err != nil {
			logger.Warn("%v", err)
		}
	})
}

func (g *generator) generate(ctx context.Context) error {
	p, err := load.Load(ctx, g.path, g.ws.LoadOptions(false))
	if err != nil {
		return err
	}

	out, cached, err := g.cache.Generate(p)
	if err != nil {
		return err
	}
	if cached {
		logger.Debug("%s unchanged, reusing generated CSS", g.path)
	}

	css := selectCSS(out, g.family)
	if err := parser.CheckStylesheet([]byte(css)); err != nil {
		return fmt.Errorf("generated CSS for %s: %w", g.path, err)
	}

	var data []byte
	switch g.format {
	case "json":
		data, err = encodeJSON(out)
		if err != nil {
			return err
		}
	default:
		data = []byte(css)
	}

	if g.output == "" {
		_, err = g.stdout.Write(data)
		return err
	}
	if err := g.ws.FS.WriteFile(g.output, data, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", g.output, err)
	}
	logger.Info("wrote %d classes to %s", out.TotalClasses, g.output)
	return nil
}

// selectCSS returns the concatenated CSS, or one family's segment.
func selectCSS(out utilities.Output, family string) string {
	if family == "" {
		return out.Concatenated
	}
	seg, _ := lo.Find(out.Segments, func(s utilities.Segment) bool { return s.Family == family })
	return seg.CSS
}

func encodeJSON(out utilities.Output) ([]byte, error) {
	var buf bytes.Buffer
	if err := render.JSON(&buf, out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// newWatcher watches the directory holding path, since editors often
// replace files rather than write them in place.
func newWatcher(path string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	return w, nil
}

// watchLoop calls fn once per debounced burst of writes to path until ctx
// is done or the watcher closes.
func watchLoop(ctx context.Context, w *fsnotify.Watcher, path string, fn func()) error {
	target := filepath.Clean(path)
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				timer.Reset(debounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		case <-timer.C:
			fn()
		}
	}
}
