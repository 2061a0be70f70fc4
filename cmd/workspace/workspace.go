/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package workspace resolves the config, prefix and project files shared by
// the CLI commands.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/viper"

	"bennypowers.dev/blueprint/config"
	"bennypowers.dev/blueprint/fs"
	"bennypowers.dev/blueprint/load"
	"bennypowers.dev/blueprint/token"
)

// ErrNoProjects is returned when no project files were given or configured.
var ErrNoProjects = errors.New("no projects specified and no projects found in config")

// Workspace is the directory commands run against.
type Workspace struct {
	FS     fs.FileSystem
	Root   string
	Config *config.Config
}

// Open loads the config found under root.
func Open(filesystem fs.FileSystem, root string) (*Workspace, error) {
	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return &Workspace{FS: filesystem, Root: root, Config: cfg}, nil
}

// Prefix returns the CSS variable prefix from the flag or environment,
// falling back to the config file.
func (w *Workspace) Prefix() string {
	if prefix := viper.GetString("prefix"); prefix != "" {
		return prefix
	}
	return w.Config.Prefix
}

// ProjectPaths returns args, or the configured projects when args is empty.
func (w *Workspace) ProjectPaths(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	expanded, err := w.Config.ExpandProjects(w.FS, w.Root)
	if err != nil {
		return nil, fmt.Errorf("error expanding config projects: %w", err)
	}
	if len(expanded) == 0 {
		return nil, ErrNoProjects
	}
	return expanded, nil
}

// LoadProjects loads every project named by args or the config.
func (w *Workspace) LoadProjects(ctx context.Context, args []string, strict bool) ([]token.Project, error) {
	paths, err := w.ProjectPaths(args)
	if err != nil {
		return nil, err
	}
	return load.LoadAll(ctx, paths, w.LoadOptions(strict))
}

// LoadOptions returns the options used to load project files.
func (w *Workspace) LoadOptions(strict bool) load.Options {
	return load.Options{
		Root:   w.Root,
		FS:     w.FS,
		Config: w.Config,
		Prefix: viper.GetString("prefix"),
		Strict: strict,
	}
}

// ReadInput reads the named file, or stdin when name is empty or "-".
func (w *Workspace) ReadInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := w.FS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}
	return data, nil
}
