/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRootCommands(t *testing.T) {
	want := []string{"convert", "hash", "list", "mcp", "parse", "project", "scale", "search", "utilities", "validate", "version"}
	have := map[string]*cobra.Command{}
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = c
	}
	for _, name := range want {
		if _, ok := have[name]; !ok {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"prefix", "log-level"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag %q", name)
		}
	}
}
