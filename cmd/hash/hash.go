/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package hash provides the hash command for blueprint.
package hash

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/blueprint/cmd/workspace"
	"bennypowers.dev/blueprint/fs"
	"bennypowers.dev/blueprint/hash"
	"bennypowers.dev/blueprint/load"
)

// Cmd is the hash cobra command.
var Cmd = &cobra.Command{
	Use:   "hash [file|-]",
	Short: "Print the SHA-256 digest of a file or project",
	Long: `Print the lowercase hex SHA-256 digest of the input. With --stable, the input
is decoded as a project and hashed in its canonical form, so key order and
formatting do not change the digest.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("stable", false, "Hash the canonical serialization of a project")
	Cmd.Flags().Bool("show", false, "Print the canonical serialization instead of the digest")
}

func run(cmd *cobra.Command, args []string) error {
	stable, _ := cmd.Flags().GetBool("stable")
	show, _ := cmd.Flags().GetBool("show")

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

	format := load.FormatAuto
	if name != "" && name != "-" {
		if format, err = load.FormatForPath(name); err != nil {
			return err
		}
	}
	return write(cmd.OutOrStdout(), data, format, stable || show, show)
}

func write(w io.Writer, data []byte, format load.Format, stable, show bool) error {
	if !stable {
		_, err := fmt.Fprintln(w, hash.SHA256(string(data)))
		return err
	}

	p, err := load.Decode(data, format)
	if err != nil {
		return err
	}
	canonical, err := hash.Stringify(p)
	if err != nil {
		return err
	}
	if show {
		_, err = fmt.Fprintln(w, canonical)
		return err
	}
	_, err = fmt.Fprintln(w, hash.SHA256(canonical))
	return err
}
