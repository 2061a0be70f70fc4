/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command for blueprint.
package mcp

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/blueprint/cmd/workspace"
	"bennypowers.dev/blueprint/fs"
	"bennypowers.dev/blueprint/internal/logger"
	"bennypowers.dev/blueprint/server"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve token tools over the Model Context Protocol",
	Long: `Start a Model Context Protocol server on stdin/stdout exposing token
validation, batch parsing, type scale, listing, utility generation and digest tools.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("log-file", "", "Append logs to this file instead of discarding them")
}

func run(cmd *cobra.Command, args []string) error {
	logFile, _ := cmd.Flags().GetString("log-file")
	if logFile == "" {
		logger.SetOutput(io.Discard)
	} else {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("error opening log file: %w", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	ws, err := workspace.Open(fs.NewOSFileSystem(), ".")
	if err != nil {
		return err
	}
	s, err := server.New(server.Options{FS: ws.FS, Root: ws.Root, Config: ws.Config})
	if err != nil {
		return err
	}
	return s.Run(cmd.Context())
}
