/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for blueprint.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/blueprint/cmd/convert"
	"bennypowers.dev/blueprint/cmd/hash"
	"bennypowers.dev/blueprint/cmd/list"
	"bennypowers.dev/blueprint/cmd/mcp"
	"bennypowers.dev/blueprint/cmd/parse"
	"bennypowers.dev/blueprint/cmd/project"
	"bennypowers.dev/blueprint/cmd/scale"
	"bennypowers.dev/blueprint/cmd/search"
	"bennypowers.dev/blueprint/cmd/utilities"
	"bennypowers.dev/blueprint/cmd/validate"
	"bennypowers.dev/blueprint/cmd/version"
	"bennypowers.dev/blueprint/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "blueprint",
	Short: "Validate, organize and generate design tokens",
	Long: `blueprint validates design token names and values, parses pasted token
declarations, generates modular type scales and utility CSS, and edits
project files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.SetLevel(viper.GetString("log-level"))
	},
}

// Execute runs the root command, cancelling its context on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringP("prefix", "p", "", "CSS variable prefix, overriding the config file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	lo.Must0(viper.BindPFlag("prefix", rootCmd.PersistentFlags().Lookup("prefix")))
	lo.Must0(viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")))
	viper.SetEnvPrefix("blueprint")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(hash.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(parse.Cmd)
	rootCmd.AddCommand(project.Cmd)
	rootCmd.AddCommand(scale.Cmd)
	rootCmd.AddCommand(search.Cmd)
	rootCmd.AddCommand(utilities.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
