// Package cmd implements command-line functionality for OpenBlog
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dongdio/OpenBlog/global"
)

const (
	// ShortDescription is the short description shown in help text
	ShortDescription = "A self-hosted blogging platform."

	// LongDescription is the long description shown in help text
	LongDescription = `A self-hosted blogging platform with themes, comments and an admin console.
Run 'openblog server' to start it and 'openblog install' to create the owner account.`
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "openblog",
	Short: ShortDescription,
	Long:  LongDescription,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(
		&global.DataDir,
		"data",
		"data",
		"Specify the data directory for configuration, database and themes",
	)

	RootCmd.PersistentFlags().BoolVar(
		&global.Debug,
		"debug",
		false,
		"Enable debug mode with additional logging",
	)

	RootCmd.PersistentFlags().BoolVar(
		&global.NoPrefix,
		"no-prefix",
		false,
		"Disable environment variable prefix (BLOG_)",
	)

	RootCmd.PersistentFlags().BoolVar(
		&global.Dev,
		"dev",
		false,
		"Enable development mode with in-memory database and a test account",
	)

	RootCmd.PersistentFlags().BoolVar(
		&global.ForceBinDir,
		"force-bin-dir",
		false,
		"Force using the binary location directory as the data directory",
	)

	RootCmd.PersistentFlags().BoolVar(
		&global.LogStd,
		"log-std",
		false,
		"Force logging to standard output instead of file",
	)
}
