package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "loom",
	Short: "Loom - Mercator Flow Language front-end",
	Long: `Loom is the front-end toolchain for the Mercator Flow Language (MFL),
a YAML-hosted workflow-definition language.

It parses human-authored process definitions into a typed abstract syntax
tree for the orchestration engine, providing:
  - Structural validation of flows, steps, forms, and configuration
  - Precise diagnostics with breadcrumb paths and source positions
  - Multi-document stream support
  - A watch mode that re-validates definitions on change`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
