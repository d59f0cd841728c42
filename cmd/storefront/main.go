// Package main is the entry point for the storefront CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "storefront - browse and manage a product catalog from the terminal",
	Long: `storefront is a terminal client for a product catalog backend.

It talks to the backend over HTTP and keeps a local snapshot of the
catalog and the shopping cart, refreshing after every change so the
snapshot always reflects what the server holds.

Configuration comes from environment variables; set API_BASE_URL to
point at the backend (default http://localhost:8080).`,
	Version: Version,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("storefront version {{.Version}}\n")
}
