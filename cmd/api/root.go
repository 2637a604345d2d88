package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philly/inkwell/internal/server"
)

var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "Inkwell blog API",
	Long: `Inkwell serves the blog's REST API: posts, categories, comments,
likes, notifications and profile management.

Configuration is read from the environment (and a .env file when present).`,
	Version:       server.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}
