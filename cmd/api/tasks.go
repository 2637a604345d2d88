package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philly/inkwell/internal/server"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long: `Apply the embedded schema. Every statement is idempotent, so running
migrate against an up-to-date database changes nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTasks(cmd, (*server.Tasks).Migrate)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert reference data such as the General category",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTasks(cmd, (*server.Tasks).Seed)
	},
}

func withTasks(cmd *cobra.Command, run func(*server.Tasks, context.Context) error) error {
	ctx := cmd.Context()

	tasks, cleanup, err := server.InitializeTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer cleanup()

	return run(tasks, ctx)
}
