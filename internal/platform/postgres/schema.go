package postgres

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the DDL applied by ApplySchema.
func Schema() string { return schemaSQL }

// ApplySchema runs the idempotent schema script. pgx uses the simple
// protocol for argument-less Exec, so the multi-statement script runs as one.
func ApplySchema(ctx context.Context, db Querier) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
