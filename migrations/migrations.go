// Package migrations embeds the goose SQL migrations so the server and the
// migrate command can apply them without a checkout on disk.
package migrations

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB) error {
	return Run(ctx, "up", db)
}

// Run executes a goose command (up, down, status, version, redo, ...)
// against the embedded migrations.
func Run(ctx context.Context, command string, db *sql.DB, args ...string) error {
	goose.SetBaseFS(FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.RunContext(ctx, command, db, ".", args...)
}
