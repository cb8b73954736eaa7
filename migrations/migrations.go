// Package migrations embeds the goose migrations applied by postgres.Migrate.
package migrations

import "embed"

// FS holds the schema migrations.
//
//go:embed *.sql
var FS embed.FS

// Seed holds demo data, applied only when explicitly enabled.
//
//go:embed seed/*.sql
var Seed embed.FS
