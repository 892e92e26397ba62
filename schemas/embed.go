// Package schemas embeds the SQL migration files for the verbs table.
package schemas

import "embed"

// Migrations holds the migration files applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
