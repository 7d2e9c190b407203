// Package migrations embeds the SQL schema steps applied by golang-migrate.
package migrations

import "embed"

// SQLite holds the SQLite migrations under the "sqlite" directory.
//
//go:embed sqlite/*.sql
var SQLite embed.FS

// SQLiteDir is the directory inside SQLite that holds the migration files.
const SQLiteDir = "sqlite"
