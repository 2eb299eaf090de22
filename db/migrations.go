// Package db embeds the schema migrations so the binary and the tests do not
// depend on the working directory.
package db

import "embed"

//go:embed migrations/sqlite3/*.sql migrations/postgres/*.sql
var Migrations embed.FS

// MigrationsDir returns the embedded directory holding the migrations for a driver.
func MigrationsDir(driver string) string {
	return "migrations/" + driver
}
