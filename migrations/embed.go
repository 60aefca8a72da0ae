// Package migrations embeds SQL migration files into the binary.
//
// This allows Rentdesk to run migrations without the SQL files being
// present on the filesystem — they're compiled into the executable.
package migrations

import (
	"embed"

	"github.com/rentdesk/rentdesk-core/internal/infrastructure/database"
)

//go:embed *.sql
var migrationsFS embed.FS

func init() {
	database.MigrationsFS = migrationsFS
	database.MigrationsDir = "." // files are at the root of the embedded FS
}
