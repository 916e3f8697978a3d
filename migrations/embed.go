// Package migrations embeds the goose SQL migrations for the cloud sync database.
package migrations

import "embed"

// FS holds every *.sql migration.
//
//go:embed *.sql
var FS embed.FS
