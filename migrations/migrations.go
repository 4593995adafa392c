// Package migrations embeds the goose SQL migrations for the blogs database.
package migrations

import "embed"

// FS holds every migration, ordered by the numeric filename prefix.
//
//go:embed *.sql
var FS embed.FS
