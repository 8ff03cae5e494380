// Package migrations embeds the SQL migrations for the durable kv backend.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
