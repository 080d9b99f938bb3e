// Package migrations embeds the SQL schema so the binary can migrate without the source tree.
package migrations

import "embed"

const PostgresDir = "postgres"

//go:embed postgres/*.sql
var FS embed.FS
