// Package migrations embeds the schema migrations so a deployed binary
// carries them without a migrations directory on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
