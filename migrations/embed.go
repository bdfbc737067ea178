package migrations

import "embed"

// Files holds the schema migrations applied in version order when the database opens.
//
//go:embed *.sql
var Files embed.FS
