package migrations

import "embed"

// Files stores forward-only SQL migrations embedded into the binary. Each
// version is strictly additive: existing tables, indexes, and rows are never
// touched by a later version.
//
//go:embed *.sql
var Files embed.FS
