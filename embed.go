// Package scanrunner holds assets shared by the scan runner binaries.
package scanrunner

import "embed"

// Migrations contains the goose migrations of the scan runner database.
//
//go:embed migrations/*.sql
var Migrations embed.FS
