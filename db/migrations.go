// Package db embeds the PostgreSQL schema migrations (goose format).
package db

import "embed"

// Migrations holds every file under migrations/, applied in name order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations passed to goose.
const MigrationsDir = "migrations"
