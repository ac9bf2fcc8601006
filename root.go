package brandintel

import "embed"

// Migrations holds the embedded goose SQL migrations applied by the migrate
// command and the test harness.
//
//go:embed migrations/*.sql
var Migrations embed.FS
