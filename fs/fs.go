package appfs

import "embed"

// FS holds the application's embedded assets (SQL migrations).
//go:embed migrations
var FS embed.FS
