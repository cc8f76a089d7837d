package fixtures

import "embed"

// FS holds the bundled recipe payloads, one per request type
//
//go:embed *.json
var FS embed.FS
