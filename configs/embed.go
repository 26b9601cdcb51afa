// Package configs embeds the default case catalog and its JSON schema.
package configs

import "embed"

// Catalog file names inside FS.
const (
	CasesFile   = "cases.json"
	CasesSchema = "schemas/cases.schema.json"
)

//go:embed cases.json schemas/*.json
var FS embed.FS
