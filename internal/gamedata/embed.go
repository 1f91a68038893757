// Package gamedata provides the embedded word catalog and terminal theme,
// and the loaders that read catalogs from other sources.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// embeddedSource names the embedded filesystem in errors.
const embeddedSource = "embedded"
