// Package seeds embeds the default configuration bundle that is written to
// the configs table on every seeding run.
package seeds

import _ "embed"

// DefaultConfigs is the bundled defaults document: a JSON object mapping
// each category to an object of configuration keys.
//
//go:embed configs.json
var DefaultConfigs []byte
