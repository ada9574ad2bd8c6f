// Package res bundles static resources compiled into the binary.
package res

import "embed"

//go:embed templates
var Templates embed.FS
