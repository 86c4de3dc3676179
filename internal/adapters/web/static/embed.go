// Package static embeds the map UI so the binary is self-contained.
package static

import "embed"

//go:embed index.html
var Files embed.FS
