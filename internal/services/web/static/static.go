// Package static carries the site stylesheet compiled into the binary.
package static

import "embed"

// FS holds every *.css file in this directory, rooted at the directory
// itself so "app.css" opens directly.
//
//go:embed *.css
var FS embed.FS
