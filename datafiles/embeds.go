// Package datafiles holds assets compiled into the binaries.
package datafiles

import _ "embed"

// SpriteTableHTML is the html/template used by the web viewer's index page.
//
//go:embed spritetable.html
var SpriteTableHTML string
