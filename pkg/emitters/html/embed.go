package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want
// the built-in form markup out of the box, or as a starting point for a
// custom bundle passed back through WithTemplatesFS.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
