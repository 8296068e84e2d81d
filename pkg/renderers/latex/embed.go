package latex

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want to
// customise the float environment while keeping the built-in tabular logic.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
