package texgen

import (
	"io/fs"

	"github.com/texgen/go-texgen/pkg/renderers/latex"
)

// EmbeddedTemplates exposes the built-in latex renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return latex.TemplatesFS()
}
