package render

import (
	"context"

	"github.com/texgen/go-texgen/pkg/model"
)

// Renderer converts a Table into a byte representation (LaTeX, Markdown, ...).
type Renderer interface {
	Name() string
	ContentType() string
	// Extension is the output file suffix including the dot, e.g. ".tex".
	Extension() string
	Render(ctx context.Context, table model.Table, options RenderOptions) ([]byte, error)
}
